package order

import "github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/domain"

// Item is an order line. Name and Price are copies of the product's values at
// the time the order was placed.
type Item struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
}

func NewItem(id, name string, price float64, productID string, quantity int) Item {
	return Item{
		ID:        id,
		Name:      name,
		Price:     price,
		ProductID: productID,
		Quantity:  quantity,
	}
}

// OrderTotal is the line total.
func (i Item) OrderTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Order is the aggregate root. It owns a private copy of its items; replacing
// them means building a new Order with the same id.
type Order struct {
	id         string
	customerID string
	items      []Item
}

func New(id, customerID string, items []Item) (*Order, error) {
	const op = "new order"
	if id == "" {
		return nil, domain.Validation(op, "id is required")
	}
	if customerID == "" {
		return nil, domain.Validation(op, "customerId is required")
	}
	if len(items) == 0 {
		return nil, domain.Validation(op, "items are required")
	}
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, domain.Validation(op, "item "+it.ID+": quantity must be greater than 0")
		}
	}

	return &Order{
		id:         id,
		customerID: customerID,
		items:      append([]Item(nil), items...),
	}, nil
}

func (o *Order) ID() string         { return o.id }
func (o *Order) CustomerID() string { return o.customerID }

// Items returns a copy of the order lines in insertion order.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

func (o *Order) Total() float64 {
	var total float64
	for _, it := range o.items {
		total += it.OrderTotal()
	}
	return total
}

// TotalOf sums the totals of the given orders.
func TotalOf(orders []*Order) float64 {
	var total float64
	for _, o := range orders {
		total += o.Total()
	}
	return total
}
