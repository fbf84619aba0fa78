package product

import "github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/events"

type Created struct {
	events.Base
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
}

func NewCreated(p *Product) Created {
	return Created{
		Base:        events.NewBase(),
		ProductID:   p.ID(),
		ProductName: p.Name(),
		Price:       p.Price(),
	}
}

func (Created) Name() string          { return events.EventProductCreated }
func (e Created) AggregateID() string { return e.ProductID }
