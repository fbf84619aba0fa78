package product

import "github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/domain"

type Product struct {
	id    string
	name  string
	price float64
}

func New(id, name string, price float64) (*Product, error) {
	p := &Product{id: id, name: name, price: price}
	if err := p.validate("new product"); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Product) ID() string     { return p.id }
func (p *Product) Name() string   { return p.name }
func (p *Product) Price() float64 { return p.price }

func (p *Product) ChangeName(name string) error {
	if name == "" {
		return domain.Validation("change product name", "name is required")
	}
	p.name = name
	return nil
}

func (p *Product) ChangePrice(price float64) error {
	if price < 0 {
		return domain.Validation("change product price", "price must be greater than or equal to zero")
	}
	p.price = price
	return nil
}

func (p *Product) validate(op string) error {
	switch {
	case p.id == "":
		return domain.Validation(op, "id is required")
	case p.name == "":
		return domain.Validation(op, "name is required")
	case p.price < 0:
		return domain.Validation(op, "price must be greater than or equal to zero")
	}
	return nil
}
