package customer

import "github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/events"

type AddressChanged struct {
	events.Base
	CustomerID   string  `json:"customerId"`
	CustomerName string  `json:"customerName"`
	Address      Address `json:"address"`
}

func NewAddressChanged(c *Customer) AddressChanged {
	return AddressChanged{
		Base:         events.NewBase(),
		CustomerID:   c.ID(),
		CustomerName: c.Name(),
		Address:      c.Address(),
	}
}

func (AddressChanged) Name() string          { return events.EventCustomerAddressChanged }
func (e AddressChanged) AggregateID() string { return e.CustomerID }

type Created struct {
	events.Base
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
}

func NewCreated(c *Customer) Created {
	return Created{Base: events.NewBase(), CustomerID: c.ID(), CustomerName: c.Name()}
}

func (Created) Name() string          { return events.EventCustomerCreated }
func (e Created) AggregateID() string { return e.CustomerID }
