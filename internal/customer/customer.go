package customer

import "github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/domain"

type Customer struct {
	id           string
	name         string
	address      Address
	active       bool
	rewardPoints int
}

func New(id, name string) (*Customer, error) {
	if id == "" {
		return nil, domain.Validation("new customer", "id is required")
	}
	if name == "" {
		return nil, domain.Validation("new customer", "name is required")
	}
	return &Customer{id: id, name: name}, nil
}

// Restore rebuilds a customer from stored state.
func Restore(id, name string, address Address, active bool, rewardPoints int) (*Customer, error) {
	c, err := New(id, name)
	if err != nil {
		return nil, err
	}
	c.address = address
	c.active = active
	c.rewardPoints = rewardPoints
	return c, nil
}

func (c *Customer) ID() string        { return c.id }
func (c *Customer) Name() string      { return c.name }
func (c *Customer) Address() Address  { return c.address }
func (c *Customer) IsActive() bool    { return c.active }
func (c *Customer) RewardPoints() int { return c.rewardPoints }

func (c *Customer) ChangeName(name string) error {
	if name == "" {
		return domain.Validation("change name", "name is required")
	}
	c.name = name
	return nil
}

func (c *Customer) ChangeAddress(address Address) error {
	if address.IsZero() {
		return domain.Validation("change address", "address is required")
	}
	c.address = address
	return nil
}

// Activate requires an address.
func (c *Customer) Activate() error {
	if c.address.IsZero() {
		return domain.Validation("activate customer", "address is mandatory to activate a customer")
	}
	c.active = true
	return nil
}

func (c *Customer) Deactivate() {
	c.active = false
}
