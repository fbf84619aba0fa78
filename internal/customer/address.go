package customer

import (
	"fmt"

	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/domain"
)

// Address is an immutable mailing address compared by value.
type Address struct {
	Street string `json:"street"`
	Number int    `json:"number"`
	Zip    string `json:"zip"`
	City   string `json:"city"`
}

func NewAddress(street string, number int, zip, city string) (Address, error) {
	const op = "new address"
	switch {
	case street == "":
		return Address{}, domain.Validation(op, "street is required")
	case number <= 0:
		return Address{}, domain.Validation(op, "number must be greater than 0")
	case zip == "":
		return Address{}, domain.Validation(op, "zip is required")
	case city == "":
		return Address{}, domain.Validation(op, "city is required")
	}
	return Address{Street: street, Number: number, Zip: zip, City: city}, nil
}

func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) String() string {
	return fmt.Sprintf("%s, %d, %s %s", a.Street, a.Number, a.Zip, a.City)
}
