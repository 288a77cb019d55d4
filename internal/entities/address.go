package entities

import "errors"

type AddressCategory string

const (
	AddressHome  AddressCategory = "home"
	AddressWork  AddressCategory = "work"
	AddressOther AddressCategory = "other"
)

var ErrAddressNotFound = errors.New("address not found")

func (c AddressCategory) Valid() bool {
	return c == AddressHome || c == AddressWork || c == AddressOther
}

// Address is immutable once referenced by a placed order; orders keep the id,
// not a copy.
type Address struct {
	ID            string
	UserID        string
	RecipientName string
	Street        string
	Locality      string
	District      string
	City          string
	Region        string
	Country       string
	PostalCode    string
	Category      AddressCategory
}
