package order

import (
	"errors"

	"marketplace/internal/pkg/errs"
)

// AddressSnapshot is a copy of a delivery or billing address captured at order
// creation. It is a snapshot, not a live reference: historical orders must not
// change when the customer later edits their saved address.
type AddressSnapshot struct {
	name       string
	street     string
	city       string
	state      string
	postalCode string
	country    string
	phone      string
}

// NewAddressSnapshot creates a validated address snapshot.
// Name, street, city, and country are required; state, postal code, and phone
// follow whatever the checkout collaborator supplied.
func NewAddressSnapshot(name, street, city, state, postalCode, country, phone string) (AddressSnapshot, error) {
	required := func(param, value string) error {
		if value == "" {
			return errs.NewValueIsRequiredError(param)
		}
		return nil
	}

	if err := errors.Join(
		required("address name", name),
		required("street", street),
		required("city", city),
		required("country", country),
	); err != nil {
		return AddressSnapshot{}, err
	}

	return AddressSnapshot{
		name:       name,
		street:     street,
		city:       city,
		state:      state,
		postalCode: postalCode,
		country:    country,
		phone:      phone,
	}, nil
}

func (a AddressSnapshot) Name() string       { return a.name }
func (a AddressSnapshot) Street() string     { return a.street }
func (a AddressSnapshot) City() string       { return a.city }
func (a AddressSnapshot) State() string      { return a.state }
func (a AddressSnapshot) PostalCode() string { return a.postalCode }
func (a AddressSnapshot) Country() string    { return a.country }
func (a AddressSnapshot) Phone() string      { return a.phone }

// Validate returns an error for a zero-value snapshot.
func (a AddressSnapshot) Validate() error {
	if a.street == "" {
		return errs.NewValueIsRequiredError("address must be created via NewAddressSnapshot")
	}
	return nil
}
