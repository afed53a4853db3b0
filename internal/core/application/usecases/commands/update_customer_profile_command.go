package commands

import (
	"errors"

	"jastip/internal/core/domain/model/kernel"
	"jastip/internal/pkg/guard"
)

var ErrUpdateCustomerProfileCommandIsNotConstructed = errors.New(
	"UpdateCustomerProfileCommand must be created via NewUpdateCustomerProfileCommand constructor",
)

// UpdateCustomerProfileCommand represents a request to change a customer's
// profile. Name and phone always apply; address and region are subject to the
// address lock unless the caller is an admin.
type UpdateCustomerProfileCommand struct { //nolint:recvcheck //using for validation
	customerID    kernel.UUID
	name          string
	phone         string
	address       string
	region        kernel.Region
	updateAddress bool
	asAdmin       bool

	guard guard.ConstructorGuard
}

// NewUpdateCustomerProfileCommand creates a command to update a customer profile.
// updateAddress distinguishes "leave the address alone" from "clear it": the
// address and region fields are only applied when it is true.
func NewUpdateCustomerProfileCommand(
	customerID kernel.UUID,
	name string,
	phone string,
	address string,
	region kernel.Region,
	updateAddress bool,
	asAdmin bool,
) (UpdateCustomerProfileCommand, error) {
	profileCommand := UpdateCustomerProfileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		profileCommand.setCustomerID(customerID),
		profileCommand.setName(name),
	); err != nil {
		return UpdateCustomerProfileCommand{}, err
	}

	profileCommand.phone = phone
	profileCommand.address = address
	profileCommand.region = region
	profileCommand.updateAddress = updateAddress
	profileCommand.asAdmin = asAdmin
	return profileCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerProfileCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer being updated.
func (c UpdateCustomerProfileCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the new display name.
func (c UpdateCustomerProfileCommand) Name() string {
	return c.name
}

// Phone returns the new WhatsApp number.
func (c UpdateCustomerProfileCommand) Phone() string {
	return c.phone
}

// Address returns the new delivery address.
func (c UpdateCustomerProfileCommand) Address() string {
	return c.address
}

// Region returns the new delivery region.
func (c UpdateCustomerProfileCommand) Region() kernel.Region {
	return c.region
}

// UpdateAddress reports whether the address and region fields should be applied.
func (c UpdateCustomerProfileCommand) UpdateAddress() bool {
	return c.updateAddress
}

// AsAdmin reports whether the caller may override the address lock.
func (c UpdateCustomerProfileCommand) AsAdmin() bool {
	return c.asAdmin
}

func (c *UpdateCustomerProfileCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateCustomerProfileCommand) setName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	c.name = name
	return nil
}
