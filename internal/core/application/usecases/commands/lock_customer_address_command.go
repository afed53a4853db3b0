package commands

import (
	"errors"

	"jastip/internal/core/domain/model/kernel"
	"jastip/internal/pkg/guard"
)

var ErrLockCustomerAddressCommandIsNotConstructed = errors.New(
	"LockCustomerAddressCommand must be created via NewLockCustomerAddressCommand constructor",
)

// LockCustomerAddressCommand freezes a customer's delivery address so the
// customer can no longer change it themselves. Locking is one-way; only an
// admin edit can change the address afterwards.
type LockCustomerAddressCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewLockCustomerAddressCommand creates a command to lock a customer's address.
func NewLockCustomerAddressCommand(customerID kernel.UUID) (LockCustomerAddressCommand, error) {
	lockCommand := LockCustomerAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := lockCommand.setCustomerID(customerID); err != nil {
		return LockCustomerAddressCommand{}, err
	}

	return lockCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c LockCustomerAddressCommand) Validate() error {
	return c.guard.Validate(ErrLockCustomerAddressCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer whose address is locked.
func (c LockCustomerAddressCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *LockCustomerAddressCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
