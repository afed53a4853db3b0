package commands

import (
	"errors"

	"jastip/internal/core/domain/model/kernel"
	"jastip/internal/pkg/guard"
)

var ErrMarkParcelPaidCommandIsNotConstructed = errors.New(
	"MarkParcelPaidCommand must be created via NewMarkParcelPaidCommand constructor",
)

// MarkParcelPaidCommand records that a customer settled a parcel's fee.
type MarkParcelPaidCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkParcelPaidCommand creates a command to mark a parcel as paid.
func NewMarkParcelPaidCommand(parcelID kernel.UUID) (MarkParcelPaidCommand, error) {
	paidCommand := MarkParcelPaidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := paidCommand.setParcelID(parcelID); err != nil {
		return MarkParcelPaidCommand{}, err
	}

	return paidCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkParcelPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkParcelPaidCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel being paid.
func (c MarkParcelPaidCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c *MarkParcelPaidCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}
