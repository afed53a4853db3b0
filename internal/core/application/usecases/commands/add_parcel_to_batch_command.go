package commands

import (
	"errors"

	"jastip/internal/core/domain/model/kernel"
	"jastip/internal/pkg/guard"
)

var ErrAddParcelToBatchCommandIsNotConstructed = errors.New(
	"AddParcelToBatchCommand must be created via NewAddParcelToBatchCommand constructor",
)

// AddParcelToBatchCommand packs a parcel into a shipping batch.
// A seal number marks the parcel as bagged; without one it is merely staged
// as ready to ship.
type AddParcelToBatchCommand struct { //nolint:recvcheck //using for validation
	parcelID   kernel.UUID
	batchCode  string
	bagID      string
	sealNumber string

	guard guard.ConstructorGuard
}

// NewAddParcelToBatchCommand creates a command to pack a parcel.
// Bag ID and seal number are optional.
func NewAddParcelToBatchCommand(parcelID kernel.UUID, batchCode, bagID, sealNumber string) (AddParcelToBatchCommand, error) {
	packCommand := AddParcelToBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		packCommand.setParcelID(parcelID),
		packCommand.setBatchCode(batchCode),
	); err != nil {
		return AddParcelToBatchCommand{}, err
	}

	packCommand.bagID = bagID
	packCommand.sealNumber = sealNumber
	return packCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddParcelToBatchCommand) Validate() error {
	return c.guard.Validate(ErrAddParcelToBatchCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel being packed.
func (c AddParcelToBatchCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// BatchCode returns the destination batch code.
func (c AddParcelToBatchCommand) BatchCode() string {
	return c.batchCode
}

// BagID returns the consolidation bag label.
func (c AddParcelToBatchCommand) BagID() string {
	return c.bagID
}

// SealNumber returns the bag seal number, empty when the bag is not sealed.
func (c AddParcelToBatchCommand) SealNumber() string {
	return c.sealNumber
}

func (c *AddParcelToBatchCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *AddParcelToBatchCommand) setBatchCode(batchCode string) error {
	if batchCode == "" {
		return ErrBatchCodeIsRequired
	}

	c.batchCode = batchCode
	return nil
}
