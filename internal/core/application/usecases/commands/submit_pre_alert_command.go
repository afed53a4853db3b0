package commands

import (
	"errors"

	"jastip/internal/core/domain/model/kernel"
	"jastip/internal/pkg/guard"
)

var (
	ErrSubmitPreAlertCommandIsNotConstructed = errors.New(
		"SubmitPreAlertCommand must be created via NewSubmitPreAlertCommand constructor",
	)
	ErrTrackingNumberIsRequired = errors.New("tracking number is required")
	ErrDeclaredValueIsInvalid   = errors.New("declared value must not be negative")
)

// SubmitPreAlertCommand registers a parcel the customer is expecting.
// The warehouse only receives parcels that were pre-alerted, so this is the
// entry point of every parcel's lifecycle.
//
// Example:
//
//	parcelID := kernel.NewUUID()
//	cmd, err := NewSubmitPreAlertCommand(parcelID, "JD0012345678", customerID, "shopee", 150000)
//	if err != nil {
//	    return fmt.Errorf("invalid pre-alert: %w", err)
//	}
//
//	handler := NewSubmitPreAlertCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to submit pre-alert: %w", err)
//	}
type SubmitPreAlertCommand struct { //nolint:recvcheck //using for validation
	parcelID       kernel.UUID
	trackingNumber string
	customerID     kernel.UUID
	marketplace    string
	declaredValue  int64

	guard guard.ConstructorGuard
}

// NewSubmitPreAlertCommand creates a command to pre-alert a parcel.
// Tracking number and customer are required; marketplace and declared value
// are informational.
func NewSubmitPreAlertCommand(
	parcelID kernel.UUID,
	trackingNumber string,
	customerID kernel.UUID,
	marketplace string,
	declaredValue int64,
) (SubmitPreAlertCommand, error) {
	preAlertCommand := SubmitPreAlertCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		preAlertCommand.setParcelID(parcelID),
		preAlertCommand.setTrackingNumber(trackingNumber),
		preAlertCommand.setCustomerID(customerID),
		preAlertCommand.setDeclaredValue(declaredValue),
	); err != nil {
		return SubmitPreAlertCommand{}, err
	}

	preAlertCommand.marketplace = marketplace
	return preAlertCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitPreAlertCommand) Validate() error {
	return c.guard.Validate(ErrSubmitPreAlertCommandIsNotConstructed)
}

// ParcelID returns the unique identifier for the new parcel.
func (c SubmitPreAlertCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// TrackingNumber returns the courier tracking number (resi).
func (c SubmitPreAlertCommand) TrackingNumber() string {
	return c.trackingNumber
}

// CustomerID returns the identifier of the parcel's owner.
func (c SubmitPreAlertCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Marketplace returns where the parcel was purchased.
func (c SubmitPreAlertCommand) Marketplace() string {
	return c.marketplace
}

// DeclaredValue returns the declared value in minor currency units.
func (c SubmitPreAlertCommand) DeclaredValue() int64 {
	return c.declaredValue
}

func (c *SubmitPreAlertCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *SubmitPreAlertCommand) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return ErrTrackingNumberIsRequired
	}

	c.trackingNumber = trackingNumber
	return nil
}

func (c *SubmitPreAlertCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *SubmitPreAlertCommand) setDeclaredValue(declaredValue int64) error {
	if declaredValue < 0 {
		return ErrDeclaredValueIsInvalid
	}

	c.declaredValue = declaredValue
	return nil
}
