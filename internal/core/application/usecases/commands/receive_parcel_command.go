package commands

import (
	"errors"

	"jastip/internal/core/domain/model/parcel"
	"jastip/internal/pkg/guard"
)

var ErrReceiveParcelCommandIsNotConstructed = errors.New(
	"ReceiveParcelCommand must be created via NewReceiveParcelCommand constructor",
)

// ReceiveParcelCommand records a parcel's physical arrival at the warehouse.
// Carries the measured weight and dimensions, the rack it was shelved on, and
// an optional proof photo taken at intake.
//
// Example:
//
//	cmd, err := NewReceiveParcelCommand(
//	    "JD0012345678",
//	    parcel.Measurements{Weight: 2.4, Length: 30, Width: 20, Height: 10},
//	    "R1-03",
//	    photoBytes,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid intake data: %w", err)
//	}
//
//	handler := NewReceiveParcelCommandHandler(uowFactory, storage, calculator, rates)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to receive parcel: %w", err)
//	}
type ReceiveParcelCommand struct { //nolint:recvcheck //using for validation
	trackingNumber string
	measurements   parcel.Measurements
	rack           string
	proofPhoto     []byte

	guard guard.ConstructorGuard
}

// NewReceiveParcelCommand creates a command to receive a pre-alerted parcel.
// The proof photo may be nil when the operator skipped the camera.
func NewReceiveParcelCommand(
	trackingNumber string,
	measurements parcel.Measurements,
	rack string,
	proofPhoto []byte,
) (ReceiveParcelCommand, error) {
	receiveCommand := ReceiveParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		receiveCommand.setTrackingNumber(trackingNumber),
		receiveCommand.setMeasurements(measurements),
	); err != nil {
		return ReceiveParcelCommand{}, err
	}

	receiveCommand.rack = rack
	receiveCommand.proofPhoto = proofPhoto
	return receiveCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReceiveParcelCommand) Validate() error {
	return c.guard.Validate(ErrReceiveParcelCommandIsNotConstructed)
}

// TrackingNumber returns the courier tracking number (resi).
func (c ReceiveParcelCommand) TrackingNumber() string {
	return c.trackingNumber
}

// Measurements returns the weight and dimensions measured at intake.
func (c ReceiveParcelCommand) Measurements() parcel.Measurements {
	return c.measurements
}

// Rack returns the warehouse rack label.
func (c ReceiveParcelCommand) Rack() string {
	return c.rack
}

// ProofPhoto returns the intake photo bytes, nil when none was taken.
func (c ReceiveParcelCommand) ProofPhoto() []byte {
	return c.proofPhoto
}

func (c *ReceiveParcelCommand) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return ErrTrackingNumberIsRequired
	}

	c.trackingNumber = trackingNumber
	return nil
}

func (c *ReceiveParcelCommand) setMeasurements(measurements parcel.Measurements) error {
	if err := measurements.Validate(); err != nil {
		return err
	}

	c.measurements = measurements
	return nil
}
