package batch

import (
	"fmt"

	"jastip/internal/pkg/errs"
)

// Status represents the transit state of an outbound batch.
//
// State transitions are strictly forward:
//
//	Open ──> OnTruck ──> OnVessel ──> Arrived
//
// Transit states are properties of the batch, not of its member parcels:
// advancing a batch never rewrites parcel statuses, it only gates which
// operations remain valid on the members (a batch stops accepting new
// parcels once it has Arrived).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Open means the batch is being assembled at the origin hub.
	Open

	// OnTruck means the batch is in overland transit to the port.
	OnTruck

	// OnVessel means the batch is loaded on the vessel.
	OnVessel

	// Arrived means the batch has reached the destination region.
	// This is a final state with no further transitions allowed.
	Arrived
)

// getStatusStrings returns a map of Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "UNKNOWN",
		Open:     "OPEN",
		OnTruck:  "ON_TRUCK",
		OnVessel: "ON_VESSEL",
		Arrived:  "ARRIVED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:     "OPEN",
		OnTruck:  "ON_TRUCK",
		OnVessel: "ON_VESSEL",
		Arrived:  "ARRIVED",
	}
}

// StatusFromString parses a wire representation, e.g. "ON_VESSEL".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid batch status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("OPEN", "ON_TRUCK", ...).
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Next returns the status one step forward in the transit sequence.
// Arrived is final; advancing it is an error.
func (s Status) Next() (Status, error) {
	switch s {
	case Open:
		return OnTruck, nil
	case OnTruck:
		return OnVessel, nil
	case OnVessel:
		return Arrived, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to advance", s.String()),
		)
	}
}

// AcceptsParcels reports whether parcels may still be assigned to a batch in
// this status. Assignment remains legal up to and including vessel transit;
// an Arrived batch is closed.
func (s Status) AcceptsParcels() bool {
	return s == Open || s == OnTruck || s == OnVessel
}
