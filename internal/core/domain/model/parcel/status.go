package parcel

import (
	"fmt"

	"jastip/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
// It implements a state machine with defined transitions so parcels follow the
// hub's operational workflow: pre-alert, physical receipt, payment, batching.
//
// State transitions:
//
//	Expected ──> Received ──┬──> Paid ──┬──> ReadyToShip
//	                        │           ├──> Bagged
//	                        ├───────────┴──> ReadyToShip
//	                        └──────────────> Bagged
//
// Expected is the sole initial state: a parcel enters the system through a
// pre-alert before it can be physically received. Batch transit states
// (on truck, on vessel, arrived) belong to the Batch aggregate and never
// rewrite a parcel's own status.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Expected means the parcel was pre-alerted but has not physically arrived.
	Expected

	// Received means the physical item was logged at the hub and its fee computed.
	Received

	// Paid means the customer's payment has been confirmed.
	Paid

	// ReadyToShip means the parcel is assigned to a batch but not yet sealed in a bag.
	ReadyToShip

	// Bagged means the parcel is assigned to a batch and sealed under a bag/seal pair.
	Bagged
)

// getStatusStrings returns a map of Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "UNKNOWN",
		Expected:    "EXPECTED",
		Received:    "RECEIVED",
		Paid:        "PAID",
		ReadyToShip: "READY_TO_SHIP",
		Bagged:      "BAGGED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Expected:    "EXPECTED",
		Received:    "RECEIVED",
		Paid:        "PAID",
		ReadyToShip: "READY_TO_SHIP",
		Bagged:      "BAGGED",
	}
}

// StatusFromString parses a wire representation, e.g. "READY_TO_SHIP".
// Only valid statuses parse; anything else is rejected.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid parcel status", s),
	)
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("EXPECTED", "RECEIVED", ...).
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ValidateReceive checks if the parcel can be physically received from the
// current status, without performing the transition.
//
// Only Expected parcels can be received. A parcel already past Expected is
// rejected with its actual status in the error so the operator can decide
// the next action instead of double-billing a package.
func (s Status) ValidateReceive() error {
	if s != Expected {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to receive, only EXPECTED parcels can be received", s.String()),
		)
	}
	return nil
}

// Receive transitions the status to Received.
//
// Valid transitions:
//   - Expected -> Received
//
// Returns (0, error) if the parcel is in any other state, with the actual
// current status included in the error message.
func (s Status) Receive() (Status, error) {
	if err := s.ValidateReceive(); err != nil {
		return 0, err
	}

	return Received, nil
}

// MarkPaid transitions the status to Paid.
//
// Valid transitions:
//   - Received -> Paid
//
// Invalid transitions:
//   - Expected -> Paid (nothing to bill yet, no fee has been computed)
//   - Paid/ReadyToShip/Bagged -> Paid (already paid)
func (s Status) MarkPaid() (Status, error) {
	if s != Received {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to mark paid", s.String()),
		)
	}

	return Paid, nil
}

// ValidateAssignToBatch checks if the parcel can be assigned to a batch from
// the current status, without performing the transition.
//
// Valid statuses for batch assignment are Received and Paid.
func (s Status) ValidateAssignToBatch() error {
	if s != Received && s != Paid {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign to a batch", s.String()),
		)
	}
	return nil
}

// AssignToBatch transitions the status to Bagged when the parcel has been
// sealed, or ReadyToShip when it has not.
//
// Valid transitions:
//   - Received -> ReadyToShip / Bagged
//   - Paid -> ReadyToShip / Bagged
func (s Status) AssignToBatch(sealed bool) (Status, error) {
	if err := s.ValidateAssignToBatch(); err != nil {
		return 0, err
	}

	if sealed {
		return Bagged, nil
	}
	return ReadyToShip, nil
}

// IsBatchable reports whether parcels in this status may still be grouped
// into an outbound batch.
func (s Status) IsBatchable() bool {
	return s == Received || s == Paid
}
