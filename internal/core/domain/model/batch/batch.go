package batch

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"jastip/internal/pkg/errs"
	"jastip/internal/pkg/guard"
)

// Domain errors for batch operations.
var (
	// ErrCodeIsRequired is returned when attempting to create a batch without a code.
	ErrCodeIsRequired = errs.NewValueIsRequiredError("code")
	// ErrBatchIsNotConstructed is returned when using an improperly initialized Batch.
	ErrBatchIsNotConstructed = errors.New("Batch must be created via NewBatch constructor")
)

// Batch represents one grouped outbound shipment from the origin hub to the
// destination region. It is an aggregate root identified by a human-chosen
// batch code; by convention the code embeds the departure date and a sequence
// number (e.g. "DLU-2025-09-17-B1"), but the structure is not enforced.
//
// Business rules:
//   - A batch starts Open and advances strictly forward through the transit
//     sequence Open -> OnTruck -> OnVessel -> Arrived
//   - Parcels may be assigned while the batch is in any non-terminal state;
//     an Arrived batch refuses assignment
//   - Member parcels reference the batch by code only (weak reference)
type Batch struct {
	// code is the human-chosen batch identifier, unique across batches
	code string
	// etd is the estimated departure date
	etd time.Time
	// eta is the estimated arrival date
	eta time.Time
	// status is the current transit state
	status Status

	guard guard.ConstructorGuard
}

// NewBatch creates a new Batch in Open status.
// The code is required; ETD and ETA are estimates and may be zero when the
// operator has not scheduled the departure yet, but a set ETA must not
// precede a set ETD.
func NewBatch(code string, etd, eta time.Time) (*Batch, error) {
	batch := &Batch{
		status: Open,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		batch.setCode(code),
		batch.setSchedule(etd, eta),
	); err != nil {
		return nil, err
	}

	return batch, nil
}

// RestoreBatch reconstructs a Batch aggregate from persistent storage.
func RestoreBatch(code string, etd, eta time.Time, status Status) (*Batch, error) {
	batch, err := NewBatch(code, etd, eta)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	batch.status = status
	return batch, nil
}

// Validate ensures the Batch instance was properly constructed through NewBatch.
func (b *Batch) Validate() error {
	if b == nil {
		return ErrBatchIsNotConstructed
	}
	return b.guard.Validate(ErrBatchIsNotConstructed)
}

// IsEqual compares two batches by their codes.
func (b *Batch) IsEqual(other *Batch) bool {
	return other != nil && b.code == other.code
}

// Code returns the human-chosen batch identifier.
func (b *Batch) Code() string {
	return b.code
}

// ETD returns the estimated departure date.
func (b *Batch) ETD() time.Time {
	return b.etd
}

// ETA returns the estimated arrival date.
func (b *Batch) ETA() time.Time {
	return b.eta
}

// Status returns the current transit state of the batch.
func (b *Batch) Status() Status {
	return b.status
}

// AcceptsParcels reports whether parcels may still be assigned to this batch.
func (b *Batch) AcceptsParcels() bool {
	return b.status.AcceptsParcels()
}

// Advance moves the batch one step forward in the transit sequence.
// Returns an error when the batch has already Arrived.
func (b *Batch) Advance() error {
	newStatus, err := b.status.Next()
	if err != nil {
		return err
	}

	b.status = newStatus
	return nil
}

// AdvanceTo moves the batch forward to the given target status, one legal
// step at a time. Moving backwards or to the current status is rejected.
func (b *Batch) AdvanceTo(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if target <= b.status {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("cannot move batch from %s back to %s", b.status.String(), target.String()),
		)
	}

	for b.status < target {
		if err := b.Advance(); err != nil {
			return err
		}
	}
	return nil
}

func (b *Batch) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return ErrCodeIsRequired
	}
	b.code = code
	return nil
}

func (b *Batch) setSchedule(etd, eta time.Time) error {
	if !etd.IsZero() && !eta.IsZero() && eta.Before(etd) {
		return errs.NewValueIsInvalidErrorWithCause(
			"eta",
			fmt.Errorf("arrival %s precedes departure %s", eta.Format(time.DateOnly), etd.Format(time.DateOnly)),
		)
	}
	b.etd = etd
	b.eta = eta
	return nil
}
