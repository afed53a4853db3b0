package parcel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"jastip/internal/core/domain/model/kernel"
	"jastip/internal/pkg/errs"
	"jastip/internal/pkg/guard"
)

// Domain errors for parcel operations.
var (
	// ErrTrackingNumberIsRequired is returned when attempting to pre-alert without a tracking number.
	ErrTrackingNumberIsRequired = errs.NewValueIsRequiredError("trackingNumber")
	// ErrParcelIsNotConstructed is returned when using an improperly initialized Parcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")
	// ErrBatchCodeIsRequired is returned when assigning a parcel to a batch without a batch code.
	ErrBatchCodeIsRequired = errs.NewValueIsRequiredError("batchCode")
)

// Measurements holds the physical attributes logged at receipt.
// Weights are kilograms, dimensions are centimeters. Zero means absent;
// absent dimensions simply contribute no volumetric weight.
type Measurements struct {
	Weight float64
	Length float64
	Width  float64
	Height float64
}

// Validate rejects negative measurements. Absent (zero) values are legal.
func (m Measurements) Validate() error {
	for name, v := range map[string]float64{
		"weight": m.Weight,
		"length": m.Length,
		"width":  m.Width,
		"height": m.Height,
	} {
		if v < 0 {
			return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is negative", v))
		}
	}
	return nil
}

// Parcel represents one shipped item moving through the consolidation hub.
// It is an aggregate root that manages the parcel's identity, billing data,
// and its lifecycle from pre-alert to bagging.
//
// Key responsibilities:
//   - Managing parcel identity (ID, carrier tracking number)
//   - Enforcing the lifecycle state machine (see Status)
//   - Holding measurements, the computed billable weight and fee
//   - Tracking payment and batch/bag/seal assignment
//
// Business rules:
//   - A parcel enters the system only through a pre-alert (Expected status);
//     receipt of an unknown tracking number must be rejected upstream rather
//     than silently creating a record
//   - Billable weight and fee are only populated at receipt or later
//   - A parcel cannot be batch-assigned before it is received
//   - No transition is partially applied: a failed transition leaves every
//     field unchanged
type Parcel struct {
	// id uniquely identifies the parcel
	id kernel.UUID
	// trackingNumber is the external carrier identifier (resi), unique system-wide
	trackingNumber string
	// customerID references the owning customer (weak reference)
	customerID kernel.UUID
	// marketplace is the declared origin marketplace, free-form
	marketplace string
	// declaredValue is the declared monetary value in minor currency units
	declaredValue int64
	// measurements are the physical attributes logged at receipt
	measurements Measurements
	// rack is the storage slot assigned at receipt
	rack string
	// proofPhotoURL is an opaque reference to the proof-of-receipt image
	proofPhotoURL string
	// billableWeight is max(actual, volumetric) weight, set at receipt
	billableWeight float64
	// fee is the computed billable fee in minor currency units, set at receipt
	fee int64
	// paidAt is the payment confirmation timestamp, nil until paid
	paidAt *time.Time
	// batchCode references the outbound batch, empty until assigned
	batchCode string
	// bagID and sealNumber identify the sealed bag, empty unless bagged
	bagID      string
	sealNumber string
	// status is the current lifecycle state
	status Status

	guard guard.ConstructorGuard
}

// NewParcel creates a new pre-alerted Parcel in Expected status.
// This is the only entry point into the lifecycle: the tracking number and the
// owning customer must be known before the physical item shows up.
func NewParcel(id kernel.UUID, trackingNumber string, customerID kernel.UUID, marketplace string, declaredValue int64) (*Parcel, error) {
	parcel := &Parcel{
		status: Expected,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		parcel.setID(id),
		parcel.setTrackingNumber(trackingNumber),
		parcel.setCustomerID(customerID),
		parcel.setDeclaredValue(declaredValue),
	); err != nil {
		return nil, err
	}

	parcel.marketplace = strings.TrimSpace(marketplace)
	return parcel, nil
}

// RestoreParcel reconstructs a Parcel aggregate from persistent storage.
// Unlike NewParcel it accepts any valid persisted status along with the
// receipt, payment, and batching fields.
func RestoreParcel(
	id kernel.UUID,
	trackingNumber string,
	customerID kernel.UUID,
	marketplace string,
	declaredValue int64,
	measurements Measurements,
	rack string,
	proofPhotoURL string,
	billableWeight float64,
	fee int64,
	paidAt *time.Time,
	batchCode string,
	bagID string,
	sealNumber string,
	status Status,
) (*Parcel, error) {
	parcel, err := NewParcel(id, trackingNumber, customerID, marketplace, declaredValue)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(status.Validate(), measurements.Validate()); err != nil {
		return nil, err
	}

	parcel.measurements = measurements
	parcel.rack = rack
	parcel.proofPhotoURL = proofPhotoURL
	parcel.billableWeight = billableWeight
	parcel.fee = fee
	parcel.paidAt = paidAt
	parcel.batchCode = batchCode
	parcel.bagID = bagID
	parcel.sealNumber = sealNumber
	parcel.status = status
	return parcel, nil
}

// Validate ensures the Parcel instance was properly constructed through NewParcel.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// TrackingNumber returns the external carrier identifier (resi).
func (p *Parcel) TrackingNumber() string {
	return p.trackingNumber
}

// CustomerID returns the owning customer reference.
func (p *Parcel) CustomerID() kernel.UUID {
	return p.customerID
}

// Marketplace returns the declared origin marketplace.
func (p *Parcel) Marketplace() string {
	return p.marketplace
}

// DeclaredValue returns the declared monetary value in minor currency units.
func (p *Parcel) DeclaredValue() int64 {
	return p.declaredValue
}

// Measurements returns the physical attributes logged at receipt.
func (p *Parcel) Measurements() Measurements {
	return p.measurements
}

// Rack returns the storage slot assigned at receipt.
func (p *Parcel) Rack() string {
	return p.rack
}

// ProofPhotoURL returns the opaque proof-of-receipt image reference.
func (p *Parcel) ProofPhotoURL() string {
	return p.proofPhotoURL
}

// BillableWeight returns max(actual, volumetric) weight.
// Zero until the parcel has been received.
func (p *Parcel) BillableWeight() float64 {
	return p.billableWeight
}

// Fee returns the computed billable fee in minor currency units.
// Zero until the parcel has been received.
func (p *Parcel) Fee() int64 {
	return p.fee
}

// PaidAt returns the payment confirmation timestamp, nil until paid.
func (p *Parcel) PaidAt() *time.Time {
	return p.paidAt
}

// BatchCode returns the assigned outbound batch code, empty until assigned.
func (p *Parcel) BatchCode() string {
	return p.batchCode
}

// BagID returns the bag identifier, empty unless bagged.
func (p *Parcel) BagID() string {
	return p.bagID
}

// SealNumber returns the bag seal number, empty unless bagged.
func (p *Parcel) SealNumber() string {
	return p.sealNumber
}

// Status returns the current lifecycle state of the parcel.
func (p *Parcel) Status() Status {
	return p.status
}

// Receive logs the physical arrival of the parcel and stores the billing
// outcome computed by the rate engine.
//
// This method enforces the following business rules:
//   - The parcel must be in Expected status (pre-alerted, not yet received)
//   - Measurements must be non-negative; zero values mean absent
//   - Billable weight and fee are populated here and nowhere earlier
//
// Either every receipt field is updated together or, on a violated
// precondition, none are.
func (p *Parcel) Receive(m Measurements, rack, proofPhotoURL string, billableWeight float64, fee int64) error {
	if err := m.Validate(); err != nil {
		return err
	}

	newStatus, err := p.status.Receive()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.measurements = m
	p.rack = strings.TrimSpace(rack)
	p.proofPhotoURL = proofPhotoURL
	p.billableWeight = billableWeight
	p.fee = fee
	return nil
}

// MarkPaid confirms the customer's payment and stamps the payment timestamp.
// The parcel must be in Received status.
func (p *Parcel) MarkPaid(at time.Time) error {
	newStatus, err := p.status.MarkPaid()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.paidAt = &at
	return nil
}

// AssignToBatch places the parcel into an outbound batch.
//
// The parcel must be in Received or Paid status. When a seal number is
// supplied the parcel transitions to Bagged and the bag/seal identifiers are
// stored; otherwise it transitions to ReadyToShip. Whether the batch itself
// exists and still accepts parcels is the caller's check: this aggregate only
// knows the code.
func (p *Parcel) AssignToBatch(batchCode, bagID, sealNumber string) error {
	batchCode = strings.TrimSpace(batchCode)
	if batchCode == "" {
		return ErrBatchCodeIsRequired
	}

	sealNumber = strings.TrimSpace(sealNumber)
	newStatus, err := p.status.AssignToBatch(sealNumber != "")
	if err != nil {
		return err
	}

	p.status = newStatus
	p.batchCode = batchCode
	p.bagID = strings.TrimSpace(bagID)
	p.sealNumber = sealNumber
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setTrackingNumber(trackingNumber string) error {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return ErrTrackingNumberIsRequired
	}
	p.trackingNumber = trackingNumber
	return nil
}

func (p *Parcel) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	p.customerID = customerID
	return nil
}

func (p *Parcel) setDeclaredValue(declaredValue int64) error {
	if declaredValue < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"declaredValue",
			fmt.Errorf("%d is negative", declaredValue),
		)
	}
	p.declaredValue = declaredValue
	return nil
}
