package ports

import (
	"context"

	"jastip/internal/core/domain/model/kernel"
	"jastip/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
// Tracking numbers are unique across the warehouse, so lookups by resi are
// first-class alongside lookups by ID.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	// The parcel must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	// The parcel must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByTrackingNumber retrieves a parcel by its courier tracking number.
	// Returns errs.ObjectNotFoundError when no parcel carries the number.
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*parcel.Parcel, error)

	// GetAllByCustomer retrieves every parcel owned by the given customer,
	// most recent first.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*parcel.Parcel, error)

	// GetAllByBatch retrieves every parcel assigned to the given batch code
	// in stable creation order.
	GetAllByBatch(ctx context.Context, batchCode string) ([]*parcel.Parcel, error)

	// GetAllInExpectedStatus retrieves every pre-alerted parcel that has not
	// arrived yet. Used by the warehouse intake screen.
	GetAllInExpectedStatus(ctx context.Context) ([]*parcel.Parcel, error)
}
