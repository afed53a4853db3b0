package ports

import (
	"context"

	"jastip/internal/core/domain/model/batch"
)

// BatchRepository defines the persistence contract for batch aggregates.
// Batches are keyed by their operator-facing code rather than a surrogate ID.
type BatchRepository interface {
	// Add persists a new batch aggregate to storage.
	// The batch must be valid and its code must not already exist.
	Add(ctx context.Context, aggregate *batch.Batch) error

	// Update persists changes to an existing batch aggregate.
	Update(ctx context.Context, aggregate *batch.Batch) error

	// Get retrieves a batch aggregate by its code.
	// Returns errs.ObjectNotFoundError when the code is unknown.
	Get(ctx context.Context, code string) (*batch.Batch, error)

	// GetAll retrieves every batch, most recently created first.
	GetAll(ctx context.Context) ([]*batch.Batch, error)

	// GetAllInOpenStatus retrieves batches still accepting parcels at the
	// warehouse. Used by the departure reminder job.
	GetAllInOpenStatus(ctx context.Context) ([]*batch.Batch, error)
}
