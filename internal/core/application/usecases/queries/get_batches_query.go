package queries

import (
	"errors"
	"time"

	"jastip/internal/pkg/guard"
)

var ErrGetBatchesQueryIsNotConstructed = errors.New(
	"GetBatchesQuery must be created via NewGetBatchesQuery constructor",
)

// GetBatchesQuery retrieves every shipping batch with its parcel count for
// the operator's batch board.
type GetBatchesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetBatchesQuery creates a query to retrieve all batches.
func NewGetBatchesQuery() GetBatchesQuery {
	return GetBatchesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetBatchesQuery) Validate() error {
	return q.guard.Validate(ErrGetBatchesQueryIsNotConstructed)
}

// GetBatchesQueryResponse is one batch row in the board read model.
type GetBatchesQueryResponse struct {
	Code        string
	ETD         *time.Time
	ETA         *time.Time
	Status      string
	ParcelCount int
}
