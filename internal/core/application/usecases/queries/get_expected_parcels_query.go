package queries

import (
	"errors"

	"jastip/internal/core/domain/model/kernel"
	"jastip/internal/pkg/guard"
)

var ErrGetExpectedParcelsQueryIsNotConstructed = errors.New(
	"GetExpectedParcelsQuery must be created via NewGetExpectedParcelsQuery constructor",
)

// GetExpectedParcelsQuery retrieves the inbound worklist: parcels customers
// have pre-alerted that the warehouse has not received yet.
type GetExpectedParcelsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetExpectedParcelsQuery creates a query for the inbound worklist.
func NewGetExpectedParcelsQuery() GetExpectedParcelsQuery {
	return GetExpectedParcelsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetExpectedParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetExpectedParcelsQueryIsNotConstructed)
}

// GetExpectedParcelsQueryResponse is one row of the inbound worklist.
// Customer columns are empty when the owner was deleted.
type GetExpectedParcelsQueryResponse struct {
	ID             kernel.UUID
	TrackingNumber string
	Marketplace    string
	DeclaredValue  int64
	CustomerName   string
	CustomerCode   string
}
