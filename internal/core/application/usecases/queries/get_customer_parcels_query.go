// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"jastip/internal/core/domain/model/kernel"
	"jastip/internal/pkg/guard"
)

var ErrGetCustomerParcelsQueryIsNotConstructed = errors.New(
	"GetCustomerParcelsQuery must be created via NewGetCustomerParcelsQuery constructor",
)

// GetCustomerParcelsQuery retrieves a customer's parcels for the portal
// "my parcels" screen, newest first.
type GetCustomerParcelsQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerParcelsQuery creates a query for one customer's parcels.
func NewGetCustomerParcelsQuery(customerID kernel.UUID) (GetCustomerParcelsQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerParcelsQuery{}, err
	}

	return GetCustomerParcelsQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerParcelsQueryIsNotConstructed)
}

// CustomerID returns the owner whose parcels are listed.
func (q GetCustomerParcelsQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetCustomerParcelsQueryResponse is one parcel row in the portal read model.
type GetCustomerParcelsQueryResponse struct {
	ID             kernel.UUID
	TrackingNumber string
	Marketplace    string
	Status         string
	BillableWeight float64
	Fee            int64
	BatchCode      string
	ProofPhotoURL  string
	PaidAt         *time.Time
}
