// Package ports defines repository and gateway interfaces for the jastip domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"jastip/internal/core/domain/model/customer"
	"jastip/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	// The customer must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate.
	// The customer must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Delete removes a customer aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a customer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByUserID retrieves the customer linked to an authentication identity.
	// Returns errs.ObjectNotFoundError when no customer carries the link.
	GetByUserID(ctx context.Context, userID string) (*customer.Customer, error)

	// GetByCode retrieves a customer by its short operator-facing code.
	GetByCode(ctx context.Context, code string) (*customer.Customer, error)

	// GetAll retrieves every customer ordered by name.
	GetAll(ctx context.Context) ([]*customer.Customer, error)
}
