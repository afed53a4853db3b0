package queries

import (
	"errors"

	"jastip/internal/core/domain/model/kernel"
	"jastip/internal/pkg/errs"
	"jastip/internal/pkg/guard"
)

var ErrGetCustomerProfileQueryIsNotConstructed = errors.New(
	"GetCustomerProfileQuery must be created via NewGetCustomerProfileQuery constructor",
)

// GetCustomerProfileQuery retrieves the portal profile for an authenticated user.
type GetCustomerProfileQuery struct {
	userID string

	guard guard.ConstructorGuard
}

// NewGetCustomerProfileQuery creates a profile query for the given identity.
func NewGetCustomerProfileQuery(userID string) (GetCustomerProfileQuery, error) {
	if userID == "" {
		return GetCustomerProfileQuery{}, errs.NewValueIsRequiredError("userID")
	}

	return GetCustomerProfileQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// UserID returns the authentication identity whose profile is requested.
func (q GetCustomerProfileQuery) UserID() string {
	return q.userID
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerProfileQueryIsNotConstructed)
}

// GetCustomerProfileQueryResponse is the portal profile view.
type GetCustomerProfileQueryResponse struct {
	ID            kernel.UUID
	Name          string
	Phone         string
	Address       string
	Region        string
	Code          string
	AddressLocked bool
}
