package queries

import (
	"context"
	"database/sql"
	"errors"

	"jastip/internal/core/domain/model/kernel"
	"jastip/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerProfileQueryHandler reads a customer profile by its linked
// authentication identity.
type GetCustomerProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerProfileQueryHandler creates a handler for portal profile queries.
func NewGetCustomerProfileQueryHandler(db *gorm.DB) GetCustomerProfileQueryHandler {
	return GetCustomerProfileQueryHandler{db: db}
}

// Handle executes the query.
func (h GetCustomerProfileQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerProfileQuery,
) (GetCustomerProfileQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomerProfileQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, name, phone, address, region, code, address_locked
		FROM customers
		WHERE user_id = ?
	`, query.UserID()).Row()

	var response GetCustomerProfileQueryResponse
	var id uuid.UUID

	err := row.Scan(
		&id,
		&response.Name,
		&response.Phone,
		&response.Address,
		&response.Region,
		&response.Code,
		&response.AddressLocked,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetCustomerProfileQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"userID", query.UserID(), err,
		)
	}
	if err != nil {
		return GetCustomerProfileQueryResponse{}, err
	}

	customerID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetCustomerProfileQueryResponse{}, err
	}
	response.ID = customerID

	return response, nil
}
