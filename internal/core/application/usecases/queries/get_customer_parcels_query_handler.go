package queries

import (
	"context"

	"jastip/internal/core/domain/model/kernel"
	"jastip/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerParcelsQueryHandler reads a customer's parcels straight from the
// database. Uses direct SQL for optimal read performance in the CQRS pattern.
type GetCustomerParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerParcelsQueryHandler creates a handler for the portal parcel list.
func NewGetCustomerParcelsQueryHandler(db *gorm.DB) GetCustomerParcelsQueryHandler {
	return GetCustomerParcelsQueryHandler{db: db}
}

// Handle executes the query, returning parcel rows newest first.
func (h GetCustomerParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerParcelsQuery,
) ([]GetCustomerParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]GetCustomerParcelsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			marketplace,
			status,
			billable_weight,
			fee,
			batch_code,
			proof_photo_url,
			paid_at
		FROM parcels
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetCustomerParcelsQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&row.TrackingNumber,
			&row.Marketplace,
			&status,
			&row.BillableWeight,
			&row.Fee,
			&row.BatchCode,
			&row.ProofPhotoURL,
			&row.PaidAt,
		)
		if err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = parcelID
		row.Status = parcel.Status(status).String()
		parcels = append(parcels, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
