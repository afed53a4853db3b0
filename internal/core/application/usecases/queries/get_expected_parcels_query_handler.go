package queries

import (
	"context"

	"jastip/internal/core/domain/model/kernel"
	"jastip/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetExpectedParcelsQueryHandler reads the inbound worklist from the database.
type GetExpectedParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetExpectedParcelsQueryHandler creates a handler for inbound worklist queries.
func NewGetExpectedParcelsQueryHandler(db *gorm.DB) GetExpectedParcelsQueryHandler {
	return GetExpectedParcelsQueryHandler{db: db}
}

// Handle executes the query, returning pre-alerted parcels oldest first so
// warehouse staff work through the backlog in arrival order.
func (h GetExpectedParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetExpectedParcelsQuery,
) ([]GetExpectedParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]GetExpectedParcelsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.tracking_number,
			p.marketplace,
			p.declared_value,
			COALESCE(c.name, '') AS customer_name,
			COALESCE(c.code, '') AS customer_code
		FROM parcels p
		LEFT JOIN customers c ON c.id = p.customer_id
		WHERE p.status = ?
		ORDER BY p.created_at, p.id
	`, int(parcel.Expected)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetExpectedParcelsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&row.TrackingNumber,
			&row.Marketplace,
			&row.DeclaredValue,
			&row.CustomerName,
			&row.CustomerCode,
		)
		if err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = parcelID
		parcels = append(parcels, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
