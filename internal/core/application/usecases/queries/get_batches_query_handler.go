package queries

import (
	"context"

	"jastip/internal/core/domain/model/batch"

	"gorm.io/gorm"
)

// GetBatchesQueryHandler reads the batch board from the database.
type GetBatchesQueryHandler struct {
	db *gorm.DB
}

// NewGetBatchesQueryHandler creates a handler for batch board queries.
func NewGetBatchesQueryHandler(db *gorm.DB) GetBatchesQueryHandler {
	return GetBatchesQueryHandler{db: db}
}

// Handle executes the query, returning batches ordered by estimated
// departure (unscheduled ones last, newest first among those) along with how
// many parcels each one holds.
func (h GetBatchesQueryHandler) Handle(
	ctx context.Context,
	query GetBatchesQuery,
) ([]GetBatchesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	batches := make([]GetBatchesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			b.code,
			b.etd,
			b.eta,
			b.status,
			COUNT(p.id) AS parcel_count
		FROM batches b
		LEFT JOIN parcels p ON p.batch_code = b.code
		GROUP BY b.code, b.etd, b.eta, b.status, b.created_at
		ORDER BY b.etd ASC NULLS LAST, b.created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetBatchesQueryResponse
		var status int

		err = rows.Scan(
			&row.Code,
			&row.ETD,
			&row.ETA,
			&status,
			&row.ParcelCount,
		)
		if err != nil {
			return nil, err
		}

		row.Status = batch.Status(status).String()
		batches = append(batches, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return batches, nil
}
