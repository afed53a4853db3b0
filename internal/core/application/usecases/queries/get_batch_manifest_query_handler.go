package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"jastip/internal/core/domain/model/batch"
	"jastip/internal/core/domain/model/customer"
	"jastip/internal/core/domain/model/kernel"
	"jastip/internal/core/domain/model/parcel"
	"jastip/internal/core/domain/services"
	"jastip/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBatchManifestQueryHandler loads a batch with its parcels and owners and
// renders the manifest CSV through the domain builder, so downloads and
// on-demand rebuilds always produce the same bytes for the same data.
type GetBatchManifestQueryHandler struct {
	db      *gorm.DB
	builder services.ManifestBuilder
}

// NewGetBatchManifestQueryHandler creates a handler for manifest downloads.
func NewGetBatchManifestQueryHandler(
	db *gorm.DB,
	builder services.ManifestBuilder,
) GetBatchManifestQueryHandler {
	return GetBatchManifestQueryHandler{db: db, builder: builder}
}

// Handle renders the manifest for the requested batch.
func (h GetBatchManifestQueryHandler) Handle(
	ctx context.Context,
	query GetBatchManifestQuery,
) (GetBatchManifestQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBatchManifestQueryResponse{}, err
	}

	shipment, err := h.loadBatch(ctx, query.BatchCode())
	if err != nil {
		return GetBatchManifestQueryResponse{}, err
	}

	parcels, err := h.loadParcels(ctx, shipment.Code())
	if err != nil {
		return GetBatchManifestQueryResponse{}, err
	}

	customers, err := h.loadCustomers(ctx, shipment.Code())
	if err != nil {
		return GetBatchManifestQueryResponse{}, err
	}

	content, err := h.builder.Build(shipment, parcels, customers)
	if err != nil {
		return GetBatchManifestQueryResponse{}, err
	}

	return GetBatchManifestQueryResponse{
		Filename: h.builder.ManifestFilename(shipment),
		Content:  content,
	}, nil
}

func (h GetBatchManifestQueryHandler) loadBatch(ctx context.Context, code string) (*batch.Batch, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT code, etd, eta, status
		FROM batches
		WHERE code = ?
	`, code).Row()

	var (
		batchCode string
		etd       *time.Time
		eta       *time.Time
		status    int
	)
	err := row.Scan(&batchCode, &etd, &eta, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundErrorWithCause("batchCode", code, err)
	}
	if err != nil {
		return nil, err
	}

	return batch.RestoreBatch(batchCode, timeOrZero(etd), timeOrZero(eta), batch.Status(status))
}

func (h GetBatchManifestQueryHandler) loadParcels(ctx context.Context, code string) ([]*parcel.Parcel, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			customer_id,
			marketplace,
			declared_value,
			weight,
			length,
			width,
			height,
			rack,
			proof_photo_url,
			billable_weight,
			fee,
			paid_at,
			batch_code,
			bag_id,
			seal_number,
			status
		FROM parcels
		WHERE batch_code = ?
		ORDER BY created_at, id
	`, code).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parcels := make([]*parcel.Parcel, 0)

	for rows.Next() {
		var (
			id             uuid.UUID
			trackingNumber string
			customerID     uuid.UUID
			marketplace    string
			declaredValue  int64
			measurements   parcel.Measurements
			rack           string
			proofPhotoURL  string
			billableWeight float64
			fee            int64
			paidAt         *time.Time
			batchCode      string
			bagID          string
			sealNumber     string
			status         int
		)

		err = rows.Scan(
			&id,
			&trackingNumber,
			&customerID,
			&marketplace,
			&declaredValue,
			&measurements.Weight,
			&measurements.Length,
			&measurements.Width,
			&measurements.Height,
			&rack,
			&proofPhotoURL,
			&billableWeight,
			&fee,
			&paidAt,
			&batchCode,
			&bagID,
			&sealNumber,
			&status,
		)
		if err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		ownerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}

		aggregate, restoreErr := parcel.RestoreParcel(
			parcelID,
			trackingNumber,
			ownerID,
			marketplace,
			declaredValue,
			measurements,
			rack,
			proofPhotoURL,
			billableWeight,
			fee,
			paidAt,
			batchCode,
			bagID,
			sealNumber,
			parcel.Status(status),
		)
		if restoreErr != nil {
			return nil, restoreErr
		}
		parcels = append(parcels, aggregate)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}

func (h GetBatchManifestQueryHandler) loadCustomers(ctx context.Context, code string) ([]*customer.Customer, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT c.id, c.user_id, c.name, c.phone, c.address, c.region, c.code, c.address_locked
		FROM customers c
		JOIN parcels p ON p.customer_id = c.id
		WHERE p.batch_code = ?
	`, code).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]*customer.Customer, 0)

	for rows.Next() {
		var (
			id            uuid.UUID
			userID        string
			name          string
			phone         string
			address       string
			region        string
			customerCode  string
			addressLocked bool
		)

		err = rows.Scan(&id, &userID, &name, &phone, &address, &region, &customerCode, &addressLocked)
		if err != nil {
			return nil, err
		}

		ownerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		customerRegion := kernel.RegionUnknown
		if region != "" {
			customerRegion, err = kernel.RegionFromString(region)
			if err != nil {
				return nil, err
			}
		}

		aggregate, restoreErr := customer.RestoreCustomer(
			ownerID,
			userID,
			name,
			phone,
			address,
			customerRegion,
			customerCode,
			addressLocked,
		)
		if restoreErr != nil {
			return nil, restoreErr
		}
		customers = append(customers, aggregate)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
