// Package parcelrepo provides data transfer objects and mapping functions for
// parcel persistence. It implements the repository pattern for the parcel
// domain aggregate, handling the conversion between domain entities and
// database representations.
package parcelrepo

import (
	"time"

	"jastip/internal/core/domain/model/kernel"
	"jastip/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// The tracking number is the warehouse's lookup key and must be unique; the
// batch code is indexed for manifest queries.
type ParcelDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingNumber string    `gorm:"uniqueIndex"`
	CustomerID     uuid.UUID `gorm:"type:uuid;index"`
	Marketplace    string
	DeclaredValue  int64
	Weight         float64
	Length         float64
	Width          float64
	Height         float64
	Rack           string
	ProofPhotoURL  string
	BillableWeight float64
	Fee            int64
	PaidAt         *time.Time
	BatchCode      string `gorm:"index"`
	BagID          string
	SealNumber     string
	Status         int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	m := aggregate.Measurements()

	return ParcelDTO{
		ID:             aggregate.ID().Bytes(),
		TrackingNumber: aggregate.TrackingNumber(),
		CustomerID:     aggregate.CustomerID().Bytes(),
		Marketplace:    aggregate.Marketplace(),
		DeclaredValue:  aggregate.DeclaredValue(),
		Weight:         m.Weight,
		Length:         m.Length,
		Width:          m.Width,
		Height:         m.Height,
		Rack:           aggregate.Rack(),
		ProofPhotoURL:  aggregate.ProofPhotoURL(),
		BillableWeight: aggregate.BillableWeight(),
		Fee:            aggregate.Fee(),
		PaidAt:         aggregate.PaidAt(),
		BatchCode:      aggregate.BatchCode(),
		BagID:          aggregate.BagID(),
		SealNumber:     aggregate.SealNumber(),
		Status:         int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id,
		dto.TrackingNumber,
		customerID,
		dto.Marketplace,
		dto.DeclaredValue,
		parcel.Measurements{
			Weight: dto.Weight,
			Length: dto.Length,
			Width:  dto.Width,
			Height: dto.Height,
		},
		dto.Rack,
		dto.ProofPhotoURL,
		dto.BillableWeight,
		dto.Fee,
		dto.PaidAt,
		dto.BatchCode,
		dto.BagID,
		dto.SealNumber,
		parcel.Status(dto.Status),
	)
}
