// Package customerrepo provides data transfer objects and mapping functions for
// customer persistence. It implements the repository pattern for the customer
// domain aggregate, handling the conversion between domain entities and database
// representations.
package customerrepo

import (
	"time"

	"jastip/internal/core/domain/model/customer"
	"jastip/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customer aggregates.
// The label code and identity-provider link are both unique lookup keys.
type CustomerDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        string    `gorm:"index"`
	Name          string
	Phone         string
	Address       string
	Region        string
	Code          string `gorm:"uniqueIndex"`
	AddressLocked bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain aggregate to its database representation.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:            aggregate.ID().Bytes(),
		UserID:        aggregate.UserID(),
		Name:          aggregate.Name(),
		Phone:         aggregate.Phone(),
		Address:       aggregate.Address(),
		Region:        aggregate.Region().String(),
		Code:          aggregate.Code(),
		AddressLocked: aggregate.IsAddressLocked(),
	}
}

// toDomain converts a database DTO to a customer domain aggregate.
// An empty region column restores as "region not chosen yet".
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	region := kernel.RegionUnknown
	if dto.Region != "" {
		region, err = kernel.RegionFromString(dto.Region)
		if err != nil {
			return nil, err
		}
	}

	return customer.RestoreCustomer(
		id,
		dto.UserID,
		dto.Name,
		dto.Phone,
		dto.Address,
		region,
		dto.Code,
		dto.AddressLocked,
	)
}
