// Package batchrepo provides data transfer objects and mapping functions for
// batch persistence.
package batchrepo

import (
	"time"

	"jastip/internal/core/domain/model/batch"
)

// BatchDTO represents the database structure for persisting batch aggregates.
// The operator-chosen code is the primary key; there is no surrogate ID.
type BatchDTO struct {
	Code      string `gorm:"primaryKey"`
	ETD       *time.Time
	ETA       *time.Time
	Status    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for batch entities.
func (BatchDTO) TableName() string {
	return "batches"
}

// fromDomain converts a batch domain aggregate to its database representation.
// Zero schedule times persist as NULL.
func fromDomain(aggregate *batch.Batch) BatchDTO {
	return BatchDTO{
		Code:   aggregate.Code(),
		ETD:    nullableTime(aggregate.ETD()),
		ETA:    nullableTime(aggregate.ETA()),
		Status: int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to a batch domain aggregate.
func toDomain(dto BatchDTO) (*batch.Batch, error) {
	return batch.RestoreBatch(
		dto.Code,
		timeOrZero(dto.ETD),
		timeOrZero(dto.ETA),
		batch.Status(dto.Status),
	)
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
