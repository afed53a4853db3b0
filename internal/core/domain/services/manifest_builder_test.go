package services_test

import (
	"strings"
	"testing"
	"time"

	"jastip/internal/core/domain/model/batch"
	"jastip/internal/core/domain/model/customer"
	"jastip/internal/core/domain/model/kernel"
	"jastip/internal/core/domain/model/parcel"
	"jastip/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baggedParcel(t *testing.T, resi string, customerID kernel.UUID, batchCode, bagID, seal string, weight, billable float64, fee int64) *parcel.Parcel {
	t.Helper()

	p, err := parcel.RestoreParcel(
		kernel.NewUUID(),
		resi,
		customerID,
		"shopee",
		0,
		parcel.Measurements{Weight: weight},
		"R1",
		"",
		billable,
		fee,
		nil,
		batchCode,
		bagID,
		seal,
		parcel.Bagged,
	)
	require.NoError(t, err)
	return p
}

func TestManifestBuilder_Build(t *testing.T) {
	builder := services.NewManifestBuilder()

	shipment, err := batch.NewBatch("FLR1234", time.Now(), time.Time{})
	require.NoError(t, err)

	ownerID := kernel.NewUUID()
	owner, err := customer.RestoreCustomer(ownerID, "", "Maria Kelen", "0812", "Jl. Pelabuhan 1", kernel.RegionLarantuka, "FLRAB12", false)
	require.NoError(t, err)

	t.Run("should render header and one row per assigned parcel", func(t *testing.T) {
		parcels := []*parcel.Parcel{
			baggedParcel(t, "JD001", ownerID, "FLR1234", "BAG-1", "SEAL-1", 1.5, 1.5, 26000),
			baggedParcel(t, "JD002", ownerID, "FLR1234", "BAG-1", "SEAL-1", 2, 4.5, 68000),
		}

		content, err := builder.Build(shipment, parcels, []*customer.Customer{owner})

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(content, "\ufeff"), "should start with UTF-8 BOM")

		lines := strings.Split(strings.TrimPrefix(content, "\ufeff"), "\n")
		require.Len(t, lines, 4, "header, two rows, trailing newline")
		assert.Equal(t, "resi,customer_code,customer_name,marketplace,weight,billable_weight,rack,bag_id,seal_number,fee", lines[0])
		assert.Equal(t, "JD001,FLRAB12,Maria Kelen,shopee,1.5,1.5,R1,BAG-1,SEAL-1,26000", lines[1])
		assert.Equal(t, "JD002,FLRAB12,Maria Kelen,shopee,2,4.5,R1,BAG-1,SEAL-1,68000", lines[2])
		assert.Equal(t, "", lines[3])
	})

	t.Run("should skip parcels belonging to other batches", func(t *testing.T) {
		parcels := []*parcel.Parcel{
			baggedParcel(t, "JD001", ownerID, "FLR1234", "BAG-1", "SEAL-1", 1, 1, 20000),
			baggedParcel(t, "JD777", ownerID, "FLR9999", "BAG-9", "SEAL-9", 1, 1, 20000),
		}

		content, err := builder.Build(shipment, parcels, []*customer.Customer{owner})

		require.NoError(t, err)
		assert.Contains(t, content, "JD001")
		assert.NotContains(t, content, "JD777")
	})

	t.Run("should leave customer columns empty for a dangling parcel", func(t *testing.T) {
		orphanOwner := kernel.NewUUID()
		parcels := []*parcel.Parcel{
			baggedParcel(t, "JD003", orphanOwner, "FLR1234", "BAG-2", "SEAL-2", 1, 1, 20000),
		}

		content, err := builder.Build(shipment, parcels, []*customer.Customer{owner})

		require.NoError(t, err)
		assert.Contains(t, content, "JD003,,,shopee,1,1,R1,BAG-2,SEAL-2,20000\n")
	})

	t.Run("should render unset weights as empty cells", func(t *testing.T) {
		parcels := []*parcel.Parcel{
			baggedParcel(t, "JD004", ownerID, "FLR1234", "BAG-3", "SEAL-3", 0, 0, 8000),
		}

		content, err := builder.Build(shipment, parcels, []*customer.Customer{owner})

		require.NoError(t, err)
		assert.Contains(t, content, "JD004,FLRAB12,Maria Kelen,shopee,,,R1,BAG-3,SEAL-3,8000\n")
	})

	t.Run("should produce byte-identical output for repeated builds", func(t *testing.T) {
		parcels := []*parcel.Parcel{
			baggedParcel(t, "JD001", ownerID, "FLR1234", "BAG-1", "SEAL-1", 1.5, 1.5, 26000),
			baggedParcel(t, "JD002", ownerID, "FLR1234", "BAG-1", "SEAL-1", 2, 4.5, 68000),
		}

		first, err := builder.Build(shipment, parcels, []*customer.Customer{owner})
		require.NoError(t, err)
		second, err := builder.Build(shipment, parcels, []*customer.Customer{owner})
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("should render only the header for an empty batch", func(t *testing.T) {
		content, err := builder.Build(shipment, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, "\ufeffresi,customer_code,customer_name,marketplace,weight,billable_weight,rack,bag_id,seal_number,fee\n", content)
	})

	t.Run("should return error for nil batch", func(t *testing.T) {
		_, err := builder.Build(nil, nil, nil)

		assert.Error(t, err)
	})
}

func TestManifestBuilder_ManifestFilename(t *testing.T) {
	builder := services.NewManifestBuilder()

	shipment, err := batch.NewBatch("FLR1234", time.Now(), time.Time{})
	require.NoError(t, err)

	assert.Equal(t, "FLR1234-manifest.csv", builder.ManifestFilename(shipment))
}
