package services_test

import (
	"testing"

	"jastip/internal/core/domain/model/parcel"
	"jastip/internal/core/domain/model/tariff"
	"jastip/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateCalculator_Calculate(t *testing.T) {
	calculator := services.NewRateCalculator()
	defaultTariff := tariff.DefaultTariff()

	t.Run("should charge by actual weight when dimensions are missing", func(t *testing.T) {
		quote, err := calculator.Calculate(parcel.Measurements{Weight: 1}, defaultTariff)

		require.NoError(t, err)
		assert.Equal(t, float64(0), quote.VolumetricWeight)
		assert.Equal(t, float64(1), quote.BillableWeight)
		// 5000 + 3000 + 1*12000
		assert.Equal(t, int64(20000), quote.TotalFee)
	})

	t.Run("should charge by volumetric weight when it exceeds actual", func(t *testing.T) {
		quote, err := calculator.Calculate(parcel.Measurements{Length: 30, Width: 30, Height: 30}, defaultTariff)

		require.NoError(t, err)
		assert.Equal(t, 4.5, quote.VolumetricWeight)
		assert.Equal(t, 4.5, quote.BillableWeight)
		// 5000 + 3000 + ceil(4.5)*12000
		assert.Equal(t, int64(68000), quote.TotalFee)
	})

	t.Run("should keep actual weight when it exceeds volumetric", func(t *testing.T) {
		quote, err := calculator.Calculate(parcel.Measurements{Weight: 10, Length: 10, Width: 10, Height: 10}, defaultTariff)

		require.NoError(t, err)
		assert.InDelta(t, 10.0/60.0, quote.VolumetricWeight, 1e-9)
		assert.Equal(t, float64(10), quote.BillableWeight)
		assert.Equal(t, int64(128000), quote.TotalFee)
	})

	t.Run("should ignore volumetric side when any dimension is missing", func(t *testing.T) {
		quote, err := calculator.Calculate(parcel.Measurements{Weight: 2, Length: 100, Width: 100}, defaultTariff)

		require.NoError(t, err)
		assert.Equal(t, float64(0), quote.VolumetricWeight)
		assert.Equal(t, float64(2), quote.BillableWeight)
		assert.Equal(t, int64(32000), quote.TotalFee)
	})

	t.Run("should round billable weight up to the next whole kilogram", func(t *testing.T) {
		quote, err := calculator.Calculate(parcel.Measurements{Weight: 1.2}, defaultTariff)

		require.NoError(t, err)
		assert.Equal(t, 1.2, quote.BillableWeight)
		// ceil(1.2) = 2 chargeable kilograms: 5000 + 3000 + 2*12000
		assert.Equal(t, int64(32000), quote.TotalFee)
	})

	t.Run("should charge only fixed fees for a weightless parcel", func(t *testing.T) {
		quote, err := calculator.Calculate(parcel.Measurements{}, defaultTariff)

		require.NoError(t, err)
		assert.Equal(t, float64(0), quote.BillableWeight)
		assert.Equal(t, int64(8000), quote.TotalFee)
	})

	t.Run("should use the tariff it is given", func(t *testing.T) {
		custom, err := tariff.NewTariff(1000, 500, 100, 5000)
		require.NoError(t, err)

		quote, err := calculator.Calculate(parcel.Measurements{Weight: 3}, custom)

		require.NoError(t, err)
		assert.Equal(t, int64(1800), quote.TotalFee)
	})

	t.Run("should return error for negative measurements", func(t *testing.T) {
		_, err := calculator.Calculate(parcel.Measurements{Weight: -1}, defaultTariff)

		assert.Error(t, err)
	})

	t.Run("should return error for unconstructed tariff", func(t *testing.T) {
		_, err := calculator.Calculate(parcel.Measurements{Weight: 1}, tariff.Tariff{})

		assert.Error(t, err)
	})
}
