package services

import (
	"math"

	"jastip/internal/core/domain/model/parcel"
	"jastip/internal/core/domain/model/tariff"
)

// Quote is the billing outcome for a single parcel. It carries both the
// weights that went into the decision and the final fee, so callers can
// show the customer how the price was derived.
type Quote struct {
	// VolumetricWeight is (length * width * height) / divisor, in kg.
	// Zero when any dimension is missing.
	VolumetricWeight float64

	// BillableWeight is the greater of the actual and volumetric weights, in kg.
	BillableWeight float64

	// TotalFee is the full charge in minor currency units.
	TotalFee int64
}

// RateCalculator is a domain service that prices parcels against a tariff.
//
// Business rules:
//   - Volumetric weight applies only when all three dimensions are known;
//     a missing dimension disables the volumetric side entirely.
//   - The customer pays for the larger of actual and volumetric weight.
//   - Billable weight is rounded up to the next whole kilogram before the
//     per-kg rate is applied.
//   - Base and service fees are charged even for a weightless parcel.
//
// Example usage:
//
//	calculator := NewRateCalculator()
//	quote, err := calculator.Calculate(parcel.Measurements{Weight: 2.4}, tariff.DefaultTariff())
//	if err != nil {
//	    // Handle invalid measurements or tariff
//	    return
//	}
//	// quote.TotalFee is ready for invoicing
type RateCalculator struct{}

// NewRateCalculator creates a new RateCalculator instance.
func NewRateCalculator() RateCalculator {
	return RateCalculator{}
}

// Calculate prices the given measurements against the tariff and returns a Quote.
//
// Returns an error when the measurements contain negative values or the
// tariff is not constructed properly.
func (r RateCalculator) Calculate(m parcel.Measurements, t tariff.Tariff) (Quote, error) {
	if err := m.Validate(); err != nil {
		return Quote{}, err
	}

	if err := t.Validate(); err != nil {
		return Quote{}, err
	}

	volumetric := r.volumetricWeight(m, t)
	billable := math.Max(m.Weight, volumetric)
	fee := t.BaseFee() + t.ServiceFee() + int64(math.Ceil(billable))*t.PerKgRate()

	return Quote{
		VolumetricWeight: volumetric,
		BillableWeight:   billable,
		TotalFee:         fee,
	}, nil
}

// volumetricWeight converts dimensions to kilograms using the tariff divisor.
// Any missing dimension makes the volumetric weight zero.
func (r RateCalculator) volumetricWeight(m parcel.Measurements, t tariff.Tariff) float64 {
	if m.Length == 0 || m.Width == 0 || m.Height == 0 {
		return 0
	}

	return m.Length * m.Width * m.Height / float64(t.VolumetricDivisor())
}
