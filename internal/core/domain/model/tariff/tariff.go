// Package tariff provides the pricing configuration value object for
// billable-weight fee computation.
//
// A Tariff is static, operator-edited configuration: it is loaded once at
// startup and treated as read-only process-wide state. All monetary amounts
// are integers in the origin currency's minor units.
package tariff

import (
	"errors"
	"fmt"

	"jastip/internal/pkg/errs"
	"jastip/internal/pkg/guard"
)

// Default tariff values. These match the operator's current price list and
// are used when no overrides are supplied through configuration.
const (
	DefaultBaseFee           = 5000
	DefaultServiceFee        = 3000
	DefaultPerKgRate         = 12000
	DefaultVolumetricDivisor = 6000
)

// ErrTariffIsNotConstructed is returned when a Tariff instance was not created
// through the NewTariff factory method.
var ErrTariffIsNotConstructed = errors.New("Tariff must be created via NewTariff constructor")

// Tariff holds the fixed pricing parameters used to turn a billable weight
// into a fee.
//
// Invariants:
//   - BaseFee, ServiceFee, and PerKgRate are non-negative
//   - VolumetricDivisor is strictly positive (it is a divisor)
type Tariff struct {
	baseFee           int64
	serviceFee        int64
	perKgRate         int64
	volumetricDivisor int64

	guard guard.ConstructorGuard
}

// NewTariff creates a validated Tariff.
// All fees must be non-negative; the volumetric divisor must be positive.
func NewTariff(baseFee, serviceFee, perKgRate, volumetricDivisor int64) (Tariff, error) {
	t := Tariff{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setFee("baseFee", &t.baseFee, baseFee),
		t.setFee("serviceFee", &t.serviceFee, serviceFee),
		t.setFee("perKgRate", &t.perKgRate, perKgRate),
		t.setVolumetricDivisor(volumetricDivisor),
	); err != nil {
		return Tariff{}, err
	}

	return t, nil
}

// DefaultTariff returns the tariff built from the default price list.
func DefaultTariff() Tariff {
	t, err := NewTariff(DefaultBaseFee, DefaultServiceFee, DefaultPerKgRate, DefaultVolumetricDivisor)
	if err != nil {
		// The defaults are compile-time constants that satisfy every invariant.
		panic(err)
	}
	return t
}

// Validate ensures the tariff was created through the constructor.
func (t Tariff) Validate() error {
	return t.guard.Validate(ErrTariffIsNotConstructed)
}

// BaseFee returns the flat handling fee in minor currency units.
func (t Tariff) BaseFee() int64 {
	return t.baseFee
}

// ServiceFee returns the consolidation service fee in minor currency units.
func (t Tariff) ServiceFee() int64 {
	return t.serviceFee
}

// PerKgRate returns the price per billable kilogram in minor currency units.
func (t Tariff) PerKgRate() int64 {
	return t.perKgRate
}

// VolumetricDivisor returns the divisor converting cubic centimeters to
// volumetric kilograms.
func (t Tariff) VolumetricDivisor() int64 {
	return t.volumetricDivisor
}

func (t *Tariff) setFee(name string, field *int64, value int64) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%d is negative", value))
	}
	*field = value
	return nil
}

func (t *Tariff) setVolumetricDivisor(divisor int64) error {
	if divisor <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"volumetricDivisor",
			fmt.Errorf("%d is not greater than 0", divisor),
		)
	}
	t.volumetricDivisor = divisor
	return nil
}
