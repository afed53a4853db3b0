package customer

import (
	"errors"
	"strings"

	"jastip/internal/core/domain/model/kernel"
	"jastip/internal/pkg/errs"
	"jastip/internal/pkg/guard"
)

// Domain errors for customer operations.
var (
	// ErrNameIsRequired is returned when attempting to create a customer without a display name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCodeIsRequired is returned when attempting to create a customer without a label code.
	ErrCodeIsRequired = errs.NewValueIsRequiredError("code")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
	// ErrAddressIsLocked is returned when a non-privileged actor tries to change a locked address.
	ErrAddressIsLocked = errors.New("address is locked and can only be changed by an administrator")
)

// Customer represents a parcel recipient registered with the consolidation hub.
// It is an aggregate root that manages the recipient's identity, contact data,
// destination address, and the short label code printed on parcels.
//
// Key responsibilities:
//   - Managing customer identity (ID, display name, label code)
//   - Holding the destination address and region for outbound shipments
//   - Enforcing the address lock: once locked, address and region are immutable
//     for the customer and can only be changed by an administrator
//   - Linking the customer row to an external identity-provider account
//
// Business rules:
//   - Customer must have a valid UUID, non-empty name, and non-empty label code
//   - Region, when set, must be one of the closed set of destination regions
//   - Locking the address is one-way; only an administrator edit bypasses it
//
// Customers own parcels by weak reference only. Deleting a customer never
// cascades to parcels; the manifest tolerates the resulting dangling reference.
type Customer struct {
	// id uniquely identifies the customer
	id kernel.UUID
	// userID is the opaque identity-provider account linked to this customer, empty if none
	userID string
	// name is the display name printed on manifests and labels
	name string
	// phone is the customer's messaging number (WhatsApp)
	phone string
	// address is the destination street address, optional until the customer fills it in
	address string
	// region is the destination region, RegionUnknown until chosen
	region kernel.Region
	// code is the short human-memorable label code, unique across customers
	code string
	// addressLocked freezes address and region against self-service edits
	addressLocked bool

	guard guard.ConstructorGuard
}

// NewCustomer creates a new Customer with validation.
// Name and code are required; phone and address may be empty and the region
// starts unset. Use NewRandomCode to generate a label code when the operator
// leaves it blank.
func NewCustomer(id kernel.UUID, name, phone, address, code string) (*Customer, error) {
	customer := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
		customer.setCode(code),
	); err != nil {
		return nil, err
	}

	customer.phone = strings.TrimSpace(phone)
	customer.address = strings.TrimSpace(address)

	return customer, nil
}

// RestoreCustomer reconstructs a Customer aggregate from persistent storage.
// Unlike NewCustomer, it restores the full persisted state including the
// identity link, region, and the address lock flag.
func RestoreCustomer(
	id kernel.UUID,
	userID string,
	name string,
	phone string,
	address string,
	region kernel.Region,
	code string,
	addressLocked bool,
) (*Customer, error) {
	customer, err := NewCustomer(id, name, phone, address, code)
	if err != nil {
		return nil, err
	}

	if region != kernel.RegionUnknown {
		if err = region.Validate(); err != nil {
			return nil, err
		}
	}

	customer.userID = userID
	customer.region = region
	customer.addressLocked = addressLocked
	return customer, nil
}

// Validate ensures the Customer instance was properly constructed through NewCustomer.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// UserID returns the linked identity-provider account, empty if none.
func (c *Customer) UserID() string {
	return c.userID
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Phone returns the customer's messaging number.
func (c *Customer) Phone() string {
	return c.phone
}

// Address returns the destination street address.
func (c *Customer) Address() string {
	return c.address
}

// Region returns the destination region, RegionUnknown if not chosen yet.
func (c *Customer) Region() kernel.Region {
	return c.region
}

// Code returns the short label code.
func (c *Customer) Code() string {
	return c.code
}

// IsAddressLocked reports whether the address is frozen against self-service edits.
func (c *Customer) IsAddressLocked() bool {
	return c.addressLocked
}

// UpdateProfile changes the display name and messaging number.
// These fields are never gated by the address lock.
func (c *Customer) UpdateProfile(name, phone string) error {
	if err := c.setName(name); err != nil {
		return err
	}
	c.phone = strings.TrimSpace(phone)
	return nil
}

// UpdateAddress changes the destination address and region.
//
// Once the address is locked, only a privileged (administrator) edit may change
// these fields; any other attempt is rejected with ErrAddressIsLocked and
// leaves the aggregate unchanged.
//
// A set region must belong to the closed set of destination regions.
// Passing kernel.RegionUnknown clears the region.
func (c *Customer) UpdateAddress(address string, region kernel.Region, asAdmin bool) error {
	if c.addressLocked && !asAdmin {
		return ErrAddressIsLocked
	}

	if region != kernel.RegionUnknown {
		if err := region.Validate(); err != nil {
			return err
		}
	}

	c.address = strings.TrimSpace(address)
	c.region = region
	return nil
}

// LockAddress freezes the address and region against self-service edits.
// Locking is idempotent and one-way: the flag can only be cleared through
// a direct administrator action in storage.
func (c *Customer) LockAddress() {
	c.addressLocked = true
}

// LinkIdentity attaches an identity-provider account to this customer row.
// Used by the portal auto-provisioning flow on first login.
func (c *Customer) LinkIdentity(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errs.NewValueIsRequiredError("userID")
	}
	c.userID = userID
	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Customer) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return ErrCodeIsRequired
	}
	c.code = code
	return nil
}
