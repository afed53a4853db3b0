package commands

import (
	"errors"

	"jastip/internal/pkg/guard"
)

var (
	ErrProvisionCustomerCommandIsNotConstructed = errors.New(
		"ProvisionCustomerCommand must be created via NewProvisionCustomerCommand constructor",
	)
	ErrUserIDIsRequired = errors.New("user id is required")
)

// ProvisionCustomerCommand represents a portal user's first-login handshake.
// Ensures a customer row exists for the authenticated identity; repeated
// logins are no-ops.
type ProvisionCustomerCommand struct { //nolint:recvcheck //using for validation
	userID      string
	displayName string

	guard guard.ConstructorGuard
}

// NewProvisionCustomerCommand creates a command to provision a portal customer.
// The user ID comes from the identity provider and is required; the display
// name seeds the customer's profile and may be empty.
func NewProvisionCustomerCommand(userID, displayName string) (ProvisionCustomerCommand, error) {
	provisionCommand := ProvisionCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := provisionCommand.setUserID(userID); err != nil {
		return ProvisionCustomerCommand{}, err
	}

	provisionCommand.displayName = displayName
	return provisionCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ProvisionCustomerCommand) Validate() error {
	return c.guard.Validate(ErrProvisionCustomerCommandIsNotConstructed)
}

// UserID returns the identity-provider user id.
func (c ProvisionCustomerCommand) UserID() string {
	return c.userID
}

// DisplayName returns the name reported by the identity provider.
func (c ProvisionCustomerCommand) DisplayName() string {
	return c.displayName
}

func (c *ProvisionCustomerCommand) setUserID(userID string) error {
	if userID == "" {
		return ErrUserIDIsRequired
	}

	c.userID = userID
	return nil
}
