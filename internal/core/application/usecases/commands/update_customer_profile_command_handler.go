package commands

import (
	"context"
)

// UpdateCustomerProfileCommandHandler handles customer profile updates.
// Delegates the address-lock rules to the aggregate: a locked address rejects
// changes unless the command carries the admin flag.
type UpdateCustomerProfileCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewUpdateCustomerProfileCommandHandler creates a handler for profile updates.
func NewUpdateCustomerProfileCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerProfileCommandHandler {
	return UpdateCustomerProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the profile update command.
func (h *UpdateCustomerProfileCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()

	aggregate, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateProfile(cmd.Name(), cmd.Phone()); err != nil {
		return err
	}

	if cmd.UpdateAddress() {
		if err = aggregate.UpdateAddress(cmd.Address(), cmd.Region(), cmd.AsAdmin()); err != nil {
			return err
		}
	}

	if err = customerRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
