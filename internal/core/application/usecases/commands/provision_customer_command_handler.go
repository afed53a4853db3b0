package commands

import (
	"context"
	"errors"

	"jastip/internal/core/domain/model/customer"
	"jastip/internal/core/domain/model/kernel"
	"jastip/internal/pkg/errs"
)

// defaultPortalCustomerName is used when the identity provider reports no
// display name for a first-time portal login.
const defaultPortalCustomerName = "Pelanggan Baru"

// ProvisionCustomerCommandHandler ensures an authenticated portal user has a
// customer record. The operation is idempotent: a second login with the same
// user ID finds the existing record and changes nothing.
type ProvisionCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewProvisionCustomerCommandHandler creates a handler for portal provisioning.
func NewProvisionCustomerCommandHandler(uowFactory CustomerUoWFactory) ProvisionCustomerCommandHandler {
	return ProvisionCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the provisioning command.
// Looks up the customer by identity link; when absent, creates one with a
// fresh label code and the identity's display name.
func (h *ProvisionCustomerCommandHandler) Handle(ctx context.Context, cmd ProvisionCustomerCommand) error {
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

	_, err := customerRepo.GetByUserID(ctx, cmd.UserID())
	if err == nil {
		return uow.Commit(ctx)
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	name := cmd.DisplayName()
	if name == "" {
		name = defaultPortalCustomerName
	}

	aggregate, err := customer.NewCustomer(
		kernel.NewUUID(),
		name,
		"",
		"",
		customer.NewRandomCode(customer.DefaultCodePrefix),
	)
	if err != nil {
		return err
	}

	if err = aggregate.LinkIdentity(cmd.UserID()); err != nil {
		return err
	}

	if err = customerRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
