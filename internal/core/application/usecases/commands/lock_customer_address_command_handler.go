package commands

import (
	"context"
)

// LockCustomerAddressCommandHandler handles address locking. The operation is
// idempotent, so locking an already locked address succeeds.
type LockCustomerAddressCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewLockCustomerAddressCommandHandler creates a handler for address locking.
func NewLockCustomerAddressCommandHandler(uowFactory CustomerUoWFactory) LockCustomerAddressCommandHandler {
	return LockCustomerAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the lock command.
func (h *LockCustomerAddressCommandHandler) Handle(ctx context.Context, cmd LockCustomerAddressCommand) error {
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

	aggregate.LockAddress()

	if err = customerRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
