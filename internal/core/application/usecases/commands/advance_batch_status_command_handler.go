package commands

import (
	"context"
)

// AdvanceBatchStatusCommandHandler handles batch transit updates.
type AdvanceBatchStatusCommandHandler struct {
	uowFactory BatchUoWFactory
}

// NewAdvanceBatchStatusCommandHandler creates a handler for transit updates.
func NewAdvanceBatchStatusCommandHandler(uowFactory BatchUoWFactory) AdvanceBatchStatusCommandHandler {
	return AdvanceBatchStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transit update command.
// Intermediate statuses are walked through one by one, so jumping straight
// from Open to Arrived records the full journey.
func (h *AdvanceBatchStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceBatchStatusCommand) error {
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

	batchRepo := uow.BatchRepository()

	aggregate, err := batchRepo.Get(ctx, cmd.BatchCode())
	if err != nil {
		return err
	}

	if err = aggregate.AdvanceTo(cmd.Target()); err != nil {
		return err
	}

	if err = batchRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
