package commands

import (
	"context"
	"errors"
	"fmt"

	"jastip/internal/core/domain/model/batch"
	"jastip/internal/pkg/errs"
)

// CreateBatchCommandHandler handles opening a shipping batch.
// Batch codes are the operator's shorthand for a departure, so a duplicate
// code is rejected instead of silently reusing the existing batch.
type CreateBatchCommandHandler struct {
	uowFactory BatchUoWFactory
}

// NewCreateBatchCommandHandler creates a handler for batch creation.
func NewCreateBatchCommandHandler(uowFactory BatchUoWFactory) CreateBatchCommandHandler {
	return CreateBatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the batch creation command.
func (h *CreateBatchCommandHandler) Handle(ctx context.Context, cmd CreateBatchCommand) error {
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

	_, err := batchRepo.Get(ctx, cmd.Code())
	if err == nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"code",
			fmt.Errorf("batch %s already exists", cmd.Code()),
		)
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := batch.NewBatch(cmd.Code(), cmd.ETD(), cmd.ETA())
	if err != nil {
		return err
	}

	if err = batchRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
