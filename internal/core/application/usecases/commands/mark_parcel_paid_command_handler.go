package commands

import (
	"context"
	"time"
)

// MarkParcelPaidCommandHandler handles payment confirmation.
// The clock is injected so tests control the payment timestamp.
type MarkParcelPaidCommandHandler struct {
	uowFactory ParcelUoWFactory
	now        func() time.Time
}

// NewMarkParcelPaidCommandHandler creates a handler for payment confirmation.
// Pass nil for now to use the wall clock.
func NewMarkParcelPaidCommandHandler(uowFactory ParcelUoWFactory, now func() time.Time) MarkParcelPaidCommandHandler {
	if now == nil {
		now = time.Now
	}
	return MarkParcelPaidCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the payment command.
// Only a Received parcel can be paid; any other status is rejected by the
// aggregate with an error naming the current status.
func (h *MarkParcelPaidCommandHandler) Handle(ctx context.Context, cmd MarkParcelPaidCommand) error {
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

	parcelRepo := uow.ParcelRepository()

	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = aggregate.MarkPaid(h.now()); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
