package commands

import (
	"context"
	"errors"
	"fmt"

	"jastip/internal/core/domain/model/parcel"
	"jastip/internal/pkg/errs"
)

// SubmitPreAlertCommandHandler handles parcel pre-alerts.
// Verifies the owning customer exists and the tracking number is not already
// registered, then creates the parcel in Expected status.
type SubmitPreAlertCommandHandler struct {
	uowFactory IntakeUoWFactory
}

// NewSubmitPreAlertCommandHandler creates a handler for pre-alert submission.
func NewSubmitPreAlertCommandHandler(uowFactory IntakeUoWFactory) SubmitPreAlertCommandHandler {
	return SubmitPreAlertCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pre-alert command.
func (h *SubmitPreAlertCommandHandler) Handle(ctx context.Context, cmd SubmitPreAlertCommand) error {
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

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	parcelRepo := uow.ParcelRepository()

	_, err := parcelRepo.GetByTrackingNumber(ctx, cmd.TrackingNumber())
	if err == nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"trackingNumber",
			fmt.Errorf("parcel %s is already registered", cmd.TrackingNumber()),
		)
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := parcel.NewParcel(
		cmd.ParcelID(),
		cmd.TrackingNumber(),
		cmd.CustomerID(),
		cmd.Marketplace(),
		cmd.DeclaredValue(),
	)
	if err != nil {
		return err
	}

	if err = parcelRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
