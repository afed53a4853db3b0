package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"jastip/internal/core/domain/model/tariff"
	"jastip/internal/core/domain/services"
	"jastip/internal/core/ports"
	"jastip/internal/pkg/errs"
)

// ReceiveParcelCommandHandler handles warehouse intake.
// Uploads the proof photo, quotes the fee from the measured weight, and moves
// the parcel from Expected to Received in one transaction.
//
// Strict intake policy: a tracking number that was never pre-alerted is
// rejected, it does not create a parcel on the fly.
type ReceiveParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	storage    ports.ProofStorage
	calculator services.RateCalculator
	rates      tariff.Tariff
}

// NewReceiveParcelCommandHandler creates a handler for warehouse intake.
func NewReceiveParcelCommandHandler(
	uowFactory ParcelUoWFactory,
	storage ports.ProofStorage,
	calculator services.RateCalculator,
	rates tariff.Tariff,
) ReceiveParcelCommandHandler {
	return ReceiveParcelCommandHandler{
		uowFactory: uowFactory,
		storage:    storage,
		calculator: calculator,
		rates:      rates,
	}
}

// Handle processes the intake command.
// The photo upload happens before the transaction opens so a slow object
// store does not hold a database transaction open.
func (h *ReceiveParcelCommandHandler) Handle(ctx context.Context, cmd ReceiveParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var photoURL string
	if len(cmd.ProofPhoto()) > 0 {
		url, err := h.storage.Upload(ctx, cmd.TrackingNumber(), bytes.NewReader(cmd.ProofPhoto()))
		if err != nil {
			return err
		}
		photoURL = url
	}

	quote, err := h.calculator.Calculate(cmd.Measurements(), h.rates)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()

	aggregate, err := parcelRepo.GetByTrackingNumber(ctx, cmd.TrackingNumber())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewObjectNotFoundErrorWithCause(
			"trackingNumber",
			cmd.TrackingNumber(),
			fmt.Errorf("parcel must be pre-alerted before it can be received"),
		)
	}
	if err != nil {
		return err
	}

	if err = aggregate.Receive(
		cmd.Measurements(),
		cmd.Rack(),
		photoURL,
		quote.BillableWeight,
		quote.TotalFee,
	); err != nil {
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
