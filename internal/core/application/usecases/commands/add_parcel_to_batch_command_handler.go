package commands

import (
	"context"
	"fmt"

	"jastip/internal/pkg/errs"
)

// AddParcelToBatchCommandHandler handles packing parcels into batches.
// The batch must exist and still accept parcels; the parcel must be Received
// or Paid. Both rules are checked before anything is written.
type AddParcelToBatchCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewAddParcelToBatchCommandHandler creates a handler for parcel packing.
func NewAddParcelToBatchCommandHandler(uowFactory ShipmentUoWFactory) AddParcelToBatchCommandHandler {
	return AddParcelToBatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the packing command.
func (h *AddParcelToBatchCommandHandler) Handle(ctx context.Context, cmd AddParcelToBatchCommand) error {
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

	shipment, err := uow.BatchRepository().Get(ctx, cmd.BatchCode())
	if err != nil {
		return err
	}

	if !shipment.AcceptsParcels() {
		return errs.NewValueIsInvalidErrorWithCause(
			"batchCode",
			fmt.Errorf("batch %s has arrived and no longer accepts parcels", shipment.Code()),
		)
	}

	parcelRepo := uow.ParcelRepository()

	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = aggregate.AssignToBatch(shipment.Code(), cmd.BagID(), cmd.SealNumber()); err != nil {
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
