package commands_test

import (
	"testing"
	"time"

	"jastip/internal/core/application/usecases/commands"
	"jastip/internal/core/domain/model/batch"
	"jastip/internal/core/domain/model/kernel"
	"jastip/internal/core/domain/model/parcel"
	"jastip/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func receivedParcel(t *testing.T, id kernel.UUID) *parcel.Parcel {
	t.Helper()

	p, err := parcel.NewParcel(id, "JD0012345678", kernel.NewUUID(), "shopee", 0)
	require.NoError(t, err)
	require.NoError(t, p.Receive(parcel.Measurements{Weight: 1}, "R1", "", 1, 20000))
	return p
}

func TestAddParcelToBatchCommandHandler_Handle_SealedParcelIsBagged(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewAddParcelToBatchCommand(id, "FLR-APR-01", "BAG-1", "SEAL-9")

	shipment, _ := batch.NewBatch("FLR-APR-01", time.Time{}, time.Time{})
	p := receivedParcel(t, id)

	batchRepo := new(MockBatchRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BatchRepository").Return(batchRepo).Once(),
		batchRepo.On("Get", mock.Anything, "FLR-APR-01").Return(shipment, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, id).Return(p, nil).Once(),
		parcelRepo.On("Update", mock.Anything, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddParcelToBatchCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	parcelRepo.AssertExpectations(t)

	assert.Equal(t, parcel.Bagged, p.Status())
	assert.Equal(t, "FLR-APR-01", p.BatchCode())
	assert.Equal(t, "BAG-1", p.BagID())
	assert.Equal(t, "SEAL-9", p.SealNumber())
}

func TestAddParcelToBatchCommandHandler_Handle_UnsealedParcelIsReadyToShip(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewAddParcelToBatchCommand(id, "FLR-APR-01", "", "")

	shipment, _ := batch.NewBatch("FLR-APR-01", time.Time{}, time.Time{})
	p := receivedParcel(t, id)

	batchRepo := new(MockBatchRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BatchRepository").Return(batchRepo).Once(),
		batchRepo.On("Get", mock.Anything, "FLR-APR-01").Return(shipment, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, id).Return(p, nil).Once(),
		parcelRepo.On("Update", mock.Anything, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddParcelToBatchCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, parcel.ReadyToShip, p.Status())
}

func TestAddParcelToBatchCommandHandler_Handle_ArrivedBatchRefusesParcels(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewAddParcelToBatchCommand(id, "FLR-APR-01", "", "")

	arrived, _ := batch.RestoreBatch("FLR-APR-01", time.Time{}, time.Time{}, batch.Arrived)

	batchRepo := new(MockBatchRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BatchRepository").Return(batchRepo).Once(),
		batchRepo.On("Get", mock.Anything, "FLR-APR-01").Return(arrived, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddParcelToBatchCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestAddParcelToBatchCommandHandler_Handle_UnknownBatch(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddParcelToBatchCommand(kernel.NewUUID(), "FLR-NOPE", "", "")

	batchRepo := new(MockBatchRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BatchRepository").Return(batchRepo).Once(),
		batchRepo.On("Get", mock.Anything, "FLR-NOPE").
			Return(nil, errs.NewObjectNotFoundError("code", "FLR-NOPE")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddParcelToBatchCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAddParcelToBatchCommandHandler_Handle_ExpectedParcelIsRejected(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewAddParcelToBatchCommand(id, "FLR-APR-01", "", "")

	shipment, _ := batch.NewBatch("FLR-APR-01", time.Time{}, time.Time{})
	expected, _ := parcel.NewParcel(id, "JD0012345678", kernel.NewUUID(), "shopee", 0)

	batchRepo := new(MockBatchRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BatchRepository").Return(batchRepo).Once(),
		batchRepo.On("Get", mock.Anything, "FLR-APR-01").Return(shipment, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, id).Return(expected, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddParcelToBatchCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	parcelRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
