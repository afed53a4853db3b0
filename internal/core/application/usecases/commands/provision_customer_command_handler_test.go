package commands_test

import (
	"testing"

	"jastip/internal/core/application/usecases/commands"
	"jastip/internal/core/domain/model/customer"
	"jastip/internal/core/domain/model/kernel"
	"jastip/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProvisionCustomerCommandHandler_Handle_CreatesOnFirstLogin(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewProvisionCustomerCommand("auth-user-1", "Maria Kelen")

	var created *customer.Customer

	repo := new(MockCustomerRepository)
	uow := new(MockCustomerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("GetByUserID", mock.Anything, "auth-user-1").
			Return(nil, errs.NewObjectNotFoundError("userID", "auth-user-1")).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*customer.Customer")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*customer.Customer)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProvisionCustomerCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)

	require.NotNil(t, created)
	assert.Equal(t, "auth-user-1", created.UserID())
	assert.Equal(t, "Maria Kelen", created.Name())
	assert.NotEmpty(t, created.Code())
}

func TestProvisionCustomerCommandHandler_Handle_SecondLoginIsNoOp(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewProvisionCustomerCommand("auth-user-1", "Maria Kelen")

	existing, _ := customer.NewCustomer(kernel.NewUUID(), "Maria Kelen", "", "", "FLRAB12")
	require.NoError(t, existing.LinkIdentity("auth-user-1"))

	repo := new(MockCustomerRepository)
	uow := new(MockCustomerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("GetByUserID", mock.Anything, "auth-user-1").Return(existing, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProvisionCustomerCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestProvisionCustomerCommandHandler_Handle_FallsBackToDefaultName(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewProvisionCustomerCommand("auth-user-2", "")

	var created *customer.Customer

	repo := new(MockCustomerRepository)
	uow := new(MockCustomerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("GetByUserID", mock.Anything, "auth-user-2").
			Return(nil, errs.NewObjectNotFoundError("userID", "auth-user-2")).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*customer.Customer")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*customer.Customer)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProvisionCustomerCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.Name())
}

func TestNewProvisionCustomerCommand_EmptyUserID(t *testing.T) {
	_, err := commands.NewProvisionCustomerCommand("", "Maria Kelen")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUserIDIsRequired)
}
