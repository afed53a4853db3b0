package commands

import (
	"context"
	"errors"

	"jastip/internal/core/domain/model/customer"
	"jastip/internal/core/ports"
	"jastip/internal/pkg/errs"
)

// codeGenerationAttempts bounds the retry loop for label code collisions.
// With 36^4 possible codes a collision is rare; hitting the bound means the
// code space is close to exhausted and the insert should fail loudly.
const codeGenerationAttempts = 5

// ErrCodeSpaceExhausted is returned when no free label code could be found.
var ErrCodeSpaceExhausted = errors.New("could not generate a unique customer code")

// CreateCustomerCommandHandler handles the business logic for customer registration.
// Generates a unique short label code and persists the new customer.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
// Requires a CustomerUoWFactory for transactional persistence.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer registration command.
// Generates a label code, retrying on the unlikely collision, and persists
// the customer inside a transaction.
func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) error {
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

	code, err := h.freeCode(ctx, customerRepo)
	if err != nil {
		return err
	}

	aggregate, err := customer.NewCustomer(cmd.CustomerID(), cmd.Name(), cmd.Phone(), cmd.Address(), code)
	if err != nil {
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

// freeCode generates label codes until one is unoccupied.
func (h *CreateCustomerCommandHandler) freeCode(ctx context.Context, repo ports.CustomerRepository) (string, error) {
	for range codeGenerationAttempts {
		code := customer.NewRandomCode(customer.DefaultCodePrefix)

		_, err := repo.GetByCode(ctx, code)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}
	}

	return "", ErrCodeSpaceExhausted
}
