package commands

import (
	"errors"

	"jastip/internal/core/domain/model/batch"
	"jastip/internal/pkg/guard"
)

var ErrAdvanceBatchStatusCommandIsNotConstructed = errors.New(
	"AdvanceBatchStatusCommand must be created via NewAdvanceBatchStatusCommand constructor",
)

// AdvanceBatchStatusCommand moves a batch along its transit journey towards
// the given target status. The journey is forward-only; the aggregate rejects
// targets at or behind the current status.
type AdvanceBatchStatusCommand struct { //nolint:recvcheck //using for validation
	batchCode string
	target    batch.Status

	guard guard.ConstructorGuard
}

// NewAdvanceBatchStatusCommand creates a command to advance a batch.
func NewAdvanceBatchStatusCommand(batchCode string, target batch.Status) (AdvanceBatchStatusCommand, error) {
	advanceCommand := AdvanceBatchStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		advanceCommand.setBatchCode(batchCode),
		advanceCommand.setTarget(target),
	); err != nil {
		return AdvanceBatchStatusCommand{}, err
	}

	return advanceCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceBatchStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceBatchStatusCommandIsNotConstructed)
}

// BatchCode returns the code of the batch being advanced.
func (c AdvanceBatchStatusCommand) BatchCode() string {
	return c.batchCode
}

// Target returns the transit status to advance to.
func (c AdvanceBatchStatusCommand) Target() batch.Status {
	return c.target
}

func (c *AdvanceBatchStatusCommand) setBatchCode(batchCode string) error {
	if batchCode == "" {
		return ErrBatchCodeIsRequired
	}

	c.batchCode = batchCode
	return nil
}

func (c *AdvanceBatchStatusCommand) setTarget(target batch.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
