package commands

import (
	"errors"
	"time"

	"jastip/internal/pkg/guard"
)

var (
	ErrCreateBatchCommandIsNotConstructed = errors.New(
		"CreateBatchCommand must be created via NewCreateBatchCommand constructor",
	)
	ErrBatchCodeIsRequired = errors.New("batch code is required")
)

// CreateBatchCommand opens a new shipping batch for the next vessel departure.
type CreateBatchCommand struct { //nolint:recvcheck //using for validation
	code string
	etd  time.Time
	eta  time.Time

	guard guard.ConstructorGuard
}

// NewCreateBatchCommand creates a command to open a batch.
// ETD and ETA are optional estimates; pass zero times when unscheduled.
func NewCreateBatchCommand(code string, etd, eta time.Time) (CreateBatchCommand, error) {
	batchCommand := CreateBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := batchCommand.setCode(code); err != nil {
		return CreateBatchCommand{}, err
	}

	batchCommand.etd = etd
	batchCommand.eta = eta
	return batchCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBatchCommand) Validate() error {
	return c.guard.Validate(ErrCreateBatchCommandIsNotConstructed)
}

// Code returns the operator-chosen batch code.
func (c CreateBatchCommand) Code() string {
	return c.code
}

// ETD returns the estimated departure time.
func (c CreateBatchCommand) ETD() time.Time {
	return c.etd
}

// ETA returns the estimated arrival time.
func (c CreateBatchCommand) ETA() time.Time {
	return c.eta
}

func (c *CreateBatchCommand) setCode(code string) error {
	if code == "" {
		return ErrBatchCodeIsRequired
	}

	c.code = code
	return nil
}
