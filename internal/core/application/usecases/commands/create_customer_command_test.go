package commands_test

import (
	"testing"

	"jastip/internal/core/application/usecases/commands"
	"jastip/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateCustomerCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(id, "Maria Kelen", "0812", "Jl. Pelabuhan 1")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.CustomerID())
	assert.Equal(t, "Maria Kelen", cmd.Name())
	assert.Equal(t, "0812", cmd.Phone())
	assert.Equal(t, "Jl. Pelabuhan 1", cmd.Address())
}

func TestNewCreateCustomerCommand_EmptyName(t *testing.T) {
	id := kernel.NewUUID()
	_, err := commands.NewCreateCustomerCommand(id, "", "0812", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCustomerNameIsRequired)
}

func TestNewCreateCustomerCommand_InvalidCustomerID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateCustomerCommand(invalidID, "Maria Kelen", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
