package commands_test

import (
	"testing"

	"routeplan/internal/core/application/usecases/commands"
	"routeplan/internal/core/domain/model/compute"
	"routeplan/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateComputeCommand(t *testing.T) {
	computeID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateComputeCommand(computeID, orderID, 120)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())

	assert.True(t, cmd.ComputeID().IsEqual(computeID))
	assert.True(t, cmd.OrderID().IsEqual(orderID))
	assert.Equal(t, 120, cmd.Policy().TimeLimitSeconds)
}

func TestNewCreateComputeCommand_ZeroTimeLimitUsesDefault(t *testing.T) {
	cmd, err := commands.NewCreateComputeCommand(kernel.NewUUID(), kernel.NewUUID(), 0)
	require.NoError(t, err)
	assert.Equal(t, compute.DefaultTimeLimitSeconds, cmd.Policy().TimeLimitOrDefault())
}

func TestNewCreateComputeCommand_Invalid(t *testing.T) {
	_, err := commands.NewCreateComputeCommand(kernel.UUID{}, kernel.NewUUID(), 0)
	require.Error(t, err)

	_, err = commands.NewCreateComputeCommand(kernel.NewUUID(), kernel.UUID{}, 0)
	require.Error(t, err)

	_, err = commands.NewCreateComputeCommand(kernel.NewUUID(), kernel.NewUUID(), -1)
	require.Error(t, err)
}
