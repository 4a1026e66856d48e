package commands_test

import (
	"testing"

	"routeplan/internal/core/application/usecases/commands"
	"routeplan/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateLocationCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewCreateLocationCommand(
		id, "Warehouse", "Main St 1", 55.75, 37.61, 5, 10, 15, 480, 1080, true,
	)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())

	assert.True(t, cmd.LocationID().IsEqual(id))
	assert.Equal(t, "Warehouse", cmd.Name())
	assert.Equal(t, 5, cmd.Pickup())
	assert.Equal(t, 10, cmd.Delivery())
	assert.Equal(t, 15, cmd.ServiceTime())
	assert.Equal(t, 480, cmd.Window().Start())
	assert.Equal(t, 1080, cmd.Window().End())
	assert.True(t, cmd.IsDepot())
}

func TestNewCreateLocationCommand_Invalid(t *testing.T) {
	id := kernel.NewUUID()

	tests := map[string]func() error{
		"empty name": func() error {
			_, err := commands.NewCreateLocationCommand(id, "", "a", 55, 37, 0, 0, 0, 0, 1440, false)
			return err
		},
		"empty address": func() error {
			_, err := commands.NewCreateLocationCommand(id, "n", "", 55, 37, 0, 0, 0, 0, 1440, false)
			return err
		},
		"latitude out of range": func() error {
			_, err := commands.NewCreateLocationCommand(id, "n", "a", 91, 37, 0, 0, 0, 0, 1440, false)
			return err
		},
		"negative pickup": func() error {
			_, err := commands.NewCreateLocationCommand(id, "n", "a", 55, 37, -1, 0, 0, 0, 1440, false)
			return err
		},
		"negative service time": func() error {
			_, err := commands.NewCreateLocationCommand(id, "n", "a", 55, 37, 0, 0, -5, 0, 1440, false)
			return err
		},
		"inverted window": func() error {
			_, err := commands.NewCreateLocationCommand(id, "n", "a", 55, 37, 0, 0, 0, 600, 300, false)
			return err
		},
		"zero id": func() error {
			_, err := commands.NewCreateLocationCommand(kernel.UUID{}, "n", "a", 55, 37, 0, 0, 0, 0, 1440, false)
			return err
		},
	}

	for name, build := range tests {
		t.Run(name, func(t *testing.T) {
			require.Error(t, build())
		})
	}
}

func TestCreateLocationCommand_NotConstructed(t *testing.T) {
	var cmd commands.CreateLocationCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateLocationCommandIsNotConstructed)
}
