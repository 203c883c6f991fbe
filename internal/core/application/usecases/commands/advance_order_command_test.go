package commands_test

import (
	"testing"

	"orderhub/internal/core/application/usecases/commands"
	"orderhub/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdvanceOrderCommand(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		id := kernel.NewOrderID()
		cmd, err := commands.NewAdvanceOrderCommand(id)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(id))
	})

	t.Run("zero order id", func(t *testing.T) {
		_, err := commands.NewAdvanceOrderCommand(kernel.OrderID{})

		require.Error(t, err)
		require.ErrorIs(t, err, kernel.ErrOrderIDIsNotConstructed)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.AdvanceOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrAdvanceOrderCommandIsNotConstructed)
	})
}
