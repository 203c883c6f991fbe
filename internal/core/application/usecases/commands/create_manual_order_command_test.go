package commands_test

import (
	"testing"

	"orderhub/internal/core/application/usecases/commands"
	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateManualOrderCommand(t *testing.T) {
	items := []order.Item{order.NewItem("Lahmacun", 95)}

	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateManualOrderCommand("Ada Lovelace", items, 95)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "Ada Lovelace", cmd.Customer())
		assert.Len(t, cmd.Items(), 1)
		assert.InDelta(t, 95.0, cmd.Total(), 0.001)
	})

	t.Run("empty customer", func(t *testing.T) {
		_, err := commands.NewCreateManualOrderCommand("", items, 95)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("no items", func(t *testing.T) {
		_, err := commands.NewCreateManualOrderCommand("Ada Lovelace", nil, 95)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero total", func(t *testing.T) {
		_, err := commands.NewCreateManualOrderCommand("Ada Lovelace", items, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative total", func(t *testing.T) {
		_, err := commands.NewCreateManualOrderCommand("Ada Lovelace", items, -10)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("items are copied", func(t *testing.T) {
		source := []order.Item{order.NewItem("Ayran", 15)}
		cmd, err := commands.NewCreateManualOrderCommand("Ada Lovelace", source, 15)
		require.NoError(t, err)

		source[0] = order.NewItem("Kola", 30)
		assert.Equal(t, "Ayran", cmd.Items()[0].Name())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CreateManualOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateManualOrderCommandIsNotConstructed)
	})
}
