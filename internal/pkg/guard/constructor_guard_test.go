package guard_test

import (
	"errors"
	"testing"

	"orderhub/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("test object not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedErr := errors.New("entity not constructed")

		err := g.Validate(expectedErr)

		require.Error(t, err)
		assert.Equal(t, expectedErr, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_has_meaningful_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})

	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		testErr := errors.New("test error")

		gCopy := g

		require.NoError(t, g.Validate(testErr))
		require.NoError(t, gCopy.Validate(testErr))
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type notice struct {
		text  string
		guard guard.ConstructorGuard
	}

	errNoticeNotConstructed := errors.New("notice must be created via newNotice")

	newNotice := func(text string) notice {
		return notice{text: text, guard: guard.NewConstructorGuard()}
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		n := newNotice("courier dispatched")

		require.NoError(t, n.guard.Validate(errNoticeNotConstructed))
		assert.Equal(t, "courier dispatched", n.text)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var n notice

		err := n.guard.Validate(errNoticeNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNoticeNotConstructed, err)
	})
}
