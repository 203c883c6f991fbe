package services_test

import (
	"encoding/json"
	"testing"
	"time"

	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/domain/model/platform"
	"orderhub/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNormalizer() services.OrderNormalizer {
	return services.NewOrderNormalizer(platform.NewRegistry())
}

func TestOrderNormalizer_Normalize(t *testing.T) {
	t.Run("builds_pending_order_for_every_supported_platform", func(t *testing.T) {
		normalizer := newNormalizer()

		for _, key := range platform.NewRegistry().Keys() {
			o, err := normalizer.Normalize(key, map[string]any{"customer": "Ada"})

			require.NoError(t, err, key)
			assert.Equal(t, order.Pending, o.Status())
			assert.Nil(t, o.Courier())
			assert.Equal(t, key, o.Platform().Key())
		}
	})

	t.Run("fails_for_unregistered_platform", func(t *testing.T) {
		normalizer := newNormalizer()

		o, err := normalizer.Normalize("doordash", map[string]any{})

		require.Error(t, err)
		require.ErrorIs(t, err, platform.ErrUnsupportedPlatform)
		assert.Nil(t, o)
	})

	t.Run("resolves_id_through_fallback_chain", func(t *testing.T) {
		normalizer := newNormalizer()

		o, err := normalizer.Normalize("trendyol", map[string]any{"id": "TY-1", "order_id": "TY-2"})
		require.NoError(t, err)
		assert.Equal(t, "TY-1", o.ID().String())

		o, err = normalizer.Normalize("trendyol", map[string]any{"order_id": "TY-2"})
		require.NoError(t, err)
		assert.Equal(t, "TY-2", o.ID().String())

		o, err = normalizer.Normalize("trendyol", map[string]any{})
		require.NoError(t, err)
		assert.Regexp(t, `^SP-\d{5}$`, o.ID().String())
	})

	t.Run("resolves_customer_through_fallback_chain", func(t *testing.T) {
		normalizer := newNormalizer()

		o, _ := normalizer.Normalize("getir", map[string]any{"customer": "Ada", "customer_name": "Grace"})
		assert.Equal(t, "Ada", o.Customer())

		o, _ = normalizer.Normalize("getir", map[string]any{"customer_name": "Grace"})
		assert.Equal(t, "Grace", o.Customer())

		o, _ = normalizer.Normalize("getir", map[string]any{})
		assert.Equal(t, "Unknown Customer", o.Customer())
	})

	t.Run("resolves_total_through_fallback_chain_with_coercion", func(t *testing.T) {
		normalizer := newNormalizer()

		cases := []struct {
			name     string
			payload  map[string]any
			expected float64
		}{
			{"total_wins", map[string]any{"total": 200.0, "amount": 100.0, "price": 50.0}, 200},
			{"amount_second", map[string]any{"amount": 100.0, "price": 50.0}, 100},
			{"price_third", map[string]any{"price": 50.0}, 50},
			{"numeric_string_coerced", map[string]any{"total": "149.90"}, 149.90},
			{"integer_coerced", map[string]any{"total": 210}, 210},
			{"json_number_coerced", map[string]any{"total": json.Number("180")}, 180},
			{"non_numeric_coerces_to_zero", map[string]any{"total": "yirmi"}, 0},
			{"absent_defaults_to_zero", map[string]any{}, 0},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				o, err := normalizer.Normalize("migros", tc.payload)

				require.NoError(t, err)
				assert.InDelta(t, tc.expected, o.Total(), 0.001)
			})
		}
	})

	t.Run("maps_items_with_per_line_fallbacks", func(t *testing.T) {
		normalizer := newNormalizer()

		o, err := normalizer.Normalize("yemeksepeti", map[string]any{
			"items": []any{
				map[string]any{"name": "Tavuk Doner", "price": 150.0},
				map[string]any{"title": "Ayran", "amount": 20.0},
				map[string]any{},
			},
		})

		require.NoError(t, err)
		items := o.Items()
		require.Len(t, items, 3)
		assert.Equal(t, "Tavuk Doner", items[0].Name())
		assert.InDelta(t, 150.0, items[0].Price(), 0.001)
		assert.Equal(t, "Ayran", items[1].Name())
		assert.InDelta(t, 20.0, items[1].Price(), 0.001)
		assert.Equal(t, "Item", items[2].Name())
		assert.Zero(t, items[2].Price())
	})

	t.Run("missing_items_yield_empty_list_not_error", func(t *testing.T) {
		normalizer := newNormalizer()

		o, err := normalizer.Normalize("trendyol", map[string]any{"customer": "Ada"})

		require.NoError(t, err)
		assert.Empty(t, o.Items())
	})

	t.Run("uses_payload_timestamp_when_parseable", func(t *testing.T) {
		normalizer := newNormalizer()
		ts := "2024-06-01T14:12:00Z"

		o, err := normalizer.Normalize("trendyol", map[string]any{"timestamp": ts})

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 6, 1, 14, 12, 0, 0, time.UTC), o.CreatedAt())
	})

	t.Run("falls_back_to_now_for_bad_timestamp", func(t *testing.T) {
		normalizer := newNormalizer()
		before := time.Now()

		o, err := normalizer.Normalize("trendyol", map[string]any{"timestamp": "14:12"})

		require.NoError(t, err)
		assert.False(t, o.CreatedAt().Before(before))
	})

	t.Run("retains_raw_payload_for_audit", func(t *testing.T) {
		normalizer := newNormalizer()
		payload := map[string]any{"id": "TY-9", "customer": "Ada", "total": 75.0}

		o, err := normalizer.Normalize("trendyol", payload)

		require.NoError(t, err)
		var roundTrip map[string]any
		require.NoError(t, json.Unmarshal(o.Raw(), &roundTrip))
		assert.Equal(t, "TY-9", roundTrip["id"])
		assert.Equal(t, "Ada", roundTrip["customer"])
	})
}
