package services

import (
	"encoding/json"
	"strconv"
	"time"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/domain/model/platform"
)

// OrderNormalizer converts a raw, schema-varying platform payload into the
// canonical Order shape. Every platform delivers a different field layout;
// normalization resolves each canonical field through an ordered fallback
// chain and applies placeholders when nothing matches.
//
// Normalization is pure construction: it never touches any collection, and
// two calls with the same payload differ only in generated id and timestamp
// when those are absent from the payload.
type OrderNormalizer struct {
	registry platform.Registry
}

// NewOrderNormalizer creates a normalizer resolving platform keys against the
// given registry.
func NewOrderNormalizer(registry platform.Registry) OrderNormalizer {
	return OrderNormalizer{registry: registry}
}

// Normalize builds a canonical pending Order from a webhook payload.
//
// Field resolution (first non-missing wins):
//   - id: "id", "order_id", else generated
//   - customer: "customer", "customer_name", else placeholder
//   - total: "total", "amount", "price", else 0; coerced to a number
//   - items: each line's name from "name", "title"; price from "price", "amount"
//   - timestamp: "timestamp" (RFC3339), else normalization time
//
// The untouched payload is retained on the order for audit. Fails with
// platform.ErrUnsupportedPlatform when the key is not registered.
func (n OrderNormalizer) Normalize(platformKey string, payload map[string]any) (*order.Order, error) {
	p, err := n.registry.Get(platformKey)
	if err != nil {
		return nil, err
	}

	id, err := resolveOrderID(payload)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(
		id,
		stringField(payload, "customer", "customer_name"),
		p,
		normalizeItems(payload["items"]),
		numberField(payload, "total", "amount", "price"),
		timestampField(payload, "timestamp"),
		raw,
	)
}

// resolveOrderID prefers the payload's own identifier and generates one
// otherwise.
func resolveOrderID(payload map[string]any) (kernel.OrderID, error) {
	if s := stringField(payload, "id", "order_id"); s != "" {
		return kernel.OrderIDFromString(s)
	}
	return kernel.NewOrderID(), nil
}

// normalizeItems maps the payload's item list, tolerating absent or
// malformed entries. Non-list values yield an empty item slice.
func normalizeItems(v any) []order.Item {
	list, ok := v.([]any)
	if !ok {
		return nil
	}

	items := make([]order.Item, 0, len(list))
	for _, entry := range list {
		fields, ok := entry.(map[string]any)
		if !ok {
			items = append(items, order.NewItem("", 0))
			continue
		}
		items = append(items, order.NewItem(
			stringField(fields, "name", "title"),
			numberField(fields, "price", "amount"),
		))
	}
	return items
}

// stringField returns the first present string value among keys, else "".
func stringField(fields map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := fields[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// numberField returns the first present value among keys coerced to a number.
// Mixed-type payloads deliver numbers as float64, json.Number, integers or
// numeric strings; anything non-numeric coerces to 0.
func numberField(fields map[string]any, keys ...string) float64 {
	for _, key := range keys {
		v, ok := fields[key]
		if !ok || v == nil {
			continue
		}
		return coerceNumber(v)
	}
	return 0
}

func coerceNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// timestampField parses an RFC3339 timestamp from the payload.
// Absent or unparseable values yield the zero time, which the Order
// constructor replaces with the normalization time.
func timestampField(fields map[string]any, key string) time.Time {
	s, ok := fields[key].(string)
	if !ok {
		return time.Time{}
	}

	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return ts
}
