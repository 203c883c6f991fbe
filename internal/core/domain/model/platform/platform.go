// Package platform defines the ordering channels the system ingests from.
//
// A Platform is an immutable identity snapshot (key, display name, color tag)
// of an external ordering channel. The Registry maps stable platform keys to
// these identities and is fixed at process start; platforms are never created
// or removed at runtime.
package platform

import (
	"fmt"

	"orderhub/internal/pkg/errs"
)

// ErrUnsupportedPlatform is returned when a webhook references a platform key
// that is not present in the registry. Always surfaced to the caller.
var ErrUnsupportedPlatform = errs.NewValueIsInvalidError("unsupported platform")

// Platform is the identity of an ordering channel. Orders keep a value copy of
// the platform they arrived through, so a registry change never rewrites
// history on existing orders.
type Platform struct {
	key         string
	displayName string
	colorTag    string
}

// NewPlatform creates a platform identity. All three attributes are required.
func NewPlatform(key, displayName, colorTag string) (Platform, error) {
	if key == "" {
		return Platform{}, errs.NewValueIsRequiredError("platform key")
	}
	if displayName == "" {
		return Platform{}, errs.NewValueIsRequiredError("platform display name")
	}
	if colorTag == "" {
		return Platform{}, errs.NewValueIsRequiredError("platform color tag")
	}

	return Platform{key: key, displayName: displayName, colorTag: colorTag}, nil
}

// Key returns the stable lookup token for the platform.
func (p Platform) Key() string {
	return p.key
}

// DisplayName returns the human-facing channel name.
func (p Platform) DisplayName() string {
	return p.displayName
}

// ColorTag returns the UI color tag associated with the channel.
func (p Platform) ColorTag() string {
	return p.colorTag
}

// IsZero reports whether the platform is the invalid zero value.
func (p Platform) IsZero() bool {
	return p.key == ""
}

// Manual returns the synthetic platform attached to orders entered by staff
// rather than received through a webhook.
func Manual() Platform {
	return Platform{key: "manual", displayName: "Manual Order", colorTag: "slate"}
}

// Registry is the static platform key -> identity mapping.
// It is safe for concurrent reads; it is never mutated after construction.
type Registry struct {
	platforms map[string]Platform
	keys      []string
}

// NewRegistry builds the registry with the supported delivery platforms.
func NewRegistry() Registry {
	entries := []struct {
		key, name, color string
	}{
		{"trendyol", "Trendyol Go", "orange"},
		{"getir", "Getir Yemek", "purple"},
		{"yemeksepeti", "Yemeksepeti", "pink"},
		{"migros", "Migros Yemek", "emerald"},
	}

	platforms := make(map[string]Platform, len(entries))
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		platforms[e.key] = Platform{key: e.key, displayName: e.name, colorTag: e.color}
		keys = append(keys, e.key)
	}

	return Registry{platforms: platforms, keys: keys}
}

// Get resolves a platform key to its identity.
// Returns ErrUnsupportedPlatform (wrapped with the offending key) for unknown keys.
func (r Registry) Get(key string) (Platform, error) {
	p, ok := r.platforms[key]
	if !ok {
		return Platform{}, fmt.Errorf("%w: %q", ErrUnsupportedPlatform, key)
	}
	return p, nil
}

// Keys returns the registered platform keys in registration order.
func (r Registry) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}
