// Package services contains stateless domain services that coordinate
// behavior across aggregates: OrderNormalizer, which converts raw platform
// payloads into canonical orders, and CourierDispatcher, which applies the
// least-load assignment policy.
package services
