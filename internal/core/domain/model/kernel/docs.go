// Package kernel contains shared value objects used across the domain model.
//
// It provides the identity types for the two aggregates in the system:
//   - UUID: courier identity, wrapping github.com/google/uuid
//   - OrderID: order identity, a short human-facing token ("SP-10452") that
//     may be supplied by an external platform payload or generated locally
//
// All kernel types are immutable value objects. Their zero values are invalid
// and must be created through the provided constructors.
package kernel
