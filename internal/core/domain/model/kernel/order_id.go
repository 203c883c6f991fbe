package kernel

import (
	"fmt"
	"math/rand/v2"

	"orderhub/internal/pkg/errs"
)

const (
	// orderIDPrefix is the prefix used for locally generated order identifiers.
	orderIDPrefix = "SP"
	// orderIDMin and orderIDMax bound the random numeric suffix (inclusive).
	orderIDMin = 10000
	orderIDMax = 99999
)

// ErrOrderIDIsNotConstructed indicates that an OrderID was not created through
// one of the constructor functions. Returned when validating a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or OrderIDFromString")

// OrderID is the identity of an order. Platforms deliver their own order
// identifiers in webhook payloads; when a payload carries none, an identifier
// is generated locally as "SP-" followed by a random five-digit number.
//
// Identifiers are not checked for uniqueness at generation time; the
// persistence layer's primary key rejects the rare collision.
//
// The zero value is invalid; use NewOrderID or OrderIDFromString.
type OrderID struct {
	value string
}

// NewOrderID generates a fresh order identifier with the local "SP-" prefix.
// The numeric suffix is uniformly distributed in [10000, 99999].
func NewOrderID() OrderID {
	return OrderID{value: fmt.Sprintf("%s-%d", orderIDPrefix, rand.IntN(orderIDMax-orderIDMin+1)+orderIDMin)}
}

// OrderIDFromString wraps an externally supplied identifier.
// Returns an error for the empty string.
func OrderIDFromString(s string) (OrderID, error) {
	if s == "" {
		return OrderID{}, errs.NewValueIsRequiredError("order id")
	}
	return OrderID{value: s}, nil
}

// String returns the identifier's textual form.
func (id OrderID) String() string {
	return id.value
}

// IsEqual reports whether two OrderIDs represent the same identifier.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate returns ErrOrderIDIsNotConstructed for the zero value.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
