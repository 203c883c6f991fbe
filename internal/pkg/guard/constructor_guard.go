// Package guard provides a lightweight mechanism to enforce that domain objects
// are created through their constructors rather than as zero values.
//
// Embedding a ConstructorGuard into a struct makes the zero value of that struct
// detectable: the guard is only marked as constructed when obtained via
// NewConstructorGuard, so a struct literal or zero value fails validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no custom error is
// provided and the guard belongs to an object that bypassed its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether its owning object went through a constructor.
// The zero value is invalid; obtain instances via NewConstructorGuard.
// ConstructorGuard is immutable and safe for concurrent use.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
// Constructors should store it in the object they build.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil when the guard was created via NewConstructorGuard.
// For a zero-value guard it returns notConstructedErr, or
// ErrDefaultConstructorGuard when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}
	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructedErr
}
