package monoid

import "errors"

// Sentinel errors returned by the dynamic dispatch layer.
var (
	// ErrMismatchedTypes is returned when Combine receives operands of
	// different concrete types. No coercion is attempted.
	ErrMismatchedTypes = errors.New("monoid: operands have different concrete types")

	// ErrNoIdentity is returned when IdentityOf is given a value whose type
	// is neither primitive-like, registered, nor a Monoid implementation.
	ErrNoIdentity = errors.New("monoid: no identity element known for type")

	// ErrNotCombinable is returned when Combine is given values whose type
	// is neither primitive-like, registered, nor a Monoid implementation.
	ErrNotCombinable = errors.New("monoid: type does not support combine")
)
