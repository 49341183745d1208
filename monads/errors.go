package monads

import "errors"

// Sentinel errors raised by the dispatch layer. They are delivered by panic
// — an expression mixing monad variants is a programming error, the Go
// analog of a dynamic type error — and can be matched with errors.Is on the
// recovered value.
var (
	// ErrVariantMismatch is raised when two different concrete variants
	// meet in one operation: Amap or Then across variants, or a bound
	// function returning a foreign variant.
	ErrVariantMismatch = errors.New("monads: mixed monad variants")

	// ErrNotImplemented is raised by the package-level Fmap, Amap, Bind and
	// Then functions when the receiver does not implement the required
	// capability.
	ErrNotImplemented = errors.New("monads: capability not implemented")
)
