package monads

import "fmt"

// Container is the root of the capability hierarchy: a context wrapping a
// value, with variant-aware equality. All containers in this package are
// immutable value objects.
type Container interface {
	// Value returns the wrapped value. Variants that wrap a function
	// (Reader, State) return that function; Writer returns its
	// (result, log) Pair.
	Value() any

	// Equal reports whether other is the same concrete variant wrapping an
	// equal value. Function-wrapping variants compare unequal except
	// against themselves-by-structure; their laws are verified by running
	// both sides on probe inputs.
	Equal(other Container) bool
}

// Functor is a Container whose wrapped value(s) a plain function can be
// lifted over.
type Functor interface {
	Container

	// Fmap applies fn to the wrapped value(s) and returns a new container
	// of the same variant, structure preserved. fn may be any Go function;
	// multi-argument functions are curried, leaving a partial inside the
	// context.
	Fmap(fn any) Functor
}

// Applicative is a Functor that can apply a context-wrapped function to a
// context-wrapped argument.
type Applicative interface {
	Functor

	// Amap applies the function(s) wrapped in the receiver to the value(s)
	// wrapped in arg, combining the two contexts' effects. Panics wrapping
	// [ErrVariantMismatch] when arg is a different concrete variant.
	Amap(arg Applicative) Applicative
}

// Monad is an Applicative that can sequence its wrapped value through a
// context-returning function, flattening one level of nesting.
type Monad interface {
	Applicative

	// Unit wraps v in the receiver's variant with identity context: Just
	// for Maybe, Right for Either, a singleton List, a constant Reader, a
	// Writer with an empty log, a State that leaves its state untouched.
	Unit(v any) Monad

	// Bind sequences the wrapped value through fn. A failure-state
	// receiver (Nothing, Left, empty List) propagates without invoking fn.
	// fn must return the receiver's variant; anything else panics wrapping
	// [ErrVariantMismatch].
	Bind(fn func(any) Monad) Monad

	// Then sequences next after the receiver, discarding the receiver's
	// wrapped value but keeping its context effects.
	Then(next Monad) Monad
}

// Unit wraps v using proto's variant. It is the free-function form of
// [Monad.Unit], standing in for a type-indexed constructor.
func Unit(proto Monad, v any) Monad { return proto.Unit(v) }

// Pair holds two values of possibly different types. It is the view
// returned by Writer's Value (result first, log second).
type Pair struct {
	First  any
	Second any
}

// String returns a human-readable representation: "(first, second)".
func (p Pair) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
