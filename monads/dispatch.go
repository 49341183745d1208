package monads

import (
	"fmt"
	"reflect"

	"github.com/hasbyte1/go-haskell-utils/curry"
)

// This file contains the package-level renderings of the infix operator
// protocol, plus the shared machinery every concrete variant dispatches
// through: single-argument application via the curry engine, variant
// checking, and the Bind-derived default implementations.

// ─────────────────────────────────────────────────────────────────────────────
// Operator protocol
// ─────────────────────────────────────────────────────────────────────────────

// Fmap lifts fn over c (the "f << functor" form). Panics wrapping
// [ErrNotImplemented] when c is not a Functor.
func Fmap(fn any, c Container) Functor {
	f, ok := c.(Functor)
	if !ok {
		panic(fmt.Errorf("%w: %T has no Fmap", ErrNotImplemented, c))
	}
	return f.Fmap(fn)
}

// Amap applies the function-carrying context fn to arg (the "& " form).
// Panics wrapping [ErrNotImplemented] when either operand is not an
// Applicative.
func Amap(fn Container, arg Container) Applicative {
	af, ok := fn.(Applicative)
	if !ok {
		panic(fmt.Errorf("%w: %T has no Amap", ErrNotImplemented, fn))
	}
	aa, ok := arg.(Applicative)
	if !ok {
		panic(fmt.Errorf("%w: %T has no Amap", ErrNotImplemented, arg))
	}
	return af.Amap(aa)
}

// Bind sequences m through fn (the "m >> f" form). Panics wrapping
// [ErrNotImplemented] when m is not a Monad.
func Bind(m Container, fn func(any) Monad) Monad {
	mm, ok := m.(Monad)
	if !ok {
		panic(fmt.Errorf("%w: %T has no Bind", ErrNotImplemented, m))
	}
	return mm.Bind(fn)
}

// Then sequences next after m, discarding m's wrapped value (the
// "m >> n" form between two monad instances).
func Then(m Container, next Container) Monad {
	mm, ok := m.(Monad)
	if !ok {
		panic(fmt.Errorf("%w: %T has no Then", ErrNotImplemented, m))
	}
	nn, ok := next.(Monad)
	if !ok {
		panic(fmt.Errorf("%w: %T has no Then", ErrNotImplemented, next))
	}
	return mm.Then(nn)
}

// Over is the context-sensitive "<<": with a Functor target it maps fn over
// the wrapped value(s); with a callable target it is right-to-left function
// composition.
func Over(fn any, target any) any {
	if f, ok := target.(Functor); ok {
		return f.Fmap(fn)
	}
	return curry.Compose(fn, target)
}

// ─────────────────────────────────────────────────────────────────────────────
// Shared machinery
// ─────────────────────────────────────────────────────────────────────────────

// apply1 applies a wrapped or user-supplied function to a single argument.
// func(any) any and *curry.Func values are applied directly; any other Go
// function goes through the curry engine, so a multi-argument function
// yields a partial — the mechanism behind "f << fa & fb".
func apply1(fn, arg any) any {
	switch f := fn.(type) {
	case func(any) any:
		return f(arg)
	case *curry.Func:
		return f.Apply(arg)
	default:
		return curry.New(fn).Apply(arg)
	}
}

// mustSameVariant panics wrapping ErrVariantMismatch unless a and b are the
// same concrete variant.
func mustSameVariant(a, b Container) {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		panic(fmt.Errorf("%w: %T and %T", ErrVariantMismatch, a, b))
	}
}

// mustVariant asserts that got — the value returned by a bound function —
// is the variant M, panicking with ErrVariantMismatch otherwise.
func mustVariant[M Monad](want Container, got Monad) M {
	m, ok := got.(M)
	if !ok {
		panic(fmt.Errorf("%w: bound function returned %T, want %T",
			ErrVariantMismatch, got, want))
	}
	return m
}

// amapViaBind is the default Amap, derived from Bind and Unit: extract the
// function from fn's context, extract the argument from arg's context, apply
// and re-wrap. The derivation orders effects left to right, which is exactly
// the log-combine and state-thread order the variants require.
func amapViaBind(fn, arg Monad) Applicative {
	mustSameVariant(fn, arg)
	return fn.Bind(func(f any) Monad {
		return arg.Bind(func(x any) Monad {
			return arg.Unit(apply1(f, x))
		})
	})
}

// thenViaBind is the default Then, derived from Bind with a constant
// function.
func thenViaBind(m, next Monad) Monad {
	mustSameVariant(m, next)
	return m.Bind(func(any) Monad { return next })
}
