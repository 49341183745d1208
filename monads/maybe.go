package monads

import (
	"fmt"
	"reflect"
)

// Maybe represents an optional value: either Just(v) or Nothing. Nothing
// absorbs every operation — mapping, applying or binding over it yields
// Nothing again without invoking the supplied function.
type Maybe struct {
	value any
	just  bool
}

var _ Monad = Maybe{}

// Nothing is the empty Maybe. Treat it as a constant.
var Nothing = Maybe{}

// Just wraps v in a present Maybe.
func Just(v any) Maybe { return Maybe{value: v, just: true} }

// IsJust reports whether m holds a value.
func (m Maybe) IsJust() bool { return m.just }

// IsNothing reports whether m is empty.
func (m Maybe) IsNothing() bool { return !m.just }

// Value returns the wrapped value, or nil for Nothing.
func (m Maybe) Value() any { return m.value }

// OrElse returns the wrapped value, or def for Nothing.
func (m Maybe) OrElse(def any) any {
	if m.just {
		return m.value
	}
	return def
}

// Equal reports whether other is a Maybe in the same state wrapping an
// equal value.
func (m Maybe) Equal(other Container) bool {
	o, ok := other.(Maybe)
	return ok && m.just == o.just && reflect.DeepEqual(m.value, o.value)
}

// String returns "Just v" or "Nothing". It implements [fmt.Stringer].
func (m Maybe) String() string {
	if !m.just {
		return "Nothing"
	}
	return fmt.Sprintf("Just %v", m.value)
}

// Fmap applies fn to the wrapped value; Nothing maps to Nothing.
func (m Maybe) Fmap(fn any) Functor {
	if !m.just {
		return m
	}
	return Just(apply1(fn, m.value))
}

// Amap applies the wrapped function to arg's wrapped value. The first
// Nothing operand, left to right, short-circuits the whole application.
func (m Maybe) Amap(arg Applicative) Applicative {
	mustSameVariant(m, arg)
	if !m.just {
		return m
	}
	other := arg.(Maybe)
	if !other.just {
		return other
	}
	return Just(apply1(m.value, other.value))
}

// Unit wraps v in Just.
func (m Maybe) Unit(v any) Monad { return Just(v) }

// Bind sequences the wrapped value through fn; Nothing propagates without
// invoking fn.
func (m Maybe) Bind(fn func(any) Monad) Monad {
	if !m.just {
		return m
	}
	return mustVariant[Maybe](m, fn(m.value))
}

// Then sequences next after m, discarding m's value but keeping its effect:
// Nothing.Then(next) is Nothing.
func (m Maybe) Then(next Monad) Monad { return thenViaBind(m, next) }
