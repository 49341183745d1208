package monads

import (
	"fmt"
	"reflect"
)

// Either represents a value with two possibilities: Right(v) carries a
// result, Left(e) carries an error-like value. Left absorbs every operation
// the way Nothing does for Maybe, but keeps its payload, so the first
// failure in a pipeline survives to the end.
type Either struct {
	value any
	right bool
}

var _ Monad = Either{}

// Right wraps v as a successful Either.
func Right(v any) Either { return Either{value: v, right: true} }

// Left wraps e as a failed Either. e may be any value, not only error.
func Left(e any) Either { return Either{value: e, right: false} }

// IsRight reports whether e carries a result.
func (e Either) IsRight() bool { return e.right }

// IsLeft reports whether e carries a failure.
func (e Either) IsLeft() bool { return !e.right }

// Value returns the wrapped payload, whichever side it sits on.
func (e Either) Value() any { return e.value }

// Fold collapses e with one of two handlers: onLeft for Left, onRight for
// Right.
func (e Either) Fold(onLeft, onRight func(any) any) any {
	if e.right {
		return onRight(e.value)
	}
	return onLeft(e.value)
}

// Equal reports whether other is an Either on the same side wrapping an
// equal payload.
func (e Either) Equal(other Container) bool {
	o, ok := other.(Either)
	return ok && e.right == o.right && reflect.DeepEqual(e.value, o.value)
}

// String returns "Right v" or "Left e". It implements [fmt.Stringer].
func (e Either) String() string {
	if e.right {
		return fmt.Sprintf("Right %v", e.value)
	}
	return fmt.Sprintf("Left %v", e.value)
}

// Fmap applies fn to a Right payload; Left passes through untouched.
func (e Either) Fmap(fn any) Functor {
	if !e.right {
		return e
	}
	return Right(apply1(fn, e.value))
}

// Amap applies the wrapped function to arg's payload. The first Left
// operand, left to right, short-circuits the application and wins when both
// operands are Left.
func (e Either) Amap(arg Applicative) Applicative {
	mustSameVariant(e, arg)
	return amapViaBind(e, arg.(Either))
}

// Unit wraps v in Right.
func (e Either) Unit(v any) Monad { return Right(v) }

// Bind sequences a Right payload through fn; Left propagates without
// invoking fn.
func (e Either) Bind(fn func(any) Monad) Monad {
	if !e.right {
		return e
	}
	return mustVariant[Either](e, fn(e.value))
}

// Then sequences next after e, discarding e's payload but keeping its
// effect: Left.Then(next) stays that Left.
func (e Either) Then(next Monad) Monad { return thenViaBind(e, next) }
