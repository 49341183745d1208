package monads

import (
	"fmt"
	"reflect"

	"github.com/hasbyte1/go-haskell-utils/monoid"
)

// Writer is the logging monad: a result paired with an accumulated log. The
// log may be any monoid-capable value — a string, a number, a slice, a
// [monoid.Monoid] implementation or a type registered with
// [monoid.Register] — and each Writer value carries its own log, so Unit
// can derive the empty log from the receiver. Logs combine left to right,
// which matters because monoids need not be commutative.
type Writer struct {
	result any
	log    any
}

var _ Monad = Writer{}

// NewWriter pairs result with log. log must be a non-nil monoid-capable
// value; it determines the log type for the whole pipeline. Panics wrapping
// [monoid.ErrNoIdentity] otherwise, surfacing the misuse at the
// construction site rather than at the first Bind.
func NewWriter(result, log any) Writer {
	monoid.MustIdentityOf(log)
	return Writer{result: result, log: log}
}

// WriterOf wraps v with the identity log of logProto's type — the Writer
// unit. Panics when logProto's type has no known identity.
func WriterOf(v, logProto any) Writer {
	return Writer{result: v, log: monoid.MustIdentityOf(logProto)}
}

// Result returns the wrapped result.
func (w Writer) Result() any { return w.result }

// Log returns the accumulated log.
func (w Writer) Log() any { return w.log }

// Value returns the (result, log) view as a [Pair].
func (w Writer) Value() any { return Pair{First: w.result, Second: w.log} }

// Equal reports whether other is a Writer with an equal result and log.
func (w Writer) Equal(other Container) bool {
	o, ok := other.(Writer)
	return ok && reflect.DeepEqual(w.result, o.result) && reflect.DeepEqual(w.log, o.log)
}

// String returns a representation such as "Writer(5, [step])".
// It implements [fmt.Stringer].
func (w Writer) String() string { return fmt.Sprintf("Writer(%v, %v)", w.result, w.log) }

// Fmap applies fn to the result; the log is untouched.
func (w Writer) Fmap(fn any) Functor {
	return Writer{result: apply1(fn, w.result), log: w.log}
}

// Amap applies the receiver's wrapped function to arg's result and combines
// the logs, receiver's log first.
func (w Writer) Amap(arg Applicative) Applicative {
	mustSameVariant(w, arg)
	return amapViaBind(w, arg.(Writer))
}

// Unit wraps v with the identity element of the receiver's log type.
func (w Writer) Unit(v any) Monad {
	return Writer{result: v, log: monoid.MustIdentityOf(w.log)}
}

// Bind sequences the result through fn and combines the logs: the
// receiver's log on the left, fn's on the right. Panics wrapping
// [monoid.ErrMismatchedTypes] when the two logs are of different types.
func (w Writer) Bind(fn func(any) Monad) Monad {
	next := mustVariant[Writer](w, fn(w.result))
	return Writer{
		result: next.result,
		log:    monoid.MustCombine(w.log, next.log),
	}
}

// Then keeps the receiver's log effect, discards its result, and continues
// with next.
func (w Writer) Then(next Monad) Monad { return thenViaBind(w, next) }
