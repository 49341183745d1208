package monads

import "reflect"

// Reader is the environment monad: a computation that produces its result
// from a shared read-only environment. Composing Readers builds one function
// that threads the same environment everywhere; nothing runs until
// [Reader.Run] supplies it.
type Reader struct {
	run func(env any) any
}

var _ Monad = Reader{}

// NewReader wraps an environment-consuming function in a Reader.
func NewReader(run func(env any) any) Reader { return Reader{run: run} }

// ReaderOf wraps v in a constant Reader that ignores its environment — the
// Reader unit.
func ReaderOf(v any) Reader {
	return Reader{run: func(any) any { return v }}
}

// Ask is the Reader that returns the environment itself.
func Ask() Reader {
	return Reader{run: func(env any) any { return env }}
}

// Run evaluates the Reader against env.
func (r Reader) Run(env any) any { return r.run(env) }

// Value returns the wrapped environment function.
func (r Reader) Value() any { return r.run }

// Equal reports whether other is a Reader wrapping the same function.
// Function values compare equal only when both are nil, so Reader equality
// is structural, not extensional; compare [Reader.Run] outputs instead.
func (r Reader) Equal(other Container) bool {
	o, ok := other.(Reader)
	return ok && reflect.DeepEqual(r.run, o.run)
}

// Fmap post-composes fn onto the Reader:
// fmap(f, r) = env -> f(r(env)).
func (r Reader) Fmap(fn any) Functor {
	return Reader{run: func(env any) any {
		return apply1(fn, r.run(env))
	}}
}

// Amap runs both Readers on the same environment and applies the receiver's
// function result to arg's value result:
// amap(rf, rx) = env -> rf(env)(rx(env)).
func (r Reader) Amap(arg Applicative) Applicative {
	mustSameVariant(r, arg)
	other := arg.(Reader)
	return Reader{run: func(env any) any {
		return apply1(r.run(env), other.run(env))
	}}
}

// Unit wraps v in a constant Reader, like [ReaderOf].
func (r Reader) Unit(v any) Monad { return ReaderOf(v) }

// Bind threads the environment through both steps:
// (r >> f) = env -> f(r(env))(env).
func (r Reader) Bind(fn func(any) Monad) Monad {
	return Reader{run: func(env any) any {
		next := mustVariant[Reader](r, fn(r.run(env)))
		return next.run(env)
	}}
}

// Then runs r for its (nonexistent) effect and next for the result; both
// see the same environment.
func (r Reader) Then(next Monad) Monad { return thenViaBind(r, next) }
