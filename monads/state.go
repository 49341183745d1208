package monads

import "reflect"

// State is the state-threading monad: a computation from an incoming state
// to a (result, next state) pair. Chained States thread the state value left
// to right through the whole pipeline; no hidden storage is involved, and
// nothing runs until [State.Run] supplies the initial state.
type State struct {
	run func(state any) (result, next any)
}

var _ Monad = State{}

// NewState wraps a state-transition function in a State.
func NewState(run func(state any) (result, next any)) State {
	return State{run: run}
}

// StateOf wraps v in a State that returns v and leaves the state untouched
// — the State unit.
func StateOf(v any) State {
	return State{run: func(s any) (any, any) { return v, s }}
}

// Run evaluates the State against the initial state, returning the final
// result and the final state.
func (s State) Run(initial any) (result, final any) {
	return s.run(initial)
}

// Value returns the wrapped state-transition function.
func (s State) Value() any { return s.run }

// Equal reports whether other is a State wrapping the same function.
// Function values compare equal only when both are nil, so State equality
// is structural, not extensional; compare [State.Run] outputs instead.
func (s State) Equal(other Container) bool {
	o, ok := other.(State)
	return ok && reflect.DeepEqual(s.run, o.run)
}

// Fmap applies fn to the result while passing the state through:
// fmap(f, s) = old -> let (v, new) = s(old) in (f(v), new).
func (s State) Fmap(fn any) Functor {
	return State{run: func(old any) (any, any) {
		v, next := s.run(old)
		return apply1(fn, v), next
	}}
}

// Amap threads the state left to right: run the receiver for the function,
// run arg on the resulting state for the value, then apply.
func (s State) Amap(arg Applicative) Applicative {
	mustSameVariant(s, arg)
	return amapViaBind(s, arg.(State))
}

// Unit wraps v in a state-preserving State, like [StateOf].
func (s State) Unit(v any) Monad { return StateOf(v) }

// Bind threads the state through both steps: run the receiver on the
// incoming state, feed its result to fn, and run the returned State on the
// intermediate state.
func (s State) Bind(fn func(any) Monad) Monad {
	return State{run: func(old any) (any, any) {
		v, mid := s.run(old)
		next := mustVariant[State](s, fn(v))
		return next.run(mid)
	}}
}

// Then runs the receiver for its state effect only, then next.
func (s State) Then(next Monad) Monad { return thenViaBind(s, next) }
