// Package curry provides partial application and point-free composition for
// ordinary Go functions, inspired by Haskell's curried function semantics.
//
// # Overview
//
// The central type is [Func], a curry-aware wrapper around any Go function.
// Applying a Func to fewer arguments than its declared arity returns a new
// Func with those arguments bound; applying it to enough arguments invokes
// the underlying function:
//
//	add := curry.New(func(x, y int) int { return x + y })
//
//	add.Apply(7, 8)                     // 15
//	add.Apply(7).(*curry.Func).Apply(8) // 15 – same result, any split
//
// # Immutability
//
// A Func is never mutated: every partial application returns a new Func, so
// partials can be shared and reused freely:
//
//	add7 := add.Apply(7).(*curry.Func)
//	add7.Apply(1) // 8
//	add7.Apply(2) // 9
//
// # Composition
//
// [Compose] builds right-to-left function composition — Compose(f, g) is the
// Haskell (f . g) — and preserves curry-awareness on both sides. For the
// common fully-typed cases the generic helpers [ComposeFn], [Curry2],
// [Curry3] and [Uncurry2] avoid reflection entirely.
//
// # Arity and overflow
//
// The declared arity of a Func counts the required positional parameters of
// the underlying function; a variadic parameter is not required. Arguments
// supplied beyond the arity are forwarded to the underlying function, so a
// variadic function receives them in its variadic slot and a fixed-arity
// function fails exactly as it would when called directly.
//
// # Haskell equivalents
//
//   - curry.New(f).Apply(a)  ≈  partial application (f a)
//   - curry.Compose(f, g)    ≈  f . g
//   - curry.Identity         ≈  id
//   - curry.Constant         ≈  const
package curry
