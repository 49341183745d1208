// Package monads provides the functor/applicative/monad capability hierarchy
// and six concrete monads — Maybe, Either, List, Reader, Writer and State —
// for building Haskell-style composition pipelines in Go.
//
// # Capability hierarchy
//
// Four interfaces layer on top of each other: [Container] (a wrapped value
// with variant-aware equality), [Functor] (adds Fmap), [Applicative] (adds
// Amap) and [Monad] (adds Unit, Bind and Then). Every concrete type in this
// package implements all four; user-defined types may implement any prefix
// of the hierarchy, and the package-level [Fmap], [Amap], [Bind] and [Then]
// functions report a missing capability by panicking with
// [ErrNotImplemented].
//
// # Operator protocol
//
// Go has no operator overloading, so the Haskell-flavoured infix forms map
// to named operations:
//
//	f << functor          →  monads.Fmap(f, functor)
//	f << fa & fb          →  monads.Amap(monads.Fmap(f, fa), fb)
//	m >> f                →  m.Bind(f)
//	m >> n (discard)      →  m.Then(n)
//	unit(T, v)            →  monads.Unit(proto, v) or proto.Unit(v)
//
// # Dynamic values
//
// Wrapped values are dynamically typed (any): a context may hold an int one
// moment and a partially applied *curry.Func the next, which is exactly what
// the applicative pipeline requires. Fmap and Amap apply functions through
// the curry engine, so a plain two-argument Go function can be mapped over
// one context and then applied to a second:
//
//	add := func(x, y int) int { return x + y }
//
//	monads.Amap(monads.Fmap(add, monads.Just(7)), monads.Just(8))
//	// Just 15
//
// # Immutability
//
// Every operation returns a new value; nothing is mutated in place, so monad
// values are safe to share and reuse across pipelines.
//
// # Failure semantics
//
// Mixing concrete variants (a List combined with a Maybe) is a programming
// error and panics wrapping [ErrVariantMismatch]; no coercion is attempted.
// Failures raised by user-supplied functions propagate unchanged — the
// package recovers nothing, retries nothing and logs nothing.
//
// # Haskell equivalents
//
//   - Fmap  ≈  fmap / <$>
//   - Amap  ≈  <*>
//   - Bind  ≈  >>=
//   - Then  ≈  >>
//   - Unit  ≈  return / pure
package monads
