// Package monoid provides the monoid abstraction — an associative combine
// operation with an identity element — together with a type-dispatching
// layer that treats Go's native primitives as ready-made monoids.
//
// # Overview
//
// Custom types opt in by implementing the [Monoid] interface:
//
//	type trail []string
//
//	func (trail) Identity() monoid.Monoid        { return trail{} }
//	func (t trail) Combine(o monoid.Monoid) monoid.Monoid {
//	    return append(append(trail{}, t...), o.(trail)...)
//	}
//
// Native-like values need no method at all: [IdentityOf] and [Combine]
// recognise every numeric kind (additive zero), strings (empty string) and
// slices (empty slice) directly:
//
//	monoid.MustIdentityOf(7)            // 0
//	monoid.MustCombine("foo", "bar")    // "foobar"
//	monoid.MustCombine([]int{1}, []int{2}) // [1 2]
//
// # Laws
//
// For every monoid value x with identity e, implementations must satisfy
// Combine(x, e) == Combine(e, x) == x and
// Combine(Combine(x, y), z) == Combine(x, Combine(y, z)). Combine is not
// required to be commutative — string concatenation is the canonical
// counterexample — so callers must preserve operand order.
//
// # Type safety
//
// Combining two values of different concrete types is never coerced:
// [Combine] returns [ErrMismatchedTypes] and [MustCombine] panics with it.
//
// # Foreign types
//
// Types from other packages that cannot implement [Monoid] can be adopted at
// runtime with [Register], which installs an (identity, combine) pair for
// the type in a goroutine-safe registry consulted by [IdentityOf] and
// [Combine].
//
// # Haskell equivalents
//
//   - Identity / IdentityOf  ≈  mempty / mzero
//   - Combine                ≈  mappend / mplus (<>)
//   - Fold                   ≈  mconcat
package monoid
