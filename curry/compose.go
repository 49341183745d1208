package curry

// Compose builds the right-to-left composition (outer ∘ inner): the returned
// Func first saturates inner with its arguments, then applies outer to
// inner's single result. Either operand may be a plain Go function or a
// *Func partial; the composition's arity is inner's pending arity, and the
// result stays curry-aware — when outer itself needs further arguments the
// composition yields a partial rather than a value.
//
//	neg := func(n int) int { return -n }
//	add := func(x, y int) int { return x + y }
//
//	negSum := curry.Compose(neg, add) // arity 2
//	negSum.Apply(3, 4)                // -7
//	negSum.Apply(3).(*curry.Func).
//	       Apply(4)                   // -7
//
// Compose panics wrapping [ErrNotFunction] when an operand is not callable.
func Compose(outer, inner any) *Func {
	f, g := New(outer), New(inner)
	return &Func{
		call: func(args []any) any {
			return f.Apply(g.Apply(args...))
		},
		arity: g.Pending(),
	}
}
