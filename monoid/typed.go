package monoid

import "golang.org/x/exp/constraints"

// Summable constrains the types whose zero value and + operator form the
// canonical monoid: every numeric type and every string type.
type Summable interface {
	constraints.Integer | constraints.Float | constraints.Complex | ~string
}

// Zero returns the identity element of T's canonical monoid: 0 for numbers,
// "" for strings.
func Zero[T Summable]() T {
	var z T
	return z
}

// Concat folds xs with + starting from [Zero]. With no arguments it returns
// the identity element.
//
//	monoid.Concat(1, 2, 3)        // 6
//	monoid.Concat("go", "lang")   // "golang"
func Concat[T Summable](xs ...T) T {
	acc := Zero[T]()
	for _, x := range xs {
		acc += x
	}
	return acc
}

// Join concatenates slices left to right into a fresh slice. With no
// arguments it returns the empty slice — the identity of the sequence
// monoid.
func Join[S ~[]E, E any](xs ...S) S {
	total := 0
	for _, x := range xs {
		total += len(x)
	}
	out := make(S, 0, total)
	for _, x := range xs {
		out = append(out, x...)
	}
	return out
}
