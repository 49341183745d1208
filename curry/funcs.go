package curry

// This file contains fully-typed generic counterparts of the reflection
// based Func machinery. They cover the two- and three-argument cases that
// dominate real pipelines without any reflection cost; fall back to [New]
// for arbitrary arities or when the function is only known at runtime.

// Curry2 turns a two-argument function into a chain of single-argument
// functions.
//
//	add := curry.Curry2(func(x, y int) int { return x + y })
//	add(7)(8) // 15
func Curry2[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}

// Curry3 turns a three-argument function into a chain of single-argument
// functions.
func Curry3[A, B, C, D any](f func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D {
				return f(a, b, c)
			}
		}
	}
}

// Uncurry2 inverts [Curry2], turning a chain of single-argument functions
// back into a function accepting both arguments up front.
func Uncurry2[A, B, C any](f func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return f(a)(b)
	}
}

// ComposeFn is the typed right-to-left composition: ComposeFn(f, g)(x) is
// f(g(x)), the Haskell (f . g).
func ComposeFn[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Identity returns its argument unchanged. It is the left and right identity
// of [ComposeFn] and the usual probe for the functor identity law.
func Identity[T any](v T) T { return v }

// Constant returns a function that ignores its argument and always yields v.
func Constant[T, U any](v T) func(U) T {
	return func(U) T { return v }
}
