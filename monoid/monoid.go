package monoid

import (
	"fmt"
	"reflect"
)

// Monoid is a value with an associative Combine operation and an identity
// element. Implementations must return new values from Combine — never
// mutate the receiver — and must satisfy the laws documented in the package
// comment.
type Monoid interface {
	// Identity returns the identity element of the receiver's monoid.
	Identity() Monoid

	// Combine merges the receiver with other (receiver on the left) and
	// returns the result.
	Combine(other Monoid) Monoid
}

// Fold combines first with every value in rest, left to right.
//
//	monoid.Fold(trail{"a"}, trail{"b"}, trail{"c"}) // trail{a b c}
func Fold(first Monoid, rest ...Monoid) Monoid {
	acc := first
	for _, m := range rest {
		acc = acc.Combine(m)
	}
	return acc
}

// ─────────────────────────────────────────────────────────────────────────────
// Dynamic dispatch
// ─────────────────────────────────────────────────────────────────────────────

// IdentityOf returns the identity element for sample's concrete type.
// Resolution order: a [Monoid] implementation wins, then a [Register]ed
// entry, then the primitive table (numeric kinds → typed zero, string → "",
// slice → empty slice of the same type). Returns [ErrNoIdentity] otherwise.
func IdentityOf(sample any) (any, error) {
	if m, ok := sample.(Monoid); ok {
		return m.Identity(), nil
	}
	if sample == nil {
		return nil, fmt.Errorf("%w: <nil>", ErrNoIdentity)
	}
	t := reflect.TypeOf(sample)
	if e, ok := lookup(t); ok {
		return e.identity(), nil
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return reflect.Zero(t).Interface(), nil
	case reflect.Slice:
		return reflect.MakeSlice(t, 0, 0).Interface(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNoIdentity, t)
}

// MustIdentityOf is IdentityOf panicking on error.
func MustIdentityOf(sample any) any {
	id, err := IdentityOf(sample)
	if err != nil {
		panic(err)
	}
	return id
}

// Combine merges a and b (a on the left). Both operands must share one
// concrete type; [ErrMismatchedTypes] is returned otherwise. Resolution
// order matches [IdentityOf]: Monoid implementation, registry, then native
// semantics — + for numerics and strings, append for slices.
func Combine(a, b any) (any, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: <nil> operand", ErrNotCombinable)
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return nil, fmt.Errorf("%w: %s and %s", ErrMismatchedTypes, ta, tb)
	}
	if ma, ok := a.(Monoid); ok {
		return ma.Combine(b.(Monoid)), nil
	}
	if e, ok := lookup(ta); ok {
		return e.combine(a, b), nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch ta.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return reflect.ValueOf(va.Int() + vb.Int()).Convert(ta).Interface(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return reflect.ValueOf(va.Uint() + vb.Uint()).Convert(ta).Interface(), nil
	case reflect.Float32, reflect.Float64:
		return reflect.ValueOf(va.Float() + vb.Float()).Convert(ta).Interface(), nil
	case reflect.Complex64, reflect.Complex128:
		return reflect.ValueOf(va.Complex() + vb.Complex()).Convert(ta).Interface(), nil
	case reflect.String:
		return reflect.ValueOf(va.String() + vb.String()).Convert(ta).Interface(), nil
	case reflect.Slice:
		out := reflect.MakeSlice(ta, 0, va.Len()+vb.Len())
		out = reflect.AppendSlice(out, va)
		out = reflect.AppendSlice(out, vb)
		return out.Interface(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotCombinable, ta)
}

// MustCombine is Combine panicking on error.
func MustCombine(a, b any) any {
	out, err := Combine(a, b)
	if err != nil {
		panic(err)
	}
	return out
}
