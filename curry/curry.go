package curry

import (
	"fmt"
	"reflect"
)

// Func is a curry-aware callable: a function reference plus the ordered
// arguments bound so far. A Func with fewer bound arguments than its arity
// is a partial; applying it never invokes the underlying function.
//
// Func values are immutable. [Func.Apply] returns either a new partial or
// the result of invoking the underlying function, never modifying the
// receiver, so partials are safe to share across goroutines.
type Func struct {
	call  func(args []any) any
	arity int
	bound []any
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New wraps fn in a curry-aware Func. fn may be any Go function; its declared
// arity is the number of required positional parameters (a variadic
// parameter counts for zero). Passing an existing *Func returns it unchanged.
//
// New panics wrapping [ErrNotFunction] if fn is not callable.
func New(fn any) *Func {
	if f, ok := fn.(*Func); ok {
		return f
	}
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		panic(fmt.Errorf("%w: %T", ErrNotFunction, fn))
	}
	arity := v.Type().NumIn()
	if v.Type().IsVariadic() {
		arity--
	}
	return &Func{
		call:  func(args []any) any { return invoke(v, args) },
		arity: arity,
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Arity returns the declared arity of the underlying function.
func (f *Func) Arity() int { return f.arity }

// Pending returns how many more arguments are needed to saturate f.
func (f *Func) Pending() int { return f.arity - len(f.bound) }

// Bound returns a copy of the arguments bound so far, in application order.
func (f *Func) Bound() []any {
	out := make([]any, len(f.bound))
	copy(out, f.bound)
	return out
}

// String returns a short description such as "curry.Func(2/3 bound)".
// It implements [fmt.Stringer].
func (f *Func) String() string {
	return fmt.Sprintf("curry.Func(%d/%d bound)", len(f.bound), f.arity)
}

// ─────────────────────────────────────────────────────────────────────────────
// Application
// ─────────────────────────────────────────────────────────────────────────────

// Apply applies args to f. When the bound arguments plus args still fall
// short of the arity, Apply returns a new partial *Func and the underlying
// function is not invoked. Once the arity is reached the underlying function
// is invoked exactly once with every argument — bound first, then args, with
// any overflow beyond the arity forwarded as-is.
//
// The invocation result is nil for a niladic-result function, the single
// value for one result, and a []any for multiple results.
//
//	add3 := curry.New(func(a, b, c int) int { return a + b + c })
//	add3.Apply(1)                // *curry.Func, nothing invoked
//	add3.Apply(1, 2, 3)          // 6
//	add3.Apply(1).(*curry.Func).
//	     Apply(2, 3)             // 6 – identical for every split point
func (f *Func) Apply(args ...any) any {
	all := make([]any, 0, len(f.bound)+len(args))
	all = append(all, f.bound...)
	all = append(all, args...)
	if len(all) < f.arity {
		return &Func{call: f.call, arity: f.arity, bound: all}
	}
	return f.call(all)
}

// invoke calls fn with args converted to its parameter types. Arguments
// beyond the fixed parameters land in the variadic slot when fn is variadic;
// otherwise reflect reports the same arity error a direct call would.
func invoke(fn reflect.Value, args []any) any {
	t := fn.Type()
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		var pt reflect.Type
		switch {
		case t.IsVariadic() && i >= t.NumIn()-1:
			pt = t.In(t.NumIn() - 1).Elem()
		case i < t.NumIn():
			pt = t.In(i)
		}
		in[i] = conform(a, pt)
	}
	outs := fn.Call(in)
	switch len(outs) {
	case 0:
		return nil
	case 1:
		return outs[0].Interface()
	default:
		res := make([]any, len(outs))
		for i, o := range outs {
			res[i] = o.Interface()
		}
		return res
	}
}

// conform prepares a single argument for the parameter type pt. Assignable
// values pass through untouched; numeric values are converted to numeric
// parameter types (e.g. an int argument for a float64 parameter); anything
// else is left for reflect.Call to reject exactly as a direct call would. In
// particular an int is never turned into a string the way an unrestricted
// conversion would.
func conform(a any, pt reflect.Type) reflect.Value {
	if a == nil {
		if pt != nil {
			return reflect.Zero(pt)
		}
		return reflect.Zero(anyType)
	}
	v := reflect.ValueOf(a)
	if pt != nil && !v.Type().AssignableTo(pt) &&
		isNumeric(v.Kind()) && isNumeric(pt.Kind()) &&
		v.Type().ConvertibleTo(pt) {
		return v.Convert(pt)
	}
	return v
}

// isNumeric reports whether k is an integer, float or complex kind.
func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

var anyType = reflect.TypeOf((*any)(nil)).Elem()
