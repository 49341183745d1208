package monads

import (
	"fmt"
	"reflect"
)

// List is the nondeterminism monad: an ordered sequence of zero or more
// values. Mapping applies element-wise, applying is the ordered cartesian
// product, and binding concatenates the per-element results one level deep.
// The empty List is the absorbing failure state.
//
// List values are immutable: the constructor copies its input and every
// operation builds a fresh sequence.
type List struct {
	items []any
}

var _ Monad = List{}

// NewList creates a List from a variadic list of items (copied).
func NewList(items ...any) List {
	dst := make([]any, len(items))
	copy(dst, items)
	return List{items: dst}
}

// Len returns the number of items in the list.
func (l List) Len() int { return len(l.items) }

// IsEmpty reports whether the list contains no items.
func (l List) IsEmpty() bool { return len(l.items) == 0 }

// Items returns a copy of the underlying sequence.
func (l List) Items() []any {
	out := make([]any, len(l.items))
	copy(out, l.items)
	return out
}

// Value returns a copy of the underlying sequence, like [List.Items].
func (l List) Value() any { return l.Items() }

// Equal reports whether other is a List wrapping an equal sequence, order
// included.
func (l List) Equal(other Container) bool {
	o, ok := other.(List)
	if !ok || len(l.items) != len(o.items) {
		return false
	}
	for i := range l.items {
		if !reflect.DeepEqual(l.items[i], o.items[i]) {
			return false
		}
	}
	return true
}

// String returns a representation such as "List[1 2 3]".
// It implements [fmt.Stringer].
func (l List) String() string { return fmt.Sprintf("List%v", l.items) }

// Fmap applies fn to every item, order preserved.
func (l List) Fmap(fn any) Functor {
	out := make([]any, len(l.items))
	for i, item := range l.items {
		out[i] = apply1(fn, item)
	}
	return List{items: out}
}

// Amap applies every wrapped function to every item of arg — the cartesian
// product, with the function varying slower than the argument:
//
//	fs.Amap(xs) = [f1(x1) f1(x2) … f2(x1) f2(x2) …]
func (l List) Amap(arg Applicative) Applicative {
	mustSameVariant(l, arg)
	other := arg.(List)
	out := make([]any, 0, len(l.items)*len(other.items))
	for _, fn := range l.items {
		for _, item := range other.items {
			out = append(out, apply1(fn, item))
		}
	}
	return List{items: out}
}

// Unit wraps v in a singleton List.
func (l List) Unit(v any) Monad { return NewList(v) }

// Bind applies fn to every item and concatenates the resulting lists in
// order, flattening one level. An empty receiver yields an empty List
// without invoking fn.
func (l List) Bind(fn func(any) Monad) Monad {
	out := make([]any, 0, len(l.items))
	for _, item := range l.items {
		next := mustVariant[List](l, fn(item))
		out = append(out, next.items...)
	}
	return List{items: out}
}

// Then repeats next's items once per item of l, keeping l's multiplicity
// while discarding its values.
func (l List) Then(next Monad) Monad { return thenViaBind(l, next) }
