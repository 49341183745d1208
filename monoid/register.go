package monoid

import (
	"reflect"
	"sync"
)

// entry is the registered monoid behavior for one concrete type.
type entry struct {
	identity func() any
	combine  func(a, b any) any
}

// registry is the package-level, goroutine-safe store of foreign-type
// monoids consulted by IdentityOf and Combine.
var registry struct {
	mu    sync.RWMutex
	types map[reflect.Type]entry
}

func init() {
	registry.types = make(map[reflect.Type]entry)
}

// Register installs monoid behavior for sample's concrete type, for types
// from other packages that cannot implement [Monoid] themselves. identity
// must return the identity element; combine must merge its operands left to
// right and return a new value. Registering a type again replaces the
// previous entry. Safe to call from multiple goroutines.
//
// Example – adopt time.Duration as an additive monoid:
//
//	monoid.Register(time.Duration(0),
//	    func() any { return time.Duration(0) },
//	    func(a, b any) any { return a.(time.Duration) + b.(time.Duration) },
//	)
func Register(sample any, identity func() any, combine func(a, b any) any) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.types[reflect.TypeOf(sample)] = entry{identity: identity, combine: combine}
}

// HasRegistration reports whether sample's concrete type has a registered
// monoid.
func HasRegistration(sample any) bool {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	_, ok := registry.types[reflect.TypeOf(sample)]
	return ok
}

// Flush removes all registered monoids.
// Intended for use in tests.
func Flush() {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.types = make(map[reflect.Type]entry)
}

func lookup(t reflect.Type) (entry, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	e, ok := registry.types[t]
	return e, ok
}
