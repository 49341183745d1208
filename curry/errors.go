package curry

import "errors"

// Sentinel errors raised by the curry package. They are delivered by panic
// (an arity or type violation is a programming error, not a recoverable
// condition) and can be matched with errors.Is on the recovered value.
var (
	// ErrNotFunction is raised when New or Compose receives a value that is
	// neither a Go function nor a *Func.
	ErrNotFunction = errors.New("curry: value is not a function")
)
