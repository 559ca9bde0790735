package multicast

import (
	"fmt"
	"reflect"

	"github.com/mandelsoft/goutils/stringutils"
)

// MethodNotFoundError is returned by Invoke if the requested
// capability declares no method matching the requested name, arity
// and argument types. No listener has been called.
type MethodNotFoundError struct {
	Capability reflect.Type
	Method     string
	Args       []reflect.Type
}

func (e *MethodNotFoundError) Error() string {
	return fmt.Sprintf("no method %q on %s matching argument types (%s)",
		e.Method, e.Capability, stringutils.Join(e.Args, ", "))
}

// InvocationError is returned by Invoke if a resolved method failed
// for some listener. It wraps the listener's failure unmodified.
// Listeners not yet called when the failure occurred have not been
// called at all, earlier successful calls are not undone.
type InvocationError struct {
	Capability reflect.Type
	Method     string
	Err        error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("invocation of %s.%s failed: %s", e.Capability, e.Method, e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}
