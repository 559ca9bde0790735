package multicast

import (
	"fmt"
	"reflect"

	"github.com/mandelsoft/goutils/generics"
	"github.com/modern-go/reflect2"
)

// Invoke calls the method with the given name on every live registered
// listener satisfying the capability T, passing the given arguments.
// It is the fire-and-forget convenience path, callers requiring
// per-listener isolation, ordering or partial-failure tolerance should
// iterate the result of Get themselves.
//
// The method is resolved once on the capability: the declared methods
// are scanned in order and the first one matching name, argument count
// and argument assignability is taken. If none matches, Invoke returns
// a MethodNotFoundError without calling any listener.
//
// If a call panics, or returns a non-nil error in a trailing error
// result, the broadcast is aborted and the failure is returned as an
// InvocationError. Remaining listeners are not called.
func Invoke[T any](r Registry, method string, args ...any) error {
	listeners := Get[T](r)

	capa := generics.TypeOf[T]()
	params, err := resolveMethod(capa, method, args)
	if err != nil {
		return err
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		if a == nil {
			in[i] = reflect.Zero(params[i])
		} else {
			in[i] = reflect.ValueOf(a)
		}
	}

	for _, l := range listeners {
		fn := reflect.ValueOf(l).MethodByName(method)
		if err := call(fn, in); err != nil {
			return &InvocationError{Capability: capa, Method: method, Err: err}
		}
	}
	return nil
}

// resolveMethod determines the parameter types of the first declared
// method of the capability matching name, arity and argument types.
func resolveMethod(capa reflect.Type, name string, args []any) ([]reflect.Type, error) {
	// methods of a non-interface capability carry the receiver as
	// first parameter
	recv := 0
	if capa.Kind() != reflect.Interface {
		recv = 1
	}

	for i := 0; i < capa.NumMethod(); i++ {
		m := capa.Method(i)
		if m.Name != name {
			continue
		}
		ft := m.Type
		if ft.NumIn()-recv != len(args) {
			continue
		}
		params := make([]reflect.Type, len(args))
		match := true
		for j := range args {
			params[j] = ft.In(j + recv)
			if !assignable(args[j], params[j]) {
				match = false
				break
			}
		}
		if match {
			return params, nil
		}
	}
	return nil, &MethodNotFoundError{Capability: capa, Method: name, Args: argTypes(args)}
}

func assignable(arg any, param reflect.Type) bool {
	if arg == nil {
		switch param.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface,
			reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
			return true
		default:
			return false
		}
	}
	return reflect.TypeOf(arg).AssignableTo(param)
}

func argTypes(args []any) []reflect.Type {
	types := make([]reflect.Type, len(args))
	for i, a := range args {
		if a != nil {
			types[i] = reflect.TypeOf(a)
		}
	}
	return types
}

// call executes a resolved method value, mapping a panic or a non-nil
// trailing error result to an error.
func call(fn reflect.Value, in []reflect.Value) (err error) {
	defer func() {
		if p := recover(); p != nil {
			if e, ok := p.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("%v", p)
			}
		}
	}()

	out := fn.Call(in)
	if n := len(out); n > 0 {
		if e, ok := out[n-1].Interface().(error); ok && !reflect2.IsNil(e) {
			return e
		}
	}
	return nil
}
