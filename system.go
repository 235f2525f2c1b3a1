package dynamo

import "reflect"

// SystemOf looks up the registered system of type T.
func SystemOf[T System](e Engine) (T, bool) {
	s, found := e.SystemFor(reflect.TypeOf((*T)(nil)).Elem())
	if !found {
		var zero T
		return zero, false
	}
	return s.(T), true
}

// RemoveSystemOf deregisters and returns the system of type T, invoking its
// removed hook when one was registered.
func RemoveSystemOf[T System](e Engine) (T, bool) {
	s, found := e.RemoveSystem(reflect.TypeOf((*T)(nil)).Elem())
	if !found {
		var zero T
		return zero, false
	}
	return s.(T), true
}
