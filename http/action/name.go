package action

import (
	"reflect"
	"strings"
)

const controllerSuffix = "Controller"

// A ControllerNamer overrides the name derived from a controller's type.
//
// ControllerName is called on a zero value of the controller.
type ControllerNamer interface {
	ControllerName() string
}

// An ActionNamer renames action methods.
// ActionNames maps Go method names to the action names links use;
// methods it omits keep their Go name.
//
// ActionNames is called on a zero value of the controller.
type ActionNamer interface {
	ActionNames() map[string]string
}

// controllerName derives the name of the controller of type t.
//
// Without a ControllerNamer, pointers, type arguments,
// and a trailing "Controller" are removed from the type name:
// *HomeController becomes Home.
func controllerName(t reflect.Type) string {
	if namer, ok := zero(t).(ControllerNamer); ok {
		if name := namer.ControllerName(); name != "" {
			return name
		}
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	name := t.Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}

	if name != controllerSuffix {
		name = strings.TrimSuffix(name, controllerSuffix)
	}

	return name
}

// actionName derives the name of the action method of the controller of type t.
func actionName(t reflect.Type, method string) string {
	namer, ok := zero(t).(ActionNamer)
	if !ok {
		return method
	}

	if name := namer.ActionNames()[method]; name != "" {
		return name
	}

	return method
}

// zero constructs a non-nil pointer to a zero value of t's element
// so naming methods can be called without an instance.
// Interface types yield nil.
func zero(t reflect.Type) any {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Kind() == reflect.Interface {
		return nil
	}

	return reflect.New(t).Interface()
}
