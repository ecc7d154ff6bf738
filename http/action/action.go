package action

import (
	"fmt"
	"net/http"
	"reflect"
	"runtime"
	"strings"

	"github.com/xy-planning-network/signpost"
)

// A Call references an action method of a controller
// together with the values its route parameters take at the call site.
//
// The zero value references no action; resolving it fails with [signpost.ErrNotValid].
type Call struct {
	controller reflect.Type
	method     reflect.Value
	params     reflect.Value
}

// To builds a Call for an action method taking no route parameters.
// m is a method expression such as (*HomeController).Index.
func To[C any](m func(C, http.ResponseWriter, *http.Request)) Call {
	return Call{controller: typeOf[C](), method: reflect.ValueOf(m)}
}

// With builds a Call for an action method whose route parameters are declared by P,
// passing params as the values for those parameters.
// m is a method expression such as (*HomeController).Details.
//
// P is ordinarily a struct; see [NewValues] for how its fields name route parameters.
func With[C any, P any](m func(C, http.ResponseWriter, *http.Request, P), params P) Call {
	return Call{
		controller: typeOf[C](),
		method:     reflect.ValueOf(m),
		params:     reflect.ValueOf(&params).Elem(),
	}
}

// Names returns the controller and action names c resolves to.
func (c Call) Names() (controller, action string, err error) {
	method, err := c.methodName()
	if err != nil {
		return "", "", err
	}

	return controllerName(c.controller), actionName(c.controller, method), nil
}

// Params returns the route values declared by the params c was built with.
// A Call built with To has none.
func (c Call) Params() (Values, error) {
	if !c.params.IsValid() {
		return make(Values), nil
	}

	rv := c.params
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return make(Values), nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		vals := make(Values)
		structValues(rv, vals)
		return vals, nil

	case reflect.Map:
		return NewValues(rv.Interface())

	default:
		return nil, fmt.Errorf("%w: params of %s must be a struct or a map, got %s", signpost.ErrNotValid, c, rv.Type())
	}
}

// String formats c as Controller.Action, or a placeholder when c is not a valid Call.
func (c Call) String() string {
	controller, action, err := c.Names()
	if err != nil {
		return "<invalid action>"
	}

	return controller + "." + action
}

// methodName retrieves the name of the method c.method refers to,
// confirming it belongs to the controller type.
func (c Call) methodName() (string, error) {
	if c.controller == nil || !c.method.IsValid() || c.method.IsNil() {
		return "", fmt.Errorf("%w: call references no action method", signpost.ErrNotValid)
	}

	fn := runtime.FuncForPC(c.method.Pointer())
	if fn == nil {
		return "", fmt.Errorf("%w: cannot look up action method", signpost.ErrUnexpected)
	}

	// NOTE: method expressions are named like pkg/path.(*HomeController).Index
	// or pkg/path.HomeController.Index; method values carry an additional -fm suffix.
	full := fn.Name()
	recv, name, ok := cutLast(strings.TrimSuffix(full, "-fm"), ".")
	if !ok || recv != receiverSymbol(c.controller) {
		return "", fmt.Errorf("%w: %s is not a method of %s", signpost.ErrNotValid, full, c.controller)
	}

	if _, ok := c.controller.MethodByName(name); !ok {
		return "", fmt.Errorf("%w: %s is not a method of %s", signpost.ErrNotValid, full, c.controller)
	}

	return name, nil
}

// receiverSymbol formats t as the runtime names the receiver of its methods:
// the package path, with dots in its last element escaped,
// followed by the type name, parenthesized with a star for pointers.
// Type arguments of generic types are elided as "[...]".
func receiverSymbol(t reflect.Type) string {
	ptr := t.Kind() == reflect.Pointer
	if ptr {
		t = t.Elem()
	}

	name := t.Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i] + "[...]"
	}

	pkg := t.PkgPath()
	dir, last, ok := cutLast(pkg, "/")
	if ok {
		pkg = dir + "/" + strings.ReplaceAll(last, ".", "%2e")
	} else {
		pkg = strings.ReplaceAll(pkg, ".", "%2e")
	}

	if ptr {
		return pkg + ".(*" + name + ")"
	}

	return pkg + "." + name
}

func cutLast(s, sep string) (before, after string, found bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, "", false
	}

	return s[:i], s[i+len(sep):], true
}

func typeOf[T any]() reflect.Type { return reflect.TypeOf((*T)(nil)).Elem() }
