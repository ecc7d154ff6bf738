package router

import (
	"fmt"
	"net/http"
	"reflect"

	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/http/action"
	"github.com/xy-planning-network/signpost/http/req"
	"github.com/xy-planning-network/signpost/logger"
)

// A Binding binds a Route to the action method of a controller.
//
// Construct one with Bind or BindWith.
type Binding struct {
	Controller string
	Action     string

	err     error
	handler func(logger.Logger, *logger.LogRoute) http.HandlerFunc
}

// Bind binds the action method m of ctrl to a Route.
// m is a method expression such as (*HomeController).Index.
func Bind[C any](ctrl C, m func(C, http.ResponseWriter, *http.Request)) *Binding {
	b := newBinding(action.To(m))
	b.handler = func(logger.Logger, *logger.LogRoute) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) { m(ctrl, w, r) }
	}

	return b
}

// BindWith binds the action method m of ctrl to a Route,
// decoding the route variables and query params of each request into its params P.
// m is a method expression such as (*HomeController).Details.
//
// P is a struct, a pointer to a struct, or a map[string]string.
// Requests whose route values cannot be decoded into P
// are responded to with 400 Bad Request.
func BindWith[C any, P any](ctrl C, m func(C, http.ResponseWriter, *http.Request, P)) *Binding {
	var zero P
	b := newBinding(action.With(m, zero))
	if b.err == nil {
		b.err = checkParams(reflect.TypeOf(&zero).Elem())
	}

	p := req.NewParser()
	b.handler = func(l logger.Logger, route *logger.LogRoute) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			var params P
			dst := any(&params)
			if rv := reflect.ValueOf(&params).Elem(); rv.Kind() == reflect.Pointer {
				rv.Set(reflect.New(rv.Type().Elem()))
				dst = params
			}

			if err := p.ParseRouteValues(r, dst); err != nil {
				l.Warn(err.Error(), &logger.LogContext{Error: err, Request: r, Route: route})
				http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
				return
			}

			m(ctrl, w, r, params)
		}
	}

	return b
}

func newBinding(call action.Call) *Binding {
	controller, act, err := call.Names()
	if err == nil {
		_, err = call.Params()
	}

	return &Binding{Controller: controller, Action: act, err: err}
}

func checkParams(t reflect.Type) error {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch {
	case t.Kind() == reflect.Struct:
		return nil

	case t == reflect.TypeOf(map[string]string(nil)):
		return nil

	default:
		return fmt.Errorf("%w: cannot decode route values into %s", signpost.ErrNotValid, t)
	}
}
