package echolink

import (
	"fmt"
	"net/http"
	"net/url"
	"reflect"

	"github.com/labstack/echo/v4"
	"github.com/xy-planning-network/signpost/http/action"
	"github.com/xy-planning-network/signpost/http/req"
)

// A Router registers routes; *echo.Echo and *echo.Group are Routers.
type Router interface {
	Add(method, path string, handler echo.HandlerFunc, middleware ...echo.MiddlewareFunc) *echo.Route
}

// Add registers the action method m of ctrl with g,
// naming the route after the action.
// m is a method expression such as (*HomeController).Index.
//
// Add panics when m is not a method of ctrl.
func Add[C any](
	g Router,
	method, path string,
	ctrl C,
	m func(C, http.ResponseWriter, *http.Request),
	mw ...echo.MiddlewareFunc,
) *echo.Route {
	name := mustName(action.To(m))

	route := g.Add(method, path, func(c echo.Context) error {
		m(ctrl, c.Response(), c.Request())
		return nil
	}, mw...)
	route.Name = name

	return route
}

// AddWith registers the action method m of ctrl with g,
// naming the route after the action,
// and decodes the path params and query params of each request into its params P.
// m is a method expression such as (*HomeController).Details.
//
// P is a struct, a pointer to a struct, or a map[string]string.
// Requests whose params cannot be decoded into P fail with a 400 *echo.HTTPError.
//
// AddWith panics when m is not a method of ctrl.
func AddWith[C any, P any](
	g Router,
	method, path string,
	ctrl C,
	m func(C, http.ResponseWriter, *http.Request, P),
	mw ...echo.MiddlewareFunc,
) *echo.Route {
	var zero P
	name := mustName(action.With(m, zero))
	p := req.NewParser()

	route := g.Add(method, path, func(c echo.Context) error {
		vals := url.Values{}
		for k, v := range c.QueryParams() {
			vals[k] = v
		}

		names, values := c.ParamNames(), c.ParamValues()
		for i := 0; i < len(names) && i < len(values); i++ {
			vals.Set(names[i], values[i])
		}

		var params P
		dst := any(&params)
		if rv := reflect.ValueOf(&params).Elem(); rv.Kind() == reflect.Pointer {
			rv.Set(reflect.New(rv.Type().Elem()))
			dst = params
		}

		if err := p.ParseValues(vals, dst); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest).SetInternal(err)
		}

		m(ctrl, c.Response(), c.Request(), params)
		return nil
	}, mw...)
	route.Name = name

	return route
}

func mustName(call action.Call) string {
	controller, act, err := call.Names()
	if err == nil {
		_, err = call.Params()
	}

	if err != nil {
		panic(fmt.Sprintf("signpost/http/echolink: cannot bind %s: %s", call, err))
	}

	return RouteName(controller, act)
}
