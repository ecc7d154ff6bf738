package router

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/http/middleware"
	"github.com/xy-planning-network/signpost/logger"
)

// A Route maps a path and HTTP method to an [http.HandlerFunc]
// or to the action method of a controller.
// Additional [middleware.Adapter] can be called when a server handles
// a request matching the Route.
//
// A Route with a Name can be linked to by that name.
// A Route with an Action can be linked to by the names of its controller and action.
type Route struct {
	Path        string
	Method      string
	Name        string
	Handler     http.HandlerFunc
	Action      *Binding
	Middlewares []middleware.Adapter
}

// Router routes requests to the handlers and actions registered with it
// and renders links to them.
//
// Routes are registered before serving; the Router is safe for concurrent use once serving.
type Router struct {
	Env           signpost.Environment
	everyReqStack []middleware.Adapter
	links         *linkTable
	logger        logger.Logger
	logReq        middleware.Adapter
	r             *mux.Router
	rootURL       *url.URL
}

// New constructs a [*Router] for the given environment.
//
// logReq is applied to requests no registered Route matches;
// if it is nil, NoopAdapter is.
func New(env signpost.Environment, logReq middleware.Adapter, opts ...RouterOptFn) *Router {
	if logReq == nil {
		logReq = middleware.NoopAdapter
	}

	r := &Router{
		Env:    env,
		links:  newLinkTable(),
		logger: logger.New(logger.WithLogger(log.New(io.Discard, "", 0))),
		logReq: logReq,
		r:      mux.NewRouter(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// CatchAll sets up a handler for all routes to funnel to for e.g. maintenance mode.
func (r *Router) CatchAll(handler http.HandlerFunc) {
	r.r.PathPrefix("/").Handler(
		middleware.Chain(
			middleware.ReportPanic(r.Env)(handler),
			r.everyReqStack...,
		),
	)
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) {
	r.HandleRoutes([]Route{route})
}

// HandleNotFound sets the provided [http.HandlerFunc] as the default function
// for when no other registered Route is matched.
func (r *Router) HandleNotFound(handler http.HandlerFunc) {
	r.r.NotFoundHandler = middleware.Chain(
		middleware.ReportPanic(r.Env)(handler),
		r.logReq,
	)
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after the default set.
//
// HandleRoutes panics when a Route cannot be registered:
// its path is malformed, it has neither a Handler nor a valid Action,
// or its Name is already taken.
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) {
	for _, route := range routes {
		handler, err := r.handlerFor(route)
		if err != nil {
			panic(fmt.Sprintf("signpost/http/router: cannot register %s %q: %s", route.Method, route.Path, err))
		}

		if err := r.links.claim(route.Name); err != nil {
			panic(fmt.Sprintf("signpost/http/router: cannot register %s %q: %s", route.Method, route.Path, err))
		}

		mws := make([]middleware.Adapter, 0, len(r.everyReqStack)+len(middlewares)+len(route.Middlewares)+1)
		mws = append(mws, middleware.InjectRoute(logRoute(route)))
		mws = append(mws, r.everyReqStack...)
		mws = append(mws, middlewares...)
		mws = append(mws, route.Middlewares...)

		mr := r.r.Handle(route.Path, middleware.Chain(middleware.ReportPanic(r.Env)(handler), mws...))
		if route.Method != "" {
			mr.Methods(route.Method)
		}

		if route.Name != "" {
			mr.Name(route.Name)
		}

		if err := r.links.add(mr, route); err != nil {
			panic(fmt.Sprintf("signpost/http/router: cannot register %s %q: %s", route.Method, route.Path, err))
		}

		if route.Action != nil {
			r.logger.Debug("bound route", &logger.LogContext{Route: logRoute(route)})
		}
	}
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.r.ServeHTTP(w, req)
}

// SubrouterHost constructs a [Router] that handles requests to the host.
//
// Links to its routes are always absolute.
func (r *Router) SubrouterHost(host string) *Router {
	sub := *r
	sub.everyReqStack = append([]middleware.Adapter(nil), r.everyReqStack...)
	sub.r = r.r.Host(host).Subrouter()

	return &sub
}

// Subrouter constructs a [Router] that handles requests to endpoints matching the prefix.
//
// e.g., r.Subrouter("/api/v1") handles requests to endpoints like /api/v1/users
//
// Routes registered on the Subrouter can be linked to from the Router and vice versa.
func (r *Router) Subrouter(prefix string) *Router {
	sub := *r
	sub.everyReqStack = append([]middleware.Adapter(nil), r.everyReqStack...)
	sub.r = r.r.PathPrefix(prefix).Subrouter()

	return &sub
}

func (r *Router) handlerFor(route Route) (http.HandlerFunc, error) {
	switch {
	case route.Action != nil && route.Handler != nil:
		return nil, fmt.Errorf("%w: a Route has either a Handler or an Action, not both", signpost.ErrNotValid)

	case route.Action != nil:
		if route.Action.err != nil {
			return nil, route.Action.err
		}

		return route.Action.handler(r.logger, logRoute(route)), nil

	case route.Handler != nil:
		return route.Handler, nil

	default:
		return nil, fmt.Errorf("%w: a Route needs a Handler or an Action", signpost.ErrMissingData)
	}
}

func logRoute(route Route) *logger.LogRoute {
	lr := &logger.LogRoute{Name: route.Name, Path: route.Path}
	if route.Action != nil {
		lr.Action = route.Action.Action
		lr.Controller = route.Action.Controller
	}

	return lr
}
