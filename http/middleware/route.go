package middleware

import (
	"context"
	"net/http"

	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/logger"
)

// InjectRoute stashes route in the request's context under signpost.RouteKey,
// so LogRequest can name the controller and action serving a request.
//
// If route is nil, NoopAdapter returns and this middleware does nothing.
func InjectRoute(route *logger.LogRoute) Adapter {
	if route == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), signpost.RouteKey, route)))
		})
	}
}

// CurrentRoute returns the route InjectRoute stashed in ctx, if any.
func CurrentRoute(ctx context.Context) (*logger.LogRoute, bool) {
	route, ok := ctx.Value(signpost.RouteKey).(*logger.LogRoute)
	return route, ok && route != nil
}
