package middleware

import (
	"net/http"
	"strings"

	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/logger"
)

// LogMaskVal replaces the values of query params LogRequest scrubs.
const LogMaskVal = "xxxxxxx"

// LogRequest logs the request's method, requested URL, and originating IP address
// using the enclosed implementation of logger.Logger.
// The ID RequestID assigned the request, if any, is logged as "request_id",
// and the route InjectRoute matched it to, if any, as "route".
//
// LogRequest scrubs the values for the following keys:
// - password
//
// if logger.Logger is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(ls logger.Logger) Adapter {
	if ls == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uri := r.URL.Path
			q := r.URL.Query()
			if val := q.Get("password"); val != "" {
				q.Set("password", LogMaskVal)
			}

			if query := q.Encode(); query != "" {
				uri += "?" + query
			}

			strs := []string{r.Method, uri}
			if ip, ok := r.Context().Value(signpost.IpAddrKey).(string); ok {
				strs = append([]string{ip}, strs...)
			}

			var ctx *logger.LogContext
			if id, ok := r.Context().Value(signpost.RequestIDKey).(string); ok {
				ctx = &logger.LogContext{Data: map[string]any{"request_id": id}}
			}

			if route, ok := CurrentRoute(r.Context()); ok {
				if ctx == nil {
					ctx = new(logger.LogContext)
				}
				ctx.Route = route
			}

			ls.Info(strings.Join(strs, " "), ctx)
			h.ServeHTTP(w, r)
		})
	}
}
