package router

import (
	"net/url"

	"github.com/xy-planning-network/signpost/logger"
)

// A RouterOptFn is a functional option configuring a *Router when constructing a new one.
type RouterOptFn func(*Router)

// WithLogger sets the Logger the *Router logs bindings and failed requests with.
// By default, nothing is logged.
func WithLogger(l logger.Logger) RouterOptFn {
	return func(r *Router) {
		if l == nil {
			return
		}
		r.logger = l
	}
}

// WithRootURL sets the URL absolute links fall back to
// for a scheme or host not otherwise supplied.
func WithRootURL(u *url.URL) RouterOptFn {
	return func(r *Router) {
		r.rootURL = u
	}
}
