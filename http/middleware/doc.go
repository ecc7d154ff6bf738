/*
The middleware package defines what a middleware is in signpost and a set of basic middlewares.

The available middlewares are:
- CORS
- ForceHTTPS
- InjectIPAddress
- InjectRoute
- LogRequest
- RateLimit
- RequestID

ReportPanic wraps handlers rather than adapting them;
the router applies it, and InjectRoute, to every route it registers.

ranger applies a default middleware chain.
Apps built without ranger can copy-paste this one:

	vs := middleware.NewVisitors()
	adpts := []middleware.Adapter{
		middleware.RateLimit(vs),
		middleware.ForceHTTPS(env),
		middleware.InjectIPAddress(),
		middleware.RequestID(),
		middleware.LogRequest(log),
		middleware.CORS(baseURL),
	}
*/
package middleware
