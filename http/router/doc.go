/*
Package router routes HTTP requests to handlers and to the action methods of controllers,
and renders links back to them.

A [Router] utilizes [mux.Router] for its implementation,
and so functions as thin wrapper around that package.

A [Router] leverages a standardized data model - a [Route] -
when registering how requests should be routed.
A path and an HTTP method comprise a [Route].
Either an [http.HandlerFunc] or a [Binding] to an action method handles a request matching the Route.
Before a request gets to a handler, though,
any middlewares added to the Route are called in the order they appear.

	home := &HomeController{}
	r := router.New(env, middleware.LogRequest(log))
	r.HandleRoutes([]router.Route{
		{Path: "/", Method: http.MethodGet, Action: router.Bind(home, (*HomeController).Index)},
		{Path: "/details/{id}", Method: http.MethodGet, Action: router.BindWith(home, (*HomeController).Details)},
		{Path: "/about", Method: http.MethodGet, Name: "about", Handler: about},
	})

A [*Router] implements link.Renderer:
a route bound to an action is linked to by the names of its controller and action,
a named route by its name.

It is often the case that many routes for a web server share identical middleware stacks,
which aid in directing, redirecting, or adding contextual information to a request.
It is also often the case that small errors can lead to registering a route incorrectly,
thereby unintentionally exposing a resource or not collecting data necessary for actually handling a request.
Thus, a [Router] provides conveniences for making a single call to register many logically associated Routes,
and panics when any of them is registered incorrectly.
*/
package router
