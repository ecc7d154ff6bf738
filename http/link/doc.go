/*
Package link renders anchors to controller actions referenced by typed expressions.

A [Helper] wraps the [Renderer] of a host web framework, such as *router.Router.
Rather than naming a controller and action with strings,
a caller hands the Helper an [action.Call]:

	h := link.New(rtr)
	a, err := h.ActionLink("Details", action.With((*HomeController).Details, DetailsParams{ID: 5}))
	// <a href="/home/details/5">Details</a>

The Helper resolves the call into controller and action names and route values
with [action.Resolve], then hands them to the Renderer.
It adds no behavior of its own:
each shorter method is its Full counterpart with the omitted parameters left empty,
and errors from resolving or rendering return unchanged.

RouteLink and its variants target a route by name instead,
passing the controller and action along as route values
so routes like "/{controller}/{action}/{id}" can be filled in.
*/
package link
