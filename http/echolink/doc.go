/*
Package echolink renders links to the routes of an [echo.Echo].

Routes serving an action are named after it, "Controller.Action";
[Add] and [AddWith] register action methods under such names.
Any other route is linked to by the name set on it:

	e := echo.New()
	echolink.AddWith(e, http.MethodGet, "/products/:slug", products, (*ProductsController).Show)
	e.GET("/about", about).Name = "about"

	h := link.New(echolink.New(e))
	h.ActionLink("Red Hat", action.With((*ProductsController).Show, ShowParams{Slug: "red-hat"}))
*/
package echolink
