/*
Package action resolves typed references to controller methods into route values.

A controller is any type whose exported methods handle requests.
An action method has the shape of an [net/http.HandlerFunc] with a receiver,
optionally taking a params struct declaring its route parameters:

	type HomeController struct{}

	type DetailsParams struct {
		ID int `schema:"id"`
	}

	func (*HomeController) Index(w http.ResponseWriter, r *http.Request)                   {}
	func (*HomeController) Details(w http.ResponseWriter, r *http.Request, p DetailsParams) {}

[To] and [With] build a [Call] from a method expression,
so a misspelled action or a params value of the wrong type does not compile:

	action.To((*HomeController).Index)
	action.With((*HomeController).Details, DetailsParams{ID: 5})

[Resolve] turns a Call into the names of its controller and action (Home and Details)
and the route values its params declare ({"id": 5}),
merged with any extra route values a caller supplies.
Controllers rename themselves or their actions by implementing [ControllerNamer] or [ActionNamer].
*/
package action
