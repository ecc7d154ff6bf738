/*
Package req decodes the route values of an HTTP request into the params struct of an action.

Route values come from two places: the variables in the matched route's path
and the request's query params.
Package req merges them and decodes them with github.com/gorilla/schema,
so a params struct is named by the same "schema" tags
package action reads when generating links to that action.
A struct's "validate" tags are then checked with github.com/go-playground/validator/v10.

Decoding and validation failures are translated to [ValidationErrors],
which match signpost.ErrNotValid.
*/
package req
