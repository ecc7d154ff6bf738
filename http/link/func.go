package link

import (
	html "html/template"

	"github.com/xy-planning-network/signpost/http/action"
)

// Funcs returns the template functions rendering links through h:
//
//	{{ actionLink "Details" .DetailsCall }}
//	{{ actionLinkWith "Details" .DetailsCall .RouteValues .Attrs }}
//	{{ routeLink "Details" "product" .DetailsCall }}
//	{{ routeLinkWith "Details" "product" .DetailsCall .RouteValues .Attrs }}
//
// The calls themselves are built in Go and passed in as template data.
func (h *Helper) Funcs() html.FuncMap {
	return html.FuncMap{
		"actionLink": h.ActionLink,
		"actionLinkWith": func(text string, call action.Call, routeValues, htmlAttrs any) (html.HTML, error) {
			return h.ActionLinkWithAttrs(text, call, routeValues, htmlAttrs)
		},
		"routeLink": h.RouteLink,
		"routeLinkWith": func(text, routeName string, call action.Call, routeValues, htmlAttrs any) (html.HTML, error) {
			return h.RouteLinkWithAttrs(text, routeName, call, routeValues, htmlAttrs)
		},
	}
}
