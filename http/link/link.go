package link

import (
	html "html/template"

	"github.com/xy-planning-network/signpost/http/action"
)

// A Renderer renders anchors from untyped action and route names,
// the way the host web framework generates links.
//
// *router.Router implements Renderer.
type Renderer interface {
	// ActionLink renders an anchor to the route serving the named action of the named controller.
	ActionLink(
		linkText, actionName, controllerName, protocol, hostName, fragment string,
		routeValues action.Values,
		htmlAttrs any,
	) (html.HTML, error)

	// RouteLink renders an anchor to the named route.
	RouteLink(
		linkText, routeName, protocol, hostName, fragment string,
		routeValues action.Values,
		htmlAttrs any,
	) (html.HTML, error)
}

// A Helper renders anchors to actions referenced by an [action.Call]
// instead of by controller and action names.
//
// Every method forwards to ActionLinkFull or RouteLinkFull,
// leaving the parameters it omits empty.
type Helper struct {
	r Renderer
}

// New constructs a *Helper rendering through r.
func New(r Renderer) *Helper { return &Helper{r: r} }

// ActionLink renders an anchor with linkText to the action call references.
func (h *Helper) ActionLink(linkText string, call action.Call) (html.HTML, error) {
	return h.ActionLinkFull(linkText, call, "", "", "", nil, nil)
}

// ActionLinkWithValues renders an anchor with linkText to the action call references,
// adding routeValues to those call declares.
//
// routeValues is anything [action.NewValues] accepts.
func (h *Helper) ActionLinkWithValues(linkText string, call action.Call, routeValues any) (html.HTML, error) {
	return h.ActionLinkFull(linkText, call, "", "", "", routeValues, nil)
}

// ActionLinkWithAttrs renders an anchor with linkText and htmlAttrs to the action call references,
// adding routeValues to those call declares.
//
// routeValues and htmlAttrs are anything [action.NewValues] accepts.
func (h *Helper) ActionLinkWithAttrs(linkText string, call action.Call, routeValues, htmlAttrs any) (html.HTML, error) {
	return h.ActionLinkFull(linkText, call, "", "", "", routeValues, htmlAttrs)
}

// ActionLinkFull renders an anchor with linkText and htmlAttrs to the action call references,
// adding routeValues to those call declares.
//
// When protocol or hostName is set, the anchor's URL is absolute.
// When fragment is set, it is appended to the URL.
//
// Errors resolving call or rendering the anchor are returned as is.
func (h *Helper) ActionLinkFull(
	linkText string,
	call action.Call,
	protocol, hostName, fragment string,
	routeValues, htmlAttrs any,
) (html.HTML, error) {
	res, err := action.Resolve(call, routeValues, false)
	if err != nil {
		return "", err
	}

	return h.r.ActionLink(
		linkText,
		res.Action,
		res.Controller,
		protocol,
		hostName,
		fragment,
		res.RouteValues,
		htmlAttrs,
	)
}

// RouteLink renders an anchor with linkText to the route named routeName,
// using the action call references as its route values.
func (h *Helper) RouteLink(linkText, routeName string, call action.Call) (html.HTML, error) {
	return h.RouteLinkFull(linkText, routeName, call, "", "", "", nil, nil)
}

// RouteLinkWithValues renders an anchor with linkText to the route named routeName,
// using the action call references and routeValues as its route values.
func (h *Helper) RouteLinkWithValues(linkText, routeName string, call action.Call, routeValues any) (html.HTML, error) {
	return h.RouteLinkFull(linkText, routeName, call, "", "", "", routeValues, nil)
}

// RouteLinkWithAttrs renders an anchor with linkText and htmlAttrs to the route named routeName,
// using the action call references and routeValues as its route values.
func (h *Helper) RouteLinkWithAttrs(
	linkText, routeName string,
	call action.Call,
	routeValues, htmlAttrs any,
) (html.HTML, error) {
	return h.RouteLinkFull(linkText, routeName, call, "", "", "", routeValues, htmlAttrs)
}

// RouteLinkFull renders an anchor with linkText and htmlAttrs to the route named routeName,
// using the action call references and routeValues as its route values.
// The controller and action names are included as the
// [action.ControllerKey] and [action.ActionKey] route values.
//
// When protocol or hostName is set, the anchor's URL is absolute.
// When fragment is set, it is appended to the URL.
//
// Errors resolving call or rendering the anchor are returned as is.
func (h *Helper) RouteLinkFull(
	linkText, routeName string,
	call action.Call,
	protocol, hostName, fragment string,
	routeValues, htmlAttrs any,
) (html.HTML, error) {
	res, err := action.Resolve(call, routeValues, true)
	if err != nil {
		return "", err
	}

	return h.r.RouteLink(
		linkText,
		routeName,
		protocol,
		hostName,
		fragment,
		res.RouteValues,
		htmlAttrs,
	)
}
