// Package linktest provides a link.Renderer recording what it is asked to render
// and a router for rendering links end to end.
package linktest

import (
	"fmt"
	html "html/template"
	"sync"

	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/http/action"
	"github.com/xy-planning-network/signpost/http/router"
)

// Kinds of RenderCall.
const (
	ActionKind = "action"
	RouteKind  = "route"
)

// A RenderCall is the arguments one ActionLink or RouteLink call received.
type RenderCall struct {
	Kind           string
	LinkText       string
	ActionName     string
	ControllerName string
	RouteName      string
	Protocol       string
	HostName       string
	Fragment       string
	RouteValues    action.Values
	HTMLAttrs      any
}

// Recorder is a link.Renderer recording every call it receives.
//
// When Err is set, every call returns it.
// Otherwise, the rendered HTML names the action or route rendered:
//
//	<a data-action="Home.Details">Details</a>
//	<a data-route="product-by-slug">Show</a>
type Recorder struct {
	Err error

	mu    sync.Mutex
	calls []RenderCall
}

// ActionLink records the call.
func (r *Recorder) ActionLink(
	linkText, actionName, controllerName, protocol, hostName, fragment string,
	routeValues action.Values,
	htmlAttrs any,
) (html.HTML, error) {
	r.record(RenderCall{
		Kind:           ActionKind,
		LinkText:       linkText,
		ActionName:     actionName,
		ControllerName: controllerName,
		Protocol:       protocol,
		HostName:       hostName,
		Fragment:       fragment,
		RouteValues:    routeValues,
		HTMLAttrs:      htmlAttrs,
	})

	if r.Err != nil {
		return "", r.Err
	}

	return html.HTML(fmt.Sprintf(`<a data-action="%s.%s">%s</a>`, controllerName, actionName, linkText)), nil
}

// RouteLink records the call.
func (r *Recorder) RouteLink(
	linkText, routeName, protocol, hostName, fragment string,
	routeValues action.Values,
	htmlAttrs any,
) (html.HTML, error) {
	r.record(RenderCall{
		Kind:        RouteKind,
		LinkText:    linkText,
		RouteName:   routeName,
		Protocol:    protocol,
		HostName:    hostName,
		Fragment:    fragment,
		RouteValues: routeValues,
		HTMLAttrs:   htmlAttrs,
	})

	if r.Err != nil {
		return "", r.Err
	}

	return html.HTML(fmt.Sprintf(`<a data-route="%s">%s</a>`, routeName, linkText)), nil
}

// Calls returns the calls recorded so far.
func (r *Recorder) Calls() []RenderCall {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]RenderCall(nil), r.calls...)
}

// Last returns the most recent call recorded, or the zero RenderCall.
func (r *Recorder) Last() RenderCall {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.calls) == 0 {
		return RenderCall{}
	}

	return r.calls[len(r.calls)-1]
}

func (r *Recorder) record(c RenderCall) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, c)
}

// NewRouter constructs a *router.Router with default options
// and registers routes with it.
func NewRouter(routes ...router.Route) *router.Router {
	r := router.New(signpost.Testing, nil)
	r.HandleRoutes(routes)

	return r
}
