package echolink

import (
	"fmt"
	html "html/template"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/http/action"
	"github.com/xy-planning-network/signpost/http/link"
)

const anyParam = "*"

var (
	_ link.Renderer = (*Renderer)(nil)

	actionNameRegexp = regexp.MustCompile(`^(\w+)\.(\w+)$`)
)

// RouteName names the route serving action of controller.
func RouteName(controller, action string) string { return controller + "." + action }

// A Renderer renders links to the routes of an *echo.Echo, including those of its hosts.
type Renderer struct {
	e       *echo.Echo
	rootURL *url.URL
}

// An OptFn is a functional option configuring a *Renderer when constructing a new one.
type OptFn func(*Renderer)

// WithRootURL sets the URL absolute links fall back to
// for a scheme or host not otherwise supplied.
func WithRootURL(u *url.URL) OptFn {
	return func(r *Renderer) { r.rootURL = u }
}

// New constructs a *Renderer over the routes registered with e.
// Routes registered after New are linked to as well.
func New(e *echo.Echo, opts ...OptFn) *Renderer {
	r := &Renderer{e: e}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

type hostRoute struct {
	host  string
	route *echo.Route
}

// routes lists the routes of e in host then path order.
func (r *Renderer) routes() []hostRoute {
	var hrs []hostRoute
	for _, route := range r.e.Routes() {
		hrs = append(hrs, hostRoute{route: route})
	}

	for host, router := range r.e.Routers() {
		for _, route := range router.Routes() {
			hrs = append(hrs, hostRoute{host: host, route: route})
		}
	}

	sort.SliceStable(hrs, func(i, j int) bool {
		if hrs[i].host != hrs[j].host {
			return hrs[i].host < hrs[j].host
		}
		if hrs[i].route.Path != hrs[j].route.Path {
			return hrs[i].route.Path < hrs[j].route.Path
		}
		return hrs[i].route.Method < hrs[j].route.Method
	})

	return hrs
}

// ActionURL returns the URL of the route named after the action of controller,
// ignoring case.
// Where several routes are, the first in path order whose path can be filled with routeValues is used.
//
// ActionURL returns an error wrapping signpost.ErrNotExist when no route is named after the action.
func (r *Renderer) ActionURL(actionName, controllerName, protocol, hostName, fragment string, routeValues action.Values) (string, error) {
	t, err := r.actionTarget(actionName, controllerName, routeValues)
	if err != nil {
		return "", err
	}

	return r.finish(t, protocol, hostName, fragment).Href(routeValues)
}

// ActionLink renders an anchor with linkText and htmlAttrs
// to the route serving the action of controller, as ActionURL finds it.
//
// ActionLink implements [link.Renderer].
func (r *Renderer) ActionLink(
	linkText, actionName, controllerName, protocol, hostName, fragment string,
	routeValues action.Values,
	htmlAttrs any,
) (html.HTML, error) {
	t, err := r.actionTarget(actionName, controllerName, routeValues)
	if err != nil {
		return "", err
	}

	return r.finish(t, protocol, hostName, fragment).Render(linkText, routeValues, htmlAttrs)
}

// RouteURL returns the URL of the route named routeName.
//
// RouteURL returns an error wrapping signpost.ErrNotExist when no route is named routeName
// and signpost.ErrNotValid when routeName names an action
// other than the one routeValues name.
func (r *Renderer) RouteURL(routeName, protocol, hostName, fragment string, routeValues action.Values) (string, error) {
	t, err := r.routeTarget(routeName, routeValues)
	if err != nil {
		return "", err
	}

	return r.finish(t, protocol, hostName, fragment).Href(routeValues)
}

// RouteLink renders an anchor with linkText and htmlAttrs to the route named routeName,
// as RouteURL finds it.
//
// RouteLink implements [link.Renderer].
func (r *Renderer) RouteLink(
	linkText, routeName, protocol, hostName, fragment string,
	routeValues action.Values,
	htmlAttrs any,
) (html.HTML, error) {
	t, err := r.routeTarget(routeName, routeValues)
	if err != nil {
		return "", err
	}

	return r.finish(t, protocol, hostName, fragment).Render(linkText, routeValues, htmlAttrs)
}

func (r *Renderer) actionTarget(actionName, controllerName string, routeValues action.Values) (link.Target, error) {
	name := RouteName(controllerName, actionName)

	var firstErr error
	for _, hr := range r.routes() {
		if !strings.EqualFold(hr.route.Name, name) {
			continue
		}

		t, err := fill(hr, routeValues)
		if err == nil {
			return t, nil
		}

		if firstErr == nil {
			firstErr = err
		}
	}

	if firstErr != nil {
		return link.Target{}, firstErr
	}

	return link.Target{}, fmt.Errorf("%w: no route serves %s", signpost.ErrNotExist, name)
}

func (r *Renderer) routeTarget(routeName string, routeValues action.Values) (link.Target, error) {
	for _, hr := range r.routes() {
		if hr.route.Name != routeName {
			continue
		}

		if m := actionNameRegexp.FindStringSubmatch(routeName); m != nil {
			for key, name := range map[string]string{action.ControllerKey: m[1], action.ActionKey: m[2]} {
				if v, ok := routeValues[key]; ok && v != nil && !link.MatchesName(v, name) {
					return link.Target{}, fmt.Errorf(
						"%w: route %q does not serve %s %v",
						signpost.ErrNotValid, routeName, key, v,
					)
				}
			}
		}

		return fill(hr, routeValues)
	}

	return link.Target{}, fmt.Errorf("%w: no route named %q", signpost.ErrNotExist, routeName)
}

func (r *Renderer) finish(t link.Target, protocol, hostName, fragment string) link.Target {
	t.Protocol = protocol
	t.HostName = hostName
	t.Fragment = fragment
	t.RootURL = r.rootURL

	return t
}

// fill fills the ":name" and "*" params of the route's path with routeValues.
// A "*" param takes the route value named "*".
func fill(hr hostRoute, routeValues action.Values) (link.Target, error) {
	path := hr.route.Path
	b := new(strings.Builder)
	var consumed []string

	for i := 0; i < len(path); i++ {
		c := path[i]
		if c == '\\' && i+1 < len(path) && path[i+1] == ':' {
			b.WriteByte(':')
			i++
			continue
		}

		if c != ':' && c != '*' {
			b.WriteByte(c)
			continue
		}

		name := anyParam
		if c == ':' {
			end := strings.IndexByte(path[i:], '/')
			if end < 0 {
				end = len(path) - i
			}
			name = path[i+1 : i+end]
			i += end - 1
		}

		v, ok := routeValues[name]
		if !ok || v == nil {
			if name == anyParam {
				consumed = append(consumed, name)
				continue
			}
			return link.Target{}, fmt.Errorf("%w: route param %q", signpost.ErrMissingData, name)
		}

		s := link.RouteValue(v)
		if name != anyParam && (s == "" || strings.Contains(s, "/")) {
			return link.Target{}, fmt.Errorf("%w: route param %q cannot be %q", signpost.ErrNotValid, name, s)
		}

		b.WriteString(s)
		consumed = append(consumed, name)
	}

	u := &url.URL{Path: b.String()}
	if hr.host != "" {
		u.Scheme = "http"
		u.Host = hr.host
	}

	return link.Target{URL: u, Consumed: consumed}, nil
}
