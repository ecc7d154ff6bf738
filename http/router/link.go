package router

import (
	"fmt"
	html "html/template"
	"strings"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/http/action"
	"github.com/xy-planning-network/signpost/http/link"
)

var _ link.Renderer = (*Router)(nil)

// An entry is a registered route links can be rendered to.
type entry struct {
	route   *mux.Route
	binding *Binding
	vars    []string
}

// A linkTable indexes the routes of a Router and its subrouters
// by action and by name.
type linkTable struct {
	byAction map[string][]*entry
	byName   map[string]*entry

	// conventional holds routes whose templates name both the controller and the action,
	// such as "/{controller}/{action}".
	conventional []*entry
}

func newLinkTable() *linkTable {
	return &linkTable{
		byAction: make(map[string][]*entry),
		byName:   make(map[string]*entry),
	}
}

func actionKey(controller, act string) string {
	return strings.ToLower(controller + "." + act)
}

func (lt *linkTable) add(mr *mux.Route, route Route) error {
	if err := mr.GetError(); err != nil {
		return fmt.Errorf("%w: %s", signpost.ErrNotValid, err)
	}

	vars, err := mr.GetVarNames()
	if err != nil {
		return fmt.Errorf("%w: %s", signpost.ErrNotValid, err)
	}

	e := &entry{route: mr, binding: route.Action, vars: vars}

	if route.Name != "" {
		if err := lt.claim(route.Name); err != nil {
			return err
		}
		lt.byName[route.Name] = e
	}

	if e.binding != nil {
		key := actionKey(e.binding.Controller, e.binding.Action)
		lt.byAction[key] = append(lt.byAction[key], e)
	}

	if e.hasVar(action.ControllerKey) && e.hasVar(action.ActionKey) {
		lt.conventional = append(lt.conventional, e)
	}

	return nil
}

// claim returns an error wrapping signpost.ErrNotValid when a route named name is already registered.
func (lt *linkTable) claim(name string) error {
	if name == "" {
		return nil
	}

	if _, ok := lt.byName[name]; ok {
		return fmt.Errorf("%w: route named %q already registered", signpost.ErrNotValid, name)
	}

	return nil
}

func (e *entry) hasVar(name string) bool {
	for _, v := range e.vars {
		if v == name {
			return true
		}
	}

	return false
}

// target fills the template of e's route with routeValues.
func (e *entry) target(routeValues action.Values) (link.Target, error) {
	pairs := make([]string, 0, len(e.vars)*2)
	for _, name := range e.vars {
		v, ok := routeValues[name]
		if !ok || v == nil {
			return link.Target{}, fmt.Errorf("%w: route variable %q", signpost.ErrMissingData, name)
		}
		pairs = append(pairs, name, link.RouteValue(v))
	}

	u, err := e.route.URL(pairs...)
	if err != nil {
		return link.Target{}, fmt.Errorf("%w: %s", signpost.ErrNotValid, err)
	}

	return link.Target{URL: u, Consumed: e.vars}, nil
}

// ActionURL returns the URL of the route serving the named action of the named controller.
//
// Routes bound to the action are tried in the order they were registered,
// followed by routes whose templates name the controller and action,
// such as "/{controller}/{action}".
// The first whose template can be filled with routeValues is used.
//
// ActionURL returns an error wrapping signpost.ErrNotExist when no route serves the action.
func (r *Router) ActionURL(actionName, controllerName, protocol, hostName, fragment string, routeValues action.Values) (string, error) {
	t, vals, err := r.actionTarget(actionName, controllerName, routeValues)
	if err != nil {
		return "", err
	}

	return r.finish(t, protocol, hostName, fragment).Href(vals)
}

// ActionLink renders an anchor with linkText and htmlAttrs
// to the route serving the named action of the named controller, as ActionURL finds it.
//
// ActionLink implements [link.Renderer].
func (r *Router) ActionLink(
	linkText, actionName, controllerName, protocol, hostName, fragment string,
	routeValues action.Values,
	htmlAttrs any,
) (html.HTML, error) {
	t, vals, err := r.actionTarget(actionName, controllerName, routeValues)
	if err != nil {
		return "", err
	}

	return r.finish(t, protocol, hostName, fragment).Render(linkText, vals, htmlAttrs)
}

// RouteURL returns the URL of the route named routeName.
//
// RouteURL returns an error wrapping signpost.ErrNotExist when no route is named routeName
// and signpost.ErrNotValid when the route is bound to an action
// other than the one routeValues name.
func (r *Router) RouteURL(routeName, protocol, hostName, fragment string, routeValues action.Values) (string, error) {
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
func (r *Router) RouteLink(
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

func (r *Router) actionTarget(actionName, controllerName string, routeValues action.Values) (link.Target, action.Values, error) {
	var firstErr error
	for _, e := range r.links.byAction[actionKey(controllerName, actionName)] {
		t, err := e.target(routeValues)
		if err == nil {
			return t, routeValues, nil
		}

		if firstErr == nil {
			firstErr = err
		}
	}

	if len(r.links.conventional) > 0 {
		vals := make(action.Values, len(routeValues)+2)
		for k, v := range routeValues {
			vals[k] = v
		}
		vals[action.ControllerKey] = controllerName
		vals[action.ActionKey] = actionName

		for _, e := range r.links.conventional {
			t, err := e.target(vals)
			if err == nil {
				return t, vals, nil
			}

			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if firstErr != nil {
		return link.Target{}, nil, firstErr
	}

	return link.Target{}, nil, fmt.Errorf("%w: no route serves %s.%s", signpost.ErrNotExist, controllerName, actionName)
}

func (r *Router) routeTarget(routeName string, routeValues action.Values) (link.Target, error) {
	e, ok := r.links.byName[routeName]
	if !ok {
		return link.Target{}, fmt.Errorf("%w: no route named %q", signpost.ErrNotExist, routeName)
	}

	if b := e.binding; b != nil {
		for key, name := range map[string]string{action.ControllerKey: b.Controller, action.ActionKey: b.Action} {
			if v, ok := routeValues[key]; ok && v != nil && !link.MatchesName(v, name) {
				return link.Target{}, fmt.Errorf(
					"%w: route %q serves %s.%s, not %s %v",
					signpost.ErrNotValid, routeName, b.Controller, b.Action, key, v,
				)
			}
		}
	}

	return e.target(routeValues)
}

func (r *Router) finish(t link.Target, protocol, hostName, fragment string) link.Target {
	t.Protocol = protocol
	t.HostName = hostName
	t.Fragment = fragment
	t.RootURL = r.rootURL

	return t
}
