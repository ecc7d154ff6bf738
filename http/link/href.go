package link

import (
	"fmt"
	html "html/template"
	"net/url"
	"reflect"
	"strings"

	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/http/action"
	"github.com/xy-planning-network/signpost/http/template"
)

// A Target is a URL a Renderer built from the template of a route,
// along with what it still needs to become the href of a link.
type Target struct {
	// URL is the route's template filled with route values.
	// It holds a scheme and host only when the route's template sets its host.
	URL *url.URL

	// Consumed names the route values the route's template was filled with.
	Consumed []string

	Protocol string
	HostName string
	Fragment string

	// RootURL supplies the scheme and host of absolute links
	// when Protocol, HostName, and URL do not.
	RootURL *url.URL
}

// Href returns the href linking to t.
//
// routeValues not consumed by the route's template are appended as query params in name order;
// nil values are skipped and slices repeat their name.
// The [action.ControllerKey] and [action.ActionKey] route values are never appended.
//
// When Protocol or HostName is set or the route's template sets a host, the href is absolute.
// Href returns an error wrapping signpost.ErrMissingData when no host is known for an absolute href.
func (t Target) Href(routeValues action.Values) (string, error) {
	u := *t.URL

	consumed := make(map[string]bool, len(t.Consumed)+2)
	consumed[action.ControllerKey] = true
	consumed[action.ActionKey] = true
	for _, name := range t.Consumed {
		consumed[name] = true
	}

	q := make(url.Values)
	for _, name := range routeValues.Keys() {
		if consumed[name] || routeValues[name] == nil {
			continue
		}
		q[name] = QueryValues(routeValues[name])
	}

	if extra := q.Encode(); extra != "" {
		if u.RawQuery != "" {
			u.RawQuery += "&"
		}
		u.RawQuery += extra
	}

	if t.Protocol != "" || t.HostName != "" || u.Host != "" {
		switch {
		case t.Protocol != "":
			u.Scheme = t.Protocol
		case t.RootURL != nil && t.RootURL.Scheme != "":
			u.Scheme = t.RootURL.Scheme
		case u.Scheme == "":
			u.Scheme = "http"
		}

		switch {
		case t.HostName != "":
			u.Host = t.HostName
		case u.Host != "":
		case t.RootURL != nil && t.RootURL.Host != "":
			u.Host = t.RootURL.Host
		default:
			return "", fmt.Errorf("%w: no host to link to %s with", signpost.ErrMissingData, u.Path)
		}
	}

	u.Fragment = t.Fragment

	return u.String(), nil
}

// Render renders an anchor with linkText and htmlAttrs linking to t.
//
// Render returns an error wrapping signpost.ErrMissingData when linkText is empty.
func (t Target) Render(linkText string, routeValues action.Values, htmlAttrs any) (html.HTML, error) {
	if linkText == "" {
		return "", fmt.Errorf("%w: link text", signpost.ErrMissingData)
	}

	href, err := t.Href(routeValues)
	if err != nil {
		return "", err
	}

	return template.Anchor(linkText, href, htmlAttrs)
}

// RouteValue formats v as it fills a variable in a route's template.
func RouteValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(v)
	}
}

// QueryValues formats v as the values of a query param.
// Slices and arrays, other than of bytes, become one value per element.
func QueryValues(v any) []string {
	switch val := v.(type) {
	case string:
		return []string{val}
	case []string:
		return append([]string(nil), val...)
	}

	rv := reflect.ValueOf(v)
	if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Type().Elem().Kind() != reflect.Uint8 {
		vals := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			vals = append(vals, RouteValue(rv.Index(i).Interface()))
		}
		return vals
	}

	return []string{RouteValue(v)}
}

// MatchesName reports whether the route value v names name, ignoring case.
func MatchesName(v any, name string) bool {
	return strings.EqualFold(RouteValue(v), name)
}
