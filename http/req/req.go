package req

import (
	"fmt"
	"net/http"
	"net/url"
	"reflect"

	"github.com/gorilla/mux"
)

// A Parser decodes the route values of a request into the params of an action.
type Parser struct {
	decoder routeValueDecoder
	validator
}

// NewParser constructs a *Parser.
func NewParser() *Parser {
	return &Parser{
		decoder:   newRouteValueDecoder(),
		validator: newValidator(),
	}
}

// ParseRouteValues decodes into dst the route variables mux matched r with
// and the query params of r.
// Where both set a name, the route variable wins.
//
// dst is a pointer to a struct or a pointer to a map[string]string.
// Structs are then checked against the rules set by their "validate" tags,
// returning ValidationErrors when they fail.
func (p *Parser) ParseRouteValues(r *http.Request, dst any) error {
	vals := r.URL.Query()
	for k, v := range mux.Vars(r) {
		vals.Set(k, v)
	}

	return p.ParseValues(vals, dst)
}

// ParseValues decodes vals into dst, as ParseRouteValues does.
func (p *Parser) ParseValues(vals url.Values, dst any) error {
	if m, ok := dst.(*map[string]string); ok {
		if *m == nil {
			*m = make(map[string]string, len(vals))
		}
		for k := range vals {
			(*m)[k] = vals.Get(k)
		}

		return nil
	}

	if err := p.decoder.decode(dst, vals); err != nil {
		return fmt.Errorf("signpost/http/req: failed decoding route values: %w", err)
	}

	if rv := reflect.ValueOf(dst); rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return nil
	}

	if err := p.validate(dst); err != nil {
		return fmt.Errorf("signpost/http/req: %T failed validation: %w", dst, err)
	}

	return nil
}
