package action

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strings"

	"github.com/xy-planning-network/signpost"
)

const (
	// ActionKey is the route value naming the action when a route link resolves its expression.
	ActionKey = "action"

	// ControllerKey is the route value naming the controller when a route link resolves its expression.
	ControllerKey = "controller"

	tagName      = "schema"
	tagOmitEmpty = "omitempty"
)

// Values maps route parameter or HTML attribute names to their values.
type Values map[string]any

// NewValues normalizes v into Values.
//
// v may be nil, Values, a map keyed by strings, url.Values,
// or a struct or pointer to a struct.
// For url.Values, keys holding a single value map to that string.
//
// For structs, every exported field becomes an entry
// and the fields of embedded structs are flattened.
// A field shadows embedded fields of the same name.
// An entry is named by the field's "schema" tag,
// the same tag github.com/gorilla/schema decodes by,
// or else the lower-cased field name.
// The tag "-" skips a field; the option "omitempty" skips a field holding its zero value.
// Non-nil pointer fields are dereferenced; nil ones map to nil.
//
// Any other kind of v returns an error wrapping [signpost.ErrNotValid].
func NewValues(v any) (Values, error) {
	vals := make(Values)
	switch src := v.(type) {
	case nil:
		return vals, nil

	case Values:
		for k, val := range src {
			vals[k] = val
		}
		return vals, nil

	case map[string]any:
		for k, val := range src {
			vals[k] = val
		}
		return vals, nil

	case map[string]string:
		for k, val := range src {
			vals[k] = val
		}
		return vals, nil

	case url.Values:
		for k, val := range src {
			if len(val) == 1 {
				vals[k] = val[0]
				continue
			}
			vals[k] = append([]string(nil), val...)
		}
		return vals, nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return vals, nil
		}
		rv = rv.Elem()
	}

	switch {
	case rv.Kind() == reflect.Struct:
		structValues(rv, vals)
		return vals, nil

	case rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String:
		iter := rv.MapRange()
		for iter.Next() {
			vals[iter.Key().String()] = iter.Value().Interface()
		}
		return vals, nil

	default:
		return nil, fmt.Errorf("%w: cannot use %T as route values", signpost.ErrNotValid, v)
	}
}

// Keys returns the names in v, sorted.
func (v Values) Keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// structValues copies the fields of the struct rv into vals.
func structValues(rv reflect.Value, vals Values) {
	for _, f := range structFields(rv) {
		if !f.omit {
			vals[f.name] = f.val
		}
	}
}

type structField struct {
	name string
	val  any
	omit bool
}

// structFields lists the entries rv contributes: its own fields first,
// then the fields of its embedded structs, exported or not.
// An own field shadows embedded fields of the same name,
// and embedded fields sharing a name at the same depth are dropped,
// matching how github.com/gorilla/schema resolves them when decoding.
func structFields(rv reflect.Value) []structField {
	t := rv.Type()
	own := make([]structField, 0, t.NumField())
	var embedded [][]structField

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		fv := rv.Field(i)
		name, opts, _ := strings.Cut(f.Tag.Get(tagName), ",")
		if name == "-" {
			continue
		}

		if f.Anonymous && name == "" {
			ev := fv
			if ev.Kind() == reflect.Pointer {
				if ev.IsNil() {
					continue
				}
				ev = ev.Elem()
			}

			if ev.Kind() == reflect.Struct {
				embedded = append(embedded, structFields(ev))
				continue
			}
		}

		if !f.IsExported() {
			continue
		}

		if name == "" {
			name = strings.ToLower(f.Name)
		}

		own = append(own, structField{
			name: name,
			val:  fieldValue(fv),
			omit: hasOpt(opts, tagOmitEmpty) && fv.IsZero(),
		})
	}

	fields := own
	for i, group := range embedded {
		for _, f := range group {
			if hasField(own, f.name) || claimedByOther(embedded, i, f.name) {
				continue
			}
			fields = append(fields, f)
		}
	}

	return fields
}

func hasField(fields []structField, name string) bool {
	for _, f := range fields {
		if strings.EqualFold(f.name, name) {
			return true
		}
	}

	return false
}

func claimedByOther(groups [][]structField, skip int, name string) bool {
	for i, group := range groups {
		if i != skip && hasField(group, name) {
			return true
		}
	}

	return false
}

func fieldValue(fv reflect.Value) any {
	for fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			return nil
		}
		fv = fv.Elem()
	}

	return fv.Interface()
}

func hasOpt(opts, opt string) bool {
	for _, o := range strings.Split(opts, ",") {
		if strings.TrimSpace(o) == opt {
			return true
		}
	}

	return false
}
