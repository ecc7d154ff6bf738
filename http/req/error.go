package req

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/xy-planning-network/signpost"
)

// A ValidationError is a route value that does not fit the field it decodes into,
// or breaks the rule set on that field.
type ValidationError struct {
	Field string `json:"field"`
	Got   any    `json:"got"`
	Rule  string `json:"rule,omitempty"`
}

// ValidationErrors is a set of ValidationError.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, err := range v {
		msgs = append(msgs, fmt.Sprintf("field=%q rule=%q got=%q", err.Field, err.Rule, fmt.Sprint(err.Got)))
	}

	return strings.Join(msgs, "\n")
}

func (v ValidationErrors) MarshalJSON() ([]byte, error) {
	var errs struct {
		E []ValidationError `json:"validationErrors,omitempty"`
	}
	errs.E = v

	return json.Marshal(errs)
}

// Unwrap makes ValidationErrors match signpost.ErrNotValid.
func (ValidationErrors) Unwrap() error { return signpost.ErrNotValid }

func (v ValidationErrors) sort() {
	sort.SliceStable(v, func(i, j int) bool { return v[i].Field < v[j].Field })
}
