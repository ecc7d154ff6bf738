package template

import (
	"fmt"
	html "html/template"
	"regexp"
	"strings"

	"github.com/google/safehtml"
	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/http/action"
)

const hrefAttr = "href"

var attrNameRegexp = regexp.MustCompile(`^[a-zA-Z_:][-a-zA-Z0-9_:.]*$`)

// Anchor renders an anchor element linking to href with the escaped text as its content.
//
// attrs is anything action.NewValues accepts; each entry becomes an attribute,
// written in name order after href. Entries holding nil are skipped.
// A non-nil "href" entry in attrs replaces href.
//
// URLs with schemes that could run script are replaced by safehtml's innocuous URL.
func Anchor(text, href string, attrs any) (html.HTML, error) {
	vals, err := action.NewValues(attrs)
	if err != nil {
		return "", err
	}

	if vals[hrefAttr] == nil {
		vals[hrefAttr] = href
	}

	b := new(strings.Builder)
	b.WriteString("<a")
	writeAttr(b, hrefAttr, vals[hrefAttr])

	for _, name := range vals.Keys() {
		if name == hrefAttr {
			continue
		}

		if !attrNameRegexp.MatchString(name) {
			return "", fmt.Errorf("%w: attribute name %q", signpost.ErrNotValid, name)
		}

		writeAttr(b, name, vals[name])
	}

	b.WriteString(">")
	b.WriteString(safehtml.HTMLEscaped(text).String())
	b.WriteString("</a>")

	return html.HTML(b.String()), nil
}

func writeAttr(b *strings.Builder, name string, val any) {
	if val == nil {
		return
	}

	s := fmt.Sprint(val)
	if name == hrefAttr {
		s = safehtml.URLSanitized(s).String()
	}

	fmt.Fprintf(b, ` %s="%s"`, name, safehtml.HTMLEscaped(s).String())
}
