package template

import (
	"fmt"
	html "html/template"
	"io/fs"
	"os"
	"path"

	"github.com/jba/templatecheck"
)

// Parser is the interface for parsing HTML templates with the functions provided.
type Parser interface {
	AddFn(name string, fn any)
	Check(tmpl *html.Template, data any) error
	Parse(fps ...string) (*html.Template, error)
}

// Parse implements Parser, reading templates from an fs.FS.
type Parse struct {
	fs  fs.FS
	fns html.FuncMap
}

// NewParser constructs a Parse with the provided functional options.
//
// Without WithFS, templates are read from the working directory.
func NewParser(opts ...ParserOptFn) Parser {
	p := &Parse{fns: make(html.FuncMap)}
	for _, opt := range opts {
		opt(p)
	}

	if p.fs == nil {
		p.fs = os.DirFS(".")
	}

	return p
}

// Check type-checks tmpl as though executed with data,
// confirming fields referenced exist on data's type
// and functions are called with arguments of the right number and type.
//
// Check catches at startup what would otherwise fail only when a page renders,
// such as a template passing a string where an action.Call is expected.
func (p *Parse) Check(tmpl *html.Template, data any) error {
	if tmpl == nil {
		return fmt.Errorf("%w", ErrNoTemplate)
	}

	if err := templatecheck.CheckHTML(tmpl, data); err != nil {
		return fmt.Errorf("%w: %s", ErrCheck, err)
	}

	return nil
}

// Parse parses files found in the *Parse.fs with those functions provided previously.
// The returned template is named after the first file.
func (p *Parse) Parse(fps ...string) (*html.Template, error) {
	files := make([]string, 0, len(fps))
	for _, fp := range fps {
		if fp != "" {
			files = append(files, fp)
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w", ErrNoFiles)
	}

	return html.New(path.Base(files[0])).Funcs(p.fns).ParseFS(p.fs, files...)
}
