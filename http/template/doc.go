/*
Package template parses HTML templates and renders the anchors links are made of.

[Parser] reads templates out of an fs.FS with a set of functions,
such as those link.Helper.Funcs provides,
and checks parsed templates against the data they render
so a template misusing a link function fails at startup rather than mid-request.

[Anchor] writes the <a> element host routers render links as,
escaping its text and attributes with github.com/google/safehtml.
*/
package template
