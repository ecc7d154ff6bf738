package template

import "errors"

var (
	ErrCheck      = errors.New("template failed checks")
	ErrNoFiles    = errors.New("no files provided")
	ErrNoTemplate = errors.New("no template provided")
)
