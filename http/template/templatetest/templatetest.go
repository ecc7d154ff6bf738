/*
Package templatetest exposes a mock fs.FS that implements basic file operations.
Used in unit tests for the purposes of avoiding the use of testdata/ directories when unit testing template rendering.
*/
package templatetest

import (
	"io"
	"io/fs"
	"os"
	"path"
	"time"

	"github.com/xy-planning-network/signpost/http/template"
)

// NewParser constructs a template.Parser reading the mocked files, with opts applied after.
func NewParser(files []FileMocker, opts ...template.ParserOptFn) template.Parser {
	opts = append([]template.ParserOptFn{template.WithFS(NewMockFS(files...))}, opts...)
	return template.NewParser(opts...)
}

type FileMocker interface {
	fs.File
	fs.FileInfo
}

type MockFS []FileMocker

func NewMockFS(files ...FileMocker) fs.FS { return append(MockFS{}, files...) }

// Glob checks whether the pattern matches the file after removing all directory paths from
// the respective parts.
//
// Glob is a simplistic implementation of fs.GlobFS:
// pattern some/long/path/* matches some/long/path/myfile.txt
// as well as totally/different/tree/somefile.txt.
func (mfs MockFS) Glob(pattern string) ([]string, error) {
	_, pattern = path.Split(pattern)
	matches := []string{}
	for _, f := range mfs {
		n := f.Name()
		_, filename := path.Split(n)
		matched, err := path.Match(pattern, filename)
		if err != nil {
			return nil, err
		}
		if matched {
			matches = append(matches, n)
		}
	}

	return matches, nil
}

func (mfs MockFS) Open(name string) (fs.File, error) {
	for _, f := range mfs {
		if f.Name() == name {
			return f, nil
		}
	}

	return nil, &fs.PathError{Op: "open", Path: name, Err: os.ErrNotExist}
}

type MockFile struct {
	data    []byte
	modTime time.Time
	name    string
	offset  int
}

func NewMockFile(name string, data []byte) FileMocker {
	return &MockFile{data: data, name: name}
}

func (m *MockFile) Close() error               { return nil }
func (m *MockFile) Name() string               { return m.name }
func (m *MockFile) IsDir() bool                { return false }
func (m *MockFile) Mode() fs.FileMode          { return 0o444 }
func (m *MockFile) ModTime() time.Time         { return m.modTime }
func (m *MockFile) Size() int64                { return int64(len(m.data)) }
func (m *MockFile) Stat() (fs.FileInfo, error) { return m, nil }
func (m *MockFile) Sys() any                   { return nil }

func (m *MockFile) Read(p []byte) (int, error) {
	if m.offset >= len(m.data) {
		m.offset = 0
		return 0, io.EOF
	}

	n := copy(p, m.data[m.offset:])
	m.offset += n
	return n, nil
}
