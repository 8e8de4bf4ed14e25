// Package testsupport holds fixtures shared by package tests.
package testsupport

import (
	"context"
	"net/url"
	"strings"
)

// PageStub is an internal page fixture.
type PageStub struct {
	Path string
}

// AbsoluteURL returns the page path.
func (p PageStub) AbsoluteURL() string { return p.Path }

// FileStub is a file asset fixture.
type FileStub struct {
	Path string
}

// URL returns the file path.
func (f FileStub) URL() string { return f.Path }

// Page returns a page fixture resolving to path.
func Page(path string) PageStub {
	return PageStub{Path: path}
}

// File returns a file fixture served from path.
func File(path string) FileStub {
	return FileStub{Path: path}
}

// Values builds submitted form values from alternating key/value strings.
// Repeated keys accumulate.
func Values(pairs ...string) url.Values {
	out := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		out.Add(pairs[i], pairs[i+1])
	}
	return out
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// Lines splits rendered markup into trimmed, non-empty lines so assertions
// ignore indentation.
func Lines(markup string) []string {
	var out []string
	for _, line := range strings.Split(markup, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
