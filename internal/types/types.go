// Package types contains common types shared by the header and uri packages.
package types

import "io"

// Renderer is implemented by values that have a wire text form.
type Renderer interface {
	// Render renders the value to a string with the given options.
	Render(opts *RenderOptions) string
	// RenderTo renders the value to a writer with the given options.
	RenderTo(w io.Writer, opts *RenderOptions) (int, error)
}

// RenderOptions is a struct that is used to pass options to rendering methods.
type RenderOptions struct {
	// Compact enables the single-letter header names of RFC 3261 Section 7.3.3.
	Compact bool `json:"compact,omitempty"`
}
