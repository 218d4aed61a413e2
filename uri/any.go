package uri

import (
	"io"
	"net/url"

	"braces.dev/errtrace"
)

// Any implements any URI (usually not SIP).
type Any struct {
	url.URL
}

// ParseAny parses a URI of any scheme from s.
func ParseAny(s string) (*Any, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &Any{*u}, nil
}

// Scheme returns the URI scheme.
func (u *Any) Scheme() string {
	if u == nil {
		return ""
	}
	return u.URL.Scheme
}

// RenderTo writes the URI to the provided writer.
func (u *Any) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	if u == nil {
		return 0, nil
	}
	return errtrace.Wrap2(io.WriteString(w, u.URL.String()))
}

// Render returns the string representation of the URI.
func (u *Any) Render(*RenderOptions) string {
	if u == nil {
		return ""
	}
	return render(u)
}

// String returns the string representation of the URI.
func (u *Any) String() string { return u.Render(nil) }
