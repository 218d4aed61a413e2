// Package uri provides the URI types referenced by SIP headers.
//
// Headers treat a URI as opaque and only use its canonical text form,
// so this package is limited to building and rendering URIs:
//
//   - [SIP] is a sip: or sips: URI assembled from its parts;
//   - [Any] wraps [net/url.URL] for every other scheme (tel:, urn:, http:, ...).
//
// Parts are rendered verbatim, no escaping is applied.
package uri

//go:generate go tool errtrace -w .

import (
	"fmt"

	"github.com/ghettovoice/siphdr/internal/types"
	"github.com/ghettovoice/siphdr/internal/util"
)

// RenderOptions contains options for rendering URIs.
type RenderOptions = types.RenderOptions

// Params is an ordered parameter set.
type Params = types.Params

// URI represents a generic URI (SIP, SIPS, tel, ...etc).
type URI interface {
	types.Renderer
	fmt.Stringer
}

func render(u URI) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, nil) //nolint:errcheck
	return sb.String()
}
