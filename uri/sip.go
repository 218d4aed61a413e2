package uri

import (
	"io"
	"net"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/siphdr/internal/ioutil"
)

// SIP represents a SIP or SIPS URI.
type SIP struct {
	User     string
	Password string
	Host     string
	Port     uint16 // zero means no port
	Params   Params
	Headers  Params
	Secured  bool
}

// Scheme returns the URI scheme.
func (u *SIP) Scheme() string {
	if u == nil {
		return ""
	}
	if u.Secured {
		return "sips"
	}
	return "sip"
}

// RenderTo writes the SIP URI to the provided writer.
func (u *SIP) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(u.Scheme(), ":")
	if u.User != "" {
		cw.WriteString(u.User)
		if u.Password != "" {
			cw.Fprint(":", u.Password)
		}
		cw.WriteString("@")
	}
	cw.WriteString(u.hostPort())
	cw.Call(u.renderParams)
	cw.Call(u.renderHeaders)
	return errtrace.Wrap2(cw.Result())
}

func (u *SIP) hostPort() string {
	if u.Port != 0 {
		return net.JoinHostPort(u.Host, strconv.Itoa(int(u.Port)))
	}
	if strings.Contains(u.Host, ":") && !strings.HasPrefix(u.Host, "[") {
		return "[" + u.Host + "]"
	}
	return u.Host
}

func (u *SIP) renderParams(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for k, v := range u.Params.All() {
		cw.Fprint(";", k)
		if v != "" {
			cw.Fprint("=", v)
		}
	}
	return errtrace.Wrap2(cw.Result())
}

func (u *SIP) renderHeaders(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	sep := "?"
	for k, v := range u.Headers.All() {
		cw.Fprint(sep, k, "=", v)
		sep = "&"
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the SIP URI.
func (u *SIP) Render(*RenderOptions) string {
	if u == nil {
		return ""
	}
	return render(u)
}

// String returns the string representation of the SIP URI.
func (u *SIP) String() string { return u.Render(nil) }
