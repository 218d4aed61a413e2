package uri_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/siphdr/uri"
)

func TestSIP_Render(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		u    *uri.SIP
		want string
	}{
		{"nil", (*uri.SIP)(nil), ""},
		{"zero", &uri.SIP{}, "sip:"},
		{"host", &uri.SIP{Host: "example.com"}, "sip:example.com"},
		{"user host", &uri.SIP{User: "alice", Host: "example.com"}, "sip:alice@example.com"},
		{
			"full",
			&uri.SIP{
				Secured:  true,
				User:     "alice",
				Password: "qwerty",
				Host:     "example.com",
				Port:     5061,
				Params:   uri.Params{}.Set("transport", "tls").Set("lr", ""),
				Headers:  uri.Params{}.Set("subject", "hi").Set("priority", "urgent"),
			},
			"sips:alice:qwerty@example.com:5061;transport=tls;lr?subject=hi&priority=urgent",
		},
		{"ipv6", &uri.SIP{Host: "::1"}, "sip:[::1]"},
		{"ipv6 port", &uri.SIP{Host: "::1", Port: 5060}, "sip:[::1]:5060"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.u.Render(nil); got != c.want {
				t.Errorf("u.Render(nil) = %q, want %q", got, c.want)
			}
			var sb strings.Builder
			if _, err := c.u.RenderTo(&sb, nil); err != nil {
				t.Fatalf("u.RenderTo(sb, nil) error = %v, want nil", err)
			}
			if got := sb.String(); got != c.want {
				t.Errorf("sb.String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestParseAny(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		in         string
		wantScheme string
		wantStr    string
		wantErr    bool
	}{
		{"sip", "sip:jd@example.com", "sip", "sip:jd@example.com", false},
		{"tel", "tel:+1-201-555-0123", "tel", "tel:+1-201-555-0123", false},
		{"http", "https://example.com/a?b=c", "https", "https://example.com/a?b=c", false},
		{"invalid", "%zz", "", "", true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			u, err := uri.ParseAny(c.in)
			if c.wantErr {
				if err == nil {
					t.Fatalf("uri.ParseAny(%q) error = nil, want error", c.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("uri.ParseAny(%q) error = %v, want nil", c.in, err)
			}
			if diff := cmp.Diff(
				[]string{u.Scheme(), u.String()},
				[]string{c.wantScheme, c.wantStr},
			); diff != "" {
				t.Errorf("uri.ParseAny(%q) diff (-got +want):\n%v", c.in, diff)
			}
		})
	}
}
