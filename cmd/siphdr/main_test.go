package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/goleak"

	"github.com/ghettovoice/siphdr/header"
	"github.com/ghettovoice/siphdr/internal/errorutil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const testDoc = `
headers:
  - name: v
    value: SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds
  - name: max-forwards
    value: "70"
  - name: To
    display: Bob
    uri: sip:bob@biloxi.com
  - name: From
    display: Alice Liddell
    uri: sip:alice@atlanta.com
    params:
      tag: "1928301774"
      x: ""
  - name: Call-ID
    value: a84b4c76e66710@pc33.atlanta.com
  - name: cseq
    seq: 314159
    method: invite
  - name: Allow
    items: [INVITE, ack, BYE]
  - name: k
    items: [timer, 100rel]
  - name: Content-Length
    value: "0"
`

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRender(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		args []string
		want string
	}{
		{
			"canonical",
			[]string{"render"},
			"Via: SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds\r\n" +
				"Max-Forwards: 70\r\n" +
				"To: Bob <sip:bob@biloxi.com>\r\n" +
				"From: \"Alice Liddell\" <sip:alice@atlanta.com>;tag=1928301774;x=\r\n" +
				"Call-ID: a84b4c76e66710@pc33.atlanta.com\r\n" +
				"CSeq: 314159 INVITE\r\n" +
				"Allow: INVITE,ACK,BYE\r\n" +
				"Supported: timer,100rel\r\n" +
				"Content-Length: 0\r\n",
		},
		{
			"compact",
			[]string{"render", "--compact"},
			"v: SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds\r\n" +
				"Max-Forwards: 70\r\n" +
				"t: Bob <sip:bob@biloxi.com>\r\n" +
				"f: \"Alice Liddell\" <sip:alice@atlanta.com>;tag=1928301774;x=\r\n" +
				"i: a84b4c76e66710@pc33.atlanta.com\r\n" +
				"CSeq: 314159 INVITE\r\n" +
				"Allow: INVITE,ACK,BYE\r\n" +
				"k: timer,100rel\r\n" +
				"l: 0\r\n",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, _, err := execute(t, testDoc, c.args...)
			if err != nil {
				t.Fatalf("execute(%v) error = %v, want nil", c.args, err)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("execute(%v) output mismatch\ndiff (-got +want):\n%v", c.args, diff)
			}
		})
	}
}

func TestRender_JSON(t *testing.T) {
	t.Parallel()

	doc := "headers:\n  - name: To\n    uri: sip:bob@biloxi.com\n  - name: Call-ID\n    value: abc\n"
	got, _, err := execute(t, doc, "render", "--json")
	if err != nil {
		t.Fatalf("execute() error = %v, want nil", err)
	}
	want := `{"name":"To","value":"<sip:bob@biloxi.com>"}` + "\n" +
		`{"name":"Call-ID","value":"abc"}` + "\n"
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("execute() output mismatch\ndiff (-got +want):\n%v", diff)
	}
}

func TestRender_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "headers.yaml")
	if err := os.WriteFile(path, []byte("headers:\n  - name: Expires\n    value: \"3600\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, stderr, err := execute(t, "", "render", "-f", path, "-v")
	if err != nil {
		t.Fatalf("execute() error = %v, want nil", err)
	}
	if want := "Expires: 3600\r\n"; got != want {
		t.Errorf("execute() = %q, want %q", got, want)
	}
	if !strings.Contains(stderr, "headers rendered") {
		t.Errorf("log output = %q, want it to contain %q", stderr, "headers rendered")
	}
}

func TestRender_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{"unknown header", "headers:\n  - name: X-Foo\n    value: bar\n", header.ErrUnknownHeader},
		{"bad number", "headers:\n  - name: Expires\n    value: soon\n", errorutil.ErrInvalidArgument},
		{"unknown field", "headers:\n  - name: Expires\n    vaule: \"1\"\n", errorutil.ErrInvalidArgument},
		{"malformed yaml", "headers: [", errorutil.ErrInvalidArgument},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, stderr, err := execute(t, c.doc, "render")
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("execute() error = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
			}
			if got != "" {
				t.Errorf("execute() output = %q, want empty", got)
			}
			if !strings.Contains(stderr, "render failed") {
				t.Errorf("log output = %q, want it to contain %q", stderr, "render failed")
			}
		})
	}
}

func TestRender_Quiet(t *testing.T) {
	t.Parallel()

	got, stderr, err := execute(t, "headers:\n  - name: X-Foo\n", "render", "-q")
	if !errors.Is(err, header.ErrUnknownHeader) {
		t.Errorf("execute() error = %v, want %v", err, header.ErrUnknownHeader)
	}
	if got != "" || stderr != "" {
		t.Errorf("execute() output = %q, log output = %q, want both empty", got, stderr)
	}
}

func TestRender_MissingFile(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "", "render", "-f", filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("execute() error = %v, want %v", err, os.ErrNotExist)
	}
}
