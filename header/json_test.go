package header_test

import (
	"testing"

	"github.com/ghettovoice/siphdr/header"
)

func TestToJSON(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  header.Header
		want string
	}{
		{"nil", nil, "null"},
		{"to", &header.To{DisplayName: "John Doe", URI: sipURI("jd", "example.com")}, `{"name":"To","value":"\"John Doe\" <sip:jd@example.com>"}`},
		{"cseq", &header.CSeq{SeqNum: 1, Method: header.RequestMethodAck}, `{"name":"CSeq","value":"1 ACK"}`},
		{"allow", header.Allow{header.RequestMethodAck, header.RequestMethodBye}, `{"name":"Allow","value":"ACK,BYE"}`},
		{"call-id", header.CallID("abc"), `{"name":"Call-ID","value":"abc"}`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := header.ToJSON(c.hdr)
			if err != nil {
				t.Fatalf("header.ToJSON(hdr) error = %v, want nil", err)
			}
			if string(got) != c.want {
				t.Errorf("header.ToJSON(hdr) = %s, want %s", got, c.want)
			}
		})
	}
}
