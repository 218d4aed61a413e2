package header_test

import (
	"fmt"
	"os"

	"github.com/ghettovoice/siphdr/header"
	"github.com/ghettovoice/siphdr/uri"
)

func ExampleRender() {
	to := &header.To{
		DisplayName: "John Doe",
		URI:         &uri.SIP{User: "jd", Host: "example.com"},
		Params:      header.Params{}.Set("tag", "abc"),
	}
	fmt.Println(header.Render(to, nil))
	fmt.Println(header.Render(to, &header.RenderOptions{Compact: true}))
	fmt.Println(header.Render(&header.CSeq{SeqNum: 314159, Method: header.RequestMethodInvite}, nil))
	fmt.Println(header.Render(header.Allow{header.RequestMethodInvite, header.RequestMethodAck, header.RequestMethodBye}, nil))
	// Output:
	// To: "John Doe" <sip:jd@example.com>;tag=abc
	// t: "John Doe" <sip:jd@example.com>;tag=abc
	// CSeq: 314159 INVITE
	// Allow: INVITE,ACK,BYE
}

func ExampleRenderTo() {
	hdrs := []header.Header{
		header.Via("SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds"),
		header.MaxForwards(70),
		&header.From{DisplayName: "Alice", URI: &uri.SIP{User: "alice", Host: "atlanta.com"}},
		header.CallID("a84b4c76e66710@pc33.atlanta.com"),
		header.ContentLength(0),
	}
	for _, hdr := range hdrs {
		if _, err := header.RenderTo(os.Stdout, hdr, nil); err != nil {
			panic(err)
		}
		fmt.Println()
	}
	// Output:
	// Via: SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds
	// Max-Forwards: 70
	// From: Alice <sip:alice@atlanta.com>
	// Call-ID: a84b4c76e66710@pc33.atlanta.com
	// Content-Length: 0
}

func ExampleParseKind() {
	k, err := header.ParseKind("i")
	if err != nil {
		panic(err)
	}
	hdr, err := header.NewText(k, "a84b4c76e66710")
	if err != nil {
		panic(err)
	}
	fmt.Println(k.Shape(), header.Render(hdr, nil))
	// Output:
	// text Call-ID: a84b4c76e66710
}
