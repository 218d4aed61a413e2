// Package header renders SIP header fields (RFC 3261) into their wire form.
//
// # Header types
//
// [Header] is a closed union: every supported header is a distinct type of this
// package and no other package can implement the interface. Types are grouped by
// the shape of their payload:
//
//   - named-address [To], [From], [Contact], [ReplyTo] carry a [NameAddr];
//   - [CSeq] carries a sequence number and a [RequestMethod];
//   - numeric: [MaxForwards], [Expires], [MinExpires], [ContentLength];
//   - method lists: [Accept], [Allow];
//   - token lists: [Supported];
//   - everything else ([Via], [CallID], [ContentType], ...) carries pre-formatted
//     text rendered as is.
//
// Each type maps to exactly one [Kind] and each kind to one canonical header name.
//
// # Rendering
//
//	line := header.Render(&header.To{
//		DisplayName: "John Doe",
//		URI:         &uri.SIP{User: "jd", Host: "example.com"},
//		Params:      header.Params{}.Set("tag", "abc"),
//	}, nil)
//	// To: "John Doe" <sip:jd@example.com>;tag=abc
//
// [RenderTo] writes the same line to an [io.Writer] and returns the writer's
// error unchanged. No line terminator is written, that is up to the message
// assembly code.
//
// Rendering rules:
//
//   - a display name is quoted only when it contains a space, the URI is always
//     enclosed in angle brackets;
//   - parameters are written as ";key=value" in insertion order;
//   - list items are joined with "," without spaces, an empty list gives "Name: ";
//   - no escaping is performed, values must be valid for the wire already.
//
// [RenderOptions.Compact] switches to the compact names of RFC 3261 Section 7.3.3
// ("f", "t", "m", "i", ...) for headers that have one.
//
// # Kinds
//
// [ParseKind] resolves a header name in any letter case, including compact forms,
// to its [Kind]. [NewNameAddr], [NewNumber], [NewMethods], [NewStrings] and
// [NewText] build a header of a given kind from a payload of the matching [Shape].
package header
