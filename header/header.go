package header

//go:generate go tool errtrace -w .

import (
	"iter"
	"net/textproto"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/siphdr/internal/errorutil"
	"github.com/ghettovoice/siphdr/internal/types"
	"github.com/ghettovoice/siphdr/internal/util"
	"github.com/ghettovoice/siphdr/uri"
)

// Params represents ordered header parameters.
type Params = types.Params

// Param is a single header parameter.
type Param = types.Param

// ParamsFromMap builds [Params] from a map, keys sorted in ascending order.
func ParamsFromMap(m map[string]string) Params { return types.ParamsFromMap(m) }

// RequestMethod represents a SIP request method (INVITE, ACK, BYE, etc.).
type RequestMethod = types.RequestMethod

// Request methods.
const (
	RequestMethodAck       = types.RequestMethodAck
	RequestMethodBye       = types.RequestMethodBye
	RequestMethodCancel    = types.RequestMethodCancel
	RequestMethodInfo      = types.RequestMethodInfo
	RequestMethodInvite    = types.RequestMethodInvite
	RequestMethodMessage   = types.RequestMethodMessage
	RequestMethodNotify    = types.RequestMethodNotify
	RequestMethodOptions   = types.RequestMethodOptions
	RequestMethodPrack     = types.RequestMethodPrack
	RequestMethodPublish   = types.RequestMethodPublish
	RequestMethodRefer     = types.RequestMethodRefer
	RequestMethodRegister  = types.RequestMethodRegister
	RequestMethodSubscribe = types.RequestMethodSubscribe
	RequestMethodUpdate    = types.RequestMethodUpdate
)

// RenderOptions contains options for rendering headers.
type RenderOptions = types.RenderOptions

// URI is the URI type carried by named-address headers.
type URI = uri.URI

// Header is a SIP header field.
// The set of implementations is closed: every SIP header known to the package
// is a distinct type declared here, see [Kind] for the full list.
//
//sumtype:decl
type Header interface {
	kind() Kind
}

// KindOf returns the kind of hdr, or [KindUnknown] for nil.
func KindOf(hdr Header) Kind {
	if hdr == nil {
		return KindUnknown
	}
	return hdr.kind()
}

// Name represents a SIP header name.
type Name string

// ToCanonic converts the Name to its canonical form.
func (n Name) ToCanonic() Name { return CanonicName(n) }

// Equal compares this Name with another for equality.
func (n Name) Equal(val any) bool {
	var other Name
	switch v := val.(type) {
	case Name:
		other = v
	case *Name:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return CanonicName(n) == CanonicName(other)
}

var hdrNames = map[string]Name{
	"c":                "Content-Type",
	"e":                "Content-Encoding",
	"f":                "From",
	"i":                "Call-ID",
	"k":                "Supported",
	"l":                "Content-Length",
	"m":                "Contact",
	"s":                "Subject",
	"t":                "To",
	"v":                "Via",
	"Call-Id":          "Call-ID",
	"Cseq":             "CSeq",
	"Mime-Version":     "MIME-Version",
	"Www-Authenticate": "WWW-Authenticate",
}

// CanonicName converts name to the canonical form.
// The first letter and any letter following a hyphen are upper-cased, the rest are lower-cased,
// e.g. "accept-encoding" becomes "Accept-Encoding".
// Compact names are expanded, e.g. "i" becomes "Call-ID".
func CanonicName[T ~string](name T) Name {
	name = util.TrimSP(name)
	if n, ok := hdrNames[string(name)]; ok {
		return n
	}

	name = T(textproto.CanonicalMIMEHeaderKey(string(name)))
	if n, ok := hdrNames[string(name)]; ok {
		return n
	}
	return Name(name)
}

// Kind identifies a header variant.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindAccept
	KindAcceptEncoding
	KindAcceptLanguage
	KindAlertInfo
	KindAllow
	KindAuthenticationInfo
	KindAuthorization
	KindCallID
	KindCallInfo
	KindContact
	KindContentDisposition
	KindContentEncoding
	KindContentLanguage
	KindContentLength
	KindContentType
	KindCSeq
	KindDate
	KindErrorInfo
	KindExpires
	KindFrom
	KindInReplyTo
	KindMaxForwards
	KindMIMEVersion
	KindMinExpires
	KindOrganization
	KindPriority
	KindProxyAuthenticate
	KindProxyAuthorization
	KindProxyRequire
	KindRecordRoute
	KindReplyTo
	KindRequire
	KindRetryAfter
	KindRoute
	KindServer
	KindSubject
	KindSupported
	KindTimestamp
	KindTo
	KindUnsupported
	KindUserAgent
	KindVia
	KindWarning
	KindWWWAuthenticate

	kindCount
)

// Shape describes the payload of a header kind.
type Shape uint8

const (
	ShapeUnknown  Shape = iota
	ShapeNameAddr       // display name, URI and parameters
	ShapeCSeq           // sequence number and method
	ShapeNumber         // unsigned integer
	ShapeMethods        // list of request methods
	ShapeStrings        // list of tokens
	ShapeText           // opaque pre-formatted text
)

var shapeNames = [...]string{
	ShapeUnknown:  "unknown",
	ShapeNameAddr: "name-addr",
	ShapeCSeq:     "cseq",
	ShapeNumber:   "number",
	ShapeMethods:  "methods",
	ShapeStrings:  "strings",
	ShapeText:     "text",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return shapeNames[ShapeUnknown]
}

type kindInfo struct {
	canonic Name
	compact Name
	shape   Shape
}

var kinds = [...]kindInfo{
	KindUnknown:            {"", "", ShapeUnknown},
	KindAccept:             {"Accept", "", ShapeMethods},
	KindAcceptEncoding:     {"Accept-Encoding", "", ShapeText},
	KindAcceptLanguage:     {"Accept-Language", "", ShapeText},
	KindAlertInfo:          {"Alert-Info", "", ShapeText},
	KindAllow:              {"Allow", "", ShapeMethods},
	KindAuthenticationInfo: {"Authentication-Info", "", ShapeText},
	KindAuthorization:      {"Authorization", "", ShapeText},
	KindCallID:             {"Call-ID", "i", ShapeText},
	KindCallInfo:           {"Call-Info", "", ShapeText},
	KindContact:            {"Contact", "m", ShapeNameAddr},
	KindContentDisposition: {"Content-Disposition", "", ShapeText},
	KindContentEncoding:    {"Content-Encoding", "e", ShapeText},
	KindContentLanguage:    {"Content-Language", "", ShapeText},
	KindContentLength:      {"Content-Length", "l", ShapeNumber},
	KindContentType:        {"Content-Type", "c", ShapeText},
	KindCSeq:               {"CSeq", "", ShapeCSeq},
	KindDate:               {"Date", "", ShapeText},
	KindErrorInfo:          {"Error-Info", "", ShapeText},
	KindExpires:            {"Expires", "", ShapeNumber},
	KindFrom:               {"From", "f", ShapeNameAddr},
	KindInReplyTo:          {"In-Reply-To", "", ShapeText},
	KindMaxForwards:        {"Max-Forwards", "", ShapeNumber},
	KindMIMEVersion:        {"MIME-Version", "", ShapeText},
	KindMinExpires:         {"Min-Expires", "", ShapeNumber},
	KindOrganization:       {"Organization", "", ShapeText},
	KindPriority:           {"Priority", "", ShapeText},
	KindProxyAuthenticate:  {"Proxy-Authenticate", "", ShapeText},
	KindProxyAuthorization: {"Proxy-Authorization", "", ShapeText},
	KindProxyRequire:       {"Proxy-Require", "", ShapeText},
	KindRecordRoute:        {"Record-Route", "", ShapeText},
	KindReplyTo:            {"Reply-To", "", ShapeNameAddr},
	KindRequire:            {"Require", "", ShapeText},
	KindRetryAfter:         {"Retry-After", "", ShapeText},
	KindRoute:              {"Route", "", ShapeText},
	KindServer:             {"Server", "", ShapeText},
	KindSubject:            {"Subject", "s", ShapeText},
	KindSupported:          {"Supported", "k", ShapeStrings},
	KindTimestamp:          {"Timestamp", "", ShapeText},
	KindTo:                 {"To", "t", ShapeNameAddr},
	KindUnsupported:        {"Unsupported", "", ShapeText},
	KindUserAgent:          {"User-Agent", "", ShapeText},
	KindVia:                {"Via", "v", ShapeText},
	KindWarning:            {"Warning", "", ShapeText},
	KindWWWAuthenticate:    {"WWW-Authenticate", "", ShapeText},
}

// Fails to compile when a kind is declared without a table entry.
var _ [kindCount]kindInfo = kinds

var kindsByName = func() map[Name]Kind {
	m := make(map[Name]Kind, len(kinds))
	for k := range Kinds() {
		m[k.CanonicName()] = k
	}
	return m
}()

// Kinds returns an iterator over all valid kinds in declaration order.
func Kinds() iter.Seq[Kind] {
	return func(yield func(Kind) bool) {
		for k := KindUnknown + 1; k < kindCount; k++ {
			if !yield(k) {
				return
			}
		}
	}
}

// IsValid reports whether k is a known header kind.
func (k Kind) IsValid() bool { return k > KindUnknown && k < kindCount }

// CanonicName returns the canonical header name of the kind.
func (k Kind) CanonicName() Name {
	if !k.IsValid() {
		return ""
	}
	return kinds[k].canonic
}

// CompactName returns the compact header name of the kind.
// Kinds without a compact form return the canonical name.
func (k Kind) CompactName() Name {
	if !k.IsValid() {
		return ""
	}
	if n := kinds[k].compact; n != "" {
		return n
	}
	return kinds[k].canonic
}

// Shape returns the payload shape of the kind.
func (k Kind) Shape() Shape {
	if !k.IsValid() {
		return ShapeUnknown
	}
	return kinds[k].shape
}

func (k Kind) String() string {
	if !k.IsValid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return string(kinds[k].canonic)
}

func (k Kind) name(opts *RenderOptions) Name {
	if opts != nil && opts.Compact {
		return k.CompactName()
	}
	return k.CanonicName()
}

// ErrInvalidArgument wraps every error returned for bad input to header lookup and construction.
const ErrInvalidArgument = errorutil.ErrInvalidArgument

// ErrUnknownHeader is returned for header names that do not map to any [Kind].
// It always comes wrapped together with [ErrInvalidArgument].
const ErrUnknownHeader errorutil.Error = "unknown header"

// ParseKind resolves a header name, canonical, compact or in any letter case, to its [Kind].
func ParseKind[T ~string](name T) (Kind, error) {
	if k, ok := kindsByName[CanonicName(name)]; ok {
		return k, nil
	}
	return KindUnknown, errtrace.Wrap(errorutil.NewInvalidArgumentError(
		errorutil.NewWrapperError(ErrUnknownHeader, "%q", string(name)),
	))
}
