package header

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/siphdr/internal/errorutil"
)

// ErrShapeMismatch is returned when a header is constructed from a payload
// that does not match the [Shape] of the requested [Kind].
// It always comes wrapped together with [ErrInvalidArgument].
const ErrShapeMismatch errorutil.Error = "header shape mismatch"

func newShapeMismatchErr(k Kind, want Shape) error {
	return errorutil.NewInvalidArgumentError(
		errorutil.NewWrapperError(ErrShapeMismatch, "%s is %s, not %s", k, k.Shape(), want),
	)
}

// NewNameAddr creates a named-address header (To, From, Contact, Reply-To) of kind k.
// The parameter set of addr is copied, duplicate keys are folded, see [Params.Clone].
func NewNameAddr(k Kind, addr NameAddr) (Header, error) {
	addr = addr.Clone()
	switch k { //nolint:exhaustive
	case KindTo:
		hdr := To(addr)
		return &hdr, nil
	case KindFrom:
		hdr := From(addr)
		return &hdr, nil
	case KindContact:
		hdr := Contact(addr)
		return &hdr, nil
	case KindReplyTo:
		hdr := ReplyTo(addr)
		return &hdr, nil
	default:
		return nil, errtrace.Wrap(newShapeMismatchErr(k, ShapeNameAddr))
	}
}

// NewCSeq creates a CSeq header.
func NewCSeq(seq uint32, method RequestMethod) *CSeq {
	return &CSeq{SeqNum: seq, Method: method}
}

// NewNumber creates a numeric header (Max-Forwards, Expires, Min-Expires, Content-Length) of kind k.
func NewNumber(k Kind, n uint32) (Header, error) {
	switch k { //nolint:exhaustive
	case KindMaxForwards:
		return MaxForwards(n), nil
	case KindExpires:
		return Expires(n), nil
	case KindMinExpires:
		return MinExpires(n), nil
	case KindContentLength:
		return ContentLength(n), nil
	default:
		return nil, errtrace.Wrap(newShapeMismatchErr(k, ShapeNumber))
	}
}

// NewMethods creates a method list header (Accept, Allow) of kind k.
// The order of methods is kept.
func NewMethods(k Kind, methods []RequestMethod) (Header, error) {
	methods = append([]RequestMethod(nil), methods...)
	switch k { //nolint:exhaustive
	case KindAccept:
		return Accept(methods), nil
	case KindAllow:
		return Allow(methods), nil
	default:
		return nil, errtrace.Wrap(newShapeMismatchErr(k, ShapeMethods))
	}
}

// NewStrings creates a token list header (Supported) of kind k.
func NewStrings(k Kind, items []string) (Header, error) {
	if k != KindSupported {
		return nil, errtrace.Wrap(newShapeMismatchErr(k, ShapeStrings))
	}
	return Supported(append([]string(nil), items...)), nil
}

// NewText creates a header of kind k carrying the pre-formatted value s.
func NewText(k Kind, s string) (Header, error) {
	switch k { //nolint:exhaustive
	case KindAcceptEncoding:
		return AcceptEncoding(s), nil
	case KindAcceptLanguage:
		return AcceptLanguage(s), nil
	case KindAlertInfo:
		return AlertInfo(s), nil
	case KindAuthenticationInfo:
		return AuthenticationInfo(s), nil
	case KindAuthorization:
		return Authorization(s), nil
	case KindCallID:
		return CallID(s), nil
	case KindCallInfo:
		return CallInfo(s), nil
	case KindContentDisposition:
		return ContentDisposition(s), nil
	case KindContentEncoding:
		return ContentEncoding(s), nil
	case KindContentLanguage:
		return ContentLanguage(s), nil
	case KindContentType:
		return ContentType(s), nil
	case KindDate:
		return Date(s), nil
	case KindErrorInfo:
		return ErrorInfo(s), nil
	case KindInReplyTo:
		return InReplyTo(s), nil
	case KindMIMEVersion:
		return MIMEVersion(s), nil
	case KindOrganization:
		return Organization(s), nil
	case KindPriority:
		return Priority(s), nil
	case KindProxyAuthenticate:
		return ProxyAuthenticate(s), nil
	case KindProxyAuthorization:
		return ProxyAuthorization(s), nil
	case KindProxyRequire:
		return ProxyRequire(s), nil
	case KindRecordRoute:
		return RecordRoute(s), nil
	case KindRequire:
		return Require(s), nil
	case KindRetryAfter:
		return RetryAfter(s), nil
	case KindRoute:
		return Route(s), nil
	case KindServer:
		return Server(s), nil
	case KindSubject:
		return Subject(s), nil
	case KindTimestamp:
		return Timestamp(s), nil
	case KindUnsupported:
		return Unsupported(s), nil
	case KindUserAgent:
		return UserAgent(s), nil
	case KindVia:
		return Via(s), nil
	case KindWarning:
		return Warning(s), nil
	case KindWWWAuthenticate:
		return WWWAuthenticate(s), nil
	default:
		return nil, errtrace.Wrap(newShapeMismatchErr(k, ShapeText))
	}
}
