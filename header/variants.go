package header

// NameAddr is the payload of To, From, Contact and Reply-To headers.
type NameAddr struct {
	DisplayName string // empty means no display name
	URI         URI
	Params      Params
}

// Tag returns the "tag" parameter.
func (addr NameAddr) Tag() (string, bool) { return addr.Params.Get("tag") }

// Clone returns a copy of the NameAddr with its own parameter set.
// The URI is shared, URIs are treated as immutable.
func (addr NameAddr) Clone() NameAddr {
	addr.Params = addr.Params.Clone()
	return addr
}

// Named-address headers.
type (
	// To specifies the logical recipient of the request.
	To NameAddr
	// From indicates the initiator of the request.
	From NameAddr
	// Contact provides a URI to reach the UA for subsequent requests.
	Contact NameAddr
	// ReplyTo contains a logical return URI.
	ReplyTo NameAddr
)

func (*To) kind() Kind      { return KindTo }
func (*From) kind() Kind    { return KindFrom }
func (*Contact) kind() Kind { return KindContact }
func (*ReplyTo) kind() Kind { return KindReplyTo }

func (hdr *To) String() string      { return RenderValue(hdr) }
func (hdr *From) String() string    { return RenderValue(hdr) }
func (hdr *Contact) String() string { return RenderValue(hdr) }
func (hdr *ReplyTo) String() string { return RenderValue(hdr) }

// CSeq identifies and orders transactions.
type CSeq struct {
	SeqNum uint32
	Method RequestMethod
}

func (*CSeq) kind() Kind { return KindCSeq }

func (hdr *CSeq) String() string { return RenderValue(hdr) }

// Numeric headers.
type (
	MaxForwards   uint32
	Expires       uint32 // seconds
	MinExpires    uint32 // seconds
	ContentLength uint32 // bytes
)

func (MaxForwards) kind() Kind   { return KindMaxForwards }
func (Expires) kind() Kind       { return KindExpires }
func (MinExpires) kind() Kind    { return KindMinExpires }
func (ContentLength) kind() Kind { return KindContentLength }

func (hdr MaxForwards) String() string   { return RenderValue(hdr) }
func (hdr Expires) String() string       { return RenderValue(hdr) }
func (hdr MinExpires) String() string    { return RenderValue(hdr) }
func (hdr ContentLength) String() string { return RenderValue(hdr) }

// Method list headers.
type (
	Accept []RequestMethod
	Allow  []RequestMethod
)

func (Accept) kind() Kind { return KindAccept }
func (Allow) kind() Kind  { return KindAllow }

func (hdr Accept) String() string { return RenderValue(hdr) }
func (hdr Allow) String() string  { return RenderValue(hdr) }

// Supported enumerates the option tags supported by the UA.
type Supported []string

func (Supported) kind() Kind { return KindSupported }

func (hdr Supported) String() string { return RenderValue(hdr) }

// Headers carrying pre-formatted text rendered as is.
type (
	AcceptEncoding     string
	AcceptLanguage     string
	AlertInfo          string
	AuthenticationInfo string
	Authorization      string
	CallID             string
	CallInfo           string
	ContentDisposition string
	ContentEncoding    string
	ContentLanguage    string
	ContentType        string
	Date               string
	ErrorInfo          string
	InReplyTo          string
	MIMEVersion        string // e.g. "1.0"
	Organization       string
	Priority           string
	ProxyAuthenticate  string
	ProxyAuthorization string
	ProxyRequire       string
	RecordRoute        string
	Require            string
	RetryAfter         string
	Route              string
	Server             string
	Subject            string
	Timestamp          string
	Unsupported        string
	UserAgent          string
	Via                string
	Warning            string
	WWWAuthenticate    string
)

func (AcceptEncoding) kind() Kind     { return KindAcceptEncoding }
func (AcceptLanguage) kind() Kind     { return KindAcceptLanguage }
func (AlertInfo) kind() Kind          { return KindAlertInfo }
func (AuthenticationInfo) kind() Kind { return KindAuthenticationInfo }
func (Authorization) kind() Kind      { return KindAuthorization }
func (CallID) kind() Kind             { return KindCallID }
func (CallInfo) kind() Kind           { return KindCallInfo }
func (ContentDisposition) kind() Kind { return KindContentDisposition }
func (ContentEncoding) kind() Kind    { return KindContentEncoding }
func (ContentLanguage) kind() Kind    { return KindContentLanguage }
func (ContentType) kind() Kind        { return KindContentType }
func (Date) kind() Kind               { return KindDate }
func (ErrorInfo) kind() Kind          { return KindErrorInfo }
func (InReplyTo) kind() Kind          { return KindInReplyTo }
func (MIMEVersion) kind() Kind        { return KindMIMEVersion }
func (Organization) kind() Kind       { return KindOrganization }
func (Priority) kind() Kind           { return KindPriority }
func (ProxyAuthenticate) kind() Kind  { return KindProxyAuthenticate }
func (ProxyAuthorization) kind() Kind { return KindProxyAuthorization }
func (ProxyRequire) kind() Kind       { return KindProxyRequire }
func (RecordRoute) kind() Kind        { return KindRecordRoute }
func (Require) kind() Kind            { return KindRequire }
func (RetryAfter) kind() Kind         { return KindRetryAfter }
func (Route) kind() Kind              { return KindRoute }
func (Server) kind() Kind             { return KindServer }
func (Subject) kind() Kind            { return KindSubject }
func (Timestamp) kind() Kind          { return KindTimestamp }
func (Unsupported) kind() Kind        { return KindUnsupported }
func (UserAgent) kind() Kind          { return KindUserAgent }
func (Via) kind() Kind                { return KindVia }
func (Warning) kind() Kind            { return KindWarning }
func (WWWAuthenticate) kind() Kind    { return KindWWWAuthenticate }
