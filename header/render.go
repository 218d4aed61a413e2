package header

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/siphdr/internal/errorutil"
	"github.com/ghettovoice/siphdr/internal/ioutil"
	"github.com/ghettovoice/siphdr/internal/util"
)

// RenderTo writes hdr to w as a single header line "Name: value" without the line terminator.
// It returns the number of bytes written.
// The only possible error is a write error of w, returned as is;
// the bytes written before the failure are not rolled back.
// A nil hdr writes nothing.
func RenderTo(w io.Writer, hdr Header, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(hdr.kind().name(opts), ": ")
	cw.Call(func(w io.Writer) (int, error) {
		return errtrace.Wrap2(renderValueTo(w, hdr))
	})
	return errtrace.Wrap2(cw.Result())
}

// Render returns the header line of hdr, see [RenderTo].
func Render(hdr Header, opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	RenderTo(sb, hdr, opts) //nolint:errcheck
	return sb.String()
}

// RenderValue returns the value part of the header line of hdr, without the name prefix.
func RenderValue(hdr Header) string {
	if hdr == nil {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	renderValueTo(sb, hdr) //nolint:errcheck
	return sb.String()
}

func renderValueTo(w io.Writer, hdr Header) (num int, err error) {
	switch hdr := hdr.(type) {
	case *To:
		return errtrace.Wrap2(renderNameAddr(w, (*NameAddr)(hdr)))
	case *From:
		return errtrace.Wrap2(renderNameAddr(w, (*NameAddr)(hdr)))
	case *Contact:
		return errtrace.Wrap2(renderNameAddr(w, (*NameAddr)(hdr)))
	case *ReplyTo:
		return errtrace.Wrap2(renderNameAddr(w, (*NameAddr)(hdr)))
	case *CSeq:
		return errtrace.Wrap2(renderCSeq(w, hdr))
	case MaxForwards:
		return errtrace.Wrap2(renderNumber(w, hdr))
	case Expires:
		return errtrace.Wrap2(renderNumber(w, hdr))
	case MinExpires:
		return errtrace.Wrap2(renderNumber(w, hdr))
	case ContentLength:
		return errtrace.Wrap2(renderNumber(w, hdr))
	case Accept:
		return errtrace.Wrap2(renderList(w, hdr))
	case Allow:
		return errtrace.Wrap2(renderList(w, hdr))
	case Supported:
		return errtrace.Wrap2(renderList(w, hdr))
	case AcceptEncoding:
		return errtrace.Wrap2(renderText(w, hdr))
	case AcceptLanguage:
		return errtrace.Wrap2(renderText(w, hdr))
	case AlertInfo:
		return errtrace.Wrap2(renderText(w, hdr))
	case AuthenticationInfo:
		return errtrace.Wrap2(renderText(w, hdr))
	case Authorization:
		return errtrace.Wrap2(renderText(w, hdr))
	case CallID:
		return errtrace.Wrap2(renderText(w, hdr))
	case CallInfo:
		return errtrace.Wrap2(renderText(w, hdr))
	case ContentDisposition:
		return errtrace.Wrap2(renderText(w, hdr))
	case ContentEncoding:
		return errtrace.Wrap2(renderText(w, hdr))
	case ContentLanguage:
		return errtrace.Wrap2(renderText(w, hdr))
	case ContentType:
		return errtrace.Wrap2(renderText(w, hdr))
	case Date:
		return errtrace.Wrap2(renderText(w, hdr))
	case ErrorInfo:
		return errtrace.Wrap2(renderText(w, hdr))
	case InReplyTo:
		return errtrace.Wrap2(renderText(w, hdr))
	case MIMEVersion:
		return errtrace.Wrap2(renderText(w, hdr))
	case Organization:
		return errtrace.Wrap2(renderText(w, hdr))
	case Priority:
		return errtrace.Wrap2(renderText(w, hdr))
	case ProxyAuthenticate:
		return errtrace.Wrap2(renderText(w, hdr))
	case ProxyAuthorization:
		return errtrace.Wrap2(renderText(w, hdr))
	case ProxyRequire:
		return errtrace.Wrap2(renderText(w, hdr))
	case RecordRoute:
		return errtrace.Wrap2(renderText(w, hdr))
	case Require:
		return errtrace.Wrap2(renderText(w, hdr))
	case RetryAfter:
		return errtrace.Wrap2(renderText(w, hdr))
	case Route:
		return errtrace.Wrap2(renderText(w, hdr))
	case Server:
		return errtrace.Wrap2(renderText(w, hdr))
	case Subject:
		return errtrace.Wrap2(renderText(w, hdr))
	case Timestamp:
		return errtrace.Wrap2(renderText(w, hdr))
	case Unsupported:
		return errtrace.Wrap2(renderText(w, hdr))
	case UserAgent:
		return errtrace.Wrap2(renderText(w, hdr))
	case Via:
		return errtrace.Wrap2(renderText(w, hdr))
	case Warning:
		return errtrace.Wrap2(renderText(w, hdr))
	case WWWAuthenticate:
		return errtrace.Wrap2(renderText(w, hdr))
	default:
		panic(newUnexpectHeaderTypeErr(hdr))
	}
}

func newUnexpectHeaderTypeErr(hdr Header) error {
	return errorutil.Errorf("unexpected header type %T", hdr)
}

// renderNameAddr writes `"display name" <uri>;key=value...`.
// Every parameter key is written once.
// The display name is quoted only when it contains a space.
func renderNameAddr(w io.Writer, addr *NameAddr) (num int, err error) {
	if addr == nil {
		addr = &NameAddr{}
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if addr.DisplayName != "" {
		if strings.Contains(addr.DisplayName, " ") {
			cw.Fprint(`"`, addr.DisplayName, `" `)
		} else {
			cw.Fprint(addr.DisplayName, " ")
		}
	}
	cw.WriteString("<")
	if addr.URI != nil {
		cw.Call(func(w io.Writer) (int, error) {
			return errtrace.Wrap2(addr.URI.RenderTo(w, nil))
		})
	}
	cw.WriteString(">")
	for k, v := range addr.Params.All() {
		cw.Fprint(";", k, "=", v)
	}
	return errtrace.Wrap2(cw.Result())
}

func renderCSeq(w io.Writer, hdr *CSeq) (num int, err error) {
	if hdr == nil {
		hdr = &CSeq{}
	}
	return errtrace.Wrap2(fmt.Fprint(w, strconv.FormatUint(uint64(hdr.SeqNum), 10), " ", hdr.Method))
}

func renderNumber[T ~uint32](w io.Writer, n T) (num int, err error) {
	return errtrace.Wrap2(io.WriteString(w, strconv.FormatUint(uint64(n), 10)))
}

// renderList writes items joined with "," and no surrounding whitespace.
func renderList[L ~[]E, E ~string](w io.Writer, items L) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for i := range items {
		if i > 0 {
			cw.WriteString(",")
		}
		cw.WriteString(string(items[i]))
	}
	return errtrace.Wrap2(cw.Result())
}

func renderText[T ~string](w io.Writer, s T) (num int, err error) {
	return errtrace.Wrap2(io.WriteString(w, string(s)))
}
