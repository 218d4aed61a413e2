package main

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"
	"gopkg.in/yaml.v2"

	"github.com/ghettovoice/siphdr/header"
	"github.com/ghettovoice/siphdr/internal/errorutil"
	"github.com/ghettovoice/siphdr/uri"
)

// document is the YAML input of the render command:
//
//	headers:
//	  - name: To
//	    display: John Doe
//	    uri: sip:jd@example.com
//	    params:
//	      tag: abc
//	  - name: CSeq
//	    seq: 1
//	    method: INVITE
//	  - name: Allow
//	    items: [INVITE, ACK, BYE]
//	  - name: Max-Forwards
//	    value: "70"
type document struct {
	Headers []headerDoc `yaml:"headers"`
}

type headerDoc struct {
	Name    string        `yaml:"name"`
	Display string        `yaml:"display,omitempty"`
	URI     string        `yaml:"uri,omitempty"`
	Params  yaml.MapSlice `yaml:"params,omitempty"`
	Seq     uint32        `yaml:"seq,omitempty"`
	Method  string        `yaml:"method,omitempty"`
	Items   []string      `yaml:"items,omitempty"`
	Value   string        `yaml:"value,omitempty"`
}

func decodeDocument(r io.Reader) (*document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	var doc document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
	}
	return &doc, nil
}

func (doc *document) build() ([]header.Header, error) {
	hdrs := make([]header.Header, 0, len(doc.Headers))
	for i := range doc.Headers {
		hdr, err := doc.Headers[i].build()
		if err != nil {
			return nil, errtrace.Wrap(fmt.Errorf("header #%d: %w", i, err))
		}
		hdrs = append(hdrs, hdr)
	}
	return hdrs, nil
}

func (hd *headerDoc) build() (header.Header, error) {
	k, err := header.ParseKind(hd.Name)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	switch k.Shape() {
	case header.ShapeNameAddr:
		addr := header.NameAddr{
			DisplayName: hd.Display,
			Params:      buildParams(hd.Params),
		}
		if hd.URI != "" {
			u, err := uri.ParseAny(hd.URI)
			if err != nil {
				return nil, errtrace.Wrap(err)
			}
			addr.URI = u
		}
		return errtrace.Wrap2(header.NewNameAddr(k, addr))
	case header.ShapeCSeq:
		return header.NewCSeq(hd.Seq, header.RequestMethod(hd.Method).ToUpper()), nil
	case header.ShapeNumber:
		n, err := strconv.ParseUint(hd.Value, 10, 32)
		if err != nil {
			return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("%s value %q: %v", k, hd.Value, err))
		}
		return errtrace.Wrap2(header.NewNumber(k, uint32(n)))
	case header.ShapeMethods:
		ms := make([]header.RequestMethod, len(hd.Items))
		for i, it := range hd.Items {
			ms[i] = header.RequestMethod(it).ToUpper()
		}
		return errtrace.Wrap2(header.NewMethods(k, ms))
	case header.ShapeStrings:
		return errtrace.Wrap2(header.NewStrings(k, hd.Items))
	case header.ShapeText:
		return errtrace.Wrap2(header.NewText(k, hd.Value))
	default:
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("unsupported header %q", hd.Name))
	}
}

func buildParams(ms yaml.MapSlice) header.Params {
	var ps header.Params
	for _, it := range ms {
		var val string
		if it.Value != nil {
			val = fmt.Sprint(it.Value)
		}
		ps = ps.Set(fmt.Sprint(it.Key), val)
	}
	return ps
}
