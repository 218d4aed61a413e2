package header

import (
	"bytes"
	"encoding/json"

	"braces.dev/errtrace"
)

type headerData struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ToJSON encodes hdr as {"name":"<canonical name>","value":"<rendered value>"}.
// Angle brackets of URIs are kept as is.
// A nil hdr is encoded as null.
func ToJSON(hdr Header) ([]byte, error) {
	var hd *headerData
	if hdr != nil {
		hd = &headerData{
			Name:  string(hdr.kind().CanonicName()),
			Value: RenderValue(hdr),
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(hd); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
