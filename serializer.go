package jsontime

import (
	"io"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Serializer marshals Go values to JSON with the bindings of the Config it
// was built from. Safe for concurrent use.
type Serializer struct {
	opts json.Options
}

func (s *Serializer) Marshal(v any) ([]byte, error) {
	return json.Marshal(v, s.opts)
}

// Unmarshal decodes data into v, which must be a non-nil pointer.
// Rejected temporal text surfaces as a *FormatError inside a
// *json.SemanticError; use errors.As to reach it.
func (s *Serializer) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v, s.opts)
}

// NewEncoder returns an Encoder writing newline-terminated values to w.
func (s *Serializer) NewEncoder(w io.Writer) *Encoder {
	return &Encoder{e: jsontext.NewEncoder(w, s.opts), opts: s.opts}
}

// NewDecoder returns a Decoder reading a stream of values from r.
func (s *Serializer) NewDecoder(r io.Reader) *Decoder {
	return &Decoder{d: jsontext.NewDecoder(r, s.opts), opts: s.opts}
}

type Encoder struct {
	e    *jsontext.Encoder
	opts json.Options
}

func (e *Encoder) Encode(v any) error {
	return json.MarshalEncode(e.e, v, e.opts)
}

type Decoder struct {
	d    *jsontext.Decoder
	opts json.Options
}

// Decode reads the next value into v. It returns io.EOF at the end of the stream.
func (d *Decoder) Decode(v any) error {
	return json.UnmarshalDecode(d.d, v, d.opts)
}
