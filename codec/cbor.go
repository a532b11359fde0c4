package codec

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/unkn0wn-root/jsontime"
)

// CBOR is a Codec that carries a temporal value as a CBOR text string
// holding its canonical text, using fxamacker/cbor.
// The zero value is NOT ready to use. Construct with NewCBOR or MustCBOR.
//
// Encoding uses CoreDetEncOptions (RFC 8949 Core Deterministic), so equal
// values always produce equal bytes.
type CBOR[T any] struct {
	conv jsontime.Converter[T]
	enc  cbor.EncMode
	dec  cbor.DecMode
}

var _ Codec[jsontime.Instant] = CBOR[jsontime.Instant]{}

// NewCBOR constructs a CBOR codec over conv. Decoding rejects invalid UTF-8
// and any item that is not a text string.
func NewCBOR[T any](conv jsontime.Converter[T]) (CBOR[T], error) {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return CBOR[T]{}, err
	}
	dm, err := cbor.DecOptions{UTF8: cbor.UTF8RejectInvalid}.DecMode()
	if err != nil {
		return CBOR[T]{}, err
	}
	return CBOR[T]{conv: conv, enc: em, dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error.
// Handy for package-level variables in tests/examples.
func MustCBOR[T any](conv jsontime.Converter[T]) CBOR[T] {
	c, err := NewCBOR(conv)
	if err != nil {
		panic(err)
	}
	return c
}

// Encode writes the canonical text of v as a CBOR text string.
func (c CBOR[T]) Encode(v T) ([]byte, error) {
	s, err := c.conv.Text(v)
	if err != nil {
		return nil, err
	}
	return c.enc.Marshal(s)
}

// Decode reads a CBOR text string and parses it with the converter.
func (c CBOR[T]) Decode(b []byte) (T, error) {
	var s string
	if err := c.dec.Unmarshal(b, &s); err != nil {
		var zero T
		return zero, err
	}
	return c.conv.Parse(s)
}
