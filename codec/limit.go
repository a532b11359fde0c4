package codec

import (
	"fmt"

	"github.com/unkn0wn-root/jsontime"
)

// LimitCodec wraps another codec to enforce a maximum allowed payload size
// at Decode time. Encode is forwarded to Inner unchanged.
// If MaxDecode <= 0, size limiting is disabled.
//
// Typical use: reject oversized text from an untrusted source before it
// reaches a parser or a zone database lookup.
type LimitCodec[V any] struct {
	// Inner is the underlying codec being wrapped. It must be set.
	Inner Codec[V]
	// MaxDecode is the maximum permitted length (in bytes) of the incoming
	// payload for Decode. If payload length exceeds MaxDecode, Decode returns
	// an error without invoking Inner.
	MaxDecode int
}

// LimitText returns a Text codec for conv limited to the longest text
// conv accepts, conv.MaxLen. A zero MaxLen leaves the codec unlimited.
//
//	c := codec.LimitText(jsontime.InstantConverter()) // MaxDecode 30
func LimitText[T any](conv jsontime.Converter[T]) LimitCodec[T] {
	return LimitCodec[T]{Inner: Text[T]{Conv: conv}, MaxDecode: conv.MaxLen}
}

func (c LimitCodec[V]) Encode(v V) ([]byte, error) { return c.Inner.Encode(v) }
func (c LimitCodec[V]) Decode(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		return zero, fmt.Errorf("payload too large: %d > %d", len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}
