package codec

import (
	"github.com/unkn0wn-root/jsontime"
	"github.com/vmihailenco/msgpack/v5"
)

// Msgpack is a Codec that carries a temporal value as a msgpack str
// holding its canonical text, using vmihailenco/msgpack/v5.
// The zero value is NOT ready to use; set Conv.
//
// The value is not encoded with the msgpack timestamp extension, so zones
// and offsets survive the trip.
type Msgpack[T any] struct {
	Conv jsontime.Converter[T]
}

var _ Codec[jsontime.ZonedDateTime] = Msgpack[jsontime.ZonedDateTime]{}

func (c Msgpack[T]) Encode(v T) ([]byte, error) {
	s, err := c.Conv.Text(v)
	if err != nil {
		return nil, err
	}
	return msgpack.Marshal(s)
}

func (c Msgpack[T]) Decode(b []byte) (T, error) {
	var s string
	if err := msgpack.Unmarshal(b, &s); err != nil {
		var zero T
		return zero, err
	}
	return c.Conv.Parse(s)
}
