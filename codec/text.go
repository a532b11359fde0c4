package codec

import "github.com/unkn0wn-root/jsontime"

// Text carries a single temporal value as its bare canonical text,
// without JSON quoting. Useful for keys, headers and plain-text columns.
//
//	c := codec.Text[jsontime.LocalDate]{Conv: jsontime.LocalDateConverter()}
//	b, _ := c.Encode(jsontime.Date(1969, time.July, 21)) // "1969-07-21"
type Text[T any] struct {
	Conv jsontime.Converter[T]
}

var _ Codec[jsontime.LocalDate] = Text[jsontime.LocalDate]{}

func (c Text[T]) Encode(v T) ([]byte, error) {
	s, err := c.Conv.Text(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (c Text[T]) Decode(b []byte) (T, error) { return c.Conv.Parse(string(b)) }
