package codec

import "github.com/unkn0wn-root/jsontime"

var defaultSerializer = jsontime.RegisterAll(jsontime.NewConfig()).Build()

// JSON is a Codec that serializes V through a jsontime Serializer.
// The zero value is ready to use and binds all seven temporal types.
type JSON[V any] struct {
	S *jsontime.Serializer
}

var _ Codec[struct{}] = JSON[struct{}]{}

func (c JSON[V]) serializer() *jsontime.Serializer {
	if c.S == nil {
		return defaultSerializer
	}
	return c.S
}

func (c JSON[V]) Encode(v V) ([]byte, error) { return c.serializer().Marshal(v) }
func (c JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := c.serializer().Unmarshal(b, &v)
	return v, err
}
