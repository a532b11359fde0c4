// Package codec carries temporal values, or structs holding them, as bytes:
// JSON through a jsontime Serializer, bare text, or a CBOR or msgpack
// string, each built on a jsontime Converter.
package codec

// Codec encodes/decodes values V to []byte for storage or transport.
// Implementations return a *jsontime.FormatError for values or payloads
// the underlying converter rejects.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
