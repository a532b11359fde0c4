package jsontime

// Hooks lightweight callbacks for converter events.
// Implementations MUST be cheap and non-blocking and safe for concurrent use:
// DecodeRejected runs on the decoding goroutine of any built Serializer.
type Hooks interface {
	// A binding for typ was installed over an existing one.
	ConverterReplaced(typ string)

	// Text bound for typ failed to parse. input is the raw JSON string
	// (or token text) and may hold caller data.
	DecodeRejected(typ, input string, err error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) ConverterReplaced(string)             {}
func (NopHooks) DecodeRejected(string, string, error) {}
