package jsontime

import (
	"errors"
	"reflect"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Converter converts values of T to and from their canonical text.
// Format and Parse must be set and must not retain their arguments.
// Valid and MaxLen are optional.
type Converter[T any] struct {
	Format func(T) string
	Parse  func(string) (T, error)

	// Valid reports whether a value may be written. Values it rejects fail
	// to serialize with a *FormatError wrapping ErrRange.
	Valid func(T) bool
	// MaxLen is the longest text Parse accepts; 0 means unbounded.
	MaxLen int
}

// Text returns the canonical text of v, or a *FormatError wrapping ErrRange
// when Valid rejects v.
func (c Converter[T]) Text(v T) (string, error) {
	s := c.Format(v)
	if c.Valid != nil && !c.Valid(v) {
		return "", &FormatError{Op: "format", Type: typeName(reflect.TypeFor[T]()), Input: s, Err: ErrRange}
	}
	return s, nil
}

type Option func(*Config)

// WithLogger sets the logger used for registrations and decode failures.
func WithLogger(l Logger) Option { return func(c *Config) { c.log = l } }

// WithHooks sets the hooks fired on replaced bindings and rejected input.
func WithHooks(h Hooks) Option { return func(c *Config) { c.hooks = h } }

// WithZeroAsNull writes the zero value of a bound type as JSON null, which
// decodes back to the zero value. Without it an unset field that is not
// valid, like a zero LocalDate, fails to serialize. The zero Instant is the
// Unix epoch and is written as null as well.
func WithZeroAsNull() Option { return func(c *Config) { c.zeroNull = true } }

// Config accumulates type -> converter bindings until Build.
// The zero value is ready to use. A Config is not safe for concurrent
// mutation; Serializers built from it are.
type Config struct {
	log      Logger
	hooks    Hooks
	zeroNull bool

	index map[reflect.Type]int
	binds []binding
}

type binding struct {
	typ  reflect.Type
	arsh func(events) (*json.Marshalers, *json.Unmarshalers)
}

func NewConfig(opts ...Option) *Config {
	c := &Config{}
	for _, o := range opts {
		o(c)
	}
	c.init()
	return c
}

func (c *Config) init() {
	if c.index == nil {
		c.index = make(map[reflect.Type]int)
	}
	c.log = coalesce[Logger](c.log, NopLogger{})
	c.hooks = coalesce[Hooks](c.hooks, NopHooks{})
}

// coalesce returns def when v is the zero value of T, otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

// Bind installs conv for values of T and returns c.
// Binding T again replaces the earlier converter in place: last one wins.
func Bind[T any](c *Config, conv Converter[T]) *Config {
	if c == nil {
		panic(ErrNilConfig)
	}
	c.init()

	typ := reflect.TypeFor[T]()
	name := typeName(typ)
	b := binding{
		typ: typ,
		arsh: func(ev events) (*json.Marshalers, *json.Unmarshalers) {
			return arshalers(name, conv, ev)
		},
	}

	if i, ok := c.index[typ]; ok {
		c.binds[i] = b
		c.log.Debug("converter replaced", Fields{"type": name})
		c.hooks.ConverterReplaced(name)
		return c
	}
	c.index[typ] = len(c.binds)
	c.binds = append(c.binds, b)
	c.log.Debug("converter registered", Fields{"type": name})
	return c
}

func typeName(t reflect.Type) string {
	if n := t.Name(); n != "" {
		return n
	}
	return t.String()
}

// Bound reports whether t has a converter.
func (c *Config) Bound(t reflect.Type) bool {
	_, ok := c.index[t]
	return ok
}

// Types returns the bound types in registration order.
func (c *Config) Types() []reflect.Type {
	out := make([]reflect.Type, len(c.binds))
	for i, b := range c.binds {
		out[i] = b.typ
	}
	return out
}

// Build returns a Serializer holding a snapshot of the current bindings.
// opts are passed to the JSON engine; marshalers set through them are
// replaced by the bindings, use Bind for per-type behaviour instead.
func (c *Config) Build(opts ...json.Options) *Serializer {
	c.init()
	ev := events{log: c.log, hooks: c.hooks, zeroNull: c.zeroNull}

	all := make([]json.Options, 0, len(opts)+2)
	all = append(all, opts...)
	if len(c.binds) > 0 {
		ms := make([]*json.Marshalers, 0, len(c.binds))
		us := make([]*json.Unmarshalers, 0, len(c.binds))
		for _, b := range c.binds {
			m, u := b.arsh(ev)
			ms = append(ms, m)
			us = append(us, u)
		}
		all = append(all,
			json.WithMarshalers(json.JoinMarshalers(ms...)),
			json.WithUnmarshalers(json.JoinUnmarshalers(us...)))
	}
	return &Serializer{opts: json.JoinOptions(all...)}
}

type events struct {
	log      Logger
	hooks    Hooks
	zeroNull bool
}

// rejected logs the cause only; input may hold caller data and goes to hooks.
func (e events) rejected(typ, input string, err error) {
	e.log.Debug("decode rejected", Fields{"type": typ, "len": len(input), "err": cause(err)})
	e.hooks.DecodeRejected(typ, input, err)
}

func cause(err error) error {
	var fe *FormatError
	if errors.As(err, &fe) {
		return fe.Err
	}
	return err
}

// arshalers writes T as a JSON string and reads it back from one.
// JSON null reads as the zero T without calling Parse.
func arshalers[T any](name string, conv Converter[T], ev events) (*json.Marshalers, *json.Unmarshalers) {
	m := json.MarshalToFunc(func(enc *jsontext.Encoder, v T) error {
		if ev.zeroNull && reflect.ValueOf(&v).Elem().IsZero() {
			return enc.WriteToken(jsontext.Null)
		}
		s, err := conv.Text(v)
		if err != nil {
			ev.log.Debug("encode rejected", Fields{"type": name, "err": cause(err)})
			return err
		}
		return enc.WriteToken(jsontext.String(s))
	})
	u := json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v *T) error {
		tok, err := dec.ReadToken()
		if err != nil {
			return err
		}
		switch tok.Kind() {
		case 'n':
			var zero T
			*v = zero
			return nil
		case '"':
			s := tok.String()
			out, err := conv.Parse(s)
			if err != nil {
				ev.rejected(name, s, err)
				return err
			}
			*v = out
			return nil
		}
		raw := tok.String()
		err = &FormatError{Type: name, Input: raw, Err: ErrNotString}
		ev.rejected(name, raw, err)
		return err
	})
	return m, u
}
