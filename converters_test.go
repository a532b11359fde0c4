package jsontime

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type container struct {
	LD  LocalDate      `json:"ld"`
	LDT LocalDateTime  `json:"ldt"`
	LT  LocalTime      `json:"lt"`
	ODT OffsetDateTime `json:"odt"`
	OT  OffsetTime     `json:"ot"`
	ZDT ZonedDateTime  `json:"zdt"`
	I   Instant        `json:"i"`
}

func TestRegisterAllRoundTripsContainer(t *testing.T) {
	s := RegisterAll(NewConfig()).Build()

	now := time.Now().In(mustLoad(t, "Europe/Berlin"))
	original := container{
		LD:  LocalDateOf(now),
		LDT: LocalDateTimeOf(now),
		LT:  LocalTimeOf(now),
		ODT: OffsetDateTimeFromTime(now),
		OT:  OffsetTimeFromTime(now),
		ZDT: ZonedDateTimeFromTime(now),
		I:   InstantFromTime(now),
	}

	b, err := s.Marshal(original)
	require.NoError(t, err)

	var reconstituted container
	require.NoError(t, s.Unmarshal(b, &reconstituted))
	assert.Equal(t, original, reconstituted)
}

func TestSerializeExactText(t *testing.T) {
	s := RegisterAll(NewConfig()).Build()
	brisbane, err := ZonedDateTimeOf(moonwalk, "Australia/Brisbane")
	require.NoError(t, err)

	cases := []struct {
		v    any
		want string
	}{
		{Date(1969, time.July, 21), `"1969-07-21"`},
		{Clock(12, 56, 0, 0), `"12:56:00"`},
		{moonwalk, `"1969-07-21T12:56:00"`},
		{moonwalk.AtOffset(OffsetOf(10, 0)), `"1969-07-21T12:56:00+10:00"`},
		{Clock(12, 56, 0, 0).AtOffset(OffsetOf(10, 0)), `"12:56:00+10:00"`},
		{brisbane, `"1969-07-21T12:56:00+10:00[Australia/Brisbane]"`},
		{moonwalk.AtOffset(OffsetOf(10, 0)).Instant(), `"1969-07-21T02:56:00Z"`},
	}
	for _, tc := range cases {
		b, err := s.Marshal(tc.v)
		require.NoError(t, err)
		assert.Equal(t, tc.want, string(b))
	}
}

func TestDeserializeInstant(t *testing.T) {
	s := RegisterInstant(NewConfig()).Build()

	var got Instant
	require.NoError(t, s.Unmarshal([]byte(`"1969-07-21T02:56:00Z"`), &got))
	assert.Equal(t, OffsetDateTimeOf(moonwalk, OffsetOf(10, 0)).Instant(), got)
}

func TestDeserializeZoned(t *testing.T) {
	s := RegisterZonedDateTime(NewConfig()).Build()

	var got ZonedDateTime
	require.NoError(t, s.Unmarshal([]byte(`"1969-07-21T12:56:00+10:00[Australia/Brisbane]"`), &got))
	want, err := ZonedDateTimeOf(moonwalk, "Australia/Brisbane")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDeserializeMalformedDate(t *testing.T) {
	s := RegisterAll(NewConfig()).Build()

	var d LocalDate
	err := s.Unmarshal([]byte(`"1969-13-21"`), &d)
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "LocalDate", fe.Type)
	assert.Equal(t, "1969-13-21", fe.Input)
	assert.ErrorIs(t, err, ErrRange)
}

func TestDeserializeNonString(t *testing.T) {
	s := RegisterAll(NewConfig()).Build()

	var v struct {
		D LocalDate `json:"d"`
	}
	err := s.Unmarshal([]byte(`{"d":19690721}`), &v)
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.ErrorIs(t, err, ErrNotString)
	assert.Equal(t, "19690721", fe.Input)
}

func TestNullDecodesToZero(t *testing.T) {
	s := RegisterAll(NewConfig()).Build()

	v := struct {
		D LocalDate  `json:"d"`
		P *LocalDate `json:"p"`
	}{D: Date(1969, time.July, 21)}
	require.NoError(t, s.Unmarshal([]byte(`{"d":null,"p":null}`), &v))
	assert.Equal(t, LocalDate{}, v.D)
	assert.Nil(t, v.P)

	require.NoError(t, s.Unmarshal([]byte(`{"p":"1969-07-21"}`), &v))
	require.NotNil(t, v.P)
	assert.Equal(t, Date(1969, time.July, 21), *v.P)

	b, err := s.Marshal(struct {
		P *Instant `json:"p"`
	}{})
	require.NoError(t, err)
	assert.Equal(t, `{"p":null}`, string(b))
}

type event struct {
	Name string    `json:"name"`
	Day  LocalDate `json:"day"`
	At   Instant   `json:"at"`
}

func TestMarshalRejectsInvalidValues(t *testing.T) {
	s := RegisterAll(NewConfig()).Build()

	cases := []struct {
		name string
		v    any
		typ  string
	}{
		{"unset date field", event{Name: "x"}, "LocalDate"},
		{"month 13", Date(1969, 13, 21), "LocalDate"},
		{"hour 24", Clock(24, 0, 0, 0), "LocalTime"},
		{"offset 19h", moonwalk.AtOffset(OffsetOf(19, 0)), "OffsetDateTime"},
		{"offset not in force", ZonedDateTime{LocalDateTime: moonwalk, Offset: OffsetOf(5, 0), Zone: "Australia/Brisbane"}, "ZonedDateTime"},
		{"instant after 9999", InstantFromTime(time.Date(10000, time.January, 1, 0, 0, 0, 0, time.UTC)), "Instant"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Marshal(tc.v)
			var fe *FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, "format", fe.Op)
			assert.Equal(t, tc.typ, fe.Type)
			assert.ErrorIs(t, err, ErrRange)
		})
	}
}

func TestZeroAsNullRoundTrips(t *testing.T) {
	s := RegisterAll(NewConfig(WithZeroAsNull())).Build()

	b, err := s.Marshal(event{Name: "x"})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"x","day":null,"at":null}`, string(b))

	var back event
	require.NoError(t, s.Unmarshal(b, &back))
	assert.Equal(t, event{Name: "x"}, back)

	full := event{Name: "landing", Day: moonwalk.LocalDate, At: moonwalk.AtOffset(OffsetOf(10, 0)).Instant()}
	b, err = s.Marshal(full)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"landing","day":"1969-07-21","at":"1969-07-21T02:56:00Z"}`, string(b))

	_, err = s.Marshal(Date(1969, 13, 21))
	assert.ErrorIs(t, err, ErrRange)
}

func TestOverrideAfterRegisterAll(t *testing.T) {
	compact := Converter[LocalDate]{
		Format: func(d LocalDate) string { return strings.ReplaceAll(d.String(), "-", "") },
		Parse: func(s string) (LocalDate, error) {
			if len(s) != 8 {
				return LocalDate{}, &FormatError{Type: "LocalDate", Input: s, Err: ErrSyntax}
			}
			return ParseLocalDate(s[:4] + "-" + s[4:6] + "-" + s[6:])
		},
	}
	cfg := RegisterAll(NewConfig())
	require.Same(t, cfg, Bind(cfg, compact))
	s := cfg.Build()

	v := struct {
		D LocalDate     `json:"d"`
		T LocalTime     `json:"t"`
		X LocalDateTime `json:"x"`
	}{Date(1969, time.July, 21), Clock(12, 56, 0, 0), moonwalk}
	b, err := s.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `{"d":"19690721","t":"12:56:00","x":"1969-07-21T12:56:00"}`, string(b))

	var back = v
	back.D = LocalDate{}
	require.NoError(t, s.Unmarshal(b, &back))
	assert.Equal(t, v, back)
}

func TestRegistrationOrderAndIdempotence(t *testing.T) {
	cfg := NewConfig()
	require.Same(t, cfg, RegisterAll(cfg))
	want := []reflect.Type{
		reflect.TypeFor[LocalDate](),
		reflect.TypeFor[LocalDateTime](),
		reflect.TypeFor[LocalTime](),
		reflect.TypeFor[OffsetDateTime](),
		reflect.TypeFor[OffsetTime](),
		reflect.TypeFor[ZonedDateTime](),
		reflect.TypeFor[Instant](),
	}
	assert.Equal(t, want, cfg.Types())

	RegisterAll(cfg)
	assert.Same(t, cfg, RegisterLocalTime(cfg))
	assert.Equal(t, want, cfg.Types())
	assert.True(t, cfg.Bound(reflect.TypeFor[Instant]()))
	assert.False(t, cfg.Bound(reflect.TypeFor[time.Time]()))
}

func TestBuildSnapshotsBindings(t *testing.T) {
	cfg := NewConfig()
	before := cfg.Build()
	RegisterLocalDate(cfg)
	after := cfg.Build()

	d := Date(1969, time.July, 21)
	b, err := after.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1969-07-21"`, string(b))

	// Unbound types use the engine default: exported fields as an object.
	b, err = before.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `{"Year":1969,"Month":7,"Day":21}`, string(b))
}

func TestZeroConfigIsUsable(t *testing.T) {
	var cfg Config
	s := RegisterInstant(&cfg).Build()
	b, err := s.Marshal(InstantOf(0, 0))
	require.NoError(t, err)
	assert.Equal(t, `"1970-01-01T00:00:00Z"`, string(b))
}

func TestNilConfigPanics(t *testing.T) {
	assert.PanicsWithValue(t, ErrNilConfig, func() { RegisterAll(nil) })
	assert.PanicsWithValue(t, ErrNilConfig, func() { RegisterInstant(nil) })
}

func TestEncoderDecoderStream(t *testing.T) {
	s := RegisterAll(NewConfig()).Build()

	var buf bytes.Buffer
	enc := s.NewEncoder(&buf)
	days := []LocalDate{Date(1969, time.July, 20), Date(1969, time.July, 21)}
	for _, d := range days {
		require.NoError(t, enc.Encode(d))
	}
	assert.Equal(t, "\"1969-07-20\"\n\"1969-07-21\"\n", buf.String())

	dec := s.NewDecoder(&buf)
	var got []LocalDate
	for {
		var d LocalDate
		err := dec.Decode(&d)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		got = append(got, d)
	}
	assert.Equal(t, days, got)
}

// Derived values of one instant serialize to ISO text, not to field objects.
func TestDerivedValuesSerializeAsISO(t *testing.T) {
	s := RegisterAll(NewConfig()).Build()

	instant, err := ParseInstant("2017-06-08T22:11:28.566Z")
	require.NoError(t, err)
	ldt := LocalDateTimeOf(instant.Time())
	ld := ldt.LocalDate
	startOfDay := ld.AtStartOfDay().AtOffset(0).Instant()

	v := struct {
		Date  Instant       `json:"date"`
		Date2 LocalDateTime `json:"date2"`
		Date3 LocalDate     `json:"date3"`
		Date4 Instant       `json:"date4"`
	}{instant, ldt, ld, startOfDay}

	b, err := s.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t,
		`{"date":"2017-06-08T22:11:28.566Z",`+
			`"date2":"2017-06-08T22:11:28.566",`+
			`"date3":"2017-06-08",`+
			`"date4":"2017-06-08T00:00:00Z"}`,
		string(b))
}

type recordingHooks struct {
	mu       sync.Mutex
	replaced []string
	rejected []string
}

func (h *recordingHooks) ConverterReplaced(typ string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.replaced = append(h.replaced, typ)
}

func (h *recordingHooks) DecodeRejected(typ, input string, _ error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rejected = append(h.rejected, typ+"="+input)
}

type recordingLogger struct {
	NopLogger
	debug []string
}

func (l *recordingLogger) Debug(msg string, f Fields) {
	l.debug = append(l.debug, msg+":"+f["type"].(string))
}

func TestHooksAndLogger(t *testing.T) {
	h := &recordingHooks{}
	l := &recordingLogger{}
	cfg := NewConfig(WithHooks(h), WithLogger(l))

	RegisterLocalDate(cfg)
	RegisterLocalDate(cfg)
	assert.Equal(t, []string{"LocalDate"}, h.replaced)
	assert.Equal(t, []string{"converter registered:LocalDate", "converter replaced:LocalDate"}, l.debug)

	s := cfg.Build()
	var d LocalDate
	require.Error(t, s.Unmarshal([]byte(`"1969-13-21"`), &d))
	require.Error(t, s.Unmarshal([]byte(`true`), &d))
	assert.Equal(t, []string{"LocalDate=1969-13-21", "LocalDate=true"}, h.rejected)
	assert.Equal(t, "decode rejected:LocalDate", l.debug[len(l.debug)-1])
}

func TestSerializerConcurrentUse(t *testing.T) {
	s := RegisterAll(NewConfig()).Build()
	want := `"1969-07-21T12:56:00"`

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				b, err := s.Marshal(moonwalk)
				if err != nil || string(b) != want {
					t.Errorf("Marshal = %s, %v", b, err)
					return
				}
				var back LocalDateTime
				if err := s.Unmarshal(b, &back); err != nil || back != moonwalk {
					t.Errorf("Unmarshal = %v, %v", back, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func mustLoad(t *testing.T, zone string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(zone)
	require.NoError(t, err)
	return loc
}
