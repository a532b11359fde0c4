package jsontime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Canonical text of each type. Seconds are always written; the fraction
// only when non-zero, trimmed of trailing zeros. Instant trims in groups of
// three digits instead, so half a second is .500. A zero offset is written
// as "Z"; offset seconds only when non-zero.
//
//	LocalDate       1969-07-21
//	LocalTime       12:56:00
//	LocalDateTime   1969-07-21T12:56:00
//	OffsetDateTime  1969-07-21T12:56:00+10:00
//	OffsetTime      12:56:00+10:00
//	ZonedDateTime   1969-07-21T12:56:00+10:00[Australia/Brisbane]
//	Instant         1969-07-21T02:56:00Z

const (
	nameLocalDate      = "LocalDate"
	nameLocalTime      = "LocalTime"
	nameLocalDateTime  = "LocalDateTime"
	nameOffsetDateTime = "OffsetDateTime"
	nameOffsetTime     = "OffsetTime"
	nameZonedDateTime  = "ZonedDateTime"
	nameInstant        = "Instant"
)

// Longest text each parser accepts. Zone ids are capped at maxZoneLen.
const (
	maxDateLen           = len("2006-01-02")
	maxClockLen          = len("15:04:05.999999999")
	maxOffsetLen         = len("+18:00:00")
	maxZoneLen           = 64
	maxDateTimeLen       = maxDateLen + 1 + maxClockLen
	maxOffsetDateTimeLen = maxDateTimeLen + maxOffsetLen
	maxOffsetTimeLen     = maxClockLen + maxOffsetLen
	maxZonedLen          = maxOffsetDateTimeLen + 2 + maxZoneLen
	maxInstantLen        = maxDateTimeLen + 1
)

func (d LocalDate) String() string        { return string(appendDate(make([]byte, 0, 10), d)) }
func (t LocalTime) String() string        { return string(appendClock(make([]byte, 0, 18), t)) }
func (o ZoneOffset) String() string       { return string(appendOffset(make([]byte, 0, 9), o)) }
func (dt LocalDateTime) String() string   { return string(appendDateTime(make([]byte, 0, 29), dt)) }
func (odt OffsetDateTime) String() string { return string(appendOffsetDateTime(nil, odt)) }

func (ot OffsetTime) String() string {
	b := appendClock(make([]byte, 0, 24), ot.LocalTime)
	return string(appendOffset(b, ot.Offset))
}

func (z ZonedDateTime) String() string {
	b := appendOffsetDateTime(nil, z.OffsetDateTime())
	if z.Zone != "" {
		b = append(b, '[')
		b = append(b, z.Zone...)
		b = append(b, ']')
	}
	return string(b)
}

func (i Instant) String() string {
	dt := LocalDateTimeOf(i.Time())
	b := appendDate(make([]byte, 0, 30), dt.LocalDate)
	b = append(b, 'T')
	b = appendHMS(b, dt.LocalTime)
	b = appendFraction(b, dt.Nanosecond, 3)
	return string(append(b, 'Z'))
}

func appendDate(b []byte, d LocalDate) []byte {
	b = appendInt(b, d.Year, 4)
	b = append(b, '-')
	b = appendInt(b, int(d.Month), 2)
	b = append(b, '-')
	return appendInt(b, d.Day, 2)
}

func appendClock(b []byte, t LocalTime) []byte {
	return appendFraction(appendHMS(b, t), t.Nanosecond, 1)
}

func appendHMS(b []byte, t LocalTime) []byte {
	b = appendInt(b, t.Hour, 2)
	b = append(b, ':')
	b = appendInt(b, t.Minute, 2)
	b = append(b, ':')
	return appendInt(b, t.Second, 2)
}

// appendFraction appends ns as a decimal fraction of a second, dropping
// trailing zeros step digits at a time. Zero appends nothing.
func appendFraction(b []byte, ns, step int) []byte {
	if ns == 0 {
		return b
	}
	frac := appendInt(nil, ns, 9)
	n := len(frac)
	for n > step && allZeros(frac[n-step:n]) {
		n -= step
	}
	b = append(b, '.')
	return append(b, frac[:n]...)
}

func allZeros(b []byte) bool {
	for _, c := range b {
		if c != '0' {
			return false
		}
	}
	return true
}

func appendDateTime(b []byte, dt LocalDateTime) []byte {
	b = appendDate(b, dt.LocalDate)
	b = append(b, 'T')
	return appendClock(b, dt.LocalTime)
}

func appendOffsetDateTime(b []byte, odt OffsetDateTime) []byte {
	b = appendDateTime(b, odt.LocalDateTime)
	return appendOffset(b, odt.Offset)
}

func appendOffset(b []byte, o ZoneOffset) []byte {
	if o == 0 {
		return append(b, 'Z')
	}
	secs := int(o)
	if secs < 0 {
		b = append(b, '-')
		secs = -secs
	} else {
		b = append(b, '+')
	}
	b = appendInt(b, secs/3600, 2)
	b = append(b, ':')
	b = appendInt(b, secs/60%60, 2)
	if s := secs % 60; s != 0 {
		b = append(b, ':')
		b = appendInt(b, s, 2)
	}
	return b
}

// appendInt appends v zero-padded to width digits.
func appendInt(b []byte, v, width int) []byte {
	if v < 0 {
		b = append(b, '-')
		v = -v
	}
	s := strconv.Itoa(v)
	for i := len(s); i < width; i++ {
		b = append(b, '0')
	}
	return append(b, s...)
}

// ParseLocalDate parses YYYY-MM-DD.
func ParseLocalDate(s string) (LocalDate, error) {
	return parse(nameLocalDate, s, (*scanner).date)
}

// ParseLocalTime parses HH:MM:SS with an optional fraction of up to nine digits.
func ParseLocalTime(s string) (LocalTime, error) {
	return parse(nameLocalTime, s, (*scanner).clock)
}

// ParseLocalDateTime parses YYYY-MM-DDTHH:MM:SS[.f].
func ParseLocalDateTime(s string) (LocalDateTime, error) {
	return parse(nameLocalDateTime, s, (*scanner).dateTime)
}

// ParseOffsetDateTime parses YYYY-MM-DDTHH:MM:SS[.f]±HH:MM or a trailing Z.
func ParseOffsetDateTime(s string) (OffsetDateTime, error) {
	return parse(nameOffsetDateTime, s, (*scanner).offsetDateTime)
}

// ParseOffsetTime parses HH:MM:SS[.f]±HH:MM or a trailing Z.
func ParseOffsetTime(s string) (OffsetTime, error) {
	return parse(nameOffsetTime, s, (*scanner).offsetTime)
}

// ParseZonedDateTime parses an offset date-time followed by an optional
// bracketed IANA zone id. When the written offset is not the one in force
// for the zone, the instant it describes is kept and re-read in the zone.
func ParseZonedDateTime(s string) (ZonedDateTime, error) {
	return parse(nameZonedDateTime, s, (*scanner).zoned)
}

// ParseInstant parses a UTC date-time ending in Z.
func ParseInstant(s string) (Instant, error) {
	return parse(nameInstant, s, (*scanner).instant)
}

func parse[T any](name, s string, read func(*scanner) (T, error)) (T, error) {
	p := &scanner{s: s}
	v, err := read(p)
	if err == nil {
		err = p.end()
	}
	if err != nil {
		var zero T
		return zero, &FormatError{Type: name, Input: s, Err: err}
	}
	return v, nil
}

type scanner struct {
	s string
	i int
}

func (p *scanner) peek() byte {
	if p.i < len(p.s) {
		return p.s[p.i]
	}
	return 0
}

func (p *scanner) end() error {
	if p.i != len(p.s) {
		return fmt.Errorf("%w: unexpected %q at %d", ErrSyntax, p.s[p.i:], p.i)
	}
	return nil
}

// lit consumes c, matching letters case-insensitively.
func (p *scanner) lit(c byte) error {
	if got := p.peek(); got == c || (c >= 'A' && c <= 'Z' && got == c+'a'-'A') {
		p.i++
		return nil
	}
	if p.i >= len(p.s) {
		return fmt.Errorf("%w: want %q, got end of text", ErrSyntax, c)
	}
	return fmt.Errorf("%w: want %q at %d", ErrSyntax, c, p.i)
}

// num reads exactly width decimal digits.
func (p *scanner) num(width int) (int, error) {
	n := 0
	for k := 0; k < width; k++ {
		c := p.peek()
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: want digit at %d", ErrSyntax, p.i)
		}
		n = n*10 + int(c-'0')
		p.i++
	}
	return n, nil
}

func (p *scanner) date() (LocalDate, error) {
	y, err := p.num(4)
	if err != nil {
		return LocalDate{}, err
	}
	if err := p.lit('-'); err != nil {
		return LocalDate{}, err
	}
	m, err := p.num(2)
	if err != nil {
		return LocalDate{}, err
	}
	if err := p.lit('-'); err != nil {
		return LocalDate{}, err
	}
	d, err := p.num(2)
	if err != nil {
		return LocalDate{}, err
	}
	if m < 1 || m > 12 {
		return LocalDate{}, fmt.Errorf("%w: month %d", ErrRange, m)
	}
	if d < 1 || d > daysIn(y, time.Month(m)) {
		return LocalDate{}, fmt.Errorf("%w: day %d of %04d-%02d", ErrRange, d, y, m)
	}
	return LocalDate{Year: y, Month: time.Month(m), Day: d}, nil
}

func (p *scanner) clock() (LocalTime, error) {
	var f [3]int
	for k := range f {
		if k > 0 {
			if err := p.lit(':'); err != nil {
				return LocalTime{}, err
			}
		}
		n, err := p.num(2)
		if err != nil {
			return LocalTime{}, err
		}
		f[k] = n
	}
	switch {
	case f[0] > 23:
		return LocalTime{}, fmt.Errorf("%w: hour %d", ErrRange, f[0])
	case f[1] > 59:
		return LocalTime{}, fmt.Errorf("%w: minute %d", ErrRange, f[1])
	case f[2] > 59:
		return LocalTime{}, fmt.Errorf("%w: second %d", ErrRange, f[2])
	}
	t := LocalTime{Hour: f[0], Minute: f[1], Second: f[2]}
	if p.peek() != '.' {
		return t, nil
	}
	p.i++
	digits := 0
	for c := p.peek(); c >= '0' && c <= '9' && digits < 9; c = p.peek() {
		t.Nanosecond = t.Nanosecond*10 + int(c-'0')
		p.i++
		digits++
	}
	if digits == 0 {
		return LocalTime{}, fmt.Errorf("%w: empty fraction at %d", ErrSyntax, p.i)
	}
	for ; digits < 9; digits++ {
		t.Nanosecond *= 10
	}
	return t, nil
}

func (p *scanner) dateTime() (LocalDateTime, error) {
	d, err := p.date()
	if err != nil {
		return LocalDateTime{}, err
	}
	if err := p.lit('T'); err != nil {
		return LocalDateTime{}, err
	}
	t, err := p.clock()
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{LocalDate: d, LocalTime: t}, nil
}

func (p *scanner) offset() (ZoneOffset, error) {
	var neg bool
	switch p.peek() {
	case 'Z', 'z':
		p.i++
		return 0, nil
	case '-':
		neg = true
	case '+':
	default:
		return 0, fmt.Errorf("%w: want offset at %d", ErrSyntax, p.i)
	}
	p.i++
	h, err := p.num(2)
	if err != nil {
		return 0, err
	}
	if err := p.lit(':'); err != nil {
		return 0, err
	}
	m, err := p.num(2)
	if err != nil {
		return 0, err
	}
	s := 0
	if p.peek() == ':' {
		p.i++
		if s, err = p.num(2); err != nil {
			return 0, err
		}
	}
	total := h*3600 + m*60 + s
	if m > 59 || s > 59 || total > maxOffsetSeconds {
		return 0, fmt.Errorf("%w: offset %02d:%02d:%02d", ErrRange, h, m, s)
	}
	if neg {
		total = -total
	}
	return ZoneOffset(total), nil
}

func (p *scanner) offsetDateTime() (OffsetDateTime, error) {
	dt, err := p.dateTime()
	if err != nil {
		return OffsetDateTime{}, err
	}
	o, err := p.offset()
	if err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTime{LocalDateTime: dt, Offset: o}, nil
}

func (p *scanner) offsetTime() (OffsetTime, error) {
	t, err := p.clock()
	if err != nil {
		return OffsetTime{}, err
	}
	o, err := p.offset()
	if err != nil {
		return OffsetTime{}, err
	}
	return OffsetTime{LocalTime: t, Offset: o}, nil
}

func (p *scanner) zoned() (ZonedDateTime, error) {
	odt, err := p.offsetDateTime()
	if err != nil {
		return ZonedDateTime{}, err
	}
	if p.peek() != '[' {
		return ZonedDateTime{LocalDateTime: odt.LocalDateTime, Offset: odt.Offset}, nil
	}
	p.i++
	n := strings.IndexByte(p.s[p.i:], ']')
	if n < 0 {
		return ZonedDateTime{}, fmt.Errorf("%w: unterminated zone id at %d", ErrSyntax, p.i)
	}
	if n > maxZoneLen {
		return ZonedDateTime{}, fmt.Errorf("%w: zone id longer than %d", ErrRange, maxZoneLen)
	}
	zone := p.s[p.i : p.i+n]
	p.i += n + 1
	loc, err := loadZone(zone)
	if err != nil {
		return ZonedDateTime{}, fmt.Errorf("zone %q: %w", zone, err)
	}
	return zonedIn(odt.Time().In(loc), zone), nil
}

func (p *scanner) instant() (Instant, error) {
	dt, err := p.dateTime()
	if err != nil {
		return Instant{}, err
	}
	if err := p.lit('Z'); err != nil {
		return Instant{}, err
	}
	return InstantFromTime(dt.Time()), nil
}
