package jsontime

import (
	"time"
)

// ZoneOffset is a fixed offset from UTC in seconds east of Greenwich.
type ZoneOffset int32

const maxOffsetSeconds = 18 * 60 * 60

// OffsetOf returns the offset of hours and minutes from UTC.
// minutes must carry the same sign as hours, e.g. OffsetOf(-3, -30).
func OffsetOf(hours, minutes int) ZoneOffset {
	return ZoneOffset((hours*60 + minutes) * 60)
}

// Seconds returns the total offset in seconds.
func (o ZoneOffset) Seconds() int { return int(o) }

func (o ZoneOffset) IsValid() bool {
	return o >= -maxOffsetSeconds && o <= maxOffsetSeconds
}

// Location returns a fixed-offset location for o; time.UTC for zero.
func (o ZoneOffset) Location() *time.Location {
	if o == 0 {
		return time.UTC
	}
	return time.FixedZone("", int(o))
}

// LocalDate is a calendar date without a time or zone, e.g. 1969-07-21.
type LocalDate struct {
	Year  int
	Month time.Month
	Day   int
}

// Date returns the LocalDate for year, month and day. The fields are not
// normalized; use IsValid to check them.
func Date(year int, month time.Month, day int) LocalDate {
	return LocalDate{Year: year, Month: month, Day: day}
}

// LocalDateOf returns the date part of t in t's location.
func LocalDateOf(t time.Time) LocalDate {
	y, m, d := t.Date()
	return LocalDate{Year: y, Month: m, Day: d}
}

func (d LocalDate) IsValid() bool {
	if d.Year < 0 || d.Year > 9999 || d.Month < time.January || d.Month > time.December {
		return false
	}
	return d.Day >= 1 && d.Day <= daysIn(d.Year, d.Month)
}

// AtStartOfDay returns midnight at the start of d.
func (d LocalDate) AtStartOfDay() LocalDateTime {
	return LocalDateTime{LocalDate: d}
}

// LocalTime is a wall-clock time without a date or zone, e.g. 12:56:00.
type LocalTime struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// Clock returns the LocalTime for the given fields.
func Clock(hour, minute, second, nanosecond int) LocalTime {
	return LocalTime{Hour: hour, Minute: minute, Second: second, Nanosecond: nanosecond}
}

// LocalTimeOf returns the clock part of t in t's location.
func LocalTimeOf(t time.Time) LocalTime {
	h, m, s := t.Clock()
	return LocalTime{Hour: h, Minute: m, Second: s, Nanosecond: t.Nanosecond()}
}

func (t LocalTime) IsValid() bool {
	return t.Hour >= 0 && t.Hour < 24 &&
		t.Minute >= 0 && t.Minute < 60 &&
		t.Second >= 0 && t.Second < 60 &&
		t.Nanosecond >= 0 && t.Nanosecond < int(time.Second)
}

// AtDate combines t with d.
func (t LocalTime) AtDate(d LocalDate) LocalDateTime {
	return LocalDateTime{LocalDate: d, LocalTime: t}
}

// AtOffset combines t with an offset.
func (t LocalTime) AtOffset(o ZoneOffset) OffsetTime {
	return OffsetTime{LocalTime: t, Offset: o}
}

// LocalDateTime is a date and wall-clock time without a zone.
type LocalDateTime struct {
	LocalDate
	LocalTime
}

// DateTime combines a date and a time.
func DateTime(d LocalDate, t LocalTime) LocalDateTime {
	return LocalDateTime{LocalDate: d, LocalTime: t}
}

// LocalDateTimeOf returns the wall-clock reading of t in t's location.
func LocalDateTimeOf(t time.Time) LocalDateTime {
	return LocalDateTime{LocalDate: LocalDateOf(t), LocalTime: LocalTimeOf(t)}
}

func (dt LocalDateTime) IsValid() bool {
	return dt.LocalDate.IsValid() && dt.LocalTime.IsValid()
}

// In returns the time.Time that reads dt in loc.
func (dt LocalDateTime) In(loc *time.Location) time.Time {
	return time.Date(dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second, dt.Nanosecond, loc)
}

// Time returns dt read as UTC.
func (dt LocalDateTime) Time() time.Time { return dt.In(time.UTC) }

// AtOffset combines dt with an offset.
func (dt LocalDateTime) AtOffset(o ZoneOffset) OffsetDateTime {
	return OffsetDateTime{LocalDateTime: dt, Offset: o}
}

// OffsetDateTime is a date-time with a fixed offset from UTC,
// e.g. 1969-07-21T12:56:00+10:00.
type OffsetDateTime struct {
	LocalDateTime
	Offset ZoneOffset
}

// OffsetDateTimeOf combines a local date-time with an offset.
func OffsetDateTimeOf(dt LocalDateTime, o ZoneOffset) OffsetDateTime {
	return OffsetDateTime{LocalDateTime: dt, Offset: o}
}

// OffsetDateTimeFromTime returns the wall-clock reading and offset of t.
func OffsetDateTimeFromTime(t time.Time) OffsetDateTime {
	_, off := t.Zone()
	return OffsetDateTime{LocalDateTime: LocalDateTimeOf(t), Offset: ZoneOffset(off)}
}

func (odt OffsetDateTime) IsValid() bool {
	return odt.LocalDateTime.IsValid() && odt.Offset.IsValid()
}

func (odt OffsetDateTime) Time() time.Time {
	return odt.In(odt.Offset.Location())
}

func (odt OffsetDateTime) Instant() Instant {
	return InstantFromTime(odt.Time())
}

// OffsetTime is a wall-clock time with a fixed offset from UTC, e.g. 12:56:00+10:00.
type OffsetTime struct {
	LocalTime
	Offset ZoneOffset
}

// OffsetTimeOf combines a local time with an offset.
func OffsetTimeOf(t LocalTime, o ZoneOffset) OffsetTime {
	return OffsetTime{LocalTime: t, Offset: o}
}

// OffsetTimeFromTime returns the clock reading and offset of t.
func OffsetTimeFromTime(t time.Time) OffsetTime {
	_, off := t.Zone()
	return OffsetTime{LocalTime: LocalTimeOf(t), Offset: ZoneOffset(off)}
}

func (ot OffsetTime) IsValid() bool {
	return ot.LocalTime.IsValid() && ot.Offset.IsValid()
}

// AtDate combines ot with d.
func (ot OffsetTime) AtDate(d LocalDate) OffsetDateTime {
	return OffsetDateTime{LocalDateTime: ot.LocalTime.AtDate(d), Offset: ot.Offset}
}

// ZonedDateTime is a date-time with the offset in force and the region id
// that produced it, e.g. 1969-07-21T12:56:00+10:00[Australia/Brisbane].
// An empty Zone means the offset itself is the zone.
type ZonedDateTime struct {
	LocalDateTime
	Offset ZoneOffset
	Zone   string
}

// ZonedDateTimeOf resolves dt in the IANA zone and records the offset in force.
// Wall-clock readings that fall in a gap or overlap are resolved the way
// time.Date resolves them.
func ZonedDateTimeOf(dt LocalDateTime, zone string) (ZonedDateTime, error) {
	loc, err := loadZone(zone)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return zonedIn(dt.In(loc), zone), nil
}

// ZonedDateTimeFromTime returns t with its location name as the zone id. Locations
// that are not loadable by name (time.Local, unnamed fixed zones) leave Zone empty.
func ZonedDateTimeFromTime(t time.Time) ZonedDateTime {
	zone := t.Location().String()
	if _, err := loadZone(zone); err != nil {
		zone = ""
	}
	return zonedIn(t, zone)
}

func zonedIn(t time.Time, zone string) ZonedDateTime {
	_, off := t.Zone()
	return ZonedDateTime{LocalDateTime: LocalDateTimeOf(t), Offset: ZoneOffset(off), Zone: zone}
}

// IsValid reports in-range fields and, for a non-empty Zone, that Offset is
// in force for Zone at the local date-time. Either offset of an overlap is valid.
func (z ZonedDateTime) IsValid() bool {
	if !z.LocalDateTime.IsValid() || !z.Offset.IsValid() {
		return false
	}
	if z.Zone == "" {
		return true
	}
	loc, err := loadZone(z.Zone)
	if err != nil {
		return false
	}
	at := z.In(time.FixedZone("", int(z.Offset))).In(loc)
	return LocalDateTimeOf(at) == z.LocalDateTime
}

// Time returns the instant of z in its zone. If the zone cannot be loaded,
// the result carries the recorded offset under the zone's name.
func (z ZonedDateTime) Time() time.Time {
	if z.Zone == "" {
		return z.In(z.Offset.Location())
	}
	t := z.In(time.FixedZone(z.Zone, int(z.Offset)))
	if loc, err := loadZone(z.Zone); err == nil {
		return t.In(loc)
	}
	return t
}

func (z ZonedDateTime) Instant() Instant {
	return InstantFromTime(z.Time())
}

// OffsetDateTime drops the zone id.
func (z ZonedDateTime) OffsetDateTime() OffsetDateTime {
	return OffsetDateTime{LocalDateTime: z.LocalDateTime, Offset: z.Offset}
}

// Instant is a point on the UTC time-line with nanosecond precision.
type Instant struct {
	sec  int64
	nsec int32
}

// InstantOf returns the instant sec seconds and nsec nanoseconds after the
// Unix epoch. nsec outside [0, 1e9) is normalized into sec.
func InstantOf(sec, nsec int64) Instant {
	sec += nsec / int64(time.Second)
	nsec %= int64(time.Second)
	if nsec < 0 {
		nsec += int64(time.Second)
		sec--
	}
	return Instant{sec: sec, nsec: int32(nsec)}
}

func InstantFromTime(t time.Time) Instant {
	return Instant{sec: t.Unix(), nsec: int32(t.Nanosecond())}
}

// Unix returns the seconds since the Unix epoch.
func (i Instant) Unix() int64 { return i.sec }

// Nanosecond returns the nanosecond offset within the second.
func (i Instant) Nanosecond() int { return int(i.nsec) }

func (i Instant) Time() time.Time { return time.Unix(i.sec, int64(i.nsec)).UTC() }

func (i Instant) IsValid() bool {
	y := i.Time().Year()
	return y >= 0 && y <= 9999
}

func loadZone(zone string) (*time.Location, error) {
	// time.LoadLocation treats these as aliases of process state, not region ids.
	if zone == "" || zone == "Local" {
		return nil, errZoneID
	}
	return time.LoadLocation(zone)
}

func daysIn(year int, m time.Month) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
