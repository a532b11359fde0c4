// Package jsontime converts calendar and clock values to and from their
// ISO-8601 text inside a JSON pipeline.
//
// Types:
//   - LocalDate, LocalTime, LocalDateTime: wall-clock values without a zone.
//   - OffsetDateTime, OffsetTime: wall-clock values with a fixed UTC offset.
//   - ZonedDateTime: offset date-time plus the IANA zone id that produced it.
//   - Instant: a point on the UTC time-line.
//
// All seven are comparable values; == is value equality and the canonical
// text of every value parses back to an equal value.
//
// Registration:
//
// A Config collects type -> Converter bindings; each RegisterX installs one
// and returns the same Config so calls chain. Build freezes the bindings
// into a Serializer.
//
//	cfg := jsontime.RegisterAll(jsontime.NewConfig())
//	cfg = jsontime.Bind(cfg, myDateConverter) // override one type; last wins
//	s := cfg.Build()
//	b, err := s.Marshal(event)               // {"day":"1969-07-21", ...}
//
// Text that does not match a type's layout fails with *FormatError, and so
// does writing a value that is not IsValid. WithZeroAsNull writes unset
// fields as null instead.
package jsontime
