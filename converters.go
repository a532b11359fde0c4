package jsontime

// The XConverter functions return the canonical converter of each type.
// Values that are not IsValid fail to format through Converter.Text.

func LocalDateConverter() Converter[LocalDate] {
	return Converter[LocalDate]{
		Format: LocalDate.String,
		Parse:  ParseLocalDate,
		Valid:  LocalDate.IsValid,
		MaxLen: maxDateLen,
	}
}

func LocalDateTimeConverter() Converter[LocalDateTime] {
	return Converter[LocalDateTime]{
		Format: LocalDateTime.String,
		Parse:  ParseLocalDateTime,
		Valid:  LocalDateTime.IsValid,
		MaxLen: maxDateTimeLen,
	}
}

func LocalTimeConverter() Converter[LocalTime] {
	return Converter[LocalTime]{
		Format: LocalTime.String,
		Parse:  ParseLocalTime,
		Valid:  LocalTime.IsValid,
		MaxLen: maxClockLen,
	}
}

func OffsetDateTimeConverter() Converter[OffsetDateTime] {
	return Converter[OffsetDateTime]{
		Format: OffsetDateTime.String,
		Parse:  ParseOffsetDateTime,
		Valid:  OffsetDateTime.IsValid,
		MaxLen: maxOffsetDateTimeLen,
	}
}

func OffsetTimeConverter() Converter[OffsetTime] {
	return Converter[OffsetTime]{
		Format: OffsetTime.String,
		Parse:  ParseOffsetTime,
		Valid:  OffsetTime.IsValid,
		MaxLen: maxOffsetTimeLen,
	}
}

func ZonedDateTimeConverter() Converter[ZonedDateTime] {
	return Converter[ZonedDateTime]{
		Format: ZonedDateTime.String,
		Parse:  ParseZonedDateTime,
		Valid:  ZonedDateTime.IsValid,
		MaxLen: maxZonedLen,
	}
}

func InstantConverter() Converter[Instant] {
	return Converter[Instant]{
		Format: Instant.String,
		Parse:  ParseInstant,
		Valid:  Instant.IsValid,
		MaxLen: maxInstantLen,
	}
}

// RegisterAll registers the converters of all seven temporal types and returns c.
//
//	s := jsontime.RegisterAll(jsontime.NewConfig()).Build()
func RegisterAll(c *Config) *Config {
	if c == nil {
		panic(ErrNilConfig)
	}
	RegisterLocalDate(c)
	RegisterLocalDateTime(c)
	RegisterLocalTime(c)
	RegisterOffsetDateTime(c)
	RegisterOffsetTime(c)
	RegisterZonedDateTime(c)
	RegisterInstant(c)
	return c
}

// RegisterLocalDate binds LocalDate to YYYY-MM-DD.
func RegisterLocalDate(c *Config) *Config { return Bind(c, LocalDateConverter()) }

// RegisterLocalDateTime binds LocalDateTime to YYYY-MM-DDTHH:MM:SS.
func RegisterLocalDateTime(c *Config) *Config { return Bind(c, LocalDateTimeConverter()) }

// RegisterLocalTime binds LocalTime to HH:MM:SS.
func RegisterLocalTime(c *Config) *Config { return Bind(c, LocalTimeConverter()) }

// RegisterOffsetDateTime binds OffsetDateTime to YYYY-MM-DDTHH:MM:SS±HH:MM.
func RegisterOffsetDateTime(c *Config) *Config { return Bind(c, OffsetDateTimeConverter()) }

// RegisterOffsetTime binds OffsetTime to HH:MM:SS±HH:MM.
func RegisterOffsetTime(c *Config) *Config { return Bind(c, OffsetTimeConverter()) }

// RegisterZonedDateTime binds ZonedDateTime to YYYY-MM-DDTHH:MM:SS±HH:MM[Zone].
func RegisterZonedDateTime(c *Config) *Config { return Bind(c, ZonedDateTimeConverter()) }

// RegisterInstant binds Instant to YYYY-MM-DDTHH:MM:SSZ.
func RegisterInstant(c *Config) *Config { return Bind(c, InstantConverter()) }
