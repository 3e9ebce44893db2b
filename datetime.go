package toml

import (
	"fmt"
	"time"
)

// DateTimeKind distinguishes the four RFC 3339-derived sub-variants a TOML
// datetime scalar may take.
type DateTimeKind int

const (
	OffsetDateTimeKind DateTimeKind = iota
	LocalDateTimeKind
	LocalDateKind
	LocalTimeKind
)

func (k DateTimeKind) String() string {
	switch k {
	case OffsetDateTimeKind:
		return "OffsetDateTime"
	case LocalDateTimeKind:
		return "LocalDateTime"
	case LocalDateKind:
		return "LocalDate"
	case LocalTimeKind:
		return "LocalTime"
	default:
		return "Unknown"
	}
}

// LocalDate represents a calendar day in no specific timezone.
type LocalDate struct {
	Year  int
	Month int
	Day   int
}

// String returns the RFC 3339 representation of d.
func (d LocalDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// LocalTime represents a time of day with no specific date or timezone.
type LocalTime struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// String returns the RFC 3339 representation of d.
func (d LocalTime) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", d.Hour, d.Minute, d.Second)
	if d.Nanosecond == 0 {
		return s
	}
	return s + fmt.Sprintf(".%09d", d.Nanosecond)
}

// DateTime is the decoded payload of a TOML datetime scalar. Date is
// meaningful for every Kind except LocalTimeKind, and Time for every Kind
// except LocalDateKind; OffsetMinutes and Z only apply to
// OffsetDateTimeKind.
type DateTime struct {
	Kind          DateTimeKind
	Date          LocalDate
	Time          LocalTime
	OffsetMinutes int  // minutes east of UTC, valid only for OffsetDateTimeKind
	Z             bool // true if the offset was written as 'Z'/'z'
}

// AsTime converts d to a time.Time. For LocalDate/LocalTime/LocalDateTime
// it is anchored at UTC, matching the teacher's AsTime(zone) convention
// with UTC as the default zone.
func (d DateTime) AsTime() time.Time {
	loc := time.UTC
	if d.Kind == OffsetDateTimeKind && !d.Z {
		loc = time.FixedZone("", d.OffsetMinutes*60)
	}
	return time.Date(d.Date.Year, time.Month(d.Date.Month), d.Date.Day,
		d.Time.Hour, d.Time.Minute, d.Time.Second, d.Time.Nanosecond, loc)
}

// String renders the canonical RFC 3339 form of d. Used by Value
// constructors that synthesize a raw form and by tests; never used to
// decide what bytes a parsed value serializes as (that is always Raw).
func (d DateTime) String() string {
	switch d.Kind {
	case LocalDateKind:
		return d.Date.String()
	case LocalTimeKind:
		return d.Time.String()
	case LocalDateTimeKind:
		return d.Date.String() + "T" + d.Time.String()
	default:
		offset := "Z"
		if !d.Z {
			sign := "+"
			m := d.OffsetMinutes
			if m < 0 {
				sign = "-"
				m = -m
			}
			offset = fmt.Sprintf("%s%02d:%02d", sign, m/60, m%60)
		}
		return d.Date.String() + "T" + d.Time.String() + offset
	}
}

// parseDateTime decodes the raw text of a TOML datetime literal as
// recognized by the lexer's date-time regexp. The lexer only checks the
// shape, so field values out of range (e.g. month 13) make this return an
// error, which the caller records as InvalidDateTime.
func parseDateTime(raw string) (DateTime, error) {
	// Accepted shapes (lexer already restricted the character set):
	//   full-date "T"/" " full-time
	//   full-date
	//   partial-time
	hasDate := len(raw) >= 10 && raw[4] == '-' && raw[7] == '-'
	hasTimeSep := hasDate && len(raw) > 10 && (raw[10] == 'T' || raw[10] == 't' || raw[10] == ' ')

	switch {
	case hasDate && hasTimeSep:
		date, err := parseLocalDate(raw[:10])
		if err != nil {
			return DateTime{}, err
		}
		rest := raw[11:]
		tm, offset, z, hasOffset, err := parseTimeAndOffset(rest)
		if err != nil {
			return DateTime{}, err
		}
		if hasOffset {
			return DateTime{Kind: OffsetDateTimeKind, Date: date, Time: tm, OffsetMinutes: offset, Z: z}, nil
		}
		return DateTime{Kind: LocalDateTimeKind, Date: date, Time: tm}, nil
	case hasDate:
		date, err := parseLocalDate(raw)
		if err != nil {
			return DateTime{}, err
		}
		return DateTime{Kind: LocalDateKind, Date: date}, nil
	default:
		tm, _, _, _, err := parseTimeAndOffset(raw)
		if err != nil {
			return DateTime{}, err
		}
		return DateTime{Kind: LocalTimeKind, Time: tm}, nil
	}
}

func parseLocalDate(s string) (LocalDate, error) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return LocalDate{}, fmt.Errorf("invalid date %q", s)
	}
	year, err := atoiStrict(s[0:4])
	if err != nil {
		return LocalDate{}, err
	}
	month, err := atoiStrict(s[5:7])
	if err != nil {
		return LocalDate{}, err
	}
	day, err := atoiStrict(s[8:10])
	if err != nil {
		return LocalDate{}, err
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return LocalDate{}, fmt.Errorf("invalid date %q", s)
	}
	return LocalDate{Year: year, Month: month, Day: day}, nil
}

// parseTimeAndOffset decodes "HH:MM:SS[.fraction][offset]" and reports
// whether an offset was present, and if so whether it was 'Z'.
func parseTimeAndOffset(s string) (LocalTime, int, bool, bool, error) {
	if len(s) < 8 || s[2] != ':' || s[5] != ':' {
		return LocalTime{}, 0, false, false, fmt.Errorf("invalid time %q", s)
	}
	hour, err := atoiStrict(s[0:2])
	if err != nil {
		return LocalTime{}, 0, false, false, err
	}
	minute, err := atoiStrict(s[3:5])
	if err != nil {
		return LocalTime{}, 0, false, false, err
	}
	second, err := atoiStrict(s[6:8])
	if err != nil {
		return LocalTime{}, 0, false, false, err
	}
	if hour > 23 || minute > 59 || second > 60 {
		return LocalTime{}, 0, false, false, fmt.Errorf("invalid time %q", s)
	}

	rest := s[8:]
	nanosecond := 0
	if len(rest) > 0 && rest[0] == '.' {
		i := 1
		for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
			i++
		}
		frac := rest[1:i]
		nanosecond = fractionToNanos(frac)
		rest = rest[i:]
	}

	tm := LocalTime{Hour: hour, Minute: minute, Second: second, Nanosecond: nanosecond}

	if rest == "" {
		return tm, 0, false, false, nil
	}
	if rest == "Z" || rest == "z" {
		return tm, 0, true, true, nil
	}
	if len(rest) == 6 && (rest[0] == '+' || rest[0] == '-') && rest[3] == ':' {
		offHour, err := atoiStrict(rest[1:3])
		if err != nil {
			return LocalTime{}, 0, false, false, err
		}
		offMin, err := atoiStrict(rest[4:6])
		if err != nil {
			return LocalTime{}, 0, false, false, err
		}
		total := offHour*60 + offMin
		if rest[0] == '-' {
			total = -total
		}
		return tm, total, false, true, nil
	}
	return LocalTime{}, 0, false, false, fmt.Errorf("invalid time offset %q", rest)
}

func fractionToNanos(frac string) int {
	if len(frac) > 9 {
		frac = frac[:9]
	}
	n := 0
	for _, c := range frac {
		n = n*10 + int(c-'0')
	}
	for i := len(frac); i < 9; i++ {
		n *= 10
	}
	return n
}

func atoiStrict(s string) (int, error) {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("invalid digit in %q", s)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}
