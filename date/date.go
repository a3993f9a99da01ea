package date

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// Date represent a date with no lower than day granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Weekday returns the day of the week for the date.
func (d Date) Weekday() time.Weekday { return d.time().Weekday() }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool { return d == Date{} }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Parse parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func Parse(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	// We use a slightly more permisive format for read, to support 2025-7-1 instead of 2025-07-01
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// FromUnix returns the Date of the given unix timestamp, in UTC.
func FromUnix(sec int64) Date { return New(time.Unix(sec, 0).UTC().Date()) }

// ParseCompact parses a compact "YYMMDD" date as embedded in option codes.
//
// Two-digit years always map to the 2000s century (so "99" is 2099, not
// 1999), which is why this does not go through time.Parse and its 1969
// pivot. The six digits must form a real calendar date: "999999" is
// rejected rather than normalized.
func ParseCompact(str string) (Date, error) {
	if len(str) != 6 {
		return Date{}, fmt.Errorf("invalid compact date %q: want 6 digits", str)
	}
	yy, err := strconv.Atoi(str[0:2])
	if err != nil {
		return Date{}, fmt.Errorf("invalid compact date %q: %w", str, err)
	}
	mm, err := strconv.Atoi(str[2:4])
	if err != nil {
		return Date{}, fmt.Errorf("invalid compact date %q: %w", str, err)
	}
	dd, err := strconv.Atoi(str[4:6])
	if err != nil {
		return Date{}, fmt.Errorf("invalid compact date %q: %w", str, err)
	}
	d := New(2000+yy, time.Month(mm), dd)
	// New normalizes out-of-range components, so a changed value means the
	// six digits were not an actual calendar date.
	if d.y != 2000+yy || d.m != time.Month(mm) || d.d != dd {
		return Date{}, fmt.Errorf("invalid compact date %q: not a calendar date", str)
	}
	return d, nil
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
