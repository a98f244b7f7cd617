package household

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// MonthFormat is the format used to represent calendar months as strings.
const MonthFormat = "2006-01"

// Date represents a date with day-level granularity.
//
// A Date is canonicalized at midnight UTC, so month bucketing is
// unambiguous across timezones: the engine's calendar policy is UTC
// calendar months, everywhere.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date in UTC.
func Today() Date { return NewDate(time.Now().UTC().Date()) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in ISO-8601.
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Format returns a textual representation of the date value formatted
// according to the layout defined by the argument. See [time.Format].
func (d Date) Format(format string) string { return d.time().Format(format) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// AddMonth returns a new Date with the given number of months added.
func (d Date) AddMonth(i int) Date { return NewDate(d.y, d.m+time.Month(i), d.d) }

// MonthsSince returns the number of whole calendar months elapsed from
// start to d. A month counts as elapsed once the start's day-of-month
// recurs. The result is negative when d is before start.
func (d Date) MonthsSince(start Date) int {
	months := (d.y-start.y)*12 + int(d.m-start.m)
	if d.d < start.d {
		months--
	}
	return months
}

// ParseDate parses a Date from a string. It is lenient and accepts
// formats like "2025-7-1".
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshal a date from a json string.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return fmt.Errorf("invalid date %q in data file, want format %q: %w", str, DateFormat, err)
	}
	*d = NewDate(on.Date())
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshal/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)

// Month represents a calendar month, the engine's bucketing granularity
// for income, spending and budgets.
type Month struct {
	y int
	m time.Month
}

// NewMonth returns a normalized Month for the given year and month.
func NewMonth(year int, month time.Month) Month {
	d := NewDate(year, month, 1)
	return Month{y: d.y, m: d.m}
}

// MonthOf returns the calendar month containing d.
func MonthOf(d Date) Month { return Month{y: d.y, m: d.m} }

// ThisMonth returns the current calendar month in UTC.
func ThisMonth() Month { return MonthOf(Today()) }

// Year returns the year of the month.
func (m Month) Year() int { return m.y }

// Month returns the month within the year.
func (m Month) Month() time.Month { return m.m }

// IsZero returns true if the month is the zero value.
func (m Month) IsZero() bool { return m.y == 0 && m.m == 0 }

// Next returns the month i months after m (or before, for negative i).
func (m Month) Next(i int) Month { return NewMonth(m.y, m.m+time.Month(i)) }

// Start returns the first day of the month.
func (m Month) Start() Date { return NewDate(m.y, m.m, 1) }

// End returns the last day of the month.
func (m Month) End() Date { return NewDate(m.y, m.m+1, 0) }

// Contains reports whether d falls within the calendar month.
func (m Month) Contains(d Date) bool { return d.y == m.y && d.m == m.m }

// Before reports whether m is strictly before n.
func (m Month) Before(n Month) bool {
	return m.y < n.y || (m.y == n.y && m.m < n.m)
}

// After reports whether m is strictly after n.
func (m Month) After(n Month) bool { return n.Before(m) }

// String formats the month as "2006-01".
func (m Month) String() string { return m.Start().Format(MonthFormat) }

// Label formats the month for display, e.g. "Jan 2006".
func (m Month) Label() string { return m.Start().Format("Jan 2006") }

// MonthsBetween returns the number of months from a to b; negative when
// b is before a.
func MonthsBetween(a, b Month) int {
	return (b.y-a.y)*12 + int(b.m-a.m)
}

// ParseMonth parses a Month from a "2006-01" string.
func ParseMonth(str string) (Month, error) {
	str = strings.TrimSpace(str)
	on, err := time.Parse("2006-1", str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, MonthFormat, err)
	}
	return NewMonth(on.Year(), on.Month()), nil
}

// UnmarshalJSON implements the json way to unmarshal a month from a json string.
func (m *Month) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	month, err := ParseMonth(str)
	if err != nil {
		return err
	}
	*m = month
	return nil
}

func (m Month) MarshalJSON() ([]byte, error) {
	str := m.String()
	return json.Marshal(&str)
}

var _ json.Marshaler = (*Month)(nil)
var _ json.Unmarshaler = (*Month)(nil)

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains returns true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }
