package pennywise

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DatetimeFormat is the canonical format used to persist timestamps.
const DatetimeFormat = time.RFC3339

// readDatetimeFormats are the accepted input formats, tried in order.
// Reading is lenient (entries recorded by hand or by older versions use
// date-only or fractional-second forms), writing always uses DatetimeFormat.
var readDatetimeFormats = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05", // missing zone, assume UTC
	"2006-01-02",
	"2006-1-2", // permissive, allows single-digit month/day
}

// Datetime represents a point in time with second-level granularity,
// normalized to UTC so that persisted values round-trip exactly.
type Datetime struct {
	t time.Time
}

// NewDatetime returns a normalized Datetime for the given time.
func NewDatetime(t time.Time) Datetime {
	return Datetime{t.UTC().Truncate(time.Second)}
}

// ParseDatetime parses a Datetime from a string. It is lenient and accepts
// RFC3339 with or without fractional seconds, as well as plain dates like
// "2025-7-1" (interpreted as midnight UTC).
func ParseDatetime(str string) (Datetime, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return Datetime{}, fmt.Errorf("invalid datetime: empty string")
	}
	for _, format := range readDatetimeFormats {
		if on, err := time.Parse(format, str); err == nil {
			return NewDatetime(on), nil
		}
	}
	return Datetime{}, fmt.Errorf("invalid datetime %q, want format %q", str, DatetimeFormat)
}

// MustParseDatetime is like ParseDatetime but panics on error.
func MustParseDatetime(str string) Datetime {
	d, err := ParseDatetime(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// Time returns the underlying time.Time in UTC.
func (d Datetime) Time() time.Time { return d.t }

// String formats the datetime in the canonical RFC3339 form.
func (d Datetime) String() string { return d.t.UTC().Format(DatetimeFormat) }

// Format returns a textual representation of the datetime formatted according
// to the layout defined by the argument.
//
//	See the documentation for the [time.Format].
func (d Datetime) Format(format string) string { return d.t.UTC().Format(format) }

// IsZero returns true if the datetime is the zero value.
func (d Datetime) IsZero() bool { return d.t.IsZero() }

// Before reports whether d is before x.
func (d Datetime) Before(x Datetime) bool { return d.t.Before(x.t) }

// After reports whether d is after x.
func (d Datetime) After(x Datetime) bool { return d.t.After(x.t) }

// Equal reports whether d and x represent the same instant.
func (d Datetime) Equal(x Datetime) bool { return d.t.Equal(x.t) }

// UnmarshalJSON implements the json specific way to unmarshal a datetime from
// a json string. It is as lenient as ParseDatetime: data files written by
// older versions carry date-only values.
func (j *Datetime) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := ParseDatetime(str)
	if err != nil {
		return fmt.Errorf("invalid datetime in data file: %w", err)
	}
	*j = d
	return nil
}

func (j Datetime) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Datetime pointer is a valid json marshaller/unmarshaller type.
var _ json.Marshaler = (*Datetime)(nil)
var _ json.Unmarshaler = (*Datetime)(nil)
