package pennywise

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDatetime(t *testing.T) {
	tests := []struct {
		input    string
		expected Datetime
		err      bool
	}{
		// Canonical RFC3339
		{"2025-07-15T10:30:00Z", NewDatetime(time.Date(2025, 7, 15, 10, 30, 0, 0, time.UTC)), false},
		// Fractional seconds, the way JavaScript's toISOString writes
		{"2025-07-15T10:30:00.123Z", NewDatetime(time.Date(2025, 7, 15, 10, 30, 0, 0, time.UTC)), false},
		// Zone offsets normalize to UTC
		{"2025-07-15T12:30:00+02:00", NewDatetime(time.Date(2025, 7, 15, 10, 30, 0, 0, time.UTC)), false},
		// Missing zone is read as UTC
		{"2025-07-15T10:30:00", NewDatetime(time.Date(2025, 7, 15, 10, 30, 0, 0, time.UTC)), false},
		// Date-only means midnight UTC
		{"2025-07-15", NewDatetime(time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)), false},
		// Permissive single-digit month/day
		{"2025-7-1", NewDatetime(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)), false},
		{" 2025-07-15 ", NewDatetime(time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)), false},

		{"", Datetime{}, true},
		{"invalid-date", Datetime{}, true},
		{"2025-13-45", Datetime{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseDatetime(tc.input)
			if tc.err {
				if err == nil {
					t.Fatalf("ParseDatetime(%q) = %v, want error", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDatetime(%q) unexpected error: %v", tc.input, err)
			}
			if !got.Equal(tc.expected) {
				t.Errorf("ParseDatetime(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestDatetimeCanonicalString(t *testing.T) {
	d := MustParseDatetime("2025-07-15T12:30:00.999+02:00")
	if got, want := d.String(), "2025-07-15T10:30:00Z"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDatetimeJSONRoundTrip(t *testing.T) {
	// Lenient read, canonical write: a date-only value round-trips into the
	// full RFC3339 form.
	var d Datetime
	if err := json.Unmarshal([]byte(`"2025-7-1"`), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := `"2025-07-01T00:00:00Z"`; string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestDatetimeOrdering(t *testing.T) {
	early := MustParseDatetime("2025-07-01")
	late := MustParseDatetime("2025-07-02")
	if !early.Before(late) {
		t.Errorf("%v should be before %v", early, late)
	}
	if !late.After(early) {
		t.Errorf("%v should be after %v", late, early)
	}
	if early.IsZero() {
		t.Errorf("%v should not be zero", early)
	}
	if !(Datetime{}).IsZero() {
		t.Errorf("zero value should report IsZero")
	}
}
