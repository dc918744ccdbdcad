package subtitle

import (
	"errors"
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{
			"01:02:03.456",
			time.Hour + 2*time.Minute + 3*time.Second + 456*time.Millisecond,
		},
		{
			"02:03,456",
			2*time.Minute + 3*time.Second + 456*time.Millisecond,
		},
		{"00:00:00", 0},
		{"00:00", 0},
		{"59:59", 59*time.Minute + 59*time.Second},
		{"100:00:00", 100 * time.Hour},
		{"00:01.5", time.Second + 500*time.Millisecond},
		{"00:00:01,04", time.Second + 40*time.Millisecond},
		{"00:00:02,000", 2 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if err != nil {
				t.Fatalf("ParseTimestamp(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf(
					"ParseTimestamp(%q) = %v, want %v",
					tt.input,
					got,
					tt.want,
				)
			}
		})
	}
}

func TestParseTimestampInvalid(t *testing.T) {
	inputs := []string{
		"not a time",
		"",
		"12",
		"1:2:3",          // minutes and seconds must be two digits
		"00:60:00",       // minutes out of range
		"00:61",          // seconds out of range
		"12:34:56.7890",  // too many fraction digits
		"12:34:56.",      // empty fraction
		"-00:01:00",      // negative
		"00:00:01 extra", // trailing text
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseTimestamp(input)
			if err == nil {
				t.Fatalf("ParseTimestamp(%q) succeeded, want error", input)
			}

			var formatErr *FormatError
			if !errors.As(err, &formatErr) {
				t.Fatalf("expected *FormatError, got %T", err)
			}
			if formatErr.Input != input {
				t.Errorf(
					"FormatError.Input = %q, want %q",
					formatErr.Input,
					input,
				)
			}
		})
	}
}
