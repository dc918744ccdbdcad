package media

import (
	"testing"
	"time"
)

func TestParseProbeDuration(t *testing.T) {
	raw := `{"format": {"filename": "film.mp4", "duration": "3723.456"}}`

	got, err := parseProbeDuration(raw)
	if err != nil {
		t.Fatalf("parseProbeDuration failed: %v", err)
	}
	want := time.Hour + 2*time.Minute + 3*time.Second + 456*time.Millisecond
	if got != want {
		t.Errorf("duration = %v, want %v", got, want)
	}
}

func TestParseProbeDurationErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"invalid json", "{not json"},
		{"missing duration", `{"format": {}}`},
		{"non-numeric duration", `{"format": {"duration": "N/A"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseProbeDuration(tt.raw); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestProbeDurationMissingFile(t *testing.T) {
	if _, err := ProbeDuration("/nonexistent/film.mp4"); err == nil {
		t.Error("expected error for missing file")
	}
}
