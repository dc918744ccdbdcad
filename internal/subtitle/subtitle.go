package subtitle

import (
	"errors"
	"fmt"
	"time"
)

// single timed caption cue
type Cue struct {
	Start time.Duration
	End   time.Duration
	Text  string
}

// Active reports whether the cue is visible at the given offset.
// Cue intervals are half-open: [Start, End).
func (c Cue) Active(at time.Duration) bool {
	return at >= c.Start && at < c.End
}

// returned when parsing succeeds but the input yields no cues
var ErrNoCues = errors.New("no cues found")

// malformed timestamp or timing line; aborts the whole parse
type FormatError struct {
	Line  int    // 1-based line number, 0 when unknown
	Input string // the offending text
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed timing at line %d: %q", e.Line, e.Input)
	}
	return fmt.Sprintf("malformed timestamp: %q", e.Input)
}

// FormatTimestamp renders an offset as HH:MM:SS.mmm.
func FormatTimestamp(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}
