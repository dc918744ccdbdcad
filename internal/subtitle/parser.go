package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const timingDelimiter = "-->"

// Parse converts raw SRT or WebVTT-subset text into an ordered cue
// sequence. Cues keep their source order and are never re-sorted by
// time. A malformed timing line aborts the whole parse with a
// *FormatError; input that yields no cues returns ErrNoCues.
//
// SRT sequence numbers, the WEBVTT header and cue identifiers are
// never recognized as such: any non-blank line before a block's timing
// line is swallowed as noise, and cue settings after the end timestamp
// are discarded.
func Parse(raw string) ([]Cue, error) {
	raw = strings.TrimPrefix(raw, "\ufeff")
	raw = strings.ReplaceAll(raw, "\r\n", "\n")

	var (
		cues    []Cue
		pending Cue
		timed   bool // explicit flag: a cue may legitimately start at 0
		lines   []string
	)

	flush := func() {
		if timed {
			pending.Text = strings.Join(lines, "\n")
			cues = append(cues, pending)
		}
		pending = Cue{}
		timed = false
		lines = nil
	}

	for i, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)

		if line == "" {
			flush()
			continue
		}

		if strings.Contains(line, timingDelimiter) {
			start, end, err := parseTimingLine(line, i+1)
			if err != nil {
				return nil, err
			}
			// a fresh timing line resets any half-built cue; blank
			// lines are the only cue terminator
			pending = Cue{Start: start, End: end}
			timed = true
			lines = nil
			continue
		}

		if timed {
			lines = append(lines, line)
		}
	}
	flush()

	if len(cues) == 0 {
		return nil, ErrNoCues
	}
	return cues, nil
}

// parseTimingLine splits a "START --> END [settings]" line. The line
// must split into exactly two fields around the delimiter, both
// timestamps must parse, and start must precede end.
func parseTimingLine(
	line string,
	lineNum int,
) (time.Duration, time.Duration, error) {
	parts := strings.Split(line, timingDelimiter)
	if len(parts) != 2 {
		return 0, 0, &FormatError{Line: lineNum, Input: line}
	}

	start, err := ParseTimestamp(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, &FormatError{
			Line:  lineNum,
			Input: strings.TrimSpace(parts[0]),
		}
	}

	endFields := strings.Fields(parts[1])
	if len(endFields) == 0 {
		return 0, 0, &FormatError{Line: lineNum, Input: line}
	}
	end, err := ParseTimestamp(endFields[0])
	if err != nil {
		return 0, 0, &FormatError{Line: lineNum, Input: endFields[0]}
	}

	if start >= end {
		return 0, 0, &FormatError{Line: lineNum, Input: line}
	}
	return start, end, nil
}

// Load reads a caption file and parses it. The extension gates
// admissibility only; both formats share the one permissive parser.
func Load(path string) ([]Cue, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".srt", ".vtt":
	default:
		return nil, fmt.Errorf("unsupported subtitle format: %s", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read subtitle file: %w", err)
	}
	return Parse(string(data))
}
