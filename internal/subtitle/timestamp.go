package subtitle

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// [H:]MM:SS with an optional 1-3 digit fraction; SRT uses "," as the
// fractional separator, WebVTT uses "."
var timestampRegex = regexp.MustCompile(
	`^(?:(\d+):)?([0-5]\d):([0-5]\d)(?:[.,](\d{1,3}))?$`,
)

// ParseTimestamp converts a textual timestamp into an offset from the
// start of playback. Hours are optional and unbounded; minutes and
// seconds must each be in 00-59.
func ParseTimestamp(text string) (time.Duration, error) {
	matches := timestampRegex.FindStringSubmatch(text)
	if matches == nil {
		return 0, &FormatError{Input: text}
	}

	hours := 0
	if matches[1] != "" {
		h, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, &FormatError{Input: text}
		}
		hours = h
	}
	minutes, _ := strconv.Atoi(matches[2])
	seconds, _ := strconv.Atoi(matches[3])

	millis := 0
	if matches[4] != "" {
		// right-pad to millisecond precision: ".4" means 400ms
		ms, _ := strconv.Atoi(matches[4] + strings.Repeat("0", 3-len(matches[4])))
		millis = ms
	}

	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(millis)*time.Millisecond, nil
}
