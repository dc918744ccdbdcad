package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"subplay/internal/subtitle"
)

// consoleSink renders engine signals as plain terminal lines.
type consoleSink struct {
	out       io.Writer
	showClock bool
	total     time.Duration // 0 when no media was probed
}

func (s *consoleSink) ShowCue(cue subtitle.Cue) {
	fmt.Fprintln(s.out, cue.Text)
}

func (s *consoleSink) HideCue() {
	fmt.Fprintln(s.out)
}

func (s *consoleSink) UpdateClock(elapsed time.Duration) {
	if !s.showClock {
		return
	}
	if s.total > 0 {
		fmt.Fprintf(s.out, "[%s / %s]\n",
			formatClock(elapsed), formatClock(s.total))
		return
	}
	fmt.Fprintf(s.out, "[%s]\n", formatClock(elapsed))
}

func formatClock(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// user intents delivered into the engine
type command int

const (
	cmdToggle command = iota
	cmdNext
	cmdPrev
)

// readCommands turns input lines into engine intents. A bare enter
// toggles play/pause; "q" ends the stream by closing the channel.
func readCommands(r io.Reader) <-chan command {
	out := make(chan command)
	go func() {
		defer close(out)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
			case "", "t", "toggle":
				out <- cmdToggle
			case "n", "next":
				out <- cmdNext
			case "p", "prev":
				out <- cmdPrev
			case "q", "quit":
				return
			}
		}
	}()
	return out
}
