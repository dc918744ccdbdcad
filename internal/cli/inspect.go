package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"subplay/internal/subtitle"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [caption_file]",
	Short: "Parse a caption file and list its cues",
	Long: `Parse an SRT or WebVTT caption file and print each cue with its
timing, plus totals. Cues are listed in source order; starts that go
backwards are flagged but never re-sorted, since playback follows
source order too.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]

	cues, err := subtitle.Load(path)
	if errors.Is(err, subtitle.ErrNoCues) {
		fmt.Println("No cues found.")
		return nil
	}
	if err != nil {
		var formatErr *subtitle.FormatError
		if errors.As(err, &formatErr) {
			return fmt.Errorf("invalid caption file: %w", err)
		}
		return err
	}

	var visible time.Duration
	outOfOrder := 0

	for i, cue := range cues {
		firstLine := cue.Text
		if idx := strings.IndexByte(firstLine, '\n'); idx >= 0 {
			firstLine = firstLine[:idx]
		}

		fmt.Printf("%4d  %s --> %s  %s\n",
			i+1,
			subtitle.FormatTimestamp(cue.Start),
			subtitle.FormatTimestamp(cue.End),
			firstLine,
		)

		visible += cue.End - cue.Start
		if i > 0 && cue.Start < cues[i-1].Start {
			outOfOrder++
		}
	}

	fmt.Printf("\nCues: %d\n", len(cues))
	fmt.Printf("Span: %s\n", subtitle.FormatTimestamp(cues[len(cues)-1].End))
	fmt.Printf("Visible: %s\n", visible.Round(time.Millisecond))

	if outOfOrder > 0 {
		logger.Warnw("Cue starts go backwards; playback follows source order",
			"count", outOfOrder,
		)
	}
	return nil
}
