package cli

import (
	"subplay/internal/logging"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "subplay",
	Short: "Timed caption playback for SRT and WebVTT files",
	Long: `Subplay replays timed captions against a virtual playback clock.

It parses SubRip (.srt) and WebVTT (.vtt) caption files and steps
through the cues with play/pause and skip controls, without needing
the underlying media.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
