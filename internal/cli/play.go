package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"subplay/internal/config"
	"subplay/internal/media"
	"subplay/internal/player"
	"subplay/internal/subtitle"
	"subplay/internal/watch"
)

var playCmd = &cobra.Command{
	Use:   "play [caption_file]",
	Short: "Replay a caption file against a virtual clock",
	Long: `Replay the cues of an SRT or WebVTT caption file in the terminal.

Playback runs on a virtual clock: it starts paused at zero and is
controlled from stdin. The elapsed time display updates once per
second. With --media, the companion file's duration is probed (via
ffprobe) and shown next to the elapsed time; playback itself is never
bound to the media.

Examples:
  subplay play film.srt
  subplay play talk.vtt --autoplay
  subplay play film.srt --media film.mp4
  subplay play draft.srt --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().
		StringP("config", "c", "", "Path to TOML config file")
	playCmd.Flags().
		Bool("autoplay", false, "Start playback immediately")
	playCmd.Flags().
		BoolP("watch", "w", false, "Reload when the caption file changes")
	playCmd.Flags().
		StringP("media", "m", "", "Companion media file to probe for total duration")
}

func runPlay(cmd *cobra.Command, args []string) error {
	captionPath := args[0]

	configPath, _ := cmd.Flags().GetString("config")
	autoplay, _ := cmd.Flags().GetBool("autoplay")
	watchFlag, _ := cmd.Flags().GetBool("watch")
	mediaPath, _ := cmd.Flags().GetString("media")

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if autoplay {
		cfg.Playback.Autoplay = true
	}
	if watchFlag {
		cfg.Watch.Enabled = true
	}

	cues, err := subtitle.Load(captionPath)
	switch {
	case errors.Is(err, subtitle.ErrNoCues):
		logger.Warnw("No cues in caption file", "path", captionPath)
	case err != nil:
		return fmt.Errorf("failed to load captions: %w", err)
	}

	var total time.Duration
	if mediaPath != "" {
		total, err = media.ProbeDuration(mediaPath)
		if err != nil {
			return fmt.Errorf("failed to probe media duration: %w", err)
		}
	}

	sink := &consoleSink{
		out:       os.Stdout,
		showClock: cfg.Display.ShowClock,
		total:     total,
	}
	engine := player.NewEngine(cues, sink)

	logger.Infow("Loaded captions",
		"path", captionPath,
		"cues", len(cues),
		"session", engine.ID(),
	)

	reload := make(chan struct{}, 1)
	if cfg.Watch.Enabled {
		w, err := watch.New(captionPath, cfg.WatchDebounce(), func() {
			select {
			case reload <- struct{}{}:
			default:
			}
		})
		if err != nil {
			return fmt.Errorf("failed to watch caption file: %w", err)
		}
		defer w.Close()
	}

	if cfg.Playback.Autoplay {
		engine.Toggle()
	}

	fmt.Println("Controls: enter = play/pause, n = next cue, p = previous cue, q = quit")

	commands := readCommands(cmd.InOrStdin())
	ticker := time.NewTicker(cfg.TickInterval())
	defer ticker.Stop()

	// single loop: exactly one tick or command executes at a time
	for {
		select {
		case <-ticker.C:
			engine.Tick()
		case c, ok := <-commands:
			if !ok {
				return nil
			}
			switch c {
			case cmdToggle:
				playing := engine.Toggle()
				logger.Debugw("Toggled playback",
					"playing", playing,
					"elapsed", engine.Elapsed().String(),
				)
			case cmdNext:
				engine.SkipNext()
			case cmdPrev:
				engine.SkipPrev()
			}
		case <-reload:
			fresh, err := subtitle.Load(captionPath)
			if err != nil && !errors.Is(err, subtitle.ErrNoCues) {
				logger.Warnw("Reload failed, keeping current cues",
					"error", err,
				)
				continue
			}
			engine = player.NewEngine(fresh, sink)
			logger.Infow("Reloaded captions",
				"cues", len(fresh),
				"session", engine.ID(),
			)
			if cfg.Playback.Autoplay {
				engine.Toggle()
			}
		}
	}
}
