package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// player configuration
type Config struct {
	Playback PlaybackConfig `toml:"playback"`
	Display  DisplayConfig  `toml:"display"`
	Watch    WatchConfig    `toml:"watch"`
}

type PlaybackConfig struct {
	TickIntervalMs int  `toml:"tick_interval_ms"`
	Autoplay       bool `toml:"autoplay"`
}

type DisplayConfig struct {
	ShowClock bool `toml:"show_clock"`
}

type WatchConfig struct {
	Enabled    bool `toml:"enabled"`
	DebounceMs int  `toml:"debounce_ms"`
}

func Default() *Config {
	return &Config{
		Playback: PlaybackConfig{TickIntervalMs: 50},
		Display:  DisplayConfig{ShowClock: true},
		Watch:    WatchConfig{DebounceMs: 500},
	}
}

// Load reads a TOML config file over the defaults. An empty path or a
// missing file means the defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Playback.TickIntervalMs <= 0 {
		return fmt.Errorf(
			"playback.tick_interval_ms must be positive, got %d",
			c.Playback.TickIntervalMs,
		)
	}
	if c.Watch.DebounceMs <= 0 {
		return fmt.Errorf(
			"watch.debounce_ms must be positive, got %d",
			c.Watch.DebounceMs,
		)
	}
	return nil
}

func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Playback.TickIntervalMs) * time.Millisecond
}

func (c *Config) WatchDebounce() time.Duration {
	return time.Duration(c.Watch.DebounceMs) * time.Millisecond
}
