package config

import (
	"fmt"
	"strconv"
	"time"
)

// applyEnv overrides cfg from BLOCK_OUTRUN_* variables
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	vars := []struct {
		name  string
		apply func(string) error
	}{
		{"AUDIO_ENABLED", boolVar(&cfg.Audio.Enabled)},
		{"VOLUME", intVar(&cfg.Audio.Volume)},
		{"ASSETS", stringVar(&cfg.Audio.Assets)},
		{"AUDIO_FALLBACK", stringVar(&cfg.Audio.Fallback)},
		{"SEED", uintVar(&cfg.Game.Seed)},
		{"HOLD_WINDOW", durationVar(&cfg.Terminal.HoldWindow)},
		{"WINDOW_SCALE", intVar(&cfg.Window.Scale)},
		{"LOG_FILE", boolVar(&cfg.Log.File)},
		{"LOG_DIR", stringVar(&cfg.Log.Dir)},
	}

	for _, v := range vars {
		key := envPrefix + v.name
		raw, ok := lookup(key)
		if !ok {
			continue
		}
		if err := v.apply(raw); err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, key, raw, err)
		}
	}
	return nil
}

func stringVar(dst *string) func(string) error {
	return func(s string) error {
		*dst = s
		return nil
	}
}

func boolVar(dst *bool) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

func intVar(dst *int) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

func uintVar(dst *uint64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

func durationVar(dst *time.Duration) func(string) error {
	return func(s string) error {
		v, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}
