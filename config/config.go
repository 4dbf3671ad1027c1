// Package config resolves startup settings from defaults, a TOML file, a .env file and the environment
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/block-outrun/audio"
	"github.com/lixenwraith/block-outrun/constants"
	"github.com/lixenwraith/block-outrun/input"
)

const (
	// DefaultPath is the config file read when BLOCK_OUTRUN_CONFIG is unset
	DefaultPath = "block-outrun.toml"

	// EnvFile is the dotenv file merged under the process environment
	EnvFile = ".env"

	envPrefix = "BLOCK_OUTRUN_"
)

// ErrInvalid reports a setting outside its allowed range
var ErrInvalid = errors.New("invalid config")

// Config is the resolved startup configuration
type Config struct {
	Audio    AudioConfig    `toml:"audio"`
	Game     GameConfig     `toml:"game"`
	Terminal TerminalConfig `toml:"terminal"`
	Window   WindowConfig   `toml:"window"`
	Log      LogConfig      `toml:"log"`
}

type AudioConfig struct {
	Enabled bool `toml:"enabled"`
	// Volume is the starting master volume in percent
	Volume   int    `toml:"volume"`
	Assets   string `toml:"assets"`
	Fallback string `toml:"fallback"`
}

type GameConfig struct {
	// Seed fixes the obstacle sequence; zero seeds from the clock
	Seed uint64 `toml:"seed"`
}

type TerminalConfig struct {
	// HoldWindow keeps an arrow key held between terminal auto-repeats
	HoldWindow time.Duration `toml:"hold_window"`
}

type WindowConfig struct {
	Scale int `toml:"scale"`
}

type LogConfig struct {
	File bool   `toml:"file"`
	Dir  string `toml:"dir"`
}

// Default returns the built-in configuration
func Default() Config {
	a := audio.DefaultConfig()
	return Config{
		Audio: AudioConfig{
			Enabled:  a.Enabled,
			Volume:   int(a.Volume * 100),
			Assets:   a.AssetDir,
			Fallback: a.Fallback,
		},
		Terminal: TerminalConfig{HoldWindow: input.DefaultHoldWindow},
		Window:   WindowConfig{Scale: 1},
		Log:      LogConfig{File: false, Dir: "logs"},
	}
}

// Load resolves the configuration; path "" selects BLOCK_OUTRUN_CONFIG or DefaultPath
// A missing config or .env file is not an error
func Load(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(envPrefix + "CONFIG")
	}
	if path == "" {
		path = DefaultPath
	}
	return load(path, EnvFile, os.LookupEnv)
}

func load(path, envFile string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, &cfg)
	switch {
	case err == nil:
		for _, key := range md.Undecoded() {
			log.Printf("config: unknown key %q in %s", key.String(), path)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	dotenv, err := godotenv.Read(envFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("read %s: %w", envFile, err)
	}

	// The process environment wins over .env
	merged := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := applyEnv(&cfg, merged); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate clamps the volume and rejects settings the hosts cannot run with
func (c *Config) Validate() error {
	c.Audio.Volume = max(0, min(100, c.Audio.Volume))

	switch c.Audio.Fallback {
	case audio.FallbackSilent, audio.FallbackSynth:
	default:
		return fmt.Errorf("%w: audio fallback %q (want %q or %q)", ErrInvalid, c.Audio.Fallback, audio.FallbackSilent, audio.FallbackSynth)
	}
	if c.Terminal.HoldWindow <= 0 {
		return fmt.Errorf("%w: terminal hold window %v must be positive", ErrInvalid, c.Terminal.HoldWindow)
	}
	if c.Window.Scale < 1 {
		return fmt.Errorf("%w: window scale %d must be at least 1", ErrInvalid, c.Window.Scale)
	}
	return nil
}

// AudioConfig returns the settings for audio.Open
func (c Config) AudioConfig() audio.Config {
	return audio.Config{
		Enabled:  c.Audio.Enabled,
		Volume:   c.Volume(),
		AssetDir: c.Audio.Assets,
		Fallback: c.Audio.Fallback,
	}
}

// Volume returns the starting volume in [0, 1]
func (c Config) Volume() float64 {
	return float64(c.Audio.Volume) / constants.MaxPercentage
}
