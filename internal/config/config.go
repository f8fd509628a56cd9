// Package config holds the persisted defaults for the virtualmic CLI.
//
// Settings live in a YAML file (by default ~/.config/virtualmic/config.yaml)
// and every flag on the command line overrides its file value. A .env file
// in the working directory is loaded too, which is the usual way to point
// the tool at a non-default audio server (PULSE_SERVER and friends).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the user preferences for the virtual microphone.
type Config struct {
	// Name is the source name applications see.
	Name string `yaml:"name"`
	// Rate is the sink sample rate in Hz.
	Rate int `yaml:"rate"`
	// Volume is the playback multiplier, 0 to 2.
	Volume float64 `yaml:"volume"`
	// Monitor plays the stream through the speakers as well.
	Monitor bool `yaml:"monitor"`
	// Loop restarts the file when it ends.
	Loop bool `yaml:"loop"`
	// LatencyMS is the loopback latency used in monitor mode.
	LatencyMS int `yaml:"latency_ms"`
}

const (
	DefaultName      = "VirtualMic"
	DefaultRate      = 48000
	DefaultVolume    = 1.0
	DefaultLatencyMS = 1
)

// deviceName matches what the audio server accepts as sink/source names.
var deviceName = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Name:      DefaultName,
		Rate:      DefaultRate,
		Volume:    DefaultVolume,
		LatencyMS: DefaultLatencyMS,
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "virtualmic.yaml")
	}
	return filepath.Join(dir, "virtualmic", "config.yaml")
}

// Load reads the configuration file or returns defaults if it does not exist.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	return Normalize(cfg)
}

// LoadEnv loads a .env file from the working directory when present.
// Variables like PULSE_SERVER reach the spawned pactl/pacat processes
// through the environment.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// Normalize fills defaults and bounds-checks the configuration.
// Out-of-range volume is clamped, not rejected.
func Normalize(cfg Config) (Config, error) {
	if cfg.Name == "" {
		cfg.Name = DefaultName
	}
	if !deviceName.MatchString(cfg.Name) {
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidName, cfg.Name)
	}

	if cfg.Rate == 0 {
		cfg.Rate = DefaultRate
	}
	if cfg.Rate < 0 {
		return Config{}, fmt.Errorf("%w: %d", ErrInvalidRate, cfg.Rate)
	}

	if cfg.Volume < 0 {
		cfg.Volume = 0
	}
	if cfg.Volume > 2 {
		cfg.Volume = 2
	}

	if cfg.LatencyMS <= 0 {
		cfg.LatencyMS = DefaultLatencyMS
	}

	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write tmp: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename tmp: %w", err)
	}
	return nil
}
