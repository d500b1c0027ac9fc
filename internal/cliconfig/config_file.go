package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	MaxChunkLen      int    `toml:"max_chunk_len"`
	MaxTotalSize     int    `toml:"max_total_size"`
	MaxParts         int    `toml:"max_parts"`
	ECC              string `toml:"ecc"`
	Framing          string `toml:"framing"`
	Concurrency      int    `toml:"concurrency"`
	Render           string `toml:"render"`
	AutoPlayInterval string `toml:"autoplay_interval"`
	LogLevel         string `toml:"log_level"`
	Raw              *bool  `toml:"raw"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.qrship/config.toml, or "" without a home
// directory.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".qrship", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setInt("max-chunk", fc.MaxChunkLen, &cfg.MaxChunkLen)
	s.setInt("max-total-size", fc.MaxTotalSize, &cfg.MaxTotalSize)
	s.setInt("max-parts", fc.MaxParts, &cfg.MaxParts)
	s.setInt("concurrency", fc.Concurrency, &cfg.Concurrency)

	s.setString("ecc", fc.ECC, &cfg.ECC)
	s.setString("framing", fc.Framing, &cfg.Framing)
	s.setString("variant", fc.Render, &cfg.Render)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	if err := s.setDuration("interval", fc.AutoPlayInterval, &cfg.AutoPlayInterval); err != nil {
		return err
	}

	s.setBool("raw", fc.Raw, &cfg.Raw)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
