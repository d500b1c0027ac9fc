package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (QRSHIP_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setIntFromString("max-chunk", os.Getenv("QRSHIP_MAX_CHUNK"), &cfg.MaxChunkLen); err != nil {
		return err
	}
	if err := s.setIntFromString("max-total-size", os.Getenv("QRSHIP_MAX_TOTAL_SIZE"), &cfg.MaxTotalSize); err != nil {
		return err
	}
	if err := s.setIntFromString("max-parts", os.Getenv("QRSHIP_MAX_PARTS"), &cfg.MaxParts); err != nil {
		return err
	}
	if err := s.setIntFromString("concurrency", os.Getenv("QRSHIP_CONCURRENCY"), &cfg.Concurrency); err != nil {
		return err
	}

	s.setString("ecc", os.Getenv("QRSHIP_ECC"), &cfg.ECC)
	s.setString("framing", os.Getenv("QRSHIP_FRAMING"), &cfg.Framing)
	s.setString("variant", os.Getenv("QRSHIP_RENDER"), &cfg.Render)
	s.setString("log-level", os.Getenv("QRSHIP_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setDuration("interval", os.Getenv("QRSHIP_AUTOPLAY_INTERVAL"), &cfg.AutoPlayInterval); err != nil {
		return err
	}

	s.setBoolFromString("raw", os.Getenv("QRSHIP_RAW"), &cfg.Raw)

	return nil
}
