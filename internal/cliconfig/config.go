package cliconfig

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/bft-labs/qrship/internal/domain"
	"github.com/bft-labs/qrship/pkg/chunk"
	"github.com/bft-labs/qrship/pkg/frame"
	"github.com/bft-labs/qrship/pkg/log"
	"github.com/bft-labs/qrship/pkg/qrship"
	"github.com/bft-labs/qrship/pkg/render"
)

// DefaultAutoPlayInterval is how long the viewer shows each part during
// auto-play.
const DefaultAutoPlayInterval = 4 * time.Second

// Config holds CLI configuration for qrship.
type Config struct {
	// Input is a file path holding the payload, or "-" for stdin.
	Input string
	// Hex is a payload given directly on the command line.
	Hex string
	// Raw takes the input bytes as the payload instead of hex text.
	Raw bool

	MaxChunkLen  int
	MaxTotalSize int
	MaxParts     int
	ECC          string
	Framing      string
	Concurrency  int

	Render           string
	AutoPlayInterval time.Duration
	Watch            bool

	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		MaxChunkLen:      chunk.DefaultMaxChunkLen,
		MaxTotalSize:     chunk.DefaultMaxTotalSize,
		MaxParts:         chunk.DefaultMaxParts,
		ECC:              domain.DefaultECCLevel.String(),
		Framing:          frame.Text.String(),
		Concurrency:      1,
		Render:           render.Auto.String(),
		AutoPlayInterval: DefaultAutoPlayInterval,
		LogLevel:         "info",
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Hex != "" && c.Input != "" {
		return fmt.Errorf("--hex and an input file are mutually exclusive")
	}
	if c.Watch && (c.Input == "" || c.Input == "-") {
		return fmt.Errorf("watch requires an input file")
	}
	if c.AutoPlayInterval <= 0 {
		return fmt.Errorf("auto-play interval must be positive")
	}
	if _, err := render.ParseVariant(c.Render); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	lib, err := c.Library()
	if err != nil {
		return err
	}
	lib.SetDefaults()
	return lib.Validate()
}

// Library converts the CLI settings into the encoder configuration.
func (c *Config) Library() (qrship.Config, error) {
	ecc, err := domain.ParseECCLevel(c.ECC)
	if err != nil {
		return qrship.Config{}, err
	}
	framing, err := frame.ParseFormat(c.Framing)
	if err != nil {
		return qrship.Config{}, err
	}
	return qrship.Config{
		MaxChunkLen:  c.MaxChunkLen,
		MaxTotalSize: c.MaxTotalSize,
		MaxParts:     c.MaxParts,
		ECC:          ecc,
		Framing:      framing,
		Concurrency:  c.Concurrency,
	}, nil
}

// Variant returns the configured render variant, Auto if unparseable.
func (c *Config) Variant() render.Variant {
	v, err := render.ParseVariant(c.Render)
	if err != nil {
		return render.Auto
	}
	return v
}

// Logger builds the console logger at the configured level.
func (c *Config) Logger(w io.Writer) (log.Logger, error) {
	return log.NewConsole(w, c.LogLevel)
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if positive.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
