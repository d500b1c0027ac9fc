package cliconfig

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/bft-labs/qrship/internal/domain"
	"github.com/bft-labs/qrship/pkg/frame"
	"github.com/bft-labs/qrship/pkg/render"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MaxChunkLen != 100 {
		t.Errorf("MaxChunkLen = %v, want 100", cfg.MaxChunkLen)
	}
	if cfg.ECC != "quartile" {
		t.Errorf("ECC = %v, want quartile", cfg.ECC)
	}
	if cfg.AutoPlayInterval != 4*time.Second {
		t.Errorf("AutoPlayInterval = %v, want 4s", cfg.AutoPlayInterval)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	base := DefaultConfig()
	with := func(f func(*Config)) Config {
		c := base
		f(&c)
		return c
	}

	tests := []struct {
		name       string
		config     Config
		wantErr    bool
		wantConfig bool
	}{
		{name: "defaults", config: base},
		{name: "hex and input", config: with(func(c *Config) { c.Hex = "00"; c.Input = "tx.hex" }), wantErr: true},
		{name: "watch without file", config: with(func(c *Config) { c.Watch = true }), wantErr: true},
		{name: "watch stdin", config: with(func(c *Config) { c.Watch = true; c.Input = "-" }), wantErr: true},
		{name: "watch file", config: with(func(c *Config) { c.Watch = true; c.Input = "tx.hex" })},
		{name: "zero interval", config: with(func(c *Config) { c.AutoPlayInterval = 0 }), wantErr: true},
		{name: "bad variant", config: with(func(c *Config) { c.Render = "sixel" }), wantErr: true},
		{name: "bad log level", config: with(func(c *Config) { c.LogLevel = "loud" }), wantErr: true},
		{name: "bad ecc", config: with(func(c *Config) { c.ECC = "x" }), wantErr: true, wantConfig: true},
		{name: "bad framing", config: with(func(c *Config) { c.Framing = "morse" }), wantErr: true, wantConfig: true},
		{name: "negative parts", config: with(func(c *Config) { c.MaxParts = -1 }), wantErr: true, wantConfig: true},
		{name: "small chunk is clamped", config: with(func(c *Config) { c.MaxChunkLen = 3 })},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantConfig && !errors.Is(err, domain.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_Library(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ECC = "H"
	cfg.Framing = "binary"
	cfg.MaxChunkLen = 64
	cfg.Concurrency = 4

	lib, err := cfg.Library()
	if err != nil {
		t.Fatalf("Library() error = %v", err)
	}
	if lib.ECC != domain.ECCHigh {
		t.Errorf("ECC = %v, want high", lib.ECC)
	}
	if lib.Framing != frame.Binary {
		t.Errorf("Framing = %v, want binary", lib.Framing)
	}
	if lib.MaxChunkLen != 64 {
		t.Errorf("MaxChunkLen = %v, want 64", lib.MaxChunkLen)
	}
	if lib.Concurrency != 4 {
		t.Errorf("Concurrency = %v, want 4", lib.Concurrency)
	}
}

func TestConfig_Variant(t *testing.T) {
	cfg := DefaultConfig()
	if v := cfg.Variant(); v != render.Auto {
		t.Errorf("Variant() = %v, want auto", v)
	}
	cfg.Render = "halfblock"
	if v := cfg.Variant(); v != render.HalfBlock {
		t.Errorf("Variant() = %v, want halfblock", v)
	}
}

func TestConfig_Logger(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "error"

	var buf bytes.Buffer
	logger, err := cfg.Logger(&buf)
	if err != nil {
		t.Fatalf("Logger() error = %v", err)
	}
	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("info entry written at error level: %q", buf.String())
	}
}
