package qrship

import (
	"fmt"

	"github.com/bft-labs/qrship/internal/domain"
	"github.com/bft-labs/qrship/pkg/chunk"
	"github.com/bft-labs/qrship/pkg/frame"
)

// Config controls how a payload is split and encoded.
type Config struct {
	// MaxChunkLen is the payload bytes per symbol. Zero means 100; values
	// below 10 are raised to 10.
	MaxChunkLen int

	// MaxTotalSize rejects larger payloads. Zero means 100000.
	MaxTotalSize int

	// MaxParts rejects payloads needing more symbols. Zero means 1000.
	MaxParts int

	// ECC is the error-correction level handed to the symbol encoder.
	ECC ECCLevel

	// Framing selects the positional header layout for multi-part payloads.
	Framing FrameFormat

	// Concurrency is the number of chunks encoded in parallel. Zero means 1.
	Concurrency int
}

// DefaultConfig returns a Config with every field at its default.
func DefaultConfig() Config {
	return Config{
		MaxChunkLen:  chunk.DefaultMaxChunkLen,
		MaxTotalSize: chunk.DefaultMaxTotalSize,
		MaxParts:     chunk.DefaultMaxParts,
		ECC:          domain.DefaultECCLevel,
		Framing:      frame.Text,
		Concurrency:  1,
	}
}

// SetDefaults fills zero fields with their defaults and clamps MaxChunkLen.
// The zero Framing is Text.
func (c *Config) SetDefaults() {
	if c.ECC == 0 {
		c.ECC = domain.DefaultECCLevel
	}
	if c.MaxChunkLen == 0 {
		c.MaxChunkLen = chunk.DefaultMaxChunkLen
	}
	if c.MaxChunkLen > 0 && c.MaxChunkLen < chunk.MinChunkLen {
		c.MaxChunkLen = chunk.MinChunkLen
	}
	if c.MaxTotalSize == 0 {
		c.MaxTotalSize = chunk.DefaultMaxTotalSize
	}
	if c.MaxParts == 0 {
		c.MaxParts = chunk.DefaultMaxParts
	}
	if c.Concurrency == 0 {
		c.Concurrency = 1
	}
}

// Validate checks the configuration. Errors wrap ErrInvalidConfig.
func (c Config) Validate() error {
	if c.MaxChunkLen < 0 {
		return fmt.Errorf("%w: max chunk length %d is negative", ErrInvalidConfig, c.MaxChunkLen)
	}
	if c.MaxTotalSize < 0 {
		return fmt.Errorf("%w: max total size %d is negative", ErrInvalidConfig, c.MaxTotalSize)
	}
	if c.MaxParts < 0 {
		return fmt.Errorf("%w: max parts %d is negative", ErrInvalidConfig, c.MaxParts)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("%w: concurrency %d is negative", ErrInvalidConfig, c.Concurrency)
	}
	if !c.ECC.Valid() {
		return fmt.Errorf("%w: unknown ecc level %d", ErrInvalidConfig, int(c.ECC))
	}
	switch c.Framing {
	case frame.Text:
	case frame.Binary:
		if c.MaxParts > frame.MaxBinaryParts {
			return fmt.Errorf("%w: binary framing carries at most %d parts, max parts is %d",
				ErrInvalidConfig, frame.MaxBinaryParts, c.MaxParts)
		}
	default:
		return fmt.Errorf("%w: unknown framing %d", ErrInvalidConfig, int(c.Framing))
	}
	return nil
}

func (c Config) limits() chunk.Limits {
	return chunk.Limits{
		MaxChunkLen:  c.MaxChunkLen,
		MaxTotalSize: c.MaxTotalSize,
		MaxParts:     c.MaxParts,
	}
}
