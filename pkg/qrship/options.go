package qrship

import (
	"github.com/bft-labs/qrship/internal/domain"
	"github.com/bft-labs/qrship/internal/ports"
	"github.com/bft-labs/qrship/pkg/frame"
	"github.com/bft-labs/qrship/pkg/log"
	"github.com/bft-labs/qrship/pkg/render"
	"github.com/bft-labs/qrship/pkg/symbol"
)

// Re-exported types so most callers need only this package.
type (
	// Symbol is one QR code in a sequence.
	Symbol = symbol.Symbol

	// ECCLevel is the QR error-correction tier.
	ECCLevel = domain.ECCLevel

	// FrameFormat selects the positional header layout.
	FrameFormat = frame.Format

	// RenderVariant selects an ASCII projection.
	RenderVariant = render.Variant

	// Logger is the interface for structured logging.
	Logger = log.Logger

	// SymbolEncoder turns bytes into a QR module grid.
	SymbolEncoder = ports.SymbolEncoder
)

// Error-correction levels.
const (
	ECCLow      = domain.ECCLow
	ECCMedium   = domain.ECCMedium
	ECCQuartile = domain.ECCQuartile
	ECCHigh     = domain.ECCHigh
)

// Frame formats.
const (
	FrameText   = frame.Text
	FrameBinary = frame.Binary
)

// Option configures optional behavior of an Encoder.
type Option func(*options)

type options struct {
	logger  log.Logger
	encoder ports.SymbolEncoder
}

// WithLogger sets a logger for pipeline events.
// If not provided, nothing is logged.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSymbolEncoder replaces the QR encoder. Tests use it to inject
// failures; the default is backed by github.com/skip2/go-qrcode.
func WithSymbolEncoder(enc SymbolEncoder) Option {
	return func(o *options) {
		o.encoder = enc
	}
}
