package qrcode

import (
	"fmt"

	goqr "github.com/skip2/go-qrcode"

	"github.com/bft-labs/qrship/internal/domain"
)

// Encoder implements ports.SymbolEncoder using github.com/skip2/go-qrcode.
// It produces byte-mode symbols of versions 1 through 40 with no quiet zone;
// renderers add their own.
type Encoder struct{}

// NewEncoder creates a new QR encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode builds the module grid for data.
func (e *Encoder) Encode(data []byte, level domain.ECCLevel) ([][]bool, int, error) {
	rl, err := recoveryLevel(level)
	if err != nil {
		return nil, 0, err
	}

	q, err := goqr.New(string(data), rl)
	if err != nil {
		return nil, 0, fmt.Errorf("encode %d bytes at %s: %w", len(data), level, err)
	}
	q.DisableBorder = true

	// Bitmap rebuilds the symbol on every call; call it once.
	bitmap := q.Bitmap()
	return bitmap, len(bitmap), nil
}

// recoveryLevel maps the four standard tiers onto the library's names,
// which call Quartile "High" and High "Highest".
func recoveryLevel(level domain.ECCLevel) (goqr.RecoveryLevel, error) {
	switch level {
	case domain.ECCLow:
		return goqr.Low, nil
	case domain.ECCMedium:
		return goqr.Medium, nil
	case domain.ECCQuartile:
		return goqr.High, nil
	case domain.ECCHigh:
		return goqr.Highest, nil
	default:
		return 0, fmt.Errorf("%w: unknown ecc level %d", domain.ErrInvalidConfig, int(level))
	}
}
