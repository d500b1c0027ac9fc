// Package matrix turns framed chunk bytes into Symbols through an external
// QR encoder. An encode failure never escapes: it becomes a sentinel Symbol
// that keeps its place in the sequence.
package matrix

import (
	"errors"
	"fmt"

	"github.com/bft-labs/qrship/internal/domain"
	"github.com/bft-labs/qrship/internal/ports"
	"github.com/bft-labs/qrship/pkg/log"
	"github.com/bft-labs/qrship/pkg/symbol"
)

var errEmptyGrid = errors.New("matrix: encoder returned an empty grid")

// Generator wraps a SymbolEncoder.
type Generator struct {
	enc    ports.SymbolEncoder
	logger log.Logger
}

// NewGenerator returns a Generator using enc. A nil logger discards output.
func NewGenerator(enc ports.SymbolEncoder, logger log.Logger) *Generator {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Generator{enc: enc, logger: logger}
}

// Generate encodes framed at the given error-correction level and tags the
// result with (part, total). If the encoder fails, or hands back a grid that
// does not match the size it reported, the result is a sentinel carrying the
// same position.
//
// The error is non-nil only for a position outside 1..total.
func (g *Generator) Generate(framed []byte, level domain.ECCLevel, part, total int) (*symbol.Symbol, error) {
	if total < 1 || part < 1 || part > total {
		return nil, fmt.Errorf("matrix: invalid position %d of %d", part, total)
	}

	s, err := g.encode(framed, level, part, total)
	if err == nil {
		return s, nil
	}

	g.logger.Warn("symbol encode failed",
		log.Part(part, total),
		log.Int("bytes", len(framed)),
		log.Any("ecc", level),
		log.Err(err),
	)
	return symbol.Sentinel(part, total)
}

func (g *Generator) encode(framed []byte, level domain.ECCLevel, part, total int) (*symbol.Symbol, error) {
	modules, size, err := g.enc.Encode(framed, level)
	if err != nil {
		return nil, err
	}
	s, err := symbol.New(modules, part, total)
	if err != nil {
		return nil, err
	}
	if s.IsSentinel() {
		return nil, errEmptyGrid
	}
	if s.Size() != size {
		return nil, fmt.Errorf("matrix: encoder reported size %d for a %dx%d grid", size, s.Size(), s.Size())
	}
	return s, nil
}
