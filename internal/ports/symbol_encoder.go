package ports

import "github.com/bft-labs/qrship/internal/domain"

// SymbolEncoder encodes bytes into a QR module grid.
// Implementations must be deterministic: the same data and level always
// yield the same grid. They must be safe for concurrent use.
type SymbolEncoder interface {
	// Encode returns a size x size grid (modules[y][x], true = dark) with no
	// quiet zone. It returns an error when data does not fit any supported
	// symbol version at the given level.
	Encode(data []byte, level domain.ECCLevel) (modules [][]bool, size int, err error)
}
