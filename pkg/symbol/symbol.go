// Package symbol holds the Symbol entity: one QR code plus its position in a
// multi-part sequence.
package symbol

import (
	"fmt"
	"sync"

	"github.com/bft-labs/qrship/pkg/render"
)

// Symbol is an immutable QR code produced once by the pipeline. A Symbol
// with Size 0 is a sentinel: its chunk failed to encode, but it still
// occupies its position so a gap in the sequence stays visible.
//
// Symbols are safe for concurrent use. The half-block rendering is computed
// on first request and cached.
type Symbol struct {
	modules [][]bool
	size    int
	part    int
	total   int

	halfOnce sync.Once
	half     string
}

// New builds a Symbol from a square grid. The grid is copied so later
// changes by the caller cannot reach the Symbol.
func New(modules [][]bool, part, total int) (*Symbol, error) {
	if err := checkPosition(part, total); err != nil {
		return nil, err
	}
	size := len(modules)
	grid := make([][]bool, size)
	for y, row := range modules {
		if len(row) != size {
			return nil, fmt.Errorf("symbol: row %d has %d modules, want %d", y, len(row), size)
		}
		grid[y] = append([]bool(nil), row...)
	}
	return &Symbol{modules: grid, size: size, part: part, total: total}, nil
}

// Sentinel returns a placeholder Symbol for a chunk that failed to encode.
func Sentinel(part, total int) (*Symbol, error) {
	if err := checkPosition(part, total); err != nil {
		return nil, err
	}
	return &Symbol{part: part, total: total}, nil
}

func checkPosition(part, total int) error {
	if total < 1 || part < 1 || part > total {
		return fmt.Errorf("symbol: invalid position %d of %d", part, total)
	}
	return nil
}

// Size returns the grid dimension, or 0 for a sentinel.
func (s *Symbol) Size() int { return s.size }

// Part returns the 1-based position in the sequence.
func (s *Symbol) Part() int { return s.part }

// TotalParts returns the number of symbols in the sequence.
func (s *Symbol) TotalParts() int { return s.total }

// IsSentinel reports whether the symbol stands in for a failed encode.
func (s *Symbol) IsSentinel() bool { return s.size == 0 }

// Module reports whether the module at column x, row y is dark.
// Out-of-range coordinates are light.
func (s *Symbol) Module(x, y int) bool {
	if x < 0 || y < 0 || x >= s.size || y >= s.size {
		return false
	}
	return s.modules[y][x]
}

// Modules returns a copy of the grid.
func (s *Symbol) Modules() [][]bool {
	out := make([][]bool, s.size)
	for y, row := range s.modules {
		out[y] = append([]bool(nil), row...)
	}
	return out
}

// Robust renders the symbol with two characters per module.
func (s *Symbol) Robust() string {
	return render.RenderRobust(s.modules, s.size)
}

// Compact renders the symbol with one block character per module.
func (s *Symbol) Compact() string {
	return render.RenderCompact(s.modules, s.size)
}

// HalfBlock renders two module rows per line. The result is cached.
func (s *Symbol) HalfBlock() string {
	s.halfOnce.Do(func() {
		s.half = render.RenderHalfBlock(s.modules, s.size)
	})
	return s.half
}

// Render dispatches to the projection named by v. Auto renders Robust.
func (s *Symbol) Render(v render.Variant) string {
	switch v {
	case render.Compact:
		return s.Compact()
	case render.HalfBlock:
		return s.HalfBlock()
	default:
		return s.Robust()
	}
}

// String returns a short description, e.g. "part 2/5 (25x25)".
func (s *Symbol) String() string {
	if s.IsSentinel() {
		return fmt.Sprintf("part %d/%d (failed)", s.part, s.total)
	}
	return fmt.Sprintf("part %d/%d (%dx%d)", s.part, s.total, s.size, s.size)
}
