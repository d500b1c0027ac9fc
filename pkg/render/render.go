package render

import (
	"fmt"
	"strings"

	"github.com/bft-labs/qrship/internal/domain"
)

// Placeholder is rendered in place of a symbol that failed to encode.
const Placeholder = "(No QR data)"

// Quiet zone widths, in modules.
const (
	RobustQuiet    = 4
	CompactQuiet   = 2
	HalfBlockQuiet = 1
)

const (
	robustSet   = "##"
	robustClear = "  "
	compactSet  = "█"
	upperHalf   = "▀"
	lowerHalf   = "▄"
	fullBlock   = "█"
)

// Variant names a projection.
type Variant int

const (
	// Auto defers the choice to Select.
	Auto Variant = iota
	Robust
	Compact
	HalfBlock
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case Auto:
		return "auto"
	case Robust:
		return "robust"
	case Compact:
		return "compact"
	case HalfBlock:
		return "halfblock"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// ParseVariant accepts auto, robust, compact or halfblock (also "half").
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return Auto, nil
	case "robust":
		return Robust, nil
	case "compact":
		return Compact, nil
	case "halfblock", "half-block", "half":
		return HalfBlock, nil
	default:
		return Auto, fmt.Errorf("%w: unknown render variant %q", domain.ErrInvalidConfig, s)
	}
}

// Render dispatches to the projection named by v. Auto renders Robust.
func Render(v Variant, modules [][]bool, size int) string {
	switch v {
	case Compact:
		return RenderCompact(modules, size)
	case HalfBlock:
		return RenderHalfBlock(modules, size)
	default:
		return RenderRobust(modules, size)
	}
}

// RenderRobust draws each module as two characters.
func RenderRobust(modules [][]bool, size int) string {
	if size <= 0 {
		return Placeholder
	}
	return drawCells(modules, size, RobustQuiet, robustSet, robustClear)
}

// RenderCompact draws each module as one full-block character.
func RenderCompact(modules [][]bool, size int) string {
	if size <= 0 {
		return Placeholder
	}
	return drawCells(modules, size, CompactQuiet, compactSet, " ")
}

func drawCells(modules [][]bool, size, quiet int, set, unset string) string {
	span := size + 2*quiet
	blankLine := strings.Repeat(unset, span) + "\n"
	margin := strings.Repeat(unset, quiet)

	var b strings.Builder
	b.Grow(span * (span*len(set) + 1))

	for i := 0; i < quiet; i++ {
		b.WriteString(blankLine)
	}
	for y := 0; y < size; y++ {
		b.WriteString(margin)
		for x := 0; x < size; x++ {
			if moduleAt(modules, x, y) {
				b.WriteString(set)
			} else {
				b.WriteString(unset)
			}
		}
		b.WriteString(margin)
		b.WriteByte('\n')
	}
	for i := 0; i < quiet; i++ {
		b.WriteString(blankLine)
	}
	return b.String()
}

// RenderHalfBlock packs two module rows into each output line. The quiet
// zone is part of the packed rows, so the grid drawn is (size+2)x(size+2)
// with an all-clear border; an odd row count leaves the final line's lower
// half clear.
func RenderHalfBlock(modules [][]bool, size int) string {
	if size <= 0 {
		return Placeholder
	}
	span := size + 2*HalfBlockQuiet
	at := func(x, y int) bool {
		return moduleAt(modules, x-HalfBlockQuiet, y-HalfBlockQuiet)
	}

	var b strings.Builder
	b.Grow((span + 1) / 2 * (span*len(fullBlock) + 1))

	for y := 0; y < span; y += 2 {
		for x := 0; x < span; x++ {
			top := at(x, y)
			bottom := y+1 < span && at(x, y+1)
			switch {
			case top && bottom:
				b.WriteString(fullBlock)
			case top:
				b.WriteString(upperHalf)
			case bottom:
				b.WriteString(lowerHalf)
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// moduleAt reads modules[y][x], treating anything outside the grid as clear.
func moduleAt(modules [][]bool, x, y int) bool {
	if y < 0 || y >= len(modules) {
		return false
	}
	row := modules[y]
	if x < 0 || x >= len(row) {
		return false
	}
	return row[x]
}
