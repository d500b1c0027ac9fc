// Package render draws a QR module grid as text for a character terminal.
//
// Three projections are provided. All are pure functions of (modules, size),
// end every line with '\n', surround the symbol with a blank quiet zone, and
// return [Placeholder] for a size of zero.
//
//	Robust     "##" / "  " per module, 4-module quiet zone
//	Compact    "█"  / " "  per module, 2-module quiet zone
//	HalfBlock  one cell per two stacked modules (▀ ▄ █ and space), 1-module quiet zone
//
// Robust keeps modules square on terminals whose cells are about twice as
// tall as wide and scans most reliably. Compact halves the width. HalfBlock
// halves the line count while keeping modules near square.
package render
