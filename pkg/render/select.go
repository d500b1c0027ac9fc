package render

// Dimensions returns the width in terminal cells and the height in lines
// that variant v needs for a symbol of the given size.
func Dimensions(v Variant, size int) (width, height int) {
	if size <= 0 {
		return len(Placeholder), 1
	}
	switch v {
	case Compact:
		span := size + 2*CompactQuiet
		return span, span
	case HalfBlock:
		span := size + 2*HalfBlockQuiet
		return span, (span + 1) / 2
	default:
		span := size + 2*RobustQuiet
		return 2 * span, span
	}
}

// Select picks a concrete variant for a terminal of width x height cells.
// Robust is preferred whenever it fits; otherwise HalfBlock, which has the
// smallest footprint. A non-positive width means the size is unknown and
// selects Robust; a non-positive height is treated as unbounded.
func Select(width, height, size int) Variant {
	if width <= 0 {
		return Robust
	}
	w, h := Dimensions(Robust, size)
	if w <= width && (height <= 0 || h <= height) {
		return Robust
	}
	return HalfBlock
}
