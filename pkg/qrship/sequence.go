package qrship

// Failed returns the part numbers of sentinel symbols, in sequence order.
func Failed(symbols []*Symbol) []int {
	var parts []int
	for _, s := range symbols {
		if s.IsSentinel() {
			parts = append(parts, s.Part())
		}
	}
	return parts
}

// Scannable reports whether symbols is non-empty and holds no sentinel.
// A sequence with any gap cannot be reassembled.
func Scannable(symbols []*Symbol) bool {
	if len(symbols) == 0 {
		return false
	}
	for _, s := range symbols {
		if s.IsSentinel() {
			return false
		}
	}
	return true
}
