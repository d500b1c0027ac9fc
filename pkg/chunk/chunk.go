// Package chunk decides how many parts a payload needs and slices it.
//
// Planning is pure arithmetic over the payload length: it never inspects
// payload content and never allocates copies of the payload bytes.
package chunk

import (
	"fmt"

	"github.com/bft-labs/qrship/internal/domain"
)

// Default limits.
const (
	// DefaultMaxChunkLen is the payload bytes carried by one symbol.
	DefaultMaxChunkLen = 100
	// MinChunkLen is the floor a requested chunk length is clamped up to.
	MinChunkLen = 10
	// DefaultMaxTotalSize caps the whole payload.
	DefaultMaxTotalSize = 100_000
	// DefaultMaxParts caps the number of symbols in one sequence.
	DefaultMaxParts = 1000
)

// Limits bounds one planning call. Zero fields take the package defaults.
type Limits struct {
	MaxChunkLen  int
	MaxTotalSize int
	MaxParts     int
}

// DefaultLimits returns the package defaults.
func DefaultLimits() Limits {
	return Limits{
		MaxChunkLen:  DefaultMaxChunkLen,
		MaxTotalSize: DefaultMaxTotalSize,
		MaxParts:     DefaultMaxParts,
	}
}

// normalized fills zero fields with defaults and clamps the chunk length.
func (l Limits) normalized() Limits {
	if l.MaxChunkLen <= 0 {
		l.MaxChunkLen = DefaultMaxChunkLen
	}
	if l.MaxChunkLen < MinChunkLen {
		l.MaxChunkLen = MinChunkLen
	}
	if l.MaxTotalSize <= 0 {
		l.MaxTotalSize = DefaultMaxTotalSize
	}
	if l.MaxParts <= 0 {
		l.MaxParts = DefaultMaxParts
	}
	return l
}

// EffectiveChunkLen returns the chunk length Plan actually uses for l.
func (l Limits) EffectiveChunkLen() int {
	return l.normalized().MaxChunkLen
}

// Chunk is one slice of a payload tagged with its position.
// Data aliases the planned payload; callers must not modify it.
type Chunk struct {
	Part  int
	Total int
	Data  []byte
}

// Single reports whether the chunk is the only one in its sequence.
// Single chunks are carried unframed.
func (c Chunk) Single() bool {
	return c.Total == 1
}

// Count returns the number of parts data of length n needs under l, or an
// error wrapping domain.ErrNotEncodable.
func Count(n int, l Limits) (int, error) {
	l = l.normalized()
	if n == 0 {
		return 0, domain.ErrEmptyPayload
	}
	if n > l.MaxTotalSize {
		return 0, fmt.Errorf("%w: %d bytes > %d", domain.ErrPayloadTooLarge, n, l.MaxTotalSize)
	}
	if n <= l.MaxChunkLen {
		return 1, nil
	}
	parts := (n + l.MaxChunkLen - 1) / l.MaxChunkLen
	if parts > l.MaxParts {
		return 0, fmt.Errorf("%w: %d parts > %d", domain.ErrTooManyParts, parts, l.MaxParts)
	}
	return parts, nil
}

// Plan slices data into consecutive chunks numbered 1..Total. Concatenating
// the chunks' Data in order reproduces data exactly. On error no chunks are
// returned.
func Plan(data []byte, l Limits) ([]Chunk, error) {
	total, err := Count(len(data), l)
	if err != nil {
		return nil, err
	}
	size := l.normalized().MaxChunkLen

	chunks := make([]Chunk, 0, total)
	for i := 0; i < total; i++ {
		start := i * size
		end := min(start+size, len(data))
		chunks = append(chunks, Chunk{
			Part:  i + 1,
			Total: total,
			Data:  data[start:end:end],
		})
	}
	return chunks, nil
}
