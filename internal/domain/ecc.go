package domain

import (
	"fmt"
	"strings"
)

// ECCLevel is the QR error-correction tier. Higher tiers recover from more
// symbol damage at the cost of a denser symbol.
// The zero value is unset; configuration replaces it with DefaultECCLevel.
type ECCLevel int

const (
	// ECCLow recovers roughly 7% of codewords.
	ECCLow ECCLevel = iota + 1
	// ECCMedium recovers roughly 15% of codewords.
	ECCMedium
	// ECCQuartile recovers roughly 25% of codewords.
	ECCQuartile
	// ECCHigh recovers roughly 30% of codewords.
	ECCHigh
)

// DefaultECCLevel balances scan reliability against symbol density for
// codes scanned by a camera off a screen.
const DefaultECCLevel = ECCQuartile

// String returns the lowercase level name.
func (l ECCLevel) String() string {
	switch l {
	case ECCLow:
		return "low"
	case ECCMedium:
		return "medium"
	case ECCQuartile:
		return "quartile"
	case ECCHigh:
		return "high"
	default:
		return fmt.Sprintf("ecc(%d)", int(l))
	}
}

// Valid reports whether l is one of the four defined levels.
func (l ECCLevel) Valid() bool {
	return l >= ECCLow && l <= ECCHigh
}

// ParseECCLevel accepts the level name or its single-letter QR abbreviation
// (L, M, Q, H), case-insensitively.
func ParseECCLevel(s string) (ECCLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "low":
		return ECCLow, nil
	case "m", "medium":
		return ECCMedium, nil
	case "q", "quartile":
		return ECCQuartile, nil
	case "h", "high":
		return ECCHigh, nil
	default:
		return 0, fmt.Errorf("%w: unknown ecc level %q", ErrInvalidConfig, s)
	}
}

// MarshalText implements encoding.TextMarshaler so levels read naturally in
// TOML, YAML and JSON output.
func (l ECCLevel) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: unknown ecc level %d", ErrInvalidConfig, int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *ECCLevel) UnmarshalText(b []byte) error {
	v, err := ParseECCLevel(string(b))
	if err != nil {
		return err
	}
	*l = v
	return nil
}
