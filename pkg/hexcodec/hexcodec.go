// Package hexcodec converts the canonical hex-string encoding of a signed
// transaction to and from raw bytes.
//
// Malformed input is always a caller bug, so Decode fails hard: it never
// truncates a trailing nibble or pads with zeros.
package hexcodec

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/bft-labs/qrship/internal/domain"
)

// Decode parses s, with an optional 0x or 0X prefix, into bytes.
// It returns an error wrapping domain.ErrOddLength or domain.ErrInvalidHex.
// An empty string (or a bare prefix) decodes to an empty, non-nil slice.
func Decode(s string) ([]byte, error) {
	digits := TrimPrefix(s)
	if len(digits)%2 != 0 {
		return nil, fmt.Errorf("%w: %d digits", domain.ErrOddLength, len(digits))
	}

	out := make([]byte, len(digits)/2)
	if _, err := hex.Decode(out, []byte(digits)); err != nil {
		var invalid hex.InvalidByteError
		if errors.As(err, &invalid) {
			pos := strings.IndexByte(digits, byte(invalid))
			return nil, fmt.Errorf("%w: %q at offset %d", domain.ErrInvalidHex, rune(invalid), pos+len(s)-len(digits))
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidHex, err)
	}
	return out, nil
}

// Encode returns the lowercase hex encoding of b with a 0x prefix.
func Encode(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// TrimPrefix removes a single leading 0x or 0X.
func TrimPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
