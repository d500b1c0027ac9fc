// Package frame prefixes each chunk with the positional header that lets a
// scanner place it in its sequence.
//
// Two header formats are supported:
//
//	Text:   P<part>/<total>:<chunk-bytes>     (ASCII decimal, no leading zeros)
//	Binary: <part uint16 LE><total uint16 LE><chunk-bytes>
//
// In both formats a chunk that is the only one in its sequence is carried
// unframed: the frame payload is exactly the chunk bytes.
package frame

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bft-labs/qrship/internal/domain"
	"github.com/bft-labs/qrship/pkg/chunk"
)

// Format selects the header layout.
type Format int

const (
	// Text is the P<part>/<total>: prefix understood by existing scanners.
	Text Format = iota
	// Binary is a fixed 4-byte little-endian header.
	Binary
)

// BinaryHeaderLen is the size of a Binary header.
const BinaryHeaderLen = 4

// MaxBinaryParts is the largest total a Binary header can carry.
const MaxBinaryParts = math.MaxUint16

// String returns the format name.
func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case Binary:
		return "binary"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ParseFormat accepts "text" or "binary", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return Text, nil
	case "binary", "bin":
		return Binary, nil
	default:
		return 0, fmt.Errorf("%w: unknown framing %q", domain.ErrInvalidConfig, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(b []byte) error {
	v, err := ParseFormat(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Header is the position carried by a framed chunk.
type Header struct {
	Part  int
	Total int
}

// Text returns the textual header, e.g. "P2/5:".
func (h Header) Text() string {
	return "P" + strconv.Itoa(h.Part) + "/" + strconv.Itoa(h.Total) + ":"
}

// Len returns the header length in bytes for format f. Single-part
// sequences carry no header.
func (h Header) Len(f Format) int {
	if h.Total <= 1 {
		return 0
	}
	if f == Binary {
		return BinaryHeaderLen
	}
	return len(h.Text())
}

// Encode returns the framed bytes for c. The result never aliases c.Data.
func Encode(c chunk.Chunk, f Format) []byte {
	h := Header{Part: c.Part, Total: c.Total}
	out := make([]byte, 0, h.Len(f)+len(c.Data))
	if !c.Single() {
		out = appendHeader(out, h, f)
	}
	return append(out, c.Data...)
}

func appendHeader(dst []byte, h Header, f Format) []byte {
	if f == Binary {
		dst = binary.LittleEndian.AppendUint16(dst, uint16(h.Part))
		return binary.LittleEndian.AppendUint16(dst, uint16(h.Total))
	}
	dst = append(dst, 'P')
	dst = strconv.AppendInt(dst, int64(h.Part), 10)
	dst = append(dst, '/')
	dst = strconv.AppendInt(dst, int64(h.Total), 10)
	return append(dst, ':')
}

// Parse splits framed bytes into their header and chunk payload. The
// returned payload aliases b. Parse always expects a header; an unframed
// single-part payload is recognised by the caller from the sequence length.
func Parse(b []byte, f Format) (Header, []byte, error) {
	if f == Binary {
		return parseBinary(b)
	}
	return parseText(b)
}

func parseBinary(b []byte) (Header, []byte, error) {
	if len(b) < BinaryHeaderLen {
		return Header{}, nil, fmt.Errorf("%w: %d bytes, need %d", domain.ErrMalformedFrame, len(b), BinaryHeaderLen)
	}
	h := Header{
		Part:  int(binary.LittleEndian.Uint16(b[0:2])),
		Total: int(binary.LittleEndian.Uint16(b[2:4])),
	}
	if err := h.validate(); err != nil {
		return Header{}, nil, err
	}
	return h, b[BinaryHeaderLen:], nil
}

func parseText(b []byte) (Header, []byte, error) {
	if len(b) == 0 || b[0] != 'P' {
		return Header{}, nil, fmt.Errorf("%w: missing P prefix", domain.ErrMalformedFrame)
	}
	part, rest, err := parseDecimal(b[1:], '/')
	if err != nil {
		return Header{}, nil, err
	}
	total, rest, err := parseDecimal(rest, ':')
	if err != nil {
		return Header{}, nil, err
	}
	h := Header{Part: part, Total: total}
	if err := h.validate(); err != nil {
		return Header{}, nil, err
	}
	return h, rest, nil
}

// parseDecimal reads a canonical base-10 integer terminated by term.
func parseDecimal(b []byte, term byte) (int, []byte, error) {
	i := 0
	for i < len(b) && b[i] >= '0' && b[i] <= '9' {
		i++
	}
	switch {
	case i == 0:
		return 0, nil, fmt.Errorf("%w: expected digits", domain.ErrMalformedFrame)
	case i == len(b) || b[i] != term:
		return 0, nil, fmt.Errorf("%w: expected %q", domain.ErrMalformedFrame, term)
	case i > 1 && b[0] == '0':
		return 0, nil, fmt.Errorf("%w: leading zero", domain.ErrMalformedFrame)
	case i > 6:
		return 0, nil, fmt.Errorf("%w: number too long", domain.ErrMalformedFrame)
	}
	n, _ := strconv.Atoi(string(b[:i]))
	return n, b[i+1:], nil
}

func (h Header) validate() error {
	if h.Part < 1 || h.Total < 1 || h.Part > h.Total {
		return fmt.Errorf("%w: part %d of %d", domain.ErrMalformedFrame, h.Part, h.Total)
	}
	return nil
}
