package qrcode

import (
	"bytes"
	"errors"
	"testing"

	goqr "github.com/skip2/go-qrcode"

	"github.com/bft-labs/qrship/internal/domain"
	"github.com/bft-labs/qrship/internal/ports"
)

var _ ports.SymbolEncoder = (*Encoder)(nil)

func TestEncode_Version1(t *testing.T) {
	modules, size, err := NewEncoder().Encode([]byte("hello"), domain.ECCQuartile)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if size != 21 {
		t.Errorf("size = %d, want 21", size)
	}
	if len(modules) != size {
		t.Fatalf("rows = %d, want %d", len(modules), size)
	}
	for y, row := range modules {
		if len(row) != size {
			t.Errorf("row %d has %d modules, want %d", y, len(row), size)
		}
	}

	// Finder pattern corners are dark when the border is disabled.
	for _, p := range [][2]int{{0, 0}, {size - 1, 0}, {0, size - 1}} {
		if !modules[p[1]][p[0]] {
			t.Errorf("module (%d,%d) = false, want finder pattern", p[0], p[1])
		}
	}
}

func TestEncode_Deterministic(t *testing.T) {
	data := []byte("P1/2:\x00\x01\x02\xff binary payload")
	enc := NewEncoder()

	a, _, err := enc.Encode(data, domain.ECCHigh)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	b, _, err := enc.Encode(data, domain.ECCHigh)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("sizes differ: %d vs %d", len(a), len(b))
	}
	for y := range a {
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				t.Fatalf("module (%d,%d) differs between runs", x, y)
			}
		}
	}
}

func TestEncode_HigherLevelNeverSmaller(t *testing.T) {
	data := bytes.Repeat([]byte{0xAB}, 100)
	enc := NewEncoder()

	prev := 0
	for _, level := range []domain.ECCLevel{domain.ECCLow, domain.ECCMedium, domain.ECCQuartile, domain.ECCHigh} {
		_, size, err := enc.Encode(data, level)
		if err != nil {
			t.Fatalf("Encode(%s) error = %v", level, err)
		}
		if size < prev {
			t.Errorf("size at %s = %d, smaller than %d", level, size, prev)
		}
		prev = size
	}
}

func TestEncode_TooLong(t *testing.T) {
	_, size, err := NewEncoder().Encode(bytes.Repeat([]byte{0x5A}, 4000), domain.ECCHigh)
	if err == nil {
		t.Fatal("Encode() error = nil, want capacity error")
	}
	if size != 0 {
		t.Errorf("size = %d, want 0", size)
	}
}

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		in   domain.ECCLevel
		want goqr.RecoveryLevel
	}{
		{domain.ECCLow, goqr.Low},
		{domain.ECCMedium, goqr.Medium},
		{domain.ECCQuartile, goqr.High},
		{domain.ECCHigh, goqr.Highest},
	}
	for _, tt := range tests {
		got, err := recoveryLevel(tt.in)
		if err != nil {
			t.Fatalf("recoveryLevel(%s) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("recoveryLevel(%s) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := recoveryLevel(domain.ECCLevel(9)); !errors.Is(err, domain.ErrInvalidConfig) {
		t.Errorf("recoveryLevel(9) error = %v, want ErrInvalidConfig", err)
	}
}
