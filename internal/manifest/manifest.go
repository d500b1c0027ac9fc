// Package manifest describes one encoded sequence: how the payload was cut,
// at which error-correction level, and which parts failed to encode.
package manifest

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/bft-labs/qrship/pkg/chunk"
	"github.com/bft-labs/qrship/pkg/qrship"
)

// Manifest is the per-run description of a symbol sequence.
type Manifest struct {
	// BatchID is the encode call's identifier, as logged.
	BatchID string `json:"batch_id" yaml:"batch_id" toml:"batch_id"`

	PayloadBytes int    `json:"payload_bytes" yaml:"payload_bytes" toml:"payload_bytes"`
	ChunkLen     int    `json:"chunk_len" yaml:"chunk_len" toml:"chunk_len"`
	ECC          string `json:"ecc" yaml:"ecc" toml:"ecc"`
	Framing      string `json:"framing" yaml:"framing" toml:"framing"`
	TotalParts   int    `json:"total_parts" yaml:"total_parts" toml:"total_parts"`

	// Scannable is false when any part is missing from the sequence.
	Scannable bool `json:"scannable" yaml:"scannable" toml:"scannable"`

	// Failed lists sentinel part numbers.
	Failed []int `json:"failed,omitempty" yaml:"failed,omitempty" toml:"failed,omitempty"`

	Parts []Part `json:"parts" yaml:"parts" toml:"parts"`
}

// Part describes one symbol. Size is 0 for a part that failed to encode.
type Part struct {
	Part  int  `json:"part" yaml:"part" toml:"part"`
	Total int  `json:"total" yaml:"total" toml:"total"`
	Size  int  `json:"size" yaml:"size" toml:"size"`
	OK    bool `json:"ok" yaml:"ok" toml:"ok"`
}

// Build assembles the manifest for symbols produced under cfg.
func Build(batchID string, cfg qrship.Config, symbols []*qrship.Symbol, payloadLen int) Manifest {
	cfg.SetDefaults()
	limits := chunk.Limits{
		MaxChunkLen:  cfg.MaxChunkLen,
		MaxTotalSize: cfg.MaxTotalSize,
		MaxParts:     cfg.MaxParts,
	}

	m := Manifest{
		BatchID:      batchID,
		PayloadBytes: payloadLen,
		ChunkLen:     limits.EffectiveChunkLen(),
		ECC:          cfg.ECC.String(),
		Framing:      cfg.Framing.String(),
		TotalParts:   len(symbols),
		Scannable:    qrship.Scannable(symbols),
		Failed:       qrship.Failed(symbols),
		Parts:        make([]Part, 0, len(symbols)),
	}
	for _, s := range symbols {
		m.Parts = append(m.Parts, Part{
			Part:  s.Part(),
			Total: s.TotalParts(),
			Size:  s.Size(),
			OK:    !s.IsSentinel(),
		})
	}
	return m
}

// Format is an output encoding for Write.
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
	TOML Format = "toml"
)

// ParseFormat accepts yaml (also yml), json or toml. Empty means yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	case "toml":
		return TOML, nil
	default:
		return "", fmt.Errorf("unknown manifest format %q (want yaml, json or toml)", s)
	}
}

// Write encodes m to w in format f.
func Write(w io.Writer, m Manifest, f Format) error {
	switch f {
	case YAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("encode yaml manifest: %w", err)
		}
		return enc.Close()
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("encode json manifest: %w", err)
		}
		return nil
	case TOML:
		if err := toml.NewEncoder(w).Encode(m); err != nil {
			return fmt.Errorf("encode toml manifest: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown manifest format %q", string(f))
	}
}
