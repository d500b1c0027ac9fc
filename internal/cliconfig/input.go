package cliconfig

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/bft-labs/qrship/pkg/hexcodec"
)

// StdinInput is the Input value that reads the payload from stdin.
const StdinInput = "-"

// ReadPayload loads the payload named by the configuration: the --hex value,
// the Input file, or stdin when Input is "-".
func ReadPayload(cfg *Config, stdin io.Reader) ([]byte, error) {
	if cfg.Hex != "" {
		return hexcodec.Decode(cfg.Hex)
	}

	var (
		b   []byte
		err error
	)
	switch cfg.Input {
	case "":
		return nil, fmt.Errorf("no payload: pass --hex, an input file, or - for stdin")
	case StdinInput:
		b, err = io.ReadAll(stdin)
	default:
		b, err = os.ReadFile(cfg.Input)
	}
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	return DecodePayload(b, cfg.Raw)
}

// DecodePayload interprets file contents. Raw contents are the payload as
// is; otherwise they are hex text and surrounding whitespace is ignored.
func DecodePayload(b []byte, raw bool) ([]byte, error) {
	if raw {
		return b, nil
	}
	return hexcodec.Decode(string(bytes.TrimSpace(b)))
}
