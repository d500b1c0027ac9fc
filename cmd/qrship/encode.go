package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bft-labs/qrship/internal/cliconfig"
	"github.com/bft-labs/qrship/pkg/log"
	"github.com/bft-labs/qrship/pkg/qrship"
	"github.com/bft-labs/qrship/pkg/render"
)

func newEncodeCmd(cfg *cliconfig.Config, load loadFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [FILE|-]",
		Short: "Print every part of the payload as a QR code",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := load(cmd, args); err != nil {
				return err
			}
			logger, err := cfg.Logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			enc, payload, err := prepare(cfg, cmd.InOrStdin(), logger)
			if err != nil {
				return err
			}

			symbols, encErr := enc.Encode(payload)
			if encErr != nil && !errors.Is(encErr, qrship.ErrNoScannableSymbols) {
				return encErr
			}

			width, height := terminalSize(os.Stdout)
			if err := printSequence(cmd.OutOrStdout(), symbols, cfg.Variant(), width, height); err != nil {
				return err
			}
			if encErr != nil {
				return encErr
			}
			if failed := qrship.Failed(symbols); len(failed) > 0 {
				return fmt.Errorf("%d of %d parts failed to encode: %v", len(failed), len(symbols), failed)
			}
			return nil
		},
	}
	addPayloadFlags(cmd, cfg)
	cmd.Flags().StringVar(&cfg.Render, "variant", cfg.Render, "rendering: auto, robust, compact, halfblock")
	return cmd
}

// prepare builds the encoder and reads the payload.
func prepare(cfg *cliconfig.Config, stdin io.Reader, logger log.Logger) (*qrship.Encoder, []byte, error) {
	lib, err := cfg.Library()
	if err != nil {
		return nil, nil, err
	}
	enc, err := qrship.New(lib, qrship.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	payload, err := cliconfig.ReadPayload(cfg, stdin)
	if err != nil {
		return nil, nil, err
	}
	return enc, payload, nil
}

// printSequence writes each part under a "Part i of N" heading. In Auto mode
// the variant is chosen per symbol to fit width x height; a zero size means
// the output is not a terminal.
func printSequence(w io.Writer, symbols []*qrship.Symbol, v render.Variant, width, height int) error {
	for _, s := range symbols {
		if _, err := fmt.Fprintf(w, "Part %d of %d\n", s.Part(), s.TotalParts()); err != nil {
			return err
		}
		if s.IsSentinel() {
			if _, err := fmt.Fprintf(w, "Failed to generate QR code for part %d\n\n", s.Part()); err != nil {
				return err
			}
			continue
		}
		variant := v
		if variant == render.Auto {
			variant = render.Select(width, height, s.Size())
		}
		if _, err := fmt.Fprintf(w, "%s\n", s.Render(variant)); err != nil {
			return err
		}
	}
	return nil
}

func terminalSize(f *os.File) (width, height int) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return 0, 0
	}
	return width, height
}
