package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/bft-labs/qrship/internal/cliconfig"
	"github.com/bft-labs/qrship/internal/manifest"
	"github.com/bft-labs/qrship/pkg/log"
	"github.com/bft-labs/qrship/pkg/qrship"
)

func newPlanCmd(cfg *cliconfig.Config, load loadFunc) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "plan [FILE|-]",
		Short: "Print the part manifest without rendering",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := load(cmd, args); err != nil {
				return err
			}
			f, err := manifest.ParseFormat(format)
			if err != nil {
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

			b, err := enc.EncodeBatch(payload)
			if err != nil && !errors.Is(err, qrship.ErrNoScannableSymbols) {
				return err
			}
			if err != nil {
				logger.Warn("no part could be encoded", log.String("batch", b.ID))
			}

			m := manifest.Build(b.ID, enc.Config(), b.Symbols, b.PayloadLen)
			return manifest.Write(cmd.OutOrStdout(), m, f)
		},
	}
	addPayloadFlags(cmd, cfg)
	cmd.Flags().StringVar(&format, "format", string(manifest.YAML), "output format: yaml, json, toml")
	return cmd
}
