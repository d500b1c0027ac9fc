package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bft-labs/qrship/internal/cliconfig"
	"github.com/bft-labs/qrship/internal/viewer"
	"github.com/bft-labs/qrship/internal/watch"
	"github.com/bft-labs/qrship/pkg/log"
	"github.com/bft-labs/qrship/pkg/qrship"
)

func newViewCmd(cfg *cliconfig.Config, load loadFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [FILE|-]",
		Short: "Show the parts one at a time in an interactive viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := load(cmd, args); err != nil {
				return err
			}

			// The viewer owns the screen; errors are shown in it instead of logged.
			logger := log.NewNoopLogger()
			enc, payload, err := prepare(cfg, cmd.InOrStdin(), logger)
			if err != nil {
				return err
			}

			symbols, encErr := enc.Encode(payload)
			m := viewer.New(symbols, viewer.Config{
				Interval: cfg.AutoPlayInterval,
				Variant:  cfg.Variant(),
			})
			if encErr != nil {
				m.Update(viewer.ReloadMsg{Symbols: symbols, Err: encErr})
			}

			var opts []tea.ProgramOption
			if cfg.Input == cliconfig.StdinInput {
				// stdin held the payload; read keys from the terminal.
				opts = append(opts, tea.WithInputTTY())
			}
			p, done := viewer.Run(m, opts...)

			if cfg.Watch {
				ctx, cancel := context.WithCancel(cmd.Context())
				defer cancel()

				w := watch.New(cfg.Input, func(contents []byte) error {
					p.Send(reload(enc, contents, cfg.Raw))
					return nil
				}, watch.WithLogger(logger))

				go func() {
					if err := w.Run(ctx); err != nil {
						p.Send(viewer.ReloadMsg{Symbols: symbols, Err: err})
					}
				}()
			}

			return <-done
		},
	}
	addPayloadFlags(cmd, cfg)
	cmd.Flags().StringVar(&cfg.Render, "variant", cfg.Render, "rendering: auto, robust, compact, halfblock")
	cmd.Flags().DurationVar(&cfg.AutoPlayInterval, "interval", cfg.AutoPlayInterval, "auto-play time per part")
	cmd.Flags().BoolVar(&cfg.Watch, "watch", false, "re-encode when the input file changes")
	return cmd
}

// reload re-encodes changed file contents. An unreadable payload clears the
// display so a stale sequence is never scanned.
func reload(enc *qrship.Encoder, contents []byte, raw bool) viewer.ReloadMsg {
	payload, err := cliconfig.DecodePayload(contents, raw)
	if err != nil {
		return viewer.ReloadMsg{Err: err}
	}
	symbols, err := enc.Encode(payload)
	return viewer.ReloadMsg{Symbols: symbols, Err: err}
}
