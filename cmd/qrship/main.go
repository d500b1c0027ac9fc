package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/qrship/internal/cliconfig"
	"github.com/bft-labs/qrship/pkg/log"
)

const helpDescription = `
Move a signed transaction off an air-gapped machine through the screen.

qrship splits the payload into a numbered sequence of QR codes and draws
them as terminal text. A phone or hardware wallet scans every part, in any
order, and joins them back together.

Highlights:
  - Payloads up to 100 bytes fit one code; larger ones are split and each
    part carries a P<part>/<total>: header (or a 4-byte binary header).
  - Three renderings: robust (2 chars per module), compact, and half-block.
  - A part that cannot be encoded is shown as a failed placeholder, never
    silently dropped.
  - Configure via ~/.qrship/config.toml, QRSHIP_* environment variables,
    or flags.
`

var exampleUsage = strings.TrimSpace(`
  qrship encode --hex 0x02f87201...
  qrship encode signed.hex --variant halfblock
  cat signed.hex | qrship plan - --format json
  qrship view signed.hex --watch --interval 3s
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "qrship",
		Short:         "Show a payload as a sequence of scannable terminal QR codes",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.qrship/config.toml)")
	pf.IntVar(&cfg.MaxChunkLen, "max-chunk", cfg.MaxChunkLen, "payload bytes per QR code (minimum 10)")
	pf.IntVar(&cfg.MaxTotalSize, "max-total-size", cfg.MaxTotalSize, "reject payloads larger than this many bytes")
	pf.IntVar(&cfg.MaxParts, "max-parts", cfg.MaxParts, "reject payloads needing more QR codes than this")
	pf.StringVar(&cfg.ECC, "ecc", cfg.ECC, "error correction level: low, medium, quartile, high (or L/M/Q/H)")
	pf.StringVar(&cfg.Framing, "framing", cfg.Framing, "part header format: text or binary")
	pf.IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "chunks encoded in parallel")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	if err := pf.MarkHidden("max-total-size"); err != nil {
		fmt.Fprintf(os.Stderr, "failed to hide max-total-size flag: %v\n", err)
	}

	// load resolves the configuration for a subcommand: defaults, then the
	// config file, then QRSHIP_* variables, then explicitly set flags.
	load := func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			cfg.Input = args[0]
		}

		cfgFile := cfgPath
		if cfgFile == "" {
			cfgFile = cliconfig.DefaultConfigPath()
		}

		changed := map[string]bool{}
		cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

		if cfgFile != "" && cliconfig.FileExists(cfgFile) {
			fc, err := cliconfig.LoadFileConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
				return err
			}
		}

		if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
			return err
		}

		return cfg.Validate()
	}

	root.AddCommand(
		newEncodeCmd(&cfg, load),
		newPlanCmd(&cfg, load),
		newViewCmd(&cfg, load),
	)

	if err := root.Execute(); err != nil {
		logger, lerr := log.NewConsole(os.Stderr, cfg.LogLevel)
		if lerr != nil {
			logger, _ = log.NewConsole(os.Stderr, "info")
		}
		logger.Error("qrship", log.Err(err))
		os.Exit(1)
	}
}

type loadFunc func(cmd *cobra.Command, args []string) error

// addPayloadFlags registers the flags naming the payload source.
func addPayloadFlags(cmd *cobra.Command, cfg *cliconfig.Config) {
	cmd.Flags().StringVar(&cfg.Hex, "hex", "", "hex payload (optional 0x prefix)")
	cmd.Flags().BoolVar(&cfg.Raw, "raw", cfg.Raw, "treat the input file bytes as the payload instead of hex text")
}
