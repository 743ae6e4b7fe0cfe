package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/toolbelt"
	"github.com/aretw0/toolbelt/internal/config"
	"github.com/aretw0/toolbelt/internal/logging"
	loamAdapter "github.com/aretw0/toolbelt/pkg/adapters/loam"
	"github.com/aretw0/toolbelt/pkg/dates"
	"github.com/aretw0/toolbelt/pkg/ports"
	"github.com/spf13/cobra"
)

var (
	cfg    = config.Default()
	logger = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "toolbelt",
	Short: "Toolbelt exposes small scripting helpers as named tools",
	Long: `Toolbelt bundles array, timing, colour, numeric, object path, text and date helpers.
Every stateless helper can be called from the command line, over HTTP or through MCP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded

		level := logging.ParseLevel(cfg.LogLevel)
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			level = slog.LevelDebug
		}
		logger = logging.New(level)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Configuration file (YAML or JSON)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// newKit builds a kit from the loaded configuration.
func newKit(opts ...toolbelt.Option) (*toolbelt.Kit, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	base := []toolbelt.Option{
		toolbelt.WithLogger(logger),
		toolbelt.WithDates(dates.New(dates.WithLocation(loc))),
	}

	palettes, err := openPalettes()
	if err != nil {
		return nil, err
	}
	if palettes != nil {
		base = append(base, toolbelt.WithPalettes(palettes))
	}

	return toolbelt.New(append(base, opts...)...)
}

func openPalettes() (ports.PaletteSource, error) {
	if cfg.Palettes.Dir == "" {
		return nil, nil
	}
	src, err := loamAdapter.Open(cfg.Palettes.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open palettes in %s: %w", cfg.Palettes.Dir, err)
	}
	logger.Debug("palettes opened", "dir", cfg.Palettes.Dir)
	return src, nil
}
