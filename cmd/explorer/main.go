// Command explorer searches and counts the animal census from the command
// line:
//
//	explorer --filter=<pattern>
//	explorer --count
//
// Results are printed to stdout as JSON; errors are logged to stderr and the
// process exits with status 1.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"menagerie/internal/census"
	"menagerie/internal/census/explorer"
	"menagerie/internal/platform/config"
	"menagerie/internal/platform/logger"
	"menagerie/internal/platform/registry"
)

var exitFunc = os.Exit

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewWithWriter(os.Stderr, "info", "text").Error("Failed to start the application", "error", err)
		exitFunc(1)
		return
	}
	exitFunc(run(context.Background(), os.Args[1:], cfg, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, cfg config.Config, stdout, stderr io.Writer) int {
	code := 0
	cmd := newRootCmd(cfg, &code)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	// cobra falls back to os.Args when handed a nil slice.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		log := logger.NewWithWriter(stderr, cfg.LogLevel, cfg.LogFormat)
		log.ErrorContext(ctx, "Failed to start the application", "error", err)
		return 1
	}
	return code
}

// newRootCmd leaves flag parsing to the census command parser: only the
// first argument is significant and "--filter=a=b" must reach it verbatim.
func newRootCmd(cfg config.Config, exitCode *int) *cobra.Command {
	return &cobra.Command{
		Use:   "explorer (--filter=<pattern> | --count)",
		Short: "Search and count the animal census",
		Long: `explorer prints the census as JSON.

  --filter=<pattern>  keep only animals whose name contains pattern (case-insensitive)
  --count             append people and animal counts to country and person names

The dataset is read from MENAGERIE_DATASET (YAML or JSON) or the built-in sample.`,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			reg, err := bootstrap(cfg, log)
			if err != nil {
				return err
			}

			exp := explorer.New(
				registry.MustResolveAs[*census.Service](reg, registry.KeyCensusService),
				registry.MustResolveAs[explorer.CountrySource](reg, registry.KeyCountrySource),
				registry.MustResolveAs[*slog.Logger](reg, registry.KeyLogger),
				cmd.OutOrStdout(),
			)
			*exitCode = exp.Run(cmd.Context(), args)
			return nil
		},
	}
}

func bootstrap(cfg config.Config, log *slog.Logger) (*registry.Registry, error) {
	source, err := census.OpenStore(cfg.DatasetPath)
	if err != nil {
		return nil, err
	}

	reg := registry.New()
	reg.Register(registry.KeyLogger, log)
	reg.Register(registry.KeyCountrySource, source)
	reg.Register(registry.KeyCensusService, census.NewService(log, nil))
	return reg, nil
}
