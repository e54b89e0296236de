package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/benchstats/internal/buildinfo"
	"github.com/aalvaropc/benchstats/internal/domain"
	"github.com/aalvaropc/benchstats/internal/infra/config"
	"github.com/aalvaropc/benchstats/internal/infra/logger"
	"github.com/aalvaropc/benchstats/internal/infra/logsource"
	"github.com/aalvaropc/benchstats/internal/ports"
	"github.com/aalvaropc/benchstats/internal/usecase"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func Execute() {
	os.Exit(Run(os.Args[0], os.Args[1:], os.Stdout, os.Stderr))
}

// Run executes create-stats with args and returns the process exit code.
func Run(prog string, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(prog, deps{
		source:  logsource.NewFileSource(),
		configs: config.NewLoader(),
	})
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(context.Background())
	if err == nil && helpRequested(cmd) {
		err = &domain.OpError{Op: "cli.parse_flags", Kind: domain.KindUsage, Err: domain.ErrUsage}
	}
	switch {
	case err == nil:
		return exitOK
	case domain.IsKind(err, domain.KindUsage):
		fmt.Fprintf(stdout, "Usage: %s [-i inputfile]\n", prog)
		return exitUsage
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
}

func helpRequested(cmd *cobra.Command) bool {
	f := cmd.Flags().Lookup("help")
	return f != nil && f.Changed
}

type deps struct {
	source  ports.LogSource
	configs ports.ConfigLoader
}

func newRootCmd(prog string, d deps) *cobra.Command {
	var input string
	var configPath string
	var logFile string
	var debug bool

	cmd := &cobra.Command{
		Use:           filepath.Base(prog) + " [-i inputfile]",
		Short:         "Extract mean compression stats from a benchmark log for spreadsheets",
		Version:       buildinfo.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cleanup, err := logger.Setup(logger.Config{Path: logFile, Debug: debug})
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()

			cfg := domain.DefaultConfig()
			if configPath != "" {
				cfg, err = d.configs.LoadConfig(configPath)
				if err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("input") {
				cfg.Input = input
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Input file name set to: %s\n", cfg.Input)

			uc := usecase.NewCreateStats(d.source, cfg, usecase.WithLogger(logger.L()))
			_, err = uc.Execute(cmd.Context(), cfg.Input, out)
			return err
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &domain.OpError{
			Op:   "cli.parse_flags",
			Kind: domain.KindUsage,
			Err:  fmt.Errorf("%v: %w", err, domain.ErrUsage),
		}
	})
	cmd.SetVersionTemplate(buildinfo.String() + "\n")
	// --help only yields the one-line usage; Run reports it once cobra returns.
	cmd.SetHelpFunc(func(*cobra.Command, []string) {})

	// Declared without shorthands so cobra does not add -h or -v.
	cmd.Flags().Bool("help", false, "")
	cmd.Flags().Bool("version", false, "Print version information")
	_ = cmd.Flags().MarkHidden("help")

	cmd.Flags().StringVarP(&input, "input", "i", domain.DefaultInput, "Benchmark log to read")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config with input, decimal separator and marker rules (optional)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Write JSON logs to this file (optional)")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable verbose logging to --log-file")
	return cmd
}
