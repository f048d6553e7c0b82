// cmd/contract-probe/main.go
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"braindump-probe/internal/common/config"
	"braindump-probe/internal/common/logger"
	"braindump-probe/internal/runner"
)

type probeOptions struct {
	baseURL     string
	userID      string
	timeout     int
	checkHealth bool
	logLevel    string
}

type runFunc func(*runner.Runner, context.Context) (*runner.Report, error)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &probeOptions{}

	root := &cobra.Command{
		Use:   "contract-probe",
		Short: "Diagnostic probe for the brain-dump service contract",
		Long: `contract-probe exercises a remote brain-dump service and validates its
JSON responses against the note and reminder contracts. Checks run
sequentially; the first fatal failure aborts the run with a non-zero exit.
An unregistered test user short-circuits the run and reports the
registration link instead.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe(cmd, opts, (*runner.Runner).Run)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.baseURL, "base-url", "", "service base URL (overrides config)")
	pf.StringVar(&opts.userID, "user-id", "", "test subject identifier (overrides config)")
	pf.IntVar(&opts.timeout, "timeout", 0, "request timeout in milliseconds (overrides config)")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.Flags().BoolVar(&opts.checkHealth, "check-health", false, "ping /health before the contract checks")

	root.AddCommand(
		newCheckCmd(opts, "health", "Ping the /health endpoint only", (*runner.Runner).RunHealth),
		newCheckCmd(opts, "verify", "Run the user-verification check only", (*runner.Runner).RunVerify),
		newCheckCmd(opts, "note", "Run the note-contract check only", (*runner.Runner).RunNote),
		newCheckCmd(opts, "reminder", "Run the reminder-contract check only", (*runner.Runner).RunReminder),
	)

	return root
}

func newCheckCmd(opts *probeOptions, name, short string, fn runFunc) *cobra.Command {
	return &cobra.Command{
		Use:          name,
		Short:        short,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe(cmd, opts, fn)
		},
	}
}

func runProbe(cmd *cobra.Command, opts *probeOptions, fn runFunc) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyOverrides(cmd, opts, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	r := runner.New(cfg, log, cmd.OutOrStdout())
	_, err = fn(r, context.Background())
	return err
}

func applyOverrides(cmd *cobra.Command, opts *probeOptions, cfg *config.Config) {
	if opts.baseURL != "" {
		cfg.Service.BaseURL = opts.baseURL
	}
	if opts.userID != "" {
		cfg.Probe.UserID = opts.userID
	}
	if opts.timeout > 0 {
		cfg.Service.Timeout = opts.timeout
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if f := cmd.Flags().Lookup("check-health"); f != nil && f.Changed {
		cfg.Probe.CheckHealth = opts.checkHealth
	}
}
