package commands

import (
	"errors"
	"io"

	"fibtest/internal/cli"
	"fibtest/internal/config"
	"fibtest/internal/discovery"
	"fibtest/internal/execution"
	"fibtest/internal/parser"
	"fibtest/internal/storage"
	"fibtest/internal/suite"
	"fibtest/internal/ui"

	"github.com/spf13/cobra"
)

// ErrTestsFailed is returned by run in strict mode when any test failed
var ErrTestsFailed = errors.New("tests failed")

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
	Version  *VersionCommand

	closers []io.Closer
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, registry *suite.Registry, version string) (*Commands, error) {
	filter := discovery.NewFilter()
	runner := execution.NewRunner()
	scheduler := execution.NewRoundRobinScheduler()
	executor := execution.NewWorkerPool(cfg, runner, scheduler)
	failureParser := parser.NewFailureParser()

	var closers []io.Closer
	var st storage.Storage = storage.NewJSONStorage(cfg)
	if cfg.MySQLDSN != "" {
		mysqlStorage, err := storage.NewMySQLStorage(cfg.MySQLDSN)
		if err != nil {
			return nil, err
		}
		closers = append(closers, mysqlStorage)
		st = storage.NewMultiStorage(st, mysqlStorage)
	}
	viewer := ui.NewFailureViewer(st)

	return &Commands{
		Run:      NewRunCommand(cfg, registry, filter, executor, failureParser, st, viewer),
		List:     NewListCommand(cfg, registry, filter, st),
		Failures: NewFailuresCommand(st, viewer),
		Version:  NewVersionCommand(version),
		closers:  closers,
	}, nil
}

// Close releases resources held by the commands
func (c *Commands) Close() error {
	var errs []error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// bindRunFlags registers the run flags on cmd
func bindRunFlags(cmd *cobra.Command, flags *cli.Flags) {
	cmd.Flags().IntVarP(&flags.Processors, "processors", "p", 0, "Number of workers to use (default from config, 1 runs tests sequentially)")
	cmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by name pattern (supports wildcards, e.g., 'fib*' or '*cache*')")
	cmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop on first test failure")
	cmd.Flags().BoolVar(&flags.OnlyFailed, "failed", false, "Run only tests that failed in the last run")
	cmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar on stderr")
	cmd.Flags().BoolVar(&flags.Summary, "summary", false, "Print a statistics table on stderr after the run")
	cmd.Flags().BoolVar(&flags.Strict, "strict", false, "Exit with status 1 when any test fails")
	cmd.Flags().BoolVar(&flags.OpenFailures, "open-failures", false, "Open the failures viewer when the run finishes with failures")
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.ApplyFlags(flags.ToConfigFlags())
		return nil
	}

	// Running the binary without a subcommand runs every test
	rootCmd.RunE = c.Run.Execute
	rootCmd.PreRunE = applyFlags
	rootCmd.Args = cobra.NoArgs
	bindRunFlags(rootCmd, flags)

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run registered tests",
		Long:    "Execute every registered test in registration order and print one result line per test",
		Args:    cobra.NoArgs,
		RunE:    c.Run.Execute,
		PreRunE: applyFlags,
	}
	bindRunFlags(runCmd, flags)
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List registered tests",
		Long:    "List registered tests in execution order without running them",
		Args:    cobra.NoArgs,
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by name pattern (supports wildcards)")
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View test failures interactively",
		Long:  "Display test failures from the last test run in an interactive viewer",
		Args:  cobra.NoArgs,
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)

	// Version command
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE:  c.Version.Execute,
	}
	rootCmd.AddCommand(versionCmd)
}
