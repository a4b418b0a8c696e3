package commands

import (
	"fmt"
	"time"

	"fibtest/internal/config"
	"fibtest/internal/discovery"
	"fibtest/internal/domain"
	"fibtest/internal/execution"
	"fibtest/internal/parser"
	"fibtest/internal/storage"
	"fibtest/internal/suite"
	"fibtest/internal/ui"

	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config   *config.Config
	registry *suite.Registry
	filter   *discovery.Filter
	executor *execution.WorkerPool
	parser   parser.Parser
	storage  storage.Storage
	viewer   ui.Viewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	registry *suite.Registry,
	filter *discovery.Filter,
	executor *execution.WorkerPool,
	p parser.Parser,
	st storage.Storage,
	viewer ui.Viewer,
) *RunCommand {
	return &RunCommand{
		config:   cfg,
		registry: registry,
		filter:   filter,
		executor: executor,
		parser:   p,
		storage:  st,
		viewer:   viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	formatter := ui.NewFormatter(cmd.OutOrStdout(), cmd.ErrOrStderr())
	flags := rc.config.Flags

	names := rc.registry.Names()
	if flags.OnlyFailed {
		last, err := rc.storage.Load()
		if err != nil {
			return fmt.Errorf("load previous results: %w", err)
		}
		names = keepNames(names, last.FailedNames())
	}
	names = rc.filter.FilterByName(names, flags.NameFilter)
	cases := rc.registry.Select(names)

	if len(cases) == 0 {
		formatter.Warn("No tests to execute")
		return nil
	}

	if flags.Progress {
		rc.executor.SetProgress(ui.NewProgressBar(len(cases), cmd.ErrOrStderr()))
	} else {
		rc.executor.SetProgress(nil)
	}

	results, duration, err := rc.executor.ExecuteWithOptions(cmd.Context(), cases, flags.FailFast)
	if err != nil {
		return err
	}

	formatter.PrintResults(results)

	var failures []domain.TestFailure
	for _, result := range results {
		if !result.Success {
			failures = append(failures, rc.parser.ParseFailure(result)...)
		}
	}

	// Only strict mode lets a storage problem change the exit status.
	saved := true
	if err := rc.storage.Save(results, failures, duration, rc.config.Processors); err != nil {
		if flags.Strict {
			return fmt.Errorf("failed to save test results: %w", err)
		}
		formatter.Warn("Warning: failed to save test results: %v", err)
		saved = false
	}

	if flags.Summary {
		formatter.PrintMetaStats(storage.BuildOutput(results, failures, duration, rc.config.Processors, time.Now()))
	}

	if flags.OpenFailures && saved && len(failures) > 0 {
		last, err := rc.storage.Load()
		if err != nil {
			return fmt.Errorf("load results: %w", err)
		}
		if err := rc.viewer.View(last); err != nil {
			return err
		}
	}

	if flags.Strict && len(failures) > 0 {
		return ErrTestsFailed
	}
	return nil
}

// keepNames returns the names present in set, preserving order
func keepNames(names []string, set map[string]struct{}) []string {
	var kept []string
	for _, name := range names {
		if _, ok := set[name]; ok {
			kept = append(kept, name)
		}
	}
	return kept
}
