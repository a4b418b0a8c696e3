package commands

import (
	"fibtest/internal/config"
	"fibtest/internal/discovery"
	"fibtest/internal/storage"
	"fibtest/internal/suite"
	"fibtest/internal/ui"

	"github.com/spf13/cobra"
)

// ListCommand handles the list command
type ListCommand struct {
	config   *config.Config
	registry *suite.Registry
	filter   *discovery.Filter
	storage  storage.Storage
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	registry *suite.Registry,
	filter *discovery.Filter,
	st storage.Storage,
) *ListCommand {
	return &ListCommand{
		config:   cfg,
		registry: registry,
		filter:   filter,
		storage:  st,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	formatter := ui.NewFormatter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	names := lc.filter.FilterByName(lc.registry.Names(), lc.config.Flags.NameFilter)
	if len(names) == 0 {
		formatter.Warn("No tests found")
		return nil
	}

	// Mark tests that failed last time; a missing results file just means no marks.
	var failed map[string]struct{}
	if last, err := lc.storage.Load(); err == nil {
		failed = last.FailedNames()
	}

	formatter.PrintTestList(names, failed)
	return nil
}
