package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// VersionCommand handles the version command
type VersionCommand struct {
	version string
}

// NewVersionCommand creates a new VersionCommand
func NewVersionCommand(version string) *VersionCommand {
	return &VersionCommand{version: version}
}

// Execute runs the command
func (vc *VersionCommand) Execute(cmd *cobra.Command, args []string) error {
	fmt.Fprintf(cmd.OutOrStdout(), "fibtest %s\n", vc.version)
	return nil
}
