package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"fibtest/internal/cli"
	"fibtest/internal/cli/commands"
	"fibtest/internal/config"
	"fibtest/internal/suite"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := &cobra.Command{
		Use:           "fibtest",
		Short:         "Fibonacci with a micro test runner",
		Long:          `Runs the registered test cases in order and prints one result line per test. Running without a subcommand runs every test.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Create config with defaults, then apply .env and environment overrides
	cfg := config.New()
	cfg.LoadEnv()

	var flags cli.Flags

	cmds, err := commands.NewCommands(cfg, suite.Default(), version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer cmds.Close()

	cmds.Register(rootCmd, &flags, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, commands.ErrTestsFailed) {
			return 1
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
