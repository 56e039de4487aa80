// Package main is the entry point for the pqc-diag-cli application.
// It initializes the root command, registers the loader diagnostics and algorithm
// listing sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/MGTheTrain/pqc-diagnostics/cmd/pqc-diag-cli/internal/commands"
	"github.com/MGTheTrain/pqc-diagnostics/internal/pkg/config"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := newRootCmd()

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pqc-diag-cli",
		Short: "Diagnostics for the liboqs post-quantum cryptography library",
		Long: `pqc-diag-cli helps debug loading of the liboqs shared library and lists the
post-quantum KEM and signature mechanisms it exposes.

Configuration is read from the YAML file given by --config or ` + config.EnvConfigPath + `,
then overridden by the following environment variables:
- ` + config.EnvLibraryPath + `
- ` + config.EnvLibraryDir + `
- ` + config.EnvLogLevel,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String(commands.FlagConfig, "", "Path to a YAML configuration file")

	return rootCmd
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitLoadCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize load commands: %w", err)
	}

	if err := commands.InitAlgorithmCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize algorithm commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
