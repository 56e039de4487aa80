package commands

import (
	"fmt"
	"os"

	"github.com/MGTheTrain/pqc-diagnostics/internal/app"
	"github.com/MGTheTrain/pqc-diagnostics/internal/infrastructure/native"

	"github.com/spf13/cobra"
)

// LoadCommandsHandler handles the loader diagnostics command
type LoadCommandsHandler struct{}

// NewLoadCommandsHandler initializes a new LoadCommandsHandler
func NewLoadCommandsHandler() *LoadCommandsHandler {
	return &LoadCommandsHandler{}
}

// DebugLoadCmd checks that the library exists and walks the load strategies.
// Load failures are reported on stdout and never turn into a command error.
func (h *LoadCommandsHandler) DebugLoadCmd(cmd *cobra.Command, _ []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := setupLogger(&cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}

	path, err := resolveLibraryPath(cfg.Library, os.Getwd)
	if err != nil {
		return err
	}
	log.Debug("debugging load of ", path)

	service, err := app.NewLoadDiagnosticsService(native.NewLoader(log), log)
	if err != nil {
		return fmt.Errorf("failed to create load diagnostics service: %w", err)
	}

	out := cmd.OutOrStdout()
	if format == FormatJSON {
		report := service.Run(path, app.NewReporter(cmd.ErrOrStderr()))
		return writeJSON(out, report)
	}

	service.Run(path, app.NewReporter(out))
	return nil
}

// InitLoadCommands registers the loader diagnostics command
func InitLoadCommands(rootCmd *cobra.Command) error {
	handler := NewLoadCommandsHandler()

	debugLoadCmd := &cobra.Command{
		Use:   "debug-load",
		Short: "Diagnose why the liboqs shared library fails to load",
		Long: `Checks that the liboqs shared library exists, reports its size, attempts a direct load
and, if that fails, registers the library's directory as a trusted search location and retries.
The library is looked up in the current working directory unless --dir or --library says otherwise.`,
		Args: cobra.NoArgs,
		RunE: handler.DebugLoadCmd,
	}
	addLibraryFlags(debugLoadCmd)
	debugLoadCmd.Flags().String(FlagFormat, FormatText, "Output format: text or json")
	rootCmd.AddCommand(debugLoadCmd)

	return nil
}
