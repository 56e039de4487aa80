package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/pqc-diagnostics/internal/pkg/config"
	"github.com/MGTheTrain/pqc-diagnostics/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// Flag names shared by several commands
const (
	FlagConfig  = "config"
	FlagLibrary = "library"
	FlagDir     = "dir"
	FlagFormat  = "format"
	FlagBackend = "backend"
	FlagAll     = "all"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// loadConfig reads the configuration file named by --config (or PQC_DIAG_CONFIG) and
// applies the library flags the user set explicitly on cmd.
func loadConfig(cmd *cobra.Command) (*config.CLIConfig, error) {
	configPath, _ := cmd.Flags().GetString(FlagConfig)
	if configPath == "" {
		configPath = os.Getenv(config.EnvConfigPath)
	}

	cfg, err := config.InitializeCLIConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	overrides := []struct {
		flag  string
		field *string
	}{
		{FlagLibrary, &cfg.Library.Path},
		{FlagDir, &cfg.Library.Dir},
		{FlagBackend, &cfg.Library.Backend},
	}
	for _, o := range overrides {
		if cmd.Flags().Lookup(o.flag) == nil || !cmd.Flags().Changed(o.flag) {
			continue
		}
		value, err := cmd.Flags().GetString(o.flag)
		if err != nil {
			return nil, fmt.Errorf("invalid %s flag: %w", o.flag, err)
		}
		*o.field = value
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveLibraryPath joins a relative library path with the configured directory,
// falling back to defaultDir when none is configured.
func resolveLibraryPath(settings config.LibrarySettings, defaultDir func() (string, error)) (string, error) {
	if filepath.IsAbs(settings.Path) {
		return settings.Path, nil
	}

	dir := settings.Dir
	if dir == "" {
		d, err := defaultDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine library directory: %w", err)
		}
		dir = d
	}

	abs, err := filepath.Abs(filepath.Join(dir, settings.Path))
	if err != nil {
		return "", fmt.Errorf("failed to resolve library path: %w", err)
	}
	return abs, nil
}

// executableDir is the directory holding the running binary, with symlinks resolved
func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

func outputFormat(cmd *cobra.Command) (string, error) {
	format, err := cmd.Flags().GetString(FlagFormat)
	if err != nil {
		return "", fmt.Errorf("invalid %s flag: %w", FlagFormat, err)
	}
	switch format {
	case FormatText, FormatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (must be %q or %q)", format, FormatText, FormatJSON)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func addLibraryFlags(cmd *cobra.Command) {
	cmd.Flags().String(FlagLibrary, "", "Library file name or path (default: liboqs for this platform)")
	cmd.Flags().String(FlagDir, "", "Directory a relative library path is resolved against")
}
