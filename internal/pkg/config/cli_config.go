package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment variable names read by the CLI
const (
	EnvConfigPath  = "PQC_DIAG_CONFIG"
	EnvLibraryPath = "PQC_DIAG_LIBRARY_PATH"
	EnvLibraryDir  = "PQC_DIAG_LIBRARY_DIR"
	EnvLogLevel    = "PQC_DIAG_LOG_LEVEL"
)

// CLIConfig is the complete configuration of pqc-diag-cli
type CLIConfig struct {
	Logger  LoggerSettings  `yaml:"logger"`
	Library LibrarySettings `yaml:"library"`
}

// DefaultCLIConfig returns the configuration used when no file and no environment overrides are present
func DefaultCLIConfig() *CLIConfig {
	return &CLIConfig{
		Logger: LoggerSettings{
			LogLevel: LogLevelWarning,
			LogType:  LogTypeConsole,
		},
		Library: DefaultLibrarySettings(),
	}
}

// Validate checks the logger and library sections
func (c *CLIConfig) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("invalid logger settings: %w", err)
	}
	if err := c.Library.Validate(); err != nil {
		return fmt.Errorf("invalid library settings: %w", err)
	}
	return nil
}

// InitializeCLIConfig builds the CLI configuration.
// Precedence, lowest first: defaults, the YAML file at configPath (skipped when empty), environment variables.
func InitializeCLIConfig(configPath string) (*CLIConfig, error) {
	cfg := DefaultCLIConfig()

	if configPath != "" {
		// #nosec G304 -- the config path is supplied by the operator
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *CLIConfig) {
	if v, ok := os.LookupEnv(EnvLibraryPath); ok && v != "" {
		cfg.Library.Path = v
	}
	if v, ok := os.LookupEnv(EnvLibraryDir); ok && v != "" {
		cfg.Library.Dir = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.Logger.LogLevel = v
	}
}
