package config

import (
	"fmt"
	"runtime"

	"github.com/MGTheTrain/pqc-diagnostics/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// Binding backend constants
const (
	BackendLibOQS = "liboqs"
	BackendCircl  = "circl"
)

// LibrarySettings describes where the liboqs shared library lives and which binding enumerates algorithms
type LibrarySettings struct {
	// Path is a bare file name or a path. Relative paths are resolved against Dir.
	Path string `yaml:"path" validate:"required,sharedlib"`
	// Dir is empty when each command should pick its own default directory.
	Dir     string `yaml:"dir"`
	Backend string `yaml:"backend" validate:"required,oneof=liboqs circl"`
}

// Validate checks that all fields in LibrarySettings are valid
func (s *LibrarySettings) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("sharedlib", validators.SharedLibraryValidation); err != nil {
		return fmt.Errorf("failed to register sharedlib validation: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for LibrarySettings: %w", err)
	}

	return nil
}

// LibraryFileName returns the conventional liboqs file name for the given GOOS value.
func LibraryFileName(goos string) string {
	switch goos {
	case "windows":
		return "liboqs.dll"
	case "darwin", "ios":
		return "liboqs.dylib"
	default:
		return "liboqs.so"
	}
}

// DefaultLibrarySettings returns settings pointing at liboqs for the running platform.
func DefaultLibrarySettings() LibrarySettings {
	return LibrarySettings{
		Path:    LibraryFileName(runtime.GOOS),
		Backend: BackendLibOQS,
	}
}
