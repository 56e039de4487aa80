package validators

import (
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SharedLibraryValidation validates that the field names a shared library file (.so, .so.N, .dll or .dylib).
func SharedLibraryValidation(fl validator.FieldLevel) bool {
	return IsSharedLibraryName(fl.Field().String())
}

// IsSharedLibraryName reports whether the base name of path carries a shared library extension.
func IsSharedLibraryName(path string) bool {
	base := strings.ToLower(filepath.Base(path))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return false
	}

	switch {
	case strings.HasSuffix(base, ".dll"), strings.HasSuffix(base, ".dylib"), strings.HasSuffix(base, ".so"):
		return true
	case strings.Contains(base, ".so."):
		// versioned sonames such as liboqs.so.5
		return true
	default:
		return false
	}
}
