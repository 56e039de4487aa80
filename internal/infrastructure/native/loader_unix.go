//go:build darwin || freebsd || linux || netbsd

package native

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ebitengine/purego"
)

func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func lookupSymbol(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func closeLibrary(handle uintptr) error {
	if handle == 0 {
		return nil
	}
	return purego.Dlclose(handle)
}

// The dynamic linker reads its search variable once at process start, so a directory
// registered later is only honoured through openFromDirectories.
func addLoaderDirectory(_ string) error {
	return nil
}

func openFromDirectories(name string, dirs []string) (uintptr, string, error) {
	if strings.ContainsRune(name, os.PathSeparator) {
		handle, err := openLibrary(name)
		return handle, name, err
	}

	for _, dir := range dirs {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		handle, err := openLibrary(candidate)
		return handle, candidate, err
	}

	// fall back to the system search order (ld.so.cache, rpath, default dirs)
	handle, err := openLibrary(name)
	return handle, name, err
}
