package native

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/MGTheTrain/pqc-diagnostics/internal/domain/nativelib"
	"github.com/MGTheTrain/pqc-diagnostics/internal/pkg/logger"
)

// Loader operations reported in LoadError
const (
	OpOpen               = "open"
	OpOpenFromSearchPath = "open-from-search-path"
	OpAddSearchDirectory = "add-search-directory"
)

// loader implements nativelib.Loader on top of the platform primitives
type loader struct {
	mu     sync.Mutex
	dirs   []string
	logger logger.Logger
}

// NewLoader creates a loader with no registered search directories
func NewLoader(logger logger.Logger) nativelib.Loader {
	return &loader{logger: logger}
}

// Open loads the library at an explicit path
func (l *loader) Open(path string) (nativelib.Library, error) {
	l.logger.Debug("opening library ", path)

	handle, err := openLibrary(path)
	if err != nil {
		return nil, &LoadError{Op: OpOpen, Target: path, Err: err}
	}
	return &Library{handle: handle, path: path}, nil
}

// AddSearchDirectory registers dir with the host loader and the search-path environment variable
func (l *loader) AddSearchDirectory(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return &LoadError{Op: OpAddSearchDirectory, Target: dir, Err: err}
	}

	info, err := os.Stat(abs)
	if err != nil {
		return &LoadError{Op: OpAddSearchDirectory, Target: abs, Err: err}
	}
	if !info.IsDir() {
		return &LoadError{Op: OpAddSearchDirectory, Target: abs, Err: fmt.Errorf("not a directory")}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, d := range l.dirs {
		if samePath(d, abs) {
			return nil
		}
	}

	if err := addLoaderDirectory(abs); err != nil {
		return &LoadError{Op: OpAddSearchDirectory, Target: abs, Err: err}
	}
	if err := PrependSearchPath(abs); err != nil {
		return &LoadError{Op: OpAddSearchDirectory, Target: abs, Err: fmt.Errorf("failed to update %s: %w", SearchPathEnvVar(runtime.GOOS), err)}
	}

	l.dirs = append(l.dirs, abs)
	l.logger.Debug("registered search directory ", abs)
	return nil
}

// OpenFromSearchPath loads a library by name, consulting the most recently registered directories first
func (l *loader) OpenFromSearchPath(name string) (nativelib.Library, error) {
	l.mu.Lock()
	dirs := make([]string, len(l.dirs))
	for i, d := range l.dirs {
		dirs[len(l.dirs)-1-i] = d
	}
	l.mu.Unlock()

	handle, resolved, err := openFromDirectories(name, dirs)
	if err != nil {
		return nil, &LoadError{Op: OpOpenFromSearchPath, Target: name, Err: err}
	}
	l.logger.Debug("opened ", name, " as ", resolved)
	return &Library{handle: handle, path: resolved}, nil
}
