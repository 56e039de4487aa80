package native

import (
	"fmt"
	"sync"
)

// Library is an open shared library handle
type Library struct {
	handle uintptr
	path   string

	closeOnce sync.Once
	closeErr  error
}

// Path returns the name or path the library was opened with
func (l *Library) Path() string { return l.path }

// Symbol resolves an exported symbol
func (l *Library) Symbol(name string) (uintptr, error) {
	addr, err := lookupSymbol(l.handle, name)
	if err != nil {
		return 0, fmt.Errorf("symbol %s not found in %s: %w", name, l.path, err)
	}
	if addr == 0 {
		return 0, fmt.Errorf("symbol %s resolved to nil in %s", name, l.path)
	}
	return addr, nil
}

// Close releases the handle. Later calls return the first result.
func (l *Library) Close() error {
	l.closeOnce.Do(func() {
		l.closeErr = closeLibrary(l.handle)
	})
	return l.closeErr
}
