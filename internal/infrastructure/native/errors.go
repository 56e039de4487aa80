package native

import "fmt"

// LoadError reports a failed attempt to load a shared library
type LoadError struct {
	// Op is the loader operation, e.g. open or open-from-search-path
	Op     string
	Target string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
