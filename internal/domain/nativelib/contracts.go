package nativelib

// Library is an open handle to a dynamically loaded shared library
type Library interface {
	// Path returns the name or path the library was opened with
	Path() string
	// Symbol resolves an exported symbol to its address
	Symbol(name string) (uintptr, error)
	// Close releases the handle
	Close() error
}

// Loader opens shared libraries through the host operating system loader
type Loader interface {
	// Open loads the library at an explicit path
	Open(path string) (Library, error)
	// AddSearchDirectory registers dir as a trusted location for subsequent name-based loads
	AddSearchDirectory(dir string) error
	// OpenFromSearchPath loads a library by file name, consulting registered directories first
	OpenFromSearchPath(name string) (Library, error)
}
