//go:build !(darwin || freebsd || linux || netbsd || windows)

package native

import "errors"

var errUnsupported = errors.New("dynamic library loading is not supported on this platform")

func openLibrary(_ string) (uintptr, error) {
	return 0, errUnsupported
}

func lookupSymbol(_ uintptr, _ string) (uintptr, error) {
	return 0, errUnsupported
}

func closeLibrary(_ uintptr) error {
	return nil
}

func addLoaderDirectory(_ string) error {
	return errUnsupported
}

func openFromDirectories(name string, _ []string) (uintptr, string, error) {
	return 0, name, errUnsupported
}
