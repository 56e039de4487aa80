//go:build windows

package native

import (
	"fmt"
	"path/filepath"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32            = windows.NewLazySystemDLL("kernel32.dll")
	procAddDllDirectory = kernel32.NewProc("AddDllDirectory")
)

// Absolute paths are loaded with the restricted search order, so dependencies must sit next
// to the DLL or in a registered directory. This mirrors how most language runtimes load DLLs.
func openLibrary(path string) (uintptr, error) {
	var (
		h   windows.Handle
		err error
	)
	if filepath.IsAbs(path) {
		h, err = windows.LoadLibraryEx(path, 0, windows.LOAD_LIBRARY_SEARCH_DLL_LOAD_DIR|windows.LOAD_LIBRARY_SEARCH_DEFAULT_DIRS)
	} else {
		h, err = windows.LoadLibrary(path)
	}
	if err != nil {
		return 0, err
	}
	return uintptr(h), nil
}

func lookupSymbol(handle uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), name)
}

func closeLibrary(handle uintptr) error {
	if handle == 0 {
		return nil
	}
	return windows.FreeLibrary(windows.Handle(handle))
}

func addLoaderDirectory(dir string) error {
	if err := procAddDllDirectory.Find(); err != nil {
		return fmt.Errorf("AddDllDirectory unavailable: %w", err)
	}

	p, err := windows.UTF16PtrFromString(dir)
	if err != nil {
		return err
	}

	cookie, _, callErr := procAddDllDirectory.Call(uintptr(unsafe.Pointer(p)))
	if cookie == 0 {
		return fmt.Errorf("AddDllDirectory(%s): %w", dir, callErr)
	}
	return nil
}

// Registered directories live inside the process loader state, so the default
// search order already covers them.
func openFromDirectories(name string, _ []string) (uintptr, string, error) {
	h, err := windows.LoadLibraryEx(name, 0, windows.LOAD_LIBRARY_SEARCH_DEFAULT_DIRS)
	if err != nil {
		return 0, name, err
	}
	return uintptr(h), name, nil
}
