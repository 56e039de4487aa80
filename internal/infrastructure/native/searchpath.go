package native

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// SearchPathEnvVar returns the environment variable the host loader consults for the given GOOS value
func SearchPathEnvVar(goos string) string {
	switch goos {
	case "windows":
		return "PATH"
	case "darwin", "ios":
		return "DYLD_LIBRARY_PATH"
	default:
		return "LD_LIBRARY_PATH"
	}
}

// PrependSearchPath puts dir at the front of the platform search-path variable.
// A directory already on the list is left where it is.
func PrependSearchPath(dir string) error {
	name := SearchPathEnvVar(runtime.GOOS)
	return os.Setenv(name, prependPathList(os.Getenv(name), dir))
}

func prependPathList(list, dir string) string {
	if list == "" {
		return dir
	}
	for _, entry := range filepath.SplitList(list) {
		if samePath(entry, dir) {
			return list
		}
	}
	return dir + string(os.PathListSeparator) + list
}

func samePath(a, b string) bool {
	a, b = filepath.Clean(a), filepath.Clean(b)
	if runtime.GOOS == "windows" {
		return strings.EqualFold(a, b)
	}
	return a == b
}
