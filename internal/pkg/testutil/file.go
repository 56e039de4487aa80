package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTestFile create a test files
func CreateTestFile(fileName string, content []byte) error {
	err := os.WriteFile(fileName, content, 0600)
	if err != nil {
		return fmt.Errorf("failed to create test file: %w", err)
	}
	return nil
}

// CreateFakeLibrary writes a file with a shared library name that no loader accepts
// and returns its absolute path.
func CreateFakeLibrary(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, CreateTestFile(path, []byte("this is not an ELF, Mach-O or PE image")))

	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	return abs
}
