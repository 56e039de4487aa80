//go:build unit && linux
// +build unit,linux

package native

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MGTheTrain/pqc-diagnostics/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoader(t *testing.T) *loader {
	t.Helper()
	// keep env mutations scoped to the test
	t.Setenv("LD_LIBRARY_PATH", os.Getenv("LD_LIBRARY_PATH"))
	return NewLoader(testutil.SetupTestLogger(t)).(*loader)
}

func TestLoader_OpenSystemLibrary(t *testing.T) {
	l := newTestLoader(t)

	lib, err := l.Open("libc.so.6")
	require.NoError(t, err)
	t.Cleanup(func() { _ = lib.Close() })

	addr, err := lib.Symbol("getpid")
	require.NoError(t, err)
	assert.NotZero(t, addr)

	_, err = lib.Symbol("OQS_KEM_alg_count")
	assert.Error(t, err)

	// Close is idempotent
	assert.NoError(t, lib.Close())
	assert.NoError(t, lib.Close())
}

func TestLoader_OpenInvalidFile(t *testing.T) {
	l := newTestLoader(t)
	path := testutil.CreateFakeLibrary(t, t.TempDir(), "liboqs.so")

	lib, err := l.Open(path)
	require.Error(t, err)
	assert.Nil(t, lib)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, OpOpen, loadErr.Op)
	assert.Equal(t, path, loadErr.Target)
}

func TestLoader_AddSearchDirectory(t *testing.T) {
	l := newTestLoader(t)
	dir := t.TempDir()

	require.NoError(t, l.AddSearchDirectory(dir))
	require.NoError(t, l.AddSearchDirectory(dir))

	assert.Equal(t, []string{dir}, l.dirs)
	assert.True(t, strings.HasPrefix(os.Getenv("LD_LIBRARY_PATH"), dir))
}

func TestLoader_AddSearchDirectory_Errors(t *testing.T) {
	l := newTestLoader(t)

	err := l.AddSearchDirectory(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)

	file := testutil.CreateFakeLibrary(t, t.TempDir(), "liboqs.so")
	err = l.AddSearchDirectory(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")

	assert.Empty(t, l.dirs)
}

func TestLoader_OpenFromSearchPath_UsesRegisteredDirectory(t *testing.T) {
	l := newTestLoader(t)
	dir := t.TempDir()
	candidate := testutil.CreateFakeLibrary(t, dir, "liboqs.so")
	require.NoError(t, l.AddSearchDirectory(dir))

	_, err := l.OpenFromSearchPath("liboqs.so")
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, OpOpenFromSearchPath, loadErr.Op)
	// the dlerror message names the file that was actually tried
	assert.Contains(t, err.Error(), candidate)
}

func TestLoader_OpenFromSearchPath_FallsBackToSystem(t *testing.T) {
	l := newTestLoader(t)
	require.NoError(t, l.AddSearchDirectory(t.TempDir()))

	lib, err := l.OpenFromSearchPath("libc.so.6")
	require.NoError(t, err)
	t.Cleanup(func() { _ = lib.Close() })
	assert.Equal(t, "libc.so.6", lib.Path())
}
