//go:build unit
// +build unit

package app

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MGTheTrain/pqc-diagnostics/internal/domain/nativelib"
	"github.com/MGTheTrain/pqc-diagnostics/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type LoadDiagnosticsServiceTests struct {
	loader  *testutil.MockLoader
	service *LoadDiagnosticsService
	out     *bytes.Buffer
	dir     string
}

func NewLoadDiagnosticsServiceTests(t *testing.T) *LoadDiagnosticsServiceTests {
	loader := &testutil.MockLoader{}
	service, err := NewLoadDiagnosticsService(loader, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	service.goos = "windows"

	return &LoadDiagnosticsServiceTests{
		loader:  loader,
		service: service,
		out:     &bytes.Buffer{},
		dir:     t.TempDir(),
	}
}

func (tt *LoadDiagnosticsServiceTests) run(path string) *nativelib.LoadReport {
	return tt.service.Run(path, NewReporter(tt.out))
}

func (tt *LoadDiagnosticsServiceTests) lines() []string {
	return strings.Split(strings.TrimRight(tt.out.String(), "\n"), "\n")
}

func newMockLibrary(path string) *testutil.MockLibrary {
	lib := &testutil.MockLibrary{}
	lib.On("Path").Return(path).Maybe()
	lib.On("Close").Return(nil).Once()
	return lib
}

func TestNewLoadDiagnosticsService_NilLoader(t *testing.T) {
	_, err := NewLoadDiagnosticsService(nil, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}

func TestLoadDiagnostics_MissingFile(t *testing.T) {
	tt := NewLoadDiagnosticsServiceTests(t)
	path := filepath.Join(tt.dir, "liboqs.dll")

	report := tt.run(path)

	assert.False(t, report.Exists)
	assert.Empty(t, report.Attempts)
	assert.False(t, report.Loaded)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, []string{
		"--- Debugging library load: " + path + " ---",
		"[ERROR] file " + path + " does not exist.",
	}, tt.lines())

	tt.loader.AssertNotCalled(t, "Open", mock.Anything)
	tt.loader.AssertNotCalled(t, "AddSearchDirectory", mock.Anything)
	tt.loader.AssertNotCalled(t, "OpenFromSearchPath", mock.Anything)
}

func TestLoadDiagnostics_DirectoryIsNotALibrary(t *testing.T) {
	tt := NewLoadDiagnosticsServiceTests(t)

	report := tt.run(tt.dir)

	assert.False(t, report.Exists)
	assert.Empty(t, report.Attempts)
	assert.Contains(t, tt.out.String(), "does not exist.")
}

func TestLoadDiagnostics_DirectLoadSucceeds(t *testing.T) {
	tt := NewLoadDiagnosticsServiceTests(t)
	path := testutil.CreateFakeLibrary(t, tt.dir, "liboqs.dll")

	lib := newMockLibrary(path)
	tt.loader.On("Open", path).Return(lib, nil).Once()

	report := tt.run(path)

	assert.True(t, report.Exists)
	assert.Greater(t, report.Size, int64(0))
	assert.True(t, report.Loaded)
	assert.Equal(t, nativelib.StrategyDirect, report.LoadedBy)
	require.Len(t, report.Attempts, 1)

	lines := tt.lines()
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "[INFO] File exists. Size: ")
	assert.Equal(t, "[INFO] Attempting direct load...", lines[2])
	assert.Equal(t, "[SUCCESS] Library loaded successfully!", lines[3])

	tt.loader.AssertNotCalled(t, "AddSearchDirectory", mock.Anything)
	lib.AssertExpectations(t)
	tt.loader.AssertExpectations(t)
}

func TestLoadDiagnostics_FallbackSucceeds(t *testing.T) {
	tt := NewLoadDiagnosticsServiceTests(t)
	path := testutil.CreateFakeLibrary(t, tt.dir, "liboqs.dll")

	lib := newMockLibrary("liboqs.dll")
	tt.loader.On("Open", path).Return(nil, errors.New("The specified module could not be found.")).Once()
	tt.loader.On("AddSearchDirectory", filepath.Dir(path)).Return(nil).Once()
	tt.loader.On("OpenFromSearchPath", "liboqs.dll").Return(lib, nil).Once()

	report := tt.run(path)

	assert.True(t, report.Loaded)
	assert.Equal(t, nativelib.StrategySearchDirectory, report.LoadedBy)
	require.Len(t, report.Attempts, 2)
	assert.Error(t, report.Attempts[0].Err)
	assert.NoError(t, report.Attempts[1].Err)

	output := tt.out.String()
	assert.Contains(t, output, "[FAIL] direct load failed: The specified module could not be found.\n")
	assert.Contains(t, output, "       This usually means a missing dependency (like the MSVC runtime).\n")
	assert.Contains(t, output, "[INFO] Adding "+filepath.Dir(path)+" to library search path...\n")
	assert.Contains(t, output, "[SUCCESS] Library loaded after registering search directory!\n")

	lib.AssertExpectations(t)
	tt.loader.AssertExpectations(t)
}

func TestLoadDiagnostics_BothStrategiesFail(t *testing.T) {
	tests := []struct {
		name      string
		addDirErr error
		openErr   error
		wantError string
	}{
		{
			name:      "search directory registration fails",
			addDirErr: errors.New("AddDllDirectory unavailable"),
			wantError: "AddDllDirectory unavailable",
		},
		{
			name:      "load after registration fails",
			openErr:   errors.New("%1 is not a valid Win32 application."),
			wantError: "%1 is not a valid Win32 application.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tt := NewLoadDiagnosticsServiceTests(t)
			path := testutil.CreateFakeLibrary(t, tt.dir, "liboqs.dll")

			tt.loader.On("Open", path).Return(nil, errors.New("bad image")).Once()
			tt.loader.On("AddSearchDirectory", filepath.Dir(path)).Return(tc.addDirErr).Once()
			if tc.addDirErr == nil {
				tt.loader.On("OpenFromSearchPath", "liboqs.dll").Return(nil, tc.openErr).Once()
			}

			report := tt.run(path)

			assert.True(t, report.Exists)
			assert.False(t, report.Loaded)
			require.Len(t, report.Attempts, 2)
			assert.Equal(t, nativelib.StrategyDirect, report.Attempts[0].Strategy)
			assert.Equal(t, nativelib.StrategySearchDirectory, report.Attempts[1].Strategy)

			lines := tt.lines()
			assert.Equal(t, "[FAIL] Failed after registering search directory: "+tc.wantError, lines[len(lines)-1])
			assert.Equal(t, 2, strings.Count(tt.out.String(), "[FAIL]"))
			assert.NotContains(t, tt.out.String(), "[SUCCESS]")

			if tc.addDirErr != nil {
				tt.loader.AssertNotCalled(t, "OpenFromSearchPath", mock.Anything)
			}
			tt.loader.AssertExpectations(t)
		})
	}
}

func TestMissingDependencyHint(t *testing.T) {
	assert.Contains(t, missingDependencyHint("windows"), "MSVC")
	assert.Contains(t, missingDependencyHint("darwin"), "otool -L")
	assert.Contains(t, missingDependencyHint("linux"), "ldd")
}
