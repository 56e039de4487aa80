package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/MGTheTrain/pqc-diagnostics/internal/domain/nativelib"
	"github.com/MGTheTrain/pqc-diagnostics/internal/pkg/logger"
	"github.com/google/uuid"
)

// LoadDiagnosticsService walks the load strategies for a shared library and reports each step
type LoadDiagnosticsService struct {
	loader nativelib.Loader
	logger logger.Logger
	goos   string
}

// NewLoadDiagnosticsService creates a new LoadDiagnosticsService instance
func NewLoadDiagnosticsService(loader nativelib.Loader, logger logger.Logger) (*LoadDiagnosticsService, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader must not be nil")
	}
	return &LoadDiagnosticsService{
		loader: loader,
		logger: logger,
		goos:   runtime.GOOS,
	}, nil
}

// Run checks that path exists, then tries the direct and the search-directory strategies
// in turn, printing every step to out. It never returns an error: failures are part of the report.
func (s *LoadDiagnosticsService) Run(path string, out *Reporter) *nativelib.LoadReport {
	report := &nativelib.LoadReport{
		RunID: uuid.New().String(),
		Path:  path,
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		s.logger.Warn("failed to resolve absolute path of ", path, ": ", err)
	} else {
		report.Path = abs
	}

	out.Heading(fmt.Sprintf("Debugging library load: %s", report.Path))

	info, err := os.Stat(report.Path)
	if err != nil || info.IsDir() {
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("stat ", report.Path, ": ", err)
		}
		out.Error("file %s does not exist.", report.Path)
		return report
	}

	report.Exists = true
	report.Size = info.Size()
	out.Info("File exists. Size: %d bytes", report.Size)

	if s.tryDirect(report, out) {
		return report
	}
	s.trySearchDirectory(report, out)

	return report
}

func (s *LoadDiagnosticsService) tryDirect(report *nativelib.LoadReport, out *Reporter) bool {
	out.Info("Attempting direct load...")

	lib, err := s.loader.Open(report.Path)
	report.Record(nativelib.Attempt{Strategy: nativelib.StrategyDirect, Target: report.Path, Err: err})
	if err != nil {
		out.Fail("direct load failed: %v", err)
		out.Detail("%s", missingDependencyHint(s.goos))
		return false
	}

	s.release(lib)
	out.Success("Library loaded successfully!")
	return true
}

func (s *LoadDiagnosticsService) trySearchDirectory(report *nativelib.LoadReport, out *Reporter) bool {
	dir := filepath.Dir(report.Path)
	name := filepath.Base(report.Path)

	out.Info("Adding %s to library search path...", dir)

	var lib nativelib.Library
	err := s.loader.AddSearchDirectory(dir)
	if err == nil {
		lib, err = s.loader.OpenFromSearchPath(name)
	}
	report.Record(nativelib.Attempt{Strategy: nativelib.StrategySearchDirectory, Target: name, Err: err})
	if err != nil {
		out.Fail("Failed after registering search directory: %v", err)
		return false
	}

	s.release(lib)
	out.Success("Library loaded after registering search directory!")
	return true
}

func (s *LoadDiagnosticsService) release(lib nativelib.Library) {
	if err := lib.Close(); err != nil {
		s.logger.Warn("failed to close ", lib.Path(), ": ", err)
	}
}

func missingDependencyHint(goos string) string {
	switch goos {
	case "windows":
		return "This usually means a missing dependency (like the MSVC runtime)."
	case "darwin":
		return "This usually means a missing dependency; inspect it with `otool -L`."
	default:
		return "This usually means a missing dependency; inspect it with `ldd`."
	}
}
