package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/pqc-diagnostics/internal/domain/nativelib"
	"github.com/MGTheTrain/pqc-diagnostics/internal/domain/pqc"
	"github.com/MGTheTrain/pqc-diagnostics/internal/pkg/logger"
)

// AlgorithmListingService enumerates the mechanisms of a pqc.Binding
type AlgorithmListingService struct {
	loader  nativelib.Loader
	binding pqc.Binding
	logger  logger.Logger
}

// NewAlgorithmListingService creates a new AlgorithmListingService instance
func NewAlgorithmListingService(loader nativelib.Loader, binding pqc.Binding, logger logger.Logger) (*AlgorithmListingService, error) {
	if binding == nil {
		return nil, fmt.Errorf("binding must not be nil")
	}
	return &AlgorithmListingService{
		loader:  loader,
		binding: binding,
		logger:  logger,
	}, nil
}

// Preload makes the library at path resident before the binding is used. Every failure is
// logged and swallowed; the listing reports problems per section instead.
func (s *AlgorithmListingService) Preload(path string) {
	if s.loader == nil {
		return
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		s.logger.Debug("pre-load skipped, ", path, " not found")
		return
	}

	if err := s.loader.AddSearchDirectory(filepath.Dir(path)); err != nil {
		s.logger.Debug("pre-load: ", err)
	}
	if _, err := s.loader.Open(path); err != nil {
		s.logger.Debug("pre-load: ", err)
		return
	}
	// the handle stays open until process exit
	s.logger.Debug("pre-loaded ", path)
}

// List queries both mechanism kinds. A failing kind yields a section with Err set and
// does not affect the other.
func (s *AlgorithmListingService) List(onlyEnabled bool) *pqc.Listing {
	listing := &pqc.Listing{
		Backend:     s.binding.Name(),
		OnlyEnabled: onlyEnabled,
	}

	for _, kind := range pqc.Kinds {
		mechanisms, err := s.mechanisms(kind, onlyEnabled)
		if err != nil {
			s.logger.Warn("failed to enumerate ", kind.Label(), ": ", err)
		}
		listing.Sections = append(listing.Sections, pqc.Section{Kind: kind, Mechanisms: mechanisms, Err: err})
	}

	return listing
}

func (s *AlgorithmListingService) mechanisms(kind pqc.MechanismKind, onlyEnabled bool) ([]string, error) {
	switch {
	case kind == pqc.KindKEM && onlyEnabled:
		return s.binding.EnabledKEMMechanisms()
	case kind == pqc.KindKEM:
		return s.binding.SupportedKEMMechanisms()
	case kind == pqc.KindSignature && onlyEnabled:
		return s.binding.EnabledSigMechanisms()
	case kind == pqc.KindSignature:
		return s.binding.SupportedSigMechanisms()
	default:
		return nil, fmt.Errorf("unsupported mechanism kind: %s", kind)
	}
}

// RenderListing prints one heading per section followed by one identifier per line,
// or a single error line for a failed section
func RenderListing(out *Reporter, listing *pqc.Listing) {
	qualifier := "Enabled"
	if !listing.OnlyEnabled {
		qualifier = "Supported"
	}

	for i, section := range listing.Sections {
		if i > 0 {
			out.Blank()
		}
		out.Heading(fmt.Sprintf("%s %s", qualifier, section.Kind.Label()))

		if section.Err != nil {
			out.Line(fmt.Sprintf("Error getting %s: %v", section.Kind.Label(), section.Err))
			continue
		}
		for _, name := range section.Mechanisms {
			out.Line(name)
		}
	}
}
