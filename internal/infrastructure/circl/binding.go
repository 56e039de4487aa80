package circl

import (
	"runtime/debug"

	"github.com/MGTheTrain/pqc-diagnostics/internal/domain/pqc"
	"github.com/MGTheTrain/pqc-diagnostics/internal/pkg/config"
	kemschemes "github.com/cloudflare/circl/kem/schemes"
	signschemes "github.com/cloudflare/circl/sign/schemes"
)

const modulePath = "github.com/cloudflare/circl"

type binding struct{}

// NewBinding returns the circl reference binding
func NewBinding() pqc.Binding {
	return binding{}
}

// Name identifies the backend
func (binding) Name() string {
	return config.BackendCircl
}

// Version returns the circl module version linked into the binary
func (binding) Version() (string, error) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown", nil
	}
	for _, dep := range info.Deps {
		if dep.Path == modulePath {
			return dep.Version, nil
		}
	}
	return "unknown", nil
}

// EnabledKEMMechanisms lists circl's KEM schemes; everything compiled in is enabled
func (b binding) EnabledKEMMechanisms() ([]string, error) {
	return b.SupportedKEMMechanisms()
}

// EnabledSigMechanisms lists circl's signature schemes
func (b binding) EnabledSigMechanisms() ([]string, error) {
	return b.SupportedSigMechanisms()
}

// SupportedKEMMechanisms lists circl's KEM schemes in registry order
func (binding) SupportedKEMMechanisms() ([]string, error) {
	all := kemschemes.All()
	names := make([]string, 0, len(all))
	for _, s := range all {
		names = append(names, s.Name())
	}
	return names, nil
}

// SupportedSigMechanisms lists circl's signature schemes in registry order
func (binding) SupportedSigMechanisms() ([]string, error) {
	all := signschemes.All()
	names := make([]string, 0, len(all))
	for _, s := range all {
		names = append(names, s.Name())
	}
	return names, nil
}
