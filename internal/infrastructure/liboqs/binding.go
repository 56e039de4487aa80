package liboqs

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/MGTheTrain/pqc-diagnostics/internal/domain/nativelib"
	"github.com/MGTheTrain/pqc-diagnostics/internal/domain/pqc"
	"github.com/MGTheTrain/pqc-diagnostics/internal/pkg/config"
	"github.com/MGTheTrain/pqc-diagnostics/internal/pkg/logger"
	"github.com/ebitengine/purego"
)

// ErrSymbolNotFound is returned when a required liboqs entry point is missing
var ErrSymbolNotFound = errors.New("liboqs symbol not found")

// binding implements pqc.Binding over a lazily opened liboqs
type binding struct {
	loader  nativelib.Loader
	library string
	logger  logger.Logger

	once    sync.Once
	initErr error
	lib     nativelib.Library
	fns     *functions
}

// NewBinding creates a liboqs binding. The library is opened on first use: absolute paths
// through Loader.Open, bare names through Loader.OpenFromSearchPath.
func NewBinding(loader nativelib.Loader, library string, logger logger.Logger) (pqc.Binding, error) {
	if library == "" {
		return nil, fmt.Errorf("library name must not be empty")
	}
	return &binding{
		loader:  loader,
		library: library,
		logger:  logger,
	}, nil
}

// Name identifies the backend
func (b *binding) Name() string {
	return config.BackendLibOQS
}

// Version returns the string reported by OQS_version
func (b *binding) Version() (string, error) {
	if err := b.init(); err != nil {
		return "", err
	}
	return b.fns.version(), nil
}

// EnabledKEMMechanisms lists the KEMs enabled in this liboqs build
func (b *binding) EnabledKEMMechanisms() ([]string, error) {
	if err := b.init(); err != nil {
		return nil, err
	}
	return b.fns.kem().list(true), nil
}

// EnabledSigMechanisms lists the signature schemes enabled in this liboqs build
func (b *binding) EnabledSigMechanisms() ([]string, error) {
	if err := b.init(); err != nil {
		return nil, err
	}
	return b.fns.sig().list(true), nil
}

// SupportedKEMMechanisms lists every KEM liboqs knows about
func (b *binding) SupportedKEMMechanisms() ([]string, error) {
	if err := b.init(); err != nil {
		return nil, err
	}
	return b.fns.kem().list(false), nil
}

// SupportedSigMechanisms lists every signature scheme liboqs knows about
func (b *binding) SupportedSigMechanisms() ([]string, error) {
	if err := b.init(); err != nil {
		return nil, err
	}
	return b.fns.sig().list(false), nil
}

func (b *binding) init() error {
	b.once.Do(func() {
		b.initErr = b.open()
	})
	return b.initErr
}

func (b *binding) open() error {
	var (
		lib nativelib.Library
		err error
	)
	if filepath.IsAbs(b.library) {
		lib, err = b.loader.Open(b.library)
	} else {
		lib, err = b.loader.OpenFromSearchPath(b.library)
	}
	if err != nil {
		return fmt.Errorf("failed to load liboqs: %w", err)
	}

	fns, err := bindFunctions(lib, b.logger)
	if err != nil {
		_ = lib.Close()
		return err
	}

	b.lib = lib
	b.fns = fns
	b.logger.Debug("liboqs bound from ", lib.Path())
	return nil
}

func bindFunctions(lib nativelib.Library, log logger.Logger) (*functions, error) {
	fns := &functions{}

	required := []struct {
		name string
		fptr interface{}
	}{
		{symVersion, &fns.version},
		{symKEMAlgCount, &fns.kemAlgCount},
		{symKEMAlgIdentifier, &fns.kemAlgIdentifier},
		{symKEMAlgIsEnabled, &fns.kemAlgIsEnabled},
		{symSigAlgCount, &fns.sigAlgCount},
		{symSigAlgIdentifier, &fns.sigAlgIdentifier},
		{symSigAlgIsEnabled, &fns.sigAlgIsEnabled},
	}

	for _, r := range required {
		addr, err := lib.Symbol(r.name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSymbolNotFound, r.name, err)
		}
		purego.RegisterFunc(r.fptr, addr)
	}

	// OQS_init only exists from liboqs 0.8 on
	if addr, err := lib.Symbol(symInit); err == nil {
		var oqsInit func()
		purego.RegisterFunc(&oqsInit, addr)
		oqsInit()
	} else {
		log.Debug("OQS_init not exported, skipping: ", err)
	}

	return fns, nil
}
