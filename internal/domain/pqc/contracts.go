package pqc

// Binding enumerates the mechanisms of a post-quantum cryptography provider.
// Identifiers are returned in the order the provider reports them.
type Binding interface {
	// Name identifies the backend, e.g. liboqs or circl
	Name() string
	// Version returns the provider's version string
	Version() (string, error)
	// EnabledKEMMechanisms lists the KEM identifiers enabled at build time
	EnabledKEMMechanisms() ([]string, error)
	// EnabledSigMechanisms lists the signature identifiers enabled at build time
	EnabledSigMechanisms() ([]string, error)
	// SupportedKEMMechanisms lists every KEM identifier the provider knows, enabled or not
	SupportedKEMMechanisms() ([]string, error)
	// SupportedSigMechanisms lists every signature identifier the provider knows, enabled or not
	SupportedSigMechanisms() ([]string, error)
}
