package liboqs

// Exported liboqs symbols used by the binding
const (
	symInit             = "OQS_init"
	symVersion          = "OQS_version"
	symKEMAlgCount      = "OQS_KEM_alg_count"
	symKEMAlgIdentifier = "OQS_KEM_alg_identifier"
	symKEMAlgIsEnabled  = "OQS_KEM_alg_is_enabled"
	symSigAlgCount      = "OQS_SIG_alg_count"
	symSigAlgIdentifier = "OQS_SIG_alg_identifier"
	symSigAlgIsEnabled  = "OQS_SIG_alg_is_enabled"
)

// functions holds the Go wrappers of the liboqs entry points.
// size_t maps to uintptr and int to int32.
type functions struct {
	version func() string

	kemAlgCount      func() int32
	kemAlgIdentifier func(i uintptr) string
	kemAlgIsEnabled  func(name string) int32

	sigAlgCount      func() int32
	sigAlgIdentifier func(i uintptr) string
	sigAlgIsEnabled  func(name string) int32
}

// family groups the three enumeration functions of one mechanism kind
type family struct {
	count      func() int32
	identifier func(i uintptr) string
	isEnabled  func(name string) int32
}

func (f *functions) kem() family {
	return family{count: f.kemAlgCount, identifier: f.kemAlgIdentifier, isEnabled: f.kemAlgIsEnabled}
}

func (f *functions) sig() family {
	return family{count: f.sigAlgCount, identifier: f.sigAlgIdentifier, isEnabled: f.sigAlgIsEnabled}
}

// list returns identifiers in liboqs index order, skipping NULL entries
func (f family) list(onlyEnabled bool) []string {
	count := int(f.count())
	names := make([]string, 0, count)
	for i := 0; i < count; i++ {
		name := f.identifier(uintptr(i))
		if name == "" {
			continue
		}
		if onlyEnabled && f.isEnabled(name) != 1 {
			continue
		}
		names = append(names, name)
	}
	return names
}
