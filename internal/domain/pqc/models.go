package pqc

import "encoding/json"

// MechanismKind is a category of post-quantum algorithm
type MechanismKind string

// Mechanism kinds
const (
	KindKEM       MechanismKind = "kem"
	KindSignature MechanismKind = "signature"
)

// Kinds lists the mechanism kinds in report order
var Kinds = []MechanismKind{KindKEM, KindSignature}

// Label is the plural name used in headings and error lines
func (k MechanismKind) Label() string {
	switch k {
	case KindKEM:
		return "KEMs"
	case KindSignature:
		return "Signatures"
	default:
		return string(k)
	}
}

// Section is the enumeration result for one mechanism kind
type Section struct {
	Kind       MechanismKind
	Mechanisms []string
	Err        error
}

// MarshalJSON renders Err as a plain message
func (s Section) MarshalJSON() ([]byte, error) {
	out := struct {
		Kind       MechanismKind `json:"kind"`
		Mechanisms []string      `json:"mechanisms"`
		Error      string        `json:"error,omitempty"`
	}{
		Kind:       s.Kind,
		Mechanisms: s.Mechanisms,
	}
	if out.Mechanisms == nil {
		out.Mechanisms = []string{}
	}
	if s.Err != nil {
		out.Error = s.Err.Error()
	}
	return json.Marshal(out)
}

// Listing is the outcome of one algorithm listing run
type Listing struct {
	Backend string `json:"backend"`
	// OnlyEnabled is false when supported-but-disabled mechanisms are included
	OnlyEnabled bool      `json:"only_enabled"`
	Sections    []Section `json:"sections"`
}
