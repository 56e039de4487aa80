package nativelib

import "encoding/json"

// Strategy names a way of loading a shared library
type Strategy string

// Load strategies, in the order a diagnostic run tries them
const (
	StrategyDirect          Strategy = "direct"
	StrategySearchDirectory Strategy = "search-directory"
)

// Attempt records one load attempt
type Attempt struct {
	Strategy Strategy
	// Target is the path or name handed to the loader
	Target string
	Err    error
}

// Succeeded reports whether the attempt loaded the library
func (a Attempt) Succeeded() bool {
	return a.Err == nil
}

// MarshalJSON renders Err as a plain message
func (a Attempt) MarshalJSON() ([]byte, error) {
	out := struct {
		Strategy Strategy `json:"strategy"`
		Target   string   `json:"target"`
		Error    string   `json:"error,omitempty"`
	}{
		Strategy: a.Strategy,
		Target:   a.Target,
	}
	if a.Err != nil {
		out.Error = a.Err.Error()
	}
	return json.Marshal(out)
}

// LoadReport is the outcome of one loader diagnostics run.
// A report with Exists false never carries attempts.
type LoadReport struct {
	RunID    string    `json:"run_id"`
	Path     string    `json:"path"`
	Exists   bool      `json:"exists"`
	Size     int64     `json:"size_bytes"`
	Attempts []Attempt `json:"attempts"`
	Loaded   bool      `json:"loaded"`
	LoadedBy Strategy  `json:"loaded_by,omitempty"`
}

// Record appends an attempt and marks the report loaded when the attempt succeeded
func (r *LoadReport) Record(a Attempt) {
	r.Attempts = append(r.Attempts, a)
	if a.Succeeded() && !r.Loaded {
		r.Loaded = true
		r.LoadedBy = a.Strategy
	}
}
