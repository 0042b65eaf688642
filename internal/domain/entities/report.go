package entities

// Frame locates one line of Python source in a traceback.
type Frame struct {
	Filename   string `json:"filename"`
	LineNumber int    `json:"linenumber"`
	// Source is the highlighted excerpt around LineNumber, empty when the
	// file could not be read.
	Source string `json:"source"`
}

// Scope lists the names visible in the frame where the exception was raised.
type Scope struct {
	Locals    []string `json:"locals,omitempty"`
	Globals   []string `json:"globals,omitempty"`
	Nonlocals []string `json:"nonlocals,omitempty"`
	Builtins  []string `json:"builtins,omitempty"`
}

// Defines reports the scopes ("local", "global", "nonlocal") holding name.
func (s Scope) Defines(name string) []string {
	var out []string
	for _, sc := range []struct {
		name  string
		names []string
	}{
		{"local", s.Locals},
		{"global", s.Globals},
		{"nonlocal", s.Nonlocals},
	} {
		for _, n := range sc.names {
			if n == name {
				out = append(out, sc.name)
				break
			}
		}
	}
	return out
}

// Report is one Python exception as captured by the tracer.
type Report struct {
	Exception string `json:"exception"`
	Value     string `json:"value"`
	LastCall  Frame  `json:"last_call"`
	// Origin is nil when the exception was raised in LastCall.
	Origin *Frame `json:"origin,omitempty"`
	// BadLine is the offending source line, without line number.
	BadLine string `json:"bad_line,omitempty"`
	// Traceback is the plain Python traceback, used to spot circular imports.
	Traceback string `json:"traceback,omitempty"`
	Scope     Scope  `json:"scope"`
}

// Cause is the outcome of analyzing a Report: an explanation of the likely
// cause and an optional one-line hint.
type Cause struct {
	Header  string `json:"header,omitempty"`
	Text    string `json:"text"`
	Suggest string `json:"suggest,omitempty"`
}

// Explanation is a fully rendered Report.
type Explanation struct {
	Text    string `json:"text"`
	Suggest string `json:"suggest,omitempty"`
}
