package domain

import "verity/pkg/unit"

// CaseFailure represents a failed or missed step
type CaseFailure struct {
	Suite    string `json:"suite"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	State    string `json:"state"`
	Line     int    `json:"line,omitempty"`
	Message  string `json:"message"`
	Resolved bool   `json:"resolved,omitempty"` // Track if the failure is marked as resolved in the viewer
}

func NewCaseFailure(step unit.StepResult) CaseFailure {
	return CaseFailure{
		Suite:   step.Suite,
		Name:    step.Name,
		Kind:    step.Kind.String(),
		State:   step.Outcome.State.String(),
		Line:    step.Outcome.Line,
		Message: step.Outcome.Reason,
	}
}

// SuiteLabel is the suite name as the text report shows it.
func (f CaseFailure) SuiteLabel() string {
	return SuiteLabel(f.Suite)
}

// SuiteLabel names the ungrouped suite "Single Tests".
func SuiteLabel(suite string) string {
	if suite == "" {
		return "Single Tests"
	}
	return suite
}
