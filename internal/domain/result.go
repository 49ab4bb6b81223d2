package domain

import (
	"time"

	"verity/pkg/unit"
)

// RunMeta contains metadata about a run
type RunMeta struct {
	RunID           string  `json:"run_id"`
	TotalSuites     int     `json:"total_suites"`
	FailedSuites    int     `json:"failed_suites"`
	Passed          int     `json:"passed"`
	Failed          int     `json:"failed"`
	Missed          int     `json:"missed"`
	Aborted         bool    `json:"aborted,omitempty"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete JSON export of a run
type RunOutput struct {
	Meta    RunMeta        `json:"meta"`
	Suites  []SuiteSummary `json:"suites"`
	Details []CaseFailure  `json:"details"`
}

// SuiteSummary is the per-suite tally
type SuiteSummary struct {
	Name           string `json:"name"`
	Passed         int    `json:"passed"`
	Failed         int    `json:"failed"`
	Missed         int    `json:"missed"`
	SetupFailed    bool   `json:"setup_failed,omitempty"`
	TeardownFailed bool   `json:"teardown_failed,omitempty"`
	NotFound       bool   `json:"not_found,omitempty"`
}

// Broken reports whether anything in the suite went wrong.
func (s SuiteSummary) Broken() bool {
	return s.Failed > 0 || s.SetupFailed || s.TeardownFailed || s.NotFound
}

// FromReport converts a run report into its export form. Details holds
// failed and missed steps only.
func FromReport(r *unit.Report) RunOutput {
	output := RunOutput{
		Meta: RunMeta{
			RunID:           r.RunID,
			TotalSuites:     r.Suites,
			Passed:          r.Passed,
			Failed:          r.Failed,
			Missed:          r.Missed,
			Aborted:         r.Aborted,
			Duration:        r.Duration.String(),
			DurationSeconds: r.Duration.Seconds(),
			Timestamp:       r.StartedAt.Format(time.RFC3339),
		},
		Suites:  make([]SuiteSummary, 0, len(r.Results)),
		Details: []CaseFailure{},
	}

	for _, suite := range r.Results {
		passed, failed, missed := suite.Counts()
		summary := SuiteSummary{
			Name:           suite.Name,
			Passed:         passed,
			Failed:         failed,
			Missed:         missed,
			SetupFailed:    suite.SetupFailed,
			TeardownFailed: suite.TeardownFailed,
			NotFound:       suite.NotFound,
		}
		if summary.NotFound {
			summary.Failed++
		}
		if summary.Broken() {
			output.Meta.FailedSuites++
		}
		output.Suites = append(output.Suites, summary)
	}

	for _, step := range r.Failures() {
		output.Details = append(output.Details, NewCaseFailure(step))
	}
	return output
}
