package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"verity/pkg/unit"
)

func TestProgressBar_CountsCasesOnly(t *testing.T) {
	var out bytes.Buffer
	bar := NewProgressBarTo(3, &out)

	bar.SuiteStarted("S")
	bar.StepFinished(unit.StepResult{Kind: unit.StepSetup, Outcome: unit.Outcome{State: unit.Passed}})
	bar.StepFinished(unit.StepResult{Kind: unit.StepCase, Outcome: unit.Outcome{State: unit.Passed}})
	bar.StepFinished(unit.StepResult{Kind: unit.StepCase, Outcome: unit.Outcome{State: unit.Passed, ExpectedFailure: true}})
	bar.StepFinished(unit.StepResult{Kind: unit.StepCase, Outcome: unit.Outcome{State: unit.Missed}})
	bar.Finish()

	success, failed := bar.Counts()
	assert.Equal(t, 2, success)
	assert.Equal(t, 1, failed)
}
