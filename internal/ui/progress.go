package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"verity/pkg/unit"
)

// ProgressBar shows case progress while a run is going. It is a
// unit.Observer; fixture steps do not move the bar.
type ProgressBar struct {
	bar     *progressbar.ProgressBar
	success int
	failed  int
}

// NewProgressBar creates a new progress bar on stderr
func NewProgressBar(count int) *ProgressBar {
	return NewProgressBarTo(count, os.Stderr)
}

// NewProgressBarTo creates a new progress bar writing to w
func NewProgressBarTo(count int, w io.Writer) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(describe(0, 0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(w),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

func describe(successCount, failCount int) string {
	return color.CyanString("Running tests: ") +
		color.GreenString("[success: %d", successCount) +
		" | " +
		color.RedString("failed: %d]", failCount)
}

// Update updates the progress bar with success and failure counts
func (p *ProgressBar) Update(successCount, failCount int) {
	p.bar.Set(successCount + failCount)
	p.bar.Describe(describe(successCount, failCount))
}

func (p *ProgressBar) SuiteStarted(string) {}

func (p *ProgressBar) StepFinished(step unit.StepResult) {
	if step.Kind != unit.StepCase {
		return
	}
	if step.Outcome.State == unit.Passed {
		p.success++
	} else {
		p.failed++
	}
	p.Update(p.success, p.failed)
}

// Counts returns how many cases passed and how many did not.
func (p *ProgressBar) Counts() (success, failed int) {
	return p.success, p.failed
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}
