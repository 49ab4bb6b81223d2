package ui

import "verity/internal/domain"

// Viewer displays run failures in an interactive TUI
type Viewer interface {
	View(output *domain.RunOutput) error
}
