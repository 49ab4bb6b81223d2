package execution

import (
	"io"

	"verity/pkg/unit"
)

// Executor runs the cases of a registry and returns the run report
type Executor interface {
	Execute(reg *unit.Registry, out io.Writer, observers ...unit.Observer) (*unit.Report, error)
}
