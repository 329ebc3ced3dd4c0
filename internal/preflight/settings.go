package preflight

import "github.com/flex-plugins/flex-plugin/internal/paths"

// Settings is derived once per run from environment flags and the project
// layout. Checks only read it.
type Settings struct {
	// AllowSkip downgrades version mismatches to warnings.
	AllowSkip bool
	// AllowUnbundledReact tolerates React mismatches when the installed
	// Flex UI supports unbundled React.
	AllowUnbundledReact bool

	Project paths.Project
	CLI     paths.CLI
}

// Reporter is the print sink for findings. Report is called for every
// finding, fatal or not; Warn carries informational notices.
type Reporter interface {
	Report(e *Error)
	Warn(msg string)
}

// discardReporter drops everything.
type discardReporter struct{}

func (discardReporter) Report(*Error) {}
func (discardReporter) Warn(string)   {}
