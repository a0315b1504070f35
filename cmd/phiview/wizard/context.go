// Package wizard provides the interactive TUI for running the tag
// sniffer and reviewing its output.
package wizard

import (
	"github.com/mrsinham/phiview/internal/section"
)

// Phase names one state of the wizard's state machine.
type Phase int

const (
	// PhaseStart collects directories and scan settings.
	PhaseStart Phase = iota
	// PhaseRunning shows scanner progress while the tag sniffer executes.
	PhaseRunning
	// PhaseReady browses the review sections and exports the HTML report.
	PhaseReady
	// PhaseError displays a failure and offers a way back to start.
	PhaseError
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseRunning:
		return "running"
	case PhaseReady:
		return "ready"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// transitions is the complete transition table. A phase change not
// listed here is a bug; transition refuses it.
var transitions = map[Phase][]Phase{
	PhaseStart:   {PhaseRunning, PhaseReady},
	PhaseRunning: {PhaseReady, PhaseError},
	PhaseReady:   {PhaseStart},
	PhaseError:   {PhaseStart},
}

// canTransition reports whether the table allows from → to.
func canTransition(from, to Phase) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Context carries every piece of data the phase handlers read or write.
// There is no other wizard state: screens render from it and transitions
// are decided from it.
type Context struct {
	// Collected on the start screen.
	Mode      Mode
	InputDir  string // DICOM directory handed to the scanner
	ReportDir string // scanner output directory (chosen or temporary)
	Project   string
	JarPath   string
	RulesPath string
	HTMLPath  string // where the ready screen exports the report

	// Resolved while running.
	JavaPath string

	// Populated when parsing finishes; consumed by the ready phase.
	Model *section.Model

	// TempReport marks ReportDir as wizard-created: it holds PHI and
	// is removed when a new scan starts or the program exits.
	TempReport bool
}

// Mode selects what the start screen leads to.
type Mode int

const (
	// ModeScan runs the tag sniffer, then reviews its output.
	ModeScan Mode = iota
	// ModeReview parses an existing scanner output directory.
	ModeReview
)
