package screens

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/phiview/cmd/phiview/wizard/components"
	"github.com/mrsinham/phiview/internal/section"
)

// ScanLineMsg carries one line of scanner output
type ScanLineMsg struct {
	Line string
}

// ScanReadyMsg signals that the scan finished and the report was parsed
type ScanReadyMsg struct {
	Model *section.Model
}

// ScanErrorMsg signals that the scan or the parse failed
type ScanErrorMsg struct {
	Err error
}

const visibleScanLines = 8

var scanLineStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("243"))

// RunningScreen shows scanner progress while the external process works
type RunningScreen struct {
	spinner   spinner.Model
	inputDir  string
	lines     []string
	started   time.Time
	cancelled bool
}

// NewRunningScreen creates the progress screen for a scan of inputDir
func NewRunningScreen(inputDir string) *RunningScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return &RunningScreen{
		spinner:  sp,
		inputDir: inputDir,
		started:  time.Now(),
	}
}

// Init implements tea.Model
func (s *RunningScreen) Init() tea.Cmd {
	return s.spinner.Tick
}

// Update implements tea.Model
func (s *RunningScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			s.cancelled = true
			return s, tea.Quit
		}
	case ScanLineMsg:
		s.lines = append(s.lines, msg.Line)
		if len(s.lines) > visibleScanLines {
			s.lines = s.lines[len(s.lines)-visibleScanLines:]
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}
	return s, nil
}

// View implements tea.Model
func (s *RunningScreen) View() string {
	title := components.TitleStyle.Render("Scanning")
	status := fmt.Sprintf("%s Running tag sniffer on %s (%s elapsed)",
		s.spinner.View(), s.inputDir, time.Since(s.started).Round(time.Second))

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(status)
	b.WriteString("\n\n")
	for _, line := range s.lines {
		b.WriteString(scanLineStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(components.HintStyle.Render("ctrl+c to abort"))
	return b.String()
}

// Cancelled reports whether the user aborted
func (s *RunningScreen) Cancelled() bool { return s.cancelled }
