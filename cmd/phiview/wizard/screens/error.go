package screens

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/phiview/cmd/phiview/wizard/components"
	"github.com/mrsinham/phiview/internal/scanner"
)

var errorTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("196"))

// ErrorScreen shows what went wrong and offers a way back to the start
type ErrorScreen struct {
	err       error
	retry     bool
	cancelled bool
}

// NewErrorScreen creates the failure screen for err
func NewErrorScreen(err error) *ErrorScreen {
	return &ErrorScreen{err: err}
}

// Init implements tea.Model
func (s *ErrorScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s *ErrorScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			s.cancelled = true
			return s, tea.Quit
		case "enter", "r":
			s.retry = true
		}
	}
	return s, nil
}

// View implements tea.Model
func (s *ErrorScreen) View() string {
	var b strings.Builder
	b.WriteString(errorTitleStyle.Render("Scan failed"))
	b.WriteString("\n\n")

	var exitErr *scanner.ExitError
	if errors.As(s.err, &exitErr) {
		fmt.Fprintf(&b, "Tag sniffer exited with code %d.\n\n", exitErr.Code)
		if len(exitErr.Tail) > 0 {
			b.WriteString("Last output:\n")
			for _, line := range exitErr.Tail {
				b.WriteString("  " + line + "\n")
			}
			b.WriteString("\n")
		}
	} else {
		b.WriteString(s.err.Error())
		b.WriteString("\n\n")
	}

	b.WriteString(components.HintStyle.Render("enter/r to start over | q to quit"))
	return b.String()
}

// Retry reports and clears a pending restart request
func (s *ErrorScreen) Retry() bool {
	if s.retry {
		s.retry = false
		return true
	}
	return false
}

// Cancelled reports whether the user quit
func (s *ErrorScreen) Cancelled() bool { return s.cancelled }
