package screens

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/phiview/cmd/phiview/wizard/components"
)

// StartValues holds the form bindings for the start screen. The wizard
// copies them into its context once the form completes.
type StartValues struct {
	Mode      string // "scan" or "review"
	InputDir  string
	ReportDir string
	Project   string
	Jar       string
	Rules     string
	HTMLPath  string
}

// StartScreen collects scan settings before anything runs
type StartScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	values    *StartValues
	width     int
	height    int
	done      bool
	cancelled bool
}

// NewStartScreen creates the start screen bound to the given values
func NewStartScreen(values *StartValues) *StartScreen {
	if values.Mode == "" {
		values.Mode = "scan"
	}
	if values.HTMLPath == "" {
		values.HTMLPath = "phi_report.html"
	}

	s := &StartScreen{
		helpPanel: components.NewHelpPanel(),
		values:    values,
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("mode").
				Title("Mode").
				Options(
					huh.NewOption("Scan - run the tag sniffer, then review", "scan"),
					huh.NewOption("Review - open existing scanner output", "review"),
				).
				Value(&values.Mode),

			huh.NewInput().
				Key("project").
				Title("Project").
				Placeholder("optional, shown in the report header").
				Value(&values.Project),

			huh.NewInput().
				Key("html_path").
				Title("HTML Report Path").
				Value(&values.HTMLPath),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("input_dir").
				Title("DICOM Directory").
				Value(&values.InputDir).
				Validate(validateDir),

			huh.NewInput().
				Key("jar").
				Title("Tag Sniffer JAR").
				Value(&values.Jar).
				Validate(validateFile),

			huh.NewInput().
				Key("rules").
				Title("Scan Rules").
				Value(&values.Rules).
				Validate(validateFile),
		).WithHideFunc(func() bool { return values.Mode != "scan" }),
		huh.NewGroup(
			huh.NewInput().
				Key("report_dir").
				Title("Report Directory").
				Value(&values.ReportDir).
				Validate(validateDir),
		).WithHideFunc(func() bool { return values.Mode != "review" }),
	).WithShowHelp(false).WithShowErrors(true)

	return s
}

func validateDir(s string) error {
	if s == "" {
		return fmt.Errorf("directory is required")
	}
	info, err := os.Stat(s)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("not a directory")
	}
	return nil
}

func validateFile(s string) error {
	if s == "" {
		return fmt.Errorf("path is required")
	}
	info, err := os.Stat(s)
	if err != nil || info.IsDir() {
		return fmt.Errorf("file not found")
	}
	return nil
}

// Init implements tea.Model
func (s *StartScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *StartScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.helpPanel.SetSize(msg.Width/2, msg.Height)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			s.cancelled = true
			return s, tea.Quit
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if field := s.form.GetFocusedField(); field != nil {
		s.helpPanel.SetField(field.GetKey())
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	return s, cmd
}

// View implements tea.Model
func (s *StartScreen) View() string {
	title := components.TitleStyle.Render("PHI Detection")
	subtitle := components.SubtitleStyle.Render("Scan DICOM files for Protected Health Information.")

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		s.form.View(),
		"  ",
		s.helpPanel.View(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, body)
}

// Done reports whether the form completed
func (s *StartScreen) Done() bool { return s.done }

// Cancelled reports whether the user aborted
func (s *StartScreen) Cancelled() bool { return s.cancelled }
