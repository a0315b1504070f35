package screens

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/phiview/cmd/phiview/wizard/components"
	"github.com/mrsinham/phiview/internal/section"
)

var (
	tabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("243"))

	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("205"))

	groupTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	cleanStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	reviewStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
)

// DashboardScreen browses the built report sections in the terminal
type DashboardScreen struct {
	model    *section.Model
	project  string
	viewport viewport.Model
	index    int
	width    int
	height   int
	ready    bool
	notice   string

	wantSave    bool
	wantRestart bool
	cancelled   bool
}

// NewDashboardScreen creates the section browser for a built report
func NewDashboardScreen(model *section.Model, project string) *DashboardScreen {
	return &DashboardScreen{model: model, project: project}
}

// Init implements tea.Model
func (s *DashboardScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s *DashboardScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		headerHeight := 4
		footerHeight := 2
		if !s.ready {
			s.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			s.ready = true
		} else {
			s.viewport.Width = msg.Width
			s.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		s.refresh()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			s.cancelled = true
			return s, tea.Quit
		case "right", "l", "tab":
			s.index = (s.index + 1) % len(s.model.Sections)
			s.notice = ""
			s.refresh()
		case "left", "h", "shift+tab":
			s.index = (s.index - 1 + len(s.model.Sections)) % len(s.model.Sections)
			s.notice = ""
			s.refresh()
		case "s":
			s.wantSave = true
		case "n":
			s.wantRestart = true
		}
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

func (s *DashboardScreen) refresh() {
	if !s.ready || len(s.model.Sections) == 0 {
		return
	}
	s.viewport.SetContent(renderSection(s.model.Sections[s.index]))
	s.viewport.GotoTop()
}

// View implements tea.Model
func (s *DashboardScreen) View() string {
	if !s.ready {
		return "loading..."
	}

	title := "PHI Report"
	if s.project != "" {
		title += " - " + s.project
	}

	var tabs []string
	for i, sec := range s.model.Sections {
		if i == s.index {
			tabs = append(tabs, activeTabStyle.Render(sec.Title))
		} else {
			tabs = append(tabs, tabStyle.Render(sec.Title))
		}
	}

	footer := components.HintStyle.Render(
		"left/right switch section | s save HTML | n new scan | q quit")
	if s.notice != "" {
		footer = noticeStyle.Render(s.notice) + "\n" + footer
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render(title),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		"",
		s.viewport.View(),
		footer,
	)
}

// SaveRequested reports and clears a pending save request
func (s *DashboardScreen) SaveRequested() bool {
	if s.wantSave {
		s.wantSave = false
		return true
	}
	return false
}

// RestartRequested reports and clears a pending new-scan request
func (s *DashboardScreen) RestartRequested() bool {
	if s.wantRestart {
		s.wantRestart = false
		return true
	}
	return false
}

// Cancelled reports whether the user quit
func (s *DashboardScreen) Cancelled() bool { return s.cancelled }

// SetNotice shows a transient status message under the viewport
func (s *DashboardScreen) SetNotice(msg string) { s.notice = msg }

// renderSection turns one section into plain styled text for the viewport.
// Tables are sorted the same way as the HTML report but never truncated;
// the terminal viewport can scroll through everything.
func renderSection(sec section.Section) string {
	var b strings.Builder
	writeNodes(&b, sec.Nodes, 0)
	return b.String()
}

func writeNodes(b *strings.Builder, nodes []section.Node, depth int) {
	pad := strings.Repeat("  ", depth)
	for _, n := range nodes {
		switch n := n.(type) {
		case section.Metrics:
			for _, m := range n.Items {
				fmt.Fprintf(b, "%s%s: %s\n", pad, labelStyle.Render(m.Label), m.Value)
			}
			b.WriteString("\n")
		case section.List:
			fmt.Fprintf(b, "%s%s\n", pad, groupTitleStyle.Render(n.Title))
			if len(n.Items) == 0 {
				fmt.Fprintf(b, "%s  %s\n", pad, n.Empty)
			}
			for _, item := range n.Items {
				fmt.Fprintf(b, "%s  - %s\n", pad, item)
			}
			b.WriteString("\n")
		case section.Table:
			writeTextTable(b, n, pad)
		case section.ValueList:
			writeTextValueList(b, n, pad)
		case section.Callout:
			style := successStyle
			if n.Severity == section.SeverityWarning {
				style = warnStyle
			}
			fmt.Fprintf(b, "%s%s\n\n", pad, style.Render(n.Text))
		case section.Group:
			fmt.Fprintf(b, "%s%s\n", pad, groupTitleStyle.Render("== "+n.Title+" =="))
			writeNodes(b, n.Children, depth+1)
		case section.Heading:
			fmt.Fprintf(b, "%s%s\n\n", pad, groupTitleStyle.Render(n.Text))
		}
	}
}

func writeTextTable(b *strings.Builder, t section.Table, pad string) {
	if t.Title != "" {
		fmt.Fprintf(b, "%s%s\n", pad, groupTitleStyle.Render(t.Title))
	}
	if len(t.Rows) == 0 {
		fmt.Fprintf(b, "%s  %s\n\n", pad, t.Empty)
		return
	}

	rows := make([][]string, len(t.Rows))
	copy(rows, t.Rows)
	if len(t.SortKeys) == len(rows) {
		keys := make([]int, len(t.SortKeys))
		copy(keys, t.SortKeys)
		order := make([]int, len(rows))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(i, j int) bool {
			return keys[order[i]] > keys[order[j]]
		})
		sorted := make([][]string, len(rows))
		for i, idx := range order {
			sorted[i] = rows[idx]
		}
		rows = sorted
	}

	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = len(c)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	fmt.Fprintf(b, "%s  ", pad)
	for i, c := range t.Columns {
		fmt.Fprintf(b, "%-*s  ", widths[i], c)
	}
	b.WriteString("\n")
	for _, row := range rows {
		fmt.Fprintf(b, "%s  ", pad)
		for i, cell := range row {
			if i < len(widths) {
				fmt.Fprintf(b, "%-*s  ", widths[i], cell)
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func writeTextValueList(b *strings.Builder, v section.ValueList, pad string) {
	label := labelStyle.Render(v.Label)
	if v.Annotation != "" {
		label += " " + components.HintStyle.Render(v.Annotation)
	}
	switch v.Status {
	case section.StatusClean:
		fmt.Fprintf(b, "%s%s  %s\n", pad, label, cleanStyle.Render("empty / clean"))
	case section.StatusReview:
		fmt.Fprintf(b, "%s%s  %s\n", pad, label,
			reviewStyle.Render(fmt.Sprintf("%d value(s)", len(v.Values))))
	default:
		fmt.Fprintf(b, "%s%s\n", pad, label)
	}
	for _, val := range v.Values {
		if val == "" {
			val = "<empty>"
		}
		fmt.Fprintf(b, "%s  - %s\n", pad, val)
	}
}
