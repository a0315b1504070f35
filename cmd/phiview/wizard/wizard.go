package wizard

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mrsinham/phiview/cmd/phiview/wizard/screens"
	"github.com/mrsinham/phiview/internal/htmlreport"
	"github.com/mrsinham/phiview/internal/report"
	"github.com/mrsinham/phiview/internal/scanner"
	"github.com/mrsinham/phiview/internal/section"
)

// cacheSize is how many parsed report directories the wizard keeps
// around. Switching between a handful of scans should never reparse.
const cacheSize = 8

// Wizard drives the start → running → ready flow. All mutable data
// lives in ctx; the Wizard itself only holds screens and plumbing.
type Wizard struct {
	ctx   *Context
	phase Phase
	cache *report.Cache

	startValues     screens.StartValues
	startScreen     *screens.StartScreen
	runningScreen   *screens.RunningScreen
	dashboardScreen *screens.DashboardScreen
	errorScreen     *screens.ErrorScreen

	// Scan plumbing: the scan goroutine feeds lines while running and
	// exactly one final message when it stops.
	scanLines chan string
	scanDone  chan tea.Msg

	width  int
	height int

	cancelled bool
	err       error
}

// NewWizard creates a wizard, optionally pre-filled from a loaded config.
func NewWizard(cfg *Config) (*Wizard, error) {
	cache, err := report.NewCache(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating report cache: %w", err)
	}

	w := &Wizard{
		ctx:   &Context{},
		phase: PhaseStart,
		cache: cache,
	}
	if cfg != nil {
		w.startValues = cfg.startValues()
	}
	w.startScreen = screens.NewStartScreen(&w.startValues)
	return w, nil
}

// transition moves to the next phase, enforcing the transition table.
func (w *Wizard) transition(to Phase) {
	if !canTransition(w.phase, to) {
		panic(fmt.Sprintf("wizard: illegal transition %s -> %s", w.phase, to))
	}
	w.phase = to
}

// Init implements tea.Model.
func (w *Wizard) Init() tea.Cmd {
	return w.startScreen.Init()
}

// Update implements tea.Model.
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		w.width = wsm.Width
		w.height = wsm.Height
	}

	switch w.phase {
	case PhaseStart:
		return w.updateStart(msg)
	case PhaseRunning:
		return w.updateRunning(msg)
	case PhaseReady:
		return w.updateReady(msg)
	case PhaseError:
		return w.updateError(msg)
	}

	return w, nil
}

// View implements tea.Model.
func (w *Wizard) View() string {
	switch w.phase {
	case PhaseStart:
		return w.startScreen.View()
	case PhaseRunning:
		return w.runningScreen.View()
	case PhaseReady:
		return w.dashboardScreen.View()
	case PhaseError:
		return w.errorScreen.View()
	}
	return ""
}

// updateStart handles the start phase.
func (w *Wizard) updateStart(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.startScreen.Update(msg)
	if s, ok := model.(*screens.StartScreen); ok {
		w.startScreen = s
	}

	if w.startScreen.Cancelled() {
		w.cancelled = true
		w.cleanup()
		return w, tea.Quit
	}

	if w.startScreen.Done() {
		w.applyStartValues()
		switch w.ctx.Mode {
		case ModeScan:
			return w.startScan()
		case ModeReview:
			return w.openReport()
		}
	}

	return w, cmd
}

// applyStartValues copies the completed form into the context.
func (w *Wizard) applyStartValues() {
	v := w.startValues
	if v.Mode == "review" {
		w.ctx.Mode = ModeReview
	} else {
		w.ctx.Mode = ModeScan
	}
	w.ctx.InputDir = v.InputDir
	w.ctx.ReportDir = v.ReportDir
	w.ctx.Project = v.Project
	if w.ctx.Project == "" {
		switch w.ctx.Mode {
		case ModeScan:
			w.ctx.Project = filepath.Base(v.InputDir)
		case ModeReview:
			w.ctx.Project = filepath.Base(v.ReportDir)
		}
	}
	w.ctx.JarPath = v.Jar
	w.ctx.RulesPath = v.Rules
	w.ctx.HTMLPath = v.HTMLPath
}

// startScan launches the tag sniffer in a goroutine and moves to the
// running phase. Output lines are pumped into the update loop one
// message at a time.
func (w *Wizard) startScan() (tea.Model, tea.Cmd) {
	javaPath, err := scanner.FindJava()
	if err != nil {
		return w.fail(err)
	}
	w.ctx.JavaPath = javaPath

	reportDir, err := os.MkdirTemp("", "phiview-report-*")
	if err != nil {
		return w.fail(fmt.Errorf("creating report directory: %w", err))
	}
	w.ctx.ReportDir = reportDir
	w.ctx.TempReport = true

	w.transition(PhaseRunning)
	w.runningScreen = screens.NewRunningScreen(w.ctx.InputDir)

	w.scanLines = make(chan string, 64)
	w.scanDone = make(chan tea.Msg, 1)

	runner := scanner.Runner{
		Java:  w.ctx.JavaPath,
		Jar:   w.ctx.JarPath,
		Rules: w.ctx.RulesPath,
	}
	lines := w.scanLines
	done := w.scanDone
	inputDir := w.ctx.InputDir
	go func() {
		err := runner.Run(context.Background(), inputDir, reportDir, func(line string) {
			lines <- line
		})
		close(lines)
		if err != nil {
			done <- screens.ScanErrorMsg{Err: err}
			return
		}
		model, err := w.buildModel(reportDir)
		if err != nil {
			done <- screens.ScanErrorMsg{Err: err}
			return
		}
		done <- screens.ScanReadyMsg{Model: model}
	}()

	return w, tea.Batch(w.runningScreen.Init(), w.listenScan())
}

// listenScan returns a command that delivers the next scan message:
// an output line while the scanner runs, then the final result.
func (w *Wizard) listenScan() tea.Cmd {
	lines := w.scanLines
	done := w.scanDone
	return func() tea.Msg {
		if line, ok := <-lines; ok {
			return screens.ScanLineMsg{Line: line}
		}
		return <-done
	}
}

// buildModel parses a report directory and aggregates it into sections.
func (w *Wizard) buildModel(dir string) (*section.Model, error) {
	rep, err := w.cache.Load(dir)
	if err != nil {
		return nil, err
	}
	return section.Build(rep)
}

// openReport loads an existing report directory and goes straight to
// the ready phase.
func (w *Wizard) openReport() (tea.Model, tea.Cmd) {
	model, err := w.buildModel(w.ctx.ReportDir)
	if err != nil {
		return w.fail(err)
	}
	w.ctx.Model = model
	w.transition(PhaseReady)
	return w, w.showDashboard()
}

// updateRunning handles the running phase.
func (w *Wizard) updateRunning(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case screens.ScanLineMsg:
		model, _ := w.runningScreen.Update(msg)
		if rs, ok := model.(*screens.RunningScreen); ok {
			w.runningScreen = rs
		}
		return w, w.listenScan()

	case screens.ScanReadyMsg:
		w.ctx.Model = msg.Model
		w.transition(PhaseReady)
		return w, w.showDashboard()

	case screens.ScanErrorMsg:
		w.err = msg.Err
		w.transition(PhaseError)
		w.errorScreen = screens.NewErrorScreen(msg.Err)
		return w, nil
	}

	model, cmd := w.runningScreen.Update(msg)
	if rs, ok := model.(*screens.RunningScreen); ok {
		w.runningScreen = rs
	}

	if w.runningScreen.Cancelled() {
		w.cancelled = true
		w.cleanup()
		return w, tea.Quit
	}

	return w, cmd
}

// showDashboard builds the section browser and replays the current
// window size so the viewport lays itself out immediately.
func (w *Wizard) showDashboard() tea.Cmd {
	w.dashboardScreen = screens.NewDashboardScreen(w.ctx.Model, w.ctx.Project)
	if w.width > 0 {
		w.dashboardScreen.Update(tea.WindowSizeMsg{Width: w.width, Height: w.height})
	}
	return w.dashboardScreen.Init()
}

// updateReady handles the ready phase.
func (w *Wizard) updateReady(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.dashboardScreen.Update(msg)
	if ds, ok := model.(*screens.DashboardScreen); ok {
		w.dashboardScreen = ds
	}

	if w.dashboardScreen.SaveRequested() {
		if err := w.saveHTML(); err != nil {
			w.dashboardScreen.SetNotice("Save failed: " + err.Error())
		} else {
			w.dashboardScreen.SetNotice("Report saved to " + w.ctx.HTMLPath)
		}
		return w, cmd
	}

	if w.dashboardScreen.RestartRequested() {
		return w.restart()
	}

	if w.dashboardScreen.Cancelled() {
		w.cleanup()
		return w, tea.Quit
	}

	return w, cmd
}

// saveHTML renders the current model and writes it to the configured path.
func (w *Wizard) saveHTML() error {
	path := w.ctx.HTMLPath
	if path == "" {
		path = "phi_report.html"
	}
	html := htmlreport.Render(w.ctx.Model, w.ctx.Project, time.Now())
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("writing HTML report: %w", err)
	}
	return nil
}

// restart drops the current report and returns to the start screen.
func (w *Wizard) restart() (tea.Model, tea.Cmd) {
	w.cleanup()
	w.ctx.Model = nil
	w.transition(PhaseStart)
	w.startScreen = screens.NewStartScreen(&w.startValues)
	return w, w.startScreen.Init()
}

// updateError handles the error phase.
func (w *Wizard) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.errorScreen.Update(msg)
	if es, ok := model.(*screens.ErrorScreen); ok {
		w.errorScreen = es
	}

	if w.errorScreen.Retry() {
		return w.restart()
	}

	if w.errorScreen.Cancelled() {
		w.cleanup()
		return w, tea.Quit
	}

	return w, cmd
}

// cleanup removes the wizard-created report directory. Scanner output
// contains PHI; it must not outlive the session unless the user chose
// the directory themselves.
func (w *Wizard) cleanup() {
	if w.ctx.TempReport && w.ctx.ReportDir != "" {
		os.RemoveAll(w.ctx.ReportDir)
		w.ctx.ReportDir = ""
		w.ctx.TempReport = false
	}
}

// Run starts the interactive wizard. If fromConfig is provided, the
// start screen is pre-filled from that YAML file.
func Run(fromConfig string) error {
	var cfg *Config
	if fromConfig != "" {
		absPath, err := filepath.Abs(fromConfig)
		if err != nil {
			return fmt.Errorf("resolving config path: %w", err)
		}
		loaded, err := LoadFromYAML(absPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	wizard, err := NewWizard(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(wizard, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}

	if w, ok := finalModel.(*Wizard); ok {
		w.cleanup()
		if w.cancelled {
			return nil
		}
	}

	return nil
}

// fail records err and moves to the error phase from wherever we are.
func (w *Wizard) fail(err error) (tea.Model, tea.Cmd) {
	w.err = err
	// Start can only reach Error through Running in the transition
	// table; failures before the scan launches take the same route.
	if w.phase == PhaseStart {
		w.transition(PhaseRunning)
	}
	w.transition(PhaseError)
	w.errorScreen = screens.NewErrorScreen(err)
	return w, nil
}
