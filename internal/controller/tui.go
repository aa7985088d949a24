package controller

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "preach.dev/pkg/preach/internal/model"
)

const maxRecentFindings = 6

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 2)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	luckyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	newStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options)

	t.mu.Lock()
	defer t.mu.Unlock()

	t.program = tea.NewProgram(newSearchModel(cfg), tea.WithOutput(t.output), tea.WithAltScreen())
	t.done = make(chan struct{})

	go func(program *tea.Program, done chan struct{}) {
		defer close(done)

		_, _ = program.Run()
	}(t.program, t.done)

	return nil
}

// Close stops the program.
func (t *TUI) Close(_ context.Context) {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program = nil
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// Wait blocks until the user quits the program.
func (t *TUI) Wait(ctx context.Context) {
	t.mu.Lock()
	program, done := t.program, t.done
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(finishedMsg{})

	select {
	case <-ctx.Done():
	case <-done:
	}
}

// DisplayRunInfo implements UI.
func (t *TUI) DisplayRunInfo(_ context.Context, info RunInfo) {
	t.send(runInfoMsg(info))
}

// DisplayProgress implements UI.
func (t *TUI) DisplayProgress(_ context.Context, p m.Progress) {
	t.send(progressMsg(p))
}

// DisplayFinding implements UI.
func (t *TUI) DisplayFinding(_ context.Context, f m.Finding) {
	t.send(findingMsg(f))
}

// DisplayStats implements UI.
func (t *TUI) DisplayStats(_ context.Context, stats m.SearchStats) {
	t.send(statsMsg(stats))
}

// DisplayCoverage implements UI.
func (t *TUI) DisplayCoverage(_ context.Context, coverage []m.FunctionCoverage) {
	t.send(coverageMsg(coverage))
}

// DisplayInput implements UI.
func (t *TUI) DisplayInput(_ context.Context, input []int64) {
	t.send(inputMsg(input))
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

type (
	runInfoMsg  RunInfo
	progressMsg m.Progress
	findingMsg  m.Finding
	statsMsg    m.SearchStats
	coverageMsg []m.FunctionCoverage
	inputMsg    []int64
	finishedMsg struct{}
)

// searchModel is the Bubble Tea model of a running search.
type searchModel struct {
	mode      StartMode
	interrupt context.CancelFunc

	info     RunInfo
	progress m.Progress
	bar      progress.Model
	findings []m.Finding
	stats    *m.SearchStats
	coverage []m.FunctionCoverage
	input    []int64

	finished bool
	height   int
	width    int
	offset   int // Current scroll offset of the coverage list
}

func newSearchModel(cfg StartConfig) searchModel {
	return searchModel{
		mode:      cfg.mode,
		interrupt: cfg.interrupt,
		bar:       progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

func (sm searchModel) Init() tea.Cmd {
	return nil
}

func (sm searchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.height = msg.Height
		sm.width = msg.Width
		sm.bar.Width = min(max(msg.Width-20, 10), 60)

		return sm, nil

	case tea.KeyMsg:
		return sm.handleKeyPress(msg)

	case runInfoMsg:
		sm.info = RunInfo(msg)
	case progressMsg:
		sm.progress = m.Progress(msg)
	case findingMsg:
		sm.findings = append(sm.findings, m.Finding(msg))
		if len(sm.findings) > maxRecentFindings {
			sm.findings = sm.findings[len(sm.findings)-maxRecentFindings:]
		}
	case statsMsg:
		stats := m.SearchStats(msg)
		sm.stats = &stats
	case coverageMsg:
		sm.coverage = []m.FunctionCoverage(msg)
	case inputMsg:
		sm.input = []int64(msg)
	case finishedMsg:
		sm.finished = true
	}

	return sm, nil
}

//nolint:exhaustive // Key handling only covers navigation keys
func (sm searchModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return sm.quit()
	default:
		// Handle other key types in the string switch below
	}

	switch msg.String() {
	case "q":
		return sm.quit()

	case "down", "j":
		sm.offset = min(sm.offset+1, sm.maxOffset())

	case "up", "k":
		sm.offset = max(sm.offset-1, 0)

	case "d", "pgdown":
		sm.offset = min(sm.offset+sm.itemsPerPage(), sm.maxOffset())

	case "u", "pgup":
		sm.offset = max(sm.offset-sm.itemsPerPage(), 0)
	}

	return sm, nil
}

func (sm searchModel) quit() (tea.Model, tea.Cmd) {
	if !sm.finished && sm.interrupt != nil {
		sm.interrupt()
	}

	return sm, tea.Quit
}

// itemsPerPage calculates how many coverage rows fit on screen.
func (sm searchModel) itemsPerPage() int {
	if sm.height == 0 {
		return 10 // Default
	}

	reserved := 14

	return max(sm.height-reserved, 1)
}

// maxOffset returns the maximum scroll offset.
func (sm searchModel) maxOffset() int {
	return max(len(sm.coverage)-sm.itemsPerPage(), 0)
}

func (sm searchModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Preach - Concolic Search"))
	b.WriteString("\n\n")

	if sm.info.Strategy != "" {
		fmt.Fprintf(&b, "  %s %s   %s %s\n", labelStyle.Render("strategy"), sm.info.Strategy, labelStyle.Render("run"), sm.info.RunID)
	}

	if sm.mode != ModeReport {
		sm.renderProgress(&b)
		sm.renderFindings(&b)
	}

	if sm.stats != nil {
		b.WriteString("\n")

		for _, row := range statsRows(*sm.stats) {
			fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render(row[0]+":"), row[1])
		}
	}

	if len(sm.coverage) > 0 {
		sm.renderCoverage(&b)
	}

	if sm.input != nil {
		fmt.Fprintf(&b, "\n  %s %s\n", labelStyle.Render("inputs:"), formatInput(sm.input))
	}

	b.WriteString("\n")

	if sm.finished {
		b.WriteString(helpStyle.Render("  Press 'q' to quit"))
	} else {
		b.WriteString(helpStyle.Render("  Press 'q' to stop the search"))
	}

	b.WriteString("\n")

	return b.String()
}

func (sm searchModel) renderProgress(b *strings.Builder) {
	p := sm.progress

	ratio := 0.0
	if p.TotalBranches > 0 {
		ratio = float64(p.TotalCovered) / float64(p.TotalBranches)
	}

	fmt.Fprintf(b, "\n  %s\n", sm.bar.ViewAs(ratio))
	fmt.Fprintf(b, "  %s %d   %s %ds   %s %d/%d   %s %d\n",
		labelStyle.Render("iteration"), p.Iteration,
		labelStyle.Render("elapsed"), int(p.Elapsed.Seconds()),
		labelStyle.Render("covered"), p.TotalCovered, p.TotalBranches,
		labelStyle.Render("round"), p.RoundCovered)
	fmt.Fprintf(b, "  %s %d funs, %d branches\n",
		labelStyle.Render("reachable"), p.ReachableFunctions, p.ReachableBranches)
}

func (sm searchModel) renderFindings(b *strings.Builder) {
	if len(sm.findings) == 0 {
		return
	}

	b.WriteString("\n")

	for _, f := range sm.findings {
		style, kind := newStyle, "new"
		if f.Lucky {
			style, kind = luckyStyle, "lucky"
		}

		fmt.Fprintf(b, "  %s #%d %s\n", style.Render(fmt.Sprintf("%-5s", kind)), f.Iteration, formatBranches(f.NewBranches, 8))
	}
}

func (sm searchModel) renderCoverage(b *strings.Builder) {
	b.WriteString("\n")

	start := min(sm.offset, sm.maxOffset())
	end := min(start+sm.itemsPerPage(), len(sm.coverage))

	for _, fc := range sm.coverage[start:end] {
		fmt.Fprintf(b, "  %-12d %5d/%-5d %6s%%\n", fc.Function, fc.Covered, fc.Branches, formatPercent(fc.Covered, fc.Branches))
	}

	if end-start < len(sm.coverage) {
		fmt.Fprintf(b, "  %s\n", helpStyle.Render(fmt.Sprintf("functions %d-%d of %d (j/k to scroll)", start+1, end, len(sm.coverage))))
	}
}
