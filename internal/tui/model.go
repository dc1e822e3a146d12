package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/agbru/fibworker/internal/errors"
	"github.com/agbru/fibworker/internal/executor"
	"github.com/agbru/fibworker/internal/fibonacci"
	"github.com/agbru/fibworker/internal/logging"
	"github.com/agbru/fibworker/internal/metrics"
	"github.com/agbru/fibworker/internal/sysmon"
)

// sysInterval is the period of the CPU and runtime samples.
const sysInterval = 500 * time.Millisecond

type focusTarget int

const (
	focusInput focusTarget = iota
	focusWorker
	focusMain
	focusClick
	focusCount
)

// Options carries the collaborators of the page.
type Options struct {
	Foreground *executor.Foreground
	Background *executor.Background
	// N prefills the number input.
	N int64
	// Deferral is the wait between painting "Calculating..." and blocking.
	Deferral time.Duration
	Version  string
	Logger   logging.Logger
}

// LayoutManager holds terminal dimensions and provides layout calculations.
type LayoutManager struct {
	width  int
	height int
}

// columnWidth returns the outer width of one result panel.
func (l LayoutManager) columnWidth() int {
	return l.width / 2
}

// Model is the root bubbletea model. Its Update is the primary execution
// context: the main-thread computation runs inside it.
type Model struct {
	header  HeaderModel
	input   textinput.Model
	worker  PanelModel
	main    PanelModel
	probe   ProbeModel
	metrics MetricsModel
	footer  FooterModel
	keymap  KeyMap
	focus   focusTarget

	LayoutManager

	ctx      context.Context
	fg       *executor.Foreground
	bg       *executor.Background
	deferral time.Duration
	runtime  *metrics.RuntimeCollector
	logger   logging.Logger
}

// NewModel creates the page with the input focused.
func NewModel(ctx context.Context, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	if opts.Foreground == nil {
		opts.Foreground = executor.NewForeground(executor.WithLogger(opts.Logger))
	}

	input := newNumberInput(opts.N)
	input.Focus()

	return Model{
		header: NewHeaderModel(opts.Version),
		input:  input,
		worker: NewPanelModel("With Isolated Worker", "UI remains responsive while calculating",
			"Calculate with Worker", workerTitleStyle),
		main: NewPanelModel("Without Worker", "UI freezes while calculating",
			"Calculate on Main Thread", mainTitleStyle),
		probe:    NewProbeModel(),
		metrics:  NewMetricsModel(),
		footer:   NewFooterModel(),
		keymap:   DefaultKeyMap(),
		focus:    focusInput,
		ctx:      ctx,
		fg:       opts.Foreground,
		bg:       opts.Background,
		deferral: opts.Deferral,
		runtime:  metrics.NewRuntimeCollector(),
		logger:   opts.Logger,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.probe.spinner.Tick,
		probeTickCmd(),
		sampleSysStatsCmd(),
		sampleMemStatsCmd(m.runtime),
		sysTickCmd(),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case foregroundStartMsg:
		// Blocks the event loop until the whole call tree has returned.
		out := m.fg.Run(m.ctx, msg.n)
		m.main.Finish(out)
		return m, nil

	case backgroundResultMsg:
		if errors.Is(msg.err, executor.ErrSuperseded) || !m.bg.IsCurrent(msg.jobID) {
			m.logger.Debug("dropping result of superseded job", logging.Uint64("job", msg.jobID))
			return m, nil
		}
		if msg.err != nil {
			m.worker.Fail(msg.err)
			return m, nil
		}
		m.worker.Finish(msg.outcome)
		return m, nil

	case probeTickMsg:
		m.probe.RecordLag(time.Since(time.Time(msg)))
		return m, probeTickCmd()

	case sysTickMsg:
		return m, tea.Batch(sampleSysStatsCmd(), sampleMemStatsCmd(m.runtime), sysTickCmd())

	case SysStatsMsg:
		m.metrics.UpdateSysStats(msg.Stats)
		return m, nil

	case MemStatsMsg:
		m.metrics.UpdateRuntime(msg.RuntimeSnapshot)
		return m, nil
	}

	// Spinner ticks and cursor blinks.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.probe, cmd = m.probe.Update(msg)
	cmds = append(cmds, cmd)
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.bg.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Next):
		return m, m.setFocus((m.focus + 1) % focusCount)

	case key.Matches(msg, m.keymap.Prev):
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)

	case key.Matches(msg, m.keymap.Worker):
		return m.startBackground()

	case key.Matches(msg, m.keymap.Main):
		return m.startForeground()

	case key.Matches(msg, m.keymap.Click):
		m.probe.Increment()
		return m, nil

	case key.Matches(msg, m.keymap.Help):
		m.footer.ToggleHelp()
		return m, nil

	case key.Matches(msg, m.keymap.Activate):
		switch m.focus {
		case focusWorker:
			return m.startBackground()
		case focusMain:
			return m.startForeground()
		case focusClick:
			m.probe.Increment()
		}
		return m, nil
	}

	if m.focus != focusInput {
		return m, nil
	}
	filtered, ok := filterInputKey(msg)
	if !ok {
		return m, nil
	}
	m.footer.SetHint("")
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(filtered)
	return m, cmd
}

func (m *Model) setFocus(f focusTarget) tea.Cmd {
	m.focus = f
	if f == focusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

// readInput parses the number field at the moment of dispatch.
func (m *Model) readInput() (int64, bool) {
	n, err := parseInput(m.input.Value())
	if err != nil {
		m.logger.Debug("input rejected", logging.Err(err))
		m.footer.SetHint(inputProblem(err))
		return 0, false
	}
	m.footer.SetHint("")
	if n > fibonacci.AdvisoryMax {
		m.logger.Warn("input above advisory range", logging.Int64("input", n))
	}
	return n, true
}

// startForeground paints the working state and defers the computation so
// the frame is flushed before the event loop blocks.
func (m Model) startForeground() (tea.Model, tea.Cmd) {
	n, ok := m.readInput()
	if !ok {
		return m, nil
	}
	m.main.Start()
	return m, tea.Tick(m.deferral, func(time.Time) tea.Msg {
		return foregroundStartMsg{n: n}
	})
}

// startBackground supersedes any running worker and waits for the new one
// off the event loop.
func (m Model) startBackground() (tea.Model, tea.Cmd) {
	n, ok := m.readInput()
	if !ok {
		return m, nil
	}
	m.worker.Start()
	job, err := m.bg.Dispatch(m.ctx, n)
	if err != nil {
		m.worker.Fail(err)
		return m, nil
	}
	return m, waitJobCmd(m.ctx, job)
}

func waitJobCmd(ctx context.Context, job *executor.Job) tea.Cmd {
	return func() tea.Msg {
		out, err := job.Wait(ctx)
		return backgroundResultMsg{jobID: job.ID, outcome: out, err: err}
	}
}

// View renders the entire page.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	intro := introStyle.Render("Calculate Fibonacci numbers with and without an isolated worker to see the difference.")

	field := inputStyle
	if m.focus == focusInput {
		field = focusedInputStyle
	}
	inputRow := lipgloss.JoinHorizontal(lipgloss.Center,
		" ",
		labelStyle.Render("Enter a number (try 35-45): "),
		field.Render(m.input.View()),
	)

	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		m.worker.View(m.focus == focusWorker),
		m.main.View(m.focus == focusMain),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		intro,
		inputRow,
		columns,
		m.probe.View(m.focus == focusClick, m.width),
		m.metrics.View(),
		m.footer.View(m.keymap),
	)
}

func (m *Model) layout() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.worker.SetWidth(m.columnWidth())
	m.main.SetWidth(m.width - m.columnWidth())
	m.metrics.SetWidth(m.width)
}

// Run is the public entry point for the interactive mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, opts Options) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, opts)
	defer opts.Background.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return apperrors.ExitCodeFor(ctx.Err())
		}
		model.logger.Error("interactive session failed", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// probeTickCmd fires once per probe interval.
func probeTickCmd() tea.Cmd {
	return tea.Tick(probeInterval, func(t time.Time) tea.Msg {
		return probeTickMsg(t)
	})
}

func sysTickCmd() tea.Cmd {
	return tea.Tick(sysInterval, func(t time.Time) tea.Msg {
		return sysTickMsg(t)
	})
}

// sampleSysStatsCmd reads system-wide CPU and memory stats off the event loop.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		return SysStatsMsg{Stats: sysmon.Sample()}
	}
}

// sampleMemStatsCmd reads runtime memory stats and returns a MemStatsMsg.
func sampleMemStatsCmd(rc *metrics.RuntimeCollector) tea.Cmd {
	return func() tea.Msg {
		return MemStatsMsg{RuntimeSnapshot: rc.Snapshot()}
	}
}
