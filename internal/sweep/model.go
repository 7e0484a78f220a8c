package sweep

import (
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lakshaymaurya-felt/baksweep/internal/exclude"
	"github.com/lakshaymaurya-felt/baksweep/internal/scan"
	"github.com/lakshaymaurya-felt/baksweep/internal/trash"
	"github.com/lakshaymaurya-felt/baksweep/internal/ui"
	"github.com/lakshaymaurya-felt/baksweep/internal/volume"
)

// ─── Phases ──────────────────────────────────────────────────────────────────

type phase int

const (
	phaseScanning phase = iota
	phaseReview
	phaseMoving
	phaseDone
)

// ─── Messages ────────────────────────────────────────────────────────────────

// streamMsg hands the model the channel a background worker reports on.
type streamMsg struct {
	ch <-chan tea.Msg
}

type scanVolumeMsg struct {
	root string
}

type scanDirMsg struct {
	path    string
	visited int64
}

type scanFoundMsg struct {
	candidate scan.Candidate
}

type scanDoneMsg struct {
	candidates []scan.Candidate
	warnings   int
	visited    int64
	elapsed    time.Duration
}

type moveItemMsg struct {
	index int
	err   error
}

type moveDoneMsg struct {
	moved  int
	failed int
}

// ─── Model ───────────────────────────────────────────────────────────────────

// itemState tracks one candidate's outcome for the moving view.
type itemState struct {
	name string
	err  string
	done bool
}

// Model is the bubbletea model for the interactive sweep. It walks the
// same engine as the plain runner, phase by phase: scanning, review,
// moving, done.
type Model struct {
	log   Logger
	mover trash.Mover
	vols  []volume.Volume
	env   exclude.Environment
	auto  bool

	spinner spinner.Model
	bar     progress.Model

	phase  phase
	width  int
	height int

	stop       chan struct{}
	stopClosed bool
	stream     <-chan tea.Msg

	scanStart     time.Time
	elapsed       time.Duration
	currentVolume string
	currentDir    string
	visited       int64
	warnings      int

	candidates []scan.Candidate
	totalSize  int64
	cursor     int
	offset     int

	items      []itemState
	moveDone   int
	moveFailed int

	declined  bool
	cancelled bool
	quitting  bool
}

// NewModel builds the interactive model. The volumes are enumerated by
// the caller so an empty list never reaches the TUI.
func NewModel(vols []volume.Volume, env exclude.Environment, mover trash.Mover, log Logger, autoConfirm bool) Model {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(ui.ColorPrimary)

	return Model{
		log:       log,
		mover:     mover,
		vols:      vols,
		env:       env,
		auto:      autoConfirm,
		spinner:   sp,
		bar:       progress.New(progress.WithDefaultGradient()),
		width:     80,
		height:    24,
		stop:      make(chan struct{}),
		scanStart: time.Now(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, startScanCmd(m.vols, m.env, m.log, m.stop))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = max(min(m.width-28, 60), 20)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.phase == phaseScanning {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case progress.FrameMsg:
		updated, cmd := m.bar.Update(msg)
		if next, ok := updated.(progress.Model); ok {
			m.bar = next
		}
		cmds = append(cmds, cmd)

	case streamMsg:
		m.stream = msg.ch
		cmds = append(cmds, waitStream(msg.ch))

	case scanVolumeMsg:
		m.currentVolume = msg.root
		m.currentDir = ""
		cmds = append(cmds, m.rearm())

	case scanDirMsg:
		m.currentDir = msg.path
		m.visited = msg.visited
		cmds = append(cmds, m.rearm())

	case scanFoundMsg:
		m.candidates = append(m.candidates, msg.candidate)
		cmds = append(cmds, m.rearm())

	case scanDoneMsg:
		m.candidates = msg.candidates
		m.warnings = msg.warnings
		m.visited = msg.visited
		m.elapsed = msg.elapsed
		m.stream = nil
		m.totalSize = 0
		for _, c := range m.candidates {
			m.totalSize += c.Size
		}
		if len(m.candidates) == 0 {
			m.phase = phaseDone
			m.log.Info("summary: moved 0 file(s) to trash, 0 failure(s)")
			return m, nil
		}
		if m.auto {
			return m.startMoving()
		}
		m.phase = phaseReview
		return m, nil

	case moveItemMsg:
		m.items[msg.index].done = true
		if msg.err != nil {
			m.items[msg.index].err = msg.err.Error()
			m.moveFailed++
		} else {
			m.moveDone++
		}
		done := msg.index + 1
		cmds = append(cmds,
			m.bar.SetPercent(float64(done)/float64(len(m.candidates))),
			m.rearm())

	case moveDoneMsg:
		m.moveDone = msg.moved
		m.moveFailed = msg.failed
		m.stream = nil
		m.phase = phaseDone
		m.log.Info("summary: moved %d file(s) to trash, %d failure(s)", msg.moved, msg.failed)
		return m, nil
	}

	return m, tea.Batch(cmds...)
}

// View delegates to view.go.
func (m Model) View() string {
	return m.renderView()
}

// Result reports what the run did, for the caller to summarize and
// log after the program exits.
func (m Model) Result() Result {
	return Result{
		Volumes:    len(m.vols),
		Candidates: len(m.candidates),
		Moved:      m.moveDone,
		Failed:     m.moveFailed,
		Warnings:   m.warnings,
		Declined:   m.declined,
		Cancelled:  m.cancelled,
	}
}

// ─── Key handling ────────────────────────────────────────────────────────────

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.phase {
	case phaseScanning:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.closeStop()
			m.cancelled = true
			m.quitting = true
			m.log.Info("run cancelled during scan")
			return m, tea.Quit
		}

	case phaseReview:
		switch msg.String() {
		case "y", "Y":
			return m.startMoving()
		case "n", "N", "q", "esc", "ctrl+c":
			m.declined = true
			m.quitting = true
			m.log.Info("user declined, nothing deleted")
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.ensureVisible()
			}
		case "down", "j":
			if m.cursor < len(m.candidates)-1 {
				m.cursor++
				m.ensureVisible()
			}
		}

	case phaseMoving:
		// The batch runs to completion once started; keys are ignored.
		return m, nil

	case phaseDone:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) closeStop() {
	if !m.stopClosed {
		close(m.stop)
		m.stopClosed = true
	}
}

func (m *Model) ensureVisible() {
	vh := m.viewportHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+vh {
		m.offset = m.cursor - vh + 1
	}
}

func (m Model) viewportHeight() int {
	h := m.height - 10 // header (4) + list header (2) + footer (3) + padding
	if h < 3 {
		h = 3
	}
	return h
}

func (m Model) startMoving() (tea.Model, tea.Cmd) {
	m.phase = phaseMoving
	m.items = make([]itemState, len(m.candidates))
	for i, c := range m.candidates {
		m.items[i].name = filepath.Base(c.Path)
	}
	m.moveDone = 0
	m.moveFailed = 0
	m.log.Info("user confirmed deletion of %d file(s)", len(m.candidates))
	return m, tea.Batch(m.bar.SetPercent(0), startMoveCmd(m.mover, m.candidates, m.log))
}

func (m Model) rearm() tea.Cmd {
	if m.stream == nil {
		return nil
	}
	return waitStream(m.stream)
}

// ─── Commands ────────────────────────────────────────────────────────────────

func startScanCmd(vols []volume.Volume, env exclude.Environment, log Logger, stop <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		ch := make(chan tea.Msg, 64)
		go runScanStream(vols, env, log, stop, ch)
		return streamMsg{ch: ch}
	}
}

// runScanStream builds the exclusion set and walks every volume,
// reporting through ch. Directory updates are droppable; candidates and
// the final result are not.
func runScanStream(vols []volume.Volume, env exclude.Environment, log Logger, stop <-chan struct{}, ch chan<- tea.Msg) {
	defer close(ch)

	roots := make([]string, len(vols))
	for i, v := range vols {
		roots[i] = v.Root
	}
	excl := exclude.Build(env, roots, log)

	w := scan.NewWalker(excl, log)
	w.Stop = stop
	w.OnDir = func(path string) {
		select {
		case ch <- scanDirMsg{path: path, visited: w.Visited()}:
		default:
		}
	}
	w.OnFound = func(c scan.Candidate) {
		send(ch, stop, scanFoundMsg{candidate: c})
	}

	start := time.Now()
	var all []scan.Candidate
	for _, v := range vols {
		if !send(ch, stop, scanVolumeMsg{root: v.Root}) {
			return
		}
		log.Info("scanning volume: %s", v.Root)
		all = append(all, w.Walk(v.Root)...)
	}
	log.Info("scan finished: %d directories visited, %d candidate(s), %d warning(s)",
		w.Visited(), len(all), len(w.Warnings()))
	send(ch, stop, scanDoneMsg{
		candidates: all,
		warnings:   len(w.Warnings()),
		visited:    w.Visited(),
		elapsed:    time.Since(start),
	})
}

// startMoveCmd runs the batch in the background, streaming one message
// per item. Batch messages are never dropped.
func startMoveCmd(mover trash.Mover, candidates []scan.Candidate, log Logger) tea.Cmd {
	return func() tea.Msg {
		ch := make(chan tea.Msg, 1)
		go func() {
			defer close(ch)
			moved, failed := ExecuteBatch(mover, candidates, log, func(i int, _ scan.Candidate, err error) {
				ch <- moveItemMsg{index: i, err: err}
			})
			ch <- moveDoneMsg{moved: moved, failed: failed}
		}()
		return streamMsg{ch: ch}
	}
}

// send delivers a required message unless the run is being torn down.
func send(ch chan<- tea.Msg, stop <-chan struct{}, msg tea.Msg) bool {
	select {
	case ch <- msg:
		return true
	case <-stop:
		return false
	}
}

func waitStream(ch <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}
