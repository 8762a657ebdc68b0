package ui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arodionov/timesheet/internal/config"
	"github.com/arodionov/timesheet/internal/notify"
	"github.com/arodionov/timesheet/internal/session"
	"github.com/arodionov/timesheet/internal/workbook"
)

type focusPane int

const (
	focusProjects focusPane = iota
	focusActivities
)

type tickMsg struct{ now time.Time }

func tickNow() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg{now: t} })
}

// Model renders the one-window timer: two pickers fed by the reference sheet,
// a clock readout and a status line. Every session transition goes through
// the store so the CLI sees the same state.
type Model struct {
	cfg   config.Config
	store *session.Store
	ref   workbook.Reference

	focus   focusPane
	projIdx int
	actIdx  int

	sess *session.Session

	status      string
	statusIsErr bool
	showHelp    bool

	width, height int
	th            Theme
}

func NewModel(cfg config.Config, store *session.Store, ref workbook.Reference) Model {
	m := Model{
		cfg:     cfg,
		store:   store,
		ref:     ref,
		projIdx: indexOf(ref.Projects, cfg.DefaultProject),
		actIdx:  indexOf(ref.Activities, cfg.DefaultActivity),
		th:      DefaultTheme,
	}

	// Resume an already-tracked session, e.g. one started from the CLI.
	if sess, err := m.store.Active(); err == nil {
		m.sess = sess
		m.projIdx = indexOf(ref.Projects, sess.Project)
		m.actIdx = indexOf(ref.Activities, sess.Activity)
	}
	return m
}

func indexOf(items []string, s string) int {
	for i, it := range items {
		if it == s {
			return i
		}
	}
	return 0
}

func Run(cfg config.Config, store *session.Store, ref workbook.Reference) error {
	p := tea.NewProgram(NewModel(cfg, store, ref), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tickNow()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, tickNow()
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		// A running session stays in the store and keeps accruing.
		return m, tea.Quit
	case "tab", "shift+tab", "left", "right", "h", "l":
		if m.focus == focusProjects {
			m.focus = focusActivities
		} else {
			m.focus = focusProjects
		}
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "s", " ":
		return m.toggle(), nil
	case "enter", "x":
		return m.stopAndLog(), nil
	case "c":
		return m.cancel(), nil
	case "r":
		return m.reloadReference(), nil
	case "?":
		m.showHelp = true
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if m.sess != nil {
		return // selection is fixed while a session is active
	}
	if m.focus == focusProjects {
		m.projIdx = clamp(m.projIdx+delta, len(m.ref.Projects))
	} else {
		m.actIdx = clamp(m.actIdx+delta, len(m.ref.Activities))
	}
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// toggle starts a session, or pauses/resumes the active one.
func (m Model) toggle() Model {
	if m.sess == nil {
		return m.start()
	}
	switch m.sess.State {
	case session.StateRunning:
		if err := m.sess.Pause(); err != nil {
			return m.fail(err)
		}
		if err := m.store.Update(m.sess); err != nil {
			return m.fail(err)
		}
		m.setStatus("Paused")
	case session.StatePaused:
		if err := m.sess.Resume(); err != nil {
			return m.fail(err)
		}
		if err := m.store.Update(m.sess); err != nil {
			return m.fail(err)
		}
		m.setStatus("Running")
	}
	return m
}

func (m Model) start() Model {
	if len(m.ref.Projects) == 0 || len(m.ref.Activities) == 0 {
		return m.fail(errors.New("reference sheet has no projects or activities"))
	}
	sess := session.New(m.ref.Projects[m.projIdx], m.ref.Activities[m.actIdx])
	if err := m.store.Put(sess); err != nil {
		if errors.Is(err, session.ErrAlreadyActive) {
			// Another process started one since we opened; adopt it.
			if active, aerr := m.store.Active(); aerr == nil {
				m.sess = active
				m.setStatus("Adopted session started elsewhere")
				return m
			}
		}
		return m.fail(err)
	}
	m.sess = sess
	m.setStatus("Timer started")
	return m
}

func (m Model) stopAndLog() Model {
	if m.sess == nil {
		m.setStatus("Nothing to stop")
		return m
	}
	total, err := m.sess.Stop()
	if err != nil {
		return m.fail(err)
	}
	if total.Round(time.Second) <= 0 {
		if err := m.store.Delete(m.sess.ID); err != nil {
			return m.fail(err)
		}
		m.sess = nil
		m.setStatus("Session was empty, nothing logged")
		return m
	}

	entry := workbook.Entry{
		Date:     time.Now().In(m.cfg.Location()),
		Project:  m.sess.Project,
		Activity: m.sess.Activity,
		Duration: total,
	}
	if err := workbook.AppendEntry(m.cfg.WorkbookPath, m.cfg.WorkbookSheets(), entry, &m.ref); err != nil {
		// Park as paused so the tracked time can be logged after the
		// workbook is fixed.
		m.sess.State = session.StatePaused
		_ = m.store.Update(m.sess)
		return m.fail(err)
	}
	if err := m.store.Delete(m.sess.ID); err != nil {
		return m.fail(err)
	}

	msg := notify.FormatSaved(m.sess.Project, m.sess.Activity, total)
	if m.cfg.Notifications {
		_ = notify.Done(msg)
	}
	m.sess = nil
	m.status = m.th.Success.Render(msg)
	m.statusIsErr = false
	return m
}

func (m Model) cancel() Model {
	if m.sess == nil {
		m.setStatus("Nothing to cancel")
		return m
	}
	if err := m.store.Delete(m.sess.ID); err != nil {
		return m.fail(err)
	}
	m.sess = nil
	m.setStatus("Session discarded")
	return m
}

func (m Model) reloadReference() Model {
	ref, err := workbook.LoadReference(m.cfg.WorkbookPath, m.cfg.WorkbookSheets())
	if err != nil {
		return m.fail(err)
	}
	// Keep the current selections when they survive the reload.
	proj, act := m.selectedProject(), m.selectedActivity()
	m.ref = ref
	m.projIdx = indexOf(ref.Projects, proj)
	m.actIdx = indexOf(ref.Activities, act)
	m.setStatus("Reference reloaded")
	return m
}

func (m Model) selectedProject() string {
	if m.projIdx < len(m.ref.Projects) {
		return m.ref.Projects[m.projIdx]
	}
	return ""
}

func (m Model) selectedActivity() string {
	if m.actIdx < len(m.ref.Activities) {
		return m.ref.Activities[m.actIdx]
	}
	return ""
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusIsErr = false
}

func (m Model) fail(err error) Model {
	m.status = m.th.Error.Render(err.Error())
	m.statusIsErr = true
	return m
}
