package ui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/arodionov/timesheet/internal/config"
	"github.com/arodionov/timesheet/internal/session"
	"github.com/arodionov/timesheet/internal/workbook"
)

func newTestModel(t *testing.T) (Model, *session.Store) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "timesheet.xlsx")
	sheets := workbook.DefaultSheets()
	require.NoError(t, workbook.CreateTemplate(path, sheets, false))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	rows := [][]interface{}{
		{"Apollo", "Development"},
		{"Hermes", "Review"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheets.Reference, cell, &row))
	}
	require.NoError(t, f.Save())
	require.NoError(t, f.Close())

	ref, err := workbook.LoadReference(path, sheets)
	require.NoError(t, err)

	store, err := session.OpenStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	cfg := config.Default()
	cfg.WorkbookPath = path
	cfg.Notifications = false

	return NewModel(cfg, store, ref), store
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestStartCreatesStoredSession(t *testing.T) {
	m, store := newTestModel(t)

	m = press(t, m, "s")
	require.NotNil(t, m.sess)
	assert.Equal(t, session.StateRunning, m.sess.State)
	assert.Equal(t, "Apollo", m.sess.Project)
	assert.Equal(t, "Development", m.sess.Activity)

	got, err := store.Active()
	require.NoError(t, err)
	assert.Equal(t, m.sess.ID, got.ID)
}

func TestNavigationSelectsPair(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "down", "tab", "down", "s")
	require.NotNil(t, m.sess)
	assert.Equal(t, "Hermes", m.sess.Project)
	assert.Equal(t, "Review", m.sess.Activity)
}

func TestNavigationClampsAtEdges(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "up", "up")
	assert.Equal(t, 0, m.projIdx)

	m = press(t, m, "down", "down", "down", "down")
	assert.Equal(t, 1, m.projIdx)
}

func TestNavigationLockedWhileActive(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "s", "down")
	assert.Equal(t, 0, m.projIdx)
}

func TestPauseResumeToggle(t *testing.T) {
	m, store := newTestModel(t)

	m = press(t, m, "s", "s")
	assert.Equal(t, session.StatePaused, m.sess.State)

	got, err := store.Active()
	require.NoError(t, err)
	assert.Equal(t, session.StatePaused, got.State)

	m = press(t, m, "s")
	assert.Equal(t, session.StateRunning, m.sess.State)
}

func TestStopLogsToWorkbook(t *testing.T) {
	m, store := newTestModel(t)

	m = press(t, m, "s")
	require.NotNil(t, m.sess)
	m.sess.Accumulated = 30 * time.Minute

	m = press(t, m, "enter")
	assert.Nil(t, m.sess)
	assert.False(t, m.statusIsErr, m.status)

	_, err := store.Active()
	assert.ErrorIs(t, err, session.ErrNoSession)

	entries, err := workbook.Entries(m.cfg.WorkbookPath, m.cfg.WorkbookSheets())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Apollo", entries[0].Project)
	assert.Equal(t, 30*time.Minute, entries[0].Duration)
}

func TestStopDiscardsEmptySession(t *testing.T) {
	m, store := newTestModel(t)

	m = press(t, m, "s", "enter")
	assert.Nil(t, m.sess)

	_, err := store.Active()
	assert.ErrorIs(t, err, session.ErrNoSession)

	entries, err := workbook.Entries(m.cfg.WorkbookPath, m.cfg.WorkbookSheets())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCancelDiscardsSession(t *testing.T) {
	m, store := newTestModel(t)

	m = press(t, m, "s")
	m.sess.Accumulated = time.Hour
	m = press(t, m, "c")
	assert.Nil(t, m.sess)

	_, err := store.Active()
	assert.ErrorIs(t, err, session.ErrNoSession)

	entries, err := workbook.Entries(m.cfg.WorkbookPath, m.cfg.WorkbookSheets())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStopFailureKeepsSessionRecoverable(t *testing.T) {
	m, store := newTestModel(t)

	m = press(t, m, "s")
	m.sess.Accumulated = 30 * time.Minute
	m.cfg.Sheets.Log = "Journal" // sheet does not exist

	m = press(t, m, "enter")
	require.NotNil(t, m.sess)
	assert.True(t, m.statusIsErr)
	assert.Equal(t, session.StatePaused, m.sess.State)

	// The banked time survives in the store for a retry.
	got, err := store.Active()
	require.NoError(t, err)
	assert.Equal(t, session.StatePaused, got.State)
	assert.GreaterOrEqual(t, got.Elapsed(), 30*time.Minute)
}

func TestAdoptsSessionStartedElsewhere(t *testing.T) {
	m, store := newTestModel(t)

	other := session.New("Hermes", "Review")
	require.NoError(t, store.Put(other))

	m = press(t, m, "s")
	require.NotNil(t, m.sess)
	assert.Equal(t, other.ID, m.sess.ID)
	assert.Equal(t, "Hermes", m.sess.Project)
}

func TestModelRestoresActiveSession(t *testing.T) {
	m, store := newTestModel(t)

	sess := session.New("Hermes", "Review")
	require.NoError(t, store.Put(sess))

	restored := NewModel(m.cfg, store, m.ref)
	require.NotNil(t, restored.sess)
	assert.Equal(t, "Hermes", restored.sess.Project)
	assert.Equal(t, 1, restored.projIdx)
	assert.Equal(t, 1, restored.actIdx)
}

func TestViewRenders(t *testing.T) {
	m, _ := newTestModel(t)

	out := m.View()
	assert.Contains(t, out, "Apollo")
	assert.Contains(t, out, "00:00:00")

	m = press(t, m, "s")
	out = m.View()
	assert.Contains(t, out, "running")

	m = press(t, m, "?")
	assert.Contains(t, m.View(), "stop and log")
}
