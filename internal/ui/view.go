package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arodionov/timesheet/internal/session"
	"github.com/arodionov/timesheet/internal/utils"
)

const helpText = `  s / space   start, pause or resume
  enter / x   stop and log to the workbook
  c           discard the session
  tab         switch between pickers
  j / k       move the cursor
  r           reload projects and activities
  q           quit (a running timer keeps going)

  press any key to close`

func (m Model) View() string {
	if m.showHelp {
		return m.th.Box.Render(m.th.Title.Render("Keys") + "\n\n" + helpText)
	}

	var b strings.Builder

	b.WriteString(m.th.Title.Render("Timesheet"))
	b.WriteString("\n\n")

	projects := m.renderPicker("Project", m.ref.Projects, m.projIdx, m.focus == focusProjects)
	activities := m.renderPicker("Activity", m.ref.Activities, m.actIdx, m.focus == focusActivities)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, projects, " ", activities))
	b.WriteString("\n\n")

	b.WriteString(m.renderClock())
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.th.Hint.Render("s start/pause · enter log · c discard · ? help · q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderPicker(label string, items []string, cursor int, focused bool) string {
	var b strings.Builder
	b.WriteString(m.th.Label.Render(label))
	b.WriteString("\n")
	for i, it := range items {
		style := m.th.Item
		if i == cursor {
			style = m.th.ItemSelected
			if focused {
				style = m.th.ItemFocused
			}
		}
		b.WriteString(style.Render(it))
		b.WriteString("\n")
	}
	box := m.th.Box
	if focused {
		box = m.th.BoxFocused
	}
	return box.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderClock() string {
	if m.sess == nil {
		return m.th.Timer.Render("00:00:00") + "  " + m.th.Hint.Render("idle")
	}
	clock := utils.FormatClock(m.sess.Elapsed())
	switch m.sess.State {
	case session.StateRunning:
		return m.th.TimerRunning.Render(clock) + "  " + m.th.Success.Render("running")
	case session.StatePaused:
		return m.th.Timer.Render(clock) + "  " + m.th.Hint.Render("paused")
	}
	return m.th.Timer.Render(clock)
}
