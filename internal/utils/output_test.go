package utils

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arodionov/timesheet/internal/workbook"
)

func sampleEntries() []workbook.Entry {
	day := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)
	return []workbook.Entry{
		{Date: day, Project: "Apollo", Activity: "Development", Duration: 90 * time.Minute},
		{Date: day.AddDate(0, 0, 1), Project: "Hermes", Activity: "Review", Duration: 30 * time.Minute},
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00:00", FormatClock(0))
	assert.Equal(t, "00:00:42", FormatClock(42*time.Second))
	assert.Equal(t, "01:30:00", FormatClock(90*time.Minute))
	assert.Equal(t, "25:00:05", FormatClock(25*time.Hour+5*time.Second))
	assert.Equal(t, "00:00:01", FormatClock(750*time.Millisecond))
}

func TestRenderDefaultIncludesTotal(t *testing.T) {
	r := NewRenderer(&RenderConfig{Format: FormatDefault, Width: 80, Color: false})
	out, err := r.RenderEntries(sampleEntries())
	require.NoError(t, err)

	assert.Contains(t, out, "Apollo")
	assert.Contains(t, out, "Hermes")
	assert.Contains(t, out, "Total: 02:00:00 across 2 sessions")
}

func TestRenderJSON(t *testing.T) {
	r := NewRenderer(&RenderConfig{Format: FormatJSON, Width: 80, Color: false})
	out, err := r.RenderEntries(sampleEntries())
	require.NoError(t, err)

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Apollo", rows[0]["project"])
	assert.Equal(t, "01:30:00", rows[0]["duration"])
	assert.Equal(t, float64(5400), rows[0]["seconds"])
}

func TestRenderCSVEscapesFields(t *testing.T) {
	r := NewRenderer(&RenderConfig{Format: FormatCSV, Width: 80, Color: false})
	entries := []workbook.Entry{{
		Date:     time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC),
		Project:  `Apollo, "Phase 2"`,
		Activity: "Review",
		Duration: time.Hour,
	}}

	out, err := r.RenderEntries(entries)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "date,project,activity,duration", lines[0])
	assert.Equal(t, `2026-08-23,"Apollo, ""Phase 2""",Review,01:00:00`, lines[1])
}

func TestRenderQuiet(t *testing.T) {
	r := NewRenderer(&RenderConfig{Format: FormatQuiet, Width: 80, Color: false})
	out, err := r.RenderEntries(sampleEntries())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "2026-08-23\tApollo\tDevelopment\t01:30:00", lines[0])
}
