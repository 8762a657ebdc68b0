package utils

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/arodionov/timesheet/internal/workbook"
)

// OutputFormat represents different output formats
type OutputFormat string

const (
	FormatDefault OutputFormat = "default"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatCSV     OutputFormat = "csv"
	FormatQuiet   OutputFormat = "quiet"
)

// RenderConfig contains configuration for output rendering
type RenderConfig struct {
	Format OutputFormat
	Width  int
	Color  bool
}

func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{Format: FormatDefault, Width: 80, Color: true}
}

// Renderer formats the rows read back from the log sheet.
type Renderer struct {
	config *RenderConfig
	styles *Styles
}

// Styles contains lipgloss styles for different elements
type Styles struct {
	Title     lipgloss.Style
	Separator lipgloss.Style
	Date      lipgloss.Style
	Project   lipgloss.Style
	Activity  lipgloss.Style
	Duration  lipgloss.Style
	Total     lipgloss.Style
}

func NewRenderer(config *RenderConfig) *Renderer {
	if config == nil {
		config = DefaultRenderConfig()
	}
	return &Renderer{config: config, styles: initStyles(config.Color)}
}

func initStyles(color bool) *Styles {
	styles := &Styles{}
	if color {
		styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1"))
		styles.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
		styles.Date = lipgloss.NewStyle().Faint(true)
		styles.Project = lipgloss.NewStyle().Foreground(lipgloss.Color("#89B4FA"))
		styles.Activity = lipgloss.NewStyle().Foreground(lipgloss.Color("#CBA6F7"))
		styles.Duration = lipgloss.NewStyle().Bold(true)
		styles.Total = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9E2AF"))
	} else {
		styles.Title = lipgloss.NewStyle().Bold(true)
		styles.Separator = lipgloss.NewStyle()
		styles.Date = lipgloss.NewStyle()
		styles.Project = lipgloss.NewStyle()
		styles.Activity = lipgloss.NewStyle()
		styles.Duration = lipgloss.NewStyle().Bold(true)
		styles.Total = lipgloss.NewStyle().Bold(true)
	}
	return styles
}

// RenderEntries renders logged entries according to the configured format.
func (r *Renderer) RenderEntries(entries []workbook.Entry) (string, error) {
	switch r.config.Format {
	case FormatJSON:
		return r.renderJSON(entries)
	case FormatCSV:
		return r.renderCSV(entries)
	case FormatTable:
		return r.renderTable(entries)
	case FormatQuiet:
		return r.renderQuiet(entries)
	default:
		return r.renderDefault(entries)
	}
}

func (r *Renderer) renderDefault(entries []workbook.Entry) (string, error) {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render("Logged Sessions"))
	b.WriteString("\n")
	b.WriteString(r.styles.Separator.Render(strings.Repeat("─", min(r.config.Width, 120))))
	b.WriteString("\n")

	var total time.Duration
	for _, e := range entries {
		total += e.Duration
		line := fmt.Sprintf("%s  %s  %s — %s",
			r.styles.Date.Render(e.Date.Format("2006-01-02")),
			r.styles.Duration.Render(FormatClock(e.Duration)),
			r.styles.Project.Render(e.Project),
			r.styles.Activity.Render(e.Activity),
		)
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(r.styles.Separator.Render(strings.Repeat("─", min(r.config.Width, 120))))
	b.WriteString("\n")
	b.WriteString(r.styles.Total.Render(fmt.Sprintf("Total: %s across %d sessions", FormatClock(total), len(entries))))
	b.WriteString("\n")
	return b.String(), nil
}

func (r *Renderer) renderTable(entries []workbook.Entry) (string, error) {
	var b strings.Builder
	b.WriteString("Date\tProject\tActivity\tDuration\n")
	b.WriteString(strings.Repeat("-", min(r.config.Width, 120)))
	b.WriteString("\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "%s\t%s\t%s\t%s\n",
			e.Date.Format("2006-01-02"), e.Project, e.Activity, FormatClock(e.Duration))
	}
	return b.String(), nil
}

func (r *Renderer) renderJSON(entries []workbook.Entry) (string, error) {
	type row struct {
		Date     string `json:"date"`
		Project  string `json:"project"`
		Activity string `json:"activity"`
		Duration string `json:"duration"`
		Seconds  int64  `json:"seconds"`
	}
	rows := make([]row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, row{
			Date:     e.Date.Format("2006-01-02"),
			Project:  e.Project,
			Activity: e.Activity,
			Duration: FormatClock(e.Duration),
			Seconds:  int64(e.Duration.Seconds()),
		})
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

func (r *Renderer) renderCSV(entries []workbook.Entry) (string, error) {
	var b strings.Builder
	b.WriteString("date,project,activity,duration\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "%s,%s,%s,%s\n",
			e.Date.Format("2006-01-02"), escapeCSV(e.Project), escapeCSV(e.Activity), FormatClock(e.Duration))
	}
	return b.String(), nil
}

func (r *Renderer) renderQuiet(entries []workbook.Entry) (string, error) {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s\t%s\t%s\t%s\n",
			e.Date.Format("2006-01-02"), e.Project, e.Activity, FormatClock(e.Duration))
	}
	return b.String(), nil
}

// FormatClock renders a duration as HH:MM:SS (hours unbounded).
func FormatClock(d time.Duration) string {
	total := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func escapeCSV(s string) string {
	if strings.Contains(s, ",") || strings.Contains(s, "\"") || strings.Contains(s, "\n") {
		s = strings.ReplaceAll(s, "\"", "\"\"")
		return "\"" + s + "\""
	}
	return s
}
