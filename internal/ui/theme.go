package ui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title        lipgloss.Style
	Label        lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	ItemFocused  lipgloss.Style
	Timer        lipgloss.Style
	TimerRunning lipgloss.Style
	Box          lipgloss.Style
	BoxFocused   lipgloss.Style
	Hint         lipgloss.Style
	Error        lipgloss.Style
	Success      lipgloss.Style
}

var DefaultTheme = Theme{
	Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	Label:        lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#89B4FA")),
	Item:         lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#A6ADC8")),
	ItemSelected: lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#F2CDCD")),
	ItemFocused:  lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#CBA6F7")).Background(lipgloss.Color("#313244")),
	Timer:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89B4FA")),
	TimerRunning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	Box:          lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#585B70")).Padding(0, 1),
	BoxFocused:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#89B4FA")).Padding(0, 1),
	Hint:         lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#6C7086")),
	Error:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
	Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
}
