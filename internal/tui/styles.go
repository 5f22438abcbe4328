package tui

import "github.com/charmbracelet/lipgloss"

var (
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	tooltipStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("236")).Padding(0, 1)
	valueStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)
