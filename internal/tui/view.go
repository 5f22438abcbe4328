package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/sidebarkit/internal/ui/components"
)

// View renders the layout above a one line status and help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.footer()
	ctx := m.renderContext()
	ctx.Height = max(m.height-lipgloss.Height(footer), 1)

	return lipgloss.JoinVertical(lipgloss.Left, m.layout.ViewWithContext(ctx), footer)
}

// footer shows the tooltip of the focused menu button while the sidebar is a
// collapsed desktop strip, followed by the key help.
func (m Model) footer() string {
	helpView := statusStyle.Render(m.help.View(m.keys))
	if tip := m.tooltip(); tip != "" {
		return lipgloss.JoinHorizontal(lipgloss.Top, tooltipStyle.Render(tip), " ", helpView)
	}
	return helpView
}

func (m Model) tooltip() string {
	if !m.layout.Sidebar().IconOnly(m.renderContext()) {
		return ""
	}
	button, ok := m.current().(*components.MenuButton)
	if !ok || !button.TooltipVisible(m.controller().State()) {
		return ""
	}
	return button.Tooltip()
}
