package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/sidebarkit/internal/keyboard"
	"github.com/alexisbeaulieu97/sidebarkit/internal/sidebar"
	"github.com/alexisbeaulieu97/sidebarkit/internal/ui/components"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.Resize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case CookieChangedMsg:
		m.syncCookie(msg)
		return m, nil
	}
	return m, nil
}

// handleKey offers the key to the window-level listeners first. A listener
// that prevents the default consumes it.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev := keyboard.FromKeyMsg(msg)
	if m.bus.Dispatch(&ev) {
		if m.search.Focused() && !m.searchVisible() {
			m.search.Blur()
		}
		m.selectEntry(m.cursor)
		return m, nil
	}

	if m.search.Focused() {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.selectEntry(m.cursor - 1)
	case key.Matches(msg, m.keys.Down):
		m.selectEntry(m.cursor + 1)
	case key.Matches(msg, m.keys.Select):
		if entry := m.current(); entry != nil {
			m.readout.page = entry.Label()
		}
	case key.Matches(msg, m.keys.Close):
		if state := m.controller().State(); state.Mobile && state.OpenMobile {
			m.controller().SetOpenMobile(false)
		}
	case key.Matches(msg, m.keys.Search):
		if m.searchVisible() {
			return m, m.search.Focus()
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleSearchKey edits the header input. Enter keeps the filter, Esc clears
// it; both hand the keys back to navigation.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.search.Blur()
		return m, nil
	case tea.KeyEsc:
		m.search.Blur()
		m.search.SetValue("")
		m.applyFilter()
		return m, nil
	}
	cmd := m.search.Update(msg)
	m.applyFilter()
	return m, cmd
}

// handleMouse handles left clicks on the rail, the trigger and the backdrop
// of an open mobile sheet.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	ctx := m.renderContext()
	state := m.controller().State()

	if col, ok := m.layout.RailColumn(ctx); ok && msg.X == col {
		if err := m.layout.Sidebar().Rail().Activate(ctx); err != nil {
			m.log.Error(err, "rail click ignored")
		}
		m.selectEntry(m.cursor)
		return m, nil
	}

	if state.Mobile && state.OpenMobile {
		if m.onBackdrop(ctx, msg.X) {
			if err := components.NewSheet(m.layout.Sidebar().Side()).Close(ctx); err != nil {
				m.log.Error(err, "sheet dismiss ignored")
			}
		}
		return m, nil
	}

	if m.onTrigger(ctx, state, msg.X, msg.Y) {
		if err := m.trigger.Activate(ctx); err != nil {
			m.log.Error(err, "trigger click ignored")
		}
		m.selectEntry(m.cursor)
	}
	return m, nil
}

func (m Model) onBackdrop(ctx components.RenderContext, x int) bool {
	sheetWidth := min(components.NewSheet(components.SideLeft).Width(ctx), m.width)
	if m.layout.Sidebar().Side() == components.SideRight {
		return x < m.width-sheetWidth
	}
	return x >= sheetWidth
}

// onTrigger reports whether (x, y) falls on the trigger in the inset's
// first row.
func (m Model) onTrigger(ctx components.RenderContext, state sidebar.State, x, y int) bool {
	sb := m.layout.Sidebar()
	left := 0
	if sb.Side() == components.SideLeft && !(state.Mobile && sb.Collapsible() != components.CollapsibleNone) {
		left = sb.Width(ctx)
	}
	frame := 0
	if sb.Variant() == components.VariantInset && !state.Mobile {
		frame = 1
	}
	start := left + frame
	return y == frame && x >= start && x < start+3
}

// syncCookie adopts a desktop value written by another process. Values other
// than "true" and "false" are ignored, as are deletions.
func (m Model) syncCookie(msg CookieChangedMsg) {
	if !msg.Found {
		return
	}
	open, ok := sidebar.ParseValue(msg.Cookie.Value)
	if !ok {
		m.log.Debug("ignoring malformed sidebar state from storage", "value", msg.Cookie.Value)
		return
	}
	if m.controller().Sync(open) {
		m.log.Info("sidebar state synced from storage", "open", open)
	}
}
