package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/sidebarkit/internal/keyboard"
	"github.com/alexisbeaulieu97/sidebarkit/internal/logger"
	"github.com/alexisbeaulieu97/sidebarkit/internal/sidebar"
	"github.com/alexisbeaulieu97/sidebarkit/internal/ui/components"
	"github.com/alexisbeaulieu97/sidebarkit/internal/viewport"
)

// Options configures the sidebar application.
type Options struct {
	// Provider is mounted by NewModel and unmounted by Close.
	Provider *sidebar.Provider
	// Breakpoint is the column count below which the terminal is mobile.
	Breakpoint int

	Side        components.Side
	Variant     components.Variant
	Collapsible components.Collapsible

	Title  string
	Theme  *components.Theme
	Logger *logger.Logger
}

// Model is the Bubble Tea model hosting one sidebar provider. It owns the
// keyboard bus the provider listens on and the viewport observer fed by
// window size messages.
type Model struct {
	provider *sidebar.Provider
	bus      *keyboard.Bus
	viewport *viewport.Observer

	layout  *components.Layout
	menus   []*components.Menu
	trigger *components.Trigger
	search  *components.Input
	readout *readout

	theme components.Theme
	keys  KeyMap
	help  help.Model
	log   *logger.Logger

	unsubscribe func()

	cursor   int
	width    int
	height   int
	quitting bool
}

// NewModel mounts opts.Provider and builds the application around it.
func NewModel(ctx context.Context, opts Options) Model {
	bp := opts.Breakpoint
	if bp <= 0 {
		bp = viewport.DefaultBreakpoint
	}
	theme := components.DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	title := opts.Title
	if title == "" {
		title = "Acme Inc"
	}

	bus := keyboard.NewBus()
	vp := viewport.NewObserver(bp)
	ctrl := opts.Provider.Mount(ctx, bus, vp)

	sc := buildScene(opts, title)
	out := sc.readout
	m := Model{
		provider: opts.Provider,
		bus:      bus,
		viewport: vp,
		layout:   sc.layout,
		menus:    sc.menus,
		trigger:  sc.trigger,
		search:   sc.search,
		readout:  out,
		theme:    theme,
		keys:     DefaultKeyMap(opts.Provider.Shortcut()),
		help:     help.New(),
		log:      opts.Logger,
		width:    80,
		height:   24,
	}
	m.unsubscribe = ctrl.Subscribe(func(s sidebar.State) {
		out.changes++
		m.log.Info("sidebar visibility changed",
			"state", s.Mode.String(), "mobile", s.Mobile, "open_mobile", s.OpenMobile)
	})
	m.selectEntry(0)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Close unmounts the provider. The model must not be updated afterwards.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	m.provider.Unmount()
}

// Resize records the terminal size and reports it to the viewport observer.
func (m Model) Resize(width, height int) Model {
	m.width = width
	m.height = height
	m.help.Width = width
	m.viewport.Observe(viewport.Size{Width: width, Height: height})
	m.selectEntry(m.cursor)
	return m
}

// Bus returns the keyboard bus the provider listens on.
func (m Model) Bus() *keyboard.Bus {
	return m.bus
}

// Layout returns the rendered component tree.
func (m Model) Layout() *components.Layout {
	return m.layout
}

func (m Model) controller() *sidebar.Controller {
	return sidebar.MustUse(m.provider)
}

func (m Model) renderContext() components.RenderContext {
	ctx := components.DefaultContext().
		WithTheme(m.theme).
		WithProvider(m.provider).
		WithConstraints(components.WithMaxWidth(m.width))
	ctx.Height = m.height
	return ctx
}

// entries lists the menu rows reachable in the current state. All menus
// share one cursor.
func (m Model) entries() []components.Entry {
	iconOnly := m.layout.Sidebar().IconOnly(m.renderContext())
	var entries []components.Entry
	for _, menu := range m.menus {
		entries = append(entries, menu.Entries(iconOnly)...)
	}
	return entries
}

// selectEntry moves the cursor to i, clamped, and marks that row active.
func (m *Model) selectEntry(i int) {
	entries := m.entries()
	if len(entries) == 0 {
		m.cursor = 0
		return
	}
	i = max(0, min(i, len(entries)-1))
	for j, e := range entries {
		e.SetActive(j == i)
	}
	m.cursor = i
}

// searchVisible reports whether the header input is on screen.
func (m Model) searchVisible() bool {
	sb := m.layout.Sidebar()
	ctx := m.renderContext()
	if sb.IconOnly(ctx) {
		return false
	}
	return sb.Collapsible() == components.CollapsibleNone || m.controller().State().Open()
}

// applyFilter narrows every menu to the search query and moves the cursor to
// the first remaining row.
func (m *Model) applyFilter() {
	for _, menu := range m.menus {
		menu.SetFilter(m.search.Value())
	}
	m.selectEntry(0)
}

func (m Model) current() components.Entry {
	entries := m.entries()
	if m.cursor < 0 || m.cursor >= len(entries) {
		return nil
	}
	return entries[m.cursor]
}
