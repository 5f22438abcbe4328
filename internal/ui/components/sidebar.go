package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/sidebarkit/internal/sidebar"
	"github.com/alexisbeaulieu97/sidebarkit/internal/ui"
)

// Side is the screen edge a sidebar is attached to.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// Variant selects how the sidebar panel is framed.
type Variant int

const (
	VariantSidebar Variant = iota
	VariantFloating
	VariantInset
)

func (v Variant) String() string {
	switch v {
	case VariantFloating:
		return "floating"
	case VariantInset:
		return "inset"
	default:
		return "sidebar"
	}
}

// Collapsible selects what a collapsed desktop sidebar looks like.
type Collapsible int

const (
	// CollapsibleOffcanvas slides the panel fully off screen.
	CollapsibleOffcanvas Collapsible = iota
	// CollapsibleIcon shrinks the panel to a strip of menu icons.
	CollapsibleIcon
	// CollapsibleNone keeps the panel expanded on every viewport.
	CollapsibleNone
)

func (c Collapsible) String() string {
	switch c {
	case CollapsibleIcon:
		return "icon"
	case CollapsibleNone:
		return "none"
	default:
		return "offcanvas"
	}
}

// ParseSide maps a config value onto a Side. Unknown values yield SideLeft.
func ParseSide(s string) Side {
	if s == "right" {
		return SideRight
	}
	return SideLeft
}

// ParseVariant maps a config value onto a Variant.
func ParseVariant(s string) Variant {
	switch s {
	case "floating":
		return VariantFloating
	case "inset":
		return VariantInset
	default:
		return VariantSidebar
	}
}

// ParseCollapsible maps a config value onto a Collapsible.
func ParseCollapsible(s string) Collapsible {
	switch s {
	case "icon":
		return CollapsibleIcon
	case "none":
		return CollapsibleNone
	default:
		return CollapsibleOffcanvas
	}
}

// Default column counts used when a width custom property does not parse.
const (
	defaultWidthCells       = 32
	defaultWidthMobileCells = 36
	defaultWidthIconCells   = 6
)

// Sidebar is the collapsible side panel. It reads the provider state on every
// render and draws the desktop panel, the icon strip, the mobile sheet or
// nothing at all.
type Sidebar struct {
	BaseComponent
	side        Side
	variant     Variant
	collapsible Collapsible
	children    []ui.Renderable
	rail        *Rail
}

// NewSidebar creates a left, offcanvas sidebar with the plain variant.
func NewSidebar(children ...ui.Renderable) *Sidebar {
	s := &Sidebar{BaseComponent: NewBaseComponent()}
	return s.Add(children...)
}

// Add appends children. A Rail child is drawn on the panel's inner edge
// rather than in the body.
func (s *Sidebar) Add(children ...ui.Renderable) *Sidebar {
	for _, child := range children {
		if rail, ok := child.(*Rail); ok {
			s.rail = rail
			continue
		}
		s.children = append(s.children, child)
	}
	return s
}

// WithSide sets the attached edge.
func (s *Sidebar) WithSide(side Side) *Sidebar {
	s.side = side
	return s
}

// WithVariant sets the frame variant.
func (s *Sidebar) WithVariant(variant Variant) *Sidebar {
	s.variant = variant
	return s
}

// WithCollapsible sets the collapse behaviour.
func (s *Sidebar) WithCollapsible(collapsible Collapsible) *Sidebar {
	s.collapsible = collapsible
	return s
}

// WithAppliers applies theme-based style modifiers to the panel.
func (s *Sidebar) WithAppliers(appliers ...StyleFunc) *Sidebar {
	s.SetAppliers(appliers...)
	return s
}

func (s *Sidebar) Side() Side               { return s.side }
func (s *Sidebar) Variant() Variant         { return s.variant }
func (s *Sidebar) Collapsible() Collapsible { return s.collapsible }
func (s *Sidebar) Rail() *Rail              { return s.rail }

func (s *Sidebar) fullWidth(ctx RenderContext) int {
	return RemToCells(ctx.styleVar(sidebar.WidthVar, sidebar.Width), defaultWidthCells)
}

func (s *Sidebar) iconWidth(ctx RenderContext) int {
	width := RemToCells(ctx.styleVar(sidebar.WidthIconVar, sidebar.WidthIcon), defaultWidthIconCells)
	if s.variant != VariantSidebar {
		width += 2
	}
	return width
}

// Width reports how many columns the sidebar takes from the inset in the
// current state. The mobile sheet overlays the inset and takes none.
func (s *Sidebar) Width(ctx RenderContext) int {
	state := ctx.mustUseSidebar()
	rail := 0
	if s.rail != nil {
		rail = 1
	}

	switch {
	case s.collapsible == CollapsibleNone:
		return s.fullWidth(ctx)
	case state.Mobile:
		return 0
	case state.OpenDesktop:
		return s.fullWidth(ctx) + rail
	case s.collapsible == CollapsibleIcon:
		return s.iconWidth(ctx) + rail
	default:
		return rail
	}
}

// IconOnly reports whether the panel is currently collapsed to its icon strip.
func (s *Sidebar) IconOnly(ctx RenderContext) bool {
	state := ctx.mustUseSidebar()
	return s.collapsible == CollapsibleIcon && !state.Mobile && !state.OpenDesktop
}

// View renders the sidebar with the default context. Without a provider in
// scope it panics with sidebar.ErrProviderMissing.
func (s *Sidebar) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the sidebar for the current provider state.
func (s *Sidebar) ViewWithContext(ctx RenderContext) string {
	state := ctx.mustUseSidebar()

	if s.collapsible == CollapsibleNone {
		return s.panel(ctx, s.fullWidth(ctx), false)
	}
	if state.Mobile {
		if !state.OpenMobile {
			return ""
		}
		return NewSheet(s.side, s.children...).ViewWithContext(ctx)
	}

	width := s.Width(ctx)
	if width == 0 {
		return ""
	}

	panelWidth := width
	if s.rail != nil {
		panelWidth--
	}
	panel := ""
	if panelWidth > 0 {
		panel = s.panel(ctx, panelWidth, s.IconOnly(ctx))
	}
	if s.rail == nil {
		return panel
	}

	railCtx := ctx
	if panel != "" {
		railCtx.Height = lipgloss.Height(panel)
	}
	rail := s.rail.ViewWithContext(railCtx)
	if panel == "" {
		return rail
	}
	if s.side == SideRight {
		return lipgloss.JoinHorizontal(lipgloss.Top, rail, panel)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panel, rail)
}

func (s *Sidebar) panel(ctx RenderContext, width int, iconOnly bool) string {
	defaults := []StyleFunc{Background(PaletteSidebar)}
	frameW, frameH := 0, 0
	switch s.variant {
	case VariantFloating:
		defaults = append(defaults, Border(BorderVariantRounded))
		frameW, frameH = 2, 2
	case VariantInset:
	default:
		if s.rail == nil || s.collapsible == CollapsibleNone {
			defaults = append(defaults, edgeBorder(s.side))
			frameW = 1
		}
	}
	style := s.ComputeStyleWith(ctx.Theme, defaults...)

	innerW := max(width-frameW, 0)
	innerH := 0
	if ctx.Height > 0 {
		innerH = max(ctx.Height-frameH, 1)
	}

	childCtx := ctx.WithConstraints(Constraints{MaxWidth: innerW, MaxHeight: innerH})
	childCtx.Height = innerH
	childCtx.IconOnly = iconOnly

	return style.Render(fit(column(s.children, childCtx, innerH), innerW, innerH))
}

// edgeBorder draws a single rule on the side facing the inset.
func edgeBorder(side Side) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(theme.Borders.Normal, false, side == SideLeft, false, side == SideRight).
			BorderForeground(theme.Palette.SidebarBorder.Base)
	}
}

// Inset is the main content area beside the sidebar.
type Inset struct {
	BaseComponent
	children []ui.Renderable
}

// NewInset creates an inset holding children stacked vertically.
func NewInset(children ...ui.Renderable) *Inset {
	return &Inset{BaseComponent: NewBaseComponent(), children: children}
}

// Add appends children.
func (i *Inset) Add(children ...ui.Renderable) *Inset {
	i.children = append(i.children, children...)
	return i
}

// WithAppliers applies theme-based style modifiers.
func (i *Inset) WithAppliers(appliers ...StyleFunc) *Inset {
	i.SetAppliers(appliers...)
	return i
}

// View renders the inset unframed.
func (i *Inset) View() string {
	return i.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the inset unframed.
func (i *Inset) ViewWithContext(ctx RenderContext) string {
	return i.render(ctx, false)
}

// render draws the inset; framed gives it the rounded card look used next to
// the inset sidebar variant.
func (i *Inset) render(ctx RenderContext, framed bool) string {
	defaults := []StyleFunc{Background(PaletteSurface)}
	frame := 0
	if framed {
		defaults = append(defaults, Border(BorderVariantRounded))
		frame = 2
	}
	style := i.ComputeStyleWith(ctx.Theme, defaults...)

	width := ctx.Constraints.MaxWidth
	if width <= 0 {
		return style.Render(VStack(i.children...).ViewWithContext(ctx))
	}

	innerW := max(width-frame, 0)
	innerH := 0
	if ctx.Height > 0 {
		innerH = max(ctx.Height-frame, 1)
	}
	childCtx := ctx.WithConstraints(Constraints{MaxWidth: innerW, MaxHeight: innerH})
	childCtx.Height = innerH
	return style.Render(fit(VStack(i.children...).ViewWithContext(childCtx), innerW, innerH))
}

// Layout places a sidebar and an inset side by side and overlays the mobile
// sheet when it is open.
type Layout struct {
	sidebar *Sidebar
	inset   *Inset
}

// NewLayout pairs a sidebar with the content it sits beside.
func NewLayout(sb *Sidebar, inset *Inset) *Layout {
	if inset == nil {
		inset = NewInset()
	}
	return &Layout{sidebar: sb, inset: inset}
}

func (l *Layout) Sidebar() *Sidebar { return l.sidebar }
func (l *Layout) Inset() *Inset     { return l.inset }

// View renders the layout with the default context.
func (l *Layout) View() string {
	return l.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the layout filling ctx's width and height.
func (l *Layout) ViewWithContext(ctx RenderContext) string {
	state := ctx.mustUseSidebar()
	total := ctx.Constraints.MaxWidth
	if total <= 0 {
		total = 80
	}

	if state.Mobile && l.sidebar.collapsible != CollapsibleNone {
		insetView := l.inset.render(ctx.WithConstraints(Constraints{MaxWidth: total, MaxHeight: ctx.Height}), false)
		if !state.OpenMobile {
			return insetView
		}
		return l.overlay(ctx, insetView, total)
	}

	sideWidth := min(l.sidebar.Width(ctx), total)
	sideView := l.sidebar.ViewWithContext(ctx)
	insetCtx := ctx.WithConstraints(Constraints{MaxWidth: total - sideWidth, MaxHeight: ctx.Height})
	insetView := l.inset.render(insetCtx, l.sidebar.variant == VariantInset)

	if sideView == "" {
		return insetView
	}
	if l.sidebar.side == SideRight {
		return lipgloss.JoinHorizontal(lipgloss.Top, insetView, sideView)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, sideView, insetView)
}

// overlay draws the sheet over the inset and dims what remains visible.
func (l *Layout) overlay(ctx RenderContext, insetView string, total int) string {
	sheetCtx := ctx.WithConstraints(Constraints{MaxWidth: total, MaxHeight: ctx.Height})
	sheet := l.sidebar.ViewWithContext(sheetCtx)
	sheetWidth := lipgloss.Width(sheet)
	if sheetWidth >= total {
		return sheet
	}

	backdrop := lipgloss.NewStyle().
		Foreground(ctx.Theme.Palette.Overlay.Muted).
		Faint(true)
	lines := make([]string, 0, rows(insetView))
	for _, line := range strings.Split(insetView, "\n") {
		var visible string
		if l.sidebar.side == SideRight {
			visible = ansi.Cut(line, 0, total-sheetWidth)
		} else {
			visible = ansi.Cut(line, sheetWidth, total)
		}
		lines = append(lines, backdrop.Render(ansi.Strip(visible)))
	}
	dimmed := lipgloss.JoinVertical(lipgloss.Left, lines...)

	if l.sidebar.side == SideRight {
		return lipgloss.JoinHorizontal(lipgloss.Top, dimmed, sheet)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, sheet, dimmed)
}

// RailColumn reports the screen column of the rail, if one is visible.
func (l *Layout) RailColumn(ctx RenderContext) (int, bool) {
	state, err := ctx.UseSidebar()
	if err != nil || l.sidebar.rail == nil || state.Mobile || l.sidebar.collapsible == CollapsibleNone {
		return 0, false
	}
	width := l.sidebar.Width(ctx)
	if l.sidebar.side == SideRight {
		total := ctx.Constraints.MaxWidth
		if total <= 0 {
			total = 80
		}
		return total - width, true
	}
	return width - 1, true
}
