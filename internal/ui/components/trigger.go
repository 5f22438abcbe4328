package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/sidebarkit/internal/sidebar"
)

// ToggleLabel is the accessible label shared by the trigger and the rail.
const ToggleLabel = "Toggle Sidebar"

// Trigger is the button that toggles the sidebar.
type Trigger struct {
	BaseComponent
	glyph   string
	onClick func()
}

// NewTrigger creates a trigger drawn as a panel glyph.
func NewTrigger() *Trigger {
	return &Trigger{BaseComponent: NewBaseComponent(), glyph: "◧"}
}

// WithGlyph replaces the drawn glyph.
func (t *Trigger) WithGlyph(glyph string) *Trigger {
	if glyph != "" {
		t.glyph = glyph
	}
	return t
}

// WithOnClick registers a handler that runs before the sidebar toggles.
func (t *Trigger) WithOnClick(fn func()) *Trigger {
	t.onClick = fn
	return t
}

// WithAppliers applies theme-based style modifiers.
func (t *Trigger) WithAppliers(appliers ...StyleFunc) *Trigger {
	t.SetAppliers(appliers...)
	return t
}

// Label returns the accessible label.
func (t *Trigger) Label() string {
	return ToggleLabel
}

// Activate runs the click handler and toggles the sidebar in scope.
func (t *Trigger) Activate(ctx RenderContext) error {
	ctrl, err := sidebar.Use(ctx.Provider)
	if err != nil {
		return err
	}
	if t.onClick != nil {
		t.onClick()
	}
	ctrl.Toggle()
	return nil
}

// View renders the trigger with the default context.
func (t *Trigger) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the trigger glyph.
func (t *Trigger) ViewWithContext(ctx RenderContext) string {
	return t.ComputeStyleWith(ctx.Theme, PaddingX(SpacingSizeExtraSmall)).Render(t.glyph)
}

// Rail is a one column hit area on the sidebar's inner edge. Clicking it
// toggles the sidebar.
type Rail struct {
	BaseComponent
}

// NewRail creates a rail.
func NewRail() *Rail {
	return &Rail{BaseComponent: NewBaseComponent()}
}

// Label returns the accessible label.
func (r *Rail) Label() string {
	return ToggleLabel
}

// Activate toggles the sidebar in scope.
func (r *Rail) Activate(ctx RenderContext) error {
	ctrl, err := sidebar.Use(ctx.Provider)
	if err != nil {
		return err
	}
	ctrl.Toggle()
	return nil
}

// View renders a one row rail.
func (r *Rail) View() string {
	return r.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the rail as tall as ctx.Height.
func (r *Rail) ViewWithContext(ctx RenderContext) string {
	height := max(ctx.Height, 1)
	style := r.ComputeStyleWith(ctx.Theme, func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(theme.Palette.SidebarBorder.Contrast)
	})
	return style.Render(strings.TrimSuffix(strings.Repeat("│\n", height), "\n"))
}
