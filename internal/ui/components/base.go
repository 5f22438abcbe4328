package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/sidebarkit/internal/sidebar"
	"github.com/alexisbeaulieu97/sidebarkit/internal/ui"
)

// BaseComponent provides common functionality for all components.
// Embed this in your component structs to get standard behavior.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy defines how styling should be applied to a component.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc is a function that applies styling transformations to a lipgloss.Style
// using data from a Theme. Slices of StyleFunc are the terminal counterpart of
// utility class lists.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order. Later functions win.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		if fn != nil {
			base = fn(base, theme)
		}
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// Merge combines groups of style functions into one, dropping nils. Callers
// pass the component defaults first and user overrides last.
func Merge(groups ...[]StyleFunc) []StyleFunc {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	merged := make([]StyleFunc, 0, n)
	for _, g := range groups {
		for _, fn := range g {
			if fn != nil {
				merged = append(merged, fn)
			}
		}
	}
	return merged
}

// NewBaseComponent creates a new base component with default styling.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle returns the computed style for this component using the provided theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// ComputeStyleWith applies component defaults before the caller's appliers,
// so caller styling overrides defaults.
func (b *BaseComponent) ComputeStyleWith(theme Theme, defaults ...StyleFunc) lipgloss.Style {
	style := CompositeStrategy{funcs: defaults}.Apply(b.style, theme)
	if b.strategy == nil {
		return style
	}
	return b.strategy.Apply(style, theme)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetAppliers sets the style strategy from style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends additional style appliers to the existing strategy.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		b.strategy = CompositeStrategy{funcs: Merge(existing.funcs, appliers)}
		return
	}
	current := b.strategy
	wrapper := func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if current != nil {
			base = current.Apply(base, theme)
		}
		return CompositeStrategy{funcs: appliers}.Apply(base, theme)
	}
	b.strategy = NewCompositeStrategy(wrapper)
}

// Constraints defines sizing constraints for layout calculations.
type Constraints struct {
	MaxWidth  int
	MaxHeight int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: -1, MaxHeight: -1}
}

// WithMaxWidth creates constraints with a maximum width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MaxWidth: maxWidth, MaxHeight: -1}
}

// HasWidth returns true if there's a width constraint.
func (c Constraints) HasWidth() bool {
	return c.MaxWidth >= 0
}

// RenderContext carries the theme, layout limits and the sidebar provider
// down the component tree.
type RenderContext struct {
	Theme       Theme
	Constraints Constraints
	Height      int

	// Provider is the sidebar provider in scope, if any.
	Provider *sidebar.Provider
	// IconOnly is set while rendering the children of a sidebar collapsed to
	// its icon strip.
	IconOnly bool
}

// DefaultContext returns a render context with the default theme and no constraints.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:       DefaultTheme(),
		Constraints: Unconstrained(),
	}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithConstraints returns a new context with the given constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// WithProvider returns a new context scoped to p.
func (r RenderContext) WithProvider(p *sidebar.Provider) RenderContext {
	r.Provider = p
	return r
}

// UseSidebar returns the sidebar state in scope, or sidebar.ErrProviderMissing.
func (r RenderContext) UseSidebar() (sidebar.State, error) {
	ctrl, err := sidebar.Use(r.Provider)
	if err != nil {
		return sidebar.State{}, err
	}
	return ctrl.State(), nil
}

// mustUseSidebar is UseSidebar for components that cannot render without a
// provider. It panics with sidebar.ErrProviderMissing.
func (r RenderContext) mustUseSidebar() sidebar.State {
	return sidebar.MustUse(r.Provider).State()
}

// styleVar resolves a width custom property from the provider, falling back
// to def.
func (r RenderContext) styleVar(name, def string) string {
	if r.Provider != nil {
		if v, ok := r.Provider.StyleVars()[name]; ok && v != "" {
			return v
		}
	}
	return def
}

// ContextualRenderable is a component that can receive layout context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// render draws child with ctx when it accepts one.
func render(child ui.Renderable, ctx RenderContext) string {
	if child == nil {
		return ""
	}
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}
