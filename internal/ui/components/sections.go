package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/sidebarkit/internal/ui"
)

// section is the shared body of the sidebar's vertical containers.
type section struct {
	BaseComponent
	children []ui.Renderable
}

func newSection(children []ui.Renderable) section {
	return section{BaseComponent: NewBaseComponent(), children: children}
}

// stack renders the children vertically inside the section's style, shrinking
// the width constraint by the style's horizontal frame.
func (s *section) stack(ctx RenderContext, gap int, defaults ...StyleFunc) string {
	style := s.ComputeStyleWith(ctx.Theme, defaults...)
	inner := ctx
	if ctx.Constraints.MaxWidth > 0 {
		inner = ctx.WithConstraints(Constraints{
			MaxWidth:  max(ctx.Constraints.MaxWidth-style.GetHorizontalFrameSize(), 1),
			MaxHeight: ctx.Constraints.MaxHeight,
		})
	}
	body := VStack(s.children...).WithGap(gap).ViewWithContext(inner)
	if body == "" {
		return ""
	}
	return style.Render(body)
}

// Header sits at the top of the sidebar.
type Header struct{ section }

// NewHeader creates a sidebar header.
func NewHeader(children ...ui.Renderable) *Header {
	return &Header{newSection(children)}
}

// WithAppliers applies theme-based style modifiers.
func (h *Header) WithAppliers(appliers ...StyleFunc) *Header {
	h.SetAppliers(appliers...)
	return h
}

func (h *Header) View() string { return h.ViewWithContext(DefaultContext()) }

func (h *Header) ViewWithContext(ctx RenderContext) string {
	return h.stack(ctx, 0, PaddingX(SpacingSizeExtraSmall))
}

// Footer is pinned to the bottom of the sidebar.
type Footer struct{ section }

// NewFooter creates a sidebar footer.
func NewFooter(children ...ui.Renderable) *Footer {
	return &Footer{newSection(children)}
}

// WithAppliers applies theme-based style modifiers.
func (f *Footer) WithAppliers(appliers ...StyleFunc) *Footer {
	f.SetAppliers(appliers...)
	return f
}

func (f *Footer) View() string { return f.ViewWithContext(DefaultContext()) }

func (f *Footer) ViewWithContext(ctx RenderContext) string {
	return f.stack(ctx, 0, PaddingX(SpacingSizeExtraSmall))
}

// Content is the scrollable middle of the sidebar holding groups.
type Content struct{ section }

// NewContent creates the sidebar content area.
func NewContent(children ...ui.Renderable) *Content {
	return &Content{newSection(children)}
}

func (c *Content) View() string { return c.ViewWithContext(DefaultContext()) }

// ViewWithContext renders the groups one blank row apart.
func (c *Content) ViewWithContext(ctx RenderContext) string {
	return c.stack(ctx, 1)
}

// Group is a titled block of sidebar content. A GroupLabel and GroupAction
// child share the first row.
type Group struct{ section }

// NewGroup creates a sidebar group.
func NewGroup(children ...ui.Renderable) *Group {
	return &Group{newSection(children)}
}

func (g *Group) View() string { return g.ViewWithContext(DefaultContext()) }

func (g *Group) ViewWithContext(ctx RenderContext) string {
	var label *GroupLabel
	var action *GroupAction
	rest := make([]ui.Renderable, 0, len(g.children))
	for _, child := range g.children {
		switch c := child.(type) {
		case *GroupLabel:
			if label == nil {
				label = c
				continue
			}
		case *GroupAction:
			if action == nil {
				action = c
				continue
			}
		}
		rest = append(rest, child)
	}

	style := g.ComputeStyleWith(ctx.Theme, PaddingX(SpacingSizeExtraSmall))
	inner := ctx
	width := -1
	if ctx.Constraints.MaxWidth > 0 {
		width = max(ctx.Constraints.MaxWidth-style.GetHorizontalFrameSize(), 1)
		inner = ctx.WithConstraints(Constraints{MaxWidth: width, MaxHeight: ctx.Constraints.MaxHeight})
	}

	var parts []string
	if head := groupHead(inner, label, action, width); head != "" {
		parts = append(parts, head)
	}
	if body := VStack(rest...).ViewWithContext(inner); body != "" {
		parts = append(parts, body)
	}
	if len(parts) == 0 {
		return ""
	}
	return style.Render(strings.Join(parts, "\n"))
}

// GroupContent wraps the body of a group below its label row.
type GroupContent struct{ section }

// NewGroupContent creates a group body.
func NewGroupContent(children ...ui.Renderable) *GroupContent {
	return &GroupContent{newSection(children)}
}

// WithAppliers applies theme-based style modifiers.
func (c *GroupContent) WithAppliers(appliers ...StyleFunc) *GroupContent {
	c.SetAppliers(appliers...)
	return c
}

func (c *GroupContent) View() string { return c.ViewWithContext(DefaultContext()) }

func (c *GroupContent) ViewWithContext(ctx RenderContext) string {
	return c.stack(ctx, 0)
}

func groupHead(ctx RenderContext, label *GroupLabel, action *GroupAction, width int) string {
	actionView := ""
	if action != nil {
		actionView = action.ViewWithContext(ctx)
	}
	labelCtx := ctx
	if width > 0 && actionView != "" {
		labelCtx = ctx.WithConstraints(Constraints{MaxWidth: max(width-ansi.StringWidth(actionView), 1)})
	}
	labelView := ""
	if label != nil {
		labelView = label.ViewWithContext(labelCtx)
	}

	switch {
	case actionView == "":
		return labelView
	case width <= 0:
		return lipgloss.JoinHorizontal(lipgloss.Top, labelView, " ", actionView)
	default:
		return fit(labelView, width-ansi.StringWidth(actionView), 1) + actionView
	}
}

// GroupLabel titles a group. It is hidden on the icon strip.
type GroupLabel struct {
	BaseComponent
	text string
}

// NewGroupLabel creates a group label.
func NewGroupLabel(text string) *GroupLabel {
	return &GroupLabel{BaseComponent: NewBaseComponent(), text: text}
}

func (l *GroupLabel) Text() string { return l.text }

func (l *GroupLabel) View() string { return l.ViewWithContext(DefaultContext()) }

func (l *GroupLabel) ViewWithContext(ctx RenderContext) string {
	if ctx.IconOnly {
		return ""
	}
	text := l.text
	if ctx.Constraints.MaxWidth > 0 {
		text = ansi.Truncate(text, ctx.Constraints.MaxWidth, "…")
	}
	return l.ComputeStyleWith(ctx.Theme, Typography(TypographyVariantLabel)).Render(text)
}

// GroupAction is a small button on a group's label row.
type GroupAction struct {
	BaseComponent
	glyph   string
	title   string
	onClick func()
}

// NewGroupAction creates a group action drawn as glyph.
func NewGroupAction(glyph, title string) *GroupAction {
	return &GroupAction{BaseComponent: NewBaseComponent(), glyph: glyph, title: title}
}

// WithOnClick registers the action's handler.
func (a *GroupAction) WithOnClick(fn func()) *GroupAction {
	a.onClick = fn
	return a
}

func (a *GroupAction) Title() string { return a.title }

// Activate runs the action's handler.
func (a *GroupAction) Activate() {
	if a.onClick != nil {
		a.onClick()
	}
}

func (a *GroupAction) View() string { return a.ViewWithContext(DefaultContext()) }

func (a *GroupAction) ViewWithContext(ctx RenderContext) string {
	if ctx.IconOnly {
		return ""
	}
	return a.ComputeStyleWith(ctx.Theme, Foreground(PaletteSidebar)).Render(a.glyph)
}

// Separator is a horizontal rule between sidebar sections.
type Separator struct {
	BaseComponent
	char string
}

// NewSeparator creates a separator.
func NewSeparator() *Separator {
	return &Separator{BaseComponent: NewBaseComponent(), char: "─"}
}

// WithChar sets the rule character.
func (s *Separator) WithChar(char string) *Separator {
	if char != "" {
		s.char = char
	}
	return s
}

func (s *Separator) View() string { return s.ViewWithContext(DefaultContext()) }

// ViewWithContext draws the rule inset by one column on each side.
func (s *Separator) ViewWithContext(ctx RenderContext) string {
	width := ctx.Constraints.MaxWidth
	if width <= 0 {
		width = defaultWidthCells
	}
	style := s.ComputeStyleWith(ctx.Theme, func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(theme.Palette.SidebarBorder.Base).MarginLeft(1)
	})
	return style.Render(strings.Repeat(s.char, max(width-2, 1)))
}
