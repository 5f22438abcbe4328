package components

import (
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/sidebarkit/internal/sidebar"
	"github.com/alexisbeaulieu97/sidebarkit/internal/ui"
)

type MenuButtonVariant int

const (
	MenuButtonVariantDefault MenuButtonVariant = iota
	MenuButtonVariantOutline
)

type MenuButtonSize int

const (
	MenuButtonSizeDefault MenuButtonSize = iota
	MenuButtonSizeSmall
	MenuButtonSizeLarge
)

// Entry is a menu row the keyboard can move between.
type Entry interface {
	Label() string
	Active() bool
	SetActive(bool)
}

// Menu is a list of menu items and skeletons.
type Menu struct {
	BaseComponent
	items  []ui.Renderable
	filter string
}

// NewMenu creates a menu.
func NewMenu(items ...ui.Renderable) *Menu {
	return &Menu{BaseComponent: NewBaseComponent(), items: items}
}

// Add appends items.
func (m *Menu) Add(items ...ui.Renderable) *Menu {
	m.items = append(m.items, items...)
	return m
}

// SetFilter keeps only the items whose label, or one of whose sub labels,
// contains query, ignoring case. Skeletons are hidden while a filter is set.
// An empty query shows everything.
func (m *Menu) SetFilter(query string) {
	m.filter = strings.ToLower(strings.TrimSpace(query))
}

func (m *Menu) Filter() string { return m.filter }

func (m *Menu) visible(item ui.Renderable) bool {
	if m.filter == "" {
		return true
	}
	mi, ok := item.(*MenuItem)
	return ok && mi.matches(m.filter)
}

// Entries returns every focusable row in display order. Sub menu buttons are
// left out while the sidebar is an icon strip because they are not drawn.
func (m *Menu) Entries(iconOnly bool) []Entry {
	var entries []Entry
	for _, item := range m.items {
		mi, ok := item.(*MenuItem)
		if !ok || !m.visible(item) {
			continue
		}
		entries = append(entries, mi.button)
		if mi.sub != nil && !iconOnly {
			for _, it := range mi.sub.items {
				entries = append(entries, it.button)
			}
		}
	}
	return entries
}

func (m *Menu) View() string { return m.ViewWithContext(DefaultContext()) }

func (m *Menu) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(m.items))
	for _, item := range m.items {
		if !m.visible(item) {
			continue
		}
		if view := render(item, ctx); view != "" {
			views = append(views, view)
		}
	}
	if len(views) == 0 {
		return ""
	}
	return m.ComputeStyle(ctx.Theme).Render(strings.Join(views, "\n"))
}

// MenuItem is one row of a menu: a button with an optional action, badge and
// sub menu.
type MenuItem struct {
	BaseComponent
	button *MenuButton
	action *MenuAction
	badge  *MenuBadge
	sub    *MenuSub
}

// NewMenuItem creates an item around button.
func NewMenuItem(button *MenuButton) *MenuItem {
	return &MenuItem{BaseComponent: NewBaseComponent(), button: button}
}

func (i *MenuItem) WithAction(action *MenuAction) *MenuItem {
	i.action = action
	return i
}

func (i *MenuItem) WithBadge(badge *MenuBadge) *MenuItem {
	i.badge = badge
	return i
}

func (i *MenuItem) WithSub(sub *MenuSub) *MenuItem {
	i.sub = sub
	return i
}

func (i *MenuItem) Button() *MenuButton { return i.button }

// matches reports whether the item or one of its sub entries contains the
// lower-cased query.
func (i *MenuItem) matches(query string) bool {
	if strings.Contains(strings.ToLower(i.button.label), query) {
		return true
	}
	if i.sub == nil {
		return false
	}
	for _, it := range i.sub.items {
		if strings.Contains(strings.ToLower(it.button.label), query) {
			return true
		}
	}
	return false
}

func (i *MenuItem) View() string { return i.ViewWithContext(DefaultContext()) }

// ViewWithContext renders the button row with trailing badge and action, then
// the sub menu beneath it.
func (i *MenuItem) ViewWithContext(ctx RenderContext) string {
	var trailing []string
	if !ctx.IconOnly {
		if i.badge != nil {
			trailing = append(trailing, i.badge.ViewWithContext(ctx))
		}
		if i.action != nil {
			if view := i.action.view(ctx, i.button.Active()); view != "" {
				trailing = append(trailing, view)
			}
		}
	}
	tail := strings.Join(trailing, " ")
	tailW := ansi.StringWidth(tail)

	buttonCtx := ctx
	if ctx.Constraints.MaxWidth > 0 && tailW > 0 {
		buttonCtx = ctx.WithConstraints(Constraints{
			MaxWidth:  max(ctx.Constraints.MaxWidth-tailW-1, 1),
			MaxHeight: ctx.Constraints.MaxHeight,
		})
	}
	row := i.button.ViewWithContext(buttonCtx)
	if tail != "" {
		row = lipgloss.JoinHorizontal(lipgloss.Center, row, " ", tail)
	}

	if i.sub != nil {
		if sub := i.sub.ViewWithContext(ctx); sub != "" {
			row += "\n" + sub
		}
	}
	return i.ComputeStyle(ctx.Theme).Render(row)
}

// MenuButton is the clickable part of a menu item.
type MenuButton struct {
	BaseComponent
	icon    string
	label   string
	tooltip string
	variant MenuButtonVariant
	size    MenuButtonSize
	active  bool
}

// NewMenuButton creates a default sized menu button.
func NewMenuButton(icon, label string) *MenuButton {
	return &MenuButton{BaseComponent: NewBaseComponent(), icon: icon, label: label}
}

func (b *MenuButton) WithVariant(variant MenuButtonVariant) *MenuButton {
	b.variant = variant
	return b
}

func (b *MenuButton) WithSize(size MenuButtonSize) *MenuButton {
	b.size = size
	return b
}

func (b *MenuButton) WithActive(active bool) *MenuButton {
	b.active = active
	return b
}

// WithTooltip sets the text shown beside the icon strip when collapsed.
func (b *MenuButton) WithTooltip(tooltip string) *MenuButton {
	b.tooltip = tooltip
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *MenuButton) WithAppliers(appliers ...StyleFunc) *MenuButton {
	b.SetAppliers(appliers...)
	return b
}

func (b *MenuButton) Icon() string               { return b.icon }
func (b *MenuButton) Label() string              { return b.label }
func (b *MenuButton) Tooltip() string            { return b.tooltip }
func (b *MenuButton) Variant() MenuButtonVariant { return b.variant }
func (b *MenuButton) Size() MenuButtonSize       { return b.size }
func (b *MenuButton) Active() bool               { return b.active }
func (b *MenuButton) SetActive(active bool)      { b.active = active }

// TooltipVisible reports whether the tooltip applies: only on a collapsed
// desktop sidebar.
func (b *MenuButton) TooltipVisible(state sidebar.State) bool {
	return b.tooltip != "" && state.Mode == sidebar.ModeCollapsed && !state.Mobile
}

func (b *MenuButton) View() string { return b.ViewWithContext(DefaultContext()) }

// ViewWithContext renders the button filling the width constraint. On the
// icon strip only the icon is drawn, centred.
func (b *MenuButton) ViewWithContext(ctx RenderContext) string {
	style := b.style
	if strategy := ctx.Theme.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, ctx.Theme)
	}
	defaults := []StyleFunc{}
	if b.active {
		defaults = append(defaults, Background(PaletteSidebarAccent), Typography(TypographyVariantBold))
	}
	switch b.size {
	case MenuButtonSizeLarge:
		if !ctx.IconOnly {
			defaults = append(defaults, PaddingY(SpacingSizeExtraSmall))
		}
	case MenuButtonSizeSmall:
		defaults = append(defaults, Typography(TypographyVariantLabel))
	}
	style = CompositeStrategy{funcs: defaults}.Apply(style, ctx.Theme)
	if b.strategy != nil {
		style = b.strategy.Apply(style, ctx.Theme)
	}

	width := ctx.Constraints.MaxWidth
	if ctx.IconOnly {
		glyph := b.icon
		if glyph == "" {
			glyph = firstRune(b.label)
		}
		if width > 0 {
			return style.UnsetPaddingLeft().UnsetPaddingRight().
				Width(width).Align(lipgloss.Center).Render(glyph)
		}
		return style.Render(glyph)
	}

	content := b.label
	if b.icon != "" {
		content = b.icon + " " + b.label
	}
	if width > 0 {
		inner := max(width-style.GetHorizontalFrameSize(), 1)
		content = ansi.Truncate(content, inner, "…")
		return style.Width(width).Render(content)
	}
	return style.Render(content)
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

// MenuAction is a small button at the end of a menu item row.
type MenuAction struct {
	BaseComponent
	glyph       string
	showOnHover bool
	onClick     func()
}

// NewMenuAction creates an action drawn as glyph.
func NewMenuAction(glyph string) *MenuAction {
	return &MenuAction{BaseComponent: NewBaseComponent(), glyph: glyph}
}

// WithShowOnHover hides the action unless its item is active.
func (a *MenuAction) WithShowOnHover(show bool) *MenuAction {
	a.showOnHover = show
	return a
}

// WithOnClick registers the action's handler.
func (a *MenuAction) WithOnClick(fn func()) *MenuAction {
	a.onClick = fn
	return a
}

// Activate runs the action's handler.
func (a *MenuAction) Activate() {
	if a.onClick != nil {
		a.onClick()
	}
}

func (a *MenuAction) View() string { return a.view(DefaultContext(), true) }

func (a *MenuAction) view(ctx RenderContext, itemActive bool) string {
	if ctx.IconOnly || (a.showOnHover && !itemActive) {
		return ""
	}
	return a.ComputeStyleWith(ctx.Theme, Foreground(PaletteSidebar)).Render(a.glyph)
}

// MenuBadge is a short count or tag at the end of a menu item row.
type MenuBadge struct {
	BaseComponent
	text string
}

// NewMenuBadge creates a badge.
func NewMenuBadge(text string) *MenuBadge {
	return &MenuBadge{BaseComponent: NewBaseComponent(), text: text}
}

func (b *MenuBadge) Text() string { return b.text }

func (b *MenuBadge) View() string { return b.ViewWithContext(DefaultContext()) }

func (b *MenuBadge) ViewWithContext(ctx RenderContext) string {
	if ctx.IconOnly {
		return ""
	}
	return b.ComputeStyleWith(ctx.Theme, Typography(TypographyVariantLabel)).Render(b.text)
}

// MenuSkeleton is a placeholder row drawn while menu data loads. Its bar
// width is picked once, between half and nine tenths of the row.
type MenuSkeleton struct {
	BaseComponent
	showIcon bool
	percent  int
}

// NewMenuSkeleton creates a skeleton row.
func NewMenuSkeleton(showIcon bool) *MenuSkeleton {
	return &MenuSkeleton{
		BaseComponent: NewBaseComponent(),
		showIcon:      showIcon,
		percent:       50 + rand.IntN(41),
	}
}

// Percent is the bar width as a share of the row.
func (s *MenuSkeleton) Percent() int { return s.percent }

func (s *MenuSkeleton) View() string { return s.ViewWithContext(DefaultContext()) }

func (s *MenuSkeleton) ViewWithContext(ctx RenderContext) string {
	width := ctx.Constraints.MaxWidth
	if width <= 0 {
		width = defaultWidthCells
	}
	style := s.ComputeStyleWith(ctx.Theme, Typography(TypographyVariantMuted))
	if ctx.IconOnly {
		return style.Render("▒")
	}
	prefix := ""
	if s.showIcon {
		prefix = "▒ "
	}
	bar := max((width-ansi.StringWidth(prefix))*s.percent/100, 1)
	return style.Render(prefix + strings.Repeat("░", bar))
}

// MenuSub is the indented list under a menu item. It is hidden on the icon
// strip.
type MenuSub struct {
	BaseComponent
	items []*MenuSubItem
}

// NewMenuSub creates a sub menu with one item per button.
func NewMenuSub(buttons ...*MenuSubButton) *MenuSub {
	s := &MenuSub{BaseComponent: NewBaseComponent()}
	for _, b := range buttons {
		s.items = append(s.items, NewMenuSubItem(b))
	}
	return s
}

// Add appends items.
func (s *MenuSub) Add(items ...*MenuSubItem) *MenuSub {
	s.items = append(s.items, items...)
	return s
}

func (s *MenuSub) Items() []*MenuSubItem { return s.items }

func (s *MenuSub) View() string { return s.ViewWithContext(DefaultContext()) }

func (s *MenuSub) ViewWithContext(ctx RenderContext) string {
	if ctx.IconOnly || len(s.items) == 0 {
		return ""
	}
	style := s.ComputeStyleWith(ctx.Theme, func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.MarginLeft(2).PaddingLeft(1).
			Border(theme.Borders.Normal, false, false, false, true).
			BorderForeground(theme.Palette.SidebarBorder.Base)
	})
	inner := ctx
	if ctx.Constraints.MaxWidth > 0 {
		inner = ctx.WithConstraints(Constraints{
			MaxWidth:  max(ctx.Constraints.MaxWidth-style.GetHorizontalFrameSize(), 1),
			MaxHeight: ctx.Constraints.MaxHeight,
		})
	}
	views := make([]string, 0, len(s.items))
	for _, it := range s.items {
		views = append(views, it.ViewWithContext(inner))
	}
	return style.Render(strings.Join(views, "\n"))
}

// MenuSubItem is one row of a sub menu.
type MenuSubItem struct {
	BaseComponent
	button *MenuSubButton
}

// NewMenuSubItem creates a row around button.
func NewMenuSubItem(button *MenuSubButton) *MenuSubItem {
	return &MenuSubItem{BaseComponent: NewBaseComponent(), button: button}
}

// WithAppliers applies theme-based style modifiers.
func (i *MenuSubItem) WithAppliers(appliers ...StyleFunc) *MenuSubItem {
	i.SetAppliers(appliers...)
	return i
}

func (i *MenuSubItem) Button() *MenuSubButton { return i.button }

func (i *MenuSubItem) View() string { return i.ViewWithContext(DefaultContext()) }

func (i *MenuSubItem) ViewWithContext(ctx RenderContext) string {
	style := i.ComputeStyle(ctx.Theme)
	inner := ctx
	if ctx.Constraints.MaxWidth > 0 {
		inner = ctx.WithConstraints(Constraints{
			MaxWidth:  max(ctx.Constraints.MaxWidth-style.GetHorizontalFrameSize(), 1),
			MaxHeight: ctx.Constraints.MaxHeight,
		})
	}
	return style.Render(i.button.ViewWithContext(inner))
}

// MenuSubButton is an entry of a sub menu.
type MenuSubButton struct {
	BaseComponent
	label  string
	small  bool
	active bool
}

// NewMenuSubButton creates a sub menu button.
func NewMenuSubButton(label string) *MenuSubButton {
	return &MenuSubButton{BaseComponent: NewBaseComponent(), label: label}
}

// WithSmall draws the button with the label typography.
func (b *MenuSubButton) WithSmall(small bool) *MenuSubButton {
	b.small = small
	return b
}

func (b *MenuSubButton) WithActive(active bool) *MenuSubButton {
	b.active = active
	return b
}

func (b *MenuSubButton) Label() string         { return b.label }
func (b *MenuSubButton) Active() bool          { return b.active }
func (b *MenuSubButton) SetActive(active bool) { b.active = active }

func (b *MenuSubButton) View() string { return b.ViewWithContext(DefaultContext()) }

func (b *MenuSubButton) ViewWithContext(ctx RenderContext) string {
	defaults := []StyleFunc{Foreground(PaletteSidebar), PaddingX(SpacingSizeExtraSmall)}
	if b.small {
		defaults = append(defaults, Typography(TypographyVariantLabel))
	}
	if b.active {
		defaults = append(defaults, Background(PaletteSidebarAccent), Typography(TypographyVariantBold))
	}
	style := b.ComputeStyleWith(ctx.Theme, defaults...)
	if width := ctx.Constraints.MaxWidth; width > 0 {
		label := ansi.Truncate(b.label, max(width-style.GetHorizontalFrameSize(), 1), "…")
		return style.Width(width).Render(label)
	}
	return style.Render(b.label)
}
