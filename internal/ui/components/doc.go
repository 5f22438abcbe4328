// Package components is a theme-aware component library for terminal
// applications, built on lipgloss.
//
// # Overview
//
// Components render to strings. Every component implements View and
// ViewWithContext; the context carries the Theme, width and height limits,
// and the sidebar Provider in scope:
//
//	ctx := components.DefaultContext().WithProvider(provider)
//	ctx.Constraints = components.WithMaxWidth(width)
//	ctx.Height = height
//	output := layout.ViewWithContext(ctx)
//
// # Sidebar
//
// The sidebar parts read state through RenderContext.UseSidebar and never
// hold the controller themselves:
//
//	sb := NewSidebar(
//		NewHeader(TitleText("Acme")),
//		NewContent(
//			NewGroup(
//				NewGroupLabel("Platform"),
//				NewMenu(
//					NewMenuItem(NewMenuButton("⌂", "Home").WithActive(true)),
//					NewMenuItem(NewMenuButton("✉", "Inbox")).WithBadge(NewMenuBadge("12")),
//				),
//			),
//		),
//		NewFooter(NewText("v1.0")),
//		NewRail(),
//	).WithCollapsible(CollapsibleIcon)
//	layout := NewLayout(sb, NewInset(NewTrigger()))
//
// Rendering a sidebar part with no provider in scope panics with
// sidebar.ErrProviderMissing.
//
// Widths come from the provider's custom properties (--sidebar-width,
// --sidebar-width-icon, --sidebar-width-mobile) at CellsPerRem columns per rem.
//
// # Style Modifiers
//
// Components accept theme-aware style functions through WithAppliers. They
// run after the component's own defaults, so callers win:
//
//	header := NewHeader(...).WithAppliers(
//		Background(PaletteSidebarAccent),
//		PaddingY(SpacingSizeExtraSmall),
//	)
//
// Available modifiers:
//   - Background(slot): semantic background with matching foreground
//   - Foreground(slot): semantic text colour
//   - Border(variant): border from the theme in the sidebar border colour
//   - PaddingX/PaddingY(size): spacing from the theme scale
//   - Typography(variant): typography preset from the theme
//
// # Custom Themes
//
// Themes are values; copy the default and change what you need:
//
//	theme := components.DefaultTheme()
//	theme.Palette.Sidebar = components.ColourSet{...}
//	ctx := components.DefaultContext().WithTheme(theme)
package components
