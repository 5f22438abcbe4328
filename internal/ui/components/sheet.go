package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/sidebarkit/internal/sidebar"
	"github.com/alexisbeaulieu97/sidebarkit/internal/ui"
)

// SheetTitle is the accessible name of the mobile sheet.
const SheetTitle = "Sidebar"

// Sheet is the edge-attached overlay the sidebar becomes on a narrow
// terminal. It is dismissed with Esc or its close button.
type Sheet struct {
	BaseComponent
	side     Side
	children []ui.Renderable
}

// NewSheet creates a sheet attached to side.
func NewSheet(side Side, children ...ui.Renderable) *Sheet {
	return &Sheet{BaseComponent: NewBaseComponent(), side: side, children: children}
}

// Width is the mobile width custom property in columns.
func (s *Sheet) Width(ctx RenderContext) int {
	return RemToCells(ctx.styleVar(sidebar.WidthMobileVar, sidebar.WidthMobile), defaultWidthMobileCells)
}

// Title returns the sheet's accessible name.
func (s *Sheet) Title() string {
	return SheetTitle
}

// Close dismisses the sheet through the provider in scope.
func (s *Sheet) Close(ctx RenderContext) error {
	ctrl, err := sidebar.Use(ctx.Provider)
	if err != nil {
		return err
	}
	ctrl.SetOpenMobile(false)
	return nil
}

// View renders the sheet with the default context.
func (s *Sheet) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the sheet: a close button row followed by the
// sidebar body, with a rule on the edge facing the screen.
func (s *Sheet) ViewWithContext(ctx RenderContext) string {
	width := s.Width(ctx)
	if ctx.Constraints.MaxWidth > 0 {
		width = min(width, ctx.Constraints.MaxWidth)
	}
	style := s.ComputeStyleWith(ctx.Theme, Background(PaletteSidebar), edgeBorder(s.side))
	innerW := max(width-1, 1)

	closeRow := lipgloss.PlaceHorizontal(innerW, lipgloss.Right, "✕ ")
	innerH := 0
	if ctx.Height > 0 {
		innerH = max(ctx.Height-1, 1)
	}

	childCtx := ctx.WithConstraints(Constraints{MaxWidth: innerW, MaxHeight: innerH})
	childCtx.Height = innerH
	childCtx.IconOnly = false

	body := fit(column(s.children, childCtx, innerH), innerW, innerH)
	return style.Render(closeRow + "\n" + body)
}
