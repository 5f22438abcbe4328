package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/sidebarkit/internal/sidebar"
	"github.com/alexisbeaulieu97/sidebarkit/internal/ui/components"
)

// scene is the component tree the model drives.
type scene struct {
	layout  *components.Layout
	menus   []*components.Menu
	trigger *components.Trigger
	search  *components.Input
	readout *readout
}

// buildScene assembles the navigation sidebar and the inset that reports
// the provider's state.
func buildScene(opts Options, title string) scene {
	platform := components.NewMenu(
		components.NewMenuItem(components.NewMenuButton("⌂", "Home").WithTooltip("Home")),
		components.NewMenuItem(components.NewMenuButton("✉", "Inbox").WithTooltip("Inbox")).
			WithBadge(components.NewMenuBadge("12")),
		components.NewMenuItem(components.NewMenuButton("▤", "Models").WithTooltip("Models")).
			WithSub(components.NewMenuSub(
				components.NewMenuSubButton("Genesis"),
				components.NewMenuSubButton("Explorer"),
				components.NewMenuSubButton("Quantum"),
			)),
		components.NewMenuItem(components.NewMenuButton("⚙", "Settings").WithTooltip("Settings")).
			WithAction(components.NewMenuAction("⋯").WithShowOnHover(true)),
	)
	projects := components.NewMenu(
		components.NewMenuItem(components.NewMenuButton("◆", "Design Engineering").WithTooltip("Design Engineering")),
		components.NewMenuItem(components.NewMenuButton("●", "Sales & Marketing").WithTooltip("Sales & Marketing")),
		components.NewMenuSkeleton(true),
	)

	search := components.NewInput("Search the docs…")

	sb := components.NewSidebar(
		components.NewHeader(
			components.TitleText(title),
			components.MutedText("Enterprise"),
			search,
		),
		components.NewContent(
			components.NewGroup(
				components.NewGroupLabel("Platform"),
				components.NewGroupAction("+", "Add Page"),
				components.NewGroupContent(platform),
			),
			components.NewSeparator(),
			components.NewGroup(
				components.NewGroupLabel("Projects"),
				components.NewGroupContent(projects),
			),
		),
		components.NewFooter(
			components.NewMenuButton("☺", "shadcn").WithSize(components.MenuButtonSizeLarge),
		),
		components.NewRail(),
	).
		WithSide(opts.Side).
		WithVariant(opts.Variant).
		WithCollapsible(opts.Collapsible)

	trigger := components.NewTrigger()
	out := &readout{trigger: trigger, title: title, page: "Home"}
	layout := components.NewLayout(sb, components.NewInset(out))

	return scene{
		layout:  layout,
		menus:   []*components.Menu{platform, projects},
		trigger: trigger,
		search:  search,
		readout: out,
	}
}

// readout is the inset content: the trigger, a breadcrumb and the live
// provider state.
type readout struct {
	trigger *components.Trigger
	title   string
	page    string
	changes int
}

func (r *readout) View() string {
	return r.ViewWithContext(components.DefaultContext())
}

func (r *readout) ViewWithContext(ctx components.RenderContext) string {
	toolbar := lipgloss.JoinHorizontal(lipgloss.Top,
		r.trigger.ViewWithContext(ctx),
		keyStyle.Render("│ "),
		r.title+" › "+valueStyle.Render(r.page),
	)

	state, err := ctx.UseSidebar()
	if err != nil {
		return toolbar + "\n\n" + err.Error()
	}
	ctrl, _ := sidebar.Use(ctx.Provider)

	viewport := "desktop"
	if state.Mobile {
		viewport = "mobile"
	}
	sheet := "closed"
	if state.OpenMobile {
		sheet = "open"
	}
	persisted := sidebar.Cookie(state.OpenDesktop).String()
	if ctrl != nil && ctrl.Controlled() {
		persisted = "not persisted (controlled)"
	}

	rows := [][2]string{
		{"state", state.Mode.String()},
		{"viewport", viewport},
		{"sheet", sheet},
		{"cookie", persisted},
		{"changes", fmt.Sprint(r.changes)},
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, " "+keyStyle.Render(fmt.Sprintf("%-9s", row[0]))+valueStyle.Render(row[1]))
	}
	return toolbar + "\n\n" + strings.Join(lines, "\n")
}
