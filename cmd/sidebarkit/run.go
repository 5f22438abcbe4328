package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/sidebarkit/internal/cookie"
	"github.com/alexisbeaulieu97/sidebarkit/internal/sidebar"
	"github.com/alexisbeaulieu97/sidebarkit/internal/tui"
	"github.com/alexisbeaulieu97/sidebarkit/internal/ui/components"
	"github.com/alexisbeaulieu97/sidebarkit/internal/viewport"
)

func runApp(cmd *cobra.Command, flags *rootFlags) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	app, err := openApp(ctx, flags)
	if err != nil {
		return err
	}
	defer app.Close()

	provider := newProvider(app)
	model := newModel(ctx, app, provider)
	defer provider.Unmount()

	if size, ok := viewport.Probe(os.Stdout); ok {
		model = model.Resize(size.Width, size.Height)
	}

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if app.fileJar != nil && app.Config.Storage.Watch {
		err := app.fileJar.Watch(ctx, sidebar.CookieName, func(c cookie.Cookie, found bool) {
			p.Send(tui.CookieChangedMsg{Cookie: c, Found: found})
		})
		if err != nil {
			app.Logger.Warn("state file watch disabled", "error", err.Error())
		}
	}

	app.Logger.Info("launching sidebar app",
		"backend", app.Config.Storage.Backend, "breakpoint", app.Config.Sidebar.MobileBreakpoint)
	if _, err := p.Run(); err != nil {
		app.Logger.Error(err, "sidebar app failed")
		return fmt.Errorf("run sidebar app: %w", err)
	}
	return nil
}

func newProvider(app *AppContext) *sidebar.Provider {
	cfg := app.Config.Sidebar
	return sidebar.NewProvider(sidebar.ProviderOptions{
		Options: sidebar.Options{
			DefaultOpen: cfg.DefaultOpen,
			Jar:         app.Jar,
			Logger:      app.Logger,
		},
		Restore:   true,
		Shortcut:  cfg.Shortcut,
		StyleVars: cfg.StyleVars(),
	})
}

func newModel(ctx context.Context, app *AppContext, provider *sidebar.Provider) tui.Model {
	return tui.NewModel(ctx, modelOptions(app, provider))
}

func modelOptions(app *AppContext, provider *sidebar.Provider) tui.Options {
	cfg := app.Config
	return tui.Options{
		Provider:    provider,
		Breakpoint:  cfg.Sidebar.MobileBreakpoint,
		Side:        components.ParseSide(cfg.Sidebar.Side),
		Variant:     components.ParseVariant(cfg.Sidebar.Variant),
		Collapsible: components.ParseCollapsible(cfg.Sidebar.Collapsible),
		Logger:      app.Logger,
	}
}
