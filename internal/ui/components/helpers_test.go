package components

import (
	"context"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/sidebarkit/internal/keyboard"
	"github.com/alexisbeaulieu97/sidebarkit/internal/sidebar"
	"github.com/alexisbeaulieu97/sidebarkit/internal/viewport"
)

type harness struct {
	provider *sidebar.Provider
	ctrl     *sidebar.Controller
	viewport *viewport.Observer
}

func mount(t *testing.T, open bool, columns int, vars map[string]string) harness {
	t.Helper()

	p := sidebar.NewProvider(sidebar.ProviderOptions{
		Options:   sidebar.Options{DefaultOpen: open},
		StyleVars: vars,
	})
	vp := viewport.NewObserver(viewport.DefaultBreakpoint)
	ctrl := p.Mount(context.Background(), keyboard.NewBus(), vp)
	vp.Observe(viewport.Size{Width: columns, Height: 24})
	t.Cleanup(p.Unmount)
	return harness{provider: p, ctrl: ctrl, viewport: vp}
}

func (h harness) ctx(width, height int) RenderContext {
	ctx := DefaultContext().WithProvider(h.provider).WithConstraints(WithMaxWidth(width))
	ctx.Height = height
	return ctx
}

func plain(s string) string {
	return ansi.Strip(s)
}
