package sidebar

import (
	"context"
	"errors"

	"github.com/alexisbeaulieu97/sidebarkit/internal/keyboard"
	"github.com/alexisbeaulieu97/sidebarkit/internal/viewport"
)

// ErrProviderMissing is returned when sidebar state is requested without a
// mounted provider. It marks a programming error and is never recovered.
var ErrProviderMissing = errors.New("sidebar: state accessed outside a mounted provider")

// ProviderOptions configures a Provider.
type ProviderOptions struct {
	Options

	// Restore seeds an owned desktop flag from the jar on mount, falling
	// back to DefaultOpen.
	Restore bool
	// Shortcut is the key toggled with Ctrl or Meta. Empty means DefaultShortcut.
	Shortcut string
	// StyleVars overrides the width custom properties.
	StyleVars map[string]string
}

// Provider owns a Controller for as long as it is mounted and binds it to the
// keyboard bus and the viewport observer.
type Provider struct {
	opts     ProviderOptions
	shortcut string
	vars     map[string]string

	ctrl    *Controller
	mounted bool

	removeKey      func()
	removeViewport func()
}

// NewProvider prepares a provider. Nothing is created or installed until Mount.
func NewProvider(opts ProviderOptions) *Provider {
	shortcut := opts.Shortcut
	if shortcut == "" {
		shortcut = DefaultShortcut
	}
	return &Provider{
		opts:     opts,
		shortcut: shortcut,
		vars:     StyleVars(opts.StyleVars),
	}
}

// Mount creates a fresh controller, installs one keyboard listener on bus and
// follows vp for the viewport class. Either may be nil. Mounting an already
// mounted provider unmounts it first.
func (p *Provider) Mount(ctx context.Context, bus *keyboard.Bus, vp *viewport.Observer) *Controller {
	if p.mounted {
		p.Unmount()
	}

	opts := p.opts.Options
	if p.opts.Restore && opts.Open == nil {
		opts.DefaultOpen = Restore(ctx, opts.Jar, opts.DefaultOpen, opts.Logger)
	}

	ctrl := NewController(opts)
	if vp != nil {
		ctrl.SetMobile(vp.IsMobile())
		p.removeViewport = vp.Subscribe(ctrl.SetMobile)
	}
	if bus != nil {
		p.removeKey = bus.AddListener(p.handleKey)
	}

	p.ctrl = ctrl
	p.mounted = true
	opts.Logger.Debug("sidebar provider mounted",
		"controlled", ctrl.Controlled(), "open", ctrl.State().OpenDesktop, "shortcut", p.shortcut)
	return ctrl
}

// Unmount removes the keyboard listener and viewport subscription and drops
// the controller. It is a no-op when not mounted.
func (p *Provider) Unmount() {
	if !p.mounted {
		return
	}
	if p.removeKey != nil {
		p.removeKey()
		p.removeKey = nil
	}
	if p.removeViewport != nil {
		p.removeViewport()
		p.removeViewport = nil
	}
	p.ctrl = nil
	p.mounted = false
	p.opts.Logger.Debug("sidebar provider unmounted")
}

// Mounted reports whether the provider currently owns a controller.
func (p *Provider) Mounted() bool {
	return p != nil && p.mounted
}

// Shortcut returns the toggle key.
func (p *Provider) Shortcut() string {
	return p.shortcut
}

// StyleVars returns the width custom properties for the wrapper.
func (p *Provider) StyleVars() map[string]string {
	return p.vars
}

func (p *Provider) handleKey(ev *keyboard.Event) {
	if p.ctrl == nil || ev.Key != p.shortcut || !(ev.Ctrl || ev.Meta) {
		return
	}
	ev.PreventDefault()
	p.ctrl.Toggle()
}

// Use resolves the controller of a mounted provider.
func Use(p *Provider) (*Controller, error) {
	if !p.Mounted() {
		return nil, ErrProviderMissing
	}
	return p.ctrl, nil
}

// MustUse is Use for callers that treat a missing provider as fatal. It
// panics with ErrProviderMissing.
func MustUse(p *Provider) *Controller {
	ctrl, err := Use(p)
	if err != nil {
		panic(err)
	}
	return ctrl
}

type providerKey struct{}

// WithProvider returns a context carrying p.
func WithProvider(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, providerKey{}, p)
}

// FromContext resolves the controller of the provider carried by ctx.
func FromContext(ctx context.Context) (*Controller, error) {
	if ctx == nil {
		return nil, ErrProviderMissing
	}
	p, _ := ctx.Value(providerKey{}).(*Provider)
	return Use(p)
}
