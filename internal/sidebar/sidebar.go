// Package sidebar owns the visibility state of a collapsible side panel.
//
// A Provider creates a Controller when it mounts and discards it when it
// unmounts. The controller tracks two independent flags, one for the desktop
// panel and one for the mobile overlay, and picks between them using the
// viewport class reported by the viewport observer. Only the desktop flag is
// persisted, as the sidebar_state cookie.
//
// Descendant components never hold the controller; they resolve it through
// Use or FromContext, which fail with ErrProviderMissing outside a mounted
// provider.
package sidebar

import "time"

// Persisted cookie contract.
const (
	CookieName   = "sidebar_state"
	CookiePath   = "/"
	CookieMaxAge = 60 * 60 * 24 * 7
)

// CookieLifetime is CookieMaxAge as a duration.
const CookieLifetime = CookieMaxAge * time.Second

// Style contract consumed by the component layer.
const (
	WidthVar     = "--sidebar-width"
	WidthIconVar = "--sidebar-width-icon"

	// WidthMobileVar replaces WidthVar inside the mobile sheet.
	WidthMobileVar = "--sidebar-width-mobile"

	Width       = "16rem"
	WidthMobile = "18rem"
	WidthIcon   = "3rem"
)

// DefaultShortcut is the key that, with Ctrl or Meta held, toggles the sidebar.
const DefaultShortcut = "b"

// Mode is the data-state of the desktop panel.
type Mode int

const (
	ModeExpanded Mode = iota
	ModeCollapsed
)

func (m Mode) String() string {
	if m == ModeCollapsed {
		return "collapsed"
	}
	return "expanded"
}

// ModeFor derives the mode from the desktop open flag.
func ModeFor(open bool) Mode {
	if open {
		return ModeExpanded
	}
	return ModeCollapsed
}

// State is an immutable snapshot of the controller.
type State struct {
	OpenDesktop bool
	OpenMobile  bool
	Mobile      bool
	Mode        Mode
}

// Open reports whether the panel for the current viewport class is visible.
func (s State) Open() bool {
	if s.Mobile {
		return s.OpenMobile
	}
	return s.OpenDesktop
}

// StyleVars returns the custom properties the provider exposes to the
// component layer, with overrides applied on top.
func StyleVars(overrides map[string]string) map[string]string {
	vars := map[string]string{
		WidthVar:       Width,
		WidthIconVar:   WidthIcon,
		WidthMobileVar: WidthMobile,
	}
	for k, v := range overrides {
		vars[k] = v
	}
	return vars
}
