// Package keyboard is the window-level key listener surface: one Bus per
// program, fed by the Bubble Tea update loop, with listeners that come and go
// as components mount and unmount.
package keyboard

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Event is a single key press.
//
// Meta covers the platform command modifier. Terminals deliver Cmd/Option as
// an escape prefix, which Bubble Tea reports as Alt, so FromKeyMsg maps Alt
// onto Meta.
type Event struct {
	Key   string
	Ctrl  bool
	Meta  bool
	Shift bool

	prevented bool
}

// PreventDefault marks the event as consumed so the host skips its own
// handling of the key.
func (e *Event) PreventDefault() {
	e.prevented = true
}

// DefaultPrevented reports whether a listener consumed the event.
func (e *Event) DefaultPrevented() bool {
	return e.prevented
}

// Listener receives every dispatched event.
type Listener func(*Event)

// Bus holds the installed listeners. It is driven from the single UI
// goroutine and is not safe for concurrent use.
type Bus struct {
	listeners []*entry
}

type entry struct {
	fn      Listener
	removed bool
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// AddListener installs fn and returns the function that removes it. Calling
// the remover more than once is harmless.
func (b *Bus) AddListener(fn Listener) (remove func()) {
	e := &entry{fn: fn}
	b.listeners = append(b.listeners, e)
	return func() {
		if e.removed {
			return
		}
		e.removed = true
		for i, l := range b.listeners {
			if l == e {
				b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
				return
			}
		}
	}
}

// Len returns the number of installed listeners.
func (b *Bus) Len() int {
	return len(b.listeners)
}

// Dispatch delivers ev to every listener in installation order and reports
// whether any of them prevented the default action. Listeners added during
// the dispatch wait for the next event; listeners removed during it are
// skipped.
func (b *Bus) Dispatch(ev *Event) bool {
	snapshot := make([]*entry, len(b.listeners))
	copy(snapshot, b.listeners)
	for _, l := range snapshot {
		if l.removed {
			continue
		}
		l.fn(ev)
	}
	return ev.DefaultPrevented()
}

// FromKeyMsg translates a Bubble Tea key message into an Event.
//
// Control characters arrive as dedicated key types ("ctrl+b"); they are split
// back into the letter and the Ctrl flag so listeners match on Key alone.
func FromKeyMsg(msg tea.KeyMsg) Event {
	s := msg.String()
	ev := Event{}

	if msg.Alt {
		ev.Meta = true
		s = strings.TrimPrefix(s, "alt+")
	}

	if rest, ok := strings.CutPrefix(s, "ctrl+"); ok {
		ev.Ctrl = true
		s = rest
	}
	if rest, ok := strings.CutPrefix(s, "shift+"); ok {
		ev.Shift = true
		s = rest
	}
	if len(s) == 1 && s != strings.ToLower(s) {
		ev.Shift = true
	}

	ev.Key = s
	return ev
}
