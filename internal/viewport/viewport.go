// Package viewport classifies the terminal window into the mobile or desktop
// viewport class and notifies subscribers when the class flips.
package viewport

import (
	"os"

	"golang.org/x/term"
)

// DefaultBreakpoint is the column count below which the window counts as
// mobile. It corresponds to a 768px wide browser at 8px per cell.
const DefaultBreakpoint = 96

// Size is a window size in cells.
type Size struct {
	Width  int
	Height int
}

// Observer tracks the viewport class. It is driven from the UI goroutine and
// is not safe for concurrent use.
type Observer struct {
	breakpoint int
	size       Size
	mobile     bool
	known      bool

	nextID      int
	subscribers map[int]func(mobile bool)
}

// NewObserver creates an observer for the given breakpoint. A non-positive
// breakpoint selects DefaultBreakpoint. Until the first Observe call the
// viewport reports desktop.
func NewObserver(breakpoint int) *Observer {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	return &Observer{
		breakpoint:  breakpoint,
		subscribers: make(map[int]func(bool)),
	}
}

// Breakpoint returns the configured breakpoint.
func (o *Observer) Breakpoint() int {
	return o.breakpoint
}

// Observe records a new window size. Subscribers are notified only when the
// viewport class changes, and on the very first observation.
func (o *Observer) Observe(size Size) {
	o.size = size
	mobile := size.Width < o.breakpoint
	if o.known && mobile == o.mobile {
		return
	}
	o.known = true
	o.mobile = mobile
	for _, fn := range o.subscribers {
		fn(mobile)
	}
}

// IsMobile reports the current viewport class.
func (o *Observer) IsMobile() bool {
	return o.mobile
}

// Size returns the last observed window size.
func (o *Observer) Size() Size {
	return o.size
}

// Subscribe registers fn for class changes and returns its remover.
func (o *Observer) Subscribe(fn func(mobile bool)) (unsubscribe func()) {
	o.nextID++
	id := o.nextID
	o.subscribers[id] = fn
	return func() { delete(o.subscribers, id) }
}

// Probe reads the current size of the terminal on f. ok is false when f is
// not a terminal.
func Probe(f *os.File) (size Size, ok bool) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return Size{}, false
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return Size{}, false
	}
	return Size{Width: w, Height: h}, true
}
