package sidebar

import (
	"context"
	"strconv"

	"github.com/alexisbeaulieu97/sidebarkit/internal/cookie"
	"github.com/alexisbeaulieu97/sidebarkit/internal/logger"
)

// Options configures a Controller.
type Options struct {
	// DefaultOpen seeds the desktop flag when the value is owned.
	DefaultOpen bool
	// Open, when non-nil, hands ownership of the desktop flag to the caller.
	Open *bool
	// OnOpenChange receives every requested desktop change while delegated.
	OnOpenChange func(open bool)
	// Jar receives the sidebar_state cookie. Nil disables persistence.
	Jar    cookie.Jar
	Logger *logger.Logger
}

// Controller is the single source of truth for sidebar visibility. All
// methods run on the UI goroutine; it is not safe for concurrent use.
type Controller struct {
	owner      Ownership
	openMobile bool
	mobile     bool

	jar cookie.Jar
	log *logger.Logger

	last        State
	nextID      int
	subscribers []subscriber
}

type subscriber struct {
	id int
	fn func(State)
}

// NewController builds a controller, resolving ownership from opts.
func NewController(opts Options) *Controller {
	c := &Controller{
		owner: resolveOwnership(opts.DefaultOpen, opts.Open, opts.OnOpenChange),
		jar:   opts.Jar,
		log:   opts.Logger,
	}
	c.last = c.snapshot()
	return c
}

// Ownership returns the resolved ownership variant.
func (c *Controller) Ownership() Ownership {
	return c.owner
}

// Controlled reports whether the desktop flag is owned by the caller.
func (c *Controller) Controlled() bool {
	_, ok := c.owner.(*Delegated)
	return ok
}

// State returns the current snapshot.
func (c *Controller) State() State {
	return c.last
}

// GetState is an alias of State.
func (c *Controller) GetState() State {
	return c.State()
}

// Toggle flips the flag that matches the current viewport class.
func (c *Controller) Toggle() {
	if c.mobile {
		c.SetOpenMobile(!c.openMobile)
		return
	}
	c.SetOpen(!c.owner.isOpen())
}

// SetOpen sets the desktop flag. An owned value is stored and, on a desktop
// viewport, persisted; a delegated value is only reported to the owner.
func (c *Controller) SetOpen(open bool) {
	switch o := c.owner.(type) {
	case *Owned:
		o.open = open
		if !c.mobile {
			c.persist(open)
		}
	case *Delegated:
		if o.onChange != nil {
			o.onChange(open)
		}
	}
	c.publish()
}

// SetOpenMobile sets the mobile overlay flag. It is never persisted.
func (c *Controller) SetOpenMobile(open bool) {
	c.openMobile = open
	c.publish()
}

// SetMobile records the viewport class.
func (c *Controller) SetMobile(mobile bool) {
	c.mobile = mobile
	c.publish()
}

// SetControlledOpen feeds a new value from the owner of a delegated flag. It
// reports false, and changes nothing, when the value is owned.
func (c *Controller) SetControlledOpen(open bool) bool {
	d, ok := c.owner.(*Delegated)
	if !ok {
		return false
	}
	d.open = open
	c.publish()
	return true
}

// Sync adopts a desktop value that was persisted by someone else, without
// writing it back. It reports false when the value is delegated.
func (c *Controller) Sync(open bool) bool {
	o, ok := c.owner.(*Owned)
	if !ok {
		return false
	}
	o.open = open
	c.publish()
	return true
}

// Subscribe registers fn to receive every new snapshot and returns its
// remover. fn is not called for mutations that leave the snapshot unchanged.
func (c *Controller) Subscribe(fn func(State)) (unsubscribe func()) {
	c.nextID++
	id := c.nextID
	c.subscribers = append(c.subscribers, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range c.subscribers {
			if s.id == id {
				c.subscribers = append(c.subscribers[:i:i], c.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (c *Controller) snapshot() State {
	open := c.owner.isOpen()
	return State{
		OpenDesktop: open,
		OpenMobile:  c.openMobile,
		Mobile:      c.mobile,
		Mode:        ModeFor(open),
	}
}

func (c *Controller) publish() {
	next := c.snapshot()
	if next == c.last {
		return
	}
	c.last = next
	c.log.Debug("sidebar state changed",
		"open", next.OpenDesktop, "open_mobile", next.OpenMobile,
		"mobile", next.Mobile, "state", next.Mode.String())

	subs := make([]subscriber, len(c.subscribers))
	copy(subs, c.subscribers)
	for _, s := range subs {
		s.fn(next)
	}
}

func (c *Controller) persist(open bool) {
	if c.jar == nil {
		return
	}
	ck := Cookie(open)
	if err := c.jar.Set(context.Background(), ck); err != nil {
		c.log.Error(err, "failed to persist sidebar state", "cookie", ck.String())
		return
	}
	c.log.Debug("sidebar state persisted", "cookie", ck.String())
}

// Cookie builds the sidebar_state cookie for open.
func Cookie(open bool) cookie.Cookie {
	return cookie.Cookie{
		Name:   CookieName,
		Value:  strconv.FormatBool(open),
		Path:   CookiePath,
		MaxAge: CookieMaxAge,
	}
}
