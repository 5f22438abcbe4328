package sidebar

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/sidebarkit/internal/cookie"
	"github.com/alexisbeaulieu97/sidebarkit/internal/keyboard"
	"github.com/alexisbeaulieu97/sidebarkit/internal/viewport"
)

func mountProvider(t *testing.T, opts ProviderOptions) (*Provider, *Controller, *keyboard.Bus, *viewport.Observer) {
	t.Helper()
	bus := keyboard.NewBus()
	vp := viewport.NewObserver(80)
	vp.Observe(viewport.Size{Width: 120, Height: 40})
	p := NewProvider(opts)
	ctrl := p.Mount(context.Background(), bus, vp)
	require.NotNil(t, ctrl)
	return p, ctrl, bus, vp
}

func TestShortcutTogglesOnceWithModifier(t *testing.T) {
	for _, ev := range []keyboard.Event{
		{Key: "b", Ctrl: true},
		{Key: "b", Meta: true},
	} {
		_, ctrl, bus, _ := mountProvider(t, ProviderOptions{Options: Options{DefaultOpen: true}})

		e := ev
		prevented := bus.Dispatch(&e)

		assert.True(t, prevented)
		assert.False(t, ctrl.State().OpenDesktop, "event %+v should toggle exactly once", ev)
	}
}

func TestShortcutIgnoresUnmodifiedKey(t *testing.T) {
	_, ctrl, bus, _ := mountProvider(t, ProviderOptions{Options: Options{DefaultOpen: true}})

	for _, ev := range []keyboard.Event{
		{Key: "b"},
		{Key: "b", Shift: true},
		{Key: "B", Ctrl: true},
		{Key: "c", Ctrl: true},
	} {
		e := ev
		assert.False(t, bus.Dispatch(&e))
	}
	assert.True(t, ctrl.State().OpenDesktop)
}

func TestCustomShortcut(t *testing.T) {
	p, ctrl, bus, _ := mountProvider(t, ProviderOptions{Options: Options{DefaultOpen: true}, Shortcut: "s"})
	assert.Equal(t, "s", p.Shortcut())

	bus.Dispatch(&keyboard.Event{Key: "b", Ctrl: true})
	assert.True(t, ctrl.State().OpenDesktop)

	bus.Dispatch(&keyboard.Event{Key: "s", Ctrl: true})
	assert.False(t, ctrl.State().OpenDesktop)
}

func TestShortcutOnMobileTogglesOverlay(t *testing.T) {
	_, ctrl, bus, vp := mountProvider(t, ProviderOptions{Options: Options{DefaultOpen: true}})
	vp.Observe(viewport.Size{Width: 60, Height: 40})
	require.True(t, ctrl.State().Mobile)

	bus.Dispatch(&keyboard.Event{Key: "b", Ctrl: true})

	assert.True(t, ctrl.State().OpenMobile)
	assert.True(t, ctrl.State().OpenDesktop)
}

func TestUnmountRemovesListener(t *testing.T) {
	p, ctrl, bus, vp := mountProvider(t, ProviderOptions{Options: Options{DefaultOpen: true}})
	require.Equal(t, 1, bus.Len())

	p.Unmount()
	assert.Equal(t, 0, bus.Len())
	assert.False(t, p.Mounted())

	var prevented bool
	require.NotPanics(t, func() {
		prevented = bus.Dispatch(&keyboard.Event{Key: "b", Ctrl: true})
	})
	assert.False(t, prevented)
	assert.True(t, ctrl.State().OpenDesktop)

	vp.Observe(viewport.Size{Width: 10})
	assert.False(t, ctrl.State().Mobile, "viewport subscription is released too")

	p.Unmount()
}

func TestUnmountDuringDispatchSkipsShortcut(t *testing.T) {
	bus := keyboard.NewBus()
	p := NewProvider(ProviderOptions{Options: Options{DefaultOpen: true}})
	bus.AddListener(func(*keyboard.Event) { p.Unmount() })
	ctrl := p.Mount(context.Background(), bus, nil)

	var prevented bool
	require.NotPanics(t, func() {
		prevented = bus.Dispatch(&keyboard.Event{Key: "b", Ctrl: true})
	})
	assert.False(t, prevented)
	assert.False(t, p.Mounted())
	assert.True(t, ctrl.State().OpenDesktop)
}

func TestShortcutAfterUnmountIsIgnored(t *testing.T) {
	p, ctrl, _, _ := mountProvider(t, ProviderOptions{Options: Options{DefaultOpen: true}})
	p.Unmount()

	ev := &keyboard.Event{Key: "b", Ctrl: true}
	require.NotPanics(t, func() { p.handleKey(ev) })
	assert.False(t, ev.DefaultPrevented())
	assert.True(t, ctrl.State().OpenDesktop)
}

func TestRemountDoesNotLeakListeners(t *testing.T) {
	bus := keyboard.NewBus()
	p := NewProvider(ProviderOptions{Options: Options{DefaultOpen: true}})

	p.Mount(context.Background(), bus, nil)
	p.Mount(context.Background(), bus, nil)
	require.Equal(t, 1, bus.Len())

	p.Unmount()
	ctrl := p.Mount(context.Background(), bus, nil)
	require.Equal(t, 1, bus.Len())

	bus.Dispatch(&keyboard.Event{Key: "b", Ctrl: true})
	assert.False(t, ctrl.State().OpenDesktop, "exactly one toggle after remount")
}

func TestMountRestoresPersistedState(t *testing.T) {
	jar := cookie.NewMemoryJar(nil)
	require.NoError(t, jar.Set(context.Background(), Cookie(false)))

	_, ctrl, _, _ := mountProvider(t, ProviderOptions{
		Options: Options{DefaultOpen: true, Jar: jar},
		Restore: true,
	})
	assert.False(t, ctrl.State().OpenDesktop)
}

func TestMountFollowsViewportClass(t *testing.T) {
	bus := keyboard.NewBus()
	vp := viewport.NewObserver(80)
	vp.Observe(viewport.Size{Width: 40})

	ctrl := NewProvider(ProviderOptions{}).Mount(context.Background(), bus, vp)
	assert.True(t, ctrl.State().Mobile)

	vp.Observe(viewport.Size{Width: 100})
	assert.False(t, ctrl.State().Mobile)
}

func TestUseWithoutProviderFails(t *testing.T) {
	for i := 0; i < 3; i++ {
		ctrl, err := Use(nil)
		require.ErrorIs(t, err, ErrProviderMissing)
		assert.Nil(t, ctrl)
	}

	unmounted := NewProvider(ProviderOptions{})
	_, err := Use(unmounted)
	require.ErrorIs(t, err, ErrProviderMissing)

	assert.PanicsWithError(t, ErrProviderMissing.Error(), func() { MustUse(nil) })
}

func TestUseAfterUnmountFails(t *testing.T) {
	p, _, _, _ := mountProvider(t, ProviderOptions{})
	_, err := Use(p)
	require.NoError(t, err)

	p.Unmount()
	_, err = Use(p)
	require.ErrorIs(t, err, ErrProviderMissing)
}

func TestFromContext(t *testing.T) {
	_, err := FromContext(context.Background())
	require.ErrorIs(t, err, ErrProviderMissing)

	p, ctrl, _, _ := mountProvider(t, ProviderOptions{})
	got, err := FromContext(WithProvider(context.Background(), p))
	require.NoError(t, err)
	assert.Same(t, ctrl, got)
}
