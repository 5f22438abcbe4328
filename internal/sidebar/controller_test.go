package sidebar

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/sidebarkit/internal/cookie"
)

// recordingJar counts writes on top of a MemoryJar.
type recordingJar struct {
	*cookie.MemoryJar
	sets []cookie.Cookie
	err  error
}

func newRecordingJar() *recordingJar {
	return &recordingJar{MemoryJar: cookie.NewMemoryJar(nil)}
}

func (j *recordingJar) Set(ctx context.Context, c cookie.Cookie) error {
	if j.err != nil {
		return j.err
	}
	j.sets = append(j.sets, c)
	return j.MemoryJar.Set(ctx, c)
}

func boolPtr(v bool) *bool { return &v }

func TestDesktopToggleParity(t *testing.T) {
	for _, initial := range []bool{true, false} {
		ctrl := NewController(Options{DefaultOpen: initial})
		for n := 1; n <= 6; n++ {
			ctrl.Toggle()
			want := initial
			if n%2 == 1 {
				want = !initial
			}
			require.Equal(t, want, ctrl.State().OpenDesktop, "initial=%v toggles=%d", initial, n)
		}
	}
}

func TestSetOpenPersistsCookie(t *testing.T) {
	jar := newRecordingJar()
	ctrl := NewController(Options{DefaultOpen: false, Jar: jar})

	ctrl.SetOpen(true)

	got, err := jar.Get(context.Background(), CookieName)
	require.NoError(t, err)
	assert.Equal(t, "true", got.Value)
	assert.Equal(t, "/", got.Path)
	assert.Equal(t, 604800, got.MaxAge)
	assert.Equal(t, "sidebar_state=true; path=/; max-age=604800", got.String())
}

func TestDesktopTogglePersistsEveryChange(t *testing.T) {
	jar := newRecordingJar()
	ctrl := NewController(Options{DefaultOpen: true, Jar: jar})

	ctrl.Toggle()
	ctrl.Toggle()

	require.Len(t, jar.sets, 2)
	assert.Equal(t, "false", jar.sets[0].Value)
	assert.Equal(t, "true", jar.sets[1].Value)
}

func TestMobileToggleLeavesDesktopAlone(t *testing.T) {
	jar := newRecordingJar()
	ctrl := NewController(Options{DefaultOpen: true, Jar: jar})
	ctrl.SetMobile(true)

	ctrl.Toggle()
	assert.True(t, ctrl.State().OpenMobile)
	assert.True(t, ctrl.State().OpenDesktop)

	ctrl.Toggle()
	assert.False(t, ctrl.State().OpenMobile)
	assert.True(t, ctrl.State().OpenDesktop)

	assert.Empty(t, jar.sets)
}

func TestSetOpenOnMobileViewportDoesNotPersist(t *testing.T) {
	jar := newRecordingJar()
	ctrl := NewController(Options{DefaultOpen: true, Jar: jar})
	ctrl.SetMobile(true)

	ctrl.SetOpen(false)

	assert.False(t, ctrl.State().OpenDesktop)
	assert.Empty(t, jar.sets)
}

func TestSetOpenMobileNeverPersists(t *testing.T) {
	jar := newRecordingJar()
	ctrl := NewController(Options{Jar: jar})

	ctrl.SetOpenMobile(true)
	ctrl.SetMobile(true)
	ctrl.SetOpenMobile(false)

	assert.Empty(t, jar.sets)
}

func TestDelegatedOwnershipReportsInsteadOfMutating(t *testing.T) {
	jar := newRecordingJar()
	var requested []bool
	ctrl := NewController(Options{
		DefaultOpen:  true,
		Open:         boolPtr(false),
		OnOpenChange: func(open bool) { requested = append(requested, open) },
		Jar:          jar,
	})

	require.True(t, ctrl.Controlled())
	_, ok := ctrl.Ownership().(*Delegated)
	require.True(t, ok)
	assert.False(t, ctrl.State().OpenDesktop, "controlled value wins over DefaultOpen")

	ctrl.Toggle()
	ctrl.SetOpen(true)

	assert.Equal(t, []bool{true, true}, requested)
	assert.False(t, ctrl.State().OpenDesktop)
	assert.Empty(t, jar.sets)

	require.True(t, ctrl.SetControlledOpen(true))
	assert.True(t, ctrl.State().OpenDesktop)
	assert.Equal(t, ModeExpanded, ctrl.State().Mode)
}

func TestOwnedIgnoresControlledUpdates(t *testing.T) {
	ctrl := NewController(Options{DefaultOpen: true})
	_, ok := ctrl.Ownership().(*Owned)
	require.True(t, ok)

	assert.False(t, ctrl.SetControlledOpen(false))
	assert.True(t, ctrl.State().OpenDesktop)
}

func TestSyncAdoptsWithoutPersisting(t *testing.T) {
	jar := newRecordingJar()
	ctrl := NewController(Options{DefaultOpen: true, Jar: jar})

	require.True(t, ctrl.Sync(false))
	assert.False(t, ctrl.State().OpenDesktop)
	assert.Empty(t, jar.sets)

	delegated := NewController(Options{Open: boolPtr(true)})
	assert.False(t, delegated.Sync(false))
	assert.True(t, delegated.State().OpenDesktop)
}

func TestModeFollowsDesktopFlag(t *testing.T) {
	ctrl := NewController(Options{DefaultOpen: true})
	assert.Equal(t, ModeExpanded, ctrl.State().Mode)
	assert.Equal(t, "expanded", ctrl.State().Mode.String())

	ctrl.SetOpen(false)
	assert.Equal(t, ModeCollapsed, ctrl.State().Mode)
	assert.Equal(t, "collapsed", ctrl.State().Mode.String())

	ctrl.SetMobile(true)
	ctrl.SetOpenMobile(true)
	assert.Equal(t, ModeCollapsed, ctrl.State().Mode, "mobile overlay does not affect mode")
}

func TestStateOpenFollowsViewportClass(t *testing.T) {
	ctrl := NewController(Options{DefaultOpen: true})
	assert.True(t, ctrl.State().Open())

	ctrl.SetMobile(true)
	assert.False(t, ctrl.State().Open())

	ctrl.SetOpenMobile(true)
	assert.True(t, ctrl.State().Open())
}

func TestSubscribeNotifiesOnlyOnChange(t *testing.T) {
	ctrl := NewController(Options{DefaultOpen: true})
	var seen []State
	unsubscribe := ctrl.Subscribe(func(s State) { seen = append(seen, s) })

	ctrl.SetOpen(true)
	ctrl.SetOpenMobile(false)
	ctrl.SetMobile(false)
	assert.Empty(t, seen)

	ctrl.Toggle()
	require.Len(t, seen, 1)
	assert.False(t, seen[0].OpenDesktop)
	assert.Equal(t, ModeCollapsed, seen[0].Mode)

	unsubscribe()
	ctrl.Toggle()
	assert.Len(t, seen, 1)
}

func TestPersistFailureKeepsState(t *testing.T) {
	jar := newRecordingJar()
	jar.err = errors.New("read-only file system")
	ctrl := NewController(Options{DefaultOpen: false, Jar: jar})

	ctrl.SetOpen(true)

	assert.True(t, ctrl.State().OpenDesktop)
}

func TestStyleVars(t *testing.T) {
	vars := StyleVars(nil)
	assert.Equal(t, "16rem", vars[WidthVar])
	assert.Equal(t, "3rem", vars[WidthIconVar])

	vars = StyleVars(map[string]string{WidthVar: "20rem"})
	assert.Equal(t, "20rem", vars[WidthVar])
	assert.Equal(t, "3rem", vars[WidthIconVar])
}
