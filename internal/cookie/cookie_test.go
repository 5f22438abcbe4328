package cookie

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieString(t *testing.T) {
	t.Parallel()

	c := Cookie{Name: "sidebar_state", Value: "true", Path: "/", MaxAge: 604800}
	assert.Equal(t, "sidebar_state=true; path=/; max-age=604800", c.String())
}

func TestParseRoundTripsDocumentForm(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	c, err := Parse("sidebar_state=false; path=/; max-age=604800", now)
	require.NoError(t, err)

	assert.Equal(t, "sidebar_state", c.Name)
	assert.Equal(t, "false", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, 604800, c.MaxAge)
	assert.Equal(t, now, c.SetAt)
}

func TestParseZeroMaxAgeIsExpired(t *testing.T) {
	t.Parallel()

	now := time.Now()
	c, err := Parse("sidebar_state=true; path=/; max-age=0", now)
	require.NoError(t, err)
	assert.True(t, c.Expired(now))
}

func TestParseRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := Parse("", time.Now())
	require.Error(t, err)
}

func TestCookieExpiry(t *testing.T) {
	t.Parallel()

	setAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := Cookie{Name: "sidebar_state", Value: "true", MaxAge: 60, SetAt: setAt}

	tests := []struct {
		name    string
		now     time.Time
		expired bool
	}{
		{"just written", setAt, false},
		{"one second before expiry", setAt.Add(59 * time.Second), false},
		{"at expiry", setAt.Add(60 * time.Second), true},
		{"long after", setAt.Add(24 * time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expired, c.Expired(tt.now))
		})
	}
}

func TestMemoryJarLifecycle(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	jar := NewMemoryJar(func() time.Time { return now })
	ctx := context.Background()

	_, err := jar.Get(ctx, "sidebar_state")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, jar.Set(ctx, Cookie{Name: "sidebar_state", Value: "true", Path: "/", MaxAge: 604800}))

	got, err := jar.Get(ctx, "sidebar_state")
	require.NoError(t, err)
	assert.Equal(t, "true", got.Value)
	assert.Equal(t, now, got.SetAt)

	now = now.Add(8 * 24 * time.Hour)
	_, err = jar.Get(ctx, "sidebar_state")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, jar.Delete(ctx, "sidebar_state"))
}

func TestMemoryJarHonoursCancellation(t *testing.T) {
	t.Parallel()

	jar := NewMemoryJar(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := jar.Set(ctx, Cookie{Name: "x", Value: "y", MaxAge: 1})
	require.True(t, errors.Is(err, context.Canceled))
}
