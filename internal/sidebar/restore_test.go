package sidebar

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/sidebarkit/internal/cookie"
)

type failingJar struct{ cookie.Jar }

func (failingJar) Get(context.Context, string) (cookie.Cookie, error) {
	return cookie.Cookie{}, errors.New("disk unavailable")
}

func TestRestoreFallsBack(t *testing.T) {
	ctx := context.Background()

	malformed := cookie.NewMemoryJar(nil)
	_ = malformed.Set(ctx, cookie.Cookie{Name: CookieName, Value: "yes", Path: "/", MaxAge: CookieMaxAge})

	stored := cookie.NewMemoryJar(nil)
	_ = stored.Set(ctx, Cookie(false))

	tests := []struct {
		name     string
		jar      cookie.Jar
		fallback bool
		want     bool
	}{
		{"no jar", nil, true, true},
		{"absent cookie", cookie.NewMemoryJar(nil), true, true},
		{"malformed value", malformed, true, true},
		{"unreadable jar", failingJar{}, false, false},
		{"stored false", stored, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Restore(ctx, tt.jar, tt.fallback, nil))
		})
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in     string
		open   bool
		wantOK bool
	}{
		{"true", true, true},
		{"false", false, true},
		{"TRUE", false, false},
		{"1", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		open, ok := ParseValue(tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		assert.Equal(t, tt.open, open, tt.in)
	}
}
