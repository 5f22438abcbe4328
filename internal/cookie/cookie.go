// Package cookie models the small persisted key/value records the sidebar
// uses to remember its desktop state between runs, and the jars that store
// them.
package cookie

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ErrNotFound is returned by a Jar when no live cookie exists under a name.
// Expired cookies are reported as not found.
var ErrNotFound = errors.New("cookie not found")

// Clock returns the current time. Jars take one so expiry can be tested.
type Clock func() time.Time

// Cookie is a named value with a path scope and a max-age lifetime measured
// from the moment it was written.
type Cookie struct {
	Name   string    `json:"name"`
	Value  string    `json:"value"`
	Path   string    `json:"path"`
	MaxAge int       `json:"max_age"`
	SetAt  time.Time `json:"set_at"`
}

// Jar stores cookies by name.
type Jar interface {
	Get(ctx context.Context, name string) (Cookie, error)
	Set(ctx context.Context, c Cookie) error
	Delete(ctx context.Context, name string) error
}

// ExpiresAt returns the instant after which the cookie is no longer live.
func (c Cookie) ExpiresAt() time.Time {
	return c.SetAt.Add(time.Duration(c.MaxAge) * time.Second)
}

// Expired reports whether the cookie is dead at now. A non-positive max-age
// expires immediately.
func (c Cookie) Expired(now time.Time) bool {
	if c.MaxAge <= 0 {
		return true
	}
	return !now.Before(c.ExpiresAt())
}

// String renders the cookie in document-cookie assignment form,
// e.g. "sidebar_state=true; path=/; max-age=604800".
func (c Cookie) String() string {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteByte('=')
	b.WriteString(c.Value)
	if c.Path != "" {
		b.WriteString("; path=")
		b.WriteString(c.Path)
	}
	b.WriteString("; max-age=")
	b.WriteString(strconv.Itoa(c.MaxAge))
	return b.String()
}

// Parse reads a cookie in the form produced by String. The returned cookie
// has SetAt stamped with now.
func Parse(line string, now time.Time) (Cookie, error) {
	hc, err := http.ParseSetCookie(line)
	if err != nil {
		return Cookie{}, fmt.Errorf("parse cookie %q: %w", line, err)
	}
	c := Cookie{
		Name:   hc.Name,
		Value:  hc.Value,
		Path:   hc.Path,
		MaxAge: hc.MaxAge,
		SetAt:  now,
	}
	// net/http folds "max-age=0" into -1.
	if c.MaxAge < 0 {
		c.MaxAge = 0
	}
	return c, nil
}
