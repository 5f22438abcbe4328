package sidebar

import (
	"context"
	"errors"

	"github.com/alexisbeaulieu97/sidebarkit/internal/cookie"
	"github.com/alexisbeaulieu97/sidebarkit/internal/logger"
)

// Restore returns the persisted desktop flag from jar. It falls back silently
// when the cookie is absent, expired, unreadable, or holds anything other
// than "true" or "false"; failures are only logged.
func Restore(ctx context.Context, jar cookie.Jar, fallback bool, log *logger.Logger) bool {
	if jar == nil {
		return fallback
	}

	c, err := jar.Get(ctx, CookieName)
	if err != nil {
		if !errors.Is(err, cookie.ErrNotFound) {
			log.Warn("sidebar state unreadable, using default", "error", err.Error(), "default", fallback)
		}
		return fallback
	}

	if open, ok := ParseValue(c.Value); ok {
		return open
	}
	log.Debug("sidebar state malformed, using default", "value", c.Value, "default", fallback)
	return fallback
}

// ParseValue reads a persisted sidebar_state value. Only the exact strings
// "true" and "false" are accepted.
func ParseValue(v string) (open bool, ok bool) {
	switch v {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}
