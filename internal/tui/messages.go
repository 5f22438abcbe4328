package tui

import (
	"github.com/alexisbeaulieu97/sidebarkit/internal/cookie"
)

// CookieChangedMsg reports that another process rewrote the persisted
// sidebar record. Found is false when the record is gone or expired.
type CookieChangedMsg struct {
	Cookie cookie.Cookie
	Found  bool
}
