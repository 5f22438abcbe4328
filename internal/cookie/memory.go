package cookie

import (
	"context"
	"sync"
	"time"
)

// MemoryJar keeps cookies in process memory. Nothing survives a restart.
type MemoryJar struct {
	mu      sync.RWMutex
	now     Clock
	cookies map[string]Cookie
}

// NewMemoryJar creates an empty jar. A nil clock means time.Now.
func NewMemoryJar(now Clock) *MemoryJar {
	if now == nil {
		now = time.Now
	}
	return &MemoryJar{now: now, cookies: make(map[string]Cookie)}
}

// Get returns the live cookie stored under name.
func (j *MemoryJar) Get(ctx context.Context, name string) (Cookie, error) {
	if err := ctx.Err(); err != nil {
		return Cookie{}, err
	}
	j.mu.RLock()
	defer j.mu.RUnlock()

	c, ok := j.cookies[name]
	if !ok || c.Expired(j.now()) {
		return Cookie{}, ErrNotFound
	}
	return c, nil
}

// Set stores c, stamping SetAt when the caller left it zero.
func (j *MemoryJar) Set(ctx context.Context, c Cookie) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.SetAt.IsZero() {
		c.SetAt = j.now()
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	j.cookies[c.Name] = c
	return nil
}

// Delete removes the cookie stored under name, if any.
func (j *MemoryJar) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	delete(j.cookies, name)
	return nil
}

var _ Jar = (*MemoryJar)(nil)
