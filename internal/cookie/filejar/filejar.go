// Package filejar persists cookies as a single JSON document on disk.
package filejar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/sidebarkit/internal/cookie"
	apperrors "github.com/alexisbeaulieu97/sidebarkit/pkg/errors"
)

const backendName = "file"

// jarFile is the on-disk layout.
type jarFile struct {
	Version string                   `json:"version"`
	Cookies map[string]cookie.Cookie `json:"cookies"`
}

// Jar is a cookie.Jar backed by a JSON file written atomically.
type Jar struct {
	path    string
	now     cookie.Clock
	mu      sync.RWMutex
	version string
	cookies map[string]cookie.Cookie
}

// New creates a Jar at path and loads it from disk. A missing file starts an
// empty jar; a nil clock means time.Now.
func New(path string, now cookie.Clock) (*Jar, error) {
	if now == nil {
		now = time.Now
	}
	j := &Jar{
		path:    path,
		now:     now,
		version: "1.0",
		cookies: make(map[string]cookie.Cookie),
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, apperrors.NewStorageError(backendName, "open", fmt.Errorf("create jar directory: %w", err))
	}

	if err := j.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	return j, nil
}

// Path returns the file backing the jar.
func (j *Jar) Path() string {
	return j.path
}

// Load replaces the in-memory view with the file contents. The read happens
// under the write lock so a reload never installs data older than a
// concurrent Set.
func (j *Jar) Load() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	data, err := os.ReadFile(j.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return err
		}
		return apperrors.NewStorageError(backendName, "load", err)
	}

	var file jarFile
	if err := json.Unmarshal(data, &file); err != nil {
		return apperrors.NewStorageError(backendName, "load", fmt.Errorf("parse %s: %w", j.path, err))
	}

	if file.Version != "" {
		j.version = file.Version
	}
	j.cookies = file.Cookies
	if j.cookies == nil {
		j.cookies = make(map[string]cookie.Cookie)
	}
	return nil
}

// Get returns the live cookie stored under name.
func (j *Jar) Get(ctx context.Context, name string) (cookie.Cookie, error) {
	if err := ctx.Err(); err != nil {
		return cookie.Cookie{}, err
	}
	j.mu.RLock()
	defer j.mu.RUnlock()

	c, ok := j.cookies[name]
	if !ok || c.Expired(j.now()) {
		return cookie.Cookie{}, cookie.ErrNotFound
	}
	return c, nil
}

// Set stores c and writes the jar to disk.
func (j *Jar) Set(ctx context.Context, c cookie.Cookie) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.SetAt.IsZero() {
		c.SetAt = j.now()
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	j.cookies[c.Name] = c
	if err := j.saveLocked(); err != nil {
		return apperrors.NewStorageError(backendName, "set", err)
	}
	return nil
}

// Delete removes name and writes the jar to disk.
func (j *Jar) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if _, ok := j.cookies[name]; !ok {
		return nil
	}
	delete(j.cookies, name)
	if err := j.saveLocked(); err != nil {
		return apperrors.NewStorageError(backendName, "delete", err)
	}
	return nil
}

// saveLocked writes the jar atomically. Callers hold j.mu.
func (j *Jar) saveLocked() error {
	file := jarFile{
		Version: j.version,
		Cookies: j.cookies,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal jar: %w", err)
	}

	// Write to temporary file first
	tmpPath := j.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, j.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temporary file: %w", err)
	}

	return nil
}

// Watch reloads the jar whenever another writer replaces the file and calls
// fn with the current state of the named cookie. found is false when the
// cookie is absent or expired. Watch returns once the watcher is installed;
// it stops when ctx is done.
func (j *Jar) Watch(ctx context.Context, name string, fn func(c cookie.Cookie, found bool)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return apperrors.NewStorageError(backendName, "watch", err)
	}

	// Watch the directory: atomic renames replace the inode.
	if err := watcher.Add(filepath.Dir(j.path)); err != nil {
		_ = watcher.Close()
		return apperrors.NewStorageError(backendName, "watch", err)
	}

	go func() {
		defer watcher.Close()
		target := filepath.Clean(j.path)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if err := j.Load(); err != nil {
					continue
				}
				c, err := j.Get(ctx, name)
				fn(c, err == nil)
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return nil
}

var _ cookie.Jar = (*Jar)(nil)
