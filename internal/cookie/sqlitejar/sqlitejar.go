// Package sqlitejar persists cookies in a SQLite database.
package sqlitejar

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/alexisbeaulieu97/sidebarkit/internal/cookie"
	apperrors "github.com/alexisbeaulieu97/sidebarkit/pkg/errors"
)

const backendName = "sqlite"

const schema = `
CREATE TABLE IF NOT EXISTS cookies (
	name       TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	path       TEXT NOT NULL DEFAULT '/',
	max_age    INTEGER NOT NULL,
	set_at     INTEGER NOT NULL
)`

// Jar is a cookie.Jar stored in a single SQLite table.
type Jar struct {
	db  *sql.DB
	now cookie.Clock
}

// Open opens (creating if needed) the database at path. A nil clock means
// time.Now.
func Open(ctx context.Context, path string, now cookie.Clock) (*Jar, error) {
	if now == nil {
		now = time.Now
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, apperrors.NewStorageError(backendName, "open", err)
	}

	// busy_timeout lets concurrent instances wait for the write lock.
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(10000)")
	if err != nil {
		return nil, apperrors.NewStorageError(backendName, "open", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, apperrors.NewStorageError(backendName, "migrate", err)
	}

	return &Jar{db: db, now: now}, nil
}

// Close releases the database handle.
func (j *Jar) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// Get returns the live cookie stored under name.
func (j *Jar) Get(ctx context.Context, name string) (cookie.Cookie, error) {
	var (
		c     cookie.Cookie
		setAt int64
	)
	err := j.db.QueryRowContext(ctx,
		`SELECT name, value, path, max_age, set_at FROM cookies WHERE name = ?`, name).
		Scan(&c.Name, &c.Value, &c.Path, &c.MaxAge, &setAt)
	if errors.Is(err, sql.ErrNoRows) {
		return cookie.Cookie{}, cookie.ErrNotFound
	}
	if err != nil {
		return cookie.Cookie{}, apperrors.NewStorageError(backendName, "get", err)
	}

	c.SetAt = time.Unix(0, setAt).UTC()
	if c.Expired(j.now()) {
		return cookie.Cookie{}, cookie.ErrNotFound
	}
	return c, nil
}

// Set upserts c.
func (j *Jar) Set(ctx context.Context, c cookie.Cookie) error {
	if c.SetAt.IsZero() {
		c.SetAt = j.now()
	}
	ts := c.SetAt.UnixNano()
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO cookies(name, value, path, max_age, set_at) VALUES(?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value, path = excluded.path,
		 max_age = excluded.max_age, set_at = excluded.set_at`,
		c.Name, c.Value, c.Path, c.MaxAge, ts)
	if err != nil {
		return apperrors.NewStorageError(backendName, "set", fmt.Errorf("upsert %s: %w", c.Name, err))
	}
	return nil
}

// Delete removes name.
func (j *Jar) Delete(ctx context.Context, name string) error {
	if _, err := j.db.ExecContext(ctx, `DELETE FROM cookies WHERE name = ?`, name); err != nil {
		return apperrors.NewStorageError(backendName, "delete", err)
	}
	return nil
}

var _ cookie.Jar = (*Jar)(nil)
