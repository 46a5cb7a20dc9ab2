// Package sqlite provides the SQLite persistence layer: the registration
// repository and the counter store, backed by a single database file.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/akontos/protokolo/internal/log"
	"github.com/akontos/protokolo/internal/registry/domain"
)

// DB owns the database connection and hands out repositories bound to it.
// Construct once at process start and Close on shutdown.
type DB struct {
	conn *sql.DB
}

// NewDB opens (creating if necessary) the database at the given path and
// brings the schema up to date. Parent directories are created with 0700
// permissions since registration data is private to the user.
func NewDB(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	// busy_timeout keeps concurrent writers queued instead of failing
	// immediately; counter allocation relies on writer serialization.
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(10000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)", path)
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := migrate(conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	log.Debug(log.CatDB, "database ready", "path", path)
	return &DB{conn: conn}, nil
}

// RegistrationRepository returns the repository for registrations.
func (db *DB) RegistrationRepository() domain.RegistrationRepository {
	return newRegistrationRepository(db.conn)
}

// CounterStore returns the sequential number allocator.
func (db *DB) CounterStore() domain.CounterStore {
	return newCounterStore(db.conn)
}

// Close releases the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}
