package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/akontos/protokolo/internal/log"
)

// schemaVersion is the current schema generation, stored in PRAGMA
// user_version. Bump it together with a new entry in migrations.
const schemaVersion = 1

// schemaSQL is the authoritative schema for fresh databases. Tests build
// their databases through NewDB so they always run against this schema.
//
// Two durable collections: registrations (by id, with secondary indexes on
// category and created_at) and counters (by scope key). Timestamps are
// RFC 3339 TEXT so month filtering can use prefix matching; is_deleted is
// derived from deleted_at being non-NULL.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS registrations (
	id TEXT PRIMARY KEY,
	category TEXT NOT NULL,
	protocol_number TEXT NOT NULL,
	draft_number TEXT,
	issuer TEXT NOT NULL,
	ref_number TEXT NOT NULL,
	doc_date TEXT NOT NULL,
	subject TEXT NOT NULL,
	entry_date TEXT NOT NULL,
	recipient TEXT,
	sic TEXT,
	offices TEXT NOT NULL,
	created_at TEXT NOT NULL,
	created_by TEXT NOT NULL,
	deleted_at TEXT
);

CREATE INDEX IF NOT EXISTS idx_registrations_category ON registrations(category);
CREATE INDEX IF NOT EXISTS idx_registrations_created_at ON registrations(created_at);

CREATE TABLE IF NOT EXISTS counters (
	key TEXT PRIMARY KEY,
	value INTEGER NOT NULL
);
`

// migrations maps a source schema version to the SQL that advances it by
// one generation. Version 0 is an empty database.
var migrations = map[int]string{
	0: schemaSQL,
}

// migrate steps the database schema up to schemaVersion.
func migrate(conn *sql.DB) error {
	var version int
	if err := conn.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	for version < schemaVersion {
		stmt, ok := migrations[version]
		if !ok {
			return fmt.Errorf("no migration from schema version %d", version)
		}
		if _, err := conn.Exec(stmt); err != nil {
			return fmt.Errorf("applying migration from version %d: %w", version, err)
		}
		version++
		if _, err := conn.Exec(fmt.Sprintf("PRAGMA user_version = %d", version)); err != nil {
			return fmt.Errorf("recording schema version %d: %w", version, err)
		}
		log.Debug(log.CatDB, "migrated schema", "version", version)
	}
	return nil
}
