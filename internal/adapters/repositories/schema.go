package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Storage dialects the schema can be applied to. The sampler and server
// run on SQLite; dbtool applies the same schema to Postgres for externally
// hosted dashboards.
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "postgres"
)

// InitSchema creates the locations and samples tables plus the indexes the
// read path relies on. Every statement is idempotent, so startup can run
// this unconditionally.
func InitSchema(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	idColumn := "INTEGER PRIMARY KEY"
	timestampColumn := "DATETIME"
	if dialect == DialectPostgres {
		idColumn = "BIGSERIAL PRIMARY KEY"
		timestampColumn = "TIMESTAMPTZ"
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createLocationsQuery := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS locations (
		id %s,
		label TEXT NOT NULL UNIQUE,
		address TEXT NOT NULL,
		lat REAL,
		lon REAL,
		created_at %s DEFAULT CURRENT_TIMESTAMP
	);
	`, idColumn, timestampColumn)

	createSamplesQuery := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS samples (
		id %s,
		created_at %s DEFAULT CURRENT_TIMESTAMP,
		batch_id TEXT NOT NULL,
		batch_ts %s NOT NULL,
		origin_label TEXT NOT NULL,
		dest_label TEXT NOT NULL,
		description TEXT NOT NULL,
		meters INTEGER NOT NULL,
		miles FLOAT NOT NULL,
		duration_seconds INTEGER NOT NULL,
		duration_static_minutes INTEGER NOT NULL,
		duration_minutes INTEGER NOT NULL
	);
	`, idColumn, timestampColumn, timestampColumn)

	statements := []string{
		createLocationsQuery,
		createSamplesQuery,
		`CREATE INDEX IF NOT EXISTS idx_samples_batch ON samples(batch_id);`,
		`CREATE INDEX IF NOT EXISTS idx_samples_batch_ts ON samples(batch_ts);`,
		`CREATE INDEX IF NOT EXISTS idx_samples_route ON samples(origin_label, dest_label);`,
		`CREATE INDEX IF NOT EXISTS idx_samples_created_at ON samples(created_at);`,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
