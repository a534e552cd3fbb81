package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Open connects to the configured storage location. A postgres:// URL uses
// pgx; anything else is treated as a SQLite database file path.
func Open(storage string) (*sql.DB, error) {
	driver := "sqlite"
	if IsPostgres(storage) {
		driver = "pgx"
	}

	db, err := sql.Open(driver, storage)
	if err != nil {
		return nil, fmt.Errorf("openDB: open %s database %q: %w", driver, storage, err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("openDB: verify %s connection to %q: %w", driver, storage, err)
	}

	return db, nil
}

// IsPostgres reports whether the storage location is a Postgres URL.
func IsPostgres(storage string) bool {
	return strings.HasPrefix(storage, "postgres://") || strings.HasPrefix(storage, "postgresql://")
}
