//go:build !(js && wasm)

package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// one connection keeps :memory: databases alive and serialises writers
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS local_storage(
  partition  TEXT NOT NULL,
  key        TEXT NOT NULL,
  value      TEXT NOT NULL,
  updated_at TEXT,
  PRIMARY KEY(partition, key)
);
CREATE INDEX IF NOT EXISTS idx_local_storage_updated ON local_storage(updated_at);
`
	_, err := db.Exec(schema)
	return err
}

// SQLite keeps one visitor's local storage in a shared database, keyed by
// partition. Partitions never see each other's keys.
type SQLite struct {
	db        *sqlx.DB
	partition string
}

func NewSQLite(db *sqlx.DB, partition string) *SQLite {
	return &SQLite{db: db, partition: partition}
}

func (s *SQLite) GetItem(key string) (string, bool, error) {
	var v string
	err := s.db.Get(&v, `SELECT value FROM local_storage WHERE partition = ? AND key = ?`, s.partition, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return v, true, nil
}

func (s *SQLite) SetItem(key, value string) error {
	if len(value) > MaxValueBytes {
		return ErrQuotaExceeded
	}
	_, err := s.db.Exec(`
	  INSERT INTO local_storage(partition, key, value, updated_at)
	  VALUES(?, ?, ?, ?)
	  ON CONFLICT(partition, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, s.partition, key, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
