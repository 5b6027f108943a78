/*
 * Copyright (c) 2026, PrivacyKit (https://privacykit.dev).
 *
 * PrivacyKit licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package storage

import (
	"database/sql"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// SQLiteBackend persists entries in a local SQLite database. It is the
// durable backend recommended for long-lived hosts.
type SQLiteBackend struct {
	db *sql.DB
}

// NewSQLiteBackend opens (or creates) a SQLite database at dbPath and runs
// the schema migration.
func NewSQLiteBackend(dbPath string) (*SQLiteBackend, error) {
	if dbPath == "" {
		return nil, errors.New("sqlite backend requires a path")
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.Wrap(err, "open consent db")
	}
	// WAL mode for better concurrent reads.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "set WAL mode")
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "migrate consent db")
	}
	return &SQLiteBackend{db: db}, nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS consent_store (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)
	`)
	return err
}

// Get retrieves an entry.
func (b *SQLiteBackend) Get(key string) (string, bool, error) {
	var value string
	err := b.db.QueryRow("SELECT value FROM consent_store WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "get %s", key)
	}
	return value, true, nil
}

// Set stores an entry, overwriting any previous value.
func (b *SQLiteBackend) Set(key string, value string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := b.db.Exec(
		`INSERT INTO consent_store (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, now,
	)
	if err != nil {
		return errors.Wrapf(err, "set %s", key)
	}
	return nil
}

// Delete removes an entry. Deleting a missing key is a no-op.
func (b *SQLiteBackend) Delete(key string) error {
	if _, err := b.db.Exec("DELETE FROM consent_store WHERE key = ?", key); err != nil {
		return errors.Wrapf(err, "delete %s", key)
	}
	return nil
}

// Close closes the underlying database connection.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}
