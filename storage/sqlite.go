package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const (
	sqlCreateKV = `CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value BLOB NOT NULL);`
	sqlUpsertKV = `INSERT INTO kv (key, value) VALUES (:key, :value) ON CONFLICT (key) DO UPDATE SET value=EXCLUDED.value;`
)

type kvRow struct {
	Key   string `db:"key"`
	Value []byte `db:"value"`
}

// SQLiteStore keeps every key in a single table of a sqlite database file.
type SQLiteStore struct {
	db       *sqlx.DB
	filename string
}

// OpenSQLite opens or creates the database at fname.
func OpenSQLite(fname string) (*SQLiteStore, error) {
	if fname == "" {
		return nil, errors.New("storage: sqlite store needs a file name")
	}
	db, err := sqlx.Open("sqlite3", fname)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", fname, err)
	}
	// A single connection keeps ":memory:" databases coherent.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(sqlCreateKV); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: init %s: %w", fname, err)
	}
	return &SQLiteStore{db: db, filename: fname}, nil
}

func (s *SQLiteStore) Filename() string { return s.filename }

func (s *SQLiteStore) Get(key string) ([]byte, bool, error) {
	var row kvRow
	err := s.db.Get(&row, `SELECT key, value FROM kv WHERE key = ?;`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("storage: get %s: %w", key, err)
	}
	return row.Value, true, nil
}

func (s *SQLiteStore) Set(key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	if _, err := s.db.NamedExec(sqlUpsertKV, kvRow{Key: key, Value: value}); err != nil {
		return fmt.Errorf("storage: set %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?;`, key); err != nil {
		return fmt.Errorf("storage: delete %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Keys() ([]string, error) {
	var keys []string
	if err := s.db.Select(&keys, `SELECT key FROM kv ORDER BY key;`); err != nil {
		return nil, fmt.Errorf("storage: keys: %w", err)
	}
	return keys, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
