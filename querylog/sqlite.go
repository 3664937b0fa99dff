package querylog

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// ============================================================================
// SQLITE RECORDER — durable query log
// ============================================================================

const createTableSQL = `
CREATE TABLE IF NOT EXISTS query_log (
	id        TEXT PRIMARY KEY,
	recorded  TIMESTAMP NOT NULL,
	query     TEXT NOT NULL,
	kind      TEXT NOT NULL,
	project   TEXT,
	summary   TEXT NOT NULL
);`

// SQLiteRecorder appends entries to a SQLite database file.
type SQLiteRecorder struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the log database at path.
func OpenSQLite(path string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open query log %s: %w", path, err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init query log schema: %w", err)
	}
	return &SQLiteRecorder{db: db}, nil
}

// Record implements Recorder. An unresolved project is stored as NULL.
func (r *SQLiteRecorder) Record(e Entry) error {
	project := sql.NullString{String: e.Project, Valid: e.Project != ""}
	_, err := r.db.Exec(
		`INSERT INTO query_log (id, recorded, query, kind, project, summary)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Timestamp, e.Query, e.Kind, project, e.Summary,
	)
	if err != nil {
		return fmt.Errorf("append query log: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
