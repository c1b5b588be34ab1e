package record

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SessionRow is one completed session in the index.
type SessionRow struct {
	ID          string
	StartedAt   time.Time
	Duration    float64
	Winner      string
	CaughtCount int
	TotalHiders int
	FramePath   string
}

// Index is the SQLite catalog of recorded sessions.
type Index struct {
	db *sql.DB
}

// OpenIndex opens (or creates) the session index at path.
func OpenIndex(path string) (*Index, error) {
	if path == "" {
		return nil, fmt.Errorf("empty index path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	const schema = `CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		started_at TEXT NOT NULL,
		duration REAL NOT NULL,
		winner TEXT NOT NULL,
		caught_count INTEGER NOT NULL,
		total_hiders INTEGER NOT NULL,
		frame_path TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Index{db: db}, nil
}

func (ix *Index) Close() error { return ix.db.Close() }

// Put inserts or replaces one session row.
func (ix *Index) Put(row SessionRow) error {
	_, err := ix.db.Exec(
		`INSERT OR REPLACE INTO sessions
		 (id, started_at, duration, winner, caught_count, total_hiders, frame_path)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		row.ID,
		row.StartedAt.UTC().Format(time.RFC3339),
		row.Duration,
		row.Winner,
		row.CaughtCount,
		row.TotalHiders,
		row.FramePath,
	)
	return err
}

// List returns every recorded session, most recent first.
func (ix *Index) List() ([]SessionRow, error) {
	rows, err := ix.db.Query(
		`SELECT id, started_at, duration, winner, caught_count, total_hiders, frame_path
		 FROM sessions ORDER BY started_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SessionRow
	for rows.Next() {
		var r SessionRow
		var started string
		if err := rows.Scan(&r.ID, &started, &r.Duration, &r.Winner, &r.CaughtCount, &r.TotalHiders, &r.FramePath); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, started); err == nil {
			r.StartedAt = t
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
