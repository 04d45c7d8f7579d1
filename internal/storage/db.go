package storage

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"timetable/internal"
)

// DB is a seed database for the student tracker: teachers with their
// addresses, the group to stream mapping and the deduplicated schedule.
type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS teachers (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  full_name TEXT NOT NULL UNIQUE,
  email TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS group_streams (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  group_name TEXT NOT NULL UNIQUE,
  stream_name TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_group_streams_stream ON group_streams(stream_name);

CREATE TABLE IF NOT EXISTS schedule (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  group_name TEXT,
  person_name TEXT,
  subject TEXT,
  raw_json TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_schedule_group ON schedule(group_name);

CREATE TABLE IF NOT EXISTS metadata (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

	_, err := d.conn.Exec(schema)
	return err
}

// Reset empties every table so that an export describes one run only.
func (d *DB) Reset() error {
	tx, err := d.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"teachers", "group_streams", "schedule", "metadata"} {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// InsertTeachers stores roster entries, keeping the first address of a
// name. It returns the number of rows inserted.
func (d *DB) InsertTeachers(entries []internal.RosterEntry) (int, error) {
	tx, err := d.conn.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
INSERT INTO teachers (full_name, email) VALUES (?, ?)
ON CONFLICT(full_name) DO NOTHING
`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	inserted := 0
	for _, e := range entries {
		res, err := stmt.Exec(e.FullName, e.Email)
		if err != nil {
			return 0, err
		}
		n, _ := res.RowsAffected()
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return inserted, nil
}

func (d *DB) UpsertGroupStreams(groups []internal.GroupStream) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
INSERT INTO group_streams (group_name, stream_name) VALUES (?, ?)
ON CONFLICT(group_name) DO UPDATE SET stream_name = excluded.stream_name
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, g := range groups {
		if _, err := stmt.Exec(g.Group, g.Stream); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (d *DB) InsertSchedule(rows []internal.ScheduleRow) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
INSERT INTO schedule (group_name, person_name, subject, raw_json) VALUES (?, ?, ?, ?)
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(nullable(r.GroupName), nullable(r.PersonName), nullable(r.Subject), r.RawJSON); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (d *DB) SetMetadata(key, value string) error {
	_, err := d.conn.Exec(`
INSERT INTO metadata (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updatedAt = CURRENT_TIMESTAMP
`, key, value)
	return err
}

func (d *DB) GetMetadata(key string) (*string, error) {
	var value string
	err := d.conn.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func (d *DB) ListTeachers() ([]internal.RosterEntry, error) {
	rows, err := d.conn.Query(`SELECT full_name, email FROM teachers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.RosterEntry
	for rows.Next() {
		var e internal.RosterEntry
		if err := rows.Scan(&e.FullName, &e.Email); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (d *DB) ListGroupStreams() ([]internal.GroupStream, error) {
	rows, err := d.conn.Query(`SELECT group_name, stream_name FROM group_streams ORDER BY group_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.GroupStream
	for rows.Next() {
		var g internal.GroupStream
		if err := rows.Scan(&g.Group, &g.Stream); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (d *DB) CountSchedule() (int, error) {
	var n int
	err := d.conn.QueryRow(`SELECT COUNT(*) FROM schedule`).Scan(&n)
	return n, err
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
