package session

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaFS embed.FS

// Store persists the active session so start/pause/stop work across process
// boundaries: the CLI can stop a timer the TUI started and vice versa.
// Completed sessions are not kept here; the workbook is the durable log.
type Store struct {
	db *sql.DB
}

// DefaultDir returns (and creates) the per-user data directory.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	base := filepath.Join(home, ".local", "share", "timesheet")
	if err := os.MkdirAll(base, 0o755); err != nil {
		return "", err
	}
	return base, nil
}

func OpenStore(dir string) (*Store, error) {
	path := filepath.Join(dir, "timesheet.db")
	dsn := fmt.Sprintf(
		"file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)",
		path,
	)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func migrate(db *sql.DB) error {
	b, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	if _, err := db.Exec(string(b)); err != nil {
		return errors.Join(fmt.Errorf("schema apply failed"), err)
	}
	return nil
}

func (st *Store) Close() error { return st.db.Close() }

// Active returns the current session, or ErrNoSession.
func (st *Store) Active() (*Session, error) {
	row := st.db.QueryRow(
		`SELECT id, project, activity, state, started_at, accumulated_ms, created_at
		 FROM sessions ORDER BY id DESC LIMIT 1`)

	var s Session
	var startedAt, createdAt string
	var accMS int64
	err := row.Scan(&s.ID, &s.Project, &s.Activity, &s.State, &startedAt, &accMS, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}

	if s.StartedAt, err = parseTime(startedAt); err != nil {
		return nil, fmt.Errorf("bad started_at in store: %w", err)
	}
	if s.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("bad created_at in store: %w", err)
	}
	s.Accumulated = time.Duration(accMS) * time.Millisecond
	return &s, nil
}

// Put inserts s as the active session. At most one session may be active.
func (st *Store) Put(s *Session) error {
	var n int
	if err := st.db.QueryRow(`SELECT count(1) FROM sessions`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return ErrAlreadyActive
	}

	res, err := st.db.Exec(
		`INSERT INTO sessions(project, activity, state, started_at, accumulated_ms, created_at)
		 VALUES(?, ?, ?, ?, ?, ?)`,
		s.Project, s.Activity, string(s.State),
		s.StartedAt.UTC().Format(time.RFC3339Nano),
		s.Accumulated.Milliseconds(),
		s.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return err
	}
	s.ID, _ = res.LastInsertId()
	return nil
}

// Update writes the mutable fields of s back to the store.
func (st *Store) Update(s *Session) error {
	res, err := st.db.Exec(
		`UPDATE sessions SET state=?, started_at=?, accumulated_ms=? WHERE id=?`,
		string(s.State),
		s.StartedAt.UTC().Format(time.RFC3339Nano),
		s.Accumulated.Milliseconds(),
		s.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoSession
	}
	return nil
}

func (st *Store) Delete(id int64) error {
	_, err := st.db.Exec(`DELETE FROM sessions WHERE id=?`, id)
	return err
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
	}
	return t, err
}
