package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"duke/internal/task"
)

type Store struct {
	db *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, err
	}
	dsn := sqliteDSN(dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS tasks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	position INTEGER NOT NULL,
	kind TEXT NOT NULL,
	description TEXT NOT NULL,
	done INTEGER NOT NULL DEFAULT 0,
	date TEXT DEFAULT NULL,
	created_at TEXT NOT NULL
);`
	_, err := s.db.Exec(ddl)
	return err
}

// FetchTasks loads the task list in its saved order.
func (s *Store) FetchTasks() ([]task.Task, error) {
	rows, err := s.db.Query(`SELECT kind, description, done, date FROM tasks ORDER BY position, id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var kind string
		var doneInt int
		var dateStr sql.NullString
		var t task.Task

		if err := rows.Scan(&kind, &t.Description, &doneInt, &dateStr); err != nil {
			return nil, err
		}
		t.Kind, err = task.ParseKind(kind)
		if err != nil {
			return nil, err
		}
		t.Done = doneInt == 1
		if dateStr.Valid {
			parsed, err := task.ParseDate(dateStr.String)
			if err != nil {
				return nil, fmt.Errorf("task %q: bad date: %w", t.Description, err)
			}
			t.Date = parsed
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

// SaveTasks replaces the stored list with tasks, keeping their order.
func (s *Store) SaveTasks(tasks []task.Task) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tasks;`); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO tasks (position, kind, description, done, date, created_at) VALUES (?, ?, ?, ?, ?, ?);`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for i, t := range tasks {
		done := 0
		if t.Done {
			done = 1
		}
		dateStr := sql.NullString{}
		if t.Kind != task.KindTodo {
			dateStr = sql.NullString{String: t.Date.Format(task.DateLayout), Valid: true}
		}
		if _, err := stmt.Exec(i, t.Kind.String(), t.Description, done, dateStr, now); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func sqliteDSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}
	u := url.URL{
		Scheme: "file",
		Path:   path,
	}
	q := u.Query()
	q.Set("mode", "rwc")
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}
