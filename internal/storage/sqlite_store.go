package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	apperrors "github.com/suhani1709/studyflow/internal/errors"
	"github.com/suhani1709/studyflow/internal/models"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.createSchema(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'studyflow init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("%w: failed to open database: %v", apperrors.ErrPersistence, err)
	}
	s.db = db

	// Schema creation is idempotent; running it on load covers databases
	// created by older versions.
	if err := s.createSchema(); err != nil {
		return fmt.Errorf("%w: failed to ensure schema: %v", apperrors.ErrPersistence, err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) createSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			category TEXT NOT NULL,
			subject TEXT NOT NULL DEFAULT '',
			start_time TEXT NOT NULL,
			end_time TEXT NOT NULL,
			priority TEXT NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			date TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_tasks_date ON tasks(date);
		CREATE TABLE IF NOT EXISTS streak (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			current INTEGER NOT NULL DEFAULT 0,
			best INTEGER NOT NULL DEFAULT 0,
			last_active_date TEXT NOT NULL DEFAULT ''
		);
	`)
	return err
}

func (s *SQLiteStore) AddTask(task models.Task) error {
	_, err := s.db.Exec(`
		INSERT INTO tasks (id, title, category, subject, start_time, end_time, priority, completed, date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.Title, string(task.Category), task.Subject,
		task.StartTime, task.EndTime, string(task.Priority), boolToInt(task.Completed), task.Date)
	if err != nil {
		return fmt.Errorf("%w: failed to add task: %v", apperrors.ErrPersistence, err)
	}
	return nil
}

func (s *SQLiteStore) UpdateTask(task models.Task) error {
	result, err := s.db.Exec(`
		UPDATE tasks
		SET title = ?, category = ?, subject = ?, start_time = ?, end_time = ?, priority = ?, completed = ?, date = ?
		WHERE id = ?`,
		task.Title, string(task.Category), task.Subject, task.StartTime,
		task.EndTime, string(task.Priority), boolToInt(task.Completed), task.Date, task.ID)
	if err != nil {
		return fmt.Errorf("%w: failed to update task: %v", apperrors.ErrPersistence, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: failed to update task: %v", apperrors.ErrPersistence, err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, task.ID)
	}
	return nil
}

func (s *SQLiteStore) DeleteTask(id string) error {
	result, err := s.db.Exec("DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("%w: failed to delete task: %v", apperrors.ErrPersistence, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: failed to delete task: %v", apperrors.ErrPersistence, err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, id)
	}
	return nil
}

func (s *SQLiteStore) GetAllTasks() ([]models.Task, error) {
	// rowid order preserves insertion order
	rows, err := s.db.Query(`
		SELECT id, title, category, subject, start_time, end_time, priority, completed, date
		FROM tasks ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query tasks: %v", apperrors.ErrPersistence, err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var t models.Task
		var category, priority string
		var completed int
		if err := rows.Scan(&t.ID, &t.Title, &category, &t.Subject,
			&t.StartTime, &t.EndTime, &priority, &completed, &t.Date); err != nil {
			return nil, fmt.Errorf("%w: failed to scan task: %v", apperrors.ErrPersistence, err)
		}
		t.Category = models.Category(category)
		t.Priority = models.Priority(priority)
		t.Completed = completed != 0
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read tasks: %v", apperrors.ErrPersistence, err)
	}
	return tasks, nil
}

func (s *SQLiteStore) GetStreak() (models.StreakData, error) {
	row := s.db.QueryRow("SELECT current, best, last_active_date FROM streak WHERE id = 1")

	var streak models.StreakData
	err := row.Scan(&streak.Current, &streak.Best, &streak.LastActiveDate)
	if err == sql.ErrNoRows {
		return models.StreakData{}, nil
	}
	if err != nil {
		return models.StreakData{}, fmt.Errorf("%w: failed to read streak: %v", apperrors.ErrPersistence, err)
	}
	return streak, nil
}

func (s *SQLiteStore) SaveStreak(streak models.StreakData) error {
	_, err := s.db.Exec(`
		INSERT INTO streak (id, current, best, last_active_date) VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET current = excluded.current, best = excluded.best, last_active_date = excluded.last_active_date`,
		streak.Current, streak.Best, streak.LastActiveDate)
	if err != nil {
		return fmt.Errorf("%w: failed to save streak: %v", apperrors.ErrPersistence, err)
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
