package storage

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/lib/pq"

	apperrors "github.com/suhani1709/studyflow/internal/errors"
	"github.com/suhani1709/studyflow/internal/models"
)

type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{
		connStr: connStr,
	}
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries a password inline. Credentials must come from the environment,
// .pgpass, or the OS keyring instead.
func HasEmbeddedCredentials(connStr string) bool {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		if u.User != nil {
			if _, set := u.User.Password(); set {
				return true
			}
		}
		return false
	}

	// DSN format: space-separated key=value pairs
	for _, part := range strings.Fields(connStr) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 && strings.EqualFold(kv[0], "password") {
			return true
		}
	}
	return false
}

func (s *PostgresStore) open() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("%w: failed to open database: %v", apperrors.ErrPersistence, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("%w: failed to connect to database: %v", apperrors.ErrPersistence, err)
	}

	s.db = db
	return nil
}

func (s *PostgresStore) Init() error {
	if err := s.open(); err != nil {
		return err
	}
	if err := s.createSchema(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load() error {
	if err := s.open(); err != nil {
		return err
	}
	return s.createSchema()
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) createSchema() error {
	// seq stands in for SQLite's rowid to preserve insertion order.
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			seq BIGSERIAL,
			title TEXT NOT NULL,
			category TEXT NOT NULL,
			subject TEXT NOT NULL DEFAULT '',
			start_time TEXT NOT NULL,
			end_time TEXT NOT NULL,
			priority TEXT NOT NULL,
			completed BOOLEAN NOT NULL DEFAULT FALSE,
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
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}
	return nil
}

func (s *PostgresStore) AddTask(task models.Task) error {
	_, err := s.db.Exec(`
		INSERT INTO tasks (id, title, category, subject, start_time, end_time, priority, completed, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		task.ID, task.Title, string(task.Category), task.Subject,
		task.StartTime, task.EndTime, string(task.Priority), task.Completed, task.Date)
	if err != nil {
		return fmt.Errorf("%w: failed to add task: %v", apperrors.ErrPersistence, err)
	}
	return nil
}

func (s *PostgresStore) UpdateTask(task models.Task) error {
	result, err := s.db.Exec(`
		UPDATE tasks
		SET title = $1, category = $2, subject = $3, start_time = $4, end_time = $5, priority = $6, completed = $7, date = $8
		WHERE id = $9`,
		task.Title, string(task.Category), task.Subject, task.StartTime,
		task.EndTime, string(task.Priority), task.Completed, task.Date, task.ID)
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

func (s *PostgresStore) DeleteTask(id string) error {
	result, err := s.db.Exec("DELETE FROM tasks WHERE id = $1", id)
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

func (s *PostgresStore) GetAllTasks() ([]models.Task, error) {
	rows, err := s.db.Query(`
		SELECT id, title, category, subject, start_time, end_time, priority, completed, date
		FROM tasks ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query tasks: %v", apperrors.ErrPersistence, err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var t models.Task
		var category, priority string
		if err := rows.Scan(&t.ID, &t.Title, &category, &t.Subject,
			&t.StartTime, &t.EndTime, &priority, &t.Completed, &t.Date); err != nil {
			return nil, fmt.Errorf("%w: failed to scan task: %v", apperrors.ErrPersistence, err)
		}
		t.Category = models.Category(category)
		t.Priority = models.Priority(priority)
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read tasks: %v", apperrors.ErrPersistence, err)
	}
	return tasks, nil
}

func (s *PostgresStore) GetStreak() (models.StreakData, error) {
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

func (s *PostgresStore) SaveStreak(streak models.StreakData) error {
	_, err := s.db.Exec(`
		INSERT INTO streak (id, current, best, last_active_date) VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET current = EXCLUDED.current, best = EXCLUDED.best, last_active_date = EXCLUDED.last_active_date`,
		streak.Current, streak.Best, streak.LastActiveDate)
	if err != nil {
		return fmt.Errorf("%w: failed to save streak: %v", apperrors.ErrPersistence, err)
	}
	return nil
}

func (s *PostgresStore) GetConfigPath() string {
	return s.connStr
}
