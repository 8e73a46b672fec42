package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	apperrors "github.com/suhani1709/studyflow/internal/errors"
	"github.com/suhani1709/studyflow/internal/models"
)

// document is the on-disk layout of the JSON store: one file holding
// the task collection and the streak record under distinct keys.
type document struct {
	Version int               `json:"version"`
	Tasks   []models.Task     `json:"tasks"`
	Streak  models.StreakData `json:"streak"`
}

type JSONStore struct {
	path string
	doc  *document
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &document{
		Version: 1,
		Tasks:   []models.Task{},
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'studyflow init' first")
		}
		return fmt.Errorf("%w: failed to read storage: %v", apperrors.ErrPersistence, err)
	}

	s.doc = &document{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		return fmt.Errorf("%w: failed to parse storage: %v", apperrors.ErrPersistence, err)
	}

	if s.doc.Tasks == nil {
		s.doc.Tasks = []models.Task{}
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// save rewrites the whole document; both records are small enough that
// full re-serialization per mutation is the durability contract.
func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to serialize storage: %v", apperrors.ErrPersistence, err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("%w: failed to write storage: %v", apperrors.ErrPersistence, err)
	}

	return nil
}

func (s *JSONStore) AddTask(task models.Task) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.doc.Tasks = append(s.doc.Tasks, task)
	return s.save()
}

func (s *JSONStore) UpdateTask(task models.Task) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	for i := range s.doc.Tasks {
		if s.doc.Tasks[i].ID == task.ID {
			s.doc.Tasks[i] = task
			return s.save()
		}
	}

	return fmt.Errorf("%w: %s", apperrors.ErrNotFound, task.ID)
}

func (s *JSONStore) DeleteTask(id string) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	for i := range s.doc.Tasks {
		if s.doc.Tasks[i].ID == id {
			s.doc.Tasks = append(s.doc.Tasks[:i], s.doc.Tasks[i+1:]...)
			return s.save()
		}
	}

	return fmt.Errorf("%w: %s", apperrors.ErrNotFound, id)
}

func (s *JSONStore) GetAllTasks() ([]models.Task, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	tasks := make([]models.Task, len(s.doc.Tasks))
	copy(tasks, s.doc.Tasks)
	return tasks, nil
}

func (s *JSONStore) GetStreak() (models.StreakData, error) {
	if s.doc == nil {
		return models.StreakData{}, fmt.Errorf("storage not loaded")
	}
	return s.doc.Streak, nil
}

func (s *JSONStore) SaveStreak(streak models.StreakData) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Streak = streak
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
