package storage

import "github.com/suhani1709/studyflow/internal/models"

// Provider is the durable backing for the two records the tracker
// owns: the task collection and the streak singleton. Implementations
// must preserve task insertion order across a save/load cycle.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Task record
	AddTask(models.Task) error
	UpdateTask(models.Task) error
	DeleteTask(id string) error
	GetAllTasks() ([]models.Task, error)

	// Streak record
	GetStreak() (models.StreakData, error)
	SaveStreak(models.StreakData) error

	// Utils
	GetConfigPath() string
}
