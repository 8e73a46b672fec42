package models

type Category string

const (
	CategoryStudy    Category = "study"
	CategoryWork     Category = "work"
	CategoryPlay     Category = "play"
	CategoryPersonal Category = "personal"
)

// Categories lists every valid category in display order.
var Categories = []Category{CategoryStudy, CategoryWork, CategoryPlay, CategoryPersonal}

// Productive reports whether tasks of this category count toward the
// streak and toward the calendar day status.
func (c Category) Productive() bool {
	return c == CategoryStudy || c == CategoryWork
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Task is a single time-boxed activity scheduled on a calendar day.
type Task struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Category  Category `json:"category"`
	Subject   string   `json:"subject,omitempty"` // only meaningful for study tasks
	StartTime string   `json:"startTime"`         // HH:MM format
	EndTime   string   `json:"endTime"`           // HH:MM format
	Priority  Priority `json:"priority"`
	Completed bool     `json:"completed"`
	Date      string   `json:"date"` // YYYY-MM-DD format, immutable after creation
}
