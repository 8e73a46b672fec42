package models

// DayStats aggregates completed minutes per category for one calendar
// day. It is derived on demand and never persisted.
type DayStats struct {
	Study          int `json:"study"`
	Work           int `json:"work"`
	Play           int `json:"play"`
	Personal       int `json:"personal"`
	TotalMinutes   int `json:"totalMinutes"`
	CompletedTasks int `json:"completedTasks"`
	TotalTasks     int `json:"totalTasks"`
}

// Add accumulates another day's stats into s.
func (s *DayStats) Add(other DayStats) {
	s.Study += other.Study
	s.Work += other.Work
	s.Play += other.Play
	s.Personal += other.Personal
	s.TotalMinutes += other.TotalMinutes
	s.CompletedTasks += other.CompletedTasks
	s.TotalTasks += other.TotalTasks
}

// DayStatus classifies a calendar day by its productive-task completion.
type DayStatus string

const (
	DayEmpty     DayStatus = "empty"
	DayMissed    DayStatus = "missed"
	DayPartial   DayStatus = "partial"
	DayCompleted DayStatus = "completed"
)
