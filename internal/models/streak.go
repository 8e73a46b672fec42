package models

// StreakData tracks consecutive days with at least one completed
// productive task. Persisted as a singleton record.
type StreakData struct {
	Current        int    `json:"current"`
	Best           int    `json:"best"`
	LastActiveDate string `json:"lastActiveDate"` // YYYY-MM-DD, empty until first credit
}
