package database

import (
	"time"
)

// Event is a user entry pinned to one calendar day of the planner.
type Event struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Title     string    `json:"title"`
	Notes     *string   `json:"notes,omitempty"` // nullable
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EventStats summarizes the stored events.
type EventStats struct {
	TotalEvents  int    `json:"total_events"`
	EarliestDate string `json:"earliest_date,omitempty"`
	LatestDate   string `json:"latest_date,omitempty"`
}
