package habit

import (
	"errors"
	"time"

	"lifeboard/internal/domain/timestamp"
)

// DateLayout is the calendar-date format used for habit logs.
const DateLayout = "2006-01-02"

// Domain errors
var (
	ErrEmptyName    = errors.New("name is required")
	ErrEmptyHabitID = errors.New("habit ID is required")
	ErrInvalidDate  = errors.New("date must be in YYYY-MM-DD form")
)

// Habit represents a recurring daily practice being tracked.
type Habit struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Color     string           `json:"color"` // hex color for dashboard display
	CreatedAt timestamp.Millis `json:"created_at"`
	Logs      []Log            `json:"logs,omitempty"`
}

// Log marks a habit as completed on a calendar date.
//
// INVARIANT: at most one log exists per (HabitID, Date). A row means the day
// was completed; the absence of a row means it was not. Unmarking a day
// deletes the row rather than storing a completed=false state.
type Log struct {
	HabitID string `json:"habit_id"`
	Date    string `json:"date"` // YYYY-MM-DD
}

// Validate checks if the Habit has valid data.
// PRE: Habit struct is populated
// POST: Returns nil if valid, error otherwise
func (h *Habit) Validate() error {
	if h.Name == "" {
		return ErrEmptyName
	}
	return nil
}

// SetDefaultColor assigns a default color if none is set.
// PRE: Habit struct is populated
// POST: Color field is set to default if empty
func (h *Habit) SetDefaultColor() {
	if h.Color == "" {
		h.Color = "#F9B232"
	}
}

// Validate checks if the Log has valid data.
// PRE: Log struct is populated
// POST: Returns nil if valid, error otherwise
func (l *Log) Validate() error {
	if l.HabitID == "" {
		return ErrEmptyHabitID
	}
	if _, err := time.ParseInLocation(DateLayout, l.Date, time.Local); err != nil {
		return ErrInvalidDate
	}
	return nil
}
