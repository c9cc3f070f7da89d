package healthmetric

import (
	"errors"
	"time"

	"lifeboard/internal/domain/timestamp"
)

// DateLayout is the calendar-date format for metric entries.
const DateLayout = "2006-01-02"

// Domain errors
var (
	ErrInvalidDate    = errors.New("date must be in YYYY-MM-DD form")
	ErrNegativeWeight = errors.New("weight cannot be negative")
	ErrInvalidSleep   = errors.New("sleep hours must be between 0 and 24")
	ErrInvalidMood    = errors.New("mood must be between 1 and 5")
)

// HealthMetric is one day's self-reported health entry. One entry exists per
// calendar date; saving again for the same date replaces the earlier values.
type HealthMetric struct {
	ID         string           `json:"id"`
	Date       string           `json:"date"` // YYYY-MM-DD
	WeightKg   float64          `json:"weight_kg"`
	SleepHours float64          `json:"sleep_hours"`
	Mood       int              `json:"mood"` // 1 (rough) to 5 (great), 0 when unreported
	Notes      string           `json:"notes"`
	CreatedAt  timestamp.Millis `json:"created_at"`
}

// Validate checks if the HealthMetric has valid data.
// PRE: HealthMetric struct is populated
// POST: Returns nil if valid, error otherwise
func (m *HealthMetric) Validate() error {
	if _, err := time.ParseInLocation(DateLayout, m.Date, time.Local); err != nil {
		return ErrInvalidDate
	}
	if m.WeightKg < 0 {
		return ErrNegativeWeight
	}
	if m.SleepHours < 0 || m.SleepHours > 24 {
		return ErrInvalidSleep
	}
	if m.Mood != 0 && (m.Mood < 1 || m.Mood > 5) {
		return ErrInvalidMood
	}
	return nil
}
