package weeklyplan

import (
	"errors"

	"lifeboard/internal/domain/timestamp"
)

// Domain errors
var (
	ErrZeroWeekOf = errors.New("week_of is required")
	ErrEmptyFocus = errors.New("focus is required")
)

// WeeklyPlan captures one week's intentions and review. WeekOf marks the
// Monday the plan belongs to.
type WeeklyPlan struct {
	ID        string           `json:"id"`
	WeekOf    timestamp.Millis `json:"week_of"`
	Focus     string           `json:"focus"` // the one thing the week is about
	Goals     string           `json:"goals"` // free text, one goal per line
	Wins      string           `json:"wins"`  // filled in during the weekly review
	CreatedAt timestamp.Millis `json:"created_at"`
	UpdatedAt timestamp.Millis `json:"updated_at"`
}

// Validate checks if the WeeklyPlan has valid data.
// PRE: WeeklyPlan struct is populated
// POST: Returns nil if valid, error otherwise
func (p *WeeklyPlan) Validate() error {
	if p.WeekOf.IsZero() {
		return ErrZeroWeekOf
	}
	if p.Focus == "" {
		return ErrEmptyFocus
	}
	return nil
}
