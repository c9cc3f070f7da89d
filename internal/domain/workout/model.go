package workout

import (
	"errors"

	"lifeboard/internal/domain/timestamp"
)

// Domain errors
var (
	ErrEmptyName       = errors.New("name is required")
	ErrZeroDate        = errors.New("date is required")
	ErrEmptyExerciseID = errors.New("exercise ID is required")
	ErrInvalidReps     = errors.New("reps must be greater than zero")
	ErrNegativeWeight  = errors.New("weight cannot be negative")
)

// Workout is one training session with its exercise sets. A workout and its
// sets are written in a single transaction: either all rows land or none do.
type Workout struct {
	ID        string           `json:"id"`
	Date      timestamp.Millis `json:"date"`
	Name      string           `json:"name"` // e.g. "Push day"
	Notes     string           `json:"notes"`
	CreatedAt timestamp.Millis `json:"created_at"`
	Sets      []ExerciseSet    `json:"sets"`
}

// ExerciseSet is one set performed during a workout.
type ExerciseSet struct {
	ID         string  `json:"id"`
	WorkoutID  string  `json:"workout_id"`
	ExerciseID string  `json:"exercise_id"`
	Reps       int     `json:"reps"`
	WeightKg   float64 `json:"weight_kg"` // 0 for bodyweight movements
	Position   int     `json:"position"`
}

// Validate checks if the Workout has valid data.
// PRE: Workout struct is populated
// POST: Returns nil if valid, error otherwise
func (w *Workout) Validate() error {
	if w.Name == "" {
		return ErrEmptyName
	}
	if w.Date.IsZero() {
		return ErrZeroDate
	}
	for i := range w.Sets {
		if err := w.Sets[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks if the ExerciseSet has valid data.
// PRE: ExerciseSet struct is populated
// POST: Returns nil if valid, error otherwise
func (s *ExerciseSet) Validate() error {
	if s.ExerciseID == "" {
		return ErrEmptyExerciseID
	}
	if s.Reps <= 0 {
		return ErrInvalidReps
	}
	if s.WeightKg < 0 {
		return ErrNegativeWeight
	}
	return nil
}
