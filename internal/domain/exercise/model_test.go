package exercise_test

import (
	"testing"

	"lifeboard/internal/domain/exercise"
)

// TestExercise_Validate tests validation of Exercise.
func TestExercise_Validate(t *testing.T) {
	tests := []struct {
		name     string
		exercise exercise.Exercise
		wantErr  bool
	}{
		{name: "valid", exercise: exercise.Exercise{ID: "1", Name: "Deadlift", MuscleGroup: "back"}, wantErr: false},
		{name: "empty name", exercise: exercise.Exercise{ID: "2", MuscleGroup: "back"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.exercise.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
