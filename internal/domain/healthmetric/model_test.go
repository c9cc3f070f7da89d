package healthmetric_test

import (
	"testing"

	"lifeboard/internal/domain/healthmetric"
)

// TestHealthMetric_Validate tests validation of HealthMetric.
func TestHealthMetric_Validate(t *testing.T) {
	tests := []struct {
		name    string
		metric  healthmetric.HealthMetric
		wantErr bool
	}{
		{
			name:    "valid full entry",
			metric:  healthmetric.HealthMetric{ID: "1", Date: "2024-03-10", WeightKg: 81.5, SleepHours: 7.5, Mood: 4},
			wantErr: false,
		},
		{
			name:    "valid with mood unreported",
			metric:  healthmetric.HealthMetric{ID: "2", Date: "2024-03-10", SleepHours: 6},
			wantErr: false,
		},
		{
			name:    "bad date",
			metric:  healthmetric.HealthMetric{ID: "3", Date: "10-03-2024"},
			wantErr: true,
		},
		{
			name:    "negative weight",
			metric:  healthmetric.HealthMetric{ID: "4", Date: "2024-03-10", WeightKg: -1},
			wantErr: true,
		},
		{
			name:    "sleep over 24 hours",
			metric:  healthmetric.HealthMetric{ID: "5", Date: "2024-03-10", SleepHours: 25},
			wantErr: true,
		},
		{
			name:    "mood out of range",
			metric:  healthmetric.HealthMetric{ID: "6", Date: "2024-03-10", Mood: 6},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.metric.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
