package script_test

import (
	"testing"

	"lifeboard/internal/domain/script"
)

// TestScript_Validate tests validation of Script.
func TestScript_Validate(t *testing.T) {
	tests := []struct {
		name    string
		script  script.Script
		wantErr bool
	}{
		{name: "valid", script: script.Script{ID: "1", Title: "30-day cold shower", Status: script.StatusIdea}, wantErr: false},
		{name: "empty title", script: script.Script{ID: "2", Status: script.StatusIdea}, wantErr: true},
		{name: "invalid status", script: script.Script{ID: "3", Title: "Morning routine", Status: "posted"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.script.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
