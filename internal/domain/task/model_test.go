package task_test

import (
	"strings"
	"testing"

	"lifeboard/internal/domain/task"
)

// TestTask_Validate tests validation of Task.
func TestTask_Validate(t *testing.T) {
	tests := []struct {
		name    string
		task    task.Task
		wantErr bool
	}{
		{
			name:    "valid task",
			task:    task.Task{ID: "1", Title: "Write monthly report"},
			wantErr: false,
		},
		{
			name:    "empty title",
			task:    task.Task{ID: "2"},
			wantErr: true,
		},
		{
			name:    "title too long",
			task:    task.Task{ID: "3", Title: strings.Repeat("x", 201)},
			wantErr: true,
		},
		{
			name: "valid with subtasks",
			task: task.Task{ID: "4", Title: "Ship feature", Subtasks: []task.Subtask{
				{ID: "s1", TaskID: "4", Title: "Write tests", Position: 0},
				{ID: "s2", TaskID: "4", Title: "Open PR", Position: 1},
			}},
			wantErr: false,
		},
		{
			name: "subtask with empty title",
			task: task.Task{ID: "5", Title: "Ship feature", Subtasks: []task.Subtask{
				{ID: "s1", TaskID: "5", Title: ""},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.task.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
