package web

import (
	"net/http"

	"lifeboard/internal/domain/task"
	"lifeboard/internal/domain/timestamp"
)

// subtaskInput is the wire shape for one subtask inside a task payload.
type subtaskInput struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// buildSubtasks converts wire subtasks into domain subtasks, assigning IDs to
// new entries and positions from list order.
func buildSubtasks(taskID string, inputs []subtaskInput) []task.Subtask {
	subs := make([]task.Subtask, 0, len(inputs))
	for i, in := range inputs {
		id := in.ID
		if id == "" {
			id = generateID()
		}
		subs = append(subs, task.Subtask{
			ID:       id,
			TaskID:   taskID,
			Title:    in.Title,
			Done:     in.Done,
			Position: i,
		})
	}
	return subs
}

// handleTasks handles GET/POST/PUT/DELETE for /api/tasks.
func handleTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if _, ok := requireOwner(w, r); !ok {
		return
	}

	switch r.Method {
	case "GET":
		if id := r.URL.Query().Get("id"); id != "" {
			t, err := stores.TaskStore.GetByID(ctx, id)
			if err != nil {
				storeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, t)
			return
		}
		tasks, err := stores.TaskStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		if tasks == nil {
			tasks = []task.Task{}
		}
		writeJSON(w, http.StatusOK, tasks)

	case "POST":
		var input struct {
			Title    string            `json:"title"`
			Notes    string            `json:"notes"`
			DueDate  *timestamp.Millis `json:"due_date"`
			Subtasks []subtaskInput    `json:"subtasks"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}

		now := timestamp.FromTime(timeNow())
		t := task.Task{
			ID:        generateID(),
			Title:     input.Title,
			Notes:     input.Notes,
			DueDate:   input.DueDate,
			CreatedAt: now,
			UpdatedAt: now,
		}
		t.Subtasks = buildSubtasks(t.ID, input.Subtasks)
		if err := t.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := stores.TaskStore.Save(ctx, t); err != nil {
			internalError(w, err)
			return
		}
		if err := stores.TaskStore.ReplaceSubtasks(ctx, t.ID, t.Subtasks); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, t)

	case "PUT":
		var input struct {
			ID      string            `json:"id"`
			Title   string            `json:"title"`
			Notes   string            `json:"notes"`
			Done    bool              `json:"done"`
			DueDate *timestamp.Millis `json:"due_date"`
			// nil means "leave subtasks unchanged"; an empty list clears them.
			Subtasks *[]subtaskInput `json:"subtasks"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		if input.ID == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}

		t, err := stores.TaskStore.GetByID(ctx, input.ID)
		if err != nil {
			storeError(w, err)
			return
		}
		t.Title = input.Title
		t.Notes = input.Notes
		t.Done = input.Done
		t.DueDate = input.DueDate
		t.UpdatedAt = timestamp.FromTime(timeNow())
		if input.Subtasks != nil {
			t.Subtasks = buildSubtasks(t.ID, *input.Subtasks)
		}
		if err := t.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := stores.TaskStore.Save(ctx, t); err != nil {
			internalError(w, err)
			return
		}
		if input.Subtasks != nil {
			if err := stores.TaskStore.ReplaceSubtasks(ctx, t.ID, t.Subtasks); err != nil {
				internalError(w, err)
				return
			}
		}
		writeJSON(w, http.StatusOK, t)

	case "DELETE":
		id, ok := requiredID(w, r)
		if !ok {
			return
		}
		if err := stores.TaskStore.Delete(ctx, id); err != nil {
			storeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}
