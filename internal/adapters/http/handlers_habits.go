package web

import (
	"net/http"

	"lifeboard/internal/application/projections"
	"lifeboard/internal/domain/habit"
	"lifeboard/internal/domain/timestamp"
)

// handleHabits handles GET/POST/PUT/DELETE for /api/habits.
func handleHabits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if _, ok := requireOwner(w, r); !ok {
		return
	}

	switch r.Method {
	case "GET":
		habits, err := stores.HabitStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		if habits == nil {
			habits = []habit.Habit{}
		}
		writeJSON(w, http.StatusOK, habits)

	case "POST":
		var input struct {
			Name  string `json:"name"`
			Color string `json:"color"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}

		h := habit.Habit{
			ID:        generateID(),
			Name:      input.Name,
			Color:     input.Color,
			CreatedAt: timestamp.FromTime(timeNow()),
		}
		h.SetDefaultColor()
		if err := h.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.HabitStore.Save(ctx, h); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, h)

	case "PUT":
		var input struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Color string `json:"color"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		if input.ID == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}

		h, err := stores.HabitStore.GetByID(ctx, input.ID)
		if err != nil {
			storeError(w, err)
			return
		}
		h.Name = input.Name
		h.Color = input.Color
		h.SetDefaultColor()
		if err := h.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.HabitStore.Save(ctx, h); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, h)

	case "DELETE":
		id, ok := requiredID(w, r)
		if !ok {
			return
		}
		if err := stores.HabitStore.Delete(ctx, id); err != nil {
			storeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

// handleHabitLogs handles POST/DELETE for /api/habits/logs. POST marks a day
// completed (idempotent); DELETE unmarks it (no-op if never marked).
func handleHabitLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if _, ok := requireOwner(w, r); !ok {
		return
	}
	if r.Method != "POST" && r.Method != "DELETE" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	var input struct {
		HabitID string `json:"habit_id"`
		Date    string `json:"date"`
	}
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	logEntry := habit.Log{HabitID: input.HabitID, Date: input.Date}
	if err := logEntry.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// The habit must exist; logs for unknown habits 404 rather than
	// silently creating orphan rows.
	if _, err := stores.HabitStore.GetByID(ctx, input.HabitID); err != nil {
		storeError(w, err)
		return
	}

	if r.Method == "POST" {
		if err := stores.HabitStore.MarkCompleted(ctx, input.HabitID, input.Date); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, logEntry)
		return
	}

	if err := stores.HabitStore.Unmark(ctx, input.HabitID, input.Date); err != nil {
		internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleHabitStreaks handles GET /api/habits/streaks.
func handleHabitStreaks(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireOwner(w, r); !ok {
		return
	}

	results, err := projections.QueryGetHabitStreaks(r.Context(), timeNow(), projections.GetHabitStreaksDeps{
		HabitStore: stores.HabitStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}
