package web

import (
	"net/http"

	"lifeboard/internal/domain/exercise"
	"lifeboard/internal/domain/timestamp"
)

// handleExercises handles GET/POST/PUT/DELETE for /api/exercises.
func handleExercises(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if _, ok := requireOwner(w, r); !ok {
		return
	}

	switch r.Method {
	case "GET":
		exercises, err := stores.ExerciseStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		if exercises == nil {
			exercises = []exercise.Exercise{}
		}
		writeJSON(w, http.StatusOK, exercises)

	case "POST":
		var input struct {
			Name        string `json:"name"`
			MuscleGroup string `json:"muscle_group"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}

		e := exercise.Exercise{
			ID:          generateID(),
			Name:        input.Name,
			MuscleGroup: input.MuscleGroup,
			CreatedAt:   timestamp.FromTime(timeNow()),
		}
		if err := e.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.ExerciseStore.Save(ctx, e); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, e)

	case "PUT":
		var input struct {
			ID          string `json:"id"`
			Name        string `json:"name"`
			MuscleGroup string `json:"muscle_group"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		if input.ID == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}

		e, err := stores.ExerciseStore.GetByID(ctx, input.ID)
		if err != nil {
			storeError(w, err)
			return
		}
		e.Name = input.Name
		e.MuscleGroup = input.MuscleGroup
		if err := e.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.ExerciseStore.Save(ctx, e); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, e)

	case "DELETE":
		id, ok := requiredID(w, r)
		if !ok {
			return
		}
		if err := stores.ExerciseStore.Delete(ctx, id); err != nil {
			storeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}
