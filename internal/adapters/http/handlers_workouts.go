package web

import (
	"net/http"

	"lifeboard/internal/application/listutil"
	"lifeboard/internal/domain/timestamp"
	"lifeboard/internal/domain/workout"
)

// setInput is the wire shape for one exercise set inside a workout payload.
type setInput struct {
	ID         string  `json:"id"`
	ExerciseID string  `json:"exercise_id"`
	Reps       int     `json:"reps"`
	WeightKg   float64 `json:"weight_kg"`
}

func buildSets(workoutID string, inputs []setInput) []workout.ExerciseSet {
	sets := make([]workout.ExerciseSet, 0, len(inputs))
	for i, in := range inputs {
		id := in.ID
		if id == "" {
			id = generateID()
		}
		sets = append(sets, workout.ExerciseSet{
			ID:         id,
			WorkoutID:  workoutID,
			ExerciseID: in.ExerciseID,
			Reps:       in.Reps,
			WeightKg:   in.WeightKg,
			Position:   i,
		})
	}
	return sets
}

// workoutPage is the paged response shape for workout lists.
type workoutPage struct {
	Workouts []workout.Workout `json:"workouts"`
	PageInfo listutil.PageInfo `json:"page_info"`
}

// handleWorkouts handles GET/POST/PUT/DELETE for /api/workouts. Lists are
// paged, newest session first.
func handleWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if _, ok := requireOwner(w, r); !ok {
		return
	}

	switch r.Method {
	case "GET":
		if id := r.URL.Query().Get("id"); id != "" {
			wo, err := stores.WorkoutStore.GetByID(ctx, id)
			if err != nil {
				storeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, wo)
			return
		}

		pp := listutil.ParsePageParams(r.URL.Query())
		total, err := stores.WorkoutStore.Count(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		// Page size is fixed; a ?per_page= override is ignored.
		pageInfo := listutil.NewPageInfo(pp.Page, listutil.DefaultPerPage, total)
		workouts, err := stores.WorkoutStore.List(ctx, pageInfo.PerPage, pageInfo.Offset())
		if err != nil {
			internalError(w, err)
			return
		}
		if workouts == nil {
			workouts = []workout.Workout{}
		}
		writeJSON(w, http.StatusOK, workoutPage{Workouts: workouts, PageInfo: pageInfo})

	case "POST":
		var input struct {
			Date  timestamp.Millis `json:"date"`
			Name  string           `json:"name"`
			Notes string           `json:"notes"`
			Sets  []setInput       `json:"sets"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}

		wo := workout.Workout{
			ID:        generateID(),
			Date:      input.Date,
			Name:      input.Name,
			Notes:     input.Notes,
			CreatedAt: timestamp.FromTime(timeNow()),
		}
		wo.Sets = buildSets(wo.ID, input.Sets)
		if err := wo.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.WorkoutStore.SaveWithSets(ctx, wo); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, wo)

	case "PUT":
		var input struct {
			ID    string           `json:"id"`
			Date  timestamp.Millis `json:"date"`
			Name  string           `json:"name"`
			Notes string           `json:"notes"`
			Sets  []setInput       `json:"sets"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		if input.ID == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}

		wo, err := stores.WorkoutStore.GetByID(ctx, input.ID)
		if err != nil {
			storeError(w, err)
			return
		}
		wo.Date = input.Date
		wo.Name = input.Name
		wo.Notes = input.Notes
		wo.Sets = buildSets(wo.ID, input.Sets)
		if err := wo.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.WorkoutStore.SaveWithSets(ctx, wo); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, wo)

	case "DELETE":
		id, ok := requiredID(w, r)
		if !ok {
			return
		}
		if err := stores.WorkoutStore.Delete(ctx, id); err != nil {
			storeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}
