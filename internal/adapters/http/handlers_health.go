package web

import (
	"net/http"

	"lifeboard/internal/domain/healthmetric"
	"lifeboard/internal/domain/timestamp"
)

// handleHealthMetrics handles GET/POST/PUT/DELETE for /api/health-metrics.
// POST upserts by date: logging weight twice on the same day replaces the
// earlier entry rather than creating a second one. PUT edits an existing
// entry's measurements by id; the date itself is fixed once logged.
func handleHealthMetrics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if _, ok := requireOwner(w, r); !ok {
		return
	}

	switch r.Method {
	case "GET":
		if date := r.URL.Query().Get("date"); date != "" {
			m, err := stores.HealthMetricStore.GetByDate(ctx, date)
			if err != nil {
				storeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, m)
			return
		}
		metrics, err := stores.HealthMetricStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		if metrics == nil {
			metrics = []healthmetric.HealthMetric{}
		}
		writeJSON(w, http.StatusOK, metrics)

	case "POST":
		var input struct {
			Date       string  `json:"date"`
			WeightKg   float64 `json:"weight_kg"`
			SleepHours float64 `json:"sleep_hours"`
			Mood       int     `json:"mood"`
			Notes      string  `json:"notes"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}

		m := healthmetric.HealthMetric{
			ID:         generateID(),
			Date:       input.Date,
			WeightKg:   input.WeightKg,
			SleepHours: input.SleepHours,
			Mood:       input.Mood,
			Notes:      input.Notes,
			CreatedAt:  timestamp.FromTime(timeNow()),
		}
		if err := m.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.HealthMetricStore.Save(ctx, m); err != nil {
			internalError(w, err)
			return
		}
		// The date may already have an entry; the save replaced it, so echo
		// the row that actually exists.
		saved, err := stores.HealthMetricStore.GetByDate(ctx, m.Date)
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, saved)

	case "PUT":
		var input struct {
			ID         string  `json:"id"`
			Date       string  `json:"date"`
			WeightKg   float64 `json:"weight_kg"`
			SleepHours float64 `json:"sleep_hours"`
			Mood       int     `json:"mood"`
			Notes      string  `json:"notes"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		if input.ID == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}

		m, err := stores.HealthMetricStore.GetByID(ctx, input.ID)
		if err != nil {
			storeError(w, err)
			return
		}
		if input.Date != "" && input.Date != m.Date {
			http.Error(w, "date cannot be changed; log an entry for the new day instead", http.StatusBadRequest)
			return
		}
		m.WeightKg = input.WeightKg
		m.SleepHours = input.SleepHours
		m.Mood = input.Mood
		m.Notes = input.Notes
		if err := m.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.HealthMetricStore.Save(ctx, m); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, m)

	case "DELETE":
		id, ok := requiredID(w, r)
		if !ok {
			return
		}
		if err := stores.HealthMetricStore.Delete(ctx, id); err != nil {
			storeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}
