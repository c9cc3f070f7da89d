package web

import (
	"net/http"

	"lifeboard/internal/application/projections"
)

// handleDashboard handles GET /api/dashboard: the single-call aggregate the
// front page renders from.
func handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireOwner(w, r); !ok {
		return
	}

	deps := projections.GetDashboardDeps{
		TaskStore:    stores.TaskStore,
		HabitStore:   stores.HabitStore,
		MetricStore:  stores.HealthMetricStore,
		WorkoutStore: stores.WorkoutStore,
		PlanStore:    stores.WeeklyPlanStore,
		ContentStore: stores.ContentStore,
	}
	result, err := projections.QueryGetDashboard(r.Context(), timeNow(), deps)
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
