package web

import "net/http"

// registerRoutes attaches all API handlers to the mux.
func registerRoutes(mux *http.ServeMux) {
	// Auth
	mux.HandleFunc("/api/login", handleLogin)
	mux.HandleFunc("/api/logout", handleLogout)

	// Trackers
	mux.HandleFunc("/api/tasks", handleTasks)
	mux.HandleFunc("/api/habits", handleHabits)
	mux.HandleFunc("/api/habits/logs", handleHabitLogs)
	mux.HandleFunc("/api/habits/streaks", handleHabitStreaks)
	mux.HandleFunc("/api/health-metrics", handleHealthMetrics)
	mux.HandleFunc("/api/workouts", handleWorkouts)
	mux.HandleFunc("/api/exercises", handleExercises)

	// Planning
	mux.HandleFunc("/api/weekly-plans", handleWeeklyPlans)
	mux.HandleFunc("/api/weekly-plans/email", handleWeeklyPlanEmail)
	mux.HandleFunc("/api/content", handleContent)
	mux.HandleFunc("/api/scripts", handleScripts)
	mux.HandleFunc("/api/scripts/preview", handleScriptPreview)

	// Aggregates and ops
	mux.HandleFunc("/api/dashboard", handleDashboard)
	mux.HandleFunc("/api/perf", handleGetPerf)
}
