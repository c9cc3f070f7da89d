package projections

import (
	"context"
	"time"

	"lifeboard/internal/domain/content"
	"lifeboard/internal/domain/healthmetric"
	"lifeboard/internal/domain/task"
	"lifeboard/internal/domain/weeklyplan"
	"lifeboard/internal/domain/workout"
)

// recentWorkoutCount is how many workouts the dashboard shows.
const recentWorkoutCount = 3

// upcomingContentCount is how many scheduled items the dashboard shows.
const upcomingContentCount = 5

// GetDashboardDeps holds dependencies for the dashboard projection.
// PlanStore and ContentStore may be nil; those sections are then omitted.
type GetDashboardDeps struct {
	TaskStore    TaskLister
	HabitStore   HabitLister
	MetricStore  HealthMetricLister
	WorkoutStore WorkoutLister
	PlanStore    LatestPlanGetter
	ContentStore ContentLister
}

// DashboardResult aggregates today's view across all trackers.
type DashboardResult struct {
	OpenTasks     []task.Task                `json:"open_tasks"`
	OpenTaskCount int                        `json:"open_task_count"`
	Streaks       []HabitStreakResult        `json:"streaks"`
	LatestMetric  *healthmetric.HealthMetric `json:"latest_metric"`
	RecentWorkout []workout.Workout          `json:"recent_workouts"`
	CurrentPlan   *weeklyplan.WeeklyPlan     `json:"current_plan"`
	UpcomingItems []content.Item             `json:"upcoming_items"`
}

// QueryGetDashboard builds the single-call dashboard payload. Task, habit,
// metric, and workout reads must succeed; the optional sections degrade to
// empty when their store errors or is absent.
func QueryGetDashboard(ctx context.Context, now time.Time, deps GetDashboardDeps) (DashboardResult, error) {
	result := DashboardResult{
		OpenTasks:     []task.Task{},
		Streaks:       []HabitStreakResult{},
		RecentWorkout: []workout.Workout{},
		UpcomingItems: []content.Item{},
	}

	tasks, err := deps.TaskStore.List(ctx)
	if err != nil {
		return DashboardResult{}, err
	}
	for _, t := range tasks {
		if !t.Done {
			result.OpenTasks = append(result.OpenTasks, t)
		}
	}
	result.OpenTaskCount = len(result.OpenTasks)

	streaks, err := QueryGetHabitStreaks(ctx, now, GetHabitStreaksDeps{HabitStore: deps.HabitStore})
	if err != nil {
		return DashboardResult{}, err
	}
	result.Streaks = streaks

	metrics, err := deps.MetricStore.List(ctx)
	if err != nil {
		return DashboardResult{}, err
	}
	if len(metrics) > 0 {
		// List is newest-date-first
		result.LatestMetric = &metrics[0]
	}

	workouts, err := deps.WorkoutStore.List(ctx, recentWorkoutCount, 0)
	if err != nil {
		return DashboardResult{}, err
	}
	if workouts != nil {
		result.RecentWorkout = workouts
	}

	if deps.PlanStore != nil {
		if plan, err := deps.PlanStore.Latest(ctx); err == nil {
			result.CurrentPlan = &plan
		}
	}

	if deps.ContentStore != nil {
		if items, err := deps.ContentStore.List(ctx); err == nil {
			for _, item := range items {
				if item.Status != content.StatusScheduled || item.SendDate == nil {
					continue
				}
				if item.SendDate.Time().Before(now) {
					continue
				}
				result.UpcomingItems = append(result.UpcomingItems, item)
				if len(result.UpcomingItems) == upcomingContentCount {
					break
				}
			}
		}
	}

	return result, nil
}
