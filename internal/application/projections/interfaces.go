package projections

import (
	"context"

	"lifeboard/internal/domain/content"
	"lifeboard/internal/domain/habit"
	"lifeboard/internal/domain/healthmetric"
	"lifeboard/internal/domain/task"
	"lifeboard/internal/domain/weeklyplan"
	"lifeboard/internal/domain/workout"
)

// TaskLister defines the task store interface needed by projections.
type TaskLister interface {
	List(ctx context.Context) ([]task.Task, error)
}

// HabitLister defines the habit store interface needed by projections.
// Listed habits carry their logs.
type HabitLister interface {
	List(ctx context.Context) ([]habit.Habit, error)
}

// HealthMetricLister defines the health metric store interface needed by projections.
type HealthMetricLister interface {
	List(ctx context.Context) ([]healthmetric.HealthMetric, error)
}

// WorkoutLister defines the workout store interface needed by projections.
type WorkoutLister interface {
	List(ctx context.Context, limit, offset int) ([]workout.Workout, error)
}

// LatestPlanGetter defines the weekly plan store interface needed by projections.
type LatestPlanGetter interface {
	Latest(ctx context.Context) (weeklyplan.WeeklyPlan, error)
}

// ContentLister defines the content store interface needed by projections.
type ContentLister interface {
	List(ctx context.Context) ([]content.Item, error)
}
