package tui

import (
	"fmt"
	"strconv"

	"github.com/colonyops/gridcore/internal/core/grid"
)

// Task is the demo row type.
type Task struct {
	ID       int
	Title    string
	Status   string
	Priority string
	Due      string
	Points   float64
}

// TaskKey keys tasks by ID.
func TaskKey(t Task, _ int) grid.Key { return grid.KeyInt(t.ID) }

// TaskColumns returns the demo column set.
func TaskColumns() []grid.Column[Task] {
	return []grid.Column[Task]{
		{
			Key: "id", Label: "ID",
			Sortable: true, Kind: grid.KindNumber,
			Align: grid.AlignRight, Width: 4,
			Value: func(t Task) any { return t.ID },
		},
		{
			Key: "title", Label: "Title",
			Sortable: true, Filterable: true, Editable: true, Resizable: true,
			Kind: grid.KindString, Width: 24, MinWidth: 10, MaxWidth: 48,
			Value: func(t Task) any { return t.Title },
			Validate: func(v string) error {
				if v == "" {
					return fmt.Errorf("title must not be empty")
				}
				return nil
			},
		},
		{
			Key: "status", Label: "Status",
			Sortable: true, Filterable: true,
			Width: 12,
			Value: func(t Task) any { return t.Status },
		},
		{
			Key: "priority", Label: "Priority",
			Sortable: true, Filterable: true,
			Width: 10,
			Value: func(t Task) any { return t.Priority },
		},
		{
			Key: "due", Label: "Due",
			Sortable: true, Kind: grid.KindDate,
			Width: 12,
			Value: func(t Task) any { return t.Due },
		},
		{
			Key: "points", Label: "Points",
			Sortable: true, Editable: true, Resizable: true,
			Kind: grid.KindNumber, Align: grid.AlignRight,
			Width: 8, MinWidth: 6, MaxWidth: 12,
			Value:  func(t Task) any { return t.Points },
			Format: func(v any) string { return strconv.FormatFloat(v.(float64), 'f', 1, 64) },
		},
	}
}

// SampleTasks returns the demo dataset.
func SampleTasks() []Task {
	return []Task{
		{ID: 1, Title: "Wire up release pipeline", Status: "active", Priority: "high", Due: "2026-09-02", Points: 5.0},
		{ID: 2, Title: "Fix flaky websocket reconnect", Status: "active", Priority: "high", Due: "2026-08-29", Points: 3.0},
		{ID: 3, Title: "Upgrade postgres driver", Status: "backlog", Priority: "low", Due: "2026-10-15", Points: 2.0},
		{ID: 4, Title: "Document auth flows", Status: "backlog", Priority: "medium", Due: "2026-09-20", Points: 1.5},
		{ID: 5, Title: "Cache invalidation audit", Status: "review", Priority: "high", Due: "2026-08-28", Points: 8.0},
		{ID: 6, Title: "Rework onboarding emails", Status: "done", Priority: "low", Due: "2026-08-12", Points: 2.5},
		{ID: 7, Title: "Profile list rendering", Status: "active", Priority: "medium", Due: "2026-09-05", Points: 3.0},
		{ID: 8, Title: "Rotate API credentials", Status: "done", Priority: "high", Due: "2026-08-10", Points: 1.0},
		{ID: 9, Title: "Spike: workspace templates", Status: "backlog", Priority: "medium", Due: "2026-11-01", Points: 5.0},
		{ID: 10, Title: "Dedupe webhook deliveries", Status: "review", Priority: "medium", Due: "2026-09-01", Points: 3.5},
		{ID: 11, Title: "Split billing worker queue", Status: "active", Priority: "low", Due: "2026-09-18", Points: 4.0},
		{ID: 12, Title: "Accessibility pass on forms", Status: "backlog", Priority: "high", Due: "2026-09-25", Points: 6.0},
	}
}

// statusCycle is the filter rotation the demo binds to a single key.
var statusCycle = []string{"", "active", "review", "backlog", "done"}
