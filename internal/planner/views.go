package planner

import (
	"slices"

	"studyplan/internal/service"
)

// SortedForDisplay implements service.Service.
func (s *Store) SortedForDisplay() []service.Task {
	return SortForDisplay(s.tasks)
}

// SortForDisplay returns a sorted copy of tasks: open before completed,
// then ascending due date. The sort is stable.
func SortForDisplay(tasks []service.Task) []service.Task {
	sorted := slices.Clone(tasks)
	slices.SortStableFunc(sorted, func(a, b service.Task) int {
		if a.Completed != b.Completed {
			if a.Completed {
				return 1
			}
			return -1
		}
		return a.DueDate.Compare(b.DueDate)
	})
	return sorted
}

// TasksOnDate implements service.Service.
func (s *Store) TasksOnDate(d service.Date) []service.Task {
	var result []service.Task
	for _, t := range s.tasks {
		if t.DueDate == d {
			result = append(result, t)
		}
	}
	return result
}

// ProgressSummary implements service.Service.
func (s *Store) ProgressSummary() service.Progress {
	completed := 0
	for _, t := range s.tasks {
		if t.Completed {
			completed++
		}
	}
	return Summarize(len(s.tasks), completed)
}
