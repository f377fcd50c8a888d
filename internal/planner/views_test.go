package planner_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"studyplan/internal/planner"
	"studyplan/internal/service"
	"studyplan/internal/testutil"
)

func titles(tasks []service.Task) []string {
	result := make([]string, len(tasks))
	for i, t := range tasks {
		result[i] = t.Title
	}
	return result
}

func TestSortedForDisplay(t *testing.T) {
	s := testutil.NewStore(t, testutil.NewFakeStorage())
	testutil.Seed(t, s,
		service.Task{Title: "done-early", DueDate: testutil.MustDate("2026-10-01"), Completed: true},
		service.Task{Title: "open-late", DueDate: testutil.MustDate("2026-12-01")},
		service.Task{Title: "open-mid-1", DueDate: testutil.MustDate("2026-11-09")},
		service.Task{Title: "done-late", DueDate: testutil.MustDate("2026-12-31"), Completed: true},
		service.Task{Title: "open-mid-2", DueDate: testutil.MustDate("2026-11-09")},
		service.Task{Title: "open-early", DueDate: testutil.MustDate("2026-09-30")},
		service.Task{Title: "done-mid", DueDate: testutil.MustDate("2026-11-09"), Completed: true},
		service.Task{Title: "open-mid-3", DueDate: testutil.MustDate("2026-11-09")},
	)
	before := s.Tasks()

	got := titles(s.SortedForDisplay())
	want := []string{
		"open-early", "open-mid-1", "open-mid-2", "open-mid-3", "open-late",
		"done-early", "done-mid", "done-late",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SortedForDisplay() mismatch (-want +got):\n%s", diff)
	}

	// The underlying collection keeps insertion order.
	if diff := cmp.Diff(before, s.Tasks()); diff != "" {
		t.Errorf("collection mutated (-before +after):\n%s", diff)
	}

	// Restartable: a second call yields the same order.
	if diff := cmp.Diff(got, titles(s.SortedForDisplay())); diff != "" {
		t.Errorf("second call differs:\n%s", diff)
	}
}

func TestSortForDisplay_Invariants(t *testing.T) {
	dates := []string{"2026-10-03", "2026-10-01", "2026-10-02", "2026-10-01", "2026-10-03", "2026-10-02"}
	var tasks []service.Task
	for i, d := range dates {
		tasks = append(tasks, service.Task{
			ID:        string(rune('a' + i)),
			DueDate:   testutil.MustDate(d),
			Completed: i%3 == 0,
		})
	}
	position := make(map[string]int)
	for i, task := range tasks {
		position[task.ID] = i
	}

	sorted := planner.SortForDisplay(tasks)
	if len(sorted) != len(tasks) {
		t.Fatalf("expected %d tasks, got %d", len(tasks), len(sorted))
	}
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if prev.Completed && !cur.Completed {
			t.Errorf("completed task %s precedes open task %s", prev.ID, cur.ID)
		}
		if prev.Completed != cur.Completed {
			continue
		}
		switch c := prev.DueDate.Compare(cur.DueDate); {
		case c > 0:
			t.Errorf("due dates decrease: %s after %s", cur.DueDate, prev.DueDate)
		case c == 0 && position[prev.ID] > position[cur.ID]:
			t.Errorf("tie %s/%s lost insertion order", prev.ID, cur.ID)
		}
	}
}

func TestSortForDisplay_ZeroDateFirst(t *testing.T) {
	tasks := []service.Task{
		{ID: "dated", DueDate: testutil.MustDate("2026-01-01")},
		{ID: "undated"},
	}
	sorted := planner.SortForDisplay(tasks)
	if sorted[0].ID != "undated" {
		t.Errorf("expected undated task first, got %s", sorted[0].ID)
	}
}

func TestTasksOnDate(t *testing.T) {
	s := testutil.NewStore(t, testutil.NewFakeStorage())
	testutil.Seed(t, s,
		service.Task{Title: "day-before", DueDate: testutil.MustDate("2026-10-14")},
		service.Task{Title: "target-1", DueDate: testutil.MustDate("2026-10-15")},
		service.Task{Title: "day-after", DueDate: testutil.MustDate("2026-10-16")},
		service.Task{Title: "target-2", DueDate: testutil.MustDate("2026-10-15"), Completed: true},
		service.Task{Title: "next-month", DueDate: testutil.MustDate("2026-11-15")},
		service.Task{Title: "target-3", DueDate: testutil.MustDate("2026-10-15")},
	)

	day := testutil.MustDate("2026-10-15")
	want := []string{"target-1", "target-2", "target-3"}
	for i := 0; i < 2; i++ {
		if diff := cmp.Diff(want, titles(s.TasksOnDate(day))); diff != "" {
			t.Errorf("call %d: TasksOnDate() mismatch (-want +got):\n%s", i+1, diff)
		}
	}

	if got := s.TasksOnDate(testutil.MustDate("2026-10-17")); len(got) != 0 {
		t.Errorf("expected no tasks, got %v", titles(got))
	}
}

func TestProgressSummary(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewStore(t, testutil.NewFakeStorage())

	if got := s.ProgressSummary(); got != (service.Progress{}) {
		t.Errorf("empty store: expected zero progress, got %+v", got)
	}

	added := testutil.Seed(t, s, service.Task{Title: "a"}, service.Task{Title: "b"}, service.Task{Title: "c"})
	if _, err := s.ToggleCompleted(ctx, added[0].ID); err != nil {
		t.Fatal(err)
	}
	if got, want := s.ProgressSummary(), (service.Progress{Total: 3, Completed: 1, Rate: 33}); got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	if _, err := s.ToggleCompleted(ctx, added[1].ID); err != nil {
		t.Fatal(err)
	}
	if got, want := s.ProgressSummary(), (service.Progress{Total: 3, Completed: 2, Rate: 67}); got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}
