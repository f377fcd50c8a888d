package commands

import (
	"errors"
	"testing"

	"studyplan/internal/planner"
	"studyplan/internal/service"
	"studyplan/internal/testutil"
)

func refStore(t *testing.T, ids ...string) *planner.Store {
	t.Helper()
	i := 0
	s, err := planner.Open(t.Context(), testutil.NewFakeStorage(),
		planner.WithIDGenerator(func() string {
			id := ids[i]
			i++
			return id
		}))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	return s
}

func addTask(t *testing.T, s *planner.Store, title, due string) {
	t.Helper()
	d := service.Draft{Title: title}
	if due != "" {
		d.DueDate = testutil.MustDate(due)
	}
	if _, err := s.Add(t.Context(), d); err != nil {
		t.Fatalf("failed to add %q: %v", title, err)
	}
}

func TestResolveTaskRef_DisplayNumber(t *testing.T) {
	s := refStore(t, "0192a1", "0192b2")
	addTask(t, s, "later", "2026-10-30")
	addTask(t, s, "sooner", "2026-10-16")

	task, err := ResolveTaskRef(s, []string{"1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Title != "sooner" {
		t.Errorf("expected display position 1 to be %q, got %q", "sooner", task.Title)
	}
}

func TestResolveTaskRef_ExactIDWinsOverNumber(t *testing.T) {
	s := refStore(t, "2", "abc")
	addTask(t, s, "legacy numeric id", "2026-10-30")
	addTask(t, s, "other", "2026-10-16")

	task, err := ResolveTaskRef(s, []string{"2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.ID != "2" {
		t.Errorf("expected exact id match, got %q", task.ID)
	}
}

func TestResolveTaskRef_UniquePrefix(t *testing.T) {
	s := refStore(t, "0192a1", "0192b2")
	addTask(t, s, "first", "")
	addTask(t, s, "second", "")

	task, err := ResolveTaskRef(s, []string{"0192b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Title != "second" {
		t.Errorf("expected %q, got %q", "second", task.Title)
	}
}

func TestResolveTaskRef_Errors(t *testing.T) {
	s := refStore(t, "0192a1", "0192b2")
	addTask(t, s, "first", "")
	addTask(t, s, "second", "")

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"no args", nil, ErrTaskRefRequired},
		{"blank", []string{" "}, ErrTaskRefRequired},
		{"zero", []string{"0"}, ErrTaskNotFound},
		{"past end", []string{"3"}, ErrTaskNotFound},
		{"no match", []string{"ffff"}, ErrTaskNotFound},
		{"ambiguous", []string{"0192"}, ErrAmbiguousRef},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveTaskRef(s, tt.args)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestDisplayNumbers(t *testing.T) {
	s := refStore(t, "a", "b", "c")
	addTask(t, s, "done", "2026-10-01")
	addTask(t, s, "late", "2026-10-20")
	addTask(t, s, "early", "2026-10-10")
	if _, err := s.ToggleCompleted(t.Context(), "a"); err != nil {
		t.Fatal(err)
	}

	nums := DisplayNumbers(s)
	want := map[string]int{"c": 1, "b": 2, "a": 3}
	for id, n := range want {
		if nums[id] != n {
			t.Errorf("DisplayNumbers[%s] = %d, want %d", id, nums[id], n)
		}
	}
}

func TestIsAllDigits(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", false},
		{"0", true},
		{"123", true},
		{"12a", false},
		{"-1", false},
		{"١٢", false},
	}

	for _, tt := range tests {
		if got := isAllDigits(tt.input); got != tt.expected {
			t.Errorf("isAllDigits(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
