package calendar_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"studyplan/internal/calendar"
	"studyplan/internal/service"
	"studyplan/internal/testutil"
)

// mapSource serves tasks from a date-keyed map.
type mapSource map[service.Date][]service.Task

func (m mapSource) TasksOnDate(d service.Date) []service.Task {
	return m[d]
}

func TestBuild_WednesdayStartThirtyDays(t *testing.T) {
	// April 2026 starts on a Wednesday and has 30 days.
	busy := service.NewDate(2026, time.April, 14)
	var five []service.Task
	for i := 1; i <= 5; i++ {
		five = append(five, service.Task{ID: fmt.Sprint(i), Title: fmt.Sprintf("task %d", i), DueDate: busy})
	}

	g := calendar.Build(2026, 3, service.Date{}, mapSource{busy: five})

	if g.Leading != 3 {
		t.Errorf("expected 3 leading blanks, got %d", g.Leading)
	}
	blanks, days := 0, 0
	for _, c := range g.Cells {
		if c.Blank() {
			blanks++
		} else {
			days++
		}
	}
	if blanks != 3 || days != 30 {
		t.Errorf("expected 3 blanks + 30 days, got %d + %d", blanks, days)
	}
	for i := 0; i < 3; i++ {
		if !g.Cells[i].Blank() {
			t.Errorf("cell %d should be blank", i)
		}
	}

	cell := g.Cells[g.Leading+13]
	if cell.Date != busy {
		t.Fatalf("expected cell for %s, got %s", busy, cell.Date)
	}
	if len(cell.Tasks) != 3 {
		t.Errorf("expected 3 visible tasks, got %d", len(cell.Tasks))
	}
	if diff := cmp.Diff(five[:3], cell.Tasks); diff != "" {
		t.Errorf("visible tasks mismatch (-want +got):\n%s", diff)
	}
	if cell.OverflowLabel() != "+2 more" {
		t.Errorf("expected overflow +2 more, got %q", cell.OverflowLabel())
	}
}

func TestBuild_DayNumbersAndDates(t *testing.T) {
	g := calendar.Build(2024, 1, service.Date{}, mapSource{}) // February 2024, leap year

	if g.Days != 29 || len(g.DayCells()) != 29 {
		t.Fatalf("expected 29 days, got %d", g.Days)
	}
	if g.Leading != int(time.Thursday) {
		t.Errorf("expected Feb 2024 to start on Thursday, got %d", g.Leading)
	}
	for i, c := range g.DayCells() {
		if c.Day != i+1 {
			t.Errorf("cell %d has day %d", i, c.Day)
		}
		if c.Date != service.NewDate(2024, time.February, i+1) {
			t.Errorf("cell %d has date %s", i, c.Date)
		}
		if c.HasTasks() || c.OverflowLabel() != "" {
			t.Errorf("cell %d should be empty", i)
		}
	}
	if g.Title() != "February 2024" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestBuild_MarksToday(t *testing.T) {
	today := service.NewDate(2026, time.October, 15)
	g := calendar.Build(2026, 9, today, mapSource{})

	var marked []int
	for _, c := range g.Cells {
		if c.Today {
			marked = append(marked, c.Day)
		}
	}
	if diff := cmp.Diff([]int{15}, marked); diff != "" {
		t.Errorf("today cells mismatch (-want +got):\n%s", diff)
	}

	other := calendar.Build(2026, 10, today, mapSource{})
	for _, c := range other.Cells {
		if c.Today {
			t.Errorf("November should not contain today, got day %d", c.Day)
		}
	}
}

func TestBuild_MonthRollsOver(t *testing.T) {
	g := calendar.Build(2026, 12, service.Date{}, mapSource{})
	if g.Year != 2027 || g.Month != time.January || g.MonthIndex() != 0 {
		t.Errorf("expected January 2027, got %s", g.Title())
	}

	g = calendar.Build(2026, -1, service.Date{}, mapSource{})
	if g.Year != 2025 || g.Month != time.December {
		t.Errorf("expected December 2025, got %s", g.Title())
	}
}

func TestBuild_UsesStore(t *testing.T) {
	s := testutil.NewStore(t, testutil.NewFakeStorage())
	testutil.Seed(t, s,
		service.Task{Title: "quiz", DueDate: testutil.MustDate("2026-10-15")},
		service.Task{Title: "essay", DueDate: testutil.MustDate("2026-10-31")},
		service.Task{Title: "elsewhere", DueDate: testutil.MustDate("2026-11-01")},
	)
	if _, err := s.Add(context.Background(), service.Draft{Title: "quiz 2", DueDate: testutil.MustDate("2026-10-15")}); err != nil {
		t.Fatal(err)
	}

	g := calendar.Build(2026, 9, service.Date{}, s)

	var got []string
	for _, c := range g.DayCells() {
		for _, task := range c.Tasks {
			got = append(got, fmt.Sprintf("%d:%s", c.Day, task.Title))
		}
	}
	want := []string{"15:quiz", "15:quiz 2", "31:essay"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("bucketed tasks mismatch (-want +got):\n%s", diff)
	}
}

func TestWeeks(t *testing.T) {
	g := calendar.Build(2026, 3, service.Date{}, mapSource{}) // 3 blanks + 30 days
	weeks := g.Weeks()
	if len(weeks) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(weeks))
	}
	if len(weeks[4]) != 5 {
		t.Errorf("expected short last row of 5, got %d", len(weeks[4]))
	}
	if weeks[0][3].Day != 1 {
		t.Errorf("expected the 1st on Wednesday column, got day %d", weeks[0][3].Day)
	}
}

func TestShift(t *testing.T) {
	tests := []struct {
		year, month0, delta  int
		wantYear, wantMonth0 int
	}{
		{2026, 9, 1, 2026, 10},
		{2026, 11, 1, 2027, 0},
		{2026, 0, -1, 2025, 11},
		{2026, 5, -18, 2024, 11},
		{2026, 5, 0, 2026, 5},
	}
	for _, tt := range tests {
		y, m := calendar.Shift(tt.year, tt.month0, tt.delta)
		if y != tt.wantYear || m != tt.wantMonth0 {
			t.Errorf("Shift(%d, %d, %d) = %d, %d; want %d, %d",
				tt.year, tt.month0, tt.delta, y, m, tt.wantYear, tt.wantMonth0)
		}
	}
}
