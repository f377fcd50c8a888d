// Package calendar lays out a month of tasks as a Sunday-first grid.
package calendar

import (
	"fmt"
	"time"

	"studyplan/internal/service"
)

// MaxTasksPerDay is how many tasks a day cell lists before collapsing the
// rest into an overflow count.
const MaxTasksPerDay = 3

// TaskSource provides the tasks due on a given date.
type TaskSource interface {
	TasksOnDate(d service.Date) []service.Task
}

// Cell is one square of the grid. Leading blank cells have Day 0.
type Cell struct {
	Day      int
	Date     service.Date
	Today    bool
	Tasks    []service.Task // at most MaxTasksPerDay
	Overflow int            // tasks beyond Tasks
}

// Blank reports whether the cell pads the first week.
func (c Cell) Blank() bool {
	return c.Day == 0
}

// HasTasks reports whether anything is due on the cell's date.
func (c Cell) HasTasks() bool {
	return len(c.Tasks) > 0
}

// OverflowLabel returns "+K more", or "" when nothing overflows.
func (c Cell) OverflowLabel() string {
	if c.Overflow <= 0 {
		return ""
	}
	return fmt.Sprintf("+%d more", c.Overflow)
}

// Grid is a month view.
type Grid struct {
	Year    int
	Month   time.Month
	Leading int // weekday of the 1st, 0 = Sunday
	Days    int
	Cells   []Cell
}

// Build computes the grid for year and zero-based month0. Month values
// outside 0..11 roll over into neighbouring years.
func Build(year, month0 int, today service.Date, src TaskSource) Grid {
	first := time.Date(year, time.Month(month0+1), 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()

	g := Grid{
		Year:    first.Year(),
		Month:   first.Month(),
		Leading: int(first.Weekday()),
		Days:    days,
		Cells:   make([]Cell, 0, int(first.Weekday())+days),
	}
	for i := 0; i < g.Leading; i++ {
		g.Cells = append(g.Cells, Cell{})
	}
	for day := 1; day <= days; day++ {
		date := service.NewDate(g.Year, g.Month, day)
		cell := Cell{Day: day, Date: date, Today: date == today}
		tasks := src.TasksOnDate(date)
		if len(tasks) > MaxTasksPerDay {
			cell.Overflow = len(tasks) - MaxTasksPerDay
			tasks = tasks[:MaxTasksPerDay]
		}
		cell.Tasks = tasks
		g.Cells = append(g.Cells, cell)
	}
	return g
}

// MonthIndex returns the zero-based month of the grid.
func (g Grid) MonthIndex() int {
	return int(g.Month) - 1
}

// Title returns the month heading, e.g. "October 2026".
func (g Grid) Title() string {
	return fmt.Sprintf("%s %d", g.Month, g.Year)
}

// DayCells returns the non-blank cells.
func (g Grid) DayCells() []Cell {
	return g.Cells[g.Leading:]
}

// Weeks splits the cells into rows of seven. The last row may be short.
func (g Grid) Weeks() [][]Cell {
	var weeks [][]Cell
	for start := 0; start < len(g.Cells); start += 7 {
		end := min(start+7, len(g.Cells))
		weeks = append(weeks, g.Cells[start:end])
	}
	return weeks
}

// Shift moves a (year, zero-based month) pair by delta months.
func Shift(year, month0, delta int) (int, int) {
	t := time.Date(year, time.Month(month0+1+delta), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), int(t.Month()) - 1
}

// WeekdayHeaders are the column headings, Sunday first.
var WeekdayHeaders = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
