package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"studyplan/internal/calendar"
)

// FormatCalendar renders a month grid followed by the tasks of each busy day.
//
// Each day cell is five columns wide: the day number right-aligned in four
// (bracketed when it is today) and a trailing "*" when tasks are due.
func FormatCalendar(w io.Writer, th Theme, g calendar.Grid) {
	fmt.Fprintln(w, th.Title.Render(g.Title()))

	var header strings.Builder
	for _, name := range calendar.WeekdayHeaders {
		fmt.Fprintf(&header, "%5s", name)
	}
	fmt.Fprintln(w, header.String())

	for _, week := range g.Weeks() {
		var row strings.Builder
		for _, cell := range week {
			row.WriteString(formatDayCell(th, cell))
		}
		fmt.Fprintln(w, strings.TrimRight(row.String(), " "))
	}

	abbrev := g.Month.String()[:3]
	first := true
	for _, cell := range g.DayCells() {
		if !cell.HasTasks() {
			continue
		}
		if first {
			fmt.Fprintln(w)
			first = false
		}
		items := make([]string, 0, len(cell.Tasks)+1)
		for _, task := range cell.Tasks {
			title := normalizeTitle(task.Title)
			if task.Completed {
				title = th.Done.Render(title)
			}
			items = append(items, title)
		}
		if label := cell.OverflowLabel(); label != "" {
			items = append(items, th.Muted.Render(label))
		}
		fmt.Fprintf(w, "%s %2d: %s\n", abbrev, cell.Day, strings.Join(items, "; "))
	}
}

func formatDayCell(th Theme, cell calendar.Cell) string {
	if cell.Blank() {
		return "     "
	}
	text := strconv.Itoa(cell.Day)
	if cell.Today {
		text = "[" + text + "]"
	}
	text = fmt.Sprintf("%4s", text)
	if cell.Today {
		text = th.Today.Render(text)
	}
	if cell.HasTasks() {
		return text + "*"
	}
	return text + " "
}
