// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"studyplan/internal/service"
)

const (
	// DisplayDateLayout renders due dates the way en-US locales print them.
	DisplayDateLayout = "1/2/2006"

	// ListSeparator is the separator line for sections.
	ListSeparator = "------------"
)

// FormatTask formats a task line for the list view.
// Format: "{N:>4}  [x] {TITLE}  {DUE}  {PRIORITY}  {CATEGORY}\n", followed by an
// indented description line when one is set.
func FormatTask(w io.Writer, th Theme, num int, task service.Task) {
	box := "[ ]"
	title := normalizeTitle(task.Title)
	if task.Completed {
		box = "[x]"
		title = th.Done.Render(title)
	}
	fmt.Fprintf(w, "%4d  %s %s  %s  %s  %s\n",
		num, box, title,
		formatDue(task.DueDate),
		th.Priority(task.Priority, strings.ToUpper(task.Priority.String())),
		formatCategory(task.Category))
	if desc := normalizeLine(task.Description); desc != "" {
		fmt.Fprintf(w, "          %s\n", th.Muted.Render(desc))
	}
}

// FormatTaskDetails prints every field of a task, one per line.
func FormatTaskDetails(w io.Writer, th Theme, task service.Task) {
	status := "open"
	if task.Completed {
		status = "completed"
	}
	fmt.Fprintf(w, "ID:          %s\n", task.ID)
	fmt.Fprintf(w, "Title:       %s\n", th.Title.Render(normalizeTitle(task.Title)))
	fmt.Fprintf(w, "Due:         %s\n", formatDue(task.DueDate))
	fmt.Fprintf(w, "Priority:    %s\n", th.Priority(task.Priority, task.Priority.String()))
	fmt.Fprintf(w, "Category:    %s\n", formatCategory(task.Category))
	fmt.Fprintf(w, "Status:      %s\n", status)
	fmt.Fprintf(w, "Created:     %s\n", task.CreatedAt.Local().Format("1/2/2006 3:04 PM"))
	if task.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", task.Description)
	}
}

// FormatSectionHeader formats a section header.
func FormatSectionHeader(w io.Writer, th Theme, title string) {
	fmt.Fprintln(w, ListSeparator)
	fmt.Fprintln(w, th.Title.Render(title))
	fmt.Fprintln(w, ListSeparator)
}

// FormatDate renders a due date for display; unset dates show as "(no date)".
func FormatDate(d service.Date) string {
	return formatDue(d)
}

func formatDue(d service.Date) string {
	if d.IsZero() {
		return "(no date)"
	}
	return d.Format(DisplayDateLayout)
}

func formatCategory(c string) string {
	if strings.TrimSpace(c) == "" {
		return "(uncategorized)"
	}
	return c
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = normalizeLine(title)
	if title == "" {
		return "(untitled)"
	}
	return title
}

// normalizeLine flattens newlines and trims surrounding space.
func normalizeLine(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
