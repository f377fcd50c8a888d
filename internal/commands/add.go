package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"studyplan/internal/config"
	"studyplan/internal/exitcode"
	"studyplan/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	due      string
	priority string
	category string
	desc     string
	now      func() time.Time
}

// SetClock sets the clock used for the default due date (for testing).
func (c *AddCmd) SetClock(now func() time.Time) {
	c.now = now
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "studyplan add [--due <date>] [--priority <p>] [--category <c>] [--desc <text>] <title...>"
}
func (c *AddCmd) NeedsStore() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.due, "due", "", "")
	fs.StringVar(&c.due, "d", "", "")
	fs.StringVar(&c.priority, "priority", "medium", "")
	fs.StringVar(&c.priority, "p", "medium", "")
	fs.StringVar(&c.category, "category", "", "")
	fs.StringVar(&c.category, "c", "", "")
	fs.StringVar(&c.desc, "desc", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	// Join args to form title
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	priority, err := service.ParsePriority(c.priority)
	if err != nil {
		return reportUserError(errOut, err)
	}

	// Due date defaults to today
	due := service.DateOf(clockOrNow(c.now)())
	if c.due != "" {
		due, err = parseDueFlag(c.due)
		if err != nil {
			return reportUserError(errOut, err)
		}
	}

	task, err := svc.Add(ctx, service.Draft{
		Title:       title,
		DueDate:     due,
		Priority:    priority,
		Category:    strings.TrimSpace(c.category),
		Description: c.desc,
	})
	if err != nil {
		return reportStorageError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "ok %s\n", task.ID)
	}
	return exitcode.Success
}

func clockOrNow(now func() time.Time) func() time.Time {
	if now == nil {
		return time.Now
	}
	return now
}
