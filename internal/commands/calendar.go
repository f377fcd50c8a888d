package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"studyplan/internal/calendar"
	"studyplan/internal/config"
	"studyplan/internal/exitcode"
	"studyplan/internal/output"
	"studyplan/internal/service"
)

func init() {
	Register(&CalendarCmd{})
}

// CalendarCmd implements the calendar command.
type CalendarCmd struct {
	prev int
	next int
	now  func() time.Time
}

// SetClock sets the clock that decides today and the default month (for testing).
func (c *CalendarCmd) SetClock(now func() time.Time) {
	c.now = now
}

func (c *CalendarCmd) Name() string      { return "calendar" }
func (c *CalendarCmd) Aliases() []string { return []string{"cal"} }
func (c *CalendarCmd) Synopsis() string  { return "Show a month calendar of due tasks" }
func (c *CalendarCmd) Usage() string     { return "studyplan calendar [--prev <n>] [--next <n>] [YYYY-MM]" }
func (c *CalendarCmd) NeedsStore() bool  { return true }

func (c *CalendarCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.prev, "prev", 0, "")
	fs.IntVar(&c.next, "next", 0, "")
}

func (c *CalendarCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[1])
		return exitcode.UserError
	}
	if c.prev < 0 || c.next < 0 {
		fmt.Fprintln(errOut, "error: --prev and --next must not be negative")
		return exitcode.UserError
	}

	now := clockOrNow(c.now)()
	year, month0 := now.Year(), int(now.Month())-1
	if len(args) == 1 {
		t, err := time.Parse("2006-01", args[0])
		if err != nil {
			fmt.Fprintf(errOut, "error: invalid month: %s (want YYYY-MM)\n", args[0])
			return exitcode.UserError
		}
		year, month0 = t.Year(), int(t.Month())-1
	}
	year, month0 = calendar.Shift(year, month0, c.next-c.prev)

	g := calendar.Build(year, month0, service.DateOf(now), svc)
	output.FormatCalendar(out, output.NewTheme(out), g)
	return exitcode.Success
}
