package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"studyplan/internal/config"
	"studyplan/internal/exitcode"
	"studyplan/internal/output"
	"studyplan/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `studyplan` (no args) and `studyplan list --on <date>`.
type ListCmd struct {
	on string
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks, open first, by due date" }
func (c *ListCmd) Usage() string     { return "studyplan list [--on <date>]" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.on, "on", "", "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	if c.on != "" {
		return c.listOn(cfg, svc, out, errOut)
	}
	return c.listAll(cfg, svc, out)
}

// listAll prints every task in display order.
func (c *ListCmd) listAll(cfg *config.Config, svc service.Service, out io.Writer) int {
	tasks := svc.SortedForDisplay()
	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks yet")
		}
		return exitcode.Success
	}

	th := output.NewTheme(out)
	for i, task := range tasks {
		output.FormatTask(out, th, i+1, task)
	}
	return exitcode.Success
}

// listOn prints the tasks due on one date. Numbers stay those of the full
// list so they can be passed to done, edit and rm.
func (c *ListCmd) listOn(cfg *config.Config, svc service.Service, out, errOut io.Writer) int {
	day, err := parseDueFlag(c.on)
	if err != nil {
		return reportUserError(errOut, err)
	}

	tasks := svc.TasksOnDate(day)
	th := output.NewTheme(out)
	output.FormatSectionHeader(out, th, "Due "+output.FormatDate(day))
	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "nothing due")
		}
		return exitcode.Success
	}

	nums := DisplayNumbers(svc)
	for _, task := range tasks {
		output.FormatTask(out, th, nums[task.ID], task)
	}
	return exitcode.Success
}
