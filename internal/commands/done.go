package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"studyplan/internal/config"
	"studyplan/internal/exitcode"
	"studyplan/internal/service"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command. Running it on a completed task
// reopens it.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"toggle"} }
func (c *DoneCmd) Synopsis() string  { return "Toggle a task between open and completed" }
func (c *DoneCmd) Usage() string     { return "studyplan done <ref>" }
func (c *DoneCmd) NeedsStore() bool  { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	task, err := ResolveTaskRef(svc, args)
	if err != nil {
		return reportUserError(errOut, err)
	}

	found, err := svc.ToggleCompleted(ctx, task.ID)
	if err != nil {
		return reportStorageError(errOut, err)
	}
	if !found {
		return reportUserError(errOut, fmt.Errorf("%w: %s", ErrTaskNotFound, task.ID))
	}

	if !cfg.Quiet {
		if task.Completed {
			fmt.Fprintln(out, "reopened")
		} else {
			fmt.Fprintln(out, "completed")
		}
	}
	return exitcode.Success
}
