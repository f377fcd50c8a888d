package commands

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"studyplan/internal/config"
	"studyplan/internal/exitcode"
	"studyplan/internal/service"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct {
	yes bool
	in  io.Reader
}

// SetInput sets the reader answering the confirmation prompt (for testing).
func (c *RmCmd) SetInput(r io.Reader) {
	c.in = r
}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"delete"} }
func (c *RmCmd) Synopsis() string  { return "Delete a task" }
func (c *RmCmd) Usage() string     { return "studyplan rm [--yes] <ref>" }
func (c *RmCmd) NeedsStore() bool  { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.yes, "yes", false, "")
	fs.BoolVar(&c.yes, "y", false, "")
}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	task, err := ResolveTaskRef(svc, args)
	if err != nil {
		return reportUserError(errOut, err)
	}

	// Deletion needs explicit confirmation unless --yes
	if !c.yes && !c.confirm(errOut, task) {
		if !cfg.Quiet {
			fmt.Fprintln(out, "cancelled")
		}
		return exitcode.Success
	}

	found, err := svc.Delete(ctx, task.ID)
	if err != nil {
		return reportStorageError(errOut, err)
	}
	if !found {
		return reportUserError(errOut, fmt.Errorf("%w: %s", ErrTaskNotFound, task.ID))
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// confirm asks on errOut and reads one answer line. Only y/yes confirms.
func (c *RmCmd) confirm(errOut io.Writer, task service.Task) bool {
	in := c.in
	if in == nil {
		in = os.Stdin
	}
	fmt.Fprintf(errOut, "Are you sure you want to delete \"%s\"? [y/N] ", task.Title)

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		fmt.Fprintln(errOut)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
