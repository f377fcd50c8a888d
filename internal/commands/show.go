package commands

import (
	"context"
	"flag"
	"io"

	"studyplan/internal/config"
	"studyplan/internal/exitcode"
	"studyplan/internal/output"
	"studyplan/internal/service"
)

func init() {
	Register(&ShowCmd{})
}

// ShowCmd implements the show command.
type ShowCmd struct{}

func (c *ShowCmd) Name() string      { return "show" }
func (c *ShowCmd) Aliases() []string { return nil }
func (c *ShowCmd) Synopsis() string  { return "Show every field of a task" }
func (c *ShowCmd) Usage() string     { return "studyplan show <ref>" }
func (c *ShowCmd) NeedsStore() bool  { return true }

func (c *ShowCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShowCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	task, err := ResolveTaskRef(svc, args)
	if err != nil {
		return reportUserError(errOut, err)
	}
	output.FormatTaskDetails(out, output.NewTheme(out), task)
	return exitcode.Success
}
