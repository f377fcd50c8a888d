package commands

import (
	"context"
	"flag"
	"io"

	"studyplan/internal/config"
	"studyplan/internal/exitcode"
	"studyplan/internal/output"
	"studyplan/internal/planner"
	"studyplan/internal/service"
)

func init() {
	Register(&ProgressCmd{})
}

// ProgressCmd implements the progress command.
type ProgressCmd struct{}

func (c *ProgressCmd) Name() string      { return "progress" }
func (c *ProgressCmd) Aliases() []string { return []string{"stats"} }
func (c *ProgressCmd) Synopsis() string  { return "Show completion rate and achievements" }
func (c *ProgressCmd) Usage() string     { return "studyplan progress" }
func (c *ProgressCmd) NeedsStore() bool  { return true }

func (c *ProgressCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ProgressCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	p := svc.ProgressSummary()
	output.FormatProgress(out, output.NewTheme(out), p,
		planner.MotivationalMessage(p.Rate),
		planner.Achievements(p.Completed))
	return exitcode.Success
}
