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
	Register(&EditCmd{})
}

// EditCmd implements the edit command. Only flags that are given change.
type EditCmd struct {
	title    optionalString
	due      optionalString
	priority optionalString
	category optionalString
	desc     optionalString
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return []string{"update"} }
func (c *EditCmd) Synopsis() string  { return "Change fields of a task" }
func (c *EditCmd) Usage() string {
	return "studyplan edit [--title t] [--due d] [--priority p] [--category c] [--desc text] <ref>"
}
func (c *EditCmd) NeedsStore() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	for _, o := range []*optionalString{&c.title, &c.due, &c.priority, &c.category, &c.desc} {
		o.reset()
	}
	registerOptional(fs, &c.title, "title", "t")
	registerOptional(fs, &c.due, "due", "d")
	registerOptional(fs, &c.priority, "priority", "p")
	registerOptional(fs, &c.category, "category", "c")
	registerOptional(fs, &c.desc, "desc")
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	task, err := ResolveTaskRef(svc, args)
	if err != nil {
		return reportUserError(errOut, err)
	}

	patch, err := c.patch()
	if err != nil {
		return reportUserError(errOut, err)
	}
	if patch.IsEmpty() {
		fmt.Fprintln(errOut, "error: nothing to change (use --title, --due, --priority, --category or --desc)")
		return exitcode.UserError
	}

	found, err := svc.Update(ctx, task.ID, patch)
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

// patch builds a Patch from the flags that were set.
func (c *EditCmd) patch() (service.Patch, error) {
	var p service.Patch
	if c.title.set {
		title := c.title.value
		p.Title = &title
	}
	if c.due.set {
		due, err := parseDueFlag(c.due.value)
		if err != nil {
			return service.Patch{}, err
		}
		p.DueDate = &due
	}
	if c.priority.set {
		priority, err := service.ParsePriority(c.priority.value)
		if err != nil {
			return service.Patch{}, err
		}
		p.Priority = &priority
	}
	if c.category.set {
		category := c.category.value
		p.Category = &category
	}
	if c.desc.set {
		desc := c.desc.value
		p.Description = &desc
	}
	return p, nil
}
