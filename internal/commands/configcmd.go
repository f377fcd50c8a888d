package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"studyplan/internal/config"
	"studyplan/internal/exitcode"
	"studyplan/internal/service"
	"studyplan/internal/storage"
)

func init() {
	Register(&ConfigCmd{})
}

// ConfigCmd prints the effective settings, or persists a new storage
// backend with `config storage <name>`.
type ConfigCmd struct{}

func (c *ConfigCmd) Name() string      { return "config" }
func (c *ConfigCmd) Aliases() []string { return nil }
func (c *ConfigCmd) Synopsis() string  { return "Show settings or choose the storage backend" }
func (c *ConfigCmd) Usage() string     { return "studyplan config [storage <file|sqlite>]" }
func (c *ConfigCmd) NeedsStore() bool  { return false }

func (c *ConfigCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ConfigCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	switch len(args) {
	case 0:
		fmt.Fprintf(out, "dir:     %s\n", cfg.Dir)
		fmt.Fprintf(out, "storage: %s\n", cfg.Storage)
		fmt.Fprintf(out, "debug:   %t\n", cfg.Debug)
		return exitcode.Success
	case 2:
		if args[0] != "storage" {
			break
		}
		backend := strings.ToLower(strings.TrimSpace(args[1]))
		if backend == "" || !storage.ValidBackend(backend) {
			fmt.Fprintf(errOut, "error: unknown storage backend: %s\n", args[1])
			return exitcode.UserError
		}
		cfg.Storage = backend
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.ConfigError
		}
		if !cfg.Quiet {
			fmt.Fprintln(out, "ok")
		}
		return exitcode.Success
	}

	fmt.Fprintf(errOut, "usage: %s\n", c.Usage())
	return exitcode.UserError
}
