package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"ptask/internal/config"
	"ptask/internal/exitcode"
	"ptask/internal/output"
	"ptask/internal/service"
)

func init() {
	Register(&CheckCmd{})
}

// CheckCmd implements the check command.
// It loads the store once and reports whether it is usable.
type CheckCmd struct{}

func (c *CheckCmd) Name() string      { return "check" }
func (c *CheckCmd) Aliases() []string { return nil }
func (c *CheckCmd) Synopsis() string  { return "Check that the task store is readable" }
func (c *CheckCmd) Usage() string     { return "ptask check [common flags]" }
func (c *CheckCmd) NeedsStore() bool  { return true }

func (c *CheckCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CheckCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	result := svc.Load()
	switch result.State {
	case service.LoadMissing:
		if !cfg.Quiet {
			fmt.Fprintf(out, "no store at %s\n", cfg.StorePath)
		}
	case service.LoadRecovered:
		fmt.Fprintf(errOut, "error: store unreadable, starting fresh: %v\n", result.Err)
		return exitcode.StorageError
	default:
		if !cfg.Quiet {
			fmt.Fprintf(out, "%s in %s\n", output.FormatCount(len(result.Tasks)), cfg.StorePath)
		}
	}
	return exitcode.Success
}
