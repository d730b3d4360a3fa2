package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"ptask/internal/config"
	"ptask/internal/exitcode"
	"ptask/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "ptask help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	WriteHelp(out, DefaultRegistry)
	return exitcode.Success
}

// WriteHelp prints usage for every command in r, sorted by name.
func WriteHelp(w io.Writer, r *Registry) {
	cmds := r.All()

	fmt.Fprintln(w, "Usage:")
	for _, cmd := range cmds {
		fmt.Fprintf(w, "  %s\n", cmd.Usage())
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range cmds {
		name := cmd.Name()
		for _, alias := range cmd.Aliases() {
			name += ", " + alias
		}
		fmt.Fprintf(w, "  %-10s %s\n", name, cmd.Synopsis())
	}

	fmt.Fprint(w, commonFlagsText)
}

const commonFlagsText = `
Common flags:
  --config <dir>   Override config directory
  --file <path>    Override task store file
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
