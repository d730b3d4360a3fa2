package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"ptask/internal/config"
	"ptask/internal/exitcode"
	"ptask/internal/output"
	"ptask/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	due      string
	priority string
}

// SetDue sets the due date (for testing).
func (c *AddCmd) SetDue(due string) {
	c.due = due
}

// SetPriority sets the priority (for testing).
func (c *AddCmd) SetPriority(priority string) {
	c.priority = priority
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"new"} }
func (c *AddCmd) Synopsis() string  { return "Add a task" }
func (c *AddCmd) Usage() string {
	return "ptask add [common flags] --due <yyyy-MM-dd> --priority <Low|Medium|High> <title...>"
}
func (c *AddCmd) NeedsStore() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.due, "due", "", "")
	fs.StringVar(&c.due, "d", "", "")
	fs.StringVar(&c.priority, "priority", "", "")
	fs.StringVar(&c.priority, "p", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	// Title words are joined as typed; blank titles are rejected by the store
	title := strings.Join(args, " ")

	result, err := svc.AddNewTask(title, c.due, c.priority)
	if err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}

	output.WriteAddResult(out, errOut, result, cfg.Quiet)
	if !result.OK() {
		return exitcode.UserError
	}
	return exitcode.Success
}
