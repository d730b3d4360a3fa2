// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"ptask/internal/service"
)

// AddMessage returns the one-line status message for an add outcome.
func AddMessage(r service.AddResult) string {
	switch r.Outcome {
	case service.OutcomeAdded:
		return fmt.Sprintf("added %s", FormatTask(r.Task))
	case service.OutcomeTitleEmpty:
		return "title must not be empty"
	case service.OutcomeInvalidDate:
		return "invalid due date (expected yyyy-MM-dd)"
	case service.OutcomeInvalidPriority:
		return fmt.Sprintf("invalid priority (accepted: %s)", priorityNames())
	case service.OutcomeDuplicate:
		return fmt.Sprintf("task already exists: %s", FormatTask(r.Task))
	default:
		return r.Outcome.String()
	}
}

// WriteAddResult writes the status line for r. Success goes to out as
// "ok: ..." unless quiet; failures go to errOut as "error: ...".
func WriteAddResult(out, errOut io.Writer, r service.AddResult, quiet bool) {
	if r.OK() {
		if !quiet {
			fmt.Fprintf(out, "ok: %s\n", AddMessage(r))
		}
		return
	}
	fmt.Fprintf(errOut, "error: %s\n", AddMessage(r))
}

// FormatTask formats a task as: "TITLE" due YYYY-MM-DD [PRIORITY]
func FormatTask(task service.Task) string {
	return fmt.Sprintf("%q due %s [%s]", normalizeTitle(task.Title), task.DueDate, task.Priority)
}

// FormatCount formats a task count with the right plural.
func FormatCount(n int) string {
	if n == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", n)
}

// normalizeTitle replaces newlines with spaces so a task stays on one line.
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")
	return title
}

func priorityNames() string {
	names := make([]string, len(service.Priorities))
	for i, p := range service.Priorities {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
