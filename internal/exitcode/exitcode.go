// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, invalid task, duplicate).
	UserError = 1

	// StorageError indicates the task store could not be read or written.
	StorageError = 2
)
