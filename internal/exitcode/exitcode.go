// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown task, ambiguous reference).
	UserError = 1

	// ConfigError indicates an unreadable config file or unknown setting.
	ConfigError = 2

	// StorageError indicates the task data could not be loaded or saved.
	StorageError = 3
)
