// Package exitcode defines exit code constants for the daterange CLI.
package exitcode

const (
	Success      = 0
	GeneralError = 1
	UsageError   = 2
	InputError   = 3
)
