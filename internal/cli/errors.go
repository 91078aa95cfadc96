// internal/cli/errors.go
package cli

import "errors"

var (
	// ErrTooManyEnvArgs is returned when the environment variable holds
	// more tokens than an argument vector may carry.
	ErrTooManyEnvArgs = errors.New("the environment variable " + EnvVar + " contains too many arguments")

	// ErrInvalidSuffix is returned for an empty --suffix value or one
	// containing a path separator.
	ErrInvalidSuffix = errors.New("invalid filename suffix")

	// ErrFilesTwice is returned when --files or --files0 is given twice.
	ErrFilesTwice = errors.New("only one file can be specified with --files or --files0")

	// ErrFilesWithOperands is returned when a file-list source is combined
	// with filename operands.
	ErrFilesWithOperands = errors.New("filename operands cannot be combined with --files or --files0")

	// ErrAloneChain is returned when the legacy format is paired with
	// anything but a single LZMA1 filter.
	ErrAloneChain = errors.New("with --format=lzma only the LZMA1 filter is supported")

	// ErrBudgetTooSmall is returned when no preset fits the memory budget.
	ErrBudgetTooSmall = errors.New("memory usage limit is too small for any internal filter preset")

	// ErrChainOverBudget is returned when an explicitly configured chain
	// exceeds the memory budget. Explicit configuration is never silently
	// altered.
	ErrChainOverBudget = errors.New("memory usage limit is too small for the given filter setup")
)
