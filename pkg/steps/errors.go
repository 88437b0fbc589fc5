package steps

import "errors"

var (
	// ErrReadInput marks a missing, unreadable or non-text input file.
	ErrReadInput = errors.New("reading input")
	// ErrWriteOutput marks a failure creating or appending to the output file.
	ErrWriteOutput = errors.New("writing output")
	// ErrCountMissingArgument is the failure of the legacy letter count, which
	// counted occurrences of nothing. Had that call succeeded, the numeric
	// result was still never converted before being joined to the message.
	ErrCountMissingArgument = errors.New("count requires a substring argument")
)
