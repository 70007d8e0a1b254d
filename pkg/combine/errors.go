package combine

import "errors"

// Errors returned by the combine pipeline. Callers match them with errors.Is.
var (
	ErrNotFound      = errors.New("input directory does not exist")
	ErrNotADirectory = errors.New("input path is not a directory")
	ErrRead          = errors.New("failed to read file")
	ErrWrite         = errors.New("failed to write output file")
	ErrUnexpected    = errors.New("unexpected error")
)
