package plotlog

import (
	"errors"
	"fmt"
)

// ErrDirNotFound indicates the input directory does not exist.
var ErrDirNotFound = errors.New("directory does not exist")

// ErrNotDirectory indicates the input path is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// ErrNoFiles indicates discovery found no plot documents.
var ErrNoFiles = errors.New("no SVG files found")

// Stage names the step of per-file processing that failed.
type Stage string

const (
	// StageRead is reading the source file.
	StageRead Stage = "read"
	// StageParse is parsing the source as an SVG document.
	StageParse Stage = "parse"
	// StageWrite is writing the converted document.
	StageWrite Stage = "write"
)

// ProcessError represents a failure while processing one document.
type ProcessError struct {
	Path  string
	Stage Stage
	Err   error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("error processing %s (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// NewProcessError creates a new ProcessError.
func NewProcessError(path string, stage Stage, err error) *ProcessError {
	return &ProcessError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}
