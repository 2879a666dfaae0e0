package xlsxguard

import (
	"errors"
	"fmt"
)

// ErrTargetNotFound indicates the target path does not exist.
var ErrTargetNotFound = errors.New("target not found")

// ErrUnknownCommand indicates a command name other than encrypt, decrypt or verify.
var ErrUnknownCommand = errors.New("unknown command")

// ErrEmptyPassword indicates an empty password was supplied.
var ErrEmptyPassword = errors.New("password must not be empty")

// ErrUnopenable indicates a document could be opened neither without a
// password nor with the supplied one.
var ErrUnopenable = errors.New("unable to open file, password may be incorrect")

// FileError represents a failed operation on a single file.
type FileError struct {
	File string
	Op   Command
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.File, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// NewFileError creates a new FileError.
func NewFileError(file string, op Command, err error) *FileError {
	return &FileError{
		File: file,
		Op:   op,
		Err:  err,
	}
}
