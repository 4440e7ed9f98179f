package audio

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

var (
	// ErrNotFound means the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrParse means the ID3 tag could not be read.
	ErrParse = errors.New("cannot parse ID3 tag")

	// ErrSave means the mutated tag could not be written back.
	ErrSave = errors.New("cannot save ID3 tag")
)

// FileError records a failed tag operation on a file.
//
// Kind is one of ErrNotFound, ErrParse or ErrSave and can be matched with
// errors.Is; the underlying cause is available via errors.Cause or Unwrap.
type FileError struct {
	Kind error
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Path, e.Kind, e.Err)
}

// Is reports whether target is the error's kind.
func (e *FileError) Is(target error) bool {
	return target == e.Kind
}

func (e *FileError) Unwrap() error { return e.Err }

// Cause implements the github.com/pkg/errors causer interface.
func (e *FileError) Cause() error { return e.Err }

// openError classifies an error returned while opening a tag.
func openError(path string, err error) error {
	kind := ErrParse
	if os.IsNotExist(err) {
		kind = ErrNotFound
	}
	return &FileError{Kind: kind, Path: path, Err: err}
}
