package model

import "fmt"

// FileResult is the outcome of processing one file in a batch.
//
// A result with a nil Err counts as processed; anything else counts as an
// error. The remaining fields describe what was done before the error, if
// any.
type FileResult struct {
	// Name is the original file name.
	Name string

	// NewName is the file name after renaming. Equal to Name when the
	// rename was skipped or never reached.
	NewName string

	// Initial is the character used in the new name.
	Initial string

	// ArtistRemoved and TitleRemoved report deleted text frames.
	ArtistRemoved bool
	TitleRemoved  bool

	// PicturesRemoved is the number of cover-art frames deleted.
	PicturesRemoved int

	// Renamed is true when the file was moved to NewName.
	Renamed bool

	// Err is the failure that stopped processing, if any.
	Err error
}

// OK reports whether the file was processed without error.
func (r FileResult) OK() bool {
	return r.Err == nil
}

// RunSummary counts the outcomes of a batch run.
//
// Counters only ever grow. Skipped counts directory entries that are not
// regular files; Ignored counts regular files with a different extension.
type RunSummary struct {
	Processed int
	Skipped   int
	Ignored   int
	Errored   int
}

// Add records a per-file result.
func (s *RunSummary) Add(r FileResult) {
	if r.OK() {
		s.Processed++
	} else {
		s.Errored++
	}
}

// Skip records a non-regular directory entry.
func (s *RunSummary) Skip() {
	s.Skipped++
}

// Ignore records a regular file that did not match the extension.
func (s *RunSummary) Ignore() {
	s.Ignored++
}

// Total returns the number of directory entries seen.
func (s RunSummary) Total() int {
	return s.Processed + s.Skipped + s.Ignored + s.Errored
}

func (s RunSummary) String() string {
	return fmt.Sprintf("processed=%d skipped=%d ignored=%d errored=%d",
		s.Processed, s.Skipped, s.Ignored, s.Errored)
}
