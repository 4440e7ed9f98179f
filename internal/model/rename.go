package model

import (
	"path/filepath"
	"time"

	ioutils "github.com/handiism/mp3tools/internal/io"
)

// DefaultDateLayout formats the date part of a new file name as YYYYMMDD.
const DefaultDateLayout = "20060102"

// BaseName returns the stem of a renamed file: the formatted date followed
// by the artist initial.
//
// Files processed on the same day with the same initial share a base name;
// RenameCandidate.Suffix tells them apart.
//
// Example:
//
//	BaseName(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), DefaultDateLayout, "X")
//	// "20240101X"
func BaseName(now time.Time, layout, initial string) string {
	if layout == "" {
		layout = DefaultDateLayout
	}
	return now.Format(layout) + initial
}

// RenameCandidate is a proposed new name for a file.
//
// Suffix 0 means the bare base name; any other value is appended after an
// underscore.
type RenameCandidate struct {
	Dir    string
	Base   string
	Ext    string
	Suffix int
}

// FileName returns the candidate's file name.
func (c RenameCandidate) FileName() string {
	return ioutils.CandidateName(c.Base, c.Ext, c.Suffix)
}

// Path returns the candidate's full path.
func (c RenameCandidate) Path() string {
	return filepath.Join(c.Dir, c.FileName())
}
