package ioutils

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrCollisionExhausted is returned when every candidate name up to the
	// attempt bound is already taken.
	ErrCollisionExhausted = errors.New("no free file name found")

	// ErrTargetExists is returned by RenameNoClobber when the destination
	// appeared after it was resolved.
	ErrTargetExists = errors.New("rename target already exists")
)

var (
	invalidChars   = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots   = regexp.MustCompile(`\.+$`)
	repeatedSpaces = regexp.MustCompile(`\s+`)
)

// SanitizeFileName makes name safe to embed in a file name.
//
// It is applied to the artist initial before it goes into a new file name:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Whitespace runs → single space, trailing whitespace removed
//
// A result of "" means nothing usable is left, e.g. for a lone ".".
//
// Example:
//
//	SanitizeFileName("B") // Returns "B"
//	SanitizeFileName("/") // Returns "_"
//	SanitizeFileName(".") // Returns ""
func SanitizeFileName(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = repeatedSpaces.ReplaceAllString(name, " ")
	return strings.TrimRight(name, " ")
}

// CandidateName returns the n-th candidate file name for base and ext.
//
// The first candidate (n == 0) is the bare name, later ones carry an
// underscore-separated counter:
//
//	CandidateName("20240101X", ".mp3", 0) // "20240101X.mp3"
//	CandidateName("20240101X", ".mp3", 2) // "20240101X_2.mp3"
func CandidateName(base, ext string, n int) string {
	if n == 0 {
		return base + ext
	}
	return fmt.Sprintf("%s_%d%s", base, n, ext)
}

// ResolveUniqueName returns the first candidate name that does not exist in dir.
//
// Candidates are tried in order base+ext, base_1+ext, base_2+ext, ... so
// suffixes are assigned sequentially without gaps. At most maxAttempts
// candidates are checked; ErrCollisionExhausted is returned past that.
//
// The result depends on the directory state at call time only. Nothing is
// reserved, so a concurrent writer may still take the name before the caller
// renames into it.
//
// Example:
//
//	// dir contains 20240101X.mp3 and 20240101X_1.mp3
//	name, err := ResolveUniqueName(dir, "20240101X", ".mp3", 100)
//	// name == "20240101X_2.mp3"
func ResolveUniqueName(dir, base, ext string, maxAttempts int) (string, error) {
	n, err := ResolveUniqueSuffix(dir, base, ext, maxAttempts)
	if err != nil {
		return "", err
	}
	return CandidateName(base, ext, n), nil
}

// ResolveUniqueSuffix is ResolveUniqueName returning the counter instead of
// the name. Zero means the bare base name is free.
func ResolveUniqueSuffix(dir, base, ext string, maxAttempts int) (int, error) {
	for n := 0; n < maxAttempts; n++ {
		exists, err := Exists(filepath.Join(dir, CandidateName(base, ext, n)))
		if err != nil {
			return 0, err
		}
		if !exists {
			return n, nil
		}
	}
	return 0, errors.Wrapf(ErrCollisionExhausted, "%s%s after %d attempts", base, ext, maxAttempts)
}

// Exists reports whether path names an existing directory entry.
// Dangling symlinks count as existing.
func Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// RenameNoClobber renames oldPath to newPath unless newPath already exists.
//
// The existence check and the rename are two separate system calls, so this
// narrows but does not close the window in which another process can create
// newPath.
func RenameNoClobber(oldPath, newPath string) error {
	exists, err := Exists(newPath)
	if err != nil {
		return err
	}
	if exists {
		return errors.Wrap(ErrTargetExists, newPath)
	}
	return os.Rename(oldPath, newPath)
}
