package model

import (
	"path/filepath"
	"strings"
)

// AudioFile is an MP3 file on disk.
//
// The tag set is not part of AudioFile: it is loaded fresh from Path for
// every operation and released before the next file is touched.
type AudioFile struct {
	// Path is the full path to the file.
	Path string

	// Dir is the directory containing the file.
	Dir string

	// Name is the file name including extension.
	Name string

	// Ext is the extension including the dot, with its original case.
	Ext string
}

// NewAudioFile creates an AudioFile from a path.
func NewAudioFile(path string) AudioFile {
	return AudioFile{
		Path: path,
		Dir:  filepath.Dir(path),
		Name: filepath.Base(path),
		Ext:  filepath.Ext(path),
	}
}

// HasExtension reports whether the file name ends in ext, ignoring case.
//
// Example:
//
//	NewAudioFile("/music/a.MP3").HasExtension(".mp3") // true
func (f AudioFile) HasExtension(ext string) bool {
	return HasExtension(f.Name, ext)
}

// HasExtension reports whether name ends in ext, ignoring case.
func HasExtension(name, ext string) bool {
	return len(name) >= len(ext) && strings.EqualFold(name[len(name)-len(ext):], ext)
}
