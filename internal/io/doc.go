// Package ioutils provides file system and image inspection utilities.
//
// This package contains functions for:
//   - Filename sanitization for cross-platform compatibility
//   - Collision-free name resolution and no-clobber renames
//   - Cover art format and dimension inspection
//
// # Unique Names
//
// ResolveUniqueName picks the first free name in a directory, appending an
// underscore counter on collision:
//
//	name, err := ioutils.ResolveUniqueName("/music", "20240101X", ".mp3", 10000)
//	// "20240101X.mp3", or "20240101X_1.mp3" if that is taken, and so on
//
//	err = ioutils.RenameNoClobber(oldPath, filepath.Join("/music", name))
//
// # Filename Sanitization
//
//	safe := ioutils.SanitizeFileName("Song: Part 1/2") // Returns "Song_ Part 1_2"
//
// # Image Inspection
//
//	svc := ioutils.NewImageService()
//	info, _ := svc.Describe(pictureBytes)
//	fmt.Println(info.Format, info.Width, info.Height)
package ioutils
