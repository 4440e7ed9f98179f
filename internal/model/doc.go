// Package model defines the core data structures used throughout
// mp3tools.
//
// # AudioFile
//
// AudioFile splits an MP3 path into the parts the renamer needs:
//
//	f := model.NewAudioFile("/music/Song.MP3")
//	fmt.Println(f.Dir, f.Name, f.Ext) // "/music" "Song.MP3" ".MP3"
//
// # Rename Candidates
//
// BaseName builds the date-plus-initial stem of a new file name, and
// RenameCandidate carries it together with a collision counter:
//
//	base := model.BaseName(time.Now(), model.DefaultDateLayout, "B") // "20240101B"
//	c := model.RenameCandidate{Dir: f.Dir, Base: base, Ext: f.Ext, Suffix: 2}
//	fmt.Println(c.FileName()) // "20240101B_2.MP3"
//
// # Run Summary
//
// RunSummary aggregates per-file results of a batch run:
//
//	var s model.RunSummary
//	s.Add(result) // Processed or Errored
//	s.Skip()      // non-regular directory entry
//	s.Ignore()    // regular file with another extension
package model
