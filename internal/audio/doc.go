// Package audio provides ID3 tag services for MP3 files: cover-art
// detection and tag stripping.
//
// # Cover-Art Detection
//
// Use the CoverDetector to check a file for attached pictures:
//
//	report := audio.NewCoverDetector().Detect(path)
//	switch report.Status {
//	case audio.CoverPresent:
//	    fmt.Printf("%d cover image(s)\n", report.Count)
//	case audio.CoverError:
//	    log.Print(report.Err)
//	}
//
// # Tag Stripping
//
// Use the Tagger to remove artist, title and cover art:
//
//	tagger := audio.NewTagger(audio.DefaultStripConfig())
//	tag, err := tagger.Open(path)
//	initial := audio.ArtistInitial(tag, audio.DefaultFallbackInitial)
//	report := tagger.Strip(tag)
//	err = tagger.Save(path, tag)
//
// The stripper handles:
//   - Artist (TPE1)
//   - Title (TIT2)
//   - Cover Art (every APIC frame)
//
// # Errors
//
// Failures are *FileError values whose kind matches ErrNotFound, ErrParse
// or ErrSave with errors.Is.
package audio
