// Package batch provides the directory-level orchestration of mp3strip.
//
// # Runner
//
// The Runner processes every MP3 file in the configured directory:
//
//  1. List the directory once (non-recursive)
//  2. Read the artist initial from the ID3 tag
//  3. Delete artist, title and cover-art frames
//  4. Save the tag
//  5. Rename the file to {YYYYMMDD}{initial}.mp3, adding _1, _2, ... on
//     collision
//
// # Basic Usage
//
//	runner := batch.NewRunner(settings, func(event batch.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	summary, err := runner.Run(ctx)
//	if errors.Is(err, batch.ErrDirectoryNotFound) {
//	    log.Fatal(err)
//	}
//	fmt.Println(summary) // processed=5 skipped=1 ignored=2 errored=0
//
// # Failure Isolation
//
// A file that cannot be opened, saved or renamed is counted in
// RunSummary.Errored and the run moves on to the next file. Only a missing
// target directory aborts the run.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	    File    string
//	}
package batch
