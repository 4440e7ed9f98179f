package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/handiism/mp3tools/internal/audio"
	"github.com/handiism/mp3tools/internal/config"
	ioutils "github.com/handiism/mp3tools/internal/io"
	"github.com/handiism/mp3tools/internal/model"
	"github.com/pkg/errors"
)

// ErrDirectoryNotFound is returned by Run when the target directory does not
// exist or is not a directory.
var ErrDirectoryNotFound = errors.New("target directory not found")

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a batch progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel

	// File is the name of the file the event refers to, if any.
	File string
}

// Runner strips tags from and renames every MP3 file in a directory.
type Runner struct {
	settings *config.Settings
	tagger   *audio.Tagger
	now      func() time.Time

	onProgress func(ProgressEvent)
}

// NewRunner creates a new Runner for settings.TargetDir.
func NewRunner(settings *config.Settings, onProgress func(ProgressEvent)) *Runner {
	return &Runner{
		settings:   settings,
		tagger:     audio.NewTagger(settings.ToStripConfig()),
		now:        time.Now,
		onProgress: onProgress,
	}
}

// SetClock replaces the clock used to date new file names.
func (r *Runner) SetClock(now func() time.Time) {
	r.now = now
}

// Run processes the target directory once and returns the run summary.
//
// The directory is listed a single time, so files renamed during the run are
// not picked up again. A failure on one file is recorded in the summary and
// the run continues. Cancelling ctx stops the run between files; the summary
// gathered so far is returned together with ctx.Err().
func (r *Runner) Run(ctx context.Context) (*model.RunSummary, error) {
	dir := r.settings.TargetDir

	info, err := os.Stat(dir)
	if os.IsNotExist(err) || (err == nil && !info.IsDir()) {
		return nil, errors.Wrap(ErrDirectoryNotFound, dir)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read directory %s", dir)
	}

	r.progress(ProgressEvent{Message: fmt.Sprintf("Processing directory: %s", dir), Level: LevelInfo})

	summary := &model.RunSummary{}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		name := entry.Name()
		path := filepath.Join(dir, name)

		// Stat follows symlinks, so a link to an MP3 is processed.
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			r.progress(ProgressEvent{Message: fmt.Sprintf("Skipping, not a regular file: %s", name), Level: LevelWarning, File: name})
			summary.Skip()
			continue
		}

		if !model.HasExtension(name, r.settings.Extension) {
			r.progress(ProgressEvent{Message: fmt.Sprintf("Ignoring, not an %s file: %s", r.settings.Extension, name), Level: LevelVerbose, File: name})
			summary.Ignore()
			continue
		}

		r.progress(ProgressEvent{Message: fmt.Sprintf("--- Start: %s ---", name), Level: LevelVerbose, File: name})
		result := r.ProcessFile(path)
		summary.Add(result)
		if result.OK() {
			r.progress(ProgressEvent{Message: fmt.Sprintf("Done: %s -> %s", result.Name, result.NewName), Level: LevelSuccess, File: name})
		} else {
			r.progress(ProgressEvent{Message: fmt.Sprintf("Error processing %s: %v", name, result.Err), Level: LevelError, File: name})
		}
	}

	return summary, nil
}

// ProcessFile strips the tags of one file and renames it.
//
// The steps run in a fixed order: open, read the artist initial, strip,
// save, resolve a free name, rename. Any failure stops the sequence and is
// returned in the result; nothing panics past this boundary. The tag handle
// is always released before ProcessFile returns.
func (r *Runner) ProcessFile(path string) model.FileResult {
	file := model.NewAudioFile(path)
	result := model.FileResult{Name: file.Name, NewName: file.Name}

	tag, err := r.tagger.Open(path)
	if err != nil {
		result.Err = err
		return result
	}
	defer tag.Close()

	if !tag.HasFrames() {
		r.progress(ProgressEvent{Message: fmt.Sprintf("No ID3 tag, continuing with an empty tag: %s", file.Name), Level: LevelWarning, File: file.Name})
	}

	initial := audio.ArtistInitial(tag, r.settings.FallbackInitial)
	result.Initial = initial.Value
	if initial.Fallback() {
		r.progress(ProgressEvent{Message: fmt.Sprintf("Using '%s' as initial (%s): %s", initial.Value, initial.Reason, file.Name), Level: LevelWarning, File: file.Name})
	}

	report := r.tagger.Strip(tag)
	result.ArtistRemoved = report.ArtistRemoved
	result.TitleRemoved = report.TitleRemoved
	result.PicturesRemoved = report.PicturesRemoved
	r.reportStrip(file.Name, report)

	if err := r.tagger.Save(path, tag); err != nil {
		result.Err = err
		return result
	}
	r.progress(ProgressEvent{Message: fmt.Sprintf("Saved tag changes: %s", file.Name), Level: LevelVerbose, File: file.Name})

	candidate, err := r.resolve(file, initial.Value)
	if err != nil {
		result.Err = err
		return result
	}

	newPath := candidate.Path()
	if err := ioutils.RenameNoClobber(path, newPath); err != nil {
		result.Err = errors.Wrapf(err, "rename %s", file.Name)
		return result
	}
	result.NewName = candidate.FileName()
	result.Renamed = true
	r.progress(ProgressEvent{Message: fmt.Sprintf("Renamed: '%s' -> '%s'", file.Name, result.NewName), Level: LevelInfo, File: file.Name})

	return result
}

// resolve picks the first free name for file on today's date.
func (r *Runner) resolve(file model.AudioFile, initial string) (model.RenameCandidate, error) {
	base := model.BaseName(r.now(), r.settings.DateFormat, initial)

	suffix, err := ioutils.ResolveUniqueSuffix(file.Dir, base, file.Ext, r.settings.MaxRenameAttempts)
	if err != nil {
		return model.RenameCandidate{}, err
	}

	return model.RenameCandidate{Dir: file.Dir, Base: base, Ext: file.Ext, Suffix: suffix}, nil
}

func (r *Runner) reportStrip(name string, report audio.StripReport) {
	if report.ArtistRemoved {
		r.progress(ProgressEvent{Message: fmt.Sprintf("Cleared artist tag: %s", name), Level: LevelVerbose, File: name})
	}
	if report.TitleRemoved {
		r.progress(ProgressEvent{Message: fmt.Sprintf("Cleared title tag: %s", name), Level: LevelVerbose, File: name})
	}
	if report.PicturesRemoved > 0 {
		r.progress(ProgressEvent{Message: fmt.Sprintf("Removed %d cover image(s): %s", report.PicturesRemoved, name), Level: LevelInfo, File: name})
	} else {
		r.progress(ProgressEvent{Message: fmt.Sprintf("No cover image found: %s", name), Level: LevelVerbose, File: name})
	}
}

func (r *Runner) progress(event ProgressEvent) {
	if r.onProgress != nil {
		r.onProgress(event)
	}
}
