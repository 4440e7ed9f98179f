package audio

import (
	"github.com/bogem/id3v2"
)

// Frame names understood by id3v2's CommonID.
const (
	artistFrame  = "Artist"
	titleFrame   = "Title"
	pictureFrame = "Attached picture"
)

// TagEditAction defines how to handle an ID3 frame group while stripping.
type TagEditAction int

const (
	// TagDelete removes every frame of the group.
	TagDelete TagEditAction = iota

	// TagKeep leaves the frames unchanged.
	TagKeep
)

// StripConfig holds the action for each frame group the stripper handles.
//
// Example:
//
//	cfg := &StripConfig{
//	    Artist:   TagDelete, // Remove TPE1
//	    Title:    TagKeep,   // Keep TIT2
//	    CoverArt: TagDelete, // Remove every APIC frame
//	}
type StripConfig struct {
	// Artist controls the TPE1 (Lead artist) frame.
	Artist TagEditAction

	// Title controls the TIT2 (Title) frame.
	Title TagEditAction

	// CoverArt controls all APIC (Attached picture) frames.
	CoverArt TagEditAction
}

// DefaultStripConfig returns a configuration that deletes artist, title
// and all cover art.
func DefaultStripConfig() *StripConfig {
	return &StripConfig{
		Artist:   TagDelete,
		Title:    TagDelete,
		CoverArt: TagDelete,
	}
}

// StripReport describes what Strip removed from a tag.
type StripReport struct {
	ArtistRemoved   bool
	TitleRemoved    bool
	PicturesRemoved int
}

// Tagger opens, strips and saves ID3 tags of MP3 files.
//
// Stripping is split in two phases so that the artist initial is always
// read before the artist frame can be deleted:
//
//	tagger := NewTagger(DefaultStripConfig())
//
//	tag, err := tagger.Open(path)
//	if err != nil {
//	    return err
//	}
//	defer tag.Close()
//
//	initial := ArtistInitial(tag, DefaultFallbackInitial) // phase 1: read
//	report := tagger.Strip(tag)                          // phase 2: mutate
//	err = tagger.Save(path, tag)
type Tagger struct {
	config *StripConfig
}

// NewTagger creates a new Tagger with the given configuration.
//
// If config is nil, DefaultStripConfig() is used.
func NewTagger(config *StripConfig) *Tagger {
	if config == nil {
		config = DefaultStripConfig()
	}
	return &Tagger{config: config}
}

// Open parses all ID3v2 frames of the file at path.
//
// A file without an ID3v2 tag yields an empty tag rather than an error, so
// callers can treat it like any other tag set. Errors are *FileError values
// of kind ErrNotFound or ErrParse.
func (t *Tagger) Open(path string) (*id3v2.Tag, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, openError(path, err)
	}
	return tag, nil
}

// Strip deletes the configured frame groups from tag.
//
// A missing frame is not an error; the report only lists what was actually
// present and removed. Frames outside the three groups are left alone.
func (t *Tagger) Strip(tag *id3v2.Tag) StripReport {
	var report StripReport

	if t.config.Artist == TagDelete {
		report.ArtistRemoved = deleteFrames(tag, tag.CommonID(artistFrame)) > 0
	}

	if t.config.Title == TagDelete {
		report.TitleRemoved = deleteFrames(tag, tag.CommonID(titleFrame)) > 0
	}

	if t.config.CoverArt == TagDelete {
		report.PicturesRemoved = deleteFrames(tag, tag.CommonID(pictureFrame))
	}

	return report
}

// Save writes tag back into the file at path.
//
// A tag left without frames is removed from the file entirely.
func (t *Tagger) Save(path string, tag *id3v2.Tag) error {
	if err := tag.Save(); err != nil {
		return &FileError{Kind: ErrSave, Path: path, Err: err}
	}
	return nil
}

// deleteFrames removes all frames with the given ID and returns how many
// there were.
func deleteFrames(tag *id3v2.Tag, id string) int {
	n := len(tag.GetFrames(id))
	if n > 0 {
		tag.DeleteFrames(id)
	}
	return n
}
