package audio

import (
	"github.com/bogem/id3v2"
	ioutils "github.com/handiism/mp3tools/internal/io"
)

// CoverStatus is the outcome of a cover-art check.
type CoverStatus int

const (
	// CoverAbsent means the tag has no attached picture (or no tag at all).
	CoverAbsent CoverStatus = iota

	// CoverPresent means at least one attached picture was found.
	CoverPresent

	// CoverError means the file could not be checked.
	CoverError
)

func (s CoverStatus) String() string {
	switch s {
	case CoverAbsent:
		return "absent"
	case CoverPresent:
		return "present"
	default:
		return "error"
	}
}

// ExitCode maps the status to the covercheck process exit code.
//
// Finding cover art exits non-zero so that scripts can flag such files:
//   - CoverAbsent:  0
//   - CoverPresent: 1
//   - CoverError:   2
func (s CoverStatus) ExitCode() int {
	switch s {
	case CoverAbsent:
		return 0
	case CoverPresent:
		return 1
	default:
		return 2
	}
}

// PictureInfo describes one attached picture frame.
type PictureInfo struct {
	// PictureType is the ID3 picture type (3 is the front cover).
	PictureType byte

	// MimeType and Description are taken from the frame header.
	MimeType    string
	Description string

	// Size is the length of the embedded image data in bytes.
	Size int

	// Image holds the decoded format and dimensions. It is zero when the
	// payload is not a supported image.
	Image ioutils.ImageInfo
}

// CoverReport is the result of CoverDetector.Detect.
type CoverReport struct {
	Path   string
	Status CoverStatus

	// Count is the number of attached picture frames.
	Count int

	// Pictures describes each attached picture frame.
	Pictures []PictureInfo

	// Err is set when Status is CoverError. It is a *FileError of kind
	// ErrNotFound or ErrParse.
	Err error
}

// CoverDetector checks MP3 files for embedded cover art.
//
// Detection is read-only; the file is never modified.
//
// Example:
//
//	report := NewCoverDetector().Detect("/music/song.mp3")
//	if report.Status == CoverPresent {
//	    fmt.Printf("%d picture(s)\n", report.Count)
//	}
//	os.Exit(report.Status.ExitCode())
type CoverDetector struct {
	images *ioutils.ImageService
}

// NewCoverDetector creates a new CoverDetector.
func NewCoverDetector() *CoverDetector {
	return &CoverDetector{images: ioutils.NewImageService()}
}

// Detect reports whether the file at path has attached picture frames.
//
// Failures never escape as panics or bare errors: they are returned as a
// report with Status CoverError and the cause in Err.
func (d *CoverDetector) Detect(path string) CoverReport {
	report := CoverReport{Path: path, Status: CoverAbsent}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true, ParseFrames: []string{pictureFrame}})
	if err != nil {
		report.Status = CoverError
		report.Err = openError(path, err)
		return report
	}
	defer tag.Close()

	if !tag.HasFrames() {
		return report
	}

	pictureID := tag.CommonID(pictureFrame)
	for id, frames := range tag.AllFrames() {
		if id != pictureID {
			continue
		}
		for _, f := range frames {
			report.Count++
			if pf, ok := f.(id3v2.PictureFrame); ok {
				report.Pictures = append(report.Pictures, d.describe(pf))
			}
		}
	}

	if report.Count > 0 {
		report.Status = CoverPresent
	}
	return report
}

func (d *CoverDetector) describe(pf id3v2.PictureFrame) PictureInfo {
	info := PictureInfo{
		PictureType: pf.PictureType,
		MimeType:    pf.MimeType,
		Description: pf.Description,
		Size:        len(pf.Picture),
	}
	if img, err := d.images.Describe(pf.Picture); err == nil {
		info.Image = img
	}
	return info
}
