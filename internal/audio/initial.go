package audio

import (
	"strings"
	"unicode/utf8"

	"github.com/bogem/id3v2"
	ioutils "github.com/handiism/mp3tools/internal/io"
	"golang.org/x/text/unicode/norm"
)

// DefaultFallbackInitial is used when a file has no usable artist.
const DefaultFallbackInitial = "X"

// FallbackReason explains why the fallback initial was used.
type FallbackReason int

const (
	// NoFallback means the initial came from the artist frame.
	NoFallback FallbackReason = iota

	// ArtistMissing means the tag has no artist frame.
	ArtistMissing

	// ArtistEmpty means the artist text is empty or whitespace only.
	ArtistEmpty

	// ArtistUnusable means the first character cannot appear in a file name.
	ArtistUnusable
)

func (r FallbackReason) String() string {
	switch r {
	case ArtistMissing:
		return "artist frame missing"
	case ArtistEmpty:
		return "artist frame empty"
	case ArtistUnusable:
		return "artist initial unusable in file name"
	default:
		return "none"
	}
}

// Initial is the character derived from a tag's artist frame.
type Initial struct {
	// Value is the single character to put into the file name.
	Value string

	// Artist is the normalized artist text the value was taken from.
	Artist string

	// Reason is NoFallback unless Value is the fallback.
	Reason FallbackReason
}

// Fallback reports whether Value is the fallback character.
func (i Initial) Fallback() bool {
	return i.Reason != NoFallback
}

// ArtistInitial returns the first character of the tag's artist.
//
// The artist text is cut at the first NUL (ID3v2.4 multi-value separator),
// normalized to NFC and trimmed. The first character is then made safe for
// file names. If the frame is missing, empty after trimming, or its first
// character sanitizes to nothing, fallback is returned instead.
//
// ArtistInitial must run before Strip removes the artist frame.
//
// Example:
//
//	tag.SetArtist("  Björk")
//	ArtistInitial(tag, "X").Value // "B"
func ArtistInitial(tag *id3v2.Tag, fallback string) Initial {
	if tag.GetLastFrame(tag.CommonID(artistFrame)) == nil {
		return Initial{Value: fallback, Reason: ArtistMissing}
	}

	artist := tag.Artist()
	if i := strings.IndexByte(artist, 0); i >= 0 {
		artist = artist[:i]
	}
	artist = strings.TrimSpace(norm.NFC.String(artist))
	if artist == "" {
		return Initial{Value: fallback, Reason: ArtistEmpty}
	}

	r, _ := utf8.DecodeRuneInString(artist)
	value := ioutils.SanitizeFileName(string(r))
	if value == "" {
		return Initial{Value: fallback, Artist: artist, Reason: ArtistUnusable}
	}

	return Initial{Value: value, Artist: artist}
}
