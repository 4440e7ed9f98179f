package audio

import (
	"testing"

	"github.com/handiism/mp3tools/internal/audio/audiotest"
)

func TestArtistInitial(t *testing.T) {
	tests := []struct {
		name   string
		track  audiotest.Track
		want   string
		reason FallbackReason
	}{
		{"plain", audiotest.Track{Artist: "Radiohead"}, "R", NoFallback},
		{"leading whitespace", audiotest.Track{Artist: "  Björk"}, "B", NoFallback},
		{"non-ascii first", audiotest.Track{Artist: "Ólafur Arnalds"}, "Ó", NoFallback},
		{"decomposed accent", audiotest.Track{Artist: "E\u0301milie"}, "\u00c9", NoFallback},
		{"cjk", audiotest.Track{Artist: "坂本龍一"}, "坂", NoFallback},
		{"slash", audiotest.Track{Artist: "/dev/null"}, "_", NoFallback},
		{"lone dot", audiotest.Track{Artist: ".hack"}, "X", ArtistUnusable},
		{"empty", audiotest.Track{EmptyArtist: true}, "X", ArtistEmpty},
		{"whitespace only", audiotest.Track{Artist: " \t "}, "X", ArtistEmpty},
		{"missing", audiotest.Track{Title: "Only a title"}, "X", ArtistMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := audiotest.WriteTagged(t, t.TempDir(), "song.mp3", tt.track)
			tag := audiotest.ReadTag(t, path)

			got := ArtistInitial(tag, DefaultFallbackInitial)
			if got.Value != tt.want {
				t.Errorf("Value = %q, want %q", got.Value, tt.want)
			}
			if got.Reason != tt.reason {
				t.Errorf("Reason = %v, want %v", got.Reason, tt.reason)
			}
			if got.Fallback() != (tt.reason != NoFallback) {
				t.Errorf("Fallback() = %v", got.Fallback())
			}
		})
	}
}

func TestArtistInitial_UntaggedFile(t *testing.T) {
	path := audiotest.WriteUntagged(t, t.TempDir(), "bare.mp3")
	tag := audiotest.ReadTag(t, path)

	got := ArtistInitial(tag, "Z")
	if got.Value != "Z" || got.Reason != ArtistMissing {
		t.Errorf("ArtistInitial() = %+v, want fallback Z for missing artist", got)
	}
}

func TestArtistInitial_BeforeStrip(t *testing.T) {
	path := audiotest.WriteTagged(t, t.TempDir(), "song.mp3", audiotest.Track{Artist: "Moby"})
	tag := audiotest.ReadTag(t, path)

	initial := ArtistInitial(tag, DefaultFallbackInitial)
	NewTagger(nil).Strip(tag)

	if initial.Value != "M" {
		t.Errorf("initial read before strip = %q, want M", initial.Value)
	}
	if after := ArtistInitial(tag, DefaultFallbackInitial); after.Value != "X" {
		t.Errorf("initial read after strip = %q, want fallback X", after.Value)
	}
}
