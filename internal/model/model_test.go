package model

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func TestNewAudioFile(t *testing.T) {
	f := NewAudioFile(filepath.Join("music", "Song Title.MP3"))

	if f.Dir != "music" {
		t.Errorf("Dir = %q, want %q", f.Dir, "music")
	}
	if f.Name != "Song Title.MP3" {
		t.Errorf("Name = %q, want %q", f.Name, "Song Title.MP3")
	}
	if f.Ext != ".MP3" {
		t.Errorf("Ext = %q, want %q", f.Ext, ".MP3")
	}
}

func TestHasExtension(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"song.mp3", true},
		{"song.MP3", true},
		{"song.Mp3", true},
		{"song.mp3.txt", false},
		{"song.flac", false},
		{"mp3", false},
		{".mp3", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasExtension(tt.name, ".mp3"); got != tt.want {
				t.Errorf("HasExtension(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestBaseName(t *testing.T) {
	now := time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)

	if got := BaseName(now, DefaultDateLayout, "X"); got != "20240101X" {
		t.Errorf("BaseName() = %q, want %q", got, "20240101X")
	}
	if got := BaseName(now, "", "B"); got != "20240101B" {
		t.Errorf("BaseName() with empty layout = %q, want %q", got, "20240101B")
	}
	if got := BaseName(now, "2006-01-02_", "B"); got != "2024-01-01_B" {
		t.Errorf("BaseName() with custom layout = %q, want %q", got, "2024-01-01_B")
	}
}

func TestRenameCandidate(t *testing.T) {
	tests := []struct {
		suffix int
		want   string
	}{
		{0, "20240101X.mp3"},
		{1, "20240101X_1.mp3"},
		{2, "20240101X_2.mp3"},
	}

	for _, tt := range tests {
		c := RenameCandidate{Dir: "music", Base: "20240101X", Ext: ".mp3", Suffix: tt.suffix}
		if got := c.FileName(); got != tt.want {
			t.Errorf("FileName() = %q, want %q", got, tt.want)
		}
		if got := c.Path(); got != filepath.Join("music", tt.want) {
			t.Errorf("Path() = %q, want %q", got, filepath.Join("music", tt.want))
		}
	}
}

func TestRunSummary(t *testing.T) {
	var s RunSummary

	s.Add(FileResult{Name: "a.mp3"})
	s.Add(FileResult{Name: "b.mp3"})
	s.Add(FileResult{Name: "c.mp3", Err: errors.New("boom")})
	s.Skip()
	s.Ignore()
	s.Ignore()

	if s.Processed != 2 || s.Errored != 1 || s.Skipped != 1 || s.Ignored != 2 {
		t.Errorf("unexpected summary: %s", s)
	}
	if s.Total() != 6 {
		t.Errorf("Total() = %d, want 6", s.Total())
	}
	if s.String() != "processed=2 skipped=1 ignored=2 errored=1" {
		t.Errorf("String() = %q", s.String())
	}
}
