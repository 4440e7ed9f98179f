package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/handiism/mp3tools/internal/audio"
	"github.com/spf13/pflag"
)

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("dir", "", "")
	flags.String("log-file", "", "")
	flags.Bool("verbose", false, "")
	return flags
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.Extension != ".mp3" {
		t.Errorf("Extension = %q, want .mp3", s.Extension)
	}
	if s.DateFormat != "20060102" {
		t.Errorf("DateFormat = %q, want 20060102", s.DateFormat)
	}
	if s.FallbackInitial != "X" {
		t.Errorf("FallbackInitial = %q, want X", s.FallbackInitial)
	}
	if !s.StripArtist || !s.StripTitle || !s.StripCoverArt {
		t.Error("all strip options should default to true")
	}
	if err := s.Validate(); err != nil {
		t.Errorf("default settings should validate: %v", err)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing.json"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := DefaultSettings()
	if s.TargetDir != want.TargetDir || s.LogFile != want.LogFile || s.MaxRenameAttempts != want.MaxRenameAttempts {
		t.Errorf("Load() = %+v, want defaults %+v", s, want)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"target_dir": "/music/inbox", "strip_title": false, "fallback_initial": "_"}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.TargetDir != "/music/inbox" {
		t.Errorf("TargetDir = %q, want /music/inbox", s.TargetDir)
	}
	if s.StripTitle {
		t.Error("StripTitle should be false from file")
	}
	if s.FallbackInitial != "_" {
		t.Errorf("FallbackInitial = %q, want _", s.FallbackInitial)
	}
	if !s.StripArtist {
		t.Error("StripArtist should keep its default")
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path, nil); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestLoad_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"target_dir": "/from/file", "log_file": "/from/file.log"}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("MP3STRIP_TARGET_DIR", "/from/env")
	t.Setenv("MP3STRIP_LOG_FILE", "/from/env.log")
	t.Setenv("MP3STRIP_STRIP_COVER_ART", "false")

	flags := testFlags()
	if err := flags.Parse([]string{"--dir", "/from/flag"}); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path, flags)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.TargetDir != "/from/flag" {
		t.Errorf("TargetDir = %q, want flag value", s.TargetDir)
	}
	if s.LogFile != "/from/env.log" {
		t.Errorf("LogFile = %q, want env value", s.LogFile)
	}
	if s.StripCoverArt {
		t.Error("StripCoverArt should be false from env")
	}
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"empty dir", func(s *Settings) { s.TargetDir = "" }},
		{"extension without dot", func(s *Settings) { s.Extension = "mp3" }},
		{"bare dot extension", func(s *Settings) { s.Extension = "." }},
		{"empty date format", func(s *Settings) { s.DateFormat = "" }},
		{"long fallback", func(s *Settings) { s.FallbackInitial = "XY" }},
		{"empty fallback", func(s *Settings) { s.FallbackInitial = "" }},
		{"zero attempts", func(s *Settings) { s.MaxRenameAttempts = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(s)
			if err := s.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSettings_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	s := DefaultSettings()
	s.TargetDir = "/music/inbox"
	s.StripTitle = false
	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if *loaded != *s {
		t.Errorf("Load() = %+v, want %+v", loaded, s)
	}
}

func TestSettings_ToStripConfig(t *testing.T) {
	s := DefaultSettings()
	s.StripTitle = false

	cfg := s.ToStripConfig()
	if cfg.Artist != audio.TagDelete || cfg.CoverArt != audio.TagDelete {
		t.Error("artist and cover art should be deleted")
	}
	if cfg.Title != audio.TagKeep {
		t.Error("title should be kept")
	}
}
