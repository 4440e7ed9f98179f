package config

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/handiism/mp3tools/internal/audio"
	"github.com/handiism/mp3tools/internal/model"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every key when reading environment overrides,
// e.g. MP3STRIP_TARGET_DIR.
const EnvPrefix = "MP3STRIP"

// Settings holds all configuration options.
type Settings struct {
	// Batch settings
	TargetDir         string `json:"target_dir" mapstructure:"target_dir"`
	Extension         string `json:"extension" mapstructure:"extension"`
	MaxRenameAttempts int    `json:"max_rename_attempts" mapstructure:"max_rename_attempts"`

	// File naming
	DateFormat      string `json:"date_format" mapstructure:"date_format"`
	FallbackInitial string `json:"fallback_initial" mapstructure:"fallback_initial"`

	// Tag settings
	StripArtist   bool `json:"strip_artist" mapstructure:"strip_artist"`
	StripTitle    bool `json:"strip_title" mapstructure:"strip_title"`
	StripCoverArt bool `json:"strip_cover_art" mapstructure:"strip_cover_art"`

	// Log settings
	LogFile       string `json:"log_file" mapstructure:"log_file"`
	LogMaxSizeMB  int    `json:"log_max_size_mb" mapstructure:"log_max_size_mb"`
	LogMaxBackups int    `json:"log_max_backups" mapstructure:"log_max_backups"`
	LogCompress   bool   `json:"log_compress" mapstructure:"log_compress"`
	LogAppend     bool   `json:"log_append" mapstructure:"log_append"`
	Verbose       bool   `json:"verbose" mapstructure:"verbose"`
}

// flagKeys maps settings keys to the command-line flags that override them.
var flagKeys = map[string]string{
	"target_dir": "dir",
	"log_file":   "log-file",
	"verbose":    "verbose",
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		TargetDir:         filepath.Join(homeDir, "Downloads"),
		Extension:         ".mp3",
		MaxRenameAttempts: 10000,

		DateFormat:      model.DefaultDateLayout,
		FallbackInitial: audio.DefaultFallbackInitial,

		StripArtist:   true,
		StripTitle:    true,
		StripCoverArt: true,

		LogFile:       "mp3strip.log",
		LogMaxSizeMB:  10,
		LogMaxBackups: 3,
		LogCompress:   false,
		LogAppend:     true,
		Verbose:       false,
	}
}

// Load reads settings from a JSON file, the environment and flags.
//
// Sources are applied in increasing priority: defaults, the config file,
// MP3STRIP_* environment variables, then flags that were set explicitly.
// A missing config file is not an error; defaults are used instead. Either
// path or flags may be empty.
func Load(path string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	setDefaults(v, DefaultSettings())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, errors.Wrapf(err, "bind flag --%s", name)
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if filepath.Ext(path) == "" {
			v.SetConfigType("json")
		}
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, errors.Wrap(err, "decode settings")
	}

	return settings, nil
}

// setDefaults registers every field of s as a viper default. Registering
// all keys is also what makes AutomaticEnv visible to Unmarshal.
func setDefaults(v *viper.Viper, s *Settings) {
	v.SetDefault("target_dir", s.TargetDir)
	v.SetDefault("extension", s.Extension)
	v.SetDefault("max_rename_attempts", s.MaxRenameAttempts)
	v.SetDefault("date_format", s.DateFormat)
	v.SetDefault("fallback_initial", s.FallbackInitial)
	v.SetDefault("strip_artist", s.StripArtist)
	v.SetDefault("strip_title", s.StripTitle)
	v.SetDefault("strip_cover_art", s.StripCoverArt)
	v.SetDefault("log_file", s.LogFile)
	v.SetDefault("log_max_size_mb", s.LogMaxSizeMB)
	v.SetDefault("log_max_backups", s.LogMaxBackups)
	v.SetDefault("log_compress", s.LogCompress)
	v.SetDefault("log_append", s.LogAppend)
	v.SetDefault("verbose", s.Verbose)
}

// Validate checks that the settings can drive a batch run.
func (s *Settings) Validate() error {
	if s.TargetDir == "" {
		return errors.New("target_dir must not be empty")
	}
	if !strings.HasPrefix(s.Extension, ".") || len(s.Extension) < 2 {
		return errors.Errorf("extension %q must start with a dot", s.Extension)
	}
	if s.DateFormat == "" {
		return errors.New("date_format must not be empty")
	}
	if utf8.RuneCountInString(s.FallbackInitial) != 1 {
		return errors.Errorf("fallback_initial %q must be a single character", s.FallbackInitial)
	}
	if s.MaxRenameAttempts < 1 {
		return errors.Errorf("max_rename_attempts must be positive, got %d", s.MaxRenameAttempts)
	}
	return nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ToStripConfig converts settings to the tagger's StripConfig.
func (s *Settings) ToStripConfig() *audio.StripConfig {
	return &audio.StripConfig{
		Artist:   stripAction(s.StripArtist),
		Title:    stripAction(s.StripTitle),
		CoverArt: stripAction(s.StripCoverArt),
	}
}

func stripAction(strip bool) audio.TagEditAction {
	if strip {
		return audio.TagDelete
	}
	return audio.TagKeep
}
