// Package config provides configuration management for mp3strip.
//
// This package handles:
//   - Default configuration values
//   - Loading settings from a JSON file, MP3STRIP_* environment variables
//     and command-line flags
//   - Saving settings back to JSON
//   - Conversion to the tagger's StripConfig
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Processes ~/Downloads/*.mp3
//	// Strips artist, title and cover art
//	// Logs to mp3strip.log
//
// # Loading
//
//	settings, err := config.Load("/path/to/config.json", cmd.Flags())
//	if err != nil {
//	    // Malformed file or undecodable value
//	}
//
// A missing file yields the defaults. MP3STRIP_TARGET_DIR=/music overrides
// the file, and an explicit --dir flag overrides both.
//
// # Saving Settings
//
//	settings.TargetDir = "/music/inbox"
//	err := settings.Save("/path/to/config.json")
package config
