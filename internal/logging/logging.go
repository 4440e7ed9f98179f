// Package logging builds the logrus loggers used by the mp3tools commands.
//
// Console output is rendered with lipgloss styles and one glyph per level.
// When a log file is configured, every entry is also written in plain text
// with a timestamp to a lumberjack-rotated file:
//
//	logger, closer, err := logging.New(logging.Options{
//	    Console: os.Stderr,
//	    File:    "mp3strip.log",
//	    Append:  true,
//	})
//	defer closer.Close()
//	logger.WithField(logging.OutcomeKey, logging.OutcomeSuccess).Info("done")
package logging

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	// Console receives styled output. Defaults to os.Stderr.
	Console io.Writer

	// File is the log file path. Empty disables the file sink.
	File string

	// MaxSizeMB, MaxBackups and Compress control rotation of File.
	MaxSizeMB  int
	MaxBackups int
	Compress   bool

	// Append keeps writing to an existing File. When false, the previous
	// log is rotated away and the run starts a fresh file.
	Append bool

	// Verbose enables debug entries.
	Verbose bool
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New creates a logger writing to the console and, optionally, a file.
//
// The returned io.Closer releases the log file and must be called once the
// logger is no longer used.
func New(opts Options) (*logrus.Logger, io.Closer, error) {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	logger := logrus.New()
	logger.SetOutput(console)
	logger.SetFormatter(NewConsoleFormatter())
	logger.SetLevel(logrus.InfoLevel)
	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	if opts.File == "" {
		return logger, nopCloser{}, nil
	}

	file := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		Compress:   opts.Compress,
	}
	if !opts.Append {
		if err := rotateExisting(file, opts.File); err != nil {
			return nil, nil, err
		}
	}

	logger.AddHook(newFileHook(file))
	return logger, file, nil
}

// rotateExisting moves a non-empty log out of the way so the run starts
// with an empty file.
func rotateExisting(file *lumberjack.Logger, path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) || (err == nil && info.Size() == 0) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "stat log file %s", path)
	}
	if err := file.Rotate(); err != nil {
		return errors.Wrapf(err, "rotate log file %s", path)
	}
	return nil
}
