package main

import (
	"fmt"
	"io"
	"os"

	"github.com/handiism/mp3tools/internal/audio"
	"github.com/handiism/mp3tools/internal/logging"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// exitUsage is returned for a bad invocation (EX_USAGE). It must not
// overlap the 0/1/2 outcome codes.
const exitUsage = 64

// usageError marks errors caused by the command line itself.
type usageError struct{ error }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var verbose bool
	code := 0

	cmd := &cobra.Command{
		Use:   "covercheck <mp3_path>",
		Short: "Check whether an MP3 file still has embedded cover art",
		Long: `Check whether an MP3 file's ID3 tag contains attached picture frames.

Exit codes:
  0   no cover art
  1   cover art found
  2   the file could not be checked
  64  usage error`,
		Args:          usageArgs(cobra.ExactArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closer, err := logging.New(logging.Options{Console: stderr, Verbose: verbose})
			if err != nil {
				return err
			}
			defer closer.Close()

			report := audio.NewCoverDetector().Detect(args[0])
			logReport(logger, report)
			printResult(stdout, report)

			code = report.Status.ExitCode()
			return nil
		},
	}

	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Describe each attached picture")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		var uerr usageError
		if errors.As(err, &uerr) {
			fmt.Fprint(stderr, cmd.UsageString())
			return exitUsage
		}
		return audio.CoverError.ExitCode()
	}

	return code
}

// usageArgs wraps a cobra argument validator so that its errors map to
// exitUsage.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

// printResult writes the single result line for report to w.
func printResult(w io.Writer, report audio.CoverReport) {
	switch report.Status {
	case audio.CoverPresent:
		fmt.Fprintf(w, "Result: '%s' still contains cover art (%d picture(s)).\n", report.Path, report.Count)
	case audio.CoverAbsent:
		fmt.Fprintf(w, "Result: '%s' contains no cover art.\n", report.Path)
	default:
		fmt.Fprintf(w, "Result: an error occurred while checking '%s'.\n", report.Path)
	}
}

func logReport(logger *logrus.Logger, report audio.CoverReport) {
	entry := logger.WithField("file", report.Path)

	switch report.Status {
	case audio.CoverError:
		entry.WithError(report.Err).Error("Cannot check file")
		return
	case audio.CoverAbsent:
		entry.Info("No attached picture frames found")
		return
	}

	entry.WithField("count", report.Count).Warn("Found attached picture frames")
	for i, pic := range report.Pictures {
		fields := logrus.Fields{
			"index": i,
			"type":  pic.PictureType,
			"mime":  pic.MimeType,
			"bytes": pic.Size,
		}
		if pic.Description != "" {
			fields["description"] = pic.Description
		}
		if pic.Image.Format != "" {
			fields["format"] = pic.Image.Format
			fields["size"] = fmt.Sprintf("%dx%d", pic.Image.Width, pic.Image.Height)
		}
		entry.WithFields(fields).Debug("Attached picture")
	}
}
