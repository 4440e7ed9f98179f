package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/handiism/mp3tools/internal/batch"
	"github.com/handiism/mp3tools/internal/config"
	"github.com/handiism/mp3tools/internal/logging"
	"github.com/handiism/mp3tools/internal/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	exitOK          = 0
	exitFatal       = 1
	exitUsage       = 64
	exitInterrupted = 130
)

// usageError marks errors caused by the command line itself.
type usageError struct{ error }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := exitOK
	root := newRootCmd(ctx, stderr, &code)
	root.AddCommand(newInitConfigCmd())

	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if cmd, err := root.ExecuteC(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		var uerr usageError
		if errors.As(err, &uerr) {
			fmt.Fprint(stderr, cmd.UsageString())
			return exitUsage
		}
		return exitFatal
	}

	return code
}

func newRootCmd(ctx context.Context, stderr io.Writer, code *int) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "mp3strip",
		Short: "Strip artist, title and cover art from MP3 files and rename them",
		Long: `Strip the artist, title and cover-art frames from every MP3 file in a
directory, then rename each file to {YYYYMMDD}{artist initial}.mp3.

Settings are read from the config file, then MP3STRIP_* environment
variables, then flags.`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			if err := settings.Validate(); err != nil {
				return errors.Wrap(err, "invalid settings")
			}

			logger, closer, err := logging.New(logging.Options{
				Console:    stderr,
				File:       settings.LogFile,
				MaxSizeMB:  settings.LogMaxSizeMB,
				MaxBackups: settings.LogMaxBackups,
				Compress:   settings.LogCompress,
				Append:     settings.LogAppend,
				Verbose:    settings.Verbose,
			})
			if err != nil {
				return errors.Wrap(err, "open log")
			}
			defer closer.Close()

			*code = runBatch(ctx, logger, settings)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to a JSON config file")
	cmd.Flags().String("dir", "", "Directory to process (overrides config)")
	cmd.Flags().String("log-file", "", "Run log path (overrides config)")
	cmd.Flags().BoolP("verbose", "v", false, "Show debug output")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	return cmd
}

func newInitConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config <path>",
		Short: "Write the default settings to a JSON file",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.DefaultSettings().Save(args[0]); err != nil {
				return errors.Wrapf(err, "write config %s", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default settings to %s\n", args[0])
			return nil
		},
	}
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

// runBatch processes the target directory and logs the summary.
func runBatch(ctx context.Context, logger *logrus.Logger, settings *config.Settings) int {
	runner := batch.NewRunner(settings, progressLogger(logger))

	summary, err := runner.Run(ctx)
	if summary != nil {
		logSummary(logger, summary, settings.LogFile)
	}

	switch {
	case err == nil:
		logger.WithField(logging.OutcomeKey, logging.OutcomeSuccess).Info("Run complete")
		return exitOK
	case ctx.Err() != nil:
		logger.Warn("Interrupted, stopped before the remaining files")
		return exitInterrupted
	default:
		logger.WithError(err).Error("Run aborted")
		return exitFatal
	}
}

// progressLogger maps batch progress events onto logrus levels.
func progressLogger(logger *logrus.Logger) func(batch.ProgressEvent) {
	return func(event batch.ProgressEvent) {
		entry := logrus.NewEntry(logger)
		if event.File != "" {
			entry = entry.WithField("file", event.File)
		}

		switch event.Level {
		case batch.LevelError:
			entry.Error(event.Message)
		case batch.LevelWarning:
			entry.Warn(event.Message)
		case batch.LevelSuccess:
			entry.WithField(logging.OutcomeKey, logging.OutcomeSuccess).Info(event.Message)
		case batch.LevelVerbose:
			entry.Debug(event.Message)
		default:
			entry.Info(event.Message)
		}
	}
}

func logSummary(logger *logrus.Logger, summary *model.RunSummary, logFile string) {
	rule := strings.Repeat("=", 30)

	logger.Info(rule)
	logger.Info("Run summary")
	logger.Infof("Processed: %d file(s)", summary.Processed)
	logger.Infof("Skipped: %d item(s)", summary.Skipped)
	logger.Infof("Ignored: %d file(s)", summary.Ignored)
	if summary.Errored > 0 {
		logger.Errorf("Errored: %d file(s)", summary.Errored)
	} else {
		logger.Infof("Errored: %d file(s)", summary.Errored)
	}
	if logFile != "" {
		logger.Infof("Full log: %s", logFile)
	}
	logger.Info(rule)
}
