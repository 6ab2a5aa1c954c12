package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"shrink/internal/batch"
	"shrink/internal/config"
	"shrink/internal/encoder"
	"shrink/internal/history"
	"shrink/internal/logging"
	"shrink/internal/preflight"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var skipPreflight bool

	cmd := &cobra.Command{
		Use:   "run [directory]",
		Short: "Compress every supported video in a directory",
		Long: `Compress every supported video (.mp4, .avi, .mov, .mkv) directly inside
the given directory, writing each output alongside its input with the
configured suffix. Without a directory argument the path is read from an
interactive prompt.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			dir, err := resolveTargetDirectory(cmd, args)
			if err != nil {
				return err
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			if !skipPreflight {
				results := preflight.RunAll(cfg, dir)
				for _, result := range results {
					kind := statusOK
					if !result.Passed {
						kind = statusError
					}
					fmt.Fprintln(out, renderStatusLine(result.Name, kind, result.Detail, colorize))
				}
				if !preflight.Passed(results) {
					return errors.New("preflight checks failed; nothing was processed")
				}
			}

			// One run at a time. Outputs are deterministically named, so two
			// concurrent batches would encode the same files twice.
			lock := flock.New(filepath.Join(cfg.Paths.StateDir, "shrink.lock"))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire run lock: %w", err)
			}
			if !locked {
				return errors.New("another shrink run is already in progress")
			}
			defer func() { _ = lock.Unlock() }()

			runner := batch.NewRunner(
				encoder.NewFFmpeg(cfg.Encoder),
				logger,
				newConsoleReporter(out, colorize),
			)

			startedAt := time.Now()
			report, err := runner.Run(cmd.Context(), dir)
			if err != nil {
				return err
			}

			if cfg.History.Enabled && report.Summary.TotalFiles > 0 {
				if err := recordHistory(cmd, cfg, report, startedAt); err != nil {
					// History is bookkeeping; a failed insert must not turn a
					// finished batch into an error.
					logger.Warn("record history", "error", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipPreflight, "skip-preflight", false, "Skip directory, encoder, and disk-space checks")
	return cmd
}

func resolveTargetDirectory(cmd *cobra.Command, args []string) (string, error) {
	var dir string
	if len(args) > 0 {
		dir = cleanDirectoryInput(args[0])
	} else {
		prompted, err := promptForDirectory(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return "", err
		}
		dir = prompted
	}
	if dir == "" {
		return "", errors.New("directory path required")
	}
	return config.ExpandPath(dir)
}

func recordHistory(cmd *cobra.Command, cfg *config.Config, report batch.Report, startedAt time.Time) error {
	store, err := history.Open(cfg.History.Dir)
	if err != nil {
		return err
	}
	defer store.Close()

	run := history.NewRun(report, startedAt)
	return store.RecordRun(cmd.Context(), run, report.Outcomes)
}
