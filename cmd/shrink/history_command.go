package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"shrink/internal/config"
	"shrink/internal/history"
	"shrink/internal/stats"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded batch runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := openHistory(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.RecentRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No recorded runs")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				reduction := stats.Reduction(run.OriginalMB, run.CompressedMB)
				rows = append(rows, []string{
					shortID(run.ID),
					run.StartedAt.Local().Format(time.DateTime),
					run.Directory,
					fmt.Sprintf("%d", run.TotalFiles),
					fmt.Sprintf("%d", run.Succeeded),
					fmt.Sprintf("%d", run.Failed),
					fmt.Sprintf("%.2f", run.OriginalMB),
					fmt.Sprintf("%.2f", run.CompressedMB),
					fmt.Sprintf("%.1f%%", reduction),
					stats.FormatElapsed(time.Duration(run.ElapsedSeconds * float64(time.Second))),
				})
			}
			headers := []string{"ID", "Started", "Directory", "Files", "OK", "Failed", "Original MB", "Compressed MB", "Reduction", "Elapsed"}
			aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight}
			fmt.Fprintln(out, renderTable(headers, rows, aligns))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list")
	cmd.AddCommand(newHistoryShowCommand(ctx))
	return cmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show per-file results of a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := openHistory(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			runID, err := resolveRunID(cmd, store, args[0])
			if err != nil {
				return err
			}

			files, err := store.RunFiles(cmd.Context(), runID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(files) == 0 {
				fmt.Fprintln(out, "No files recorded for this run")
				return nil
			}

			rows := make([][]string, 0, len(files))
			for _, file := range files {
				detail := fmt.Sprintf("%.1f%%", file.ReductionPct)
				if file.Status != "ok" {
					detail = file.ErrorKind
				}
				rows = append(rows, []string{
					filepath.Base(file.Path),
					file.Status,
					fmt.Sprintf("%.2f", file.OriginalMB),
					fmt.Sprintf("%.2f", file.CompressedMB),
					detail,
				})
			}
			headers := []string{"File", "Status", "Original MB", "Compressed MB", "Reduction"}
			aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight}
			fmt.Fprintln(out, renderTable(headers, rows, aligns))
			return nil
		},
	}
}

func openHistory(cfg *config.Config) (*history.Store, error) {
	if !cfg.History.Enabled {
		return nil, errors.New("history is disabled in configuration")
	}
	return history.Open(cfg.History.Dir)
}

// resolveRunID accepts either a full run id or the short prefix the list
// command prints.
func resolveRunID(cmd *cobra.Command, store *history.Store, candidate string) (string, error) {
	if len(candidate) >= 36 {
		return candidate, nil
	}
	runs, err := store.RecentRuns(cmd.Context(), 1000)
	if err != nil {
		return "", err
	}
	for _, run := range runs {
		if shortID(run.ID) == candidate || run.ID == candidate {
			return run.ID, nil
		}
	}
	return "", fmt.Errorf("no recorded run matches %q", candidate)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
