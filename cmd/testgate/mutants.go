package main

import (
	"encoding/json"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/testgate/core/pkg/assess"
)

func newMutantsCmd(verbose *bool) *cobra.Command {
	var (
		patterns []string
		workers  int
	)

	cmd := &cobra.Command{
		Use:   "mutants <path>",
		Short: "List mutant assets declared in a source tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(*verbose)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			start := time.Now()
			inventory, err := assess.ScanDir(cmd.Context(), args[0], patterns, workers)
			if err != nil {
				return err
			}

			log.Debug("scan finished",
				zap.Int("files", len(inventory)),
				zap.Int("assets", inventory.CountAssets()),
				zap.Duration("duration", time.Since(start)))

			output := struct {
				Files  assess.Inventory `json:"files"`
				Assets int              `json:"assets"`
			}{
				Files:  inventory,
				Assets: inventory.CountAssets(),
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(output)
		},
	}

	cmd.Flags().StringSliceVarP(&patterns, "pattern", "p", nil, "glob patterns for candidate files (default **/*.go)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "parallel file parsers (default GOMAXPROCS)")
	return cmd
}
