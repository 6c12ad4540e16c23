package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/testgate/core/pkg/depend"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config <file>",
		Short: "Load a run configuration file and echo the effective flags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := depend.LoadConfig(args[0])
			if err != nil {
				return err
			}

			output := struct {
				AutoMark      bool `json:"automark_dependency"`
				AcceptXFail   bool `json:"accept_xfail"`
				IgnoreUnknown bool `json:"ignore_unknown_dependency"`
			}{cfg.AutoMark, cfg.AcceptXFail, cfg.IgnoreUnknown}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(output)
		},
	}
}
