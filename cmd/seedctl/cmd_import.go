// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"github.com/spf13/cobra"

	"github.com/taibuivan/jitata-seed/internal/catalog"
	"github.com/taibuivan/jitata-seed/internal/importer"
)

func newImportCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import series and models from a seed file",
		Long: `Reads the seed file, POSTs every series and then every model.

Models whose series_name does not match an imported series are skipped.
Per-record failures are reported and never stop the run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadClientConfig(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("file") {
				file = cfg.InputPath
			}

			// The seed file is read before any network call.
			doc, err := catalog.LoadSeedDocument(file)
			if err != nil {
				return err
			}

			client, err := newRESTClient(cfg)
			if err != nil {
				return err
			}

			logger := newLogger(cmd, cfg.Debug)
			runner := importer.New(client, importer.Collections{
				Series: cfg.SeriesCollection,
				Models: cfg.ModelsCollection,
			}, logger)

			summary := runner.Run(cmd.Context(), doc)
			return summary.WriteText(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "seed file (default $SEED_INPUT_PATH or sample_data.json)")
	return cmd
}
