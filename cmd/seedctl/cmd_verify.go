// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/jitata-seed/internal/verifier"
)

func newVerifyCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the imported data and write a report",
		Long: `Fetches both collections, checks references and required fields,
prints the report and saves it to a file. Findings never fail the command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadClientConfig(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("out") {
				out = cfg.ReportPath
			}

			client, err := newRESTClient(cfg)
			if err != nil {
				return err
			}

			logger := newLogger(cmd, cfg.Debug)
			report := verifier.New(client, verifier.Collections{
				Series: cfg.SeriesCollection,
				Models: cfg.ModelsCollection,
			}, logger).Run(cmd.Context())

			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", report); err != nil {
				return err
			}
			if err := report.WriteFile(out); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Report saved to: %s\n", out)
			return err
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "report path (default $SEED_REPORT_PATH or labubu_verification_report.txt)")
	return cmd
}
