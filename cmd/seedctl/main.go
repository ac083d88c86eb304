// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command seedctl seeds the catalog backend from a JSON file and verifies
// what the backend holds afterwards.
//
// # Commands
//
//	seedctl import [--file sample_data.json]
//	seedctl verify [--out labubu_verification_report.txt]
//	seedctl token  [--role service_role] [--ttl 0]
//
// Connection settings come from SEED_ENDPOINT and SEED_CREDENTIAL; missing
// values are asked for on the terminal.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/taibuivan/jitata-seed/internal/platform/config"
	"github.com/taibuivan/jitata-seed/internal/platform/constants"
	"github.com/taibuivan/jitata-seed/internal/platform/restclient"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "seedctl",
		Short:        "Seed and verify the collectible catalog backend",
		Version:      constants.AppVersion,
		SilenceUsage: true,
	}

	root.AddCommand(newImportCmd(), newVerifyCmd(), newTokenCmd())
	return root
}

// newLogger writes progress lines to stderr so stdout carries only results.
func newLogger(cmd *cobra.Command, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
}

// loadClientConfig reads the environment and asks for whatever is missing.
func loadClientConfig(cmd *cobra.Command) (*config.Client, error) {
	cfg, err := config.LoadClient()
	if err != nil {
		return nil, err
	}

	if cfg.Validate() != nil {
		if err := config.Prompt(cfg, cmd.InOrStdin(), cmd.ErrOrStderr()); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func newRESTClient(cfg *config.Client) (*restclient.Client, error) {
	opts := []restclient.Option{}
	if cfg.HTTPTimeout > 0 {
		opts = append(opts, restclient.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}))
	}
	if cfg.RequestsPerSecond > 0 {
		opts = append(opts, restclient.WithRateLimit(cfg.RequestsPerSecond))
	}

	client, err := restclient.New(restclient.Config{Endpoint: cfg.Endpoint, Credential: cfg.Credential}, opts...)
	if err != nil {
		return nil, fmt.Errorf("seedctl: %w", err)
	}
	return client, nil
}
