// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/taibuivan/jitata-seed/internal/platform/constants"
	"github.com/taibuivan/jitata-seed/internal/platform/sec"
	"github.com/taibuivan/jitata-seed/internal/platform/validate"
)

func newTokenCmd() *cobra.Command {
	var (
		role string
		ttl  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the development backend",
		Long: `Signs an HS256 token with $JWT_SECRET. Use the printed value as
SEED_CREDENTIAL. A zero --ttl yields a token without expiry.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tokens, err := sec.NewTokenService(os.Getenv("JWT_SECRET"), constants.AuthIssuer)
			if err != nil {
				return err
			}

			v := &validate.Validator{}
			v.OneOf("role", role, string(sec.RoleServiceRole), string(sec.RoleAnon))
			if v.HasErrors() {
				return fmt.Errorf("seedctl: unknown role %q (%s)", role, v.Summary())
			}

			token, err := tokens.GenerateToken(sec.Role(role), ttl)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&role, "role", string(sec.RoleServiceRole), "token role (service_role or anon)")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (0 = no expiry)")
	return cmd
}
