// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompt asks for the endpoint and credential on out and reads the answers
// from in, one line each. Values already present in cfg are not asked for.
// The result is validated; an empty answer yields [ErrIncomplete].
func Prompt(cfg *Client, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)

	ask := func(label string, target *string) error {
		if *target != "" {
			return nil
		}
		if _, err := fmt.Fprintf(out, "%s: ", label); err != nil {
			return err
		}
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("config: failed to read %s: %w", label, err)
		}
		*target = strings.TrimSpace(line)
		return nil
	}

	if err := ask("Backend URL", &cfg.Endpoint); err != nil {
		return err
	}
	if err := ask("Service role key", &cfg.Credential); err != nil {
		return err
	}

	return cfg.Validate()
}
