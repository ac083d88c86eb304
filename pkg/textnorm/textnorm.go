// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package textnorm canonicalizes user-entered display strings.
//
// # Usage
//
// Seed files are edited by hand on different machines, so the same series
// name can arrive precomposed on one line and decomposed on another
// ("é" vs "e" + U+0301). Keys built with [Key] compare equal in both cases.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Key returns the canonical lookup key for a display name.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFC.
// 2. Collapses runs of Unicode whitespace to a single ASCII space.
// 3. Trims leading and trailing whitespace.
func Key(s string) string {
	result, _, err := transform.String(norm.NFC, s)
	if err != nil {
		result = s
	}

	return strings.Join(strings.FieldsFunc(result, unicode.IsSpace), " ")
}
