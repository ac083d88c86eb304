// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain fails the package when a rate limiter cleanup goroutine outlives its context.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
