// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package verifier reads the seeded collections back and reports on their
integrity.

Both collections are fetched independently. A failed fetch does not stop
the run: the report still renders with the error in place of the count.
Integrity violations are report lines, never errors.
*/
package verifier

import (
	"context"
	"log/slog"
)

// Reader lists every row of a collection into out.
type Reader interface {
	List(ctx context.Context, collection string, out any) error
}

// Collections names the backend collections read by the verifier.
type Collections struct {
	Series string
	Models string
}

// Verifier produces a [Report] from the backend.
type Verifier struct {
	reader      Reader
	collections Collections
	logger      *slog.Logger
}

// New constructs a [Verifier].
func New(reader Reader, collections Collections, logger *slog.Logger) *Verifier {
	return &Verifier{reader: reader, collections: collections, logger: logger}
}

// Run fetches both collections and builds the report.
func (v *Verifier) Run(ctx context.Context) *Report {
	v.logger.Info("verify_series_started", slog.String("collection", v.collections.Series))
	series := v.fetch(ctx, v.collections.Series)

	v.logger.Info("verify_models_started", slog.String("collection", v.collections.Models))
	models := v.fetch(ctx, v.collections.Models)

	report := NewReport(series, models)
	v.logger.Info("verify_finished",
		slog.Int("series", len(series.Records)),
		slog.Int("models", len(models.Records)),
		slog.Int("issues", len(report.Issues)),
	)
	return report
}

func (v *Verifier) fetch(ctx context.Context, collection string) Fetch {
	var records []Record
	if err := v.reader.List(ctx, collection, &records); err != nil {
		v.logger.Error("fetch_failed", slog.String("collection", collection), slog.Any("error", err))
		return Fetch{Err: err}
	}
	return Fetch{Records: records}
}
