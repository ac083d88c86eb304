// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package importer seeds the catalog backend from a [catalog.SeedDocument].

Flow:

 1. Every series gets a fresh UUIDv7 and is POSTed on its own.
 2. Persisted series are remembered by normalized name.
 3. Every model resolves its series by name; unresolved models are skipped
    and never submitted.
 4. Derived fields (angles, colors, shape, texture, tags) are computed with
    the fixed heuristics in derive.go.

Each record is one network call. A failure is logged, recorded as an
[Outcome] and the loop moves on; nothing is retried or rolled back.
*/
package importer

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/jitata-seed/internal/catalog"
	"github.com/taibuivan/jitata-seed/internal/platform/validate"
	"github.com/taibuivan/jitata-seed/pkg/textnorm"
	"github.com/taibuivan/jitata-seed/pkg/uuidv7"
)

// maxNameLength bounds display names accepted from the seed file.
const maxNameLength = 200

// Writer persists one record into a collection.
type Writer interface {
	Insert(ctx context.Context, collection string, record any) error
}

// Collections names the backend collections written by the importer.
type Collections struct {
	Series string
	Models string
}

// Importer runs a single sequential import.
type Importer struct {
	writer      Writer
	collections Collections
	logger      *slog.Logger

	newID func() string
	now   func() time.Time
}

// Option customizes an [Importer].
type Option func(*Importer)

// WithIDGenerator replaces the UUIDv7 generator.
func WithIDGenerator(newID func() string) Option {
	return func(i *Importer) { i.newID = newID }
}

// WithClock replaces time.Now for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(i *Importer) { i.now = now }
}

// New constructs an [Importer] writing through writer.
func New(writer Writer, collections Collections, logger *slog.Logger, opts ...Option) *Importer {
	importer := &Importer{
		writer:      writer,
		collections: collections,
		logger:      logger,
		newID:       uuidv7.New,
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(importer)
	}
	return importer
}

// Run imports every series and then every model of doc.
func (importer *Importer) Run(ctx context.Context, doc *catalog.SeedDocument) *Summary {
	summary := &Summary{}

	importer.logger.Info("import_series_started", slog.Int("count", len(doc.Series)))
	seriesIDs := importer.ImportSeries(ctx, doc.Series, summary)

	importer.logger.Info("import_models_started", slog.Int("count", len(doc.Models)))
	importer.ImportModels(ctx, doc.Models, seriesIDs, summary)

	importer.logger.Info("import_finished",
		slog.Int("series_imported", summary.SeriesImported()),
		slog.Int("models_imported", summary.ModelsImported()),
		slog.Int("models_skipped", summary.ModelsSkipped()),
	)
	return summary
}

// # Series

/*
ImportSeries persists each series and returns the normalized name to id
mapping of the ones that were accepted by the backend.
*/
func (importer *Importer) ImportSeries(ctx context.Context, seeds []catalog.SeriesSeed, summary *Summary) map[string]string {
	seriesIDs := make(map[string]string, len(seeds))

	for _, seed := range seeds {
		outcome := Outcome{Entity: EntitySeries, Name: seed.Name}

		v := &validate.Validator{}
		v.Required("name", seed.Name).MaxLen("name", seed.Name, maxNameLength)
		if v.HasErrors() {
			outcome.Kind, outcome.Reason = KindSkipped, v.Summary()
			importer.report(outcome)
			summary.add(outcome)
			continue
		}

		record := importer.BuildSeries(seed)
		if err := importer.writer.Insert(ctx, importer.collections.Series, record); err != nil {
			outcome.Kind, outcome.Reason = KindFailed, err.Error()
		} else {
			outcome.Kind, outcome.ID = KindImported, record.ID
			seriesIDs[textnorm.Key(seed.Name)] = record.ID
		}

		importer.report(outcome)
		summary.add(outcome)
	}

	return seriesIDs
}

// BuildSeries assigns an identifier and timestamps to a seed series.
func (importer *Importer) BuildSeries(seed catalog.SeriesSeed) catalog.Series {
	now := importer.now()
	return catalog.Series{
		ID:          importer.newID(),
		Name:        seed.Name,
		NameEN:      seed.NameEN,
		Description: seed.Description,
		ReleaseYear: seed.ReleaseYear,
		TotalModels: seed.TotalModels,
		Theme:       seed.Theme,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// # Models

/*
ImportModels persists each model whose series_name resolves through
seriesIDs. Unresolved models are skipped without a network call.
*/
func (importer *Importer) ImportModels(ctx context.Context, seeds []catalog.ModelSeed, seriesIDs map[string]string, summary *Summary) {
	for _, seed := range seeds {
		outcome := Outcome{Entity: EntityModel, Name: seed.Name}

		v := &validate.Validator{}
		v.Required("name", seed.Name).
			MaxLen("name", seed.Name, maxNameLength).
			Required("rarity_level", seed.RarityLevel)
		if v.HasErrors() {
			outcome.Kind, outcome.Reason = KindSkipped, v.Summary()
			importer.report(outcome)
			summary.add(outcome)
			continue
		}

		seriesID, ok := seriesIDs[textnorm.Key(seed.SeriesName)]
		if !ok {
			outcome.Kind, outcome.Reason = KindSkipped, "series not found: "+seed.SeriesName
			importer.report(outcome)
			summary.add(outcome)
			continue
		}

		record := importer.BuildModel(seed, seriesID)
		if err := importer.writer.Insert(ctx, importer.collections.Models, record); err != nil {
			outcome.Kind, outcome.Reason = KindFailed, err.Error()
		} else {
			outcome.Kind, outcome.ID = KindImported, record.ID
		}

		importer.report(outcome)
		summary.add(outcome)
	}
}

// BuildModel derives the persisted model from a seed and its series id.
func (importer *Importer) BuildModel(seed catalog.ModelSeed, seriesID string) catalog.Model {
	now := importer.now()

	images := make([]catalog.ReferenceImage, 0, len(seed.ReferenceImages))
	for _, image := range seed.ReferenceImages {
		images = append(images, catalog.ReferenceImage{
			ID:         importer.newID(),
			ImageURL:   image.URL,
			Angle:      MapImageType(image.Type),
			UploadDate: now,
		})
	}

	return catalog.Model{
		ID:              importer.newID(),
		Name:            seed.NameEN,
		NameCN:          seed.Name,
		SeriesID:        seriesID,
		Variant:         catalog.VariantStandard,
		Rarity:          seed.RarityLevel,
		ReleaseDate:     seed.ReleaseDate,
		OriginalPrice:   seed.OriginalPrice,
		ReferenceImages: images,
		VisualFeatures:  VisualFeaturesOf(visualOf(seed)),
		Tags:            ExtractTags(seed),
		Description:     seed.Description,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (importer *Importer) report(outcome Outcome) {
	attrs := []any{
		slog.String("entity", string(outcome.Entity)),
		slog.String("name", outcome.Name),
	}

	switch outcome.Kind {
	case KindImported:
		importer.logger.Info("record_imported", append(attrs, slog.String("id", outcome.ID))...)
	case KindSkipped:
		importer.logger.Warn("record_skipped", append(attrs, slog.String("reason", outcome.Reason))...)
	default:
		importer.logger.Error("record_failed", append(attrs, slog.String("reason", outcome.Reason))...)
	}
}
