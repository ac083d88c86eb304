// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package importer_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/jitata-seed/internal/catalog"
	"github.com/taibuivan/jitata-seed/internal/importer"
)

type insertCall struct {
	collection string
	record     any
}

type fakeWriter struct {
	calls []insertCall
	fail  func(collection string, record any) error
}

func (f *fakeWriter) Insert(_ context.Context, collection string, record any) error {
	f.calls = append(f.calls, insertCall{collection: collection, record: record})
	if f.fail != nil {
		return f.fail(collection, record)
	}
	return nil
}

func (f *fakeWriter) count(collection string) int {
	n := 0
	for _, call := range f.calls {
		if call.collection == collection {
			n++
		}
	}
	return n
}

var testCollections = importer.Collections{Series: "labubu_series", Models: "labubu_models"}

func newTestImporter(writer importer.Writer) *importer.Importer {
	counter := 0
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	return importer.New(writer, testCollections, slog.New(slog.NewTextHandler(io.Discard, nil)),
		importer.WithIDGenerator(func() string {
			counter++
			return fmt.Sprintf("id-%d", counter)
		}),
		importer.WithClock(func() time.Time { return fixed }),
	)
}

func loadFixture(t *testing.T) *catalog.SeedDocument {
	t.Helper()
	doc, err := catalog.LoadSeedDocument("testdata/sample_data.json")
	require.NoError(t, err)
	return doc
}

/*
TestRun_SkipsOrphanModels imports the fixture and never submits the model
whose series does not exist.
*/
func TestRun_SkipsOrphanModels(t *testing.T) {
	writer := &fakeWriter{}
	summary := newTestImporter(writer).Run(context.Background(), loadFixture(t))

	assert.Equal(t, 2, summary.SeriesImported())
	assert.Equal(t, 2, summary.ModelsImported())
	assert.Equal(t, 1, summary.ModelsSkipped())

	assert.Equal(t, 2, writer.count("labubu_series"))
	assert.Equal(t, 2, writer.count("labubu_models"))

	problems := summary.Problems()
	require.Len(t, problems, 1)
	assert.Equal(t, "迷路的小怪", problems[0].Name)
	assert.Contains(t, problems[0].Reason, "不存在的系列")
}

/*
TestRun_ModelReferencesSeriesID links models to the id generated for
their series.
*/
func TestRun_ModelReferencesSeriesID(t *testing.T) {
	writer := &fakeWriter{}
	newTestImporter(writer).Run(context.Background(), loadFixture(t))

	series, ok := writer.calls[0].record.(catalog.Series)
	require.True(t, ok)
	assert.Equal(t, "id-1", series.ID)

	model, ok := writer.calls[2].record.(catalog.Model)
	require.True(t, ok)
	assert.Equal(t, series.ID, model.SeriesID)
	assert.Equal(t, "Strawberry Heart", model.Name)
	assert.Equal(t, "草莓心动", model.NameCN)
	assert.Equal(t, catalog.VariantStandard, model.Variant)
	assert.Equal(t, []string{"粉色", "白色", "圆润", "尖耳", "common"}, model.Tags)

	require.Len(t, model.ReferenceImages, 2)
	assert.Equal(t, catalog.AngleFront, model.ReferenceImages[0].Angle)
	assert.Equal(t, catalog.AngleLeft, model.ReferenceImages[1].Angle)
	assert.NotEqual(t, model.ReferenceImages[0].ID, model.ReferenceImages[1].ID)
}

/*
TestRun_FailedSeriesOrphansItsModels keeps a series that the backend
rejected out of the mapping.
*/
func TestRun_FailedSeriesOrphansItsModels(t *testing.T) {
	writer := &fakeWriter{fail: func(collection string, record any) error {
		if series, ok := record.(catalog.Series); ok && series.NameEN == "Heartbeat" {
			return errors.New("HTTP 500")
		}
		return nil
	}}

	summary := newTestImporter(writer).Run(context.Background(), loadFixture(t))

	assert.Equal(t, 1, summary.SeriesImported())
	assert.Equal(t, 1, summary.Count(importer.EntitySeries, importer.KindFailed))
	assert.Equal(t, 1, summary.ModelsImported())
	assert.Equal(t, 2, summary.ModelsSkipped())
	assert.Equal(t, 1, writer.count("labubu_models"))
}

/*
TestRun_ModelFailureContinues records a failed write and keeps going.
*/
func TestRun_ModelFailureContinues(t *testing.T) {
	writer := &fakeWriter{fail: func(collection string, _ any) error {
		if collection == "labubu_models" {
			return errors.New("connection refused")
		}
		return nil
	}}

	summary := newTestImporter(writer).Run(context.Background(), loadFixture(t))

	assert.Equal(t, 2, summary.SeriesImported())
	assert.Zero(t, summary.ModelsImported())
	assert.Equal(t, 2, summary.Count(importer.EntityModel, importer.KindFailed))
	assert.Equal(t, 1, summary.ModelsSkipped())
}

/*
TestImportModels_NormalizedSeriesName resolves names regardless of Unicode
composition and surrounding whitespace.
*/
func TestImportModels_NormalizedSeriesName(t *testing.T) {
	writer := &fakeWriter{}
	doc := &catalog.SeedDocument{
		Series: []catalog.SeriesSeed{{Name: "Caf\u00e9"}},
		Models: []catalog.ModelSeed{{Name: "m", SeriesName: "  Cafe\u0301 ", RarityLevel: "common"}},
	}

	summary := newTestImporter(writer).Run(context.Background(), doc)
	assert.Equal(t, 1, summary.ModelsImported())
}

/*
TestImportSeries_RequiresName rejects a nameless series before any write.
*/
func TestImportSeries_RequiresName(t *testing.T) {
	writer := &fakeWriter{}
	doc := &catalog.SeedDocument{Series: []catalog.SeriesSeed{{NameEN: "anonymous"}}}

	summary := newTestImporter(writer).Run(context.Background(), doc)

	assert.Empty(t, writer.calls)
	assert.Equal(t, 1, summary.Count(importer.EntitySeries, importer.KindSkipped))
}

/*
TestSummary_WriteText prints counts and every problem.
*/
func TestSummary_WriteText(t *testing.T) {
	summary := newTestImporter(&fakeWriter{}).Run(context.Background(), loadFixture(t))

	out := &bytes.Buffer{}
	require.NoError(t, summary.WriteText(out))

	assert.Contains(t, out.String(), "series imported: 2")
	assert.Contains(t, out.String(), "models imported: 2 (skipped: 1, failed: 0)")
	assert.Contains(t, out.String(), "迷路的小怪")
}
