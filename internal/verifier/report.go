// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package verifier

import (
	"fmt"
	"os"
	"strings"
)

// unknownKey stands in for a missing rarity or series id in histograms.
const unknownKey = "unknown"

// Bucket is one histogram entry.
type Bucket struct {
	Label string
	Count int
}

// Histogram counts keys in first-seen order.
type Histogram struct {
	buckets []Bucket
	index   map[string]int
}

// Add increments the bucket of key.
func (h *Histogram) Add(key string) {
	if h.index == nil {
		h.index = make(map[string]int)
	}
	if i, ok := h.index[key]; ok {
		h.buckets[i].Count++
		return
	}
	h.index[key] = len(h.buckets)
	h.buckets = append(h.buckets, Bucket{Label: key, Count: 1})
}

// Buckets returns the entries in first-seen order.
func (h *Histogram) Buckets() []Bucket {
	return h.buckets
}

// # Report

// Report is the outcome of one verification run.
type Report struct {
	Series Fetch
	Models Fetch
	Issues []string

	// Histograms are only populated when the models were fetched.
	Rarity   Histogram
	BySeries Histogram
}

// NewReport checks the fetched collections and builds the histograms.
// Series ids in BySeries are resolved to series names where possible.
func NewReport(series, models Fetch) *Report {
	report := &Report{
		Series: series,
		Models: models,
		Issues: CheckIntegrity(series, models),
	}

	if !models.OK() {
		return report
	}

	names := map[string]string{}
	if series.OK() {
		for _, record := range series.Records {
			id := record.String("id")
			if _, seen := names[id]; !seen {
				names[id] = record.nameOr(id)
			}
		}
	}

	for _, record := range models.Records {
		report.Rarity.Add(orUnknown(record.String("rarity")))

		seriesID := orUnknown(record.String("series_id"))
		if name, ok := names[seriesID]; ok {
			seriesID = name
		}
		report.BySeries.Add(seriesID)
	}

	return report
}

// Passed reports whether no issue was found.
func (r *Report) Passed() bool {
	return len(r.Issues) == 0
}

// String renders the plain-text report.
func (r *Report) String() string {
	var b strings.Builder

	b.WriteString("=== Labubu Data Verification Report ===\n\n")
	writeCount(&b, "Series", r.Series)
	writeCount(&b, "Model", r.Models)
	b.WriteString("\n")

	if r.Passed() {
		b.WriteString("Integrity check passed, no issues found\n")
	} else {
		b.WriteString("Issues found:\n")
		for _, issue := range r.Issues {
			fmt.Fprintf(&b, "   %s\n", issue)
		}
	}
	b.WriteString("\n")

	if r.Models.OK() {
		writeHistogram(&b, "Rarity distribution", r.Rarity)
		b.WriteString("\n")
		writeHistogram(&b, "Series distribution", r.BySeries)
	}

	return b.String()
}

// WriteFile saves the rendered report to path.
func (r *Report) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(r.String()), 0o644); err != nil {
		return fmt.Errorf("verifier: failed to write report %s: %w", path, err)
	}
	return nil
}

func writeCount(b *strings.Builder, label string, fetch Fetch) {
	if !fetch.OK() {
		fmt.Fprintf(b, "%s fetch failed: %v\n", label, fetch.Err)
		return
	}
	fmt.Fprintf(b, "%s count: %d\n", label, len(fetch.Records))
}

func writeHistogram(b *strings.Builder, title string, h Histogram) {
	fmt.Fprintf(b, "%s:\n", title)
	for _, bucket := range h.Buckets() {
		fmt.Fprintf(b, "   %s: %d\n", bucket.Label, bucket.Count)
	}
}

func orUnknown(value string) string {
	if value == "" {
		return unknownKey
	}
	return value
}
