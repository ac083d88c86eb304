// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/taibuivan/jitata-seed/pkg/slice"
)

// # Per-Record Outcomes

// Kind classifies what happened to one seed record.
type Kind string

const (
	KindImported Kind = "imported"
	KindSkipped  Kind = "skipped"
	KindFailed   Kind = "failed"
)

// Entity names the collection a record belongs to.
type Entity string

const (
	EntitySeries Entity = "series"
	EntityModel  Entity = "model"
)

// Outcome is the result of importing one seed record. ID is set only for
// imported records; Reason is set for skipped and failed ones.
type Outcome struct {
	Entity Entity `json:"entity"`
	Name   string `json:"name"`
	Kind   Kind   `json:"kind"`
	ID     string `json:"id,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// Summary collects every outcome of a run in input order.
type Summary struct {
	Outcomes []Outcome `json:"outcomes"`
}

func (s *Summary) add(outcome Outcome) {
	s.Outcomes = append(s.Outcomes, outcome)
}

// Count returns how many outcomes match entity and kind.
func (s *Summary) Count(entity Entity, kind Kind) int {
	return slice.Count(s.Outcomes, func(o Outcome) bool {
		return o.Entity == entity && o.Kind == kind
	})
}

// SeriesImported is the number of series persisted by the run.
func (s *Summary) SeriesImported() int { return s.Count(EntitySeries, KindImported) }

// ModelsImported is the number of models persisted by the run.
func (s *Summary) ModelsImported() int { return s.Count(EntityModel, KindImported) }

// ModelsSkipped is the number of models never submitted.
func (s *Summary) ModelsSkipped() int { return s.Count(EntityModel, KindSkipped) }

// Problems returns the skipped and failed outcomes.
func (s *Summary) Problems() []Outcome {
	return slice.Filter(s.Outcomes, func(o Outcome) bool { return o.Kind != KindImported })
}

// WriteText prints the human-readable summary.
func (s *Summary) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Import finished\n   series imported: %d (failed: %d)\n   models imported: %d (skipped: %d, failed: %d)\n",
		s.SeriesImported(), s.Count(EntitySeries, KindFailed)+s.Count(EntitySeries, KindSkipped),
		s.ModelsImported(), s.ModelsSkipped(), s.Count(EntityModel, KindFailed),
	)
	if err != nil {
		return err
	}

	lines := slice.Map(s.Problems(), func(o Outcome) string {
		return fmt.Sprintf("   %s %s %q: %s\n", o.Kind, o.Entity, o.Name, o.Reason)
	})
	_, err = io.WriteString(w, strings.Join(lines, ""))
	return err
}
