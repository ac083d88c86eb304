// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package verifier

import "fmt"

const unknownName = "Unknown"

var (
	seriesRequired = []string{"name", "name_en", "description", "release_year"}
	modelRequired  = []string{"name", "name_cn", "rarity", "visual_features"}
)

// IssueFetchFailed replaces every other issue when a collection could not
// be read.
const IssueFetchFailed = "data fetch failed"

// Fetch is the outcome of reading one collection.
type Fetch struct {
	Records []Record
	Err     error
}

// OK reports whether the collection was read.
func (f Fetch) OK() bool { return f.Err == nil }

/*
CheckIntegrity cross-checks the fetched collections and returns one line
per violation, in record order. It never fails; an unreadable collection
yields the single [IssueFetchFailed] line.
*/
func CheckIntegrity(series, models Fetch) []string {
	if !series.OK() || !models.OK() {
		return []string{IssueFetchFailed}
	}

	var issues []string
	seriesIDs := make(map[string]struct{}, len(series.Records))

	for _, record := range series.Records {
		seriesIDs[record.String("id")] = struct{}{}

		name := record.nameOr(unknownName)
		for _, field := range seriesRequired {
			if !record.Present(field) {
				issues = append(issues, fmt.Sprintf("series %s is missing field: %s", name, field))
			}
		}
	}

	for _, record := range models.Records {
		name := record.nameOr(unknownName)

		if _, ok := seriesIDs[record.String("series_id")]; !ok || !record.Present("series_id") {
			issues = append(issues, fmt.Sprintf("model %s references a series id that does not exist", name))
		}

		for _, field := range modelRequired {
			if !record.Present(field) {
				issues = append(issues, fmt.Sprintf("model %s is missing field: %s", name, field))
			}
		}

		if record.Len("reference_images") == 0 {
			issues = append(issues, fmt.Sprintf("model %s has no reference images", name))
		}

		if !record.Object("visual_features").Present("feature_vector") {
			issues = append(issues, fmt.Sprintf("model %s is missing feature vector", name))
		}
	}

	return issues
}
