// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// # Seed Document

// SeedDocument is the hand-maintained input file of an import run.
type SeedDocument struct {
	Series []SeriesSeed `json:"series"`
	Models []ModelSeed  `json:"models"`
}

// SeriesSeed is one series as written in the seed file.
type SeriesSeed struct {
	Name        string `json:"name"`
	NameEN      string `json:"name_en"`
	Description string `json:"description"`
	ReleaseYear int    `json:"release_year"`
	TotalModels int    `json:"total_models"`
	Theme       string `json:"theme"`
}

// ModelSeed is one model as written in the seed file. Name is the Chinese
// display name; SeriesName must match a [SeriesSeed.Name].
type ModelSeed struct {
	Name            string      `json:"name"`
	NameEN          string      `json:"name_en"`
	SeriesName      string      `json:"series_name"`
	RarityLevel     string      `json:"rarity_level"`
	ReleaseDate     *string     `json:"release_date"`
	OriginalPrice   *float64    `json:"original_price"`
	Description     *string     `json:"description"`
	ReferenceImages []ImageSeed `json:"reference_images"`
	VisualFeatures  *VisualSeed `json:"visual_features"`
}

// ImageSeed references a photo by URL and source type
// (official_front, official_side, official_back, user_photo, detail).
type ImageSeed struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

// VisualSeed carries the raw, human-entered visual attributes.
type VisualSeed struct {
	DominantColors []string  `json:"dominant_colors"`
	HeightCM       *float64  `json:"height_cm"`
	WidthCM        *float64  `json:"width_cm"`
	SurfaceTexture string    `json:"surface_texture"`
	PatternType    string    `json:"pattern_type"`
	SpecialMarks   string    `json:"special_marks"`
	BodyShape      string    `json:"body_shape"`
	EarType        string    `json:"ear_type"`
	FeatureVector  []float64 `json:"feature_vector"`
}

// LoadSeedDocument reads and decodes a seed file.
func LoadSeedDocument(path string) (*SeedDocument, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to read seed file %s: %w", path, err)
	}

	doc := &SeedDocument{}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("catalog: failed to decode seed file %s: %w", path, err)
	}

	return doc, nil
}
