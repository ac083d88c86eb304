// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog defines the persisted records of the collectible catalog.

A [Series] is a named collection; a [Model] is a single collectible item
that belongs to exactly one series through SeriesID. Both are written once
by the importer and read back by the verifier. JSON tags match the column
names of the backend collections.
*/
package catalog

import "time"

// # Series

// Series is the parent record of the catalog.
type Series struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	NameEN      string    `json:"name_en"`
	Description string    `json:"description"`
	ReleaseYear int       `json:"release_year"`
	TotalModels int       `json:"total_models"`
	Theme       string    `json:"theme"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// # Model

// VariantStandard is the only variant the importer produces.
const VariantStandard = "standard"

// Model is a single collectible item.
//
// Name holds the English display name and NameCN the Chinese one. The
// optional scalars are nil when the seed file omits them and serialize as
// JSON null.
type Model struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	NameCN          string           `json:"name_cn"`
	SeriesID        string           `json:"series_id"`
	Variant         string           `json:"variant"`
	Rarity          string           `json:"rarity"`
	ReleaseDate     *string          `json:"release_date"`
	OriginalPrice   *float64         `json:"original_price"`
	ReferenceImages []ReferenceImage `json:"reference_images"`
	VisualFeatures  *VisualFeatures  `json:"visual_features"`
	Tags            []string         `json:"tags"`
	Description     *string          `json:"description"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// # Reference Images

// Angle is the viewpoint a reference image was taken from.
type Angle string

const (
	AngleFront  Angle = "front"
	AngleLeft   Angle = "left"
	AngleBack   Angle = "back"
	AngleDetail Angle = "detail"
)

// Angles lists every value an [Angle] may take.
var Angles = []Angle{AngleFront, AngleLeft, AngleBack, AngleDetail}

// ReferenceImage describes one photo used for recognition.
type ReferenceImage struct {
	ID         string    `json:"id"`
	ImageURL   string    `json:"image_url"`
	Angle      Angle     `json:"angle"`
	UploadDate time.Time `json:"upload_date"`
}

// # Visual Features

// VisualFeatures is the descriptor the app's similarity matcher consumes.
type VisualFeatures struct {
	PrimaryColors     []ColorShare       `json:"primary_colors"`
	ColorDistribution map[string]float64 `json:"color_distribution"`
	ShapeDescriptor   ShapeDescriptor    `json:"shape_descriptor"`
	TextureFeatures   TextureFeatures    `json:"texture_features"`
	SpecialMarks      []string           `json:"special_marks"`
	FeatureVector     []float64          `json:"feature_vector"`
}

// ColorShare assigns a dominant color to a body region.
type ColorShare struct {
	Color      string  `json:"color"`
	Percentage float64 `json:"percentage"`
	Region     string  `json:"region"`
}

// ShapeDescriptor summarizes the silhouette of a model.
type ShapeDescriptor struct {
	AspectRatio float64     `json:"aspect_ratio"`
	Roundness   float64     `json:"roundness"`
	Symmetry    float64     `json:"symmetry"`
	Complexity  float64     `json:"complexity"`
	KeyPoints   [][]float64 `json:"key_points"`
}

// TextureFeatures summarizes the surface of a model.
type TextureFeatures struct {
	Smoothness   float64  `json:"smoothness"`
	Roughness    float64  `json:"roughness"`
	Patterns     []string `json:"patterns"`
	MaterialType string   `json:"material_type"`
}
