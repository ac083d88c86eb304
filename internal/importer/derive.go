// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package importer

import (
	"strings"

	"github.com/taibuivan/jitata-seed/internal/catalog"
	"github.com/taibuivan/jitata-seed/pkg/pointer"
)

// # Fixed Heuristics

const (
	defaultHeightCM = 6.5
	defaultWidthCM  = 4.2

	// Seed-file values for a smooth surface and for a solid (pattern-free) body.
	smoothTexture = "光滑"
	solidPattern  = "纯色"
	materialPlush = "plush"

	maxPrimaryColors = 3
	maxColorTags     = 2

	featureVectorLength  = 10
	featureVectorDefault = 0.5
)

var imageAngles = map[string]catalog.Angle{
	"official_front": catalog.AngleFront,
	"official_side":  catalog.AngleLeft,
	"official_back":  catalog.AngleBack,
	"user_photo":     catalog.AngleFront,
	"detail":         catalog.AngleDetail,
}

// Percentages and regions of the first, second and third dominant color.
var (
	colorPercentages = [maxPrimaryColors]float64{0.4, 0.3, 0.3}
	colorRegions     = [maxPrimaryColors]string{"body", "face", "accessory"}
)

var colorNames = map[string]string{
	"#FFB6C1": "粉色",
	"#87CEEB": "蓝色",
	"#FFD700": "黄色",
	"#FF0000": "红色",
	"#00FF00": "绿色",
	"#FFFFFF": "白色",
	"#000000": "黑色",
}

// MapImageType converts a seed image type to an angle. Unknown types map to
// [catalog.AngleFront].
func MapImageType(imageType string) catalog.Angle {
	if angle, ok := imageAngles[imageType]; ok {
		return angle
	}
	return catalog.AngleFront
}

// HexToColorName returns the display name of a hex color, or "" when the
// color is not in the table. Matching is case-insensitive.
func HexToColorName(hex string) string {
	return colorNames[strings.ToUpper(hex)]
}

// ProcessColors apportions the first three dominant colors across the
// body, face and accessory regions.
func ProcessColors(colors []string) []catalog.ColorShare {
	if len(colors) > maxPrimaryColors {
		colors = colors[:maxPrimaryColors]
	}

	shares := make([]catalog.ColorShare, 0, len(colors))
	for i, color := range colors {
		shares = append(shares, catalog.ColorShare{
			Color:      color,
			Percentage: colorPercentages[i],
			Region:     colorRegions[i],
		})
	}
	return shares
}

// ShapeOf derives the shape descriptor. Missing or non-positive dimensions
// fall back to 6.5 x 4.2 cm.
func ShapeOf(visual catalog.VisualSeed) catalog.ShapeDescriptor {
	height := pointer.Fallback(visual.HeightCM, defaultHeightCM)
	if height <= 0 {
		height = defaultHeightCM
	}
	width := pointer.Fallback(visual.WidthCM, defaultWidthCM)
	if width <= 0 {
		width = defaultWidthCM
	}

	return catalog.ShapeDescriptor{
		AspectRatio: height / width,
		Roundness:   0.8,
		Symmetry:    0.9,
		Complexity:  0.6,
		KeyPoints:   [][]float64{},
	}
}

// TextureOf derives the texture descriptor from the surface and pattern.
func TextureOf(visual catalog.VisualSeed) catalog.TextureFeatures {
	texture := catalog.TextureFeatures{
		Smoothness:   0.4,
		Roughness:    0.6,
		Patterns:     []string{solidPattern},
		MaterialType: materialPlush,
	}
	if visual.SurfaceTexture == smoothTexture {
		texture.Smoothness, texture.Roughness = 0.8, 0.2
	}
	if visual.PatternType != "" {
		texture.Patterns = []string{visual.PatternType}
	}
	return texture
}

// FeatureVectorOf returns the seed vector, or ten 0.5 values when absent.
func FeatureVectorOf(visual catalog.VisualSeed) []float64 {
	if len(visual.FeatureVector) > 0 {
		return append([]float64(nil), visual.FeatureVector...)
	}

	vector := make([]float64, featureVectorLength)
	for i := range vector {
		vector[i] = featureVectorDefault
	}
	return vector
}

// VisualFeaturesOf builds the persisted descriptor from the seed attributes.
func VisualFeaturesOf(visual catalog.VisualSeed) *catalog.VisualFeatures {
	return &catalog.VisualFeatures{
		PrimaryColors:     ProcessColors(visual.DominantColors),
		ColorDistribution: map[string]float64{},
		ShapeDescriptor:   ShapeOf(visual),
		TextureFeatures:   TextureOf(visual),
		SpecialMarks:      []string{visual.SpecialMarks},
		FeatureVector:     FeatureVectorOf(visual),
	}
}

// ExtractTags collects search tags: names of up to two dominant colors,
// the body shape and ear type when present, then the rarity.
func ExtractTags(seed catalog.ModelSeed) []string {
	var tags []string
	visual := visualOf(seed)

	colors := visual.DominantColors
	if len(colors) > maxColorTags {
		colors = colors[:maxColorTags]
	}
	for _, color := range colors {
		if !strings.HasPrefix(color, "#") {
			continue
		}
		if name := HexToColorName(color); name != "" {
			tags = append(tags, name)
		}
	}

	if visual.BodyShape != "" {
		tags = append(tags, visual.BodyShape)
	}
	if visual.EarType != "" {
		tags = append(tags, visual.EarType)
	}

	return append(tags, seed.RarityLevel)
}

func visualOf(seed catalog.ModelSeed) catalog.VisualSeed {
	if seed.VisualFeatures == nil {
		return catalog.VisualSeed{}
	}
	return *seed.VisualFeatures
}
