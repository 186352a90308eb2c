package series

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"chartopts/option"
)

// Types lists the series types known to the charting library.
var Types = []string{
	"area", "arearange", "areaspline", "areasplinerange", "bar", "bellcurve",
	"boxplot", "bubble", "bullet", "column", "columnpyramid", "columnrange",
	"cylinder", "dependencywheel", "dumbbell", "errorbar", "funnel", "funnel3d",
	"gauge", "heatmap", "histogram", "item", "line", "lollipop", "networkgraph",
	"organization", "packedbubble", "pareto", "pie", "polygon", "pyramid",
	"pyramid3d", "sankey", "scatter", "scatter3d", "solidgauge", "spline",
	"streamgraph", "sunburst", "tilemap", "timeline", "treegraph", "treemap",
	"variablepie", "variwide", "vector", "venn", "waterfall", "windbarb",
	"wordcloud", "xrange",
}

// ErrUnknownType is returned for a series type missing from Types.
var ErrUnknownType = errors.New("unknown series type")

// IsKnownType reports whether name is one of Types.
func IsKnownType(name string) bool {
	return slices.Contains(Types, name)
}

// constructors maps types with a dedicated entity. Every other known type
// uses the generic Series.
var constructors = map[string]func() option.Entity{
	"heatmap":  func() option.Entity { return NewHeatmapSeries() },
	"sankey":   func() option.Entity { return NewSankeySeries() },
	"sunburst": func() option.Entity { return NewSunburstSeries() },
}

// New returns an empty entity for the series type name.
func New(name string) (option.Entity, error) {
	name = strings.ToLower(name)

	if ctor, ok := constructors[name]; ok {
		return ctor(), nil
	}

	if !IsKnownType(name) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}

	s := NewSeries()
	if err := s.SetType(name); err != nil {
		return nil, err
	}

	return s, nil
}

// ForMapping returns an empty entity matching raw["type"]. A mapping
// without a type gets a generic line-like Series.
func ForMapping(raw map[string]any) (option.Entity, error) {
	name, _ := raw["type"].(string)
	if name == "" {
		return NewSeries(), nil
	}

	return New(name)
}

// FromMapping builds the entity matching raw["type"].
func FromMapping(raw map[string]any) (option.Entity, error) {
	e, err := ForMapping(raw)
	if err != nil {
		return nil, err
	}

	if err := option.Decode(e, raw); err != nil {
		return nil, err
	}

	return e, nil
}
