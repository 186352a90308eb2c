package main

import (
	"fmt"
	"sort"
	"strings"

	"chartopts/color"
	"chartopts/legend"
	"chartopts/option"
	"chartopts/plotoptions"
	"chartopts/series"
	"chartopts/utility"
)

// entityKind names a top-level entity the CLI can read. empty returns the
// entity a mapping decodes into; most kinds ignore the mapping.
type entityKind struct {
	Name  string
	Usage string
	empty func(raw map[string]any) (option.Entity, error)
}

func fixed[T option.Entity](newT func() T) func(map[string]any) (option.Entity, error) {
	return func(map[string]any) (option.Entity, error) { return newT(), nil }
}

var entityKinds = map[string]entityKind{
	"legend":          {Name: "legend", Usage: "chart legend", empty: fixed(legend.New)},
	"series":          {Name: "series", Usage: "series picked by its type key", empty: series.ForMapping},
	"custom-series":   {Name: "custom-series", Usage: "custom series type definition", empty: fixed(series.NewCustomSeries)},
	"generic":         {Name: "generic", Usage: "options shared by every series type", empty: fixed(plotoptions.NewGenericTypeOptions)},
	"series-options":  {Name: "series-options", Usage: "plot options for line-like series", empty: fixed(plotoptions.NewSeriesOptions)},
	"heatmap":         {Name: "heatmap", Usage: "heatmap plot options", empty: fixed(plotoptions.NewHeatmapOptions)},
	"treemap":         {Name: "treemap", Usage: "treemap plot options", empty: fixed(plotoptions.NewTreemapOptions)},
	"sunburst":        {Name: "sunburst", Usage: "sunburst plot options", empty: fixed(plotoptions.NewSunburstOptions)},
	"dependencywheel": {Name: "dependencywheel", Usage: "dependency wheel plot options", empty: fixed(plotoptions.NewDependencyWheelOptions)},
	"sankey":          {Name: "sankey", Usage: "sankey plot options", empty: fixed(plotoptions.NewSankeyOptions)},
	"zone":            {Name: "zone", Usage: "series zone", empty: fixed(plotoptions.NewZone)},
	"states":          {Name: "states", Usage: "hover/inactive/normal/select states", empty: fixed(utility.NewStates)},
	"animation":       {Name: "animation", Usage: "animation options", empty: fixed(utility.NewAnimationOptions)},
	"shadow":          {Name: "shadow", Usage: "shadow options", empty: fixed(utility.NewShadowOptions)},
	"gradient":        {Name: "gradient", Usage: "linear or radial gradient", empty: fixed(color.NewGradient)},
	"pattern":         {Name: "pattern", Usage: "pattern fill", empty: fixed(color.NewPattern)},
}

func entityNames() []string {
	names := make([]string, 0, len(entityKinds))
	for name := range entityKinds {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func lookupEntity(name string) (entityKind, error) {
	k, ok := entityKinds[strings.ToLower(name)]
	if !ok {
		return entityKind{}, fmt.Errorf("unknown entity %q, expected one of: %s", name, strings.Join(entityNames(), ", "))
	}

	return k, nil
}

// build decodes raw into the entity it selects.
func (k entityKind) build(raw map[string]any) (option.Entity, error) {
	e, err := k.empty(raw)
	if err != nil {
		return nil, err
	}

	if err := option.Decode(e, raw); err != nil {
		return nil, err
	}

	return e, nil
}
