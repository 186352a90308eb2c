// Package plotoptions holds the option groups shared by series types:
// the generic options every series accepts, the cartesian series options,
// zones and the per-type groups for heatmap, treemap, sunburst, dependency
// wheel and sankey series.
//
// Groups that extend others are built with option.Compose, most specific
// registry first. Accessors for shared groups live in the GenericFields and
// SeriesFields mixins so every composed type exposes them.
package plotoptions
