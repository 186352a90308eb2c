// Package series holds concrete series entities. Each one composes the
// per-series fields (data, id, name, axes) with its type-specific and
// family option groups from plotoptions, most specific first.
package series
