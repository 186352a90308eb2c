// Package color implements the polymorphic color value accepted by every
// color-like option: a plain color string, a Gradient or a Pattern.
//
// Resolve classifies raw input deterministically. Typed values pass
// through; mappings and strings are inspected for a gradient marker key
// (linearGradient, radialGradient) and then for a pattern marker key
// (patternOptions) before falling back to a plain color string.
package color
