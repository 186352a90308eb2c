package color

import (
	"chartopts/option"
	"chartopts/validate"
)

// PatternOptions describes a pattern fill: an SVG path or an image tile.
type PatternOptions struct {
	option.Object
}

var PatternOptionsRegistry = option.NewRegistry("PatternOptions",
	option.NewField("aspectRatio", option.Numeric(validate.Min(0))),
	option.NewField("backgroundColor", option.String()),
	option.NewField("color", option.String()),
	option.NewField("height", option.Numeric(validate.Min(0))),
	option.NewField("id", option.String()),
	option.NewField("image", option.String()),
	option.NewField("opacity", option.Numeric(validate.Min(0), validate.Max(1))),
	option.NewField("path", option.StringOrMap()),
	option.NewField("patternTransform", option.String()),
	option.NewField("width", option.Numeric(validate.Min(0))),
	option.NewField("x", option.Numeric()),
	option.NewField("y", option.Numeric()),
)

func NewPatternOptions() *PatternOptions {
	p := &PatternOptions{}
	p.Bind(PatternOptionsRegistry)

	return p
}

func (p *PatternOptions) AspectRatio() *float64          { return option.Ptr[float64](p, "aspect_ratio") }
func (p *PatternOptions) SetAspectRatio(v any) error     { return p.Set("aspect_ratio", v) }
func (p *PatternOptions) BackgroundColor() *string       { return option.Ptr[string](p, "background_color") }
func (p *PatternOptions) SetBackgroundColor(v any) error { return p.Set("background_color", v) }
func (p *PatternOptions) Color() *string                 { return option.Ptr[string](p, "color") }
func (p *PatternOptions) SetColor(v any) error           { return p.Set("color", v) }
func (p *PatternOptions) Height() *float64               { return option.Ptr[float64](p, "height") }
func (p *PatternOptions) SetHeight(v any) error          { return p.Set("height", v) }
func (p *PatternOptions) ID() *string                    { return option.Ptr[string](p, "id") }
func (p *PatternOptions) SetID(v any) error              { return p.Set("id", v) }
func (p *PatternOptions) Image() *string                 { return option.Ptr[string](p, "image") }
func (p *PatternOptions) SetImage(v any) error           { return p.Set("image", v) }
func (p *PatternOptions) Opacity() *float64              { return option.Ptr[float64](p, "opacity") }
func (p *PatternOptions) SetOpacity(v any) error         { return p.Set("opacity", v) }

// Path is an SVG path string or a mapping of SVG attributes.
func (p *PatternOptions) Path() any                       { return p.Get("path") }
func (p *PatternOptions) SetPath(v any) error             { return p.Set("path", v) }
func (p *PatternOptions) PatternTransform() *string       { return option.Ptr[string](p, "pattern_transform") }
func (p *PatternOptions) SetPatternTransform(v any) error { return p.Set("pattern_transform", v) }
func (p *PatternOptions) Width() *float64                 { return option.Ptr[float64](p, "width") }
func (p *PatternOptions) SetWidth(v any) error            { return p.Set("width", v) }
func (p *PatternOptions) X() *float64                     { return option.Ptr[float64](p, "x") }
func (p *PatternOptions) SetX(v any) error                { return p.Set("x", v) }
func (p *PatternOptions) Y() *float64                     { return option.Ptr[float64](p, "y") }
func (p *PatternOptions) SetY(v any) error                { return p.Set("y", v) }

// Pattern is a pattern fill, given either as explicit options or as an
// index into the default patterns.
type Pattern struct {
	option.Object
}

var PatternRegistry = option.NewRegistry("Pattern",
	option.NewField("animation", option.BoolOr(option.Raw())),
	option.NewField("patternOptions", option.Nested(NewPatternOptions)),
	option.NewField("patternIndex", option.Integer(validate.Min(0))),
)

// NewPattern returns an empty pattern.
func NewPattern() *Pattern {
	p := &Pattern{}
	p.Bind(PatternRegistry)

	return p
}

// PatternFromMapping builds a pattern from its camelCase mapping.
func PatternFromMapping(raw map[string]any) (*Pattern, error) {
	return option.Build(NewPattern, raw)
}

func (p *Pattern) Animation() any              { return p.Get("animation") }
func (p *Pattern) SetAnimation(v any) error    { return p.Set("animation", v) }
func (p *Pattern) PatternIndex() *int          { return option.Ptr[int](p, "pattern_index") }
func (p *Pattern) SetPatternIndex(v any) error { return p.Set("pattern_index", v) }

func (p *Pattern) PatternOptions() *PatternOptions {
	return option.Get[*PatternOptions](p, "pattern_options")
}

func (p *Pattern) SetPatternOptions(v any) error { return p.Set("pattern_options", v) }
