package utility

import (
	"chartopts/option"
	"chartopts/validate"
)

// ShadowOptions configures a drop shadow.
type ShadowOptions struct {
	option.Object
}

var ShadowRegistry = option.NewRegistry("ShadowOptions",
	option.NewField("color", option.String()),
	option.NewField("offsetX", option.Numeric()),
	option.NewField("offsetY", option.Numeric()),
	option.NewField("opacity", option.Numeric(validate.Min(0), validate.Max(1))),
	option.NewField("width", option.Numeric(validate.Min(0))),
)

func NewShadowOptions() *ShadowOptions {
	s := &ShadowOptions{}
	s.Bind(ShadowRegistry)

	return s
}

func (s *ShadowOptions) Color() *string         { return option.Ptr[string](s, "color") }
func (s *ShadowOptions) SetColor(v any) error   { return s.Set("color", v) }
func (s *ShadowOptions) OffsetX() *float64      { return option.Ptr[float64](s, "offset_x") }
func (s *ShadowOptions) SetOffsetX(v any) error { return s.Set("offset_x", v) }
func (s *ShadowOptions) OffsetY() *float64      { return option.Ptr[float64](s, "offset_y") }
func (s *ShadowOptions) SetOffsetY(v any) error { return s.Set("offset_y", v) }
func (s *ShadowOptions) Opacity() *float64      { return option.Ptr[float64](s, "opacity") }
func (s *ShadowOptions) SetOpacity(v any) error { return s.Set("opacity", v) }
func (s *ShadowOptions) Width() *float64        { return option.Ptr[float64](s, "width") }
func (s *ShadowOptions) SetWidth(v any) error   { return s.Set("width", v) }

// ShadowField accepts true/false or shadow options.
func ShadowField() option.Type {
	return option.BoolOr(option.Nested(NewShadowOptions))
}

// AnimationField accepts true/false or animation options.
func AnimationField() option.Type {
	return option.BoolOr(option.Nested(NewAnimationOptions))
}
