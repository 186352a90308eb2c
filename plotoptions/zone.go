package plotoptions

import (
	"chartopts/color"
	"chartopts/option"
)

// DashStyles are the stroke dash styles, matched case-sensitively.
var DashStyles = []string{
	"Solid", "ShortDash", "ShortDot", "ShortDashDot", "ShortDashDotDot",
	"Dot", "Dash", "LongDash", "DashDot", "LongDashDot", "LongDashDotDot",
}

// Zone styles the part of a series up to Value on the zone axis.
type Zone struct {
	option.Object
}

var ZoneRegistry = option.NewRegistry("Zone",
	option.NewField("className", option.String()),
	option.NewField("color", color.Field()),
	option.NewField("dashStyle", option.EnumExact(DashStyles...)),
	option.NewField("fillColor", color.Field()),
	option.NewField("value", option.Numeric()),
)

func NewZone() *Zone {
	z := &Zone{}
	z.Bind(ZoneRegistry)

	return z
}

func (z *Zone) ClassName() *string       { return option.Ptr[string](z, "class_name") }
func (z *Zone) SetClassName(v any) error { return z.Set("class_name", v) }
func (z *Zone) Color() *color.Color      { return option.Get[*color.Color](z, "color") }
func (z *Zone) SetColor(v any) error     { return z.Set("color", v) }
func (z *Zone) DashStyle() *string       { return option.Ptr[string](z, "dash_style") }
func (z *Zone) SetDashStyle(v any) error { return z.Set("dash_style", v) }
func (z *Zone) FillColor() *color.Color  { return option.Get[*color.Color](z, "fill_color") }
func (z *Zone) SetFillColor(v any) error { return z.Set("fill_color", v) }
func (z *Zone) Value() *float64          { return option.Ptr[float64](z, "value") }
func (z *Zone) SetValue(v any) error     { return z.Set("value", v) }
