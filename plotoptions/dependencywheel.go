package plotoptions

import (
	"chartopts/color"
	"chartopts/option"
	"chartopts/validate"
)

var dependencyWheelOwn = []option.Field{
	option.NewField("borderColor", color.Field()),
	option.NewField("borderWidth", option.Numeric(validate.Min(0))),
	option.NewField("center", option.ListOf(option.NumberOrString())),
	option.NewField("centerInCategory", option.Bool()),
	option.NewField("colorByPoint", option.Bool()),
	option.NewField("colorIndex", option.Integer(validate.Min(0))),
	option.NewField("colors", option.ListOf(color.Field())),
	option.NewField("curveFactor", option.Numeric()),
	option.NewField("levels", option.ListOf(option.Raw())),
	option.NewField("linkOpacity", option.Numeric(validate.Min(0), validate.Max(1))),
	option.NewField("minLinkWidth", option.Numeric(validate.Min(0))),
	option.NewField("nodePadding", option.Numeric()),
	option.NewField("nodeWidth", option.Numeric(validate.Min(0))),
	option.NewField("startAngle", option.Numeric()),
}

// DependencyWheelRegistry declares node and link options of flow diagrams.
var DependencyWheelRegistry = option.MustCompose("DependencyWheelOptions", dependencyWheelOwn, GenericRegistry)

// SankeyRegistry adds link coloring to the dependency wheel options.
var SankeyRegistry = option.MustCompose("SankeyOptions", []option.Field{
	option.NewField("linkColorMode", option.Enum("from", "gradient", "to")),
}, DependencyWheelRegistry)

// DependencyWheelOptions configures dependency wheel series.
type DependencyWheelOptions struct {
	option.Object
	GenericFields
	DependencyWheelFields
}

func NewDependencyWheelOptions() *DependencyWheelOptions {
	d := &DependencyWheelOptions{}
	d.Bind(DependencyWheelRegistry)
	d.GenericFields = GenericFieldsOf(&d.Object)
	d.DependencyWheelFields = DependencyWheelFieldsOf(&d.Object)

	return d
}

// SankeyOptions configures sankey series.
type SankeyOptions struct {
	option.Object
	GenericFields
	DependencyWheelFields
}

func NewSankeyOptions() *SankeyOptions {
	s := &SankeyOptions{}
	s.Bind(SankeyRegistry)
	s.GenericFields = GenericFieldsOf(&s.Object)
	s.DependencyWheelFields = DependencyWheelFieldsOf(&s.Object)

	return s
}

// LinkColorMode is "from", "gradient" or "to": which node's color the links
// take.
func (s *SankeyOptions) LinkColorMode() *string       { return option.Ptr[string](s, "link_color_mode") }
func (s *SankeyOptions) SetLinkColorMode(v any) error { return s.Set("link_color_mode", v) }

type DependencyWheelFields struct {
	obj *option.Object
}

func DependencyWheelFieldsOf(obj *option.Object) DependencyWheelFields {
	return DependencyWheelFields{obj: obj}
}

func (f DependencyWheelFields) BorderColor() *color.Color {
	return option.Get[*color.Color](f.obj, "border_color")
}

func (f DependencyWheelFields) SetBorderColor(v any) error { return f.obj.Set("border_color", v) }

func (f DependencyWheelFields) BorderWidth() *float64 {
	return option.Ptr[float64](f.obj, "border_width")
}

func (f DependencyWheelFields) SetBorderWidth(v any) error { return f.obj.Set("border_width", v) }
func (f DependencyWheelFields) Center() []any              { return option.Get[[]any](f.obj, "center") }
func (f DependencyWheelFields) SetCenter(v any) error      { return f.obj.Set("center", v) }

func (f DependencyWheelFields) CenterInCategory() *bool {
	return option.Ptr[bool](f.obj, "center_in_category")
}

func (f DependencyWheelFields) SetCenterInCategory(v any) error {
	return f.obj.Set("center_in_category", v)
}

func (f DependencyWheelFields) ColorByPoint() *bool         { return option.Ptr[bool](f.obj, "color_by_point") }
func (f DependencyWheelFields) SetColorByPoint(v any) error { return f.obj.Set("color_by_point", v) }
func (f DependencyWheelFields) ColorIndex() *int            { return option.Ptr[int](f.obj, "color_index") }
func (f DependencyWheelFields) SetColorIndex(v any) error   { return f.obj.Set("color_index", v) }

func (f DependencyWheelFields) Colors() []*color.Color {
	return option.Items[*color.Color](f.obj, "colors")
}

func (f DependencyWheelFields) SetColors(v any) error { return f.obj.Set("colors", v) }

func (f DependencyWheelFields) CurveFactor() *float64 {
	return option.Ptr[float64](f.obj, "curve_factor")
}

func (f DependencyWheelFields) SetCurveFactor(v any) error { return f.obj.Set("curve_factor", v) }
func (f DependencyWheelFields) Levels() []any              { return option.Get[[]any](f.obj, "levels") }
func (f DependencyWheelFields) SetLevels(v any) error      { return f.obj.Set("levels", v) }

func (f DependencyWheelFields) LinkOpacity() *float64 {
	return option.Ptr[float64](f.obj, "link_opacity")
}

func (f DependencyWheelFields) SetLinkOpacity(v any) error { return f.obj.Set("link_opacity", v) }

func (f DependencyWheelFields) MinLinkWidth() *float64 {
	return option.Ptr[float64](f.obj, "min_link_width")
}

func (f DependencyWheelFields) SetMinLinkWidth(v any) error { return f.obj.Set("min_link_width", v) }

func (f DependencyWheelFields) NodePadding() *float64 {
	return option.Ptr[float64](f.obj, "node_padding")
}

func (f DependencyWheelFields) SetNodePadding(v any) error { return f.obj.Set("node_padding", v) }
func (f DependencyWheelFields) NodeWidth() *float64        { return option.Ptr[float64](f.obj, "node_width") }
func (f DependencyWheelFields) SetNodeWidth(v any) error   { return f.obj.Set("node_width", v) }
func (f DependencyWheelFields) StartAngle() *float64       { return option.Ptr[float64](f.obj, "start_angle") }
func (f DependencyWheelFields) SetStartAngle(v any) error  { return f.obj.Set("start_angle", v) }
