package plotoptions

import (
	"chartopts/color"
	"chartopts/option"
	"chartopts/validate"
)

var sunburstOwn = []option.Field{
	option.NewField("allowTraversingTree", option.Bool()),
	option.NewField("borderColor", color.Field()),
	option.NewField("borderWidth", option.Numeric(validate.Min(0))),
	option.NewField("breadcrumbs", option.Raw()),
	option.NewField("center", option.ListOf(option.NumberOrString())),
	option.NewField("colorByPoint", option.Bool()),
	option.NewField("colorIndex", option.Integer(validate.Min(0))),
	option.NewField("colors", option.ListOf(color.Field())),
	option.NewField("crisp", option.Bool()),
	option.NewField("fillColor", color.Field()),
	option.NewField("levelIsConstant", option.Bool()),
	option.NewField("levels", option.ListOf(option.Raw())),
	option.NewField("levelSize", option.Raw()),
	option.NewField("rootId", option.String()).Named("root_id"),
	option.NewField("size", option.NumberOrString(validate.Min(0))),
	option.NewField("slicedOffset", option.Numeric(validate.Min(0))),
	option.NewField("startAngle", option.Numeric()),
}

// SunburstRegistry declares the sunburst options on top of the generic ones.
var SunburstRegistry = option.MustCompose("SunburstOptions", sunburstOwn, GenericRegistry)

// SunburstOptions configures sunburst series.
type SunburstOptions struct {
	option.Object
	GenericFields
	SunburstFields
}

func NewSunburstOptions() *SunburstOptions {
	s := &SunburstOptions{}
	s.Bind(SunburstRegistry)
	s.GenericFields = GenericFieldsOf(&s.Object)
	s.SunburstFields = SunburstFieldsOf(&s.Object)

	return s
}

// SunburstFields exposes the sunburst options on composed entities.
type SunburstFields struct {
	obj *option.Object
}

func SunburstFieldsOf(obj *option.Object) SunburstFields {
	return SunburstFields{obj: obj}
}

func (f SunburstFields) AllowTraversingTree() *bool {
	return option.Ptr[bool](f.obj, "allow_traversing_tree")
}

func (f SunburstFields) SetAllowTraversingTree(v any) error {
	return f.obj.Set("allow_traversing_tree", v)
}

func (f SunburstFields) BorderColor() *color.Color {
	return option.Get[*color.Color](f.obj, "border_color")
}

func (f SunburstFields) SetBorderColor(v any) error     { return f.obj.Set("border_color", v) }
func (f SunburstFields) BorderWidth() *float64          { return option.Ptr[float64](f.obj, "border_width") }
func (f SunburstFields) SetBorderWidth(v any) error     { return f.obj.Set("border_width", v) }
func (f SunburstFields) Breadcrumbs() any               { return f.obj.Get("breadcrumbs") }
func (f SunburstFields) SetBreadcrumbs(v any) error     { return f.obj.Set("breadcrumbs", v) }
func (f SunburstFields) Center() []any                  { return option.Get[[]any](f.obj, "center") }
func (f SunburstFields) SetCenter(v any) error          { return f.obj.Set("center", v) }
func (f SunburstFields) ColorByPoint() *bool            { return option.Ptr[bool](f.obj, "color_by_point") }
func (f SunburstFields) SetColorByPoint(v any) error    { return f.obj.Set("color_by_point", v) }
func (f SunburstFields) ColorIndex() *int               { return option.Ptr[int](f.obj, "color_index") }
func (f SunburstFields) SetColorIndex(v any) error      { return f.obj.Set("color_index", v) }
func (f SunburstFields) Colors() []*color.Color         { return option.Items[*color.Color](f.obj, "colors") }
func (f SunburstFields) SetColors(v any) error          { return f.obj.Set("colors", v) }
func (f SunburstFields) Crisp() *bool                   { return option.Ptr[bool](f.obj, "crisp") }
func (f SunburstFields) SetCrisp(v any) error           { return f.obj.Set("crisp", v) }
func (f SunburstFields) FillColor() *color.Color        { return option.Get[*color.Color](f.obj, "fill_color") }
func (f SunburstFields) SetFillColor(v any) error       { return f.obj.Set("fill_color", v) }
func (f SunburstFields) LevelIsConstant() *bool         { return option.Ptr[bool](f.obj, "level_is_constant") }
func (f SunburstFields) SetLevelIsConstant(v any) error { return f.obj.Set("level_is_constant", v) }
func (f SunburstFields) Levels() []any                  { return option.Get[[]any](f.obj, "levels") }
func (f SunburstFields) SetLevels(v any) error          { return f.obj.Set("levels", v) }
func (f SunburstFields) LevelSize() any                 { return f.obj.Get("level_size") }
func (f SunburstFields) SetLevelSize(v any) error       { return f.obj.Set("level_size", v) }
func (f SunburstFields) RootID() *string                { return option.Ptr[string](f.obj, "root_id") }
func (f SunburstFields) SetRootID(v any) error          { return f.obj.Set("root_id", v) }
func (f SunburstFields) Size() any                      { return f.obj.Get("size") }
func (f SunburstFields) SetSize(v any) error            { return f.obj.Set("size", v) }
func (f SunburstFields) SlicedOffset() *float64         { return option.Ptr[float64](f.obj, "sliced_offset") }
func (f SunburstFields) SetSlicedOffset(v any) error    { return f.obj.Set("sliced_offset", v) }
func (f SunburstFields) StartAngle() *float64           { return option.Ptr[float64](f.obj, "start_angle") }
func (f SunburstFields) SetStartAngle(v any) error      { return f.obj.Set("start_angle", v) }
