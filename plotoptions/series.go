package plotoptions

import (
	"chartopts/color"
	"chartopts/option"
	"chartopts/utility"
	"chartopts/validate"
)

var seriesOwn = []option.Field{
	option.NewField("animationLimit", option.Numeric()),
	option.NewField("boostBlending", option.Enum("add", "multiply", "darken")),
	option.NewField("boostThreshold", option.Integer(validate.Min(0))),
	option.NewField("colorAxis", option.BoolOr(option.IntegerOrString(validate.Min(0)))),
	option.NewField("colorIndex", option.Integer(validate.Min(0))),
	option.NewField("colorKey", option.String()),
	option.NewField("connectEnds", option.Bool()),
	option.NewField("connectNulls", option.Bool()),
	option.NewField("crisp", option.Bool()),
	option.NewField("cropThreshold", option.Integer(validate.Min(0))),
	option.NewField("dataSorting", option.Raw()),
	option.NewField("dragDrop", option.Raw()),
	option.NewField("findNearestPointBy", option.Enum("x", "xy")),
	option.NewField("getExtremesFromAll", option.Bool()),
	option.NewField("inactiveOtherPoints", option.Bool()),
	option.NewField("linecap", option.String()),
	option.NewField("lineWidth", option.Numeric(validate.Min(0))),
	option.NewField("negativeColor", color.Field()),
	option.NewField("pointDescriptionFormat", option.String()),
	option.NewField("pointInterval", option.Numeric()),
	option.NewField("pointIntervalUnit", option.Enum("day", "month", "year")),
	option.NewField("pointPlacement", option.NumberOrString()),
	option.NewField("pointStart", option.Numeric()),
	option.NewField("relativeXValue", option.Bool()).Named("relative_x_value"),
	option.NewField("shadow", utility.ShadowField()),
	option.NewField("softThreshold", option.Bool()),
	option.NewField("stacking", option.Enum("normal", "percent", "stream", "overlap")),
	option.NewField("step", option.Enum("left", "center", "right")),
	option.NewField("zoneAxis", option.String()),
	option.NewField("zones", option.ListOf(option.Nested(NewZone))),
}

// SeriesRegistry is the option group of cartesian series: the generic
// options plus line, stacking and zone settings.
var SeriesRegistry = option.MustCompose("SeriesOptions", seriesOwn, GenericRegistry)

// SeriesOptions is the composed series option group.
type SeriesOptions struct {
	option.Object
	GenericFields
	SeriesFields
}

func NewSeriesOptions() *SeriesOptions {
	s := &SeriesOptions{}
	s.Bind(SeriesRegistry)
	s.GenericFields = GenericFieldsOf(&s.Object)
	s.SeriesFields = SeriesFieldsOf(&s.Object)

	return s
}

// SeriesOptionsFromMapping builds series options from a camelCase mapping.
func SeriesOptionsFromMapping(raw map[string]any) (*SeriesOptions, error) {
	return option.Build(NewSeriesOptions, raw)
}

// SeriesFields exposes the series options on any entity whose registry
// includes SeriesRegistry.
type SeriesFields struct {
	obj *option.Object
}

func SeriesFieldsOf(obj *option.Object) SeriesFields {
	return SeriesFields{obj: obj}
}

func (f SeriesFields) AnimationLimit() *float64      { return option.Ptr[float64](f.obj, "animation_limit") }
func (f SeriesFields) SetAnimationLimit(v any) error { return f.obj.Set("animation_limit", v) }
func (f SeriesFields) BoostBlending() *string        { return option.Ptr[string](f.obj, "boost_blending") }
func (f SeriesFields) SetBoostBlending(v any) error  { return f.obj.Set("boost_blending", v) }
func (f SeriesFields) BoostThreshold() *int          { return option.Ptr[int](f.obj, "boost_threshold") }
func (f SeriesFields) SetBoostThreshold(v any) error { return f.obj.Set("boost_threshold", v) }
func (f SeriesFields) ColorAxis() any                { return f.obj.Get("color_axis") }
func (f SeriesFields) SetColorAxis(v any) error      { return f.obj.Set("color_axis", v) }
func (f SeriesFields) ColorIndex() *int              { return option.Ptr[int](f.obj, "color_index") }
func (f SeriesFields) SetColorIndex(v any) error     { return f.obj.Set("color_index", v) }
func (f SeriesFields) ColorKey() *string             { return option.Ptr[string](f.obj, "color_key") }
func (f SeriesFields) SetColorKey(v any) error       { return f.obj.Set("color_key", v) }
func (f SeriesFields) ConnectEnds() *bool            { return option.Ptr[bool](f.obj, "connect_ends") }
func (f SeriesFields) SetConnectEnds(v any) error    { return f.obj.Set("connect_ends", v) }
func (f SeriesFields) ConnectNulls() *bool           { return option.Ptr[bool](f.obj, "connect_nulls") }
func (f SeriesFields) SetConnectNulls(v any) error   { return f.obj.Set("connect_nulls", v) }
func (f SeriesFields) Crisp() *bool                  { return option.Ptr[bool](f.obj, "crisp") }
func (f SeriesFields) SetCrisp(v any) error          { return f.obj.Set("crisp", v) }
func (f SeriesFields) CropThreshold() *int           { return option.Ptr[int](f.obj, "crop_threshold") }
func (f SeriesFields) SetCropThreshold(v any) error  { return f.obj.Set("crop_threshold", v) }
func (f SeriesFields) DataSorting() any              { return f.obj.Get("data_sorting") }
func (f SeriesFields) SetDataSorting(v any) error    { return f.obj.Set("data_sorting", v) }
func (f SeriesFields) DragDrop() any                 { return f.obj.Get("drag_drop") }
func (f SeriesFields) SetDragDrop(v any) error       { return f.obj.Set("drag_drop", v) }

func (f SeriesFields) FindNearestPointBy() *string {
	return option.Ptr[string](f.obj, "find_nearest_point_by")
}

func (f SeriesFields) SetFindNearestPointBy(v any) error { return f.obj.Set("find_nearest_point_by", v) }

func (f SeriesFields) GetExtremesFromAll() *bool {
	return option.Ptr[bool](f.obj, "get_extremes_from_all")
}

func (f SeriesFields) SetGetExtremesFromAll(v any) error { return f.obj.Set("get_extremes_from_all", v) }

func (f SeriesFields) InactiveOtherPoints() *bool {
	return option.Ptr[bool](f.obj, "inactive_other_points")
}

func (f SeriesFields) SetInactiveOtherPoints(v any) error {
	return f.obj.Set("inactive_other_points", v)
}

func (f SeriesFields) Linecap() *string         { return option.Ptr[string](f.obj, "linecap") }
func (f SeriesFields) SetLinecap(v any) error   { return f.obj.Set("linecap", v) }
func (f SeriesFields) LineWidth() *float64      { return option.Ptr[float64](f.obj, "line_width") }
func (f SeriesFields) SetLineWidth(v any) error { return f.obj.Set("line_width", v) }

func (f SeriesFields) NegativeColor() *color.Color {
	return option.Get[*color.Color](f.obj, "negative_color")
}

func (f SeriesFields) SetNegativeColor(v any) error { return f.obj.Set("negative_color", v) }

func (f SeriesFields) PointDescriptionFormat() *string {
	return option.Ptr[string](f.obj, "point_description_format")
}

func (f SeriesFields) SetPointDescriptionFormat(v any) error {
	return f.obj.Set("point_description_format", v)
}

func (f SeriesFields) PointInterval() *float64      { return option.Ptr[float64](f.obj, "point_interval") }
func (f SeriesFields) SetPointInterval(v any) error { return f.obj.Set("point_interval", v) }

func (f SeriesFields) PointIntervalUnit() *string {
	return option.Ptr[string](f.obj, "point_interval_unit")
}

func (f SeriesFields) SetPointIntervalUnit(v any) error { return f.obj.Set("point_interval_unit", v) }
func (f SeriesFields) PointPlacement() any              { return f.obj.Get("point_placement") }
func (f SeriesFields) SetPointPlacement(v any) error    { return f.obj.Set("point_placement", v) }
func (f SeriesFields) PointStart() *float64             { return option.Ptr[float64](f.obj, "point_start") }
func (f SeriesFields) SetPointStart(v any) error        { return f.obj.Set("point_start", v) }
func (f SeriesFields) RelativeXValue() *bool            { return option.Ptr[bool](f.obj, "relative_x_value") }
func (f SeriesFields) SetRelativeXValue(v any) error    { return f.obj.Set("relative_x_value", v) }
func (f SeriesFields) Shadow() any                      { return f.obj.Get("shadow") }
func (f SeriesFields) SetShadow(v any) error            { return f.obj.Set("shadow", v) }
func (f SeriesFields) SoftThreshold() *bool             { return option.Ptr[bool](f.obj, "soft_threshold") }
func (f SeriesFields) SetSoftThreshold(v any) error     { return f.obj.Set("soft_threshold", v) }
func (f SeriesFields) Stacking() *string                { return option.Ptr[string](f.obj, "stacking") }
func (f SeriesFields) SetStacking(v any) error          { return f.obj.Set("stacking", v) }
func (f SeriesFields) Step() *string                    { return option.Ptr[string](f.obj, "step") }
func (f SeriesFields) SetStep(v any) error              { return f.obj.Set("step", v) }
func (f SeriesFields) ZoneAxis() *string                { return option.Ptr[string](f.obj, "zone_axis") }
func (f SeriesFields) SetZoneAxis(v any) error          { return f.obj.Set("zone_axis", v) }
func (f SeriesFields) Zones() []*Zone                   { return option.Items[*Zone](f.obj, "zones") }
func (f SeriesFields) SetZones(v any) error             { return f.obj.Set("zones", v) }
