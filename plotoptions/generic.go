package plotoptions

import (
	"chartopts/color"
	"chartopts/option"
	"chartopts/utility"
	"chartopts/validate"
)

// GenericRegistry declares the options every series type accepts.
var GenericRegistry = option.NewRegistry("GenericTypeOptions",
	option.NewField("accessibility", option.Raw()),
	option.NewField("allowPointSelect", option.Bool()),
	option.NewField("animation", utility.AnimationField()),
	option.NewField("className", option.String()),
	option.NewField("clip", option.Bool()),
	option.NewField("color", color.Field()),
	option.NewField("cursor", option.String()),
	option.NewField("custom", option.Raw()),
	option.NewField("dashStyle", option.EnumExact(DashStyles...)),
	option.NewField("dataLabels", option.Raw()),
	option.NewField("description", option.String()),
	option.NewField("enableMouseTracking", option.Bool()),
	option.NewField("events", option.Raw()),
	option.NewField("includeInDataExport", option.Bool()),
	option.NewField("keys", option.ListOf(option.String())),
	option.NewField("label", option.Raw()),
	option.NewField("legendSymbol", option.EnumExact("rectangle", "lineMarker")),
	option.NewField("linkedTo", option.String()),
	option.NewField("marker", option.Raw()),
	option.NewField("onPoint", option.Raw()),
	option.NewField("opacity", option.Numeric(validate.Min(0), validate.Max(1))),
	option.NewField("point", option.Raw()),
	option.NewField("pointDescriptionFormatter", utility.CallbackField()),
	option.NewField("selected", option.Bool()),
	option.NewField("showCheckbox", option.Bool()),
	option.NewField("showInLegend", option.Bool()),
	option.NewField("skipKeyboardNavigation", option.Bool()),
	option.NewField("sonification", option.Raw()),
	option.NewField("states", option.Nested(utility.NewStates)),
	option.NewField("stickyTracking", option.Bool()),
	option.NewField("threshold", option.Numeric()),
	option.NewField("tooltip", option.Raw()),
	option.NewField("turboThreshold", option.Integer(validate.Min(0))),
	option.NewField("visible", option.Bool()),
)

// GenericTypeOptions is the bare generic option group.
type GenericTypeOptions struct {
	option.Object
	GenericFields
}

func NewGenericTypeOptions() *GenericTypeOptions {
	g := &GenericTypeOptions{}
	g.Bind(GenericRegistry)
	g.GenericFields = GenericFieldsOf(&g.Object)

	return g
}

// GenericFields exposes the generic options on any entity whose registry
// includes GenericRegistry.
type GenericFields struct {
	obj *option.Object
}

// GenericFieldsOf binds the accessors to obj, which must outlive them.
func GenericFieldsOf(obj *option.Object) GenericFields {
	return GenericFields{obj: obj}
}

func (f GenericFields) Accessibility() any              { return f.obj.Get("accessibility") }
func (f GenericFields) SetAccessibility(v any) error    { return f.obj.Set("accessibility", v) }
func (f GenericFields) AllowPointSelect() *bool         { return option.Ptr[bool](f.obj, "allow_point_select") }
func (f GenericFields) SetAllowPointSelect(v any) error { return f.obj.Set("allow_point_select", v) }
func (f GenericFields) Animation() any                  { return f.obj.Get("animation") }
func (f GenericFields) SetAnimation(v any) error        { return f.obj.Set("animation", v) }
func (f GenericFields) ClassName() *string              { return option.Ptr[string](f.obj, "class_name") }
func (f GenericFields) SetClassName(v any) error        { return f.obj.Set("class_name", v) }
func (f GenericFields) Clip() *bool                     { return option.Ptr[bool](f.obj, "clip") }
func (f GenericFields) SetClip(v any) error             { return f.obj.Set("clip", v) }
func (f GenericFields) Color() *color.Color             { return option.Get[*color.Color](f.obj, "color") }
func (f GenericFields) SetColor(v any) error            { return f.obj.Set("color", v) }
func (f GenericFields) Cursor() *string                 { return option.Ptr[string](f.obj, "cursor") }
func (f GenericFields) SetCursor(v any) error           { return f.obj.Set("cursor", v) }
func (f GenericFields) Custom() any                     { return f.obj.Get("custom") }
func (f GenericFields) SetCustom(v any) error           { return f.obj.Set("custom", v) }
func (f GenericFields) DashStyle() *string              { return option.Ptr[string](f.obj, "dash_style") }
func (f GenericFields) SetDashStyle(v any) error        { return f.obj.Set("dash_style", v) }
func (f GenericFields) DataLabels() any                 { return f.obj.Get("data_labels") }
func (f GenericFields) SetDataLabels(v any) error       { return f.obj.Set("data_labels", v) }
func (f GenericFields) Description() *string            { return option.Ptr[string](f.obj, "description") }
func (f GenericFields) SetDescription(v any) error      { return f.obj.Set("description", v) }

func (f GenericFields) EnableMouseTracking() *bool {
	return option.Ptr[bool](f.obj, "enable_mouse_tracking")
}

func (f GenericFields) SetEnableMouseTracking(v any) error {
	return f.obj.Set("enable_mouse_tracking", v)
}

func (f GenericFields) Events() any           { return f.obj.Get("events") }
func (f GenericFields) SetEvents(v any) error { return f.obj.Set("events", v) }

func (f GenericFields) IncludeInDataExport() *bool {
	return option.Ptr[bool](f.obj, "include_in_data_export")
}

func (f GenericFields) SetIncludeInDataExport(v any) error {
	return f.obj.Set("include_in_data_export", v)
}

func (f GenericFields) Keys() []string              { return option.Items[string](f.obj, "keys") }
func (f GenericFields) SetKeys(v any) error         { return f.obj.Set("keys", v) }
func (f GenericFields) Label() any                  { return f.obj.Get("label") }
func (f GenericFields) SetLabel(v any) error        { return f.obj.Set("label", v) }
func (f GenericFields) LegendSymbol() *string       { return option.Ptr[string](f.obj, "legend_symbol") }
func (f GenericFields) SetLegendSymbol(v any) error { return f.obj.Set("legend_symbol", v) }
func (f GenericFields) LinkedTo() *string           { return option.Ptr[string](f.obj, "linked_to") }
func (f GenericFields) SetLinkedTo(v any) error     { return f.obj.Set("linked_to", v) }
func (f GenericFields) Marker() any                 { return f.obj.Get("marker") }
func (f GenericFields) SetMarker(v any) error       { return f.obj.Set("marker", v) }
func (f GenericFields) OnPoint() any                { return f.obj.Get("on_point") }
func (f GenericFields) SetOnPoint(v any) error      { return f.obj.Set("on_point", v) }
func (f GenericFields) Opacity() *float64           { return option.Ptr[float64](f.obj, "opacity") }
func (f GenericFields) SetOpacity(v any) error      { return f.obj.Set("opacity", v) }
func (f GenericFields) Point() any                  { return f.obj.Get("point") }
func (f GenericFields) SetPoint(v any) error        { return f.obj.Set("point", v) }

func (f GenericFields) PointDescriptionFormatter() *utility.CallbackFunction {
	return option.Ptr[utility.CallbackFunction](f.obj, "point_description_formatter")
}

func (f GenericFields) SetPointDescriptionFormatter(v any) error {
	return f.obj.Set("point_description_formatter", v)
}

func (f GenericFields) Selected() *bool             { return option.Ptr[bool](f.obj, "selected") }
func (f GenericFields) SetSelected(v any) error     { return f.obj.Set("selected", v) }
func (f GenericFields) ShowCheckbox() *bool         { return option.Ptr[bool](f.obj, "show_checkbox") }
func (f GenericFields) SetShowCheckbox(v any) error { return f.obj.Set("show_checkbox", v) }
func (f GenericFields) ShowInLegend() *bool         { return option.Ptr[bool](f.obj, "show_in_legend") }
func (f GenericFields) SetShowInLegend(v any) error { return f.obj.Set("show_in_legend", v) }

func (f GenericFields) SkipKeyboardNavigation() *bool {
	return option.Ptr[bool](f.obj, "skip_keyboard_navigation")
}

func (f GenericFields) SetSkipKeyboardNavigation(v any) error {
	return f.obj.Set("skip_keyboard_navigation", v)
}

func (f GenericFields) Sonification() any             { return f.obj.Get("sonification") }
func (f GenericFields) SetSonification(v any) error   { return f.obj.Set("sonification", v) }
func (f GenericFields) States() *utility.States       { return option.Get[*utility.States](f.obj, "states") }
func (f GenericFields) SetStates(v any) error         { return f.obj.Set("states", v) }
func (f GenericFields) StickyTracking() *bool         { return option.Ptr[bool](f.obj, "sticky_tracking") }
func (f GenericFields) SetStickyTracking(v any) error { return f.obj.Set("sticky_tracking", v) }
func (f GenericFields) Threshold() *float64           { return option.Ptr[float64](f.obj, "threshold") }
func (f GenericFields) SetThreshold(v any) error      { return f.obj.Set("threshold", v) }
func (f GenericFields) Tooltip() any                  { return f.obj.Get("tooltip") }
func (f GenericFields) SetTooltip(v any) error        { return f.obj.Set("tooltip", v) }
func (f GenericFields) TurboThreshold() *int          { return option.Ptr[int](f.obj, "turbo_threshold") }
func (f GenericFields) SetTurboThreshold(v any) error { return f.obj.Set("turbo_threshold", v) }
func (f GenericFields) Visible() *bool                { return option.Ptr[bool](f.obj, "visible") }
func (f GenericFields) SetVisible(v any) error        { return f.obj.Set("visible", v) }
