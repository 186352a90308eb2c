package plotoptions

import (
	"chartopts/color"
	"chartopts/option"
	"chartopts/validate"
)

// HeatmapRegistry adds cell sizing to the series options.
var HeatmapRegistry = option.MustCompose("HeatmapOptions", []option.Field{
	option.NewField("borderRadius", option.Numeric(validate.Min(0))),
	option.NewField("colsize", option.Integer(validate.Min(1))),
	option.NewField("nullColor", color.Field()),
	option.NewField("pointPadding", option.Numeric()),
	option.NewField("rowsize", option.Integer(validate.Min(1))),
}, SeriesRegistry)

// HeatmapOptions configures heatmap series.
type HeatmapOptions struct {
	option.Object
	GenericFields
	SeriesFields
	HeatmapFields
}

func NewHeatmapOptions() *HeatmapOptions {
	h := &HeatmapOptions{}
	h.Bind(HeatmapRegistry)
	h.GenericFields = GenericFieldsOf(&h.Object)
	h.SeriesFields = SeriesFieldsOf(&h.Object)
	h.HeatmapFields = HeatmapFieldsOf(&h.Object)

	return h
}

type HeatmapFields struct {
	obj *option.Object
}

func HeatmapFieldsOf(obj *option.Object) HeatmapFields {
	return HeatmapFields{obj: obj}
}

func (f HeatmapFields) BorderRadius() *float64      { return option.Ptr[float64](f.obj, "border_radius") }
func (f HeatmapFields) SetBorderRadius(v any) error { return f.obj.Set("border_radius", v) }
func (f HeatmapFields) Colsize() *int               { return option.Ptr[int](f.obj, "colsize") }
func (f HeatmapFields) SetColsize(v any) error      { return f.obj.Set("colsize", v) }
func (f HeatmapFields) NullColor() *color.Color     { return option.Get[*color.Color](f.obj, "null_color") }
func (f HeatmapFields) SetNullColor(v any) error    { return f.obj.Set("null_color", v) }
func (f HeatmapFields) PointPadding() *float64      { return option.Ptr[float64](f.obj, "point_padding") }
func (f HeatmapFields) SetPointPadding(v any) error { return f.obj.Set("point_padding", v) }
func (f HeatmapFields) Rowsize() *int               { return option.Ptr[int](f.obj, "rowsize") }
func (f HeatmapFields) SetRowsize(v any) error      { return f.obj.Set("rowsize", v) }
