package series

import (
	"chartopts/option"
	"chartopts/plotoptions"
	"chartopts/validate"
)

var baseOwn = []option.Field{
	option.NewField("data", option.ListOf(option.Raw())),
	option.NewField("id", option.String()),
	option.NewField("index", option.Integer(validate.Min(0))),
	option.NewField("legendIndex", option.Integer(validate.Min(0))),
	option.NewField("name", option.String()),
	option.NewField("stack", option.NumberOrString()),
	option.NewField("type", option.Enum(Types...)),
	option.NewField("xAxis", option.IntegerOrString(validate.Min(0))).Named("x_axis"),
	option.NewField("yAxis", option.IntegerOrString(validate.Min(0))).Named("y_axis"),
	option.NewField("zIndex", option.Numeric()).Named("z_index"),
}

// typedOwn is baseOwn with the type fixed to name.
func typedOwn(name string) []option.Field {
	own := make([]option.Field, 0, len(baseOwn))

	for _, f := range baseOwn {
		if f.Key == "type" {
			f = option.NewField("type", option.Enum(name)).WithDefault(name)
		}

		own = append(own, f)
	}

	return own
}

// BaseRegistry is a series of any type without type-specific options,
// e.g. line, area or column.
var BaseRegistry = option.MustCompose("SeriesBase", baseOwn, plotoptions.SeriesRegistry)

// Series is a series of a type without a dedicated entity.
type Series struct {
	option.Object
	BaseFields
	plotoptions.GenericFields
	plotoptions.SeriesFields
}

func NewSeries() *Series {
	s := &Series{}
	s.Bind(BaseRegistry)
	s.BaseFields = BaseFieldsOf(&s.Object)
	s.GenericFields = plotoptions.GenericFieldsOf(&s.Object)
	s.SeriesFields = plotoptions.SeriesFieldsOf(&s.Object)

	return s
}

// BaseFields exposes the per-series fields shared by every series entity.
type BaseFields struct {
	obj *option.Object
}

func BaseFieldsOf(obj *option.Object) BaseFields {
	return BaseFields{obj: obj}
}

// Data returns the points, each a number, an array or a point mapping.
func (f BaseFields) Data() []any { return option.Get[[]any](f.obj, "data") }

// XAxis is an axis index (int) or id (string).
func (f BaseFields) XAxis() any { return f.obj.Get("x_axis") }

// YAxis is an axis index (int) or id (string).
func (f BaseFields) YAxis() any { return f.obj.Get("y_axis") }

func (f BaseFields) SetData(v any) error        { return f.obj.Set("data", v) }
func (f BaseFields) ID() *string                { return option.Ptr[string](f.obj, "id") }
func (f BaseFields) SetID(v any) error          { return f.obj.Set("id", v) }
func (f BaseFields) Index() *int                { return option.Ptr[int](f.obj, "index") }
func (f BaseFields) SetIndex(v any) error       { return f.obj.Set("index", v) }
func (f BaseFields) LegendIndex() *int          { return option.Ptr[int](f.obj, "legend_index") }
func (f BaseFields) SetLegendIndex(v any) error { return f.obj.Set("legend_index", v) }
func (f BaseFields) Name() *string              { return option.Ptr[string](f.obj, "name") }
func (f BaseFields) SetName(v any) error        { return f.obj.Set("name", v) }
func (f BaseFields) Stack() any                 { return f.obj.Get("stack") }
func (f BaseFields) SetStack(v any) error       { return f.obj.Set("stack", v) }
func (f BaseFields) Type() *string              { return option.Ptr[string](f.obj, "type") }
func (f BaseFields) SetType(v any) error        { return f.obj.Set("type", v) }
func (f BaseFields) SetXAxis(v any) error       { return f.obj.Set("x_axis", v) }
func (f BaseFields) SetYAxis(v any) error       { return f.obj.Set("y_axis", v) }
func (f BaseFields) ZIndex() *float64           { return option.Ptr[float64](f.obj, "z_index") }
func (f BaseFields) SetZIndex(v any) error      { return f.obj.Set("z_index", v) }
