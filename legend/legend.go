package legend

import (
	"chartopts/color"
	"chartopts/option"
	"chartopts/utility"
	"chartopts/validate"
)

// Legend is the box listing a symbol and a name for each series or point.
type Legend struct {
	option.Object
}

var Registry = option.NewRegistry("Legend",
	option.NewField("accessibility", option.Nested(NewAccessibility)),
	option.NewField("align", option.Enum("left", "center", "right")),
	option.NewField("alignColumns", option.Bool()),
	option.NewField("backgroundColor", color.Field()),
	option.NewField("borderColor", color.Field()),
	option.NewField("borderRadius", option.Numeric()),
	option.NewField("borderWidth", option.Numeric()),
	option.NewField("bubbleLegend", option.Nested(NewBubbleLegend)),
	option.NewField("className", option.String()),
	option.NewField("enabled", option.Bool()),
	option.NewField("floating", option.Bool()),
	option.NewField("itemCheckboxStyle", option.StringOrMap()),
	option.NewField("itemDistance", option.Numeric(validate.Min(0))),
	option.NewField("itemHiddenStyle", option.StringOrMap()),
	option.NewField("itemHoverStyle", option.StringOrMap()),
	option.NewField("itemMarginBottom", option.Numeric(validate.Min(0))),
	option.NewField("itemMarginTop", option.Numeric(validate.Min(0))),
	option.NewField("itemStyle", option.StringOrMap()),
	option.NewField("itemWidth", option.Numeric(validate.Min(0))),
	option.NewField("labelFormat", option.String()),
	option.NewField("labelFormatter", utility.CallbackField()),
	option.NewField("layout", option.Enum("horizontal", "vertical", "proximate")),
	option.NewField("margin", option.Numeric()),
	option.NewField("maxHeight", option.Numeric(validate.Min(0))),
	option.NewField("navigation", option.Nested(NewNavigation)),
	option.NewField("padding", option.Numeric()),
	option.NewField("reversed", option.Bool()),
	option.NewField("rtl", option.Bool()),
	option.NewField("shadow", utility.ShadowField()),
	option.NewField("squareSymbol", option.Bool()),
	option.NewField("symbolHeight", option.Numeric(validate.Min(0))),
	option.NewField("symbolPadding", option.Numeric()),
	option.NewField("symbolRadius", option.Numeric()),
	option.NewField("symbolWidth", option.Numeric(validate.Min(0))),
	option.NewField("title", option.Nested(NewTitle)),
	option.NewField("useHTML", option.Bool()).Named("use_html"),
	option.NewField("verticalAlign", option.Enum("top", "middle", "bottom")),
	option.NewField("width", option.NumberOrString(validate.Min(0))),
	option.NewField("x", option.Numeric()),
	option.NewField("y", option.Numeric()),
)

// New returns an empty legend.
func New() *Legend {
	l := &Legend{}
	l.Bind(Registry)

	return l
}

// FromMapping builds a legend from a camelCase mapping. Unknown keys are
// ignored; the first invalid value fails the whole legend.
func FromMapping(raw map[string]any) (*Legend, error) {
	return option.Build(New, raw)
}

// FromJSON builds a legend from a JSON object.
func FromJSON(data []byte) (*Legend, error) {
	l := New()
	if err := option.FromJSON(l, data); err != nil {
		return nil, err
	}

	return l, nil
}

func (l *Legend) Accessibility() *Accessibility {
	return option.Get[*Accessibility](l, "accessibility")
}

func (l *Legend) SetAccessibility(v any) error { return l.Set("accessibility", v) }

// Align is "left", "center" or "right".
func (l *Legend) Align() *string              { return option.Ptr[string](l, "align") }
func (l *Legend) SetAlign(v any) error        { return l.Set("align", v) }
func (l *Legend) AlignColumns() *bool         { return option.Ptr[bool](l, "align_columns") }
func (l *Legend) SetAlignColumns(v any) error { return l.Set("align_columns", v) }

func (l *Legend) BackgroundColor() *color.Color {
	return option.Get[*color.Color](l, "background_color")
}

func (l *Legend) SetBackgroundColor(v any) error   { return l.Set("background_color", v) }
func (l *Legend) BorderColor() *color.Color        { return option.Get[*color.Color](l, "border_color") }
func (l *Legend) SetBorderColor(v any) error       { return l.Set("border_color", v) }
func (l *Legend) BorderRadius() *float64           { return option.Ptr[float64](l, "border_radius") }
func (l *Legend) SetBorderRadius(v any) error      { return l.Set("border_radius", v) }
func (l *Legend) BorderWidth() *float64            { return option.Ptr[float64](l, "border_width") }
func (l *Legend) SetBorderWidth(v any) error       { return l.Set("border_width", v) }
func (l *Legend) BubbleLegend() *BubbleLegend      { return option.Get[*BubbleLegend](l, "bubble_legend") }
func (l *Legend) SetBubbleLegend(v any) error      { return l.Set("bubble_legend", v) }
func (l *Legend) ClassName() *string               { return option.Ptr[string](l, "class_name") }
func (l *Legend) SetClassName(v any) error         { return l.Set("class_name", v) }
func (l *Legend) Enabled() *bool                   { return option.Ptr[bool](l, "enabled") }
func (l *Legend) SetEnabled(v any) error           { return l.Set("enabled", v) }
func (l *Legend) Floating() *bool                  { return option.Ptr[bool](l, "floating") }
func (l *Legend) SetFloating(v any) error          { return l.Set("floating", v) }
func (l *Legend) ItemCheckboxStyle() any           { return l.Get("item_checkbox_style") }
func (l *Legend) SetItemCheckboxStyle(v any) error { return l.Set("item_checkbox_style", v) }
func (l *Legend) ItemDistance() *float64           { return option.Ptr[float64](l, "item_distance") }
func (l *Legend) SetItemDistance(v any) error      { return l.Set("item_distance", v) }
func (l *Legend) ItemHiddenStyle() any             { return l.Get("item_hidden_style") }
func (l *Legend) SetItemHiddenStyle(v any) error   { return l.Set("item_hidden_style", v) }
func (l *Legend) ItemHoverStyle() any              { return l.Get("item_hover_style") }
func (l *Legend) SetItemHoverStyle(v any) error    { return l.Set("item_hover_style", v) }
func (l *Legend) ItemMarginBottom() *float64       { return option.Ptr[float64](l, "item_margin_bottom") }
func (l *Legend) SetItemMarginBottom(v any) error  { return l.Set("item_margin_bottom", v) }
func (l *Legend) ItemMarginTop() *float64          { return option.Ptr[float64](l, "item_margin_top") }
func (l *Legend) SetItemMarginTop(v any) error     { return l.Set("item_margin_top", v) }

// ItemStyle is a CSS style mapping or a raw style string.
func (l *Legend) ItemStyle() any             { return l.Get("item_style") }
func (l *Legend) SetItemStyle(v any) error   { return l.Set("item_style", v) }
func (l *Legend) ItemWidth() *float64        { return option.Ptr[float64](l, "item_width") }
func (l *Legend) SetItemWidth(v any) error   { return l.Set("item_width", v) }
func (l *Legend) LabelFormat() *string       { return option.Ptr[string](l, "label_format") }
func (l *Legend) SetLabelFormat(v any) error { return l.Set("label_format", v) }

func (l *Legend) LabelFormatter() *utility.CallbackFunction {
	return option.Ptr[utility.CallbackFunction](l, "label_formatter")
}

func (l *Legend) SetLabelFormatter(v any) error { return l.Set("label_formatter", v) }
func (l *Legend) Layout() *string               { return option.Ptr[string](l, "layout") }
func (l *Legend) SetLayout(v any) error         { return l.Set("layout", v) }
func (l *Legend) Margin() *float64              { return option.Ptr[float64](l, "margin") }
func (l *Legend) SetMargin(v any) error         { return l.Set("margin", v) }
func (l *Legend) MaxHeight() *float64           { return option.Ptr[float64](l, "max_height") }
func (l *Legend) SetMaxHeight(v any) error      { return l.Set("max_height", v) }
func (l *Legend) Navigation() *Navigation       { return option.Get[*Navigation](l, "navigation") }
func (l *Legend) SetNavigation(v any) error     { return l.Set("navigation", v) }
func (l *Legend) Padding() *float64             { return option.Ptr[float64](l, "padding") }
func (l *Legend) SetPadding(v any) error        { return l.Set("padding", v) }
func (l *Legend) Reversed() *bool               { return option.Ptr[bool](l, "reversed") }
func (l *Legend) SetReversed(v any) error       { return l.Set("reversed", v) }
func (l *Legend) RTL() *bool                    { return option.Ptr[bool](l, "rtl") }
func (l *Legend) SetRTL(v any) error            { return l.Set("rtl", v) }

// Shadow returns false, true or *utility.ShadowOptions.
func (l *Legend) Shadow() any                  { return l.Get("shadow") }
func (l *Legend) SetShadow(v any) error        { return l.Set("shadow", v) }
func (l *Legend) SquareSymbol() *bool          { return option.Ptr[bool](l, "square_symbol") }
func (l *Legend) SetSquareSymbol(v any) error  { return l.Set("square_symbol", v) }
func (l *Legend) SymbolHeight() *float64       { return option.Ptr[float64](l, "symbol_height") }
func (l *Legend) SetSymbolHeight(v any) error  { return l.Set("symbol_height", v) }
func (l *Legend) SymbolPadding() *float64      { return option.Ptr[float64](l, "symbol_padding") }
func (l *Legend) SetSymbolPadding(v any) error { return l.Set("symbol_padding", v) }
func (l *Legend) SymbolRadius() *float64       { return option.Ptr[float64](l, "symbol_radius") }
func (l *Legend) SetSymbolRadius(v any) error  { return l.Set("symbol_radius", v) }
func (l *Legend) SymbolWidth() *float64        { return option.Ptr[float64](l, "symbol_width") }
func (l *Legend) SetSymbolWidth(v any) error   { return l.Set("symbol_width", v) }
func (l *Legend) Title() *Title                { return option.Get[*Title](l, "title") }
func (l *Legend) SetTitle(v any) error         { return l.Set("title", v) }
func (l *Legend) UseHTML() *bool               { return option.Ptr[bool](l, "use_html") }
func (l *Legend) SetUseHTML(v any) error       { return l.Set("use_html", v) }
func (l *Legend) VerticalAlign() *string       { return option.Ptr[string](l, "vertical_align") }
func (l *Legend) SetVerticalAlign(v any) error { return l.Set("vertical_align", v) }

// Width is a pixel count (float64) or a percentage string such as "40%".
func (l *Legend) Width() any           { return l.Get("width") }
func (l *Legend) SetWidth(v any) error { return l.Set("width", v) }
func (l *Legend) X() *float64          { return option.Ptr[float64](l, "x") }
func (l *Legend) SetX(v any) error     { return l.Set("x", v) }
func (l *Legend) Y() *float64          { return option.Ptr[float64](l, "y") }
func (l *Legend) SetY(v any) error     { return l.Set("y", v) }
