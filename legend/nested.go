package legend

import (
	"chartopts/color"
	"chartopts/option"
	"chartopts/utility"
	"chartopts/validate"
)

// Title is the legend title.
type Title struct {
	option.Object
}

var TitleRegistry = option.NewRegistry("LegendTitle",
	option.NewField("style", option.StringOrMap()),
	option.NewField("text", option.String()),
)

func NewTitle() *Title {
	t := &Title{}
	t.Bind(TitleRegistry)

	return t
}

func (t *Title) Style() any           { return t.Get("style") }
func (t *Title) SetStyle(v any) error { return t.Set("style", v) }
func (t *Title) Text() *string        { return option.Ptr[string](t, "text") }
func (t *Title) SetText(v any) error  { return t.Set("text", v) }

// Navigation configures paging when the legend overflows its max height.
type Navigation struct {
	option.Object
}

var NavigationRegistry = option.NewRegistry("LegendNavigation",
	option.NewField("activeColor", color.Field()),
	option.NewField("animation", utility.AnimationField()),
	option.NewField("arrowSize", option.Numeric(validate.Min(0))),
	option.NewField("enabled", option.Bool()),
	option.NewField("inactiveColor", color.Field()),
	option.NewField("style", option.StringOrMap()),
)

func NewNavigation() *Navigation {
	n := &Navigation{}
	n.Bind(NavigationRegistry)

	return n
}

func (n *Navigation) ActiveColor() *color.Color  { return option.Get[*color.Color](n, "active_color") }
func (n *Navigation) SetActiveColor(v any) error { return n.Set("active_color", v) }
func (n *Navigation) Animation() any             { return n.Get("animation") }
func (n *Navigation) SetAnimation(v any) error   { return n.Set("animation", v) }
func (n *Navigation) ArrowSize() *float64        { return option.Ptr[float64](n, "arrow_size") }
func (n *Navigation) SetArrowSize(v any) error   { return n.Set("arrow_size", v) }
func (n *Navigation) Enabled() *bool             { return option.Ptr[bool](n, "enabled") }
func (n *Navigation) SetEnabled(v any) error     { return n.Set("enabled", v) }

func (n *Navigation) InactiveColor() *color.Color {
	return option.Get[*color.Color](n, "inactive_color")
}

func (n *Navigation) SetInactiveColor(v any) error { return n.Set("inactive_color", v) }
func (n *Navigation) Style() any                   { return n.Get("style") }
func (n *Navigation) SetStyle(v any) error         { return n.Set("style", v) }

// BubbleLegend is the size legend of bubble series.
type BubbleLegend struct {
	option.Object
}

var BubbleLegendRegistry = option.NewRegistry("BubbleLegend",
	option.NewField("borderColor", color.Field()),
	option.NewField("borderWidth", option.Numeric(validate.Min(0))),
	option.NewField("className", option.String()),
	option.NewField("color", color.Field()),
	option.NewField("connectorClassName", option.String()),
	option.NewField("connectorColor", color.Field()),
	option.NewField("connectorDistance", option.Numeric()),
	option.NewField("connectorWidth", option.Numeric(validate.Min(0))),
	option.NewField("enabled", option.Bool()),
	option.NewField("labels", option.Raw()),
	option.NewField("legendIndex", option.Integer()),
	option.NewField("maxSize", option.Numeric(validate.Min(0))),
	option.NewField("minSize", option.Numeric(validate.Min(0))),
	option.NewField("ranges", option.ListOf(option.Raw())),
	option.NewField("sizeBy", option.Enum("area", "width")),
	option.NewField("sizeByAbsoluteValue", option.Bool()),
	option.NewField("zIndex", option.Numeric()).Named("z_index"),
	option.NewField("zThreshold", option.Numeric()).Named("z_threshold"),
)

func NewBubbleLegend() *BubbleLegend {
	b := &BubbleLegend{}
	b.Bind(BubbleLegendRegistry)

	return b
}

func (b *BubbleLegend) BorderColor() *color.Color  { return option.Get[*color.Color](b, "border_color") }
func (b *BubbleLegend) SetBorderColor(v any) error { return b.Set("border_color", v) }
func (b *BubbleLegend) BorderWidth() *float64      { return option.Ptr[float64](b, "border_width") }
func (b *BubbleLegend) SetBorderWidth(v any) error { return b.Set("border_width", v) }
func (b *BubbleLegend) ClassName() *string         { return option.Ptr[string](b, "class_name") }
func (b *BubbleLegend) SetClassName(v any) error   { return b.Set("class_name", v) }
func (b *BubbleLegend) Color() *color.Color        { return option.Get[*color.Color](b, "color") }
func (b *BubbleLegend) SetColor(v any) error       { return b.Set("color", v) }

func (b *BubbleLegend) ConnectorClassName() *string {
	return option.Ptr[string](b, "connector_class_name")
}

func (b *BubbleLegend) SetConnectorClassName(v any) error { return b.Set("connector_class_name", v) }

func (b *BubbleLegend) ConnectorColor() *color.Color {
	return option.Get[*color.Color](b, "connector_color")
}

func (b *BubbleLegend) SetConnectorColor(v any) error { return b.Set("connector_color", v) }

func (b *BubbleLegend) ConnectorDistance() *float64 {
	return option.Ptr[float64](b, "connector_distance")
}

func (b *BubbleLegend) SetConnectorDistance(v any) error { return b.Set("connector_distance", v) }
func (b *BubbleLegend) ConnectorWidth() *float64         { return option.Ptr[float64](b, "connector_width") }
func (b *BubbleLegend) SetConnectorWidth(v any) error    { return b.Set("connector_width", v) }
func (b *BubbleLegend) Enabled() *bool                   { return option.Ptr[bool](b, "enabled") }
func (b *BubbleLegend) SetEnabled(v any) error           { return b.Set("enabled", v) }
func (b *BubbleLegend) Labels() any                      { return b.Get("labels") }
func (b *BubbleLegend) SetLabels(v any) error            { return b.Set("labels", v) }
func (b *BubbleLegend) LegendIndex() *int                { return option.Ptr[int](b, "legend_index") }
func (b *BubbleLegend) SetLegendIndex(v any) error       { return b.Set("legend_index", v) }
func (b *BubbleLegend) MaxSize() *float64                { return option.Ptr[float64](b, "max_size") }
func (b *BubbleLegend) SetMaxSize(v any) error           { return b.Set("max_size", v) }
func (b *BubbleLegend) MinSize() *float64                { return option.Ptr[float64](b, "min_size") }
func (b *BubbleLegend) SetMinSize(v any) error           { return b.Set("min_size", v) }

// Ranges returns the configured bubble ranges as raw mappings.
func (b *BubbleLegend) Ranges() []any         { return option.Get[[]any](b, "ranges") }
func (b *BubbleLegend) SetRanges(v any) error { return b.Set("ranges", v) }
func (b *BubbleLegend) SizeBy() *string       { return option.Ptr[string](b, "size_by") }
func (b *BubbleLegend) SetSizeBy(v any) error { return b.Set("size_by", v) }

func (b *BubbleLegend) SizeByAbsoluteValue() *bool {
	return option.Ptr[bool](b, "size_by_absolute_value")
}

func (b *BubbleLegend) SetSizeByAbsoluteValue(v any) error { return b.Set("size_by_absolute_value", v) }
func (b *BubbleLegend) ZIndex() *float64                   { return option.Ptr[float64](b, "z_index") }
func (b *BubbleLegend) SetZIndex(v any) error              { return b.Set("z_index", v) }
func (b *BubbleLegend) ZThreshold() *float64               { return option.Ptr[float64](b, "z_threshold") }
func (b *BubbleLegend) SetZThreshold(v any) error          { return b.Set("z_threshold", v) }

// KeyboardNavigation toggles keyboard access to legend items.
type KeyboardNavigation struct {
	option.Object
}

var KeyboardNavigationRegistry = option.NewRegistry("LegendKeyboardNavigation",
	option.NewField("enabled", option.Bool()),
)

func NewKeyboardNavigation() *KeyboardNavigation {
	k := &KeyboardNavigation{}
	k.Bind(KeyboardNavigationRegistry)

	return k
}

func (k *KeyboardNavigation) Enabled() *bool         { return option.Ptr[bool](k, "enabled") }
func (k *KeyboardNavigation) SetEnabled(v any) error { return k.Set("enabled", v) }

// Accessibility holds the legend's accessibility options.
type Accessibility struct {
	option.Object
}

var AccessibilityRegistry = option.NewRegistry("LegendAccessibility",
	option.NewField("enabled", option.Bool()),
	option.NewField("keyboardNavigation", option.Nested(NewKeyboardNavigation)),
)

func NewAccessibility() *Accessibility {
	a := &Accessibility{}
	a.Bind(AccessibilityRegistry)

	return a
}

func (a *Accessibility) Enabled() *bool         { return option.Ptr[bool](a, "enabled") }
func (a *Accessibility) SetEnabled(v any) error { return a.Set("enabled", v) }

func (a *Accessibility) KeyboardNavigation() *KeyboardNavigation {
	return option.Get[*KeyboardNavigation](a, "keyboard_navigation")
}

func (a *Accessibility) SetKeyboardNavigation(v any) error { return a.Set("keyboard_navigation", v) }
