package plotoptions

import (
	"chartopts/color"
	"chartopts/option"
	"chartopts/validate"
)

// TreemapRegistry declares treemap layout and traversal options. Its
// stacking, colorIndex and crisp shadow the series declarations.
var TreemapRegistry = option.MustCompose("TreemapOptions", []option.Field{
	option.NewField("allowTraversingTree", option.Bool()),
	option.NewField("alternateStartingDirection", option.Bool()),
	option.NewField("borderRadius", option.Numeric(validate.Min(0))),
	option.NewField("breadcrumbs", option.Raw()),
	option.NewField("colorByPoint", option.Bool()),
	option.NewField("colorIndex", option.Integer(validate.Min(0))),
	option.NewField("colors", option.ListOf(color.Field())),
	option.NewField("crisp", option.Bool()),
	option.NewField("ignoreHiddenPoint", option.Bool()),
	option.NewField("interactByLeaf", option.Bool()),
	option.NewField("layoutAlgorithm", option.VariableName()),
	option.NewField("layoutStartingDirection", option.Enum("vertical", "horizontal")),
	option.NewField("levelIsConstant", option.Bool()),
	option.NewField("levels", option.ListOf(option.Raw())),
	option.NewField("sortIndex", option.Integer(validate.Min(0))),
	option.NewField("stacking", option.Enum("normal", "percent", "stream", "overlap")),
}, SeriesRegistry)

// TreemapOptions configures treemap series.
type TreemapOptions struct {
	option.Object
	GenericFields
	SeriesFields
}

func NewTreemapOptions() *TreemapOptions {
	t := &TreemapOptions{}
	t.Bind(TreemapRegistry)
	t.GenericFields = GenericFieldsOf(&t.Object)
	t.SeriesFields = SeriesFieldsOf(&t.Object)

	return t
}

// Colors returns the point colors, in order.
func (t *TreemapOptions) Colors() []*color.Color { return option.Items[*color.Color](t, "colors") }
func (t *TreemapOptions) SetColors(v any) error  { return t.Set("colors", v) }

// LayoutAlgorithm is a built-in name such as "sliceAndDice" or the name of
// a custom algorithm registered on the client.
func (t *TreemapOptions) LayoutAlgorithm() *string       { return option.Ptr[string](t, "layout_algorithm") }
func (t *TreemapOptions) SetLayoutAlgorithm(v any) error { return t.Set("layout_algorithm", v) }

func (t *TreemapOptions) AllowTraversingTree() *bool {
	return option.Ptr[bool](t, "allow_traversing_tree")
}

func (t *TreemapOptions) SetAllowTraversingTree(v any) error { return t.Set("allow_traversing_tree", v) }

func (t *TreemapOptions) AlternateStartingDirection() *bool {
	return option.Ptr[bool](t, "alternate_starting_direction")
}

func (t *TreemapOptions) SetAlternateStartingDirection(v any) error {
	return t.Set("alternate_starting_direction", v)
}

func (t *TreemapOptions) BorderRadius() *float64           { return option.Ptr[float64](t, "border_radius") }
func (t *TreemapOptions) SetBorderRadius(v any) error      { return t.Set("border_radius", v) }
func (t *TreemapOptions) Breadcrumbs() any                 { return t.Get("breadcrumbs") }
func (t *TreemapOptions) SetBreadcrumbs(v any) error       { return t.Set("breadcrumbs", v) }
func (t *TreemapOptions) ColorByPoint() *bool              { return option.Ptr[bool](t, "color_by_point") }
func (t *TreemapOptions) SetColorByPoint(v any) error      { return t.Set("color_by_point", v) }
func (t *TreemapOptions) IgnoreHiddenPoint() *bool         { return option.Ptr[bool](t, "ignore_hidden_point") }
func (t *TreemapOptions) SetIgnoreHiddenPoint(v any) error { return t.Set("ignore_hidden_point", v) }
func (t *TreemapOptions) InteractByLeaf() *bool            { return option.Ptr[bool](t, "interact_by_leaf") }
func (t *TreemapOptions) SetInteractByLeaf(v any) error    { return t.Set("interact_by_leaf", v) }

func (t *TreemapOptions) LayoutStartingDirection() *string {
	return option.Ptr[string](t, "layout_starting_direction")
}

func (t *TreemapOptions) SetLayoutStartingDirection(v any) error {
	return t.Set("layout_starting_direction", v)
}

func (t *TreemapOptions) LevelIsConstant() *bool         { return option.Ptr[bool](t, "level_is_constant") }
func (t *TreemapOptions) SetLevelIsConstant(v any) error { return t.Set("level_is_constant", v) }
func (t *TreemapOptions) Levels() []any                  { return option.Get[[]any](t, "levels") }
func (t *TreemapOptions) SetLevels(v any) error          { return t.Set("levels", v) }
func (t *TreemapOptions) SortIndex() *int                { return option.Ptr[int](t, "sort_index") }
func (t *TreemapOptions) SetSortIndex(v any) error       { return t.Set("sort_index", v) }
