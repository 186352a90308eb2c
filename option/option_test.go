package option

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartopts/validate"
)

type gadget struct{ Object }

var gadgetRegistry = NewRegistry("Gadget",
	NewField("text", String()),
	NewField("size", Integer(validate.Min(1))),
)

func newGadget() *gadget {
	g := &gadget{}
	g.Bind(gadgetRegistry)

	return g
}

type snippet string

func (s snippet) JSLiteral() string { return string(s) }

type widget struct{ Object }

var widgetRegistry = NewRegistry("Widget",
	NewField("enabled", Bool()),
	NewField("align", Enum("left", "center", "right")),
	NewField("itemMarginBottom", Numeric(validate.Min(0))),
	NewField("tags", Raw()).WithDefault([]any{"a", "b"}),
	NewField("style", StringOrMap()),
	NewField("width", NumberOrString(validate.Min(0))),
	NewField("inner", Nested(newGadget)),
	NewField("parts", ListOf(Nested(newGadget))),
	NewField("shadow", BoolOr(Nested(newGadget))),
	NewField("formatter", NewType(KindCallback, "callback", func(raw any) (any, error) {
		s, err := validate.String(raw, true)
		if err != nil || s == nil {
			return nil, err
		}

		return snippet(*s), nil
	})),
	NewField("useHTML", Bool()).Named("use_html"),
)

func newWidget() *widget {
	w := &widget{}
	w.Bind(widgetRegistry)

	return w
}

func TestNewField_DerivesInternalName(t *testing.T) {
	tests := []struct {
		key      string
		expected string
	}{
		{"enabled", "enabled"},
		{"itemMarginBottom", "item_margin_bottom"},
		{"alignColumns", "align_columns"},
		{"linearGradient", "linear_gradient"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewField(tt.key, String()).Name)
		})
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	raw := map[string]any{
		"enabled":          true,
		"align":            "center",
		"itemMarginBottom": 4.0,
		"tags":             []any{"x"},
		"style":            map[string]any{"color": "#333333"},
		"width":            "50%",
		"inner":            map[string]any{"text": "hello", "size": 2.0},
		"parts":            []any{map[string]any{"text": "a"}, map[string]any{"size": 3.0}},
		"shadow":           false,
		"formatter":        "function () { return this.name; }",
		"useHTML":          true,
	}

	w, err := Build(newWidget, raw)
	require.NoError(t, err)

	out := w.ToMapping()
	assert.Equal(t, map[string]any{
		"enabled":          true,
		"align":            "center",
		"itemMarginBottom": 4.0,
		"tags":             []any{"x"},
		"style":            map[string]any{"color": "#333333"},
		"width":            "50%",
		"inner":            map[string]any{"text": "hello", "size": 2},
		"parts":            []any{map[string]any{"text": "a"}, map[string]any{"size": 3}},
		"shadow":           false,
		"formatter":        "function () { return this.name; }",
		"useHTML":          true,
	}, out)

	again, err := Build(newWidget, out)
	require.NoError(t, err)
	assert.Equal(t, out, again.ToMapping())
	assert.Equal(t, out, Trim(out), "trim must be idempotent")
}

func TestDecode_UnknownKeysIgnored(t *testing.T) {
	w, err := Build(newWidget, map[string]any{"totallyUnknownKey": 1, "enabled": true})
	require.NoError(t, err)

	assert.Equal(t, true, *Ptr[bool](w, "enabled"))
	assert.Equal(t, []string{"totallyUnknownKey"}, UnknownKeys(widgetRegistry, map[string]any{"totallyUnknownKey": 1, "enabled": true}))
}

func TestDecode_FailureReturnsNoEntity(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		path string
	}{
		{"enum", map[string]any{"align": "diagonal"}, "align"},
		{"bound", map[string]any{"itemMarginBottom": -5}, "itemMarginBottom"},
		{"nested", map[string]any{"inner": map[string]any{"size": 0}}, "inner.size"},
		{"list item", map[string]any{"parts": []any{map[string]any{}, map[string]any{"size": -1}}}, "parts[1].size"},
		{"shape", map[string]any{"style": 42}, "style"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := Build(newWidget, tt.raw)
			require.Error(t, err)
			assert.Nil(t, w)

			var ferr *FieldError
			require.ErrorAs(t, err, &ferr)
			assert.Equal(t, "Widget", ferr.Entity)
			assert.Equal(t, tt.path, ferr.Path())

			var verr *validate.ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.ErrorIs(t, err, validate.ErrValidation)
		})
	}
}

func TestSet_Revalidates(t *testing.T) {
	w := newWidget()

	require.NoError(t, w.Set("align", "LEFT"))
	assert.Equal(t, "left", Get[string](w, "align"))

	require.Error(t, w.Set("align", "diagonal"))
	assert.Equal(t, "left", Get[string](w, "align"), "failed assignment keeps the previous value")

	require.NoError(t, w.Set("item_margin_bottom", 0))
	assert.Equal(t, 0.0, *Ptr[float64](w, "item_margin_bottom"))

	require.NoError(t, w.Set("align", nil))
	assert.False(t, w.IsSet("align"))

	err := w.Set("no_such_field", 1)
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestSet_Unbound(t *testing.T) {
	var w widget
	assert.ErrorIs(t, w.Set("enabled", true), ErrUnbound)
	assert.Empty(t, w.ToMapping())
}

func TestNested_PassesEntityThrough(t *testing.T) {
	g := newGadget()
	require.NoError(t, g.Set("text", "same"))

	w := newWidget()
	require.NoError(t, w.Set("inner", g))
	assert.Same(t, g, Get[*gadget](w, "inner"))

	require.NoError(t, w.Set("inner", `{"text": "from json"}`))
	assert.Equal(t, "from json", Get[string](Get[*gadget](w, "inner"), "text"))

	require.Error(t, w.Set("inner", "{not json"))
}

func TestDefaults_NotShared(t *testing.T) {
	a := newWidget()
	b := newWidget()

	tagsA := Get[[]any](a, "tags")
	require.Len(t, tagsA, 2)
	tagsA[0] = "mutated"

	assert.Equal(t, []any{"a", "b"}, Get[[]any](b, "tags"))
	assert.Equal(t, []any{"a", "b"}, Get[[]any](newWidget(), "tags"))

	f, ok := widgetRegistry.Field("tags")
	require.True(t, ok)
	assert.Equal(t, []any{"a", "b"}, f.DefaultValue())
}

func TestDecode_AbsentKeyAppliesDefault(t *testing.T) {
	w, err := Build(newWidget, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"tags": []any{"a", "b"}}, w.ToMapping())

	w, err = Build(newWidget, map[string]any{"tags": nil})
	require.NoError(t, err)
	assert.Empty(t, w.ToMapping(), "explicit null clears the default")
}

func TestDecodeNames(t *testing.T) {
	w := newWidget()
	require.NoError(t, DecodeNames(w, map[string]any{"item_margin_bottom": 2, "use_html": true}))

	assert.Equal(t, 2.0, Get[float64](w, "item_margin_bottom"))
	assert.Equal(t, true, Get[bool](w, "use_html"))
}

func TestItems(t *testing.T) {
	w, err := Build(newWidget, map[string]any{
		"parts": []any{map[string]any{"text": "a"}, nil, map[string]any{"text": "b"}},
	})
	require.NoError(t, err)

	parts := Items[*gadget](w, "parts")
	require.Len(t, parts, 2)
	assert.Equal(t, "b", Get[string](parts[1], "text"))

	assert.Equal(t, []any{map[string]any{"text": "a"}, nil, map[string]any{"text": "b"}}, w.ToMapping()["parts"])
}

func TestLiteralMapping(t *testing.T) {
	w := newWidget()
	require.NoError(t, w.Set("formatter", "function () {}"))

	assert.Equal(t, "function () {}", w.ToMapping()["formatter"])
	assert.Equal(t, snippet("function () {}"), LiteralMapping(w)["formatter"])
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Number", KindNumber.String())
	assert.Equal(t, "Union", KindUnion.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
	assert.True(t, KindBool.IsScalar())
	assert.True(t, KindEntity.IsContainer())
	assert.Equal(t, 12, KindTotal)
}

func TestSnap(t *testing.T) {
	w := newWidget()
	require.NoError(t, Decode(w, map[string]any{
		"useHTML":   true,
		"inner":     map[string]any{"text": "a"},
		"parts":     []any{map[string]any{"size": 2}},
		"formatter": "function () { return 1; }",
	}))

	s := Snap(w)
	assert.Equal(t, "Widget", s.Entity)
	assert.Equal(t, true, s.Values["use_html"])
	assert.Equal(t, []any{"a", "b"}, s.Values["tags"])
	assert.Equal(t, snippet("function () { return 1; }"), s.Values["formatter"])
	assert.Equal(t, Snapshot{Entity: "Gadget", Values: map[string]any{"text": "a"}}, s.Values["inner"])
	assert.Equal(t, []any{Snapshot{Entity: "Gadget", Values: map[string]any{"size": 2}}}, s.Values["parts"])
	assert.NotContains(t, s.Values, "enabled")
}

func TestGet_ReturnsContainerCopies(t *testing.T) {
	w := newWidget()
	require.NoError(t, Decode(w, map[string]any{
		"style": map[string]any{"color": "red", "font": map[string]any{"size": "12px"}},
		"parts": []any{map[string]any{"text": "a"}},
	}))

	before := w.ToMapping()

	tags := Get[[]any](w, "tags")
	tags[0] = map[string]any{"x": -1}

	style := Get[map[string]any](w, "style")
	style["color"] = true
	style["font"].(map[string]any)["size"] = 12

	parts := Get[[]any](w, "parts")
	parts[0] = "not a gadget"

	assert.Equal(t, before, w.ToMapping())
	assert.IsType(t, &gadget{}, Get[[]any](w, "parts")[0])
}
