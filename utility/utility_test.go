package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartopts/color"
	"chartopts/option"
	"chartopts/validate"
)

func TestStates_DefaultsAppliedWhenAbsent(t *testing.T) {
	s, err := StatesFromMapping(map[string]any{
		"hover":    map[string]any{"color": "#ff0000"},
		"inactive": map[string]any{"enabled": false},
		"select":   map[string]any{"borderColor": "#333333"},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"hover":    map[string]any{"brightness": 0.1, "color": "#ff0000", "enabled": true},
		"inactive": map[string]any{"enabled": false, "opacity": 0.2},
		"select":   map[string]any{"borderColor": "#333333", "color": "#cccccc", "enabled": true},
	}, s.ToMapping())
}

func TestStates_ExplicitNullClearsDefault(t *testing.T) {
	h, err := option.Build(NewHoverState, map[string]any{"brightness": nil, "enabled": nil})
	require.NoError(t, err)

	assert.Nil(t, h.Brightness())
	assert.Nil(t, h.Enabled())
	assert.Empty(t, h.ToMapping())
}

func TestStates_DefaultsNotShared(t *testing.T) {
	a, b := NewSelectState(), NewSelectState()
	require.NoError(t, a.SetColor("#111111"))

	assert.Equal(t, "#111111", a.Color().String())
	assert.Equal(t, "#cccccc", b.Color().String())
	assert.NotSame(t, a.BorderColor(), b.BorderColor())
}

func TestHoverState_ColorVariants(t *testing.T) {
	h := NewHoverState()
	require.NoError(t, h.SetBorderColor(map[string]any{
		"radialGradient": map[string]any{"cx": 0.5, "cy": 0.5, "r": 0.7},
		"stops":          []any{[]any{0, "#fff"}, []any{1, "#000"}},
	}))
	assert.Equal(t, color.KindGradient, h.BorderColor().Kind())

	err := h.SetColor(12)
	assert.ErrorIs(t, err, color.ErrResolution)
}

func TestNormalState_Animation(t *testing.T) {
	tests := []struct {
		name     string
		raw      any
		expected any
	}{
		{"bool", false, false},
		{"options", map[string]any{"duration": 300}, map[string]any{"duration": 300}},
		{"unset", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewNormalState()
			require.NoError(t, s.SetAnimation(tt.raw))
			assert.Equal(t, tt.expected, s.ToMapping()["animation"])
		})
	}
}

func TestAnimationOptions_Validation(t *testing.T) {
	tests := []struct {
		name    string
		raw     map[string]any
		wantErr bool
	}{
		{"valid", map[string]any{"duration": 500, "defer": 0, "easing": "easeOutBounce"}, false},
		{"negative duration", map[string]any{"duration": -1}, true},
		{"negative defer", map[string]any{"defer": -10}, true},
		{"callback", map[string]any{"complete": "function () { done(); }"}, false},
		{"arrow callback", map[string]any{"step": "(now, fx) => fx.update()"}, false},
		{"not a function", map[string]any{"complete": "done()"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := option.Build(NewAnimationOptions, tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, validate.ErrValidation)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestCallbackFunction_EncodesAsString(t *testing.T) {
	a := NewAnimationOptions()
	require.NoError(t, a.SetComplete(CallbackFunction("function () {}")))

	assert.Equal(t, CallbackFunction("function () {}"), *a.Complete())
	assert.Equal(t, map[string]any{"complete": "function () {}"}, a.ToMapping())
	assert.Equal(t, map[string]any{"complete": CallbackFunction("function () {}")}, option.LiteralMapping(a))
}

func TestShadowOptions_Bounds(t *testing.T) {
	s := NewShadowOptions()

	assert.NoError(t, s.SetOpacity(0.5))
	assert.ErrorIs(t, s.SetOpacity(2), validate.ErrValidation)
	assert.ErrorIs(t, s.SetWidth(-1), validate.ErrValidation)
	assert.NoError(t, s.SetOffsetX(-3))

	v, err := ShadowField().Decode(true)
	require.NoError(t, err)
	assert.Equal(t, true, v)
}
