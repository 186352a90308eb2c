package series

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartopts/option"
	"chartopts/validate"
)

func TestSunburstSeries_Composition(t *testing.T) {
	tests := []struct {
		name   string
		origin string
	}{
		{"color_index", "SunburstOptions"},
		{"crisp", "SunburstOptions"},
		{"root_id", "SunburstOptions"},
		{"connect_nulls", "SeriesOptions"},
		{"states", "GenericTypeOptions"},
		{"data", "SunburstSeries"},
		{"type", "SunburstSeries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := SunburstRegistry.Field(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.origin, f.Origin())
		})
	}
}

func TestSunburstSeries_ColorIndex(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		wantErr bool
	}{
		{"three", 3, false},
		{"zero", 0, false},
		{"negative", -1, true},
		{"fraction", 2.7, true},
		{"negative fraction", -0.9, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := option.Build(NewSunburstSeries, map[string]any{"colorIndex": tt.raw})
			if tt.wantErr {
				assert.ErrorIs(t, err, validate.ErrValidation)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, s.ColorIndex())
		})
	}
}

func TestSunburstSeries_RoundTrip(t *testing.T) {
	raw := map[string]any{
		"type":                "sunburst",
		"name":                "World",
		"data":                []any{map[string]any{"id": "0.0", "parent": "", "name": "The World"}},
		"allowTraversingTree": true,
		"colorIndex":          1,
		"connectNulls":        false,
		"levels":              []any{map[string]any{"level": 1, "levelIsConstant": false}},
		"rootId":              "0.0",
	}

	s, err := option.Build(NewSunburstSeries, raw)
	require.NoError(t, err)

	out := s.ToMapping()
	assert.Equal(t, raw, out)
	assert.Equal(t, 1, *s.ColorIndex())
	assert.Equal(t, "0.0", *s.RootID())
	assert.Equal(t, "World", *s.Name())
}

func TestTypedSeries_DefaultType(t *testing.T) {
	tests := []struct {
		entity   option.Entity
		expected string
	}{
		{NewSunburstSeries(), "sunburst"},
		{NewHeatmapSeries(), "heatmap"},
		{NewSankeySeries(), "sankey"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, map[string]any{"type": tt.expected}, tt.entity.ToMapping())
			assert.Error(t, tt.entity.Set("type", "line"))
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		expected any
		wantErr  bool
	}{
		{"sunburst", &SunburstSeries{}, false},
		{"Heatmap", &HeatmapSeries{}, false},
		{"sankey", &SankeySeries{}, false},
		{"line", &Series{}, false},
		{"boxplot", &Series{}, false},
		{"piechart", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownType)
				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.expected, e)
		})
	}
}

func TestFromMapping(t *testing.T) {
	e, err := FromMapping(map[string]any{
		"type":    "heatmap",
		"colsize": 2,
		"data":    []any{[]any{0, 0, 10}, []any{0, 1, 19}},
		"xAxis":   "categories",
		"yAxis":   1,
	})
	require.NoError(t, err)

	h, ok := e.(*HeatmapSeries)
	require.True(t, ok)
	assert.Equal(t, 2, *h.Colsize())
	assert.Equal(t, "categories", h.XAxis())
	assert.Equal(t, 1, h.YAxis())
	assert.Len(t, h.Data(), 2)

	line, err := FromMapping(map[string]any{"type": "spline", "name": "Tokyo"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"type": "spline", "name": "Tokyo"}, line.ToMapping())

	_, err = FromMapping(map[string]any{"type": "heatmap", "colsize": 0})
	assert.ErrorIs(t, err, validate.ErrValidation)
}

func TestSankeySeries(t *testing.T) {
	s, err := option.Build(NewSankeySeries, map[string]any{
		"keys":          []any{"from", "to", "weight"},
		"linkColorMode": "to",
		"colorIndex":    4,
		"nodeWidth":     10,
	})
	require.NoError(t, err)

	assert.Equal(t, "to", *s.LinkColorMode())
	assert.Equal(t, 4, *s.ColorIndex())
	assert.Equal(t, []string{"from", "to", "weight"}, s.Keys())
}

func TestCustomSeries_ParentType(t *testing.T) {
	tests := []struct {
		name     string
		raw      any
		expected string
		wantErr  bool
	}{
		{"known type", "boxplot", "boxplot", false},
		{"series entity", NewSunburstSeries(), "sunburst", false},
		{"unknown type", "candlestick3d", "", true},
		{"not a string", 12, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCustomSeries()
			err := c.SetParentType(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, validate.ErrValidation)
				assert.Nil(t, c.ParentType())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, *c.ParentType())
		})
	}
}

func TestCustomSeries_Type(t *testing.T) {
	c := NewCustomSeries()

	require.NoError(t, c.SetType("LowMedHigh"))
	assert.Equal(t, "lowmedhigh", *c.Type())

	assert.ErrorIs(t, c.SetType("low-med-high"), validate.ErrValidation)
	assert.ErrorIs(t, c.SetType(42), validate.ErrValidation)
}

func TestCustomSeries_RegistrationScript(t *testing.T) {
	tests := []struct {
		name     string
		raw      map[string]any
		expected string
	}{
		{
			"keys",
			map[string]any{"type": "lowmedhigh", "parentType": "boxplot", "keys": []any{"low", "median", "high"}},
			"Highcharts.seriesType('lowmedhigh', 'boxplot', {\n  keys: ['low', 'median', 'high']\n});",
		},
		{
			"no options",
			map[string]any{"type": "mine", "parentType": "line"},
			"Highcharts.seriesType('mine', 'line', {});",
		},
		{
			"draw points",
			map[string]any{
				"type":       "dots",
				"parentType": "scatter",
				"drawPoints": "function () { this.points.forEach(draw); }",
				"lineWidth":  0,
			},
			"Highcharts.seriesType('dots', 'scatter', {\n  lineWidth: 0\n}, {\n  drawPoints: function () { this.points.forEach(draw); }\n});",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := CustomFromMapping(tt.raw)
			require.NoError(t, err)

			script, err := c.RegistrationScript()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, script)
		})
	}
}

func TestCustomSeries_RegistrationScriptIncomplete(t *testing.T) {
	c := NewCustomSeries()
	require.NoError(t, c.SetType("mine"))

	_, err := c.RegistrationScript()
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestSunburstSeries_CenterIsACopy(t *testing.T) {
	s, err := option.Build(NewSunburstSeries, map[string]any{"center": []any{"50%", 120.0}})
	require.NoError(t, err)

	before := s.ToMapping()

	center := s.Center()
	center[0] = map[string]any{"x": -1}
	center[1] = true

	assert.Equal(t, before, s.ToMapping())
	assert.Equal(t, []any{"50%", 120.0}, s.Center())

	_, err = option.Build(NewSunburstSeries, s.ToMapping())
	require.NoError(t, err)
}
