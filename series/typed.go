package series

import (
	"chartopts/option"
	"chartopts/plotoptions"
)

// SunburstRegistry puts the sunburst options ahead of the series family
// options, so the sunburst declarations of colorIndex and crisp win.
var SunburstRegistry = option.MustCompose("SunburstSeries",
	typedOwn("sunburst"), plotoptions.SunburstRegistry, plotoptions.SeriesRegistry)

// SunburstSeries is a sunburst series.
type SunburstSeries struct {
	option.Object
	BaseFields
	plotoptions.GenericFields
	plotoptions.SeriesFields
	plotoptions.SunburstFields
}

func NewSunburstSeries() *SunburstSeries {
	s := &SunburstSeries{}
	s.Bind(SunburstRegistry)
	s.BaseFields = BaseFieldsOf(&s.Object)
	s.GenericFields = plotoptions.GenericFieldsOf(&s.Object)
	s.SeriesFields = plotoptions.SeriesFieldsOf(&s.Object)
	s.SunburstFields = plotoptions.SunburstFieldsOf(&s.Object)

	return s
}

// ColorIndex and Crisp are declared by both option groups.
func (s *SunburstSeries) ColorIndex() *int          { return s.SunburstFields.ColorIndex() }
func (s *SunburstSeries) SetColorIndex(v any) error { return s.SunburstFields.SetColorIndex(v) }
func (s *SunburstSeries) Crisp() *bool              { return s.SunburstFields.Crisp() }
func (s *SunburstSeries) SetCrisp(v any) error      { return s.SunburstFields.SetCrisp(v) }

// HeatmapRegistry composes the heatmap options, which already extend the
// series family options.
var HeatmapRegistry = option.MustCompose("HeatmapSeries", typedOwn("heatmap"), plotoptions.HeatmapRegistry)

// HeatmapSeries is a heatmap series.
type HeatmapSeries struct {
	option.Object
	BaseFields
	plotoptions.GenericFields
	plotoptions.SeriesFields
	plotoptions.HeatmapFields
}

func NewHeatmapSeries() *HeatmapSeries {
	h := &HeatmapSeries{}
	h.Bind(HeatmapRegistry)
	h.BaseFields = BaseFieldsOf(&h.Object)
	h.GenericFields = plotoptions.GenericFieldsOf(&h.Object)
	h.SeriesFields = plotoptions.SeriesFieldsOf(&h.Object)
	h.HeatmapFields = plotoptions.HeatmapFieldsOf(&h.Object)

	return h
}

var SankeyRegistry = option.MustCompose("SankeySeries",
	typedOwn("sankey"), plotoptions.SankeyRegistry, plotoptions.SeriesRegistry)

// SankeySeries is a sankey series.
type SankeySeries struct {
	option.Object
	BaseFields
	plotoptions.GenericFields
	plotoptions.SeriesFields
	plotoptions.DependencyWheelFields
}

func NewSankeySeries() *SankeySeries {
	s := &SankeySeries{}
	s.Bind(SankeyRegistry)
	s.BaseFields = BaseFieldsOf(&s.Object)
	s.GenericFields = plotoptions.GenericFieldsOf(&s.Object)
	s.SeriesFields = plotoptions.SeriesFieldsOf(&s.Object)
	s.DependencyWheelFields = plotoptions.DependencyWheelFieldsOf(&s.Object)

	return s
}

func (s *SankeySeries) ColorIndex() *int             { return s.DependencyWheelFields.ColorIndex() }
func (s *SankeySeries) SetColorIndex(v any) error    { return s.DependencyWheelFields.SetColorIndex(v) }
func (s *SankeySeries) LinkColorMode() *string       { return option.Ptr[string](s, "link_color_mode") }
func (s *SankeySeries) SetLinkColorMode(v any) error { return s.Set("link_color_mode", v) }
