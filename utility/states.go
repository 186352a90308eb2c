package utility

import (
	"chartopts/color"
	"chartopts/option"
)

// HoverState applies while the pointer is over a series or point.
type HoverState struct {
	option.Object
}

var HoverStateRegistry = option.NewRegistry("HoverState",
	option.NewField("animation", option.Nested(NewAnimationOptions)),
	option.NewField("borderColor", color.Field()),
	option.NewField("brightness", option.Numeric()).WithDefault(0.1),
	option.NewField("color", color.Field()),
	option.NewField("enabled", option.Bool()).WithDefault(true),
)

func NewHoverState() *HoverState {
	s := &HoverState{}
	s.Bind(HoverStateRegistry)

	return s
}

func (s *HoverState) Animation() *AnimationOptions {
	return option.Get[*AnimationOptions](s, "animation")
}

func (s *HoverState) SetAnimation(v any) error { return s.Set("animation", v) }

func (s *HoverState) BorderColor() *color.Color  { return option.Get[*color.Color](s, "border_color") }
func (s *HoverState) SetBorderColor(v any) error { return s.Set("border_color", v) }

// Brightness lightens (positive) or darkens (negative) the hovered point.
func (s *HoverState) Brightness() *float64      { return option.Ptr[float64](s, "brightness") }
func (s *HoverState) SetBrightness(v any) error { return s.Set("brightness", v) }
func (s *HoverState) Color() *color.Color       { return option.Get[*color.Color](s, "color") }
func (s *HoverState) SetColor(v any) error      { return s.Set("color", v) }
func (s *HoverState) Enabled() *bool            { return option.Ptr[bool](s, "enabled") }
func (s *HoverState) SetEnabled(v any) error    { return s.Set("enabled", v) }

// InactiveState applies to the other series while one is hovered.
type InactiveState struct {
	option.Object
}

var InactiveStateRegistry = option.NewRegistry("InactiveState",
	option.NewField("animation", option.Nested(NewAnimationOptions)),
	option.NewField("enabled", option.Bool()).WithDefault(true),
	option.NewField("opacity", option.Numeric()).WithDefault(0.2),
)

func NewInactiveState() *InactiveState {
	s := &InactiveState{}
	s.Bind(InactiveStateRegistry)

	return s
}

func (s *InactiveState) Animation() *AnimationOptions {
	return option.Get[*AnimationOptions](s, "animation")
}

func (s *InactiveState) SetAnimation(v any) error { return s.Set("animation", v) }
func (s *InactiveState) Enabled() *bool           { return option.Ptr[bool](s, "enabled") }
func (s *InactiveState) SetEnabled(v any) error   { return s.Set("enabled", v) }
func (s *InactiveState) Opacity() *float64        { return option.Ptr[float64](s, "opacity") }
func (s *InactiveState) SetOpacity(v any) error   { return s.Set("opacity", v) }

// NormalState is the resting state. Only its animation is configurable.
type NormalState struct {
	option.Object
}

var NormalStateRegistry = option.NewRegistry("NormalState",
	option.NewField("animation", AnimationField()),
)

func NewNormalState() *NormalState {
	s := &NormalState{}
	s.Bind(NormalStateRegistry)

	return s
}

// Animation returns a bool or *AnimationOptions.
func (s *NormalState) Animation() any           { return s.Get("animation") }
func (s *NormalState) SetAnimation(v any) error { return s.Set("animation", v) }

// SelectState applies to selected points.
type SelectState struct {
	option.Object
}

var SelectStateRegistry = option.NewRegistry("SelectState",
	option.NewField("animation", option.Nested(NewAnimationOptions)),
	option.NewField("borderColor", color.Field()).WithDefault("#000000"),
	option.NewField("color", color.Field()).WithDefault("#cccccc"),
	option.NewField("enabled", option.Bool()).WithDefault(true),
)

func NewSelectState() *SelectState {
	s := &SelectState{}
	s.Bind(SelectStateRegistry)

	return s
}

func (s *SelectState) Animation() *AnimationOptions {
	return option.Get[*AnimationOptions](s, "animation")
}

func (s *SelectState) SetAnimation(v any) error   { return s.Set("animation", v) }
func (s *SelectState) BorderColor() *color.Color  { return option.Get[*color.Color](s, "border_color") }
func (s *SelectState) SetBorderColor(v any) error { return s.Set("border_color", v) }
func (s *SelectState) Color() *color.Color        { return option.Get[*color.Color](s, "color") }
func (s *SelectState) SetColor(v any) error       { return s.Set("color", v) }
func (s *SelectState) Enabled() *bool             { return option.Ptr[bool](s, "enabled") }
func (s *SelectState) SetEnabled(v any) error     { return s.Set("enabled", v) }

// States groups the per-state settings of a series or marker.
type States struct {
	option.Object
}

var StatesRegistry = option.NewRegistry("States",
	option.NewField("hover", option.Nested(NewHoverState)),
	option.NewField("inactive", option.Nested(NewInactiveState)),
	option.NewField("normal", option.Nested(NewNormalState)),
	option.NewField("select", option.Nested(NewSelectState)),
)

func NewStates() *States {
	s := &States{}
	s.Bind(StatesRegistry)

	return s
}

// StatesFromMapping builds States from a camelCase mapping.
func StatesFromMapping(raw map[string]any) (*States, error) {
	return option.Build(NewStates, raw)
}

func (s *States) Hover() *HoverState       { return option.Get[*HoverState](s, "hover") }
func (s *States) SetHover(v any) error     { return s.Set("hover", v) }
func (s *States) Inactive() *InactiveState { return option.Get[*InactiveState](s, "inactive") }
func (s *States) SetInactive(v any) error  { return s.Set("inactive", v) }
func (s *States) Normal() *NormalState     { return option.Get[*NormalState](s, "normal") }
func (s *States) SetNormal(v any) error    { return s.Set("normal", v) }
func (s *States) Select() *SelectState     { return option.Get[*SelectState](s, "select") }
func (s *States) SetSelect(v any) error    { return s.Set("select", v) }
