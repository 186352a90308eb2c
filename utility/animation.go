package utility

import (
	"chartopts/option"
	"chartopts/validate"
)

// AnimationOptions configures an animation: its duration, easing and hooks.
type AnimationOptions struct {
	option.Object
}

var AnimationRegistry = option.NewRegistry("AnimationOptions",
	option.NewField("complete", CallbackField()),
	option.NewField("defer", option.Integer(validate.Min(0))),
	option.NewField("duration", option.Integer(validate.Min(0))),
	option.NewField("easing", option.String()),
	option.NewField("step", CallbackField()),
)

func NewAnimationOptions() *AnimationOptions {
	a := &AnimationOptions{}
	a.Bind(AnimationRegistry)

	return a
}

func (a *AnimationOptions) Complete() *CallbackFunction {
	return option.Ptr[CallbackFunction](a, "complete")
}

func (a *AnimationOptions) SetComplete(v any) error { return a.Set("complete", v) }

// Defer is the delay in milliseconds before the animation starts.
func (a *AnimationOptions) Defer() *int             { return option.Ptr[int](a, "defer") }
func (a *AnimationOptions) SetDefer(v any) error    { return a.Set("defer", v) }
func (a *AnimationOptions) Duration() *int          { return option.Ptr[int](a, "duration") }
func (a *AnimationOptions) SetDuration(v any) error { return a.Set("duration", v) }
func (a *AnimationOptions) Easing() *string         { return option.Ptr[string](a, "easing") }
func (a *AnimationOptions) SetEasing(v any) error   { return a.Set("easing", v) }
func (a *AnimationOptions) Step() *CallbackFunction { return option.Ptr[CallbackFunction](a, "step") }
func (a *AnimationOptions) SetStep(v any) error     { return a.Set("step", v) }
