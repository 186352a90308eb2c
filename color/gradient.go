package color

import (
	"chartopts/option"
	"chartopts/validate"
)

// LinearGradient holds the start (x1, y1) and end (x2, y2) of a linear
// gradient, as fractions of the shape's bounding box.
type LinearGradient struct {
	option.Object
}

var LinearGradientRegistry = option.NewRegistry("LinearGradient",
	option.NewField("x1", option.Numeric()).Named("x1"),
	option.NewField("y1", option.Numeric()).Named("y1"),
	option.NewField("x2", option.Numeric()).Named("x2"),
	option.NewField("y2", option.Numeric()).Named("y2"),
)

func NewLinearGradient() *LinearGradient {
	g := &LinearGradient{}
	g.Bind(LinearGradientRegistry)

	return g
}

func (g *LinearGradient) X1() *float64      { return option.Ptr[float64](g, "x1") }
func (g *LinearGradient) SetX1(v any) error { return g.Set("x1", v) }
func (g *LinearGradient) Y1() *float64      { return option.Ptr[float64](g, "y1") }
func (g *LinearGradient) SetY1(v any) error { return g.Set("y1", v) }
func (g *LinearGradient) X2() *float64      { return option.Ptr[float64](g, "x2") }
func (g *LinearGradient) SetX2(v any) error { return g.Set("x2", v) }
func (g *LinearGradient) Y2() *float64      { return option.Ptr[float64](g, "y2") }
func (g *LinearGradient) SetY2(v any) error { return g.Set("y2", v) }

// RadialGradient holds the center (cx, cy) and radius r of a radial
// gradient, as fractions of the shape's bounding box.
type RadialGradient struct {
	option.Object
}

var RadialGradientRegistry = option.NewRegistry("RadialGradient",
	option.NewField("cx", option.Numeric()),
	option.NewField("cy", option.Numeric()),
	option.NewField("r", option.Numeric(validate.Min(0))),
)

func NewRadialGradient() *RadialGradient {
	g := &RadialGradient{}
	g.Bind(RadialGradientRegistry)

	return g
}

func (g *RadialGradient) CX() *float64      { return option.Ptr[float64](g, "cx") }
func (g *RadialGradient) SetCX(v any) error { return g.Set("cx", v) }
func (g *RadialGradient) CY() *float64      { return option.Ptr[float64](g, "cy") }
func (g *RadialGradient) SetCY(v any) error { return g.Set("cy", v) }
func (g *RadialGradient) R() *float64       { return option.Ptr[float64](g, "r") }
func (g *RadialGradient) SetR(v any) error  { return g.Set("r", v) }

// Stop is one color stop of a gradient. It encodes as [offset, color].
type Stop struct {
	Offset float64
	Color  string
}

func (s Stop) OptionValue() any {
	return []any{s.Offset, s.Color}
}

func stopType() option.Type {
	return option.NewType(option.KindList, "[offset 0..1, color]", func(raw any) (any, error) {
		var offset, value any

		switch v := raw.(type) {
		case nil:
			return nil, nil
		case Stop:
			offset, value = v.Offset, v.Color
		case *Stop:
			if v == nil {
				return nil, nil
			}

			offset, value = v.Offset, v.Color
		default:
			pair, err := validate.Iterable(raw, false)
			if err != nil {
				return nil, err
			}

			if len(pair) != 2 {
				return nil, &validate.ValidationError{Value: raw, Reason: "a gradient stop needs exactly [offset, color]"}
			}

			offset, value = pair[0], pair[1]
		}

		o, err := validate.Numeric(offset, false, validate.Min(0), validate.Max(1))
		if err != nil {
			return nil, err
		}

		c, err := validate.String(value, false)
		if err != nil {
			return nil, err
		}

		return Stop{Offset: *o, Color: *c}, nil
	})
}

// linearShorthand accepts the [x1, y1, x2, y2] array form.
func linearShorthand(raw any) (any, error) {
	list, ok := raw.([]any)
	if !ok {
		return raw, nil
	}

	if len(list) != 4 {
		return nil, &validate.ValidationError{Value: raw, Reason: "linearGradient array needs [x1, y1, x2, y2]"}
	}

	return map[string]any{"x1": list[0], "y1": list[1], "x2": list[2], "y2": list[3]}, nil
}

// Gradient is a linear or radial color gradient with its stops.
type Gradient struct {
	option.Object
}

var GradientRegistry = option.NewRegistry("Gradient",
	option.NewField("linearGradient", option.Coerce(option.Nested(NewLinearGradient), linearShorthand)),
	option.NewField("radialGradient", option.Nested(NewRadialGradient)),
	option.NewField("stops", option.ListOf(stopType())),
)

// NewGradient returns an empty gradient.
func NewGradient() *Gradient {
	g := &Gradient{}
	g.Bind(GradientRegistry)

	return g
}

// GradientFromMapping builds a gradient from its camelCase mapping.
func GradientFromMapping(raw map[string]any) (*Gradient, error) {
	return option.Build(NewGradient, raw)
}

func (g *Gradient) LinearGradient() *LinearGradient {
	return option.Get[*LinearGradient](g, "linear_gradient")
}

func (g *Gradient) SetLinearGradient(v any) error { return g.Set("linear_gradient", v) }

func (g *Gradient) RadialGradient() *RadialGradient {
	return option.Get[*RadialGradient](g, "radial_gradient")
}

func (g *Gradient) SetRadialGradient(v any) error { return g.Set("radial_gradient", v) }

// Stops returns the color stops in order.
func (g *Gradient) Stops() []Stop { return option.Items[Stop](g, "stops") }

func (g *Gradient) SetStops(v any) error { return g.Set("stops", v) }
