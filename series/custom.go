package series

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"chartopts/internal/jsliteral"
	"chartopts/option"
	"chartopts/plotoptions"
	"chartopts/utility"
	"chartopts/validate"
)

// ErrIncomplete is returned by RegistrationScript when type or parentType
// is unset.
var ErrIncomplete = errors.New("custom series needs both type and parentType")

// customTypeField lower-cases the name before checking it is an identifier.
func customTypeField() option.Type {
	return option.NewType(option.KindString, "identifier", func(raw any) (any, error) {
		if s, ok := raw.(string); ok {
			raw = strings.ToLower(s)
		}

		v, err := validate.VariableName(raw, true)
		if err != nil || v == nil {
			return nil, err
		}

		return *v, nil
	})
}

// parentTypeField accepts a known type name or another series entity, whose
// type is taken.
func parentTypeField() option.Type {
	return option.NewType(option.KindEnum, "series type", func(raw any) (any, error) {
		if e, ok := raw.(option.Entity); ok {
			raw = e.Get("type")
		}

		s, err := validate.String(raw, true)
		if err != nil || s == nil {
			return nil, err
		}

		if !IsKnownType(*s) {
			return nil, &validate.ValidationError{Value: raw, Reason: fmt.Sprintf("%v: %q", ErrUnknownType, *s)}
		}

		return *s, nil
	})
}

func customOwn() []option.Field {
	own := []option.Field{
		option.NewField("drawPoints", utility.CallbackField()),
		option.NewField("parentType", parentTypeField()),
	}

	for _, f := range baseOwn {
		if f.Key == "type" {
			f = option.NewField("type", customTypeField())
		}

		own = append(own, f)
	}

	return own
}

// CustomRegistry declares a series type derived from an existing one.
var CustomRegistry = option.MustCompose("CustomSeries", customOwn(), plotoptions.SeriesRegistry)

// CustomSeries defines a new series type on top of ParentType. Its other
// options become the defaults of the new type.
type CustomSeries struct {
	option.Object
	BaseFields
	plotoptions.GenericFields
	plotoptions.SeriesFields
}

func NewCustomSeries() *CustomSeries {
	c := &CustomSeries{}
	c.Bind(CustomRegistry)
	c.BaseFields = BaseFieldsOf(&c.Object)
	c.GenericFields = plotoptions.GenericFieldsOf(&c.Object)
	c.SeriesFields = plotoptions.SeriesFieldsOf(&c.Object)

	return c
}

// CustomFromMapping builds a custom series from a camelCase mapping.
func CustomFromMapping(raw map[string]any) (*CustomSeries, error) {
	return option.Build(NewCustomSeries, raw)
}

// DrawPoints renders the points; it runs with the series as this.
func (c *CustomSeries) DrawPoints() *utility.CallbackFunction {
	return option.Ptr[utility.CallbackFunction](c, "draw_points")
}

func (c *CustomSeries) SetDrawPoints(v any) error { return c.Set("draw_points", v) }
func (c *CustomSeries) ParentType() *string       { return option.Ptr[string](c, "parent_type") }
func (c *CustomSeries) SetParentType(v any) error { return c.Set("parent_type", v) }

var registrationTemplate = template.Must(template.New("registration").Parse(
	`Highcharts.seriesType({{.Type}}, {{.ParentType}}, {{.Options}}{{if .Props}}, {{.Props}}{{end}});`))

type registrationData struct {
	Type       string
	ParentType string
	Options    string
	Props      string
}

// RegistrationScript returns the JavaScript that registers the type, e.g.
//
//	Highcharts.seriesType('lowmedhigh', 'boxplot', {
//	  keys: ['low', 'median', 'high']
//	});
//
// drawPoints, when set, is passed as the prototype members argument.
func (c *CustomSeries) RegistrationScript() (string, error) {
	typ, parent := c.Type(), c.ParentType()
	if typ == nil || parent == nil {
		return "", ErrIncomplete
	}

	options := option.LiteralMapping(c)
	delete(options, "type")
	delete(options, "parentType")

	draw, hasDraw := options["drawPoints"]
	delete(options, "drawPoints")

	data := registrationData{
		Type:       jsliteral.Quote(*typ),
		ParentType: jsliteral.Quote(*parent),
		Options:    jsliteral.Marshal(options),
	}

	if hasDraw {
		data.Props = jsliteral.Marshal(map[string]any{"drawPoints": draw})
	}

	var buf bytes.Buffer
	if err := registrationTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing registration template: %w", err)
	}

	return buf.String(), nil
}
