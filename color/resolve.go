package color

import (
	"reflect"
	"strings"

	"github.com/goccy/go-json"

	"chartopts/option"
)

var (
	gradientKeys  = []string{"linearGradient", "radialGradient"}
	gradientNames = []string{"linear_gradient", "radial_gradient"}
	patternKeys   = []string{"patternOptions"}
	patternNames  = []string{"pattern_options"}
)

// Resolve turns a raw value into a Color. Empty values resolve to nil.
//
// A mapping is a gradient when it carries linearGradient or radialGradient
// and a pattern when it carries patternOptions; the snake_case spellings of
// those keys are read by field name. A string holding such a JSON object is
// parsed the same way, and falls back to a plain color if it does not decode.
// Any other string is a plain color. A zero Color counts as empty.
func Resolve(raw any) (*Color, error) {
	if isEmpty(raw) {
		return nil, nil
	}

	switch v := raw.(type) {
	case *Color:
		if v.kind == 0 {
			return nil, nil
		}

		return v, nil
	case Color:
		if v.kind == 0 {
			return nil, nil
		}

		return &v, nil
	case *Gradient:
		return FromGradient(v), nil
	case *Pattern:
		return FromPattern(v), nil
	case map[string]any:
		c, ok, err := fromMapping(v)
		if err != nil {
			return nil, &ResolutionError{Value: raw, Err: err}
		}

		if !ok {
			return nil, &ResolutionError{Value: raw}
		}

		return c, nil
	case string:
		return fromString(v), nil
	default:
		return nil, &ResolutionError{Value: raw}
	}
}

// fromMapping reports ok=false when m carries no gradient or pattern marker.
func fromMapping(m map[string]any) (*Color, bool, error) {
	switch {
	case hasAny(m, gradientKeys):
		g, err := option.Build(NewGradient, m)
		if err != nil {
			return nil, true, err
		}

		return FromGradient(g), true, nil
	case hasAny(m, gradientNames):
		g := NewGradient()
		if err := option.DecodeNames(g, m); err != nil {
			return nil, true, err
		}

		return FromGradient(g), true, nil
	case hasAny(m, patternKeys):
		p, err := option.Build(NewPattern, m)
		if err != nil {
			return nil, true, err
		}

		return FromPattern(p), true, nil
	case hasAny(m, patternNames):
		p := NewPattern()
		if err := option.DecodeNames(p, m); err != nil {
			return nil, true, err
		}

		return FromPattern(p), true, nil
	default:
		return nil, false, nil
	}
}

func fromString(s string) *Color {
	if !containsAny(s, gradientKeys) && !containsAny(s, patternKeys) {
		return Plain(s)
	}

	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return Plain(s)
	}

	c, ok, err := fromMapping(m)
	if err != nil || !ok {
		return Plain(s)
	}

	return c
}

func hasAny(m map[string]any, keys []string) bool {
	for _, k := range keys {
		if _, ok := m[k]; ok {
			return true
		}
	}

	return false
}

func containsAny(s string, keys []string) bool {
	for _, k := range keys {
		if strings.Contains(s, k) {
			return true
		}
	}

	return false
}

func isEmpty(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case int:
		return v == 0
	case float64:
		return v == 0
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
