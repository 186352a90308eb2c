package option

import (
	"strings"

	"github.com/goccy/go-json"

	"chartopts/validate"
)

func deref[T any](v *T, err error) (any, error) {
	if err != nil || v == nil {
		return nil, err
	}

	return *v, nil
}

func boundsLabel(base string, bounds []validate.Bound) string {
	parts := []string{base}
	for _, b := range bounds {
		parts = append(parts, b.String())
	}

	return strings.Join(parts, ", ")
}

func shapeError(raw any, want string) error {
	return &validate.ValidationError{Value: raw, Reason: "expected " + want}
}

// String accepts any string.
func String() Type {
	return NewType(KindString, "string", func(raw any) (any, error) {
		return deref(validate.String(raw, true))
	})
}

// Numeric accepts a number within bounds.
func Numeric(bounds ...validate.Bound) Type {
	return NewType(KindNumber, boundsLabel("number", bounds), func(raw any) (any, error) {
		return deref(validate.Numeric(raw, true, bounds...))
	})
}

// Integer accepts a whole number within bounds.
func Integer(bounds ...validate.Bound) Type {
	return NewType(KindInteger, boundsLabel("integer", bounds), func(raw any) (any, error) {
		return deref(validate.Integer(raw, true, bounds...))
	})
}

// Bool accepts a boolean.
func Bool() Type {
	return NewType(KindBool, "bool", func(raw any) (any, error) {
		return deref(validate.Bool(raw, true))
	})
}

// Enum accepts one of allowed, case-insensitively, stored lower-cased.
func Enum(allowed ...string) Type {
	return NewType(KindEnum, strings.Join(allowed, "|"), func(raw any) (any, error) {
		return deref(validate.Enum(raw, true, allowed...))
	})
}

// EnumExact accepts one of allowed, case-sensitively.
func EnumExact(allowed ...string) Type {
	return NewType(KindEnum, strings.Join(allowed, "|"), func(raw any) (any, error) {
		return deref(validate.EnumExact(raw, true, allowed...))
	})
}

// VariableName accepts a JavaScript identifier.
func VariableName() Type {
	return NewType(KindString, "identifier", func(raw any) (any, error) {
		return deref(validate.VariableName(raw, true))
	})
}

// NumberOrString keeps strings as they are and validates anything else as
// a bounded number.
func NumberOrString(bounds ...validate.Bound) Type {
	return NewType(KindUnion, boundsLabel("number|string", bounds), func(raw any) (any, error) {
		if s, ok := raw.(string); ok {
			return deref(validate.String(s, true))
		}

		return deref(validate.Numeric(raw, true, bounds...))
	})
}

// IntegerOrString keeps strings as they are and validates anything else as
// a bounded integer, e.g. axis references by index or id.
func IntegerOrString(bounds ...validate.Bound) Type {
	return NewType(KindUnion, boundsLabel("integer|string", bounds), func(raw any) (any, error) {
		if s, ok := raw.(string); ok {
			return deref(validate.String(s, true))
		}

		return deref(validate.Integer(raw, true, bounds...))
	})
}

// StringOrMap accepts a string or a mapping, e.g. CSS style objects.
func StringOrMap() Type {
	return NewType(KindUnion, "string|mapping", func(raw any) (any, error) {
		switch v := raw.(type) {
		case nil:
			return nil, nil
		case string:
			return deref(validate.String(v, true))
		case map[string]any:
			if len(v) == 0 {
				return nil, nil
			}

			return cloneValue(v), nil
		default:
			return nil, shapeError(raw, "a string or a mapping")
		}
	})
}

// Raw accepts any JSON-compatible value and stores a private copy.
func Raw() Type {
	return NewType(KindRaw, "any", func(raw any) (any, error) {
		return cloneValue(raw), nil
	})
}

// Nested accepts an entity of type T, a camelCase mapping or a JSON object
// string. Entities pass through unchanged.
func Nested[T Entity](newT func() T) Type {
	t := NewType(KindEntity, "", func(raw any) (any, error) {
		switch v := raw.(type) {
		case nil:
			return nil, nil
		case T:
			if isNil(v) {
				return nil, nil
			}

			return v, nil
		case map[string]any:
			if len(v) == 0 {
				return nil, nil
			}

			return Build(newT, v)
		case string:
			if strings.TrimSpace(v) == "" {
				return nil, nil
			}

			var m map[string]any
			if err := json.Unmarshal([]byte(v), &m); err != nil {
				return nil, shapeError(raw, "a JSON object")
			}

			return Build(newT, m)
		default:
			return nil, shapeError(raw, "a mapping")
		}
	})
	t.entity = func() Entity { return newT() }
	t.Label = t.NewEntity().Registry().Name()

	return t
}

// ListOf accepts a sequence and decodes every element with elem.
// Elements that decode to nil keep their position.
func ListOf(elem Type) Type {
	t := NewType(KindList, "list of "+elem.String(), func(raw any) (any, error) {
		items, err := validate.Iterable(raw, true)
		if err != nil || items == nil {
			return nil, err
		}

		out := make([]any, len(items))
		for i, item := range items {
			v, err := elem.Decode(item)
			if err != nil {
				return nil, &ItemError{Index: i, Err: err}
			}

			out[i] = v
		}

		return out, nil
	})
	t.children = []Type{elem}

	return t
}

// BoolOr accepts a boolean or whatever alt accepts, e.g. `shadow: false`
// or a shadow options mapping.
func BoolOr(alt Type) Type {
	t := NewType(KindUnion, "bool|"+alt.String(), func(raw any) (any, error) {
		if b, ok := raw.(bool); ok {
			return b, nil
		}

		return alt.Decode(raw)
	})
	t.children = []Type{alt}

	return t
}

// Coerce runs fn on raw values before t decodes them, e.g. to accept a
// shorthand form of an entity. Kind and nesting of t are kept.
func Coerce(t Type, fn func(raw any) (any, error)) Type {
	inner := t.decode
	t.decode = func(raw any) (any, error) {
		v, err := fn(raw)
		if err != nil {
			return nil, err
		}

		return inner(v)
	}

	return t
}
