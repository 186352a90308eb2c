package utility

import (
	"strings"

	"chartopts/option"
	"chartopts/validate"
)

// CallbackFunction is JavaScript function source, e.g.
// "function () { return this.name; }". It is kept verbatim.
type CallbackFunction string

// JSLiteral returns the function source unquoted.
func (f CallbackFunction) JSLiteral() string { return string(f) }

func (f CallbackFunction) String() string { return string(f) }

func isFunctionSource(s string) bool {
	return strings.HasPrefix(s, "function") || strings.Contains(s, "=>")
}

// ParseCallback checks that raw looks like a function expression.
func ParseCallback(raw any) (*CallbackFunction, error) {
	if f, ok := raw.(CallbackFunction); ok {
		raw = string(f)
	}

	s, err := validate.String(raw, true)
	if err != nil || s == nil {
		return nil, err
	}

	src := strings.TrimSpace(*s)
	if src == "" {
		return nil, nil
	}

	if !isFunctionSource(src) {
		return nil, &validate.ValidationError{Value: raw, Reason: "not a JavaScript function expression"}
	}

	f := CallbackFunction(src)

	return &f, nil
}

// CallbackField is the option Type of callback fields.
func CallbackField() option.Type {
	return option.NewType(option.KindCallback, "function", func(raw any) (any, error) {
		f, err := ParseCallback(raw)
		if err != nil || f == nil {
			return nil, err
		}

		return *f, nil
	})
}
