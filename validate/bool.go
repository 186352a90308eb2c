package validate

import (
	"reflect"
	"strconv"
	"strings"
)

// Bool validates a boolean. Numbers coerce by truthiness and strings are
// parsed with strconv.ParseBool.
func Bool(value any, allowEmpty bool) (*bool, error) {
	if isEmpty(value) {
		return emptyResult[bool](value, allowEmpty)
	}

	var b bool

	switch v := value.(type) {
	case bool:
		b = v
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return nil, invalid(value, "expected a boolean")
		}

		b = parsed
	default:
		f, err := toFloat(value)
		if err != nil {
			return nil, invalid(value, "expected a boolean, got %T", value)
		}

		b = f != 0
	}

	return &b, nil
}

// Iterable validates a sequence and returns its elements as []any.
// Strings and mappings are not iterables here.
func Iterable(value any, allowEmpty bool) ([]any, error) {
	if isEmpty(value) {
		if allowEmpty {
			return nil, nil
		}

		return nil, invalid(value, "value is required")
	}

	var out []any

	switch v := value.(type) {
	case []any:
		out = v
	case string:
		return nil, invalid(value, "expected a sequence, got string")
	default:
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return nil, invalid(value, "expected a sequence, got %T", value)
		}

		out = make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = rv.Index(i).Interface()
		}
	}

	if len(out) == 0 && !allowEmpty {
		return nil, invalid(value, "sequence is empty")
	}

	return out, nil
}
