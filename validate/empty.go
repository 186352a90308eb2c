package validate

import "reflect"

// isEmpty reports whether value counts as absent: nil, a typed nil pointer
// or an empty string.
func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}

func emptyResult[T any](value any, allowEmpty bool) (*T, error) {
	if allowEmpty {
		return nil, nil
	}

	return nil, invalid(value, "value is required")
}
