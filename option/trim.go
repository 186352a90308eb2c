package option

import "reflect"

// Trim returns a copy of m without keys whose value is nil, an empty mapping
// or an empty sequence, applied at every nesting level. Sequence elements
// are trimmed but keep their positions. Trim is idempotent.
func Trim(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))

	for k, v := range m {
		if tv, keep := trimValue(v); keep {
			out[k] = tv
		}
	}

	return out
}

func trimValue(v any) (any, bool) {
	switch x := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		t := Trim(x)
		return t, len(t) > 0
	case []any:
		if len(x) == 0 {
			return nil, false
		}

		out := make([]any, len(x))
		for i, item := range x {
			out[i], _ = trimValue(item)
		}

		return out, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice:
		return v, rv.Len() > 0
	case reflect.Pointer:
		return v, !rv.IsNil()
	default:
		return v, true
	}
}
