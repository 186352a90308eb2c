package option

// Encode converts a stored value to its mapping form: entities become
// untrimmed mappings, Valuers their OptionValue and Literals their source
// string. Containers are encoded element-wise.
func Encode(v any) any {
	return encode(v, false)
}

// LiteralMapping is ToMapping with Literal values kept in typed form, for
// writers that emit JavaScript rather than JSON.
func LiteralMapping(e Entity) map[string]any {
	return Trim(encodeEntity(e, true))
}

func encode(v any, literal bool) any {
	switch x := v.(type) {
	case Literal:
		if literal {
			return x
		}

		return x.JSLiteral()
	case Entity:
		return encodeEntity(x, literal)
	case Valuer:
		return encode(x.OptionValue(), literal)
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, item := range x {
			out[k] = encode(item, literal)
		}

		return out
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = encode(item, literal)
		}

		return out
	default:
		return v
	}
}

// encodeEntity walks the registry in precedence order, so a composed entity
// emits each key once, from its most specific declaration.
func encodeEntity(e Entity, literal bool) map[string]any {
	reg := e.Registry()
	if reg == nil {
		return map[string]any{}
	}

	out := make(map[string]any, reg.Len())

	for _, f := range reg.fields {
		v := e.Get(f.Name)
		if v == nil {
			continue
		}

		out[f.Key] = encode(v, literal)
	}

	return out
}
