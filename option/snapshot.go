package option

// Snapshot is a debug view of an entity: its registry name and the set
// values keyed by internal name. Nested entities are snapshots too, so the
// view holds no registry pointers.
type Snapshot struct {
	Entity string
	Values map[string]any
}

// Snap takes a Snapshot of e.
func Snap(e Entity) Snapshot {
	reg := e.Registry()
	if reg == nil {
		return Snapshot{Values: map[string]any{}}
	}

	s := Snapshot{Entity: reg.name, Values: make(map[string]any, reg.Len())}

	for _, f := range reg.fields {
		if v := e.Get(f.Name); v != nil {
			s.Values[f.Name] = snapValue(v)
		}
	}

	return s
}

func snapValue(v any) any {
	switch x := v.(type) {
	case Entity:
		return Snap(x)
	case Literal:
		return x
	case Valuer:
		return snapValue(x.OptionValue())
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = snapValue(item)
		}

		return out
	default:
		return v
	}
}
