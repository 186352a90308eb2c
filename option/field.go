package option

import (
	"github.com/huandu/xstrings"
	"github.com/tiendc/go-deepcopy"
)

// Field declares one attribute of an entity: its external key, internal
// name and the Type that decodes assigned values.
type Field struct {
	// Key is the camelCase name used in mappings.
	Key string
	// Name is the snake_case name used by accessors.
	Name string
	Type Type

	def    any
	hasDef bool
	origin string
}

// NewField declares a field whose internal name is derived from key.
func NewField(key string, t Type) Field {
	return Field{Key: key, Name: xstrings.ToSnakeCase(key), Type: t}
}

// Named overrides the derived internal name.
func (f Field) Named(name string) Field {
	f.Name = name
	return f
}

// WithDefault sets the raw value assigned when a mapping omits the key.
// The template is copied for every instance, never shared.
func (f Field) WithDefault(v any) Field {
	f.def = v
	f.hasDef = true

	return f
}

// HasDefault reports whether the field carries a default.
func (f Field) HasDefault() bool {
	return f.hasDef
}

// DefaultValue returns a fresh copy of the default template.
func (f Field) DefaultValue() any {
	if !f.hasDef {
		return nil
	}

	return cloneValue(f.def)
}

// Origin names the registry that declared the field.
func (f Field) Origin() string {
	return f.origin
}

// cloneValue copies mappings and sequences so no container is shared
// between entities. Scalars are returned as is.
func cloneValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		var out map[string]any
		if err := deepcopy.Copy(&out, x); err != nil {
			return shallowMap(x)
		}

		return out
	case []any:
		var out []any
		if err := deepcopy.Copy(&out, x); err != nil {
			return append([]any(nil), x...)
		}

		return out
	default:
		return v
	}
}

func shallowMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

// copyContainers rebuilds every sequence and mapping in v. Leaves, including
// nested entities, are shared: they only change through their own Set.
func copyContainers(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, item := range x {
			out[k] = copyContainers(item)
		}

		return out
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = copyContainers(item)
		}

		return out
	default:
		return v
	}
}
