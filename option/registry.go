package option

// Registry is the ordered, immutable field set of one entity type.
type Registry struct {
	name   string
	fields []Field
	byName map[string]int
	byKey  map[string]int
}

// NewRegistry declares a registry from its own fields.
// It panics on a duplicate key or name.
func NewRegistry(name string, fields ...Field) *Registry {
	return MustCompose(name, fields)
}

// Compose flattens own fields and parent registries into one registry.
// Fields are taken in order (own first, then each parent in the given order,
// most specific first) and a field is recorded the first time its internal
// name is seen; later declarations of that name are shadowed. A later field
// reusing a seen name under a different key, or a seen key under a different
// name, cannot be reconciled and yields a *CompositionError.
func Compose(name string, own []Field, parents ...*Registry) (*Registry, error) {
	r := &Registry{
		name:   name,
		byName: make(map[string]int),
		byKey:  make(map[string]int),
	}

	for _, f := range own {
		if f.origin == "" {
			f.origin = name
		}

		if _, dup := r.byName[f.Name]; dup {
			return nil, &CompositionError{Entity: name, Field: f.Name, Reason: "declared twice"}
		}

		if err := r.merge(f); err != nil {
			return nil, err
		}
	}

	for _, p := range parents {
		for _, f := range p.fields {
			if err := r.merge(f); err != nil {
				return nil, err
			}
		}
	}

	return r, nil
}

// MustCompose is Compose for package-level registries; it panics on error.
func MustCompose(name string, own []Field, parents ...*Registry) *Registry {
	r, err := Compose(name, own, parents...)
	if err != nil {
		panic(err)
	}

	return r
}

func (r *Registry) merge(f Field) error {
	if i, seen := r.byName[f.Name]; seen {
		if prev := r.fields[i]; prev.Key != f.Key {
			return &CompositionError{
				Entity: r.name,
				Field:  f.Name,
				Reason: "key " + prev.Key + " (" + prev.origin + ") conflicts with key " + f.Key + " (" + f.origin + ")",
			}
		}

		return nil
	}

	if i, seen := r.byKey[f.Key]; seen {
		prev := r.fields[i]

		return &CompositionError{
			Entity: r.name,
			Field:  f.Name,
			Reason: "key " + f.Key + " already maps to " + prev.Name + " (" + prev.origin + ")",
		}
	}

	r.byName[f.Name] = len(r.fields)
	r.byKey[f.Key] = len(r.fields)
	r.fields = append(r.fields, f)

	return nil
}

// Name returns the entity type name.
func (r *Registry) Name() string { return r.name }

// Len returns the number of fields.
func (r *Registry) Len() int { return len(r.fields) }

// Fields returns the fields in precedence order.
func (r *Registry) Fields() []Field {
	return append([]Field(nil), r.fields...)
}

// Field looks a field up by internal name.
func (r *Registry) Field(name string) (Field, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Field{}, false
	}

	return r.fields[i], true
}

// FieldByKey looks a field up by external key.
func (r *Registry) FieldByKey(key string) (Field, bool) {
	i, ok := r.byKey[key]
	if !ok {
		return Field{}, false
	}

	return r.fields[i], true
}

// Keys returns the external keys in precedence order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.fields))
	for i, f := range r.fields {
		keys[i] = f.Key
	}

	return keys
}
