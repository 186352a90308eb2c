package option

import (
	"reflect"
)

// Entity is a configuration object backed by a field registry.
type Entity interface {
	Registry() *Registry
	Get(name string) any
	Set(name string, raw any) error
	ToMapping() map[string]any
}

// Valuer is implemented by leaf values that encode to something other than
// themselves, e.g. colors and gradient stops.
type Valuer interface {
	OptionValue() any
}

// Literal is implemented by values emitted verbatim into JavaScript, such as
// callback functions. In plain mappings they encode to their source string.
type Literal interface {
	JSLiteral() string
}

// Object is the embeddable base of every entity. The zero value is unusable;
// constructors call Bind.
type Object struct {
	reg    *Registry
	values map[string]any
}

// Bind attaches the registry and assigns field defaults.
// It panics if a default does not pass its own field's decoder.
func (o *Object) Bind(reg *Registry) {
	o.reg = reg
	o.values = make(map[string]any)

	for _, f := range reg.fields {
		if !f.HasDefault() {
			continue
		}

		if err := o.Set(f.Name, f.DefaultValue()); err != nil {
			panic(err)
		}
	}
}

// Registry returns the bound registry.
func (o *Object) Registry() *Registry {
	return o.reg
}

// Get returns the decoded value of a field, or nil when unset. Sequences and
// mappings come back as copies, so writes to them never reach the entity.
func (o *Object) Get(name string) any {
	return copyContainers(o.values[name])
}

// IsSet reports whether a field holds a value.
func (o *Object) IsSet(name string) bool {
	_, ok := o.values[name]
	return ok
}

// Set decodes raw through the field's Type and stores the result.
// A nil result clears the field. This is the only mutation path.
func (o *Object) Set(name string, raw any) error {
	if o.reg == nil {
		return ErrUnbound
	}

	f, ok := o.reg.Field(name)
	if !ok {
		return &FieldError{Entity: o.reg.name, Key: name, Name: name, Err: ErrUnknownField}
	}

	v, err := f.Type.Decode(raw)
	if err != nil {
		return &FieldError{Entity: o.reg.name, Key: f.Key, Name: f.Name, Err: err}
	}

	if v == nil || isNil(v) {
		delete(o.values, name)
		return nil
	}

	o.values[name] = v

	return nil
}

// Clear unsets every field, defaults included.
func (o *Object) Clear() {
	clear(o.values)
}

// ToMapping encodes every set field under its external key and trims the
// result.
func (o *Object) ToMapping() map[string]any {
	if o.reg == nil {
		return map[string]any{}
	}

	return Trim(encodeEntity(o, false))
}

// OptionValue makes a nested entity encode to its trimmed mapping.
func (o *Object) OptionValue() any {
	return o.ToMapping()
}

// Get returns the value of a field as T, or the zero value when the field is
// unset or holds another type.
func Get[T any](e Entity, name string) T {
	v, _ := e.Get(name).(T)
	return v
}

// Ptr returns a copy of the value of a field as *T, or nil.
func Ptr[T any](e Entity, name string) *T {
	v, ok := e.Get(name).(T)
	if !ok {
		return nil
	}

	return &v
}

// Items returns the elements of a list field that hold a T, in order.
func Items[T any](e Entity, name string) []T {
	list, _ := e.Get(name).([]any)
	out := make([]T, 0, len(list))

	for _, item := range list {
		if v, ok := item.(T); ok {
			out = append(out, v)
		}
	}

	return out
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
