package option

import (
	"sort"

	"go.uber.org/zap"
)

// Decode assigns every registry field of e from raw, keyed by external
// camelCase keys. An absent key assigns the field default, or clears the
// field when there is none; a present nil always clears. Keys the registry
// does not declare are ignored. The first failing field aborts the decode.
func Decode(e Entity, raw map[string]any) error {
	return decodeBy(e, raw, func(f Field) string { return f.Key })
}

// DecodeNames is Decode for mappings keyed by internal snake_case names.
func DecodeNames(e Entity, raw map[string]any) error {
	return decodeBy(e, raw, func(f Field) string { return f.Name })
}

// Build constructs an entity with newT and decodes raw into it. On failure
// the partially built entity is discarded.
func Build[T Entity](newT func() T, raw map[string]any) (T, error) {
	e := newT()
	if err := Decode(e, raw); err != nil {
		var zero T
		return zero, err
	}

	return e, nil
}

func decodeBy(e Entity, raw map[string]any, keyOf func(Field) string) error {
	reg := e.Registry()
	if reg == nil {
		return ErrUnbound
	}

	for _, f := range reg.fields {
		v, present := raw[keyOf(f)]
		if !present {
			v = f.DefaultValue()
		}

		if err := e.Set(f.Name, v); err != nil {
			return err
		}
	}

	if unknown := unknownKeys(reg, raw, keyOf); len(unknown) > 0 {
		zap.S().Debugw("Ignoring unrecognized option keys",
			"entity", reg.name,
			"keys", unknown)
	}

	return nil
}

// UnknownKeys returns the keys of raw that reg does not declare, sorted.
func UnknownKeys(reg *Registry, raw map[string]any) []string {
	return unknownKeys(reg, raw, func(f Field) string { return f.Key })
}

func unknownKeys(reg *Registry, raw map[string]any, keyOf func(Field) string) []string {
	known := make(map[string]struct{}, len(reg.fields))
	for _, f := range reg.fields {
		known[keyOf(f)] = struct{}{}
	}

	var unknown []string

	for k := range raw {
		if _, ok := known[k]; !ok {
			unknown = append(unknown, k)
		}
	}

	sort.Strings(unknown)

	return unknown
}
