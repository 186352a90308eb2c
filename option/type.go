package option

import "fmt"

// DecodeFunc normalizes a raw value into the stored form of a field.
// A nil result clears the field.
type DecodeFunc func(raw any) (any, error)

// Type describes the values a field accepts and how they are decoded.
type Type struct {
	Kind Kind
	// Label is a short human-readable description, e.g. "number, minimum 0".
	Label string

	decode   DecodeFunc
	children []Type
	entity   func() Entity
}

// NewType builds a Type from a decoder.
func NewType(kind Kind, label string, decode DecodeFunc) Type {
	return Type{Kind: kind, Label: label, decode: decode}
}

// Decode runs the decoder on raw.
func (t Type) Decode(raw any) (any, error) {
	if t.decode == nil {
		return nil, fmt.Errorf("type %s has no decoder", t.Kind)
	}

	v, err := t.decode(raw)
	if err != nil {
		return nil, err
	}

	return v, nil
}

// Children returns the element type of a list, or the alternatives of a union.
func (t Type) Children() []Type {
	return t.children
}

// NewEntity returns a fresh instance for entity types and nil otherwise.
func (t Type) NewEntity() Entity {
	if t.entity == nil {
		return nil
	}

	return t.entity()
}

func (t Type) String() string {
	if t.Label == "" {
		return t.Kind.String()
	}

	return t.Label
}
