package color

import (
	"chartopts/option"
)

// Color is a tagged union of a plain color string, a Gradient and a Pattern.
// Exactly one variant is set.
type Color struct {
	kind     Kind
	value    string
	gradient *Gradient
	pattern  *Pattern
}

// Plain wraps a color string such as "#FF0000" or "rgba(0,0,0,0.5)".
func Plain(s string) *Color {
	return &Color{kind: KindPlain, value: s}
}

// FromGradient wraps g without copying it.
func FromGradient(g *Gradient) *Color {
	return &Color{kind: KindGradient, gradient: g}
}

// FromPattern wraps p without copying it.
func FromPattern(p *Pattern) *Color {
	return &Color{kind: KindPattern, pattern: p}
}

// Kind returns the variant tag.
func (c *Color) Kind() Kind { return c.kind }

// String returns the plain color string, or "" for other variants.
func (c *Color) String() string { return c.value }

// Gradient returns the gradient variant, or nil.
func (c *Color) Gradient() *Gradient { return c.gradient }

// Pattern returns the pattern variant, or nil.
func (c *Color) Pattern() *Pattern { return c.pattern }

// OptionValue encodes a plain color as its string and the other variants
// as their mappings.
func (c *Color) OptionValue() any {
	switch c.kind {
	case KindGradient:
		return c.gradient.ToMapping()
	case KindPattern:
		return c.pattern.ToMapping()
	default:
		return c.value
	}
}

// Field is the option Type shared by every color-like field.
func Field() option.Type {
	return option.NewType(option.KindColor, "color|gradient|pattern", func(raw any) (any, error) {
		c, err := Resolve(raw)
		if err != nil || c == nil {
			return nil, err
		}

		return c, nil
	})
}
