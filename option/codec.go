package option

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// FromJSON decodes a JSON object into e.
func FromJSON(e Entity, data []byte) error {
	return Unmarshal(e, FormatJSON, data)
}

// ToJSON encodes the trimmed mapping of e. Keys are sorted.
func ToJSON(e Entity) ([]byte, error) {
	return json.Marshal(e.ToMapping())
}

// ToJSONIndent is ToJSON with indentation.
func ToJSONIndent(e Entity, indent string) ([]byte, error) {
	return json.MarshalIndent(e.ToMapping(), "", indent)
}

// FromYAML decodes a YAML mapping into e.
func FromYAML(e Entity, data []byte) error {
	return Unmarshal(e, FormatYAML, data)
}

// ToYAML encodes the trimmed mapping of e.
func ToYAML(e Entity) ([]byte, error) {
	return yaml.Marshal(e.ToMapping())
}

// Format is a serialization format recognized by file extension.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf picks the format for a file path by extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// ParseMapping decodes JSON or YAML data into a plain mapping.
func ParseMapping(format Format, data []byte) (map[string]any, error) {
	var raw map[string]any

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return raw, nil
}

// Unmarshal decodes data in the given format into e.
func Unmarshal(e Entity, format Format, data []byte) error {
	raw, err := ParseMapping(format, data)
	if err != nil {
		return err
	}

	return Decode(e, raw)
}

// Marshal encodes e in the given format.
func Marshal(e Entity, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return ToJSONIndent(e, "  ")
	case FormatYAML:
		return ToYAML(e)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// ReadMapping reads a JSON or YAML file into a plain mapping.
func ReadMapping(path string) (map[string]any, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	raw, err := ParseMapping(format, data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	return raw, nil
}

// LoadFile reads a JSON or YAML file into e.
func LoadFile(e Entity, path string) error {
	raw, err := ReadMapping(path)
	if err != nil {
		return err
	}

	if err := Decode(e, raw); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	return nil
}

// WriteFile writes the trimmed mapping of e as JSON or YAML.
func WriteFile(e Entity, path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	data, err := Marshal(e, format)
	if err != nil {
		return fmt.Errorf("failed to marshal: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return nil
}
