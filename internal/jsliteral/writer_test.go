package jsliteral

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fn string

func (f fn) JSLiteral() string { return string(f) }

func TestMarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"null", nil, "null"},
		{"string", "it's", `'it\'s'`},
		{"number", 1.5, "1.5"},
		{"whole float", 2.0, "2"},
		{"int", 3, "3"},
		{"bool", true, "true"},
		{"empty object", map[string]any{}, "{}"},
		{"array", []any{"low", "median", "high"}, "['low', 'median', 'high']"},
		{"callback", fn("function () { return 1; }"), "function () { return 1; }"},
		{
			"object",
			map[string]any{"keys": []any{"a"}, "enabled": false, "data-id": 1},
			"{\n  'data-id': 1,\n  enabled: false,\n  keys: ['a']\n}",
		},
		{
			"nested",
			map[string]any{"events": map[string]any{"click": fn("function () {}")}},
			"{\n  events: {\n    click: function () {}\n  }\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Marshal(tt.input))
		})
	}
}

func TestKey(t *testing.T) {
	assert.Equal(t, "colorIndex", Key("colorIndex"))
	assert.Equal(t, "$ref", Key("$ref"))
	assert.Equal(t, "'2d'", Key("2d"))
	assert.Equal(t, "'a b'", Key("a b"))
}
