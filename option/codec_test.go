package option

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromJSON(t *testing.T) {
	w := newWidget()
	err := FromJSON(w, []byte(`{"align": "RIGHT", "inner": {"text": "hi"}, "bogus": 1}`))
	require.NoError(t, err)

	assert.Equal(t, "right", Get[string](w, "align"))

	data, err := ToJSON(w)
	require.NoError(t, err)
	assert.JSONEq(t, `{"align": "right", "inner": {"text": "hi"}, "tags": ["a", "b"]}`, string(data))
}

func TestFromJSON_Invalid(t *testing.T) {
	err := FromJSON(newWidget(), []byte(`{"align": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse JSON")
}

func TestFromYAML(t *testing.T) {
	yamlContent := `
align: left
itemMarginBottom: 0
parts:
  - text: first
  - size: 2
shadow:
  text: soft
`
	w := newWidget()
	require.NoError(t, FromYAML(w, []byte(yamlContent)))

	assert.Equal(t, 0.0, Get[float64](w, "item_margin_bottom"))
	assert.Len(t, Items[*gadget](w, "parts"), 2)
	assert.Equal(t, "soft", Get[string](Get[*gadget](w, "shadow"), "text"))

	out, err := ToYAML(w)
	require.NoError(t, err)

	again := newWidget()
	require.NoError(t, FromYAML(again, out))
	assert.Equal(t, w.ToMapping(), again.ToMapping())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{"json", "legend.json", `{"enabled": true}`, nil},
		{"yaml", "legend.yaml", "enabled: true\n", nil},
		{"yml", "legend.yml", "enabled: true\n", nil},
		{"unsupported", "legend.toml", "enabled = true\n", ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			w := newWidget()
			err := LoadFile(w, path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, Get[bool](w, "enabled"))
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	err := LoadFile(newWidget(), filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	w := newWidget()
	require.NoError(t, w.Set("align", "center"))

	for _, name := range []string{"out.json", "out.yaml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, WriteFile(w, path))

		loaded := newWidget()
		require.NoError(t, LoadFile(loaded, path))
		assert.Equal(t, w.ToMapping(), loaded.ToMapping())
	}

	assert.ErrorIs(t, WriteFile(w, filepath.Join(dir, "out.txt")), ErrUnsupportedFormat)
}

func TestReadMapping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.yaml")
	require.NoError(t, os.WriteFile(path, []byte("type: heatmap\nstates:\n  hover:\n    enabled: false\n"), 0o600))

	raw, err := ReadMapping(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"type":   "heatmap",
		"states": map[string]any{"hover": map[string]any{"enabled": false}},
	}, raw)

	_, err = ParseMapping(FormatJSON, []byte("{"))
	assert.Error(t, err)

	_, err = ParseMapping("toml", nil)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
