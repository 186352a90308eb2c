package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Collect(t *testing.T) {
	var d Diagnostics

	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Error())

	d.AddWarning(CodeUnknownKey, `unrecognized key "bordercolor"`, "Legend", "bordercolor", "borderColor")
	d.AddError(CodeInvalidValue, "expected one of left, center, right", "Legend", "align")
	d.AddInfo("note", "fine", "", "")

	assert.True(t, d.HasErrors())
	assert.Len(t, d.All(), 3)
	assert.Equal(t, SeverityError, d.All()[0].Severity)

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t, "[Legend] align: [invalid-value] expected one of left, center, right", err.Error())
}

func TestDiagnostic_StringWithSuggestions(t *testing.T) {
	d := Diagnostic{
		Code:        CodeUnknownKey,
		Message:     `unrecognized key "bordercolor"`,
		Entity:      "Legend",
		Path:        "bordercolor",
		Suggestions: []string{"borderColor"},
	}

	assert.Equal(t,
		`[Legend] bordercolor: [unknown-key] unrecognized key "bordercolor" (did you mean "borderColor"?)`,
		d.String())
}

func TestDiagnostics_StrictAndMerge(t *testing.T) {
	var a, b Diagnostics

	a.AddWarning(CodeUnknownKey, "x", "Zone", "x")
	b.AddWarning(CodeUnknownKey, "y", "Zone", "y")
	a.Merge(b)

	require.Len(t, a.Warnings, 2)

	a.Strict()
	assert.Empty(t, a.Warnings)
	require.Len(t, a.Errors, 2)

	for _, e := range a.Errors {
		assert.Equal(t, SeverityError, e.Severity)
		assert.Equal(t, "error", e.Severity.String())
	}
}
