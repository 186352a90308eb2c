package validate

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumeric(t *testing.T) {
	tests := []struct {
		name       string
		value      any
		allowEmpty bool
		bounds     []Bound
		want       *float64
		wantErr    bool
	}{
		{name: "nil allowed", value: nil, allowEmpty: true},
		{name: "nil required", value: nil, wantErr: true},
		{name: "float", value: 1.5, want: ptr(1.5)},
		{name: "int", value: 3, want: ptr(3.0)},
		{name: "numeric string", value: " 12.5 ", want: ptr(12.5)},
		{name: "non-numeric string", value: "abc", wantErr: true},
		{name: "bool rejected", value: true, wantErr: true},
		{name: "zero meets minimum", value: 0, bounds: []Bound{Min(0)}, want: ptr(0.0)},
		{name: "negative below minimum", value: -5, bounds: []Bound{Min(0)}, wantErr: true},
		{name: "above maximum", value: 1.2, bounds: []Bound{Min(0), Max(1)}, wantErr: true},
		{name: "within both bounds", value: 0.4, bounds: []Bound{Min(0), Max(1)}, want: ptr(0.4)},
		{name: "map rejected", value: map[string]any{"a": 1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Numeric(tt.value, tt.allowEmpty, tt.bounds...)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)

				var verr *ValidationError
				assert.True(t, errors.As(err, &verr))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumeric_BoundNamedInError(t *testing.T) {
	_, err := Numeric(-5, true, Min(0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "minimum 0")

	_, err = Numeric(5, true, Max(2.5))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maximum 2.5")
}

func TestInteger(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		bounds  []Bound
		want    *int
		wantErr bool
	}{
		{name: "int", value: 7, want: ptr(7)},
		{name: "integral float", value: 3.0, want: ptr(3)},
		{name: "fractional float", value: 2.9, wantErr: true},
		{name: "fractional string", value: "2.5", wantErr: true},
		{name: "negative fraction below minimum", value: -0.5, bounds: []Bound{Min(0)}, wantErr: true},
		{name: "zero at minimum", value: 0.0, bounds: []Bound{Min(0)}, want: ptr(0)},
		{name: "two to the 63", value: float64(math.MaxInt64), wantErr: true},
		{name: "min int64", value: float64(math.MinInt64), want: ptr(math.MinInt64)},
		{name: "string", value: "42", want: ptr(42)},
		{name: "below minimum", value: -1, bounds: []Bound{Min(0)}, wantErr: true},
		{name: "garbage", value: "x1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Integer(tt.value, true, tt.bounds...)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestString(t *testing.T) {
	got, err := String("hello", false)
	require.NoError(t, err)
	assert.Equal(t, "hello", *got)

	got, err = String("", true)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = String("", false)
	assert.ErrorIs(t, err, ErrValidation)

	got, err = String(12, false)
	require.NoError(t, err)
	assert.Equal(t, "12", *got)

	_, err = String([]any{"a"}, true)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestEnum(t *testing.T) {
	allowed := []string{"left", "center", "right"}

	tests := []struct {
		name    string
		value   any
		want    *string
		wantErr bool
	}{
		{name: "exact", value: "left", want: ptr("left")},
		{name: "upper case normalized", value: "LEFT", want: ptr("left")},
		{name: "mixed case normalized", value: "Center", want: ptr("center")},
		{name: "outside set", value: "diagonal", wantErr: true},
		{name: "empty allowed", value: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Enum(tt.value, true, allowed...)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrValidation)
				for _, a := range allowed {
					assert.Contains(t, err.Error(), a)
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnumExact(t *testing.T) {
	got, err := EnumExact("ShortDash", true, "Solid", "ShortDash")
	require.NoError(t, err)
	assert.Equal(t, "ShortDash", *got)

	_, err = EnumExact("shortdash", true, "Solid", "ShortDash")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestVariableName(t *testing.T) {
	got, err := VariableName("lowmedhigh", false)
	require.NoError(t, err)
	assert.Equal(t, "lowmedhigh", *got)

	for _, bad := range []string{"1abc", "low med", "a-b"} {
		_, err := VariableName(bad, false)
		assert.ErrorIs(t, err, ErrValidation, bad)
	}
}

func TestBool(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    *bool
		wantErr bool
	}{
		{name: "true", value: true, want: ptr(true)},
		{name: "false", value: false, want: ptr(false)},
		{name: "one", value: 1, want: ptr(true)},
		{name: "zero float", value: 0.0, want: ptr(false)},
		{name: "string", value: "true", want: ptr(true)},
		{name: "bad string", value: "maybe", wantErr: true},
		{name: "nil", value: nil},
		{name: "map", value: map[string]any{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Bool(tt.value, true)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIterable(t *testing.T) {
	got, err := Iterable([]any{1, "a"}, false)
	require.NoError(t, err)
	assert.Equal(t, []any{1, "a"}, got)

	got, err = Iterable([]string{"low", "high"}, false)
	require.NoError(t, err)
	assert.Equal(t, []any{"low", "high"}, got)

	got, err = Iterable(nil, true)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = Iterable("abc", true)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = Iterable([]any{}, false)
	assert.ErrorIs(t, err, ErrValidation)
}

func ptr[T any](v T) *T { return &v }
