package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInRange(t *testing.T) {
	tests := []struct {
		name      string
		lo, v, hi float64
		want      bool
	}{
		{"inside", 0, 5, 10, true},
		{"lower edge", 0, 0, 10, true},
		{"upper edge", 0, 10, 10, true},
		{"below", 0, -5, 10, false},
		{"above", 0, 11, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InRange(tt.lo, tt.v, tt.hi))
		})
	}
}

func TestQuote(t *testing.T) {
	assert.Equal(t, []string{`"a"`, `"b"`}, Quote([]string{"a", "b"}))
}
