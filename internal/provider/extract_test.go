package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractValue(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want float64
		ok   bool
	}{
		{"float", 12.5, 12.5, true},
		{"int", 7, 7, true},
		{"int64", int64(3), 3, true},
		{"numeric string", " 0.512 ", 0.512, true},
		{"bad string", "n/a", 0, false},
		{"nested total", map[string]interface{}{"total": float64(15), "goals": float64(12)}, 15, true},
		{"nested empty", map[string]interface{}{"goals": float64(12)}, 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractValue(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMinutes(t *testing.T) {
	tests := map[string]struct {
		want int
		ok   bool
	}{
		"34":    {34, true},
		"34:12": {34, true},
		"28.6":  {28, true},
		"00":    {0, true},
		"":      {0, false},
		"-3":    {0, false},
		"abc":   {0, false},
	}
	for in, tt := range tests {
		got, ok := ParseMinutes(in)
		assert.Equal(t, tt.ok, ok, in)
		assert.Equal(t, tt.want, got, in)
	}
}

func TestFraction(t *testing.T) {
	assert.Equal(t, 0.45, Fraction(0.45))
	assert.InDelta(t, 0.512, Fraction(51.2), 1e-9)
	assert.Equal(t, 1.0, Fraction(1))
	assert.Equal(t, 0.0, Fraction(-0.2))
	assert.Equal(t, 1.0, Fraction(250))
}
