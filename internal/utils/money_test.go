package utils

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		name     string
		in       any
		expected string
	}{
		{"number", float64(800), "800"},
		{"negative number", float64(-50.5), "-50.5"},
		{"numeric string", "500", "500"},
		{"decimal string", " 49.99 ", "49.99"},
		{"json number", json.Number("123.45"), "123.45"},
		{"empty string", "", "0"},
		{"garbage string", "abc", "0"},
		{"nil", nil, "0"},
		{"bool", true, "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			want, err := decimal.NewFromString(tc.expected)
			if err != nil {
				t.Fatalf("bad expected value %q: %v", tc.expected, err)
			}
			got := ParseAmount(tc.in)
			assert.True(t, got.Equal(want), "ParseAmount(%v) = %s, want %s", tc.in, got, want)
		})
	}
}
