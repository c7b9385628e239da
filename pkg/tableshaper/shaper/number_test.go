package shaper

import (
	"math"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"123", 123, true},
		{"123.45", 123.45, true},
		{"-100", -100, true},
		{"-0.5", -0.5, true},
		{".5", 0.5, true},
		{"4.", 4, true},
		{"007", 7, true},
		{"", 0, false},
		{"-", 0, false},
		{".", 0, false},
		{"x", 0, false},
		{"10x", 0, false},
		{" 12", 0, false},
		{"12 ", 0, false},
		{"+5", 0, false},
		{"1e3", 0, false},
		{"0x1F", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"1,000", 0, false},
		{"--1", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseNumber(tt.input)
		if ok != tt.ok {
			t.Errorf("ParseNumber(%q) ok = %v, expected %v", tt.input, ok, tt.ok)
			continue
		}
		if !ok {
			if !math.IsNaN(got) {
				t.Errorf("ParseNumber(%q) = %v, expected NaN", tt.input, got)
			}
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseNumber(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}
