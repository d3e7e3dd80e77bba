package geom

import (
	"errors"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in    string
		value float64
	}{
		{"2/4", 0.5},
		{"-3", -3},
		{"0.5", 0.5},
		{" 1.25 ", 1.25},
		{"+2", 2},
		{"-3/6", -0.5},
		{"3/-6", -0.5},
		{"6 / 3", 2},
		{"-.5", -0.5},
	}
	for _, tc := range tests {
		v, ok, err := ParseNumber(tc.in)
		if err != nil || !ok {
			t.Errorf("ParseNumber(%q) = (%v, %v, %v), expected value %v", tc.in, v, ok, err, tc.value)
			continue
		}
		if v != tc.value {
			t.Errorf("ParseNumber(%q) = %v, expected %v", tc.in, v, tc.value)
		}
	}
}

func TestParseNumberBlankIsNoAnswer(t *testing.T) {
	for _, in := range []string{"", "   ", "\t"} {
		v, ok, err := ParseNumber(in)
		if ok || err != nil || v != 0 {
			t.Errorf("ParseNumber(%q) = (%v, %v, %v), expected no answer", in, v, ok, err)
		}
	}
}

func TestParseNumberMalformed(t *testing.T) {
	for _, in := range []string{"abc", "1/", "/2", "1/0", "1/2/3", "--1", "inf", "NaN", "2x"} {
		_, ok, err := ParseNumber(in)
		if ok || !errors.Is(err, ErrMalformed) {
			t.Errorf("ParseNumber(%q) = (ok=%v, err=%v), expected ErrMalformed", in, ok, err)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[float64]string{
		2:        "2",
		-3:       "-3",
		0.5:      "0.5",
		1.0 / 3:  "0.33",
		-0.00001: "0",
		1.25:     "1.25",
	}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%v) = %q, expected %q", in, got, want)
		}
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		rise, run int
		expected  string
	}{
		{4, 2, "2"},
		{2, 4, "1/2"},
		{4, -6, "-2/3"},
		{-3, -9, "1/3"},
		{0, 5, "0"},
	}
	for _, tc := range tests {
		if got := Ratio(tc.rise, tc.run); got != tc.expected {
			t.Errorf("Ratio(%d, %d) = %q, expected %q", tc.rise, tc.run, got, tc.expected)
		}
	}
}
