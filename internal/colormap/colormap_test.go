package colormap

import (
	"errors"
	"testing"
)

func TestBrightness(t *testing.T) {
	tests := []struct {
		value   float64
		clamped float64
		mapped  int
	}{
		{0, 0, 128},
		{0.5, 0.5, 192},
		{-0.5, -0.5, 64},
		{1, 1, 256},
		{7, 1, 256},
		{-1, -1, 0},
		{-3, -1, 0},
	}
	for _, tt := range tests {
		c, m := Brightness(tt.value)
		if c != tt.clamped || m != tt.mapped {
			t.Errorf("Brightness(%g) = (%g, %d), want (%g, %d)", tt.value, c, m, tt.clamped, tt.mapped)
		}
	}
}

func TestMap(t *testing.T) {
	tests := []struct {
		scheme Scheme
		value  float64
		want   RGB
	}{
		{Ocean, 0, RGB{128, 128, 255}},
		{Ocean, -0.5, RGB{64, 64, 255}},
		{Ocean, 1, RGB{255, 255, 255}},
		{Monochrome, 0, RGB{128, 128, 128}},
		{Monochrome, -1, RGB{0, 0, 0}},
		{Fire, 0, RGB{255, 128, 64}},
		{Fire, 1, RGB{255, 255, 128}},
		{Emerald, 0, RGB{128, 255, 128}},
		{Violet, 0, RGB{128, 64, 255}},
		{Sunset, 0, RGB{255, 128, 128}},
		{Sunset, 1, RGB{255, 0, 255}},
		{Sunset, -1, RGB{255, 255, 0}},
		{Thermal, 0, RGB{255, 128, 0}},
		{Thermal, 1, RGB{255, 0, 0}},
		{Thermal, -1, RGB{0, 0, 255}},
		{Rainbow, -1, RGB{230, 46, 46}},
		{Neon, 0, RGB{30, 0, 128}},
		{Neon, -1, RGB{128, 0, 0}},
		{Scheme("plaid"), 0, RGB{128, 128, 255}},
	}
	for _, tt := range tests {
		if got := Map(tt.value, tt.scheme); got != tt.want {
			t.Errorf("Map(%g, %s) = %v, want %v", tt.value, tt.scheme, got, tt.want)
		}
	}
}

func TestHSVToRGB(t *testing.T) {
	tests := []struct {
		h, s, v float64
		r, g, b int
	}{
		{0, 0, 1, 255, 255, 255},
		{0, 1, 1, 255, 0, 0},
		{0.25, 1, 1, 128, 255, 0},
		{0.5, 1, 1, 0, 255, 255},
		// degrees are not reduced first: 360.5*6 lands in sector 3
		{360.5, 1, 1, 0, 255, 255},
		{360, 1, 1, 255, 0, 0},
	}
	for _, tt := range tests {
		r, g, b := HSVToRGB(tt.h, tt.s, tt.v)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("HSVToRGB(%g, %g, %g) = (%d, %d, %d), want (%d, %d, %d)",
				tt.h, tt.s, tt.v, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestParseScheme(t *testing.T) {
	s, err := ParseScheme(" Thermal ")
	if err != nil || s != Thermal {
		t.Fatalf("ParseScheme = (%s, %v), want thermal", s, err)
	}
	if _, err := ParseScheme("plaid"); !errors.Is(err, ErrUnknownScheme) {
		t.Errorf("expected ErrUnknownScheme, got %v", err)
	}
}

func TestSchemeNextCycles(t *testing.T) {
	s := Ocean
	seen := map[Scheme]bool{}
	for range Schemes() {
		seen[s] = true
		s = s.Next()
	}
	if s != Ocean {
		t.Errorf("cycle ended at %s, want ocean", s)
	}
	if len(seen) != len(Schemes()) {
		t.Errorf("visited %d schemes, want %d", len(seen), len(Schemes()))
	}
	if Scheme("plaid").Next() != Ocean {
		t.Error("unknown scheme should restart at ocean")
	}
}
