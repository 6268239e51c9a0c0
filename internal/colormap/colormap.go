package colormap

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Scheme names a false-color palette.
type Scheme string

const (
	Ocean      Scheme = "ocean"
	Fire       Scheme = "fire"
	Monochrome Scheme = "monochrome"
	Rainbow    Scheme = "rainbow"
	Emerald    Scheme = "emerald"
	Violet     Scheme = "violet"
	Sunset     Scheme = "sunset"
	Thermal    Scheme = "thermal"
	Neon       Scheme = "neon"
)

var schemes = []Scheme{Ocean, Fire, Monochrome, Rainbow, Emerald, Violet, Sunset, Thermal, Neon}

// ErrUnknownScheme is returned by ParseScheme for names outside the palette set.
var ErrUnknownScheme = errors.New("colormap: unknown color scheme")

// RGB is an 8-bit color triple.
type RGB struct {
	R, G, B uint8
}

// Schemes returns all palettes in display order.
func Schemes() []Scheme {
	out := make([]Scheme, len(schemes))
	copy(out, schemes)
	return out
}

// ParseScheme resolves a palette name, case-insensitively.
func ParseScheme(name string) (Scheme, error) {
	s := Scheme(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range schemes {
		if s == known {
			return s, nil
		}
	}
	return Ocean, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}

// Next returns the palette after s, wrapping around. Unknown schemes restart at Ocean.
func (s Scheme) Next() Scheme {
	for i, known := range schemes {
		if s == known {
			return schemes[(i+1)%len(schemes)]
		}
	}
	return Ocean
}

func (s Scheme) String() string { return string(s) }

// Brightness clamps value into [-1, 1] and rescales it to floor(128 + c*128).
// The result is 256 when value >= 1.
func Brightness(value float64) (clamped float64, mapped int) {
	clamped = math.Min(1, math.Max(-1, value))
	mapped = int(math.Floor(128 + clamped*128))
	return clamped, mapped
}

// Map converts one amplitude into a color under the given palette.
// Unrecognized palettes fall back to Ocean.
func Map(value float64, s Scheme) RGB {
	c, m := Brightness(value)

	var r, g, b int
	switch s {
	case Fire:
		r, g, b = 255, m, floorDiv2(m)
	case Monochrome:
		r, g, b = m, m, m
	case Rainbow:
		r, g, b = HSVToRGB(hue(m), 0.8, 0.9)
	case Emerald:
		r, g, b = m, 255, m
	case Violet:
		r, g, b = m, floorDiv2(m), 255
	case Sunset:
		r = 255
		g = int(math.Floor(128 + c*-128))
		b = int(math.Floor(128 + c*128))
	case Thermal:
		r = min(255, m*2)
		g = min(255, max(0, int(math.Floor(128-math.Abs(float64(m-128))))))
		b = max(0, 255-m*2)
	case Neon:
		v := 0.5
		if c > 0 {
			v = 1.0
		}
		r, g, b = HSVToRGB(hue(m), 1.0, v)
	default:
		r, g, b = m, m, 255
	}
	return RGB{channel(r), channel(g), channel(b)}
}

func hue(mapped int) float64 {
	return float64(mapped) / 255 * 360
}

func floorDiv2(m int) int {
	return int(math.Floor(float64(m) / 2))
}

// channel clamps into the byte range the way a canvas rgb() style does.
func channel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
