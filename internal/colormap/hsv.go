package colormap

import "math"

// HSVToRGB converts h, s, v into integer channels.
//
// h is scaled by 6 and split into a sector (taken mod 6) and a fractional part
// without first being reduced into [0, 1), so a hue given in degrees spins
// through the sectors many times. Callers rely on this exact arithmetic for
// the rainbow and neon palettes. Channels are rounded half-up.
func HSVToRGB(h, s, v float64) (int, int, int) {
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return roundHalfUp(r * 255), roundHalfUp(g * 255), roundHalfUp(b * 255)
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
