package stipple

import (
	"fmt"
	"image/color"
	"math"
)

// hexColor is a parsed #RRGGBB color with 8-bit channels.
type hexColor struct {
	r, g, b uint8
}

// parseHexColor parses a 6-hex-digit color string. A leading '#' is optional.
// Shorthand forms (#RGB) and alpha forms (#RRGGBBAA) are not colors as far as
// the interpolator is concerned and return an error.
func parseHexColor(s string) (hexColor, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return hexColor{}, fmt.Errorf("stipple: color %q is not a 6-hex-digit string", s)
	}
	var c [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(s[i*2])
		lo, ok2 := hexDigit(s[i*2+1])
		if !ok1 || !ok2 {
			return hexColor{}, fmt.Errorf("stipple: color %q is not a 6-hex-digit string", s)
		}
		c[i] = hi<<4 | lo
	}
	return hexColor{c[0], c[1], c[2]}, nil
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// String formats the color as a zero-padded lowercase "#rrggbb" string.
func (c hexColor) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

// blend interpolates each byte channel independently with a linear blend and
// ceiling rounding. The ceiling (rather than round-to-nearest) is part of the
// interpolator's contract.
func (c hexColor) blend(to hexColor, t float64) hexColor {
	return hexColor{
		r: blendChannel(c.r, to.r, t),
		g: blendChannel(c.g, to.g, t),
		b: blendChannel(c.b, to.b, t),
	}
}

func blendChannel(from, to uint8, t float64) uint8 {
	v := math.Ceil(Lerp(float64(from), float64(to), t))
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// nrgba converts the color plus an opacity in [0, 1] to a straight-alpha
// color.NRGBA for rendering.
func (c hexColor) nrgba(opacity float64) color.NRGBA {
	a := opacity
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return color.NRGBA{R: c.r, G: c.g, B: c.b, A: uint8(math.Round(a * 255))}
}

// formatHexColor builds a "#rrggbb" string from 8-bit channels.
// Used by the sampler when color extraction is enabled.
func formatHexColor(r, g, b uint8) string {
	return hexColor{r, g, b}.String()
}
