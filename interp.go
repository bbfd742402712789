package stipple

import "math"

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// lerpPoint linearly interpolates each axis independently.
func lerpPoint(a, b Point, t float64) Point {
	return Point{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}

// ValueBetween computes a property value between from and to at completion t.
// Dispatch is by value type:
//   - both numeric: linear interpolation, returned as float64
//   - both 6-hex-digit color strings: per-channel linear blend with ceiling
//     rounding, reassembled as a zero-padded "#rrggbb" string
//   - to is nil: from, unchanged
//   - anything else: to (no interpolation possible — immediate snap)
func ValueBetween(from, to any, t float64) any {
	if ff, ok := asFloat(from); ok {
		if tf, ok := asFloat(to); ok {
			return Lerp(ff, tf, t)
		}
	}
	if fs, ok := from.(string); ok {
		if ts, ok := to.(string); ok {
			fc, errF := parseHexColor(fs)
			tc, errT := parseHexColor(ts)
			if errF == nil && errT == nil {
				return fc.blend(tc, t).String()
			}
		}
	}
	if to == nil {
		return from
	}
	return to
}

// asFloat normalizes the numeric types a property bag may reasonably hold.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}

// booster is a weight that is zero at both segment endpoints and peaks at 1
// mid-transition. It shapes effects that should only show mid-flight: the
// rotate move's jitter and the bubble property's radius pulse.
func booster(t float64) float64 {
	return 1 - math.Abs(1-2*t)
}

// rotateAbout rotates p around origin by angle radians.
func rotateAbout(p, origin Point, angle float64) Point {
	sin, cos := math.Sincos(angle)
	dx, dy := p.X-origin.X, p.Y-origin.Y
	return Point{
		X: origin.X + dx*cos - dy*sin,
		Y: origin.Y + dx*sin + dy*cos,
	}
}
