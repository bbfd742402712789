package stipple

// Standard property keys. The recognized key set is not hard-coded anywhere:
// the interpolation step iterates whatever keys the configured default bag
// defines, so custom keys ride along for free.
const (
	PropFill    = "fill"    // color as a "#rrggbb" string
	PropOpacity = "opacity" // float64 in [0, 1]
	PropRadius  = "radius"  // float64 ≥ 0
)

// Properties is an extensible bag of visual attributes. Values are float64
// numbers or "#rrggbb" color strings as far as interpolation is concerned;
// other value types snap rather than blend (see ValueBetween).
type Properties map[string]any

// Clone returns an independent shallow copy. Values are numbers and strings,
// so a shallow copy is a full copy.
func (p Properties) Clone() Properties {
	if p == nil {
		return nil
	}
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// merged returns a copy of p with overlay's entries written over it,
// field by field. Keys absent from the overlay keep their prior values;
// this is never a full replace.
func (p Properties) merged(overlay Properties) Properties {
	out := p.Clone()
	if out == nil {
		out = make(Properties, len(overlay))
	}
	for k, v := range overlay {
		out[k] = v
	}
	return out
}

// Fill returns the "fill" value, or "" when absent or not a string.
func (p Properties) Fill() string {
	s, _ := p[PropFill].(string)
	return s
}

// Opacity returns the "opacity" value, or 0 when absent or non-numeric.
func (p Properties) Opacity() float64 {
	v, _ := asFloat(p[PropOpacity])
	return v
}

// Radius returns the "radius" value, or 0 when absent or non-numeric.
func (p Properties) Radius() float64 {
	v, _ := asFloat(p[PropRadius])
	return v
}
