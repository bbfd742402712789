package stipple

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// TimingFunc maps a linear completion fraction in [0, 1] to an eased
// fraction. The eased fraction is what every move and property function
// receives; easing happens once per frame, not per particle.
type TimingFunc func(t float64) float64

// FromEase adapts a gween easing function to a TimingFunc by evaluating it
// over a unit time range with begin 0 and change 1.
func FromEase(fn ease.TweenFunc) TimingFunc {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// The built-in timing functions. "linear" and "easeOut" are the two the
// animator documents; the remaining entries come for free from gween.
var timingFunctions = map[string]TimingFunc{
	"linear":    func(t float64) float64 { return t },
	"easeOut":   FromEase(ease.OutQuad),
	"easeIn":    FromEase(ease.InQuad),
	"easeInOut": FromEase(ease.InOutQuad),
}

// RegisterTimingFunction adds a custom timing function under the given name,
// replacing any existing entry. Registered names become valid values for
// Config.TimingFunction.
func RegisterTimingFunction(name string, fn TimingFunc) {
	timingFunctions[name] = fn
}

func timingFunction(name string) (TimingFunc, error) {
	if fn, ok := timingFunctions[name]; ok {
		return fn, nil
	}
	return nil, fmt.Errorf("stipple: timing function %q: %w", name, ErrUnknownFunction)
}
