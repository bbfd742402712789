package stipple

import (
	"fmt"
	"math"
)

// Transition holds the two endpoints of a particle's current animation
// segment. Each particle owns exactly one; partial updates merge field by
// field, and the To side is never left unset — reconciliation always writes
// it from the configured default properties at minimum.
type Transition struct {
	From      Point
	FromProps Properties
	To        Point
	ToProps   Properties
}

// Particle is one point in the swarm. Identity is the pointer: particles are
// created by the pool, reassigned across transitions, and never destroyed —
// a retired particle fades to zero opacity and radius and is recycled into
// the next transition's target set like any other.
type Particle struct {
	// Spawn and SpawnProps are fixed at creation. Spawn anchors the rotate
	// move's jitter and the fade-out spiral.
	Spawn      Point
	SpawnProps Properties
	// Pt and Props are the current interpolated state, recomputed every
	// frame from Trans and the eased completion fraction.
	Pt    Point
	Props Properties
	Trans Transition
	// Jitter in [-1, 1] is assigned once at creation. It is what makes
	// trajectories visually distinct from one another under the same move
	// function.
	Jitter float64
}

// MoveFunc computes a particle's instantaneous position at eased completion
// t, purely from the particle's transition record and immutable fields.
type MoveFunc func(p *Particle, t float64) Point

// PropertyFunc computes a particle's instantaneous property bag at eased
// completion t. Implementations write into and return p.Props, reusing the
// map across frames.
type PropertyFunc func(p *Particle, t float64) Properties

// Resolve recomputes and returns the particle's current position and
// properties at eased completion t.
func (p *Particle) Resolve(move MoveFunc, prop PropertyFunc, t float64) (Point, Properties) {
	p.Pt = move(p, t)
	p.Props = prop(p, t)
	return p.Pt, p.Props
}

// moveLinear interpolates each axis independently in a straight line.
func moveLinear(p *Particle, t float64) Point {
	return lerpPoint(p.Trans.From, p.Trans.To, t)
}

// moveRotate curves the trajectory: the linear point is rotated around the
// destination by t radians, offset by per-axis jitter that peaks
// mid-transition, then blended back toward the linear point by t — so the
// path overshoots mid-flight and still lands exactly on target at t=1.
func moveRotate(p *Particle, t float64) Point {
	lin := lerpPoint(p.Trans.From, p.Trans.To, t)
	rot := rotateAbout(lin, p.Trans.To, t)
	b := booster(t)
	rot.X += p.Spawn.X * p.Jitter * b
	rot.Y += p.Spawn.Y * p.Jitter * b
	return lerpPoint(rot, lin, t)
}

// propsLinear interpolates every key the transition's To bag defines,
// dispatching on value type via ValueBetween. Keys missing from the From bag
// snap to their target values.
func propsLinear(p *Particle, t float64) Properties {
	if p.Props == nil {
		p.Props = make(Properties, len(p.Trans.ToProps))
	}
	for k := range p.Props {
		if _, ok := p.Trans.ToProps[k]; !ok {
			delete(p.Props, k)
		}
	}
	for k, to := range p.Trans.ToProps {
		p.Props[k] = ValueBetween(p.Trans.FromProps[k], to, t)
	}
	return p.Props
}

// propsBubble is propsLinear with a mid-transition radius pulse scaled by
// the particle's jitter and capped at 1.5× the target radius.
func propsBubble(p *Particle, t float64) Properties {
	props := propsLinear(p, t)
	toR := p.Trans.ToProps.Radius()
	b := booster(t)
	boost := b * math.Min(math.Abs(b*p.Jitter*toR), toR*1.5)
	props[PropRadius] = props.Radius() + boost
	return props
}

var moveFunctions = map[string]MoveFunc{
	"linear": moveLinear,
	"rotate": moveRotate,
}

var propertyFunctions = map[string]PropertyFunc{
	"linear": propsLinear,
	"bubble": propsBubble,
}

// RegisterMoveFunction adds a custom move function under the given name,
// replacing any existing entry. Registered names become valid values for
// Config.MoveFunction.
func RegisterMoveFunction(name string, fn MoveFunc) {
	moveFunctions[name] = fn
}

// RegisterPropertyFunction adds a custom property function under the given
// name, replacing any existing entry. Registered names become valid values
// for Config.PropertyFunction.
func RegisterPropertyFunction(name string, fn PropertyFunc) {
	propertyFunctions[name] = fn
}

func moveFunction(name string) (MoveFunc, error) {
	if fn, ok := moveFunctions[name]; ok {
		return fn, nil
	}
	return nil, fmt.Errorf("stipple: move function %q: %w", name, ErrUnknownFunction)
}

func propertyFunction(name string) (PropertyFunc, error) {
	if fn, ok := propertyFunctions[name]; ok {
		return fn, nil
	}
	return nil, fmt.Errorf("stipple: property function %q: %w", name, ErrUnknownFunction)
}
