package stipple

import (
	"math"
	"math/rand"
)

// Rand is the source of randomness used by the pool. The two operations are
// deliberately minimal so tests can substitute a deterministic source:
// uniform floats drive spawn points, jitter, and fade-out destinations;
// Shuffle must be an independent uniform permutation (Fisher–Yates).
type Rand interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Shuffle pseudo-randomizes the order of n elements via swap.
	Shuffle(n int, swap func(i, j int))
}

// systemRand backs the default Rand with math/rand/v2's shared source.
type systemRand struct{}

func (systemRand) Float64() float64 { return rand.Float64() }

func (systemRand) Shuffle(n int, swap func(int, int)) { rand.Shuffle(n, swap) }

// randRange returns a uniform value in [min, max).
func randRange(r Rand, min, max float64) float64 {
	if min == max {
		return min
	}
	return min + r.Float64()*(max-min)
}

// randPointIn returns a uniform point inside the rectangle.
func randPointIn(r Rand, area Rect) Point {
	return Point{
		X: randRange(r, area.X, area.X+area.Width),
		Y: randRange(r, area.Y, area.Y+area.Height),
	}
}

// PointNear returns a uniform point whose per-axis offset from the reference
// point is within [-maxDist, maxDist). A reference that is not a usable plane
// coordinate (NaN or infinite on either axis) yields no point and
// ErrInvalidOrigin.
func PointNear(r Rand, from Point, maxDist float64) (Point, error) {
	if !isFinite(from.X) || !isFinite(from.Y) {
		return Point{}, ErrInvalidOrigin
	}
	return Point{
		X: from.X + randRange(r, -maxDist, maxDist),
		Y: from.Y + randRange(r, -maxDist, maxDist),
	}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
