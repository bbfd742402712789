package stipple

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertPoint(t *testing.T, name string, got, want Point) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// stubRand yields a fixed cycle of floats and a deterministic "shuffle" that
// reverses the slice, so pool behavior is exactly reproducible.
type stubRand struct {
	vals []float64
	i    int
}

func (r *stubRand) Float64() float64 {
	if len(r.vals) == 0 {
		return 0.5
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func (r *stubRand) Shuffle(n int, swap func(i, j int)) {
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

type drawCall struct {
	pt    Point
	props Properties
}

// recordSink captures every Clear and DrawParticle for assertions.
type recordSink struct {
	clears int
	draws  []drawCall
}

func (s *recordSink) Clear() { s.clears++ }

func (s *recordSink) DrawParticle(pt Point, props Properties) {
	s.draws = append(s.draws, drawCall{pt: pt, props: props.Clone()})
}

// --- Rect.Contains ---

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		pt     Point
		expect bool
	}{
		{"inside", Point{50, 40}, true},
		{"top-left corner", Point{10, 20}, true},
		{"bottom-right corner", Point{110, 70}, true},
		{"left edge", Point{10, 40}, true},
		{"right edge", Point{110, 40}, true},
		{"outside left", Point{9, 40}, false},
		{"outside right", Point{111, 40}, false},
		{"outside above", Point{50, 19}, false},
		{"outside below", Point{50, 71}, false},
		{"far outside", Point{999, 999}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.pt); got != tt.expect {
				t.Errorf("Rect%v.Contains(%v) = %v, want %v", r, tt.pt, got, tt.expect)
			}
		})
	}
}
