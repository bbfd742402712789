package stipple

import (
	"errors"
	"math"
	"testing"
)

func testParticle() *Particle {
	return &Particle{
		Spawn:  Point{50, 60},
		Pt:     Point{10, 20},
		Jitter: 0.5,
		Trans: Transition{
			From:      Point{10, 20},
			FromProps: Properties{PropFill: "#000000", PropOpacity: 0.0, PropRadius: 0.0},
			To:        Point{110, 220},
			ToProps:   Properties{PropFill: "#ffffff", PropOpacity: 1.0, PropRadius: 4.0},
		},
	}
}

func TestResolveLinearEndpoints(t *testing.T) {
	p := testParticle()

	pt, props := p.Resolve(moveLinear, propsLinear, 0)
	assertPoint(t, "point at 0", pt, p.Trans.From)
	if props.Fill() != "#000000" {
		t.Errorf("fill at 0 = %q", props.Fill())
	}
	assertNear(t, "opacity at 0", props.Opacity(), 0)
	assertNear(t, "radius at 0", props.Radius(), 0)

	pt, props = p.Resolve(moveLinear, propsLinear, 1)
	assertPoint(t, "point at 1", pt, p.Trans.To)
	if props.Fill() != "#ffffff" {
		t.Errorf("fill at 1 = %q", props.Fill())
	}
	assertNear(t, "opacity at 1", props.Opacity(), 1)
	assertNear(t, "radius at 1", props.Radius(), 4)
}

func TestResolveLinearMidpoint(t *testing.T) {
	p := testParticle()
	pt, props := p.Resolve(moveLinear, propsLinear, 0.5)
	assertPoint(t, "midpoint", pt, Point{60, 120})
	assertNear(t, "opacity mid", props.Opacity(), 0.5)
	assertNear(t, "radius mid", props.Radius(), 2)
}

func TestResolveUpdatesCurrentState(t *testing.T) {
	p := testParticle()
	p.Resolve(moveLinear, propsLinear, 0.25)
	assertPoint(t, "Pt", p.Pt, Point{35, 70})
	assertNear(t, "Props opacity", p.Props.Opacity(), 0.25)
}

func TestMoveRotateEndpoints(t *testing.T) {
	p := testParticle()
	// Jitter and rotation are shaped by the booster and the final blend, so
	// rotate still lands exactly on the segment endpoints.
	assertPoint(t, "rotate at 0", moveRotate(p, 0), p.Trans.From)
	assertPoint(t, "rotate at 1", moveRotate(p, 1), p.Trans.To)
}

func TestMoveRotateDeviatesMidFlight(t *testing.T) {
	p := testParticle()
	lin := moveLinear(p, 0.5)
	rot := moveRotate(p, 0.5)
	dx, dy := rot.X-lin.X, rot.Y-lin.Y
	if math.Hypot(dx, dy) < 1 {
		t.Errorf("rotate at 0.5 = %v, expected a clear deviation from linear %v", rot, lin)
	}
}

func TestMoveRotateJitterDistinguishesParticles(t *testing.T) {
	a, b := testParticle(), testParticle()
	b.Jitter = -0.5
	pa, pb := moveRotate(a, 0.5), moveRotate(b, 0.5)
	if pa == pb {
		t.Error("different jitters should produce different mid-flight points")
	}
}

func TestPropsLinearMissingFromSnaps(t *testing.T) {
	p := testParticle()
	delete(p.Trans.FromProps, PropFill)
	props := propsLinear(p, 0.3)
	if props.Fill() != "#ffffff" {
		t.Errorf("fill = %q, want snap to target", props.Fill())
	}
}

func TestPropsLinearDropsStaleKeys(t *testing.T) {
	p := testParticle()
	p.Props = Properties{"stale": 1.0}
	props := propsLinear(p, 0.5)
	if _, ok := props["stale"]; ok {
		t.Error("keys absent from the target bag should be dropped")
	}
}

func TestPropsBubbleEndpointsMatchLinear(t *testing.T) {
	p := testParticle()
	for _, c := range []float64{0, 1} {
		bubble := propsBubble(p, c).Radius()
		linear := propsLinear(p, c).Radius()
		assertNear(t, "bubble radius at endpoint", bubble, linear)
	}
}

func TestPropsBubbleBoostsRadiusMidFlight(t *testing.T) {
	p := testParticle()
	linear := propsLinear(p, 0.5).Radius()
	bubble := propsBubble(p, 0.5).Radius()
	// booster(0.5)=1; boost = min(|1*0.5*4|, 6) = 2.
	assertNear(t, "bubble radius mid", bubble, linear+2)
}

func TestPropsBubbleBoostCap(t *testing.T) {
	p := testParticle()
	// Jitter far outside the normal [-1, 1] range: the uncapped boost would
	// be |1*10*4| = 40, the cap holds it at 1.5× the target radius.
	p.Jitter = 10
	bubble := propsBubble(p, 0.5).Radius()
	linear := propsLinear(p, 0.5).Radius()
	assertNear(t, "capped boost", bubble-linear, 4*1.5)
}

func TestMoveFunctionLookup(t *testing.T) {
	if _, err := moveFunction("linear"); err != nil {
		t.Errorf("linear: %v", err)
	}
	if _, err := moveFunction("rotate"); err != nil {
		t.Errorf("rotate: %v", err)
	}
	if _, err := moveFunction("warp9"); !errors.Is(err, ErrUnknownFunction) {
		t.Errorf("unknown name err = %v, want ErrUnknownFunction", err)
	}
}

func TestRegisterMoveFunction(t *testing.T) {
	RegisterMoveFunction("testHold", func(p *Particle, c float64) Point { return p.Trans.From })
	defer delete(moveFunctions, "testHold")

	fn, err := moveFunction("testHold")
	if err != nil {
		t.Fatal(err)
	}
	p := testParticle()
	assertPoint(t, "custom move", fn(p, 0.9), p.Trans.From)
}

func TestRegisterPropertyFunction(t *testing.T) {
	RegisterPropertyFunction("testFrozen", func(p *Particle, c float64) Properties {
		return p.Trans.FromProps
	})
	defer delete(propertyFunctions, "testFrozen")

	fn, err := propertyFunction("testFrozen")
	if err != nil {
		t.Fatal(err)
	}
	p := testParticle()
	if fn(p, 1).Fill() != "#000000" {
		t.Error("custom property function not applied")
	}
}

// --- Benchmarks ---

func BenchmarkResolveLinear(b *testing.B) {
	p := testParticle()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.Resolve(moveLinear, propsLinear, 0.5)
	}
}

func BenchmarkResolveRotateBubble(b *testing.B) {
	p := testParticle()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.Resolve(moveRotate, propsBubble, 0.5)
	}
}
