package stipple

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSink draws particles as filled circles onto an ebiten image.
// Construct one per swarm and point Target at the image you render each
// frame (commonly an offscreen buffer composited in Draw).
type EbitenSink struct {
	// Target is the destination image. Must be non-nil before the first
	// frame.
	Target *ebiten.Image
	// ClearColor fills the target at the start of each frame. Nil clears to
	// transparent.
	ClearColor color.Color
	// Antialias toggles anti-aliased circle edges.
	Antialias bool
}

// Clear erases the target to ClearColor.
func (s *EbitenSink) Clear() {
	if s.ClearColor != nil {
		s.Target.Fill(s.ClearColor)
		return
	}
	s.Target.Clear()
}

// DrawParticle renders one particle as a filled circle. Particles whose
// radius or opacity resolve to zero or below produce no pixels but are still
// part of the frame.
func (s *EbitenSink) DrawParticle(pt Point, props Properties) {
	r := props.Radius()
	opacity := props.Opacity()
	if r <= 0 || opacity <= 0 {
		return
	}
	fill, err := parseHexColor(props.Fill())
	if err != nil {
		Logger().Warn("stipple: unparseable fill", "fill", props.Fill(), "err", err)
		return
	}
	vector.DrawFilledCircle(s.Target,
		float32(pt.X), float32(pt.Y), float32(r),
		fill.nrgba(opacity), s.Antialias)
}
