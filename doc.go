// Package stipple turns raster images into swarms of animated point
// particles for [Ebitengine].
//
// An image is sampled into a sparse point set, assigned to a managed pool of
// particles with stable identity, and animated between successive target
// configurations with pluggable move, property, and timing strategies — the
// ambient "particles coalescing into a picture" effect.
//
// # Quick start
//
// Create a [Swarm] with a sink and a scheduler, then show an image:
//
//	sched := &stipple.ManualScheduler{}
//	sink := &stipple.EbitenSink{Target: buffer}
//	swarm := stipple.New(stipple.Config{
//		Density: 3, Frames: 120, MoveFunction: "rotate",
//	}, sink, sched)
//
//	src, _ := stipple.DecodePixels(pngBytes)
//	swarm.ShowImage(src)
//
// Drive one frame per tick from your ebiten Update method:
//
//	func (g *Game) Update() error { g.sched.Pump(); return nil }
//
// Calling ShowImage again mid-run cancels the pending frame and morphs the
// existing particles toward the new image; the pool never shrinks, so no
// particle pops in or out. Surplus particles fade to zero opacity and radius
// and are recycled by the next transition.
//
// # Strategies
//
// Position, properties, and easing are each a named strategy resolved
// through a registry: move "linear" or "rotate", property "linear" or
// "bubble", timing "linear", "easeOut", "easeIn", or "easeInOut" (the eased
// entries adapt gween easing functions via [FromEase]). Register custom
// entries with [RegisterMoveFunction], [RegisterPropertyFunction], and
// [RegisterTimingFunction]. An unknown name is a configuration error,
// reported through the package logger (see [SetLogger]) — never a silent
// fallback.
//
// # Collaborators
//
// The engine touches no pixels itself. It renders through a [DrawSink]
// ([EbitenSink] is the shipped implementation), reads decoded pixels through
// a [PixelSource] ([ImagePixels], [DecodePixels]), schedules frames through
// a [FrameScheduler] ([ManualScheduler]), and draws randomness from a [Rand]
// that tests can replace with a deterministic source.
//
// [Ebitengine]: https://ebitengine.org
package stipple
