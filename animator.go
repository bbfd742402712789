package stipple

// FrameScheduler is the host's frame-scheduling primitive, mirroring the
// requestAnimationFrame/cancelAnimationFrame pair: RequestFrame queues fn to
// run on the next display frame and returns an id; CancelFrame revokes a
// queued callback and reports whether it was still pending.
type FrameScheduler interface {
	RequestFrame(fn func()) uint64
	CancelFrame(id uint64) bool
}

// DrawSink is the drawing surface the animator renders into. The core never
// touches pixels directly; see EbitenSink for the shipped implementation.
type DrawSink interface {
	// Clear erases the surface at the start of a frame.
	Clear()
	// DrawParticle renders one particle at its resolved position and
	// properties.
	DrawParticle(pt Point, props Properties)
}

// Animator drives the per-frame loop: it advances a completion counter,
// applies the timing function, asks each particle to resolve its
// interpolated state, and hands the result to the sink. It owns cancellation
// of the pending frame.
//
// The loop is single-threaded and cooperative. The only suspension point is
// the wait for the next scheduled frame, which is where cancellation is
// observed: a cancelled run simply never schedules its next step.
type Animator struct {
	pool  *Pool
	sink  DrawSink
	sched FrameScheduler
	cfg   *Config

	frame   int
	pending uint64
	queued  bool
	running bool
}

// NewAnimator creates an animator over the pool, drawing into sink and
// scheduling through sched. The Config must already have its defaults
// applied (New does this).
func NewAnimator(pool *Pool, sink DrawSink, sched FrameScheduler, cfg *Config) *Animator {
	return &Animator{pool: pool, sink: sink, sched: sched, cfg: cfg}
}

// Running reports whether a run is in flight.
func (a *Animator) Running() bool {
	return a.running
}

// Frame returns the current frame counter of the run.
func (a *Animator) Frame() int {
	return a.frame
}

// Start begins a new animation run. Any in-flight run is cancelled first;
// the return value reports whether such a cancellation actually occurred.
// A non-nil targets slice is reconciled into the pool before the first
// frame; pass nil to re-animate the pool's existing transitions.
func (a *Animator) Start(targets []Sample) bool {
	cancelled := a.Cancel()
	if targets != nil {
		a.pool.Reconcile(targets)
	}
	a.frame = 0
	a.running = true
	a.step()
	return cancelled
}

// Cancel revokes the pending frame, stopping the run. Safe to call when
// idle: it reports whether a cancellation actually occurred.
func (a *Animator) Cancel() bool {
	a.running = false
	if !a.queued {
		return false
	}
	a.queued = false
	return a.sched.CancelFrame(a.pending)
}

// step renders one frame and schedules the next while frames remain.
func (a *Animator) step() {
	a.queued = false
	a.sink.Clear()

	completion := float64(a.frame) / float64(a.cfg.Frames)
	if err := a.drawFrame(completion); err != nil {
		// Configuration error: report and skip this frame's particle
		// updates. The run keeps stepping so a function registered later
		// can pick it up.
		Logger().Warn("stipple: frame skipped", "frame", a.frame, "err", err)
	}

	a.frame++
	if a.frame < a.cfg.Frames {
		a.pending = a.sched.RequestFrame(a.step)
		a.queued = true
	} else {
		a.running = false
	}
}

// drawFrame resolves and draws every particle in the pool at the given
// completion fraction. Every particle is drawn, including ones mid-fade.
func (a *Animator) drawFrame(completion float64) error {
	timing, err := timingFunction(a.cfg.TimingFunction)
	if err != nil {
		return err
	}
	move, err := moveFunction(a.cfg.MoveFunction)
	if err != nil {
		return err
	}
	prop, err := propertyFunction(a.cfg.PropertyFunction)
	if err != nil {
		return err
	}

	eased := timing(completion)
	for _, p := range a.pool.Particles() {
		pt, props := p.Resolve(move, prop, eased)
		a.sink.DrawParticle(pt, props)
	}
	return nil
}

// frameRequest is one queued ManualScheduler callback.
type frameRequest struct {
	id uint64
	fn func()
}

// ManualScheduler is a pump-style FrameScheduler: requested callbacks are
// held until Pump runs them. Drive it from an ebiten Update method (one Pump
// per tick) or from a test loop. Not safe for concurrent use; the engine is
// single-threaded by design.
type ManualScheduler struct {
	nextID  uint64
	pending []frameRequest
}

// RequestFrame queues fn for the next Pump and returns its id.
func (m *ManualScheduler) RequestFrame(fn func()) uint64 {
	m.nextID++
	m.pending = append(m.pending, frameRequest{id: m.nextID, fn: fn})
	return m.nextID
}

// CancelFrame removes a queued callback, reporting whether it was pending.
func (m *ManualScheduler) CancelFrame(id uint64) bool {
	for i, req := range m.pending {
		if req.id == id {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return true
		}
	}
	return false
}

// HasPending reports whether any callback is queued.
func (m *ManualScheduler) HasPending() bool {
	return len(m.pending) > 0
}

// Pump runs every callback queued before this call and returns how many ran.
// Callbacks requested during Pump (the animator's next step) queue for the
// next Pump, preserving one-frame-per-tick pacing.
func (m *ManualScheduler) Pump() int {
	batch := m.pending
	m.pending = nil
	for _, req := range batch {
		req.fn()
	}
	return len(batch)
}
