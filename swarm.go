package stipple

// Swarm ties the pipeline together: sample an image, reduce to the particle
// budget, reconcile the pool, and animate. It is the one-object API most
// callers want; the underlying Pool and Animator remain reachable for finer
// control.
type Swarm struct {
	cfg  Config
	pool *Pool
	anim *Animator
}

// New creates a swarm drawing into sink and scheduling frames through sched.
// Unset Config fields take their documented defaults. The resulting Config
// is shared by reference with the pool and animator and must not be mutated
// afterward.
func New(cfg Config, sink DrawSink, sched FrameScheduler) *Swarm {
	cfg = cfg.withDefaults()
	s := &Swarm{cfg: cfg}
	s.pool = NewPool(&s.cfg)
	s.anim = NewAnimator(s.pool, sink, sched, &s.cfg)
	return s
}

// ShowImage samples the decoded pixel data, reduces the sample set to the
// configured particle budget, and starts animating the swarm toward it.
// A later call supersedes an in-flight run: the pending frame is cancelled
// before the new run begins (last call wins). Reports whether a run was
// cancelled.
func (s *Swarm) ShowImage(src PixelSource) bool {
	samples := SampleImage(src, s.cfg)
	if s.cfg.MaxParticles > 0 && len(samples) > s.cfg.MaxParticles {
		samples = Reduce(samples, s.cfg.MaxParticles)
	}
	return s.anim.Start(samples)
}

// ShowSamples starts animating toward an explicit target sample set,
// skipping the sampler. Same cancellation semantics as ShowImage.
func (s *Swarm) ShowSamples(samples []Sample) bool {
	return s.anim.Start(samples)
}

// Restart re-animates the pool's existing transitions from frame zero
// without reconciling new targets.
func (s *Swarm) Restart() bool {
	return s.anim.Start(nil)
}

// Cancel stops the in-flight run, if any.
func (s *Swarm) Cancel() bool {
	return s.anim.Cancel()
}

// Pool returns the swarm's particle pool.
func (s *Swarm) Pool() *Pool {
	return s.pool
}

// Animator returns the swarm's animation driver.
func (s *Swarm) Animator() *Animator {
	return s.anim
}

// Config returns the swarm's effective configuration, defaults applied.
func (s *Swarm) Config() Config {
	return s.cfg
}
