package stipple

import "math"

const (
	// fadeOutRadius bounds how far from its current point a surplus
	// particle's fade-out destination may land.
	fadeOutRadius = 20
	// fadeOutAngle is the rotation applied to the fade-out destination
	// around the particle's spawn point, turning a straight retreat into a
	// gentle spiral.
	fadeOutAngle = math.Pi / 10
)

// Pool owns the particle collection and reconciles it against incoming
// target configurations. The pool only ever grows: when a transition needs
// fewer particles than exist, the surplus is faded out in place rather than
// removed, keeping every particle drawable every frame.
type Pool struct {
	cfg       *Config
	particles []*Particle
}

// NewPool creates an empty pool reading configuration through cfg. The
// Config must already have its defaults applied (New does this).
func NewPool(cfg *Config) *Pool {
	return &Pool{cfg: cfg}
}

// Len returns the number of particles in the pool.
func (pl *Pool) Len() int {
	return len(pl.particles)
}

// Particles returns the pool's backing slice. The animator iterates it each
// frame; callers must not remove entries.
func (pl *Pool) Particles() []*Particle {
	return pl.particles
}

// Reconcile matches the pool to a new target sample set:
//
//  1. Grow the pool until it can seat every target. Newborns spawn at a
//     random point inside the padded canvas area, invisible (opacity and
//     radius zero), and fade in from there.
//  2. When there are fewer targets than particles, pick an evenly
//     distributed subset of existing particles to reuse.
//  3. Optionally shuffle the targets so sample-to-particle assignment varies
//     between transitions.
//  4. Snapshot every pre-existing particle's current interpolated state as
//     the new transition's From side.
//  5. Assign each reused particle its target, with the configured default
//     properties as the baseline under any sample overrides.
//  6. Send every leftover particle toward a fade-out destination near its
//     current point, spiraled around its spawn point, at zero opacity and
//     radius.
func (pl *Pool) Reconcile(targets []Sample) {
	preexisting := len(pl.particles)
	for len(pl.particles) < len(targets) {
		pl.particles = append(pl.particles, pl.newParticle())
	}

	used := pl.particles
	if len(targets) < len(pl.particles) {
		used = reduceEvenly(pl.particles, len(targets))
	}

	if pl.cfg.ParticleShuffle && len(targets) > 1 {
		shuffled := make([]Sample, len(targets))
		copy(shuffled, targets)
		pl.cfg.Rand.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		targets = shuffled
	}

	for i, p := range pl.particles {
		if i >= preexisting {
			continue
		}
		p.Trans.From = p.Pt
		p.Trans.FromProps = p.Props.Clone()
	}

	inUse := make(map[*Particle]struct{}, len(used))
	for i, p := range used {
		if i >= len(targets) {
			break
		}
		inUse[p] = struct{}{}
		s := targets[i]
		p.Trans.To = s.To
		p.Trans.ToProps = pl.cfg.DefaultProperties.merged(s.Props)
	}

	for _, p := range pl.particles {
		if _, ok := inUse[p]; ok {
			continue
		}
		pl.fadeOut(p)
	}
}

// newParticle creates an invisible particle at a random spawn point inside
// the padded area. Jitter is fixed here for the particle's lifetime.
func (pl *Pool) newParticle() *Particle {
	spawn := randPointIn(pl.cfg.Rand, pl.cfg.paddedArea())
	props := pl.cfg.DefaultProperties.Clone()
	props[PropOpacity] = 0.0
	props[PropRadius] = 0.0
	return &Particle{
		Spawn:      spawn,
		SpawnProps: props.Clone(),
		Pt:         spawn,
		Props:      props.Clone(),
		Jitter:     randRange(pl.cfg.Rand, -1, 1),
		Trans: Transition{
			From:      spawn,
			FromProps: props.Clone(),
			To:        spawn,
			ToProps:   pl.cfg.DefaultProperties.Clone(),
		},
	}
}

// fadeOut retires a surplus particle for this transition: its destination is
// a random point near where it currently is, rotated a little around its
// spawn point, with opacity and radius interpolating to zero.
func (pl *Pool) fadeOut(p *Particle) {
	dest, err := PointNear(pl.cfg.Rand, p.Pt, fadeOutRadius)
	if err != nil {
		Logger().Warn("stipple: fade-out destination", "err", err)
		return
	}
	p.Trans.To = rotateAbout(dest, p.Spawn, fadeOutAngle)
	toProps := pl.cfg.DefaultProperties.Clone()
	toProps[PropOpacity] = 0.0
	toProps[PropRadius] = 0.0
	p.Trans.ToProps = toProps
}
