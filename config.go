package stipple

// Config controls sampling, the particle pool, and the animation driver.
// The zero value is usable: New applies the documented defaults. One Config
// is shared by reference between the pool, its particles, and the animator;
// it is treated as immutable once the swarm is constructed.
type Config struct {
	// Density is the sampling stride in pixels. Every Density-th pixel on
	// each axis is tested. Minimum (and default) 1.
	Density int
	// SampleColor enables per-sample color extraction: each sample carries
	// the pixel's color as a "#rrggbb" fill override.
	SampleColor bool
	// MaxParticles caps the sampled target count; the sampled set is reduced
	// evenly to this count before reconciliation. 0 means unlimited.
	MaxParticles int
	// ParticleShuffle randomizes which particle receives which image sample,
	// producing non-repetitive crossing trajectories.
	ParticleShuffle bool
	// DefaultProperties is the baseline property bag assigned to every
	// transition target. Its key set defines which properties are
	// interpolated. Default: fill #ffffff, opacity 1, radius 2.
	DefaultProperties Properties
	// Frames is the length of one animation run in frames. Minimum 1;
	// default 100.
	Frames int
	// MoveFunction names the position strategy: "linear", "rotate", or a
	// name registered via RegisterMoveFunction. Default "linear".
	MoveFunction string
	// PropertyFunction names the property strategy: "linear", "bubble", or
	// a name registered via RegisterPropertyFunction. Default "linear".
	PropertyFunction string
	// TimingFunction names the easing strategy: "linear", "easeOut", or a
	// name registered via RegisterTimingFunction. Default "linear".
	TimingFunction string
	// Width and Height are the canvas dimensions in canvas-local units.
	// Default 400 each.
	Width, Height float64
	// Padding insets the usable area on each edge. Images are aligned and
	// particles spawned inside the padded area.
	Padding Padding
	// AlignH and AlignV position the sampled image within the padded area.
	// Defaults: centered.
	AlignH HAlign
	AlignV VAlign
	// Contain scales the source image down (never up) to fit the padded
	// area before sampling.
	Contain bool
	// Rand substitutes the source of randomness; nil selects math/rand/v2.
	Rand Rand
}

const (
	defaultFrames = 100
	defaultWidth  = 400
	defaultHeight = 400
	defaultRadius = 2
)

// withDefaults returns a copy with every unset field replaced by its
// documented default. This is the one explicit defaulting step; there is no
// recursive merging anywhere.
func (c Config) withDefaults() Config {
	if c.Density < 1 {
		c.Density = 1
	}
	if c.DefaultProperties == nil {
		c.DefaultProperties = Properties{
			PropFill:    "#ffffff",
			PropOpacity: 1.0,
			PropRadius:  float64(defaultRadius),
		}
	}
	if c.Frames < 1 {
		c.Frames = defaultFrames
	}
	if c.MoveFunction == "" {
		c.MoveFunction = "linear"
	}
	if c.PropertyFunction == "" {
		c.PropertyFunction = "linear"
	}
	if c.TimingFunction == "" {
		c.TimingFunction = "linear"
	}
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	if c.Rand == nil {
		c.Rand = systemRand{}
	}
	return c
}

// paddedArea is the canvas rectangle inside the padding.
func (c *Config) paddedArea() Rect {
	return Rect{
		X:      c.Padding.Left,
		Y:      c.Padding.Top,
		Width:  c.Width - c.Padding.Left - c.Padding.Right,
		Height: c.Height - c.Padding.Top - c.Padding.Bottom,
	}
}
