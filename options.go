// Construction-time options for Set[E]: a closure over a private config
// struct, applied left-to-right by New/FromPairs.
package samplableset

// Option configures a Set at construction time via functional arguments.
type Option[E comparable] func(*config[E])

// WithSeed sets the RNG seed explicitly. Without it, New/FromPairs use
// the documented default seed (42).
func WithSeed[E comparable](seed uint64) Option[E] {
	return func(c *config[E]) {
		c.seed = seed
		c.hasSeed = true
	}
}

// WithHasher installs a Hasher[E] used to fold element identity into the
// group-boundary jitter decision (see groupIndex). Without one, only the
// weight's own bit pattern feeds the jitter.
func WithHasher[E comparable](h Hasher[E]) Option[E] {
	return func(c *config[E]) {
		if h != nil {
			c.hasher = h
		}
	}
}

// WithLogger installs a structured logger. Without one, the Set logs
// nothing (see logger.go).
func WithLogger[E comparable](l logger) Option[E] {
	return func(c *config[E]) {
		if l != nil {
			c.log = l
		}
	}
}
