package reconcile

import "github.com/rs/zerolog"

// CollisionPolicy controls what happens when two distinct remote templates
// both match the same local entry by name within one pass, a data-entry
// anomaly on the remote side.
type CollisionPolicy int

const (
	// CollisionWarn logs the collision loudly and merges anyway, letting
	// the later remote template overwrite the identifier and name again.
	// This matches the historical behavior.
	CollisionWarn CollisionPolicy = iota

	// CollisionSkip records the collision in Stats.Collisions and leaves
	// the already-merged entry untouched, for operators who would rather
	// resolve the anomaly remotely than have it silently double-merged.
	CollisionSkip
)

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithCollisionPolicy sets the collision policy. The default is CollisionWarn.
func WithCollisionPolicy(p CollisionPolicy) Option {
	return func(r *Reconciler) {
		r.collisions = p
	}
}

// WithLogger sets the logger used for merge decisions and collision warnings.
func WithLogger(logger *zerolog.Logger) Option {
	return func(r *Reconciler) {
		if logger != nil {
			r.logger = logger
		}
	}
}
