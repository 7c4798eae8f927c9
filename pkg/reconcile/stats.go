package reconcile

import (
	"fmt"
	"strings"
)

// Stats accumulates what one reconciliation pass did. It is built fresh per
// pass and handed verbatim to an external presenter; the core never formats
// terminal output itself.
type Stats struct {
	// Updated holds one label per matched-and-merged local entry, in
	// processing order. A label notes when the match self-corrected a
	// stale identifier via the name fallback.
	Updated []string

	// Added holds the names of brand-new local entries created this pass.
	Added []string

	// Stale holds the names of local entries with no remote counterpart
	// by identifier or name. They are reported, never deleted.
	Stale []string

	// Collisions holds one label per remote template that matched a local
	// entry already claimed earlier in the same pass.
	Collisions []string

	// Unresolved is the total number of fields across all touched entries
	// whose expression still equals the sentinel, including TODOs left
	// over from prior runs.
	Unresolved int
}

// NewStats returns an empty accumulator.
func NewStats() *Stats {
	return &Stats{}
}

// HasChanges reports whether the pass updated or added anything.
func (s *Stats) HasChanges() bool {
	return len(s.Updated) > 0 || len(s.Added) > 0
}

// Summary renders a short human-readable report of the pass.
func (s *Stats) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Templates updated: %d\n", len(s.Updated))
	for _, label := range s.Updated {
		fmt.Fprintf(&b, "  ~ %s\n", label)
	}

	fmt.Fprintf(&b, "Templates added: %d\n", len(s.Added))
	for _, name := range s.Added {
		fmt.Fprintf(&b, "  + %s\n", name)
	}

	fmt.Fprintf(&b, "Stale local templates: %d\n", len(s.Stale))
	for _, name := range s.Stale {
		fmt.Fprintf(&b, "  ? %s\n", name)
	}

	if len(s.Collisions) > 0 {
		fmt.Fprintf(&b, "Name collisions: %d\n", len(s.Collisions))
		for _, label := range s.Collisions {
			fmt.Fprintf(&b, "  ! %s\n", label)
		}
	}

	fmt.Fprintf(&b, "Unresolved field expressions: %d\n", s.Unresolved)
	return b.String()
}
