package reconcile

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/unicode/norm"

	"github.com/paperfold/formsync/pkg/catalogs"
	"github.com/paperfold/formsync/pkg/logging"
)

// placeholderDescription is assigned to entries created from a remote
// template that has no local counterpart yet.
const placeholderDescription = "Synced from the remote template catalog"

// Reconciler folds remote templates into the local catalog. It never
// mutates an input slice; every step copies, finds or appends, replaces by
// index, and returns a new list, so the caller's pre-merge snapshot stays
// intact for stale detection.
type Reconciler struct {
	collisions CollisionPolicy
	logger     *zerolog.Logger
}

// New creates a Reconciler with options applied.
func New(opts ...Option) *Reconciler {
	r := &Reconciler{
		collisions: CollisionWarn,
		logger:     logging.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run performs a complete reconciliation pass: it folds every remote
// template into the local list left to right, then detects stale entries
// against the original pre-merge snapshot. Running it twice with an
// unchanged remote catalog is a fixed point: the second pass adds nothing
// and changes no field mapping.
func (r *Reconciler) Run(local []catalogs.Template, remotes []catalogs.RemoteTemplate) ([]catalogs.Template, *Stats) {
	stats := NewStats()
	matched := make(map[int]int64)

	merged := make([]catalogs.Template, len(local))
	copy(merged, local)

	for _, remote := range remotes {
		merged = r.apply(merged, remote, FieldNames(remote), stats, matched)
	}

	stats.Stale = Stale(local, remotes)
	return merged, stats
}

// Apply folds a single remote template into the local list and records the
// outcome in stats. Each call's output list is meant to become the next
// call's input. Collision tracking spans only this one step; use Run for a
// whole pass.
func (r *Reconciler) Apply(local []catalogs.Template, remote catalogs.RemoteTemplate, fields []string, stats *Stats) []catalogs.Template {
	return r.apply(local, remote, fields, stats, make(map[int]int64))
}

func (r *Reconciler) apply(local []catalogs.Template, remote catalogs.RemoteTemplate, fields []string, stats *Stats, matched map[int]int64) []catalogs.Template {
	out := make([]catalogs.Template, len(local))
	copy(out, local)

	idx, byName := match(out, remote)
	if idx < 0 {
		entry := catalogs.Template{
			ID:          remote.ID,
			Name:        remote.Name,
			Description: placeholderDescription,
			Fields:      make(map[string]string, len(fields)),
		}
		for _, name := range fields {
			entry.Fields[name] = catalogs.UnresolvedValue
		}
		out = append(out, entry)
		matched[len(out)-1] = remote.ID

		stats.Added = append(stats.Added, remote.Name)
		stats.Unresolved += len(fields)

		r.logger.Info().
			Int64("template_id", remote.ID).
			Str("name", remote.Name).
			Int("fields", len(fields)).
			Msg("Added new template from remote catalog")
		return out
	}

	if prev, taken := matched[idx]; taken {
		r.logger.Warn().
			Int64("remote_id", remote.ID).
			Int64("previous_remote_id", prev).
			Str("name", remote.Name).
			Msg("Remote template collides with a local entry already merged this pass")
		if r.collisions == CollisionSkip {
			stats.Collisions = append(stats.Collisions,
				fmt.Sprintf("%s (remote %d collides with %d)", remote.Name, remote.ID, prev))
			return out
		}
	}
	matched[idx] = remote.ID

	// Update in place by index: the remote values for ID and name are
	// authoritative, existing expressions are never overwritten, and
	// locally-only fields are kept. Deleting user-authored mappings is an
	// operator decision, not a merge decision.
	entry := out[idx].Copy()
	entry.ID = remote.ID
	entry.Name = remote.Name
	if entry.Fields == nil {
		entry.Fields = make(map[string]string, len(fields))
	}
	added := 0
	for _, name := range fields {
		if _, ok := entry.Fields[name]; !ok {
			entry.Fields[name] = catalogs.UnresolvedValue
			added++
		}
	}
	out[idx] = entry

	label := remote.Name
	if byName {
		label += " (identifier corrected via name match)"
	}
	stats.Updated = append(stats.Updated, label)
	stats.Unresolved += entry.Unresolved()

	r.logger.Debug().
		Int64("template_id", remote.ID).
		Str("name", remote.Name).
		Bool("name_match", byName).
		Int("fields_added", added).
		Msg("Merged remote template into local entry")
	return out
}

// match locates the local entry a remote template corresponds to. The
// identifier match is authoritative and survives renames; the name match
// recovers from a previously-recorded wrong identifier without discarding
// its field mappings. Returns -1 when neither matches.
func match(local []catalogs.Template, remote catalogs.RemoteTemplate) (idx int, byName bool) {
	for i, t := range local {
		if t.ID == remote.ID {
			return i, false
		}
	}
	want := normalizeName(remote.Name)
	for i, t := range local {
		if normalizeName(t.Name) == want {
			return i, true
		}
	}
	return -1, false
}

// normalizeName prepares a template name for comparison: trim, compose to
// NFC, lower-case. NFC matters because names carry Vietnamese diacritics
// that occur in both composed and decomposed forms in the wild.
func normalizeName(name string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(name)))
}
