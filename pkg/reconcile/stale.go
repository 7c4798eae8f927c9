package reconcile

import "github.com/paperfold/formsync/pkg/catalogs"

// Stale returns the names of local entries with no remote counterpart by
// identifier or normalized name. It must be given the pre-merge snapshot of
// the local list: the fold rewrites identifiers and names during matching,
// so comparing against the folded result would hide staleness. Stale
// entries are reported, never deleted; removal could destroy field mappings
// that cannot be reconstructed from the remote API alone.
func Stale(original []catalogs.Template, remotes []catalogs.RemoteTemplate) []string {
	ids := make(map[int64]struct{}, len(remotes))
	names := make(map[string]struct{}, len(remotes))
	for _, r := range remotes {
		ids[r.ID] = struct{}{}
		names[normalizeName(r.Name)] = struct{}{}
	}

	var stale []string
	for _, t := range original {
		if _, ok := ids[t.ID]; ok {
			continue
		}
		if _, ok := names[normalizeName(t.Name)]; ok {
			continue
		}
		stale = append(stale, t.Name)
	}
	return stale
}
