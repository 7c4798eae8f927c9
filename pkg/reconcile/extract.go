// Package reconcile implements the template reconciliation core: it folds a
// remote template catalog into the locally persisted one, matching entries
// by ID first and by normalized name second, merging field names without
// ever overwriting user-authored generation expressions, and reporting
// local entries that no longer exist remotely. The fold is a pure in-memory
// computation; fetching the remote catalog and persisting the merged result
// belong to the caller.
package reconcile

import (
	"sort"
	"strings"

	"github.com/paperfold/formsync/pkg/catalogs"
)

// FieldNames returns the deduplicated set of trimmed, non-empty field names
// a remote template declares, drawn from every carrier the service's API
// versions have used: the top-level field list, per-submitter-role lists,
// and per-document lists. The union keeps the extractor compatible with
// response shapes it has never seen. The result is sorted; order carries no
// meaning, but deterministic output keeps logs and merges stable.
func FieldNames(t catalogs.RemoteTemplate) []string {
	seen := make(map[string]struct{})

	collect := func(fields []catalogs.RemoteField) {
		for _, f := range fields {
			name := strings.TrimSpace(f.Name)
			if name == "" {
				continue
			}
			seen[name] = struct{}{}
		}
	}

	collect(t.Fields)
	for _, s := range t.Submitters {
		collect(s.Fields)
	}
	for _, d := range t.Documents {
		collect(d.Fields)
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
