package reconcile

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/paperfold/formsync/pkg/catalogs"
)

func TestStale(t *testing.T) {
	tests := []struct {
		name     string
		original []catalogs.Template
		remotes  []catalogs.RemoteTemplate
		want     []string
	}{
		{
			name:     "empty local list",
			original: nil,
			remotes:  []catalogs.RemoteTemplate{{ID: 1, Name: "A"}},
			want:     nil,
		},
		{
			name: "matched by identifier despite rename",
			original: []catalogs.Template{
				{ID: 1, Name: "Old Name"},
			},
			remotes: []catalogs.RemoteTemplate{{ID: 1, Name: "New Name"}},
			want:    nil,
		},
		{
			name: "matched by name despite wrong identifier",
			original: []catalogs.Template{
				{ID: 99, Name: "Lease Agreement"},
			},
			remotes: []catalogs.RemoteTemplate{{ID: 5, Name: "lease agreement"}},
			want:    nil,
		},
		{
			name: "no counterpart at all",
			original: []catalogs.Template{
				{ID: 1, Name: "Orphan"},
				{ID: 2, Name: "Current"},
			},
			remotes: []catalogs.RemoteTemplate{{ID: 2, Name: "Current"}},
			want:    []string{"Orphan"},
		},
		{
			name: "empty remote catalog marks everything stale",
			original: []catalogs.Template{
				{ID: 1, Name: "A"},
				{ID: 2, Name: "B"},
			},
			remotes: nil,
			want:    []string{"A", "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Stale(tt.original, tt.remotes)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Stale mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
