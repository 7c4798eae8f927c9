package reconcile

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/paperfold/formsync/pkg/catalogs"
)

func TestFieldNames(t *testing.T) {
	tests := []struct {
		name   string
		remote catalogs.RemoteTemplate
		want   []string
	}{
		{
			name:   "no carriers",
			remote: catalogs.RemoteTemplate{ID: 1, Name: "Empty"},
			want:   []string{},
		},
		{
			name: "top-level fields only",
			remote: catalogs.RemoteTemplate{
				ID:   1,
				Name: "Lease",
				Fields: []catalogs.RemoteField{
					{Name: "Tenant Name"},
					{Name: "Start Date"},
				},
			},
			want: []string{"Start Date", "Tenant Name"},
		},
		{
			name: "union across all three carriers",
			remote: catalogs.RemoteTemplate{
				ID:     2,
				Name:   "Sales Contract",
				Fields: []catalogs.RemoteField{{Name: "Seller Name"}},
				Submitters: []catalogs.RemoteSubmitter{
					{Name: "Buyer", Fields: []catalogs.RemoteField{{Name: "Buyer Name"}}},
					{Name: "Seller", Fields: []catalogs.RemoteField{{Name: "Seller Name"}}},
				},
				Documents: []catalogs.RemoteDocument{
					{Name: "contract.pdf", Fields: []catalogs.RemoteField{{Name: "Citizen ID"}}},
				},
			},
			want: []string{"Buyer Name", "Citizen ID", "Seller Name"},
		},
		{
			name: "duplicate across two carriers appears once",
			remote: catalogs.RemoteTemplate{
				ID:     3,
				Name:   "Deposit",
				Fields: []catalogs.RemoteField{{Name: "Email"}},
				Submitters: []catalogs.RemoteSubmitter{
					{Fields: []catalogs.RemoteField{{Name: "Email"}}},
				},
			},
			want: []string{"Email"},
		},
		{
			name: "whitespace trimmed and empty names dropped",
			remote: catalogs.RemoteTemplate{
				ID:   4,
				Name: "Messy",
				Fields: []catalogs.RemoteField{
					{Name: "  Phone "},
					{Name: "   "},
					{Name: ""},
				},
			},
			want: []string{"Phone"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FieldNames(tt.remote)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FieldNames mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
