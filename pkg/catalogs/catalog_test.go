package catalogs

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/paperfold/formsync/pkg/errors"
)

func testTemplates() []Template {
	return []Template{
		{
			ID:          1,
			Name:        "Lease Agreement",
			Description: "Standard residential lease",
			Fields: map[string]string{
				"Tenant Name": "name",
				"Citizen ID":  "cccd",
				"Start Date":  UnresolvedValue,
			},
		},
		{
			ID:     2,
			Name:   "Deposit Contract",
			Fields: map[string]string{"Buyer Phone": "phone"},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, ext := range []string{".json", ".yaml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "catalog"+ext)
			want := testTemplates()

			if err := Save(path, want); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSaveCreatesBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")

	first := testTemplates()[:1]
	if err := Save(path, first); err != nil {
		t.Fatalf("First save failed: %v", err)
	}

	original, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := Save(path, testTemplates()); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}

	backup, err := os.ReadFile(path + BackupSuffix)
	if err != nil {
		t.Fatalf("Expected backup file after overwrite: %v", err)
	}
	if string(backup) != string(original) {
		t.Error("Backup does not match the previous catalog content")
	}
}

func TestSaveRefusesInvalidCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")

	tests := []struct {
		name      string
		templates []Template
	}{
		{
			name:      "non-positive id",
			templates: []Template{{ID: 0, Name: "Bad"}},
		},
		{
			name:      "empty name",
			templates: []Template{{ID: 1, Name: ""}},
		},
		{
			name: "empty expression",
			templates: []Template{{
				ID:     1,
				Name:   "Lease",
				Fields: map[string]string{"Tenant": ""},
			}},
		},
		{
			name: "duplicate ids",
			templates: []Template{
				{ID: 1, Name: "Lease"},
				{ID: 1, Name: "Deposit"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Save(path, tt.templates)
			if err == nil {
				t.Fatal("Expected save to be refused")
			}
			if !errors.IsValidationError(err) {
				t.Errorf("Expected a validation error, got %T: %v", err, err)
			}
			if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
				t.Error("Refused save must not create the catalog file")
			}
		})
	}
}

func TestLoadErrorTypes(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "absent.json"))
		var ioErr *errors.IOError
		if !stderrors.As(err, &ioErr) {
			t.Fatalf("Expected IOError for missing file, got %T: %v", err, err)
		}
		if !os.IsNotExist(stderrors.Unwrap(ioErr)) {
			t.Error("Expected IOError to preserve the underlying not-exist error")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := Load(path)
		var parseErr *errors.ParseError
		if !stderrors.As(err, &parseErr) {
			t.Fatalf("Expected ParseError, got %T: %v", err, err)
		}
		if parseErr.Format != "json" {
			t.Errorf("Expected json format, got %q", parseErr.Format)
		}
	})

	t.Run("invariant break", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.json")
		content := `{"templates":[{"id":-1,"name":"Bad","fields":{}}]}`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := Load(path)
		if !errors.IsValidationError(err) {
			t.Errorf("Expected validation error, got %T: %v", err, err)
		}
	})
}

func TestLoadOrEmpty(t *testing.T) {
	templates, err := LoadOrEmpty(filepath.Join(t.TempDir(), "nothing.json"))
	if err != nil {
		t.Fatalf("LoadOrEmpty failed for absent file: %v", err)
	}
	if len(templates) != 0 {
		t.Errorf("Expected empty catalog, got %d entries", len(templates))
	}
}

func TestTemplateCopyIsDeep(t *testing.T) {
	orig := testTemplates()[0]
	cp := orig.Copy()

	cp.Fields["Tenant Name"] = "changed"
	if orig.Fields["Tenant Name"] != "name" {
		t.Error("Mutating the copy changed the original Fields map")
	}
}

func TestTemplateUnresolved(t *testing.T) {
	tmpl := testTemplates()[0]
	if got := tmpl.Unresolved(); got != 1 {
		t.Errorf("Expected 1 unresolved field, got %d", got)
	}

	empty := Template{ID: 3, Name: "Empty"}
	if got := empty.Unresolved(); got != 0 {
		t.Errorf("Expected 0 unresolved fields, got %d", got)
	}
}
