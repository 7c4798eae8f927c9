package catalogs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/paperfold/formsync/pkg/errors"
)

// file is the on-disk shape of the catalog.
type file struct {
	Templates []Template `json:"templates" yaml:"templates"`
}

// Load reads and validates the catalog at path. The format is chosen by
// extension: .yaml/.yml is parsed as YAML, everything else as JSON.
// A missing file is an IOError wrapping the underlying fs error; malformed
// content is a ParseError; an invariant break is a ValidationError. Keeping
// these distinct lets operators tell configuration corruption apart from
// pipeline bugs.
func Load(path string) ([]Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var f file
	switch format(path) {
	case "yaml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, errors.WrapParse("yaml", path, err)
		}
	default:
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, errors.WrapParse("json", path, err)
		}
	}

	if err := Validate(f.Templates); err != nil {
		return nil, err
	}
	return f.Templates, nil
}

// LoadOrEmpty behaves like Load but returns an empty catalog when no file
// exists yet, which is the normal state before the first synchronization.
func LoadOrEmpty(path string) ([]Template, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return []Template{}, nil
	}
	return Load(path)
}

// Validate checks every template against the catalog invariants and rejects
// duplicate template IDs.
func Validate(templates []Template) error {
	seen := make(map[int64]string, len(templates))
	for _, t := range templates {
		if err := t.Validate(); err != nil {
			return err
		}
		if prev, ok := seen[t.ID]; ok {
			return &errors.ValidationError{
				Field:   "id",
				Value:   t.ID,
				Message: "duplicate template ID shared by " + strings.Join([]string{prev, t.Name}, " and "),
			}
		}
		seen[t.ID] = t.Name
	}
	return nil
}

// format returns the serialization format implied by the path's extension.
func format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}
