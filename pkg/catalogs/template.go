// Package catalogs defines the template data model and the persisted
// catalog file format. The local catalog is a user-editable list of document
// templates, each mapping field names to value-generation expressions; the
// remote types mirror the e-signature service's template records for one
// synchronization pass.
package catalogs

import (
	"fmt"
	"maps"

	"github.com/paperfold/formsync/pkg/errors"
)

// UnresolvedValue is the reserved expression marking a field whose
// generation expression has not been supplied yet. It is never a legitimate
// user-authored mapping; value generation refuses to evaluate it.
const UnresolvedValue = "TODO"

// Template is a locally persisted document template. Entries survive across
// synchronization runs and carry user-authored generation expressions.
type Template struct {
	ID          int64             `json:"id" yaml:"id"`
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Fields      map[string]string `json:"fields" yaml:"fields"`
}

// Validate checks the template against the catalog invariants: a positive
// ID, a non-empty name, and non-empty field names and expressions.
func (t Template) Validate() error {
	if t.ID <= 0 {
		return &errors.ValidationError{
			Field:   "id",
			Value:   t.ID,
			Message: "must be a positive integer",
		}
	}
	if t.Name == "" {
		return &errors.ValidationError{
			Field:   "name",
			Message: "must not be empty",
		}
	}
	for name, expr := range t.Fields {
		if name == "" {
			return &errors.ValidationError{
				Field:   "fields",
				Message: fmt.Sprintf("template %q has an empty field name", t.Name),
			}
		}
		if expr == "" {
			return &errors.ValidationError{
				Field:   "fields." + name,
				Message: fmt.Sprintf("template %q field %q has an empty expression; use %q for unresolved fields", t.Name, name, UnresolvedValue),
			}
		}
	}
	return nil
}

// Copy returns a deep copy of the template. Mutating the copy's Fields map
// never affects the original.
func (t Template) Copy() Template {
	out := t
	if t.Fields != nil {
		out.Fields = maps.Clone(t.Fields)
	}
	return out
}

// Unresolved returns the number of fields whose expression still equals
// UnresolvedValue.
func (t Template) Unresolved() int {
	n := 0
	for _, expr := range t.Fields {
		if expr == UnresolvedValue {
			n++
		}
	}
	return n
}

// RemoteField is a single named field slot on a remote template.
type RemoteField struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// RemoteSubmitter is a submitter role on a remote template. Some API
// versions attach field lists per role instead of on the template itself.
type RemoteSubmitter struct {
	Name   string        `json:"name,omitempty"`
	UUID   string        `json:"uuid,omitempty"`
	Fields []RemoteField `json:"fields,omitempty"`
}

// RemoteDocument is an uploaded document belonging to a remote template.
// Older API versions carry field lists per document.
type RemoteDocument struct {
	Name   string        `json:"name,omitempty"`
	Fields []RemoteField `json:"fields,omitempty"`
}

// RemoteTemplate is a read-only snapshot of one template record from the
// remote catalog API. Field names may appear in any of three carriers
// because the response shape drifted across service versions; callers use
// the reconcile package's extractor to flatten them.
type RemoteTemplate struct {
	ID         int64             `json:"id"`
	Name       string            `json:"name"`
	Fields     []RemoteField     `json:"fields,omitempty"`
	Submitters []RemoteSubmitter `json:"submitters,omitempty"`
	Documents  []RemoteDocument  `json:"documents,omitempty"`
}
