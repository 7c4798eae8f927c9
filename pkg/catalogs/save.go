package catalogs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/xeipuuv/gojsonschema"

	"github.com/paperfold/formsync/pkg/errors"
)

const (
	// FilePermissions for catalog files.
	FilePermissions = 0o644
	// DirPermissions for created catalog directories.
	DirPermissions = 0o755

	// BackupSuffix is appended to the previous catalog file before a save
	// overwrites it.
	BackupSuffix = ".bak"
)

// Save validates and persists the catalog to path. The write is refused on
// any invariant violation, so a buggy merge can never partially corrupt the
// file. The previous file, if any, is copied to path+BackupSuffix, then the
// new content is written to a temporary file in the same directory and
// renamed into place.
func Save(path string, templates []Template) error {
	if err := Validate(templates); err != nil {
		return err
	}

	// Normalize before serializing: a nil Fields map would marshal as
	// JSON null and be rejected by the schema gate.
	f := file{Templates: make([]Template, len(templates))}
	for i, t := range templates {
		out := t.Copy()
		if out.Fields == nil {
			out.Fields = map[string]string{}
		}
		f.Templates[i] = out
	}

	var data []byte
	var err error
	switch format(path) {
	case "yaml":
		data, err = yaml.Marshal(f)
		if err != nil {
			return errors.WrapParse("yaml", path, err)
		}
	default:
		data, err = json.MarshalIndent(f, "", "  ")
		if err != nil {
			return errors.WrapParse("json", path, err)
		}
		data = append(data, '\n')
		// Structural gate on the serialized document, after Validate
		// has passed, to catch serialization bugs.
		if err := validateSchema(data); err != nil {
			return err
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	if err := backup(path); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.WrapIO("write", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.WrapIO("close", tmpName, err)
	}
	if err := os.Chmod(tmpName, FilePermissions); err != nil {
		os.Remove(tmpName)
		return errors.WrapIO("chmod", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.WrapIO("rename", path, err)
	}
	return nil
}

// backup copies the existing catalog file to path+BackupSuffix. A missing
// file is not an error; there is nothing to preserve on the first save.
func backup(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.WrapIO("backup", path, err)
	}
	if err := os.WriteFile(path+BackupSuffix, data, FilePermissions); err != nil {
		return errors.WrapIO("backup", path+BackupSuffix, err)
	}
	return nil
}

// validateSchema checks the serialized JSON catalog against the embedded
// JSON Schema.
func validateSchema(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(catalogSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return errors.WrapValidation("catalog", err)
	}
	if !result.Valid() {
		msg := "catalog does not match schema"
		if errs := result.Errors(); len(errs) > 0 {
			msg = errs[0].String()
		}
		return &errors.ValidationError{
			Field:   "catalog",
			Message: msg,
		}
	}
	return nil
}
