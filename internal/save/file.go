package save

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Write encodes s to path, replacing any earlier save atomically.
func Write(path string, s Snapshot) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding save: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".save-*")
	if err != nil {
		return fmt.Errorf("creating save %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing save %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing save %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing save %s: %w", path, err)
	}
	return nil
}

// Read decodes the save at path. A missing file yields ErrNoSave.
func Read(path string) (Snapshot, error) {
	var s Snapshot
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, ErrNoSave
		}
		return s, fmt.Errorf("reading save %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing save %s: %w", path, err)
	}
	return s, nil
}

// Exists reports whether a save file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Delete removes the save at path. A missing file is not an error.
func Delete(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting save %s: %w", path, err)
	}
	return nil
}
