package action

import (
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// Write persists the descriptor to its backing path and returns that
// path. Missing parent directories are created first. The emitted
// document omits every absent optional field entirely; Path and
// Input.Kind are never emitted.
//
// Returns ErrNoLocation when the descriptor has no path, and an *IOError
// for directory-creation, open, and serialization failures. The write is
// not atomic: a failure mid-encode can leave the target truncated.
func Write(d *Descriptor) (string, error) {
	if d.Path == "" {
		return "", ErrNoLocation
	}

	if _, err := os.Stat(d.Path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(d.Path), 0755); err != nil {
			return "", &IOError{Path: d.Path, Err: err}
		}
	}

	f, err := os.OpenFile(d.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return "", &IOError{Path: d.Path, Err: err}
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return "", &IOError{Path: d.Path, Err: err}
	}
	if err := enc.Close(); err != nil {
		return "", &IOError{Path: d.Path, Err: err}
	}

	return d.Path, nil
}
