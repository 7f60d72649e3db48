package action

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Load reads the action descriptor at path into a typed Descriptor and
// records the path on it.
//
// File-open failures and YAML decode failures propagate unchanged so the
// caller sees the full platform or codec diagnostic. Documents that parse
// but do not match the descriptor shape (missing runs.using, a partial
// branding section, absent inputs/outputs sections, wrong value types)
// fail with a structure error.
func Load(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// First pass: raw mapping, to check for sections the typed decode
	// would silently default.
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if err := checkShape(raw); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, err
	}

	// A bare "inputs:" key decodes to a nil map; normalize to empty so
	// the descriptor re-serializes as an empty mapping.
	if d.Inputs == nil {
		d.Inputs = map[string]Input{}
	}
	if d.Outputs == nil {
		d.Outputs = map[string]Output{}
	}

	d.Path = path
	return &d, nil
}

// checkShape enforces the mandatory-field rules that yaml.Unmarshal into
// a struct cannot: required sections and the all-or-nothing branding pair.
func checkShape(raw map[string]interface{}) error {
	runsVal, ok := raw["runs"]
	if !ok {
		return fmt.Errorf("descriptor missing required 'runs' section")
	}
	runs, ok := runsVal.(map[string]interface{})
	if !ok {
		return fmt.Errorf("'runs' must be a mapping")
	}
	if _, ok := runs["using"]; !ok {
		return fmt.Errorf("'runs' missing required 'using' field")
	}

	for _, key := range []string{"inputs", "outputs"} {
		v, ok := raw[key]
		if !ok {
			return fmt.Errorf("descriptor missing required %q section", key)
		}
		if v != nil {
			if _, ok := v.(map[string]interface{}); !ok {
				return fmt.Errorf("%q must be a mapping", key)
			}
		}
	}

	if b, ok := raw["branding"]; ok {
		bm, ok := b.(map[string]interface{})
		if !ok {
			return fmt.Errorf("'branding' must be a mapping")
		}
		for _, key := range []string{"color", "icon"} {
			if _, ok := bm[key]; !ok {
				return fmt.Errorf("'branding' missing required %q field", key)
			}
		}
	}

	return nil
}
