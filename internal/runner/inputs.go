package runner

import (
	"fmt"
	"sort"
	"strings"

	"github.com/actionsmith-dev/actionsmith/action"
)

// InputEnv returns the environment variable carrying the value of the
// named input at execution time: "INPUT_" plus the upper-cased name with
// spaces replaced by underscores. Hyphens are preserved.
func InputEnv(name string) string {
	return "INPUT_" + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
}

// ResolveInputs resolves every input declared by the descriptor from the
// environment. Unset inputs fall back to their declared default; inputs
// with neither a value nor a default are omitted from the result unless
// required, in which case resolution fails with an error naming every
// missing input. Supplying a value for a deprecated input adds a warning.
//
// getenv abstracts the environment for testability; pass os.Getenv in
// production. An empty value is treated as unset.
func ResolveInputs(d *action.Descriptor, getenv func(string) string) (map[string]string, []string, error) {
	values := make(map[string]string, len(d.Inputs))
	var warnings []string
	var missing []string

	for name, in := range d.Inputs {
		v := getenv(InputEnv(name))
		if v != "" && in.DeprecationMessage != nil {
			warnings = append(warnings, fmt.Sprintf("input %q is deprecated: %s", name, *in.DeprecationMessage))
		}
		if v == "" && in.Default != nil {
			v = *in.Default
		}
		if v == "" {
			if in.Required != nil && *in.Required {
				missing = append(missing, name)
			}
			continue
		}
		values[name] = v
	}

	sort.Strings(warnings)
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, warnings, fmt.Errorf("missing required inputs: %s", strings.Join(missing, ", "))
	}
	return values, warnings, nil
}
