package runner

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// AppendOutputs appends key=value lines for each output to the command
// file at path, creating the file when absent. Keys are written in sorted
// order. Values containing newlines are rejected; the single-line form is
// the only one supported here.
func AppendOutputs(path string, values map[string]string) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		if strings.ContainsAny(values[k], "\n\r") {
			return fmt.Errorf("output %q: multiline values are not supported", k)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening output file %s: %w", path, err)
	}
	defer f.Close()

	for _, k := range keys {
		if _, err := fmt.Fprintf(f, "%s=%s\n", k, values[k]); err != nil {
			return fmt.Errorf("writing output %q: %w", k, err)
		}
	}
	return nil
}
