package action

import (
	"os"
	"path/filepath"
	"testing"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestLoad_FullDescriptor(t *testing.T) {
	d, err := Load(testPath("valid-full.yml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if d.Name == nil || *d.Name != "cache-warmer" {
		t.Errorf("Name = %v, want cache-warmer", d.Name)
	}
	if d.Description == nil || *d.Description != "Warms the dependency cache before builds" {
		t.Errorf("Description = %v, want warm-cache description", d.Description)
	}
	if d.Author == nil || *d.Author != "actionsmith maintainers" {
		t.Errorf("Author = %v, want actionsmith maintainers", d.Author)
	}

	if d.Branding == nil {
		t.Fatal("Branding is nil, expected non-nil")
	}
	if d.Branding.Color != "blue" {
		t.Errorf("Branding.Color = %q, want blue", d.Branding.Color)
	}
	if d.Branding.Icon != "archive" {
		t.Errorf("Branding.Icon = %q, want archive", d.Branding.Icon)
	}

	if len(d.Inputs) != 3 {
		t.Fatalf("Inputs len = %d, want 3", len(d.Inputs))
	}
	cacheKey := d.Inputs["cache-key"]
	if cacheKey.Required == nil || !*cacheKey.Required {
		t.Errorf("Inputs[cache-key].Required = %v, want true", cacheKey.Required)
	}
	if cacheKey.Default != nil {
		t.Errorf("Inputs[cache-key].Default = %v, want nil", cacheKey.Default)
	}
	ttl := d.Inputs["ttl"]
	if ttl.Default == nil || *ttl.Default != "60" {
		t.Errorf("Inputs[ttl].Default = %v, want 60", ttl.Default)
	}
	legacy := d.Inputs["legacy-mode"]
	if legacy.DeprecationMessage == nil || *legacy.DeprecationMessage != "Use cache-key prefixes instead" {
		t.Errorf("Inputs[legacy-mode].DeprecationMessage = %v", legacy.DeprecationMessage)
	}

	if len(d.Outputs) != 1 {
		t.Fatalf("Outputs len = %d, want 1", len(d.Outputs))
	}
	hit := d.Outputs["cache-hit"]
	if hit.Description == nil || *hit.Description != "Whether the cache entry was found" {
		t.Errorf("Outputs[cache-hit].Description = %v", hit.Description)
	}

	if d.Runs.Using != "docker" {
		t.Errorf("Runs.Using = %q, want docker", d.Runs.Using)
	}
	if d.Runs.Image == nil || *d.Runs.Image != "./Dockerfile" {
		t.Errorf("Runs.Image = %v, want ./Dockerfile", d.Runs.Image)
	}
	if d.Runs.Args == nil || len(*d.Runs.Args) != 2 {
		t.Fatalf("Runs.Args = %v, want 2 entries", d.Runs.Args)
	}
	if (*d.Runs.Args)[0] != "warm" || (*d.Runs.Args)[1] != "--verbose" {
		t.Errorf("Runs.Args = %v, want [warm --verbose]", *d.Runs.Args)
	}
}

func TestLoad_SetsPath(t *testing.T) {
	path := testPath("valid-minimal.yml")
	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if d.Path != path {
		t.Errorf("Path = %q, want %q", d.Path, path)
	}
}

func TestLoad_MinimalLeavesOptionalsAbsent(t *testing.T) {
	d, err := Load(testPath("valid-minimal.yml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if d.Name != nil {
		t.Errorf("Name = %q, want nil", *d.Name)
	}
	if d.Description != nil {
		t.Errorf("Description = %q, want nil", *d.Description)
	}
	if d.Author != nil {
		t.Errorf("Author = %q, want nil", *d.Author)
	}
	if d.Branding != nil {
		t.Errorf("Branding = %+v, want nil", d.Branding)
	}
	if d.Runs.Image != nil {
		t.Errorf("Runs.Image = %q, want nil", *d.Runs.Image)
	}
	if d.Runs.Args != nil {
		t.Errorf("Runs.Args = %v, want nil", *d.Runs.Args)
	}
	if len(d.Inputs) != 0 || len(d.Outputs) != 0 {
		t.Errorf("Inputs/Outputs = %v/%v, want empty", d.Inputs, d.Outputs)
	}
}

func TestLoad_NullSectionsDecodeAsEmpty(t *testing.T) {
	d, err := Load(testPath("valid-null-sections.yml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if d.Inputs == nil || len(d.Inputs) != 0 {
		t.Errorf("Inputs = %v, want empty non-nil map", d.Inputs)
	}
	if d.Outputs == nil || len(d.Outputs) != 0 {
		t.Errorf("Outputs = %v, want empty non-nil map", d.Outputs)
	}
	if d.Runs.Using != "node20" {
		t.Errorf("Runs.Using = %q, want node20", d.Runs.Using)
	}
}

func TestLoad_RequiredOnlyInput(t *testing.T) {
	d, err := Load(testPath("valid-required-only-input.yml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	token := d.Inputs["token"]
	if token.Required == nil || !*token.Required {
		t.Errorf("Required = %v, want true", token.Required)
	}
	if token.Description != nil || token.Default != nil || token.DeprecationMessage != nil {
		t.Errorf("optional fields = %v/%v/%v, want all nil",
			token.Description, token.Default, token.DeprecationMessage)
	}
	if token.Kind != "" {
		t.Errorf("Kind = %q, want empty", token.Kind)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(testPath("nonexistent.yml"))
	if err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
	// The platform error passes through unwrapped.
	if !os.IsNotExist(err) {
		t.Errorf("err = %v, want os not-exist error", err)
	}
}

func TestLoad_StructureErrors(t *testing.T) {
	tests := []string{
		"invalid-partial-branding.yml",
		"invalid-missing-runs.yml",
		"invalid-missing-using.yml",
		"invalid-missing-inputs.yml",
	}
	for _, file := range tests {
		t.Run(file, func(t *testing.T) {
			if _, err := Load(testPath(file)); err == nil {
				t.Fatalf("Load(%s) = nil error, want structure error", file)
			}
		})
	}
}

func TestLoad_BadValueType(t *testing.T) {
	_, err := Load(testPath("invalid-bad-required-type.yml"))
	if err == nil {
		t.Fatal("expected decode error for non-bool required field, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(testPath("invalid-not-yaml.yml"))
	if err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}

func TestLoad_KindNeverRead(t *testing.T) {
	// A document that happens to carry a "kind" key under an input must
	// not populate the in-memory Kind field.
	dir := t.TempDir()
	path := filepath.Join(dir, "action.yml")
	doc := []byte(`inputs:
  token:
    kind: string
    required: true
outputs: {}
runs:
  using: docker
`)
	if err := os.WriteFile(path, doc, 0644); err != nil {
		t.Fatal(err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if d.Inputs["token"].Kind != "" {
		t.Errorf("Kind = %q, want empty", d.Inputs["token"].Kind)
	}
}
