package action

// Defaults for a freshly constructed descriptor: a container action built
// from the Dockerfile next to it.
const (
	DefaultUsing = "docker"
	DefaultImage = "./Dockerfile"
)

// Descriptor is the root metadata entity of an action.yml file.
type Descriptor struct {
	// Path is the backing file location. It is set by Load, required by
	// Write, and never serialized into the document body.
	Path string `yaml:"-" json:"-"`

	Name        *string `yaml:"name,omitempty" json:"name,omitempty"`
	Description *string `yaml:"description,omitempty" json:"description,omitempty"`
	Author      *string `yaml:"author,omitempty" json:"author,omitempty"`

	Branding *Branding `yaml:"branding,omitempty" json:"branding,omitempty"`

	// Inputs and Outputs map parameter names to their declarations. Both
	// sections are required in the document but may be empty.
	Inputs  map[string]Input  `yaml:"inputs" json:"inputs"`
	Outputs map[string]Output `yaml:"outputs" json:"outputs"`

	Runs Runs `yaml:"runs" json:"runs"`
}

// Input declares a single input parameter of an action.
type Input struct {
	// Kind is an in-memory convenience field for callers that want to
	// track a value type alongside the declaration. The document format
	// has no such field: Kind is never read or written by the codec and
	// is always empty after Load.
	Kind string `yaml:"-" json:"-"`

	Description        *string `yaml:"description,omitempty" json:"description,omitempty"`
	Required           *bool   `yaml:"required,omitempty" json:"required,omitempty"`
	Default            *string `yaml:"default,omitempty" json:"default,omitempty"`
	DeprecationMessage *string `yaml:"deprecationMessage,omitempty" json:"deprecationMessage,omitempty"`
}

// Output declares a single output parameter of an action.
type Output struct {
	Description *string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Branding holds presentational metadata. Both fields are mandatory
// whenever the branding section is present at all.
type Branding struct {
	Color string `yaml:"color" json:"color"`
	Icon  string `yaml:"icon" json:"icon"`
}

// Runs describes how the action executes.
type Runs struct {
	Using string  `yaml:"using" json:"using"`
	Image *string `yaml:"image,omitempty" json:"image,omitempty"`
	// Args is nil when the document has no args sequence; a present but
	// empty sequence round-trips as an empty, non-nil slice.
	Args *[]string `yaml:"args,omitempty" json:"args,omitempty"`
}

// NewDescriptor returns an in-memory descriptor with the given name and
// the default container execution strategy. The name is injected by the
// caller rather than read from a compiled-in constant so the default
// stays testable and overridable. The returned descriptor has no backing
// path; assign Path before calling Write.
func NewDescriptor(name string) *Descriptor {
	return &Descriptor{
		Name:    &name,
		Inputs:  map[string]Input{},
		Outputs: map[string]Output{},
		Runs:    DefaultRuns(),
	}
}

// DefaultRuns returns the default execution strategy: a container built
// from the local Dockerfile, with no arguments.
func DefaultRuns() Runs {
	image := DefaultImage
	return Runs{Using: DefaultUsing, Image: &image}
}

// String returns a pointer to s, for populating optional fields.
func String(s string) *string { return &s }

// Bool returns a pointer to b, for populating optional fields.
func Bool(b bool) *bool { return &b }
