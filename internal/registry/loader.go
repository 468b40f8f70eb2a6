package registry

import (
	_ "embed"
	"fmt"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"dynsheet/primitive"
	"dynsheet/record"
)

//go:embed columns.yaml
var embedded []byte

// File represents the root of a YAML column table.
type File struct {
	// Version of the table format.
	Version string `yaml:"version,omitempty"`

	// Targets lists the column sets, one per discriminator value.
	Targets []TargetSpec `yaml:"targets"`
}

// TargetSpec is one discriminator section of the table.
type TargetSpec struct {
	TargetID int64        `yaml:"targetId"`
	Columns  []ColumnSpec `yaml:"columns"`
}

// ColumnSpec is a column as written in YAML. Titles translates Title per
// BCP 47 language tag.
type ColumnSpec struct {
	Key      string            `yaml:"key"`
	Title    string            `yaml:"title,omitempty"`
	Titles   map[string]string `yaml:"titles,omitempty"`
	Type     KindName          `yaml:"type"`
	Required bool              `yaml:"required,omitempty"`
	Disabled bool              `yaml:"disabled,omitempty"`
	Min      *float64          `yaml:"min,omitempty"`
	Max      *float64          `yaml:"max,omitempty"`
	Default  *string           `yaml:"default,omitempty"`
}

// KindName is a primitive kind as spelled in YAML ("string", "uint", ...).
type KindName primitive.KindEnum

// UnmarshalYAML implements custom YAML unmarshaling for KindName.
func (k *KindName) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a column type name, got %v", node.Line, node.Kind)
	}

	kind, err := primitive.ParseKind(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*k = KindName(kind)

	return nil
}

// MarshalYAML implements custom YAML marshaling for KindName.
func (k KindName) MarshalYAML() (any, error) {
	return primitive.KindEnum(k).Name(), nil
}

// Default returns the table embedded in the module. It panics if the
// embedded table does not load, which tests guard against.
func Default() *Registry {
	reg, err := Parse(embedded)
	if err != nil {
		panic(fmt.Sprintf("registry: embedded column table: %v", err))
	}

	return reg
}

// LoadFile loads and parses a YAML column table from the given path.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read column table %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Registry.
func Parse(data []byte) (*Registry, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse column table YAML: %w", err)
	}

	applyDefaults(&f)

	return FromFile(f)
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}
}

// FromFile converts a decoded table into a Registry, checking its structure.
func FromFile(f File) (*Registry, error) {
	targets := make([]Target, 0, len(f.Targets))

	for _, ts := range f.Targets {
		t := Target{ID: ts.TargetID, Columns: make([]Column, 0, len(ts.Columns))}

		for _, cs := range ts.Columns {
			titles, err := parseTitles(cs.Titles)
			if err != nil {
				return nil, fmt.Errorf("target %d column %s: %w", ts.TargetID, cs.Key, err)
			}

			t.Columns = append(t.Columns, Column{
				Key:    record.FieldKey(cs.Key),
				Title:  cs.Title,
				Titles: titles,
				Descriptor: Descriptor{
					Kind:     primitive.KindEnum(cs.Type),
					Required: cs.Required,
					Disabled: cs.Disabled,
					Min:      cs.Min,
					Max:      cs.Max,
					Default:  cs.Default,
				},
			})
		}

		targets = append(targets, t)
	}

	return New(f.Version, targets)
}

// ToFile converts a Registry back into its YAML shape.
func ToFile(r *Registry) File {
	f := File{Version: r.version, Targets: make([]TargetSpec, 0, len(r.targets))}

	for _, t := range r.targets {
		ts := TargetSpec{TargetID: t.ID, Columns: make([]ColumnSpec, 0, len(t.Columns))}

		for _, c := range t.Columns {
			d := c.Descriptor.Clone()
			ts.Columns = append(ts.Columns, ColumnSpec{
				Key:      string(c.Key),
				Title:    c.Title,
				Titles:   formatTitles(c.Titles),
				Type:     KindName(d.Kind),
				Required: d.Required,
				Disabled: d.Disabled,
				Min:      d.Min,
				Max:      d.Max,
				Default:  d.Default,
			})
		}

		f.Targets = append(f.Targets, ts)
	}

	return f
}

func parseTitles(in map[string]string) (map[language.Tag]string, error) {
	if len(in) == 0 {
		return nil, nil
	}

	out := make(map[language.Tag]string, len(in))

	for lang, title := range in {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("invalid title language %q: %w", lang, err)
		}

		out[tag] = title
	}

	return out, nil
}

func formatTitles(in map[language.Tag]string) map[string]string {
	if len(in) == 0 {
		return nil
	}

	out := make(map[string]string, len(in))
	for tag, title := range in {
		out[tag.String()] = title
	}

	return out
}

// Marshal serializes a Registry to YAML.
func Marshal(r *Registry) ([]byte, error) {
	return yaml.Marshal(ToFile(r))
}
