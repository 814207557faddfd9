package taxonomy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// rawCategory mirrors the YAML shape of one category.
type rawCategory struct {
	Name   string     `yaml:"name"`
	Skills []rawSkill `yaml:"skills"`
}

// rawSkill is one matcher in the YAML file. Display is optional and defaults
// to the pattern text.
type rawSkill struct {
	Pattern string `yaml:"pattern"`
	Display string `yaml:"display"`
}

type rawFile struct {
	Categories []rawCategory `yaml:"categories"`
}

// Load reads a taxonomy YAML file and compiles it. The file fully replaces
// the default table; category and skill order in the file fix the extraction
// output ordering.
func Load(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy: %w", err)
	}

	var raw rawFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse taxonomy: %w", err)
	}

	t, err := compile(raw.Categories)
	if err != nil {
		return nil, fmt.Errorf("taxonomy %s: %w", path, err)
	}
	return t, nil
}
