package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileSet mirrors Set for YAML overrides. Sections left out of the file
// keep their compiled-in defaults; a section that is present replaces the
// default wholesale so overrides stay predictable.
type fileSet struct {
	Stress  *StressRules  `yaml:"stress"`
	Finance *FinanceRules `yaml:"finance"`
	Jobs    *JobRules     `yaml:"jobs"`
	Chat    *ChatRules    `yaml:"chat"`
}

// Load returns the default rule set, optionally overridden by a YAML file.
// An empty path means defaults only.
func Load(path string) (*Set, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}

	var f fileSet
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}

	if f.Stress != nil {
		s.Stress = *f.Stress
	}
	if f.Finance != nil {
		s.Finance = *f.Finance
	}
	if f.Jobs != nil {
		s.Jobs = *f.Jobs
	}
	if f.Chat != nil {
		s.Chat = *f.Chat
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("validate rules: %w", err)
	}
	return s, nil
}
