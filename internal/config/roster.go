package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AgentSpec names a protocol participant (from drixl.yaml). The roster
// supplies default recipient/sender ids for the bench command; the
// protocol itself treats agent ids as opaque.
type AgentSpec struct {
	ID          string `yaml:"id" json:"id"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	IsDefault   bool   `yaml:"is_default,omitempty" json:"isDefault,omitempty"`
}

// rosterFile is the top-level structure of drixl.yaml.
type rosterFile struct {
	Agents []AgentSpec `yaml:"agents"`
}

// LoadRoster reads and parses a drixl.yaml roster file.
// A missing file is not an error — there is simply no roster.
func LoadRoster(path string) ([]AgentSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read roster: %w", err)
	}

	var f rosterFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}
	return f.Agents, nil
}

// DefaultAgent returns the roster entry flagged is_default, or the first
// entry, or "" when the roster is empty.
func DefaultAgent(roster []AgentSpec) string {
	for _, a := range roster {
		if a.IsDefault {
			return a.ID
		}
	}
	if len(roster) > 0 {
		return roster[0].ID
	}
	return ""
}
