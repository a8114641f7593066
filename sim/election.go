package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Election is the top-level document of an election file: a base seed
// plus the precincts that open on election day.
type Election struct {
	Seed      int64      `yaml:"seed"`
	Precincts []Precinct `yaml:"precincts"`
}

// LoadElection reads and validates an election file from path.
// Unknown YAML fields are rejected so typos in precinct definitions
// surface as errors instead of silently using defaults.
func LoadElection(path string) (*Election, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading election file: %w", err)
	}

	var e Election
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&e); err != nil {
		return nil, fmt.Errorf("parsing election file: %w", err)
	}
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("invalid election file: %w", err)
	}
	return &e, nil
}

// Validate checks the election document and every precinct in it.
// Precinct names must be unique so reports and lookups are unambiguous.
func (e *Election) Validate() error {
	if len(e.Precincts) == 0 {
		return fmt.Errorf("election must define at least one precinct")
	}
	seen := make(map[string]bool, len(e.Precincts))
	for i := range e.Precincts {
		if err := e.Precincts[i].Validate(); err != nil {
			return fmt.Errorf("precinct[%d]: %w", i, err)
		}
		name := e.Precincts[i].Name
		if seen[name] {
			return fmt.Errorf("precinct[%d]: duplicate name %q", i, name)
		}
		seen[name] = true
	}
	return nil
}

// Precinct returns the named precinct from the election.
func (e *Election) Precinct(name string) (Precinct, error) {
	for _, p := range e.Precincts {
		if p.Name == name {
			return p, nil
		}
	}
	return Precinct{}, fmt.Errorf("no precinct named %q in election", name)
}
