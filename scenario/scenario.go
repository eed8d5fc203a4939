// Package scenario describes grid searches in YAML and runs them through the
// floodfill and pathfind engines.
package scenario

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed scenario.schema.json
var schemaJSON string

var schema = jsonschema.MustCompileString("scenario.schema.json", schemaJSON)

// Sentinel errors for scenario loading and running.
var (
	// ErrInvalid indicates a scenario document that fails schema validation.
	ErrInvalid = errors.New("scenario: invalid scenario")
	// ErrMarkerNotFound indicates a start or target marker absent from the grid.
	ErrMarkerNotFound = errors.New("scenario: marker not found in grid")
	// ErrOutOfBounds indicates a start or target coordinate outside the grid.
	ErrOutOfBounds = errors.New("scenario: point outside grid")
)

// Mode selects which engine a scenario runs.
type Mode string

const (
	ModePath    Mode = "path"    // lowest-weight path from start to target
	ModeFlood   Mode = "flood"   // everything reachable from start
	ModeRegions Mode = "regions" // partition of the grid into same-rune regions
)

// Scenario is one search over one grid.
type Scenario struct {
	Name     string `yaml:"name"`
	Mode     Mode   `yaml:"mode"`
	Grid     string `yaml:"grid"`
	GridFile string `yaml:"grid_file"`

	// Start and Target are either a single marker rune found in the grid or
	// an "x,y" coordinate.
	Start  string `yaml:"start"`
	Target string `yaml:"target"`

	// Passable lists the runes that may be entered. When empty, paths use "."
	// plus the start and target runes, and floods spread between equal runes.
	Passable string `yaml:"passable"`

	// Weights is the cost of entering a cell, per rune. Unlisted runes cost 1.
	Weights map[string]int64 `yaml:"weights"`

	// TurnPenalty is added to every step that changes direction. Any value
	// above zero makes the search direction-aware and forbids reversing.
	TurnPenalty int64 `yaml:"turn_penalty"`
	// Heading is the initial direction for TurnPenalty, "1,0" by default.
	Heading string `yaml:"heading"`

	Diagonal      bool     `yaml:"diagonal"`
	FudgeFactor   int64    `yaml:"fudge_factor"`
	AverageWeight *float64 `yaml:"average_weight"`
	Frontier      string   `yaml:"frontier"`
	MaxDepth      int      `yaml:"max_depth"`

	// AllPaths counts every tile on any optimal path, not just one.
	AllPaths bool `yaml:"all_paths"`

	// directory that grid_file is relative to
	baseDir string
}

// Load reads and validates the scenario at path. A relative grid_file is
// resolved against the scenario's directory.
func Load(path string) (*Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	sc, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	sc.baseDir = filepath.Dir(path)
	return sc, nil
}

// Parse validates a YAML scenario against the embedded schema and decodes it.
func Parse(data []byte) (*Scenario, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("scenario: yaml: %w", err)
	}
	inst, err := toJSON(doc)
	if err != nil {
		return nil, fmt.Errorf("scenario: yaml: %w", err)
	}
	if err := schema.Validate(inst); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("scenario: yaml: %w", err)
	}
	if sc.Name == "" {
		sc.Name = string(sc.Mode)
	}
	return &sc, nil
}

// toJSON converts a decoded YAML document into the value space the schema
// validator expects: string-keyed objects and float64 numbers.
func toJSON(v any) (any, error) {
	b, err := json.Marshal(stringKeys(v))
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// stringKeys rewrites YAML mappings with non-string keys ("9: 5") so they
// survive JSON encoding.
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, x := range t {
			m[k] = stringKeys(x)
		}
		return m
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, x := range t {
			m[fmt.Sprint(k)] = stringKeys(x)
		}
		return m
	case []any:
		out := make([]any, len(t))
		for i, x := range t {
			out[i] = stringKeys(x)
		}
		return out
	}
	return v
}
