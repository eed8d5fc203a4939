package scenario

import (
	"fmt"
	"strings"

	"github.com/ransoing/AoC24/pathfind"
	"github.com/ransoing/AoC24/xyz"
)

// Region is one connected block of equal runes.
type Region struct {
	Label     string  `yaml:"label"`
	Seed      xyz.Vec `yaml:"seed"`
	Area      int     `yaml:"area"`
	Perimeter int     `yaml:"perimeter"`
}

// Report is the outcome of running a scenario. Fields not produced by the
// scenario's mode are left zero.
type Report struct {
	Name string `yaml:"name"`
	Mode Mode   `yaml:"mode"`

	Start     xyz.Vec   `yaml:"start"`
	Target    xyz.Vec   `yaml:"target,omitempty"`
	Reachable bool      `yaml:"reachable"`
	Weight    int64     `yaml:"weight"`
	Path      []xyz.Vec `yaml:"path,omitempty"`
	Tiles     int       `yaml:"tiles,omitempty"`

	Visited int `yaml:"visited,omitempty"`
	Depth   int `yaml:"depth,omitempty"`

	Regions []Region `yaml:"regions,omitempty"`

	Stats pathfind.Stats `yaml:"stats,omitempty"`
}

// String renders the report for humans.
func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", r.Name, r.Mode)
	switch r.Mode {
	case ModePath:
		if !r.Reachable {
			fmt.Fprintf(&b, "  %v -> %v: unreachable\n", r.Start, r.Target)
			break
		}
		fmt.Fprintf(&b, "  %v -> %v: weight %d in %d steps\n", r.Start, r.Target, r.Weight, len(r.Path))
		if r.Tiles > 0 {
			fmt.Fprintf(&b, "  tiles on optimal paths: %d\n", r.Tiles)
		}
		fmt.Fprintf(&b, "  expanded %d, pruned %d, stale %d, snubbed %d\n",
			r.Stats.Expanded, r.Stats.Pruned, r.Stats.Stale, r.Stats.Snubbed)
	case ModeFlood:
		fmt.Fprintf(&b, "  from %v: %d cells, depth %d\n", r.Start, r.Visited, r.Depth)
		if r.Reachable {
			fmt.Fprintf(&b, "  target %v at depth %d\n", r.Target, r.Weight)
		}
	case ModeRegions:
		fmt.Fprintf(&b, "  %d regions\n", len(r.Regions))
		for _, reg := range r.Regions {
			fmt.Fprintf(&b, "  %s at %v: area %d, perimeter %d\n", reg.Label, reg.Seed, reg.Area, reg.Perimeter)
		}
	}
	return b.String()
}
