// Package scenario runs grid searches described in YAML.
//
// A scenario names a grid (inline or a file, optionally zstd-compressed), a
// mode, and the movement rules:
//
//	name: reindeer maze
//	mode: path            # path | flood | regions
//	grid_file: maze.txt
//	start: S              # marker rune, or "x,y"
//	target: E
//	turn_penalty: 1000    # direction-aware keys; reversing is forbidden
//	all_paths: true       # count tiles on every optimal path
//
// Documents are checked against an embedded JSON schema before decoding, so
// typos and out-of-range values fail with ErrInvalid instead of running with
// zero values. Run dispatches to pathfind.Search or floodfill and returns a
// Report that renders for humans via String and for tools via YAML.
package scenario
