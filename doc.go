// Package aoc24 is a toolkit for searching grid puzzles: mazes, height maps,
// garden plots and anything else drawn as characters on a plane or in a cube.
//
// 🚀 What is inside?
//
//	xyz/         Vec, the integer coordinate: arithmetic, direction tables,
//	              rotations, distances and bounds-checked grid indexing
//	floodfill/   everything reachable from a point, and region partitioning
//	pathfind/    lowest-weight paths with caller-defined state keys, pruning
//	              and enumeration of equally cheap alternatives
//	gridio/      text grids from readers and (optionally zstd) files
//	scenario/    YAML-described searches, schema-validated, with reports
//	cmd/gridsearch  command-line runner for scenarios
//
// ✨ Design
//
//   - Engines never own a grid. Movement rules are closures over caller data,
//     usually reading it with xyz.ValueIn and using its bool as the boundary.
//   - Configuration is functional options over explicit Options structs with
//     documented defaults; invalid options fail with ErrOptionViolation.
//   - Searches are single-threaded, keep all state per call and honour a
//     context for cancellation.
//
// Quick start:
//
//	res, err := pathfind.QuickestPath(start, end,
//		pathfind.WithCanVisit(func(n, _ xyz.Vec, _ pathfind.History[xyz.Vec]) bool {
//			v, ok := xyz.ValueIn(n, grid)
//			return ok && v != '#'
//		}),
//	)
//
//	go get github.com/ransoing/AoC24
package aoc24
