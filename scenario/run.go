package scenario

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/ransoing/AoC24/floodfill"
	"github.com/ransoing/AoC24/gridio"
	"github.com/ransoing/AoC24/pathfind"
	"github.com/ransoing/AoC24/xyz"
)

// board is a loaded grid plus the movement rules of a scenario.
type board struct {
	sc       *Scenario
	grid     gridio.Grid
	passable map[rune]bool // nil means "same rune as the cell being left"
	weights  map[rune]int64
}

// Run loads the scenario's grid and runs its mode. log receives debug lines
// from the engines; nil silences them.
func Run(ctx context.Context, sc *Scenario, log logrus.FieldLogger) (*Report, error) {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	log = log.WithFields(logrus.Fields{"scenario": sc.Name, "mode": string(sc.Mode)})

	g, err := sc.loadGrid()
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{"width": g.Width(), "height": g.Height()}).Debug("scenario: grid loaded")

	b := &board{sc: sc, grid: g, weights: make(map[rune]int64, len(sc.Weights))}
	for k, w := range sc.Weights {
		r, _ := utf8.DecodeRuneInString(k)
		b.weights[r] = w
	}

	switch sc.Mode {
	case ModePath:
		return b.runPath(ctx, log)
	case ModeFlood:
		return b.runFlood(ctx)
	case ModeRegions:
		return b.runRegions(ctx)
	}
	return nil, fmt.Errorf("%w: unknown mode %q", ErrInvalid, sc.Mode)
}

func (sc *Scenario) loadGrid() (gridio.Grid, error) {
	if sc.Grid != "" {
		return gridio.ParseString(sc.Grid)
	}
	path := sc.GridFile
	if !filepath.IsAbs(path) && sc.baseDir != "" {
		path = filepath.Join(sc.baseDir, path)
	}
	return gridio.Load(path)
}

// point resolves a marker rune or an "x,y" coordinate.
func (b *board) point(field, s string) (xyz.Vec, error) {
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		p, ok := b.grid.Find(r)
		if !ok {
			return xyz.Vec{}, fmt.Errorf("%w: %s %q", ErrMarkerNotFound, field, s)
		}
		return p, nil
	}
	p, err := xyz.Parse(s)
	if err != nil {
		return xyz.Vec{}, fmt.Errorf("scenario: %s: %w", field, err)
	}
	if !xyz.InBounds(p, b.grid) || p.Z != 0 {
		return xyz.Vec{}, fmt.Errorf("%w: %s %v", ErrOutOfBounds, field, p)
	}
	return p, nil
}

// allow builds the passable set. With no explicit list, the cells under the
// given endpoints are passable along with '.'.
func (b *board) allow(ends ...xyz.Vec) {
	b.passable = map[rune]bool{}
	if b.sc.Passable != "" {
		for _, r := range b.sc.Passable {
			b.passable[r] = true
		}
		return
	}
	b.passable['.'] = true
	for _, p := range ends {
		v, _ := xyz.ValueIn(p, b.grid)
		b.passable[v] = true
	}
}

func (b *board) enterable(n xyz.Vec) bool {
	v, ok := xyz.ValueIn(n, b.grid)
	return ok && b.passable[v]
}

func (b *board) sameRune(n, from xyz.Vec) bool {
	nv, ok := xyz.ValueIn(n, b.grid)
	if !ok {
		return false
	}
	fv, _ := xyz.ValueIn(from, b.grid)
	return nv == fv
}

func (b *board) cost(p xyz.Vec) int64 {
	v, _ := xyz.ValueIn(p, b.grid)
	if w, ok := b.weights[v]; ok {
		return w
	}
	return 1
}

// averageWeight is the configured pruning bound, or else the cheapest step:
// the lowest cell cost, halved when a diagonal step can cover two units of
// taxicab distance.
func (b *board) averageWeight() float64 {
	if b.sc.AverageWeight != nil {
		return *b.sc.AverageWeight
	}
	lowest := int64(1)
	for r, w := range b.weights {
		if b.passable[r] && w < lowest {
			lowest = w
		}
	}
	if b.sc.Diagonal {
		return float64(lowest) / 2
	}
	return float64(lowest)
}

func (b *board) frontier() pathfind.Frontier {
	if b.sc.Frontier == "fifo" {
		return pathfind.FrontierFIFO
	}
	return pathfind.FrontierHeap
}

// facing is the state key of direction-aware searches: a position and the
// direction it was entered in.
type facing struct{ pos, dir xyz.Vec }

func (b *board) runPath(ctx context.Context, log logrus.FieldLogger) (*Report, error) {
	start, err := b.point("start", b.sc.Start)
	if err != nil {
		return nil, err
	}
	target, err := b.point("target", b.sc.Target)
	if err != nil {
		return nil, err
	}
	b.allow(start, target)

	if b.sc.TurnPenalty == 0 {
		return search(ctx, b, start, target, log, pathfind.PointKey)
	}

	initial := xyz.XPos
	if b.sc.Heading != "" {
		if initial, err = xyz.Parse(b.sc.Heading); err != nil {
			return nil, fmt.Errorf("scenario: heading: %w", err)
		}
	}
	heading := func(h pathfind.History[facing]) xyz.Vec {
		if h.Len() == 0 {
			return initial
		}
		return h.Heading()
	}
	return search(ctx, b, start, target, log,
		func(p xyz.Vec, h pathfind.History[facing]) facing {
			return facing{pos: p, dir: p.Sub(h.Position())}
		},
		pathfind.WithCanVisit(func(n, from xyz.Vec, h pathfind.History[facing]) bool {
			return b.enterable(n) && (h.Len() == 0 || n != from.Sub(h.Heading()))
		}),
		pathfind.WithWeight(func(to xyz.Vec, h pathfind.History[facing]) int64 {
			w := b.cost(to)
			if to.Sub(h.Position()) != heading(h) {
				w += b.sc.TurnPenalty
			}
			return w
		}),
	)
}

// search runs pathfind with the board's rules; extra options override them.
func search[K comparable](
	ctx context.Context,
	b *board,
	start, target xyz.Vec,
	log logrus.FieldLogger,
	key func(xyz.Vec, pathfind.History[K]) K,
	extra ...pathfind.Option[K],
) (*Report, error) {
	var snubs [][]pathfind.Step[K]
	opts := []pathfind.Option[K]{
		pathfind.WithContext[K](ctx),
		pathfind.WithStateKey(key),
		pathfind.WithLogger[K](log),
		pathfind.WithFrontier[K](b.frontier()),
		pathfind.WithFudgeFactor[K](b.sc.FudgeFactor),
		pathfind.WithAverageWeight[K](b.averageWeight()),
		pathfind.WithNeighbors(func(p xyz.Vec, _ pathfind.History[K]) []xyz.Vec {
			return p.Neighbors(b.sc.Diagonal)
		}),
		pathfind.WithCanVisit(func(n, _ xyz.Vec, _ pathfind.History[K]) bool {
			return b.enterable(n)
		}),
		pathfind.WithWeight(func(to xyz.Vec, _ pathfind.History[K]) int64 {
			return b.cost(to)
		}),
	}
	if b.sc.AllPaths {
		opts = append(opts, pathfind.WithOnSnub(func(h pathfind.History[K], _ int64) {
			snubs = append(snubs, h.Steps())
		}))
	}
	opts = append(opts, extra...)

	res, err := pathfind.Search(start, target, opts...)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", b.sc.Name, err)
	}

	rep := &Report{
		Name:      b.sc.Name,
		Mode:      ModePath,
		Start:     start,
		Target:    target,
		Reachable: res.Reachable(),
		Path:      res.Points(),
		Stats:     res.Stats,
	}
	if rep.Reachable {
		rep.Weight = res.TotalWeight
		if b.sc.AllPaths {
			rep.Tiles = optimalTiles(start, res.History, snubs)
		}
	}
	return rep, nil
}

// optimalTiles counts the points on any optimal path. Starting from the
// states of the best path, a snubbed path joins when its last state is
// already known at exactly the weight it tied with; repeat until stable.
func optimalTiles[K comparable](start xyz.Vec, best []pathfind.Step[K], snubs [][]pathfind.Step[K]) int {
	known := make(map[K]pathfind.Step[K], len(best))
	for _, s := range best {
		known[s.Key] = s
	}
	for changed := true; changed; {
		changed = false
		for _, steps := range snubs {
			last := steps[len(steps)-1]
			if s, ok := known[last.Key]; !ok || s.Weight != last.Weight {
				continue
			}
			for _, s := range steps {
				if _, ok := known[s.Key]; !ok {
					known[s.Key] = s
					changed = true
				}
			}
		}
	}

	tiles := map[xyz.Vec]bool{start: true}
	for _, s := range known {
		tiles[s.Point] = true
	}
	return len(tiles)
}

func (b *board) runFlood(ctx context.Context) (*Report, error) {
	start, err := b.point("start", b.sc.Start)
	if err != nil {
		return nil, err
	}
	filter := b.sameRune
	if b.sc.Passable != "" {
		b.allow()
		filter = func(n, _ xyz.Vec) bool { return b.enterable(n) }
	}

	res, err := floodfill.FloodFill(start,
		floodfill.WithContext(ctx),
		floodfill.WithNeighbors(func(p xyz.Vec) []xyz.Vec { return p.Neighbors(b.sc.Diagonal) }),
		floodfill.WithFilterNeighbor(filter),
		floodfill.WithMaxDepth(b.sc.MaxDepth),
	)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", b.sc.Name, err)
	}

	rep := &Report{Name: b.sc.Name, Mode: ModeFlood, Start: start, Visited: res.Len()}
	for _, d := range res.Depth {
		if d > rep.Depth {
			rep.Depth = d
		}
	}
	if b.sc.Target != "" {
		target, err := b.point("target", b.sc.Target)
		if err != nil {
			return nil, err
		}
		rep.Target = target
		if d, ok := res.Depth[target]; ok {
			rep.Reachable = true
			rep.Weight = int64(d)
		}
	}
	return rep, nil
}

func (b *board) runRegions(ctx context.Context) (*Report, error) {
	regions, err := floodfill.Regions(b.grid.Points(),
		floodfill.WithContext(ctx),
		floodfill.WithNeighbors(func(p xyz.Vec) []xyz.Vec { return p.Neighbors(b.sc.Diagonal) }),
		floodfill.WithFilterNeighbor(b.sameRune),
	)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", b.sc.Name, err)
	}

	rep := &Report{Name: b.sc.Name, Mode: ModeRegions, Regions: make([]Region, 0, len(regions))}
	for _, cells := range regions {
		label, _ := xyz.ValueIn(cells[0], b.grid)
		perimeter := 0
		for _, p := range cells {
			for _, n := range p.Neighbors(false) {
				if !b.sameRune(n, p) {
					perimeter++
				}
			}
		}
		rep.Regions = append(rep.Regions, Region{
			Label:     string(label),
			Seed:      cells[0],
			Area:      len(cells),
			Perimeter: perimeter,
		})
	}
	return rep, nil
}
