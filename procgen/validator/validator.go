// Package validator decides whether a generated tilemap can actually be
// finished. It runs a breadth-first reachability search from spawn to exit
// using tile-granular movement capabilities, then layers quality checks on
// top: mechanics diversity, passage bottlenecks, and an interest score.
package validator

import (
	"fmt"

	"github.com/automoto/octoplat/shared/leveldata"
)

// Quality thresholds below which a completable level is still flagged as
// uninteresting.
const (
	DefaultMinPathLength = 5
	DefaultMinMechanics  = 2
	DefaultMinInterest   = 0.3
)

// Validator checks reachability and interestingness of tilemaps.
type Validator struct {
	caps          Caps
	constraints   GeometryConstraints
	minPathLength int
	minMechanics  int
	minInterest   float64
}

func New() *Validator {
	return &Validator{
		caps:          DefaultCaps(),
		constraints:   DefaultGeometryConstraints(),
		minPathLength: DefaultMinPathLength,
		minMechanics:  DefaultMinMechanics,
		minInterest:   DefaultMinInterest,
	}
}

// WithCaps overrides the movement capability envelope.
func (v *Validator) WithCaps(caps Caps) *Validator {
	v.caps = caps
	return v
}

// WithThresholds overrides the interestingness gates.
func (v *Validator) WithThresholds(minPath, minMechanics int, minInterest float64) *Validator {
	v.minPathLength = minPath
	v.minMechanics = minMechanics
	v.minInterest = minInterest
	return v
}

// Validate checks one tilemap body from spawn marker to exit marker.
// The same input always produces the same result.
func (v *Validator) Validate(body string) Result {
	return v.ValidateGrid(ParseGrid(body))
}

func (v *Validator) ValidateGrid(g Grid) Result {
	if len(g) == 0 || len(g[0]) == 0 {
		return failedResult("empty level")
	}

	spawn, ok := g.findMarker(leveldata.GlyphSpawn)
	if !ok {
		return failedResult("no spawn marker")
	}
	exit, ok := g.findMarker(leveldata.GlyphExit)
	if !ok {
		return failedResult("no exit marker")
	}

	if !floodFillConnected(g, spawn, exit) {
		return failedResult("exit unreachable")
	}

	grapplePoints := g.findAllMarkers(leveldata.GlyphGrapplePoint)
	bouncePads := g.findAllMarkers(leveldata.GlyphBouncePad)
	hazards := g.findHazards()

	pathLength, mechanics, reachable, found := searchPath(g, v.caps, spawn, exit, grapplePoints, bouncePads, hazards)
	if !found {
		res := failedResult("exit unreachable")
		res.ReachableCells = reachable
		return res
	}

	res := Result{
		Completable:    true,
		Interesting:    true,
		PathLength:     pathLength,
		ReachableCells: reachable,
		MechanicsUsed:  mechanics,
		Required:       v.requiredMechanics(g, spawn, exit, grapplePoints, bouncePads, hazards),
		InterestScore:  interestScore(g, grapplePoints, bouncePads, hazards, pathLength, mechanics),
		Bottlenecks:    findPassageBottlenecks(g, v.constraints),
	}

	if len(res.Bottlenecks) > 0 {
		res.Issues = append(res.Issues, fmt.Sprintf("found %d passage bottleneck(s) that may be impassable", len(res.Bottlenecks)))
	}
	if res.PathLength < v.minPathLength {
		res.Issues = append(res.Issues, fmt.Sprintf("path too short (%d steps, minimum %d)", res.PathLength, v.minPathLength))
		res.Interesting = false
	}
	if available := countAvailableMechanics(g, grapplePoints, bouncePads); available < v.minMechanics {
		res.Issues = append(res.Issues, fmt.Sprintf("too few mechanics available (%d, minimum %d)", available, v.minMechanics))
		res.Interesting = false
	}
	if res.InterestScore < v.minInterest {
		res.Issues = append(res.Issues, fmt.Sprintf("interest score too low (%.2f, minimum %.2f)", res.InterestScore, v.minInterest))
		res.Interesting = false
	}
	return res
}

// requiredMechanics re-runs the search with each advanced mechanic removed
// in turn. A mechanic is required when its removal makes the exit
// unreachable.
func (v *Validator) requiredMechanics(g Grid, spawn, exit leveldata.TilePos,
	grapplePoints, bouncePads []leveldata.TilePos, hazards map[leveldata.TilePos]bool) RequiredMechanics {

	check := func(moves MoveSet, gps, bps []leveldata.TilePos) bool {
		caps := v.caps
		caps.Moves = moves
		_, _, _, found := searchPath(g, caps, spawn, exit, gps, bps, hazards)
		return !found
	}

	return RequiredMechanics{
		WallJump: check(v.caps.Moves.Without(MoveWallJump), grapplePoints, bouncePads),
		Grapple:  check(v.caps.Moves.Without(MoveGrapple), nil, bouncePads),
		Bounce:   check(v.caps.Moves.Without(MoveBounce), grapplePoints, nil),
		Swim:     check(v.caps.Moves.Without(MoveSwim), grapplePoints, bouncePads),
	}
}
