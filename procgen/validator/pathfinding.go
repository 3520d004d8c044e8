package validator

import (
	"math"

	"github.com/automoto/octoplat/shared/leveldata"
)

const (
	// spawnSearchHeight bounds the downward scan from a spawn marker to
	// the first cell with ground support.
	spawnSearchHeight = 10
	// wallGripHeight is the shortest solid column a wall grip can hold.
	wallGripHeight = 3
)

type searchNode struct {
	pos       leveldata.TilePos
	steps     int
	mechanics MoveSet
}

type move struct {
	to  leveldata.TilePos
	via MoveType
}

// searchPath runs a breadth-first search from spawn toward exit using the
// moves enabled in caps. It returns the step count, the mechanics used
// along the found path, the number of visited cells, and whether the exit
// was reached.
func searchPath(g Grid, caps Caps, spawn, exit leveldata.TilePos,
	grapplePoints, bouncePads []leveldata.TilePos, hazards map[leveldata.TilePos]bool) (int, MoveSet, int, bool) {

	start := spawn
	for dy := 0; dy < spawnSearchHeight; dy++ {
		check := leveldata.TilePos{X: spawn.X, Y: spawn.Y + dy}
		if g.isStandable(check, hazards) && !g.isSolid(check) {
			start = check
			break
		}
	}

	type visit struct {
		steps     int
		mechanics MoveSet
	}
	visited := map[leveldata.TilePos]visit{start: {}}
	queue := []searchNode{{pos: start}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		dist := cur.pos.ManhattanDistance(exit)
		if dist == 0 {
			return cur.steps, cur.mechanics, len(visited), true
		}
		if dist == 1 && canStepToExit(g, cur.pos, exit, hazards) {
			return cur.steps, cur.mechanics, len(visited), true
		}

		for _, mv := range reachableMoves(g, caps, cur.pos, grapplePoints, bouncePads, hazards) {
			steps := cur.steps + 1
			if old, ok := visited[mv.to]; ok && steps >= old.steps {
				continue
			}
			mech := cur.mechanics.With(mv.via)
			visited[mv.to] = visit{steps: steps, mechanics: mech}
			queue = append(queue, searchNode{pos: mv.to, steps: steps, mechanics: mech})
		}
	}
	return 0, 0, len(visited), false
}

// reachableMoves enumerates every cell one allowed move away from pos.
func reachableMoves(g Grid, caps Caps, pos leveldata.TilePos,
	grapplePoints, bouncePads []leveldata.TilePos, hazards map[leveldata.TilePos]bool) []move {

	var out []move
	onGround := g.isStandable(pos, hazards)
	onBounce := false
	for _, bp := range bouncePads {
		if bp.X == pos.X && bp.Y == pos.Y+1 {
			onBounce = true
			break
		}
	}

	if caps.Moves.Has(MoveWalk) && onGround {
		for _, dx := range []int{-1, 1} {
			next := leveldata.TilePos{X: pos.X + dx, Y: pos.Y}
			if !g.isSolid(next) && !hazards[next] {
				out = append(out, move{to: next, via: MoveWalk})
			}
		}
	}

	// Falling is always available.
	for dy := 1; dy <= caps.MaxFall; dy++ {
		next := leveldata.TilePos{X: pos.X, Y: pos.Y + dy}
		if next.Y >= len(g) || g.isSolid(next) {
			break
		}
		if hazards[next] {
			continue
		}
		if g.isStandable(next, hazards) {
			out = append(out, move{to: next, via: MoveFall})
		}
	}

	switch {
	case onBounce && caps.Moves.Has(MoveBounce):
		out = appendArcMoves(out, g, pos, caps.BounceHeight, caps.JumpRange, MoveBounce, hazards)
	case onGround && caps.Moves.Has(MoveJump):
		out = appendArcMoves(out, g, pos, caps.JumpHeight, caps.JumpRange, MoveJump, hazards)
	}

	if caps.Moves.Has(MoveWallJump) && g.isNearWall(pos) {
		for dy := -caps.WallJumpHeight; dy <= 1; dy++ {
			for dx := -caps.WallJumpRange; dx <= caps.WallJumpRange; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				next := leveldata.TilePos{X: pos.X + dx, Y: pos.Y + dy}
				if !inBounds(g, next) || g.isSolid(next) || hazards[next] {
					continue
				}
				if g.isStandable(next, hazards) || g.isNearWall(next) {
					out = append(out, move{to: next, via: MoveWallJump})
				}
			}
		}
	}

	if caps.Moves.Has(MoveGrapple) {
		for _, gp := range grapplePoints {
			if chebyshev(pos, gp) > caps.GrappleRange {
				continue
			}
			if !lineOfSight(g, pos, gp) {
				continue
			}
			for dy := -caps.GrappleRange; dy <= caps.GrappleRange; dy++ {
				for dx := -caps.GrappleRange; dx <= caps.GrappleRange; dx++ {
					next := leveldata.TilePos{X: gp.X + dx, Y: gp.Y + dy}
					if !inBounds(g, next) || g.isSolid(next) || hazards[next] {
						continue
					}
					if g.isStandable(next, hazards) {
						out = append(out, move{to: next, via: MoveGrapple})
					}
				}
			}
		}
	}

	if caps.Moves.Has(MoveSwim) && g.isWater(pos) {
		for _, d := range [4]leveldata.TilePos{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}} {
			next := leveldata.TilePos{X: pos.X + d.X, Y: pos.Y + d.Y}
			if !inBounds(g, next) || g.isSolid(next) || hazards[next] {
				continue
			}
			if g.isWater(next) || g.isStandable(next, hazards) {
				out = append(out, move{to: next, via: MoveSwim})
			}
		}
	}

	// The first move type to reach a cell wins.
	seen := make(map[leveldata.TilePos]bool, len(out))
	dedup := out[:0]
	for _, mv := range out {
		if seen[mv.to] {
			continue
		}
		seen[mv.to] = true
		dedup = append(dedup, mv)
	}
	return dedup
}

// appendArcMoves adds every standable landing within a parabolic jump or
// bounce envelope whose arc is not blocked by terrain.
func appendArcMoves(out []move, g Grid, pos leveldata.TilePos, height, reach int, via MoveType, hazards map[leveldata.TilePos]bool) []move {
	for dy := -height; dy <= 0; dy++ {
		for dx := -reach; dx <= reach; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			next := leveldata.TilePos{X: pos.X + dx, Y: pos.Y + dy}
			if !inBounds(g, next) || g.isSolid(next) || hazards[next] {
				continue
			}
			if g.isStandable(next, hazards) && arcClear(g, pos, next, hazards) {
				out = append(out, move{to: next, via: via})
			}
		}
	}
	return out
}

// arcClear samples the jump parabola between two cells and rejects the
// move if any sample lands inside a solid or a hazard.
func arcClear(g Grid, from, to leveldata.TilePos, hazards map[leveldata.TilePos]bool) bool {
	dx := to.X - from.X
	dy := to.Y - from.Y
	steps := maxInt(absInt(dx), maxInt(absInt(dy), 1))
	peak := math.Max(float64(absInt(dx))/2.0, 1.5)

	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		checkX := from.X + int(float64(dx)*t)

		parabola := -4.0*peak*(t-0.5)*(t-0.5) + peak
		arcOffset := int(parabola + float64(dy)*t)
		if arcOffset < 0 {
			arcOffset = 0
		}
		check := leveldata.TilePos{X: checkX, Y: from.Y - arcOffset}
		if g.isSolid(check) || hazards[check] {
			return false
		}
		if arcOffset > 0 && t > 0.5 && hazards[leveldata.TilePos{X: checkX, Y: from.Y}] {
			return false
		}
	}
	return true
}

func lineOfSight(g Grid, from, to leveldata.TilePos) bool {
	dx := to.X - from.X
	dy := to.Y - from.Y
	steps := maxInt(absInt(dx), maxInt(absInt(dy), 1))
	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		check := leveldata.TilePos{
			X: from.X + int(float64(dx)*t),
			Y: from.Y + int(float64(dy)*t),
		}
		if g.isSolid(check) {
			return false
		}
	}
	return true
}

// canStepToExit verifies the single-tile step onto the exit marker itself.
func canStepToExit(g Grid, cur, exit leveldata.TilePos, hazards map[leveldata.TilePos]bool) bool {
	if hazards[exit] || g.isSolid(exit) {
		return false
	}
	dx := exit.X - cur.X
	dy := exit.Y - cur.Y
	switch {
	case dy == 0 && absInt(dx) == 1:
		return g.isStandable(cur, hazards) || g.isStandable(exit, hazards)
	case dx == 0 && dy == -1:
		return g.isStandable(cur, hazards) || g.isNearWall(cur)
	case dx == 0 && dy == 1:
		return true
	case absInt(dx) == 1 && absInt(dy) == 1:
		return g.isStandable(cur, hazards)
	}
	return false
}

// floodFillConnected is a cheap 4-directional connectivity pre-check that
// ignores movement physics entirely.
func floodFillConnected(g Grid, spawn, exit leveldata.TilePos) bool {
	visited := map[leveldata.TilePos]bool{spawn: true}
	queue := []leveldata.TilePos{spawn}
	dirs := [4]leveldata.TilePos{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == exit {
			return true
		}
		for _, d := range dirs {
			next := leveldata.TilePos{X: cur.X + d.X, Y: cur.Y + d.Y}
			if !inBounds(g, next) || g.isSolid(next) || visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return false
}

func inBounds(g Grid, p leveldata.TilePos) bool {
	return p.Y >= 0 && p.Y < len(g) && p.X >= 0 && p.X < len(g[p.Y])
}

func chebyshev(a, b leveldata.TilePos) int {
	return maxInt(absInt(a.X-b.X), absInt(a.Y-b.Y))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
