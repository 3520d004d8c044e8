package validator

import (
	"math"

	"github.com/automoto/octoplat/shared/leveldata"
)

// interestScore blends path length, mechanics diversity, hazard count,
// interactive element density, and terrain density into a 0..1 score.
// Around 30% solid terrain scores best; emptier or denser maps fall off.
func interestScore(g Grid, grapplePoints, bouncePads []leveldata.TilePos,
	hazards map[leveldata.TilePos]bool, pathLength int, mechanics MoveSet) float64 {

	score := 0.0

	score += math.Min(float64(pathLength)/20.0, 1.0) * 0.25
	score += math.Min(float64(mechanics.Count())/4.0, 1.0) * 0.30
	if len(hazards) > 0 {
		score += math.Min(float64(len(hazards))/10.0, 1.0) * 0.20
	}
	score += math.Min(float64(len(grapplePoints)+len(bouncePads))/5.0, 1.0) * 0.15

	total := 0
	solid := 0
	for y := range g {
		for x := range g[y] {
			total++
			if g.isSolid(leveldata.TilePos{X: x, Y: y}) {
				solid++
			}
		}
	}
	if total > 0 {
		density := float64(solid) / float64(total)
		score += math.Max(1.0-math.Abs(density-0.30)*2.0, 0.0) * 0.10
	}

	return math.Min(math.Max(score, 0.0), 1.0)
}

// countAvailableMechanics estimates how many traversal mechanics the
// geometry itself offers, independent of any particular path.
func countAvailableMechanics(g Grid, grapplePoints, bouncePads []leveldata.TilePos) int {
	count := 2 // walking and falling are always on the table

	// Height variation makes jumping meaningful.
	minGround, maxGround := math.MaxInt32, 0
	for y := 1; y < len(g); y++ {
		for x := range g[y] {
			p := leveldata.TilePos{X: x, Y: y}
			above := leveldata.TilePos{X: x, Y: y - 1}
			if g.isSolid(p) && !g.isSolid(above) {
				if y < minGround {
					minGround = y
				}
				if y > maxGround {
					maxGround = y
				}
			}
		}
	}
	if maxGround-minGround >= 2 {
		count++
	}

	// A wall with clear cells beside it can be gripped and jumped from.
	hasClimbableWall := false
	for y := 2; y < len(g) && !hasClimbableWall; y++ {
		for x := range g[y] {
			p := leveldata.TilePos{X: x, Y: y}
			if !g.isSolid(p) {
				continue
			}
			left := leveldata.TilePos{X: x - 1, Y: y}
			leftUp := leveldata.TilePos{X: x - 1, Y: y - 1}
			right := leveldata.TilePos{X: x + 1, Y: y}
			rightUp := leveldata.TilePos{X: x + 1, Y: y - 1}
			if (inBounds(g, left) && !g.isSolid(left) && !g.isSolid(leftUp)) ||
				(inBounds(g, right) && !g.isSolid(right) && !g.isSolid(rightUp)) {
				hasClimbableWall = true
				break
			}
		}
	}
	if hasClimbableWall {
		count++
	}

	if len(grapplePoints) > 0 {
		count++
	}
	if len(bouncePads) > 0 {
		count++
	}
	return count
}
