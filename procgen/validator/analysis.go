package validator

import (
	"fmt"

	"github.com/automoto/octoplat/shared/leveldata"
)

// GeometryConstraints bound the smallest passages the player fits through.
type GeometryConstraints struct {
	MinPassageHeight int
	MinPassageWidth  int
}

func DefaultGeometryConstraints() GeometryConstraints {
	return GeometryConstraints{MinPassageHeight: 3, MinPassageWidth: 2}
}

// findPassageBottlenecks flags passable tiles whose vertical clearance is
// below the minimum passage height, and 1-wide vertical shafts pinched
// between solids. Hits in the same 3x3 neighborhood are collapsed into one.
func findPassageBottlenecks(g Grid, c GeometryConstraints) []Bottleneck {
	if len(g) < 2 {
		return nil
	}
	var found []Bottleneck

	for y := 1; y < len(g)-1; y++ {
		for x := 0; x < len(g[y]); x++ {
			p := leveldata.TilePos{X: x, Y: y}
			if g.isSolid(p) {
				continue
			}
			clearance := verticalClearance(g, x, y)
			if clearance > 0 && clearance < c.MinPassageHeight {
				found = append(found, Bottleneck{
					Pos:    p,
					Detail: fmt.Sprintf("horizontal passage with %d tile clearance (need %d)", clearance, c.MinPassageHeight),
				})
			}
		}
	}

	for y := 0; y < len(g); y++ {
		for x := 1; x < len(g[y])-1; x++ {
			p := leveldata.TilePos{X: x, Y: y}
			if g.isSolid(p) {
				continue
			}
			if c.MinPassageWidth > 1 &&
				g.isSolid(leveldata.TilePos{X: x - 1, Y: y}) &&
				g.isSolid(leveldata.TilePos{X: x + 1, Y: y}) {
				found = append(found, Bottleneck{
					Pos:    p,
					Detail: fmt.Sprintf("vertical passage with 1 tile width (need %d)", c.MinPassageWidth),
				})
			}
		}
	}

	seen := make(map[leveldata.TilePos]bool)
	dedup := found[:0]
	for _, b := range found {
		key := leveldata.TilePos{X: b.Pos.X / 3, Y: b.Pos.Y / 3}
		if seen[key] {
			continue
		}
		seen[key] = true
		dedup = append(dedup, b)
	}
	return dedup
}

// verticalClearance counts consecutive passable tiles from (x,y) upward.
func verticalClearance(g Grid, x, y int) int {
	clearance := 0
	for checkY := y; checkY >= 0; checkY-- {
		if g.isSolid(leveldata.TilePos{X: x, Y: checkY}) {
			break
		}
		clearance++
	}
	return clearance
}
