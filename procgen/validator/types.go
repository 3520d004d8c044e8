package validator

import (
	"strings"

	"github.com/automoto/octoplat/shared/leveldata"
)

// MoveType identifies one traversal mechanic the reachability search can use.
type MoveType uint8

const (
	MoveWalk MoveType = iota
	MoveFall
	MoveJump
	MoveWallJump
	MoveGrapple
	MoveBounce
	MoveSwim
	moveTypeCount
)

var moveTypeNames = [moveTypeCount]string{
	"Walk", "Fall", "Jump", "WallJump", "Grapple", "Bounce", "Swim",
}

func (m MoveType) String() string {
	if int(m) < len(moveTypeNames) {
		return moveTypeNames[m]
	}
	return "Unknown"
}

// MoveSet is a bitmask of MoveType values.
type MoveSet uint16

func NewMoveSet(moves ...MoveType) MoveSet {
	var s MoveSet
	for _, m := range moves {
		s = s.With(m)
	}
	return s
}

// AllMoves enables every traversal mechanic.
func AllMoves() MoveSet {
	return NewMoveSet(MoveWalk, MoveFall, MoveJump, MoveWallJump, MoveGrapple, MoveBounce, MoveSwim)
}

func (s MoveSet) With(m MoveType) MoveSet    { return s | 1<<m }
func (s MoveSet) Without(m MoveType) MoveSet { return s &^ (1 << m) }
func (s MoveSet) Has(m MoveType) bool        { return s&(1<<m) != 0 }

// Count returns the number of distinct mechanics in the set.
func (s MoveSet) Count() int {
	n := 0
	for m := MoveType(0); m < moveTypeCount; m++ {
		if s.Has(m) {
			n++
		}
	}
	return n
}

func (s MoveSet) String() string {
	var parts []string
	for m := MoveType(0); m < moveTypeCount; m++ {
		if s.Has(m) {
			parts = append(parts, m.String())
		}
	}
	return strings.Join(parts, "+")
}

// Caps describes player movement reach in whole tiles. The defaults are
// derived from the shipped physics tuning (32px tiles, jump_velocity -800,
// gravity 2400) with a little slack so the search does not reject levels a
// skilled player can clear.
type Caps struct {
	JumpHeight     int
	JumpRange      int
	WallJumpHeight int
	WallJumpRange  int
	GrappleRange   int
	BounceHeight   int
	SwimRange      int
	MaxFall        int
	Moves          MoveSet
}

func DefaultCaps() Caps {
	return Caps{
		JumpHeight:     4,
		JumpRange:      5,
		WallJumpHeight: 4,
		WallJumpRange:  4,
		GrappleRange:   8,
		BounceHeight:   6,
		SwimRange:      4,
		MaxFall:        50,
		Moves:          AllMoves(),
	}
}

// RequiredMechanics marks mechanics without which the exit is unreachable.
type RequiredMechanics struct {
	WallJump bool
	Grapple  bool
	Bounce   bool
	Swim     bool
}

// Count returns how many mechanics are mandatory.
func (r RequiredMechanics) Count() int {
	n := 0
	for _, b := range []bool{r.WallJump, r.Grapple, r.Bounce, r.Swim} {
		if b {
			n++
		}
	}
	return n
}

// Any reports whether any advanced mechanic is mandatory.
func (r RequiredMechanics) Any() bool {
	return r.WallJump || r.Grapple || r.Bounce || r.Swim
}

// Result is the full verdict for one tilemap.
type Result struct {
	Completable    bool
	Interesting    bool
	PathLength     int
	ReachableCells int
	MechanicsUsed  MoveSet
	Required       RequiredMechanics
	InterestScore  float64
	Bottlenecks    []Bottleneck
	Issues         []string
	Reason         string
}

// Bottleneck is a grid position where the geometry pinches below the
// minimum passage size.
type Bottleneck struct {
	Pos    leveldata.TilePos
	Detail string
}

func failedResult(reason string) Result {
	return Result{Reason: reason, Issues: []string{reason}}
}

// Grid is a parsed tilemap in the wire alphabet, indexed [y][x].
type Grid [][]rune

// ParseGrid splits tilemap body text into a grid, skipping blank lines.
func ParseGrid(body string) Grid {
	var g Grid
	for _, line := range strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n") {
		if line == "" {
			continue
		}
		g = append(g, []rune(line))
	}
	return g
}

func (g Grid) at(p leveldata.TilePos) rune {
	if p.Y < 0 || p.Y >= len(g) {
		return leveldata.GlyphSolid
	}
	row := g[p.Y]
	if p.X < 0 || p.X >= len(row) {
		return leveldata.GlyphSolid
	}
	return row[p.X]
}

func (g Grid) isSolid(p leveldata.TilePos) bool {
	ch := g.at(p)
	return ch == leveldata.GlyphSolid || ch == leveldata.GlyphBreakable
}

func (g Grid) isWater(p leveldata.TilePos) bool {
	return g.at(p) == leveldata.GlyphWater
}

// isStandable reports whether a cell can be occupied with support below.
func (g Grid) isStandable(p leveldata.TilePos, hazards map[leveldata.TilePos]bool) bool {
	if g.isSolid(p) || hazards[p] {
		return false
	}
	below := leveldata.TilePos{X: p.X, Y: p.Y + 1}
	if g.isSolid(below) {
		return true
	}
	ch := g.at(below)
	return ch == leveldata.GlyphPlatform || ch == leveldata.GlyphBouncePad
}

// isNearWall reports whether a vertical solid run of wallGripHeight tiles
// starts beside the cell, the minimum surface a wall grip can hold.
func (g Grid) isNearWall(p leveldata.TilePos) bool {
	for _, dx := range []int{-1, 1} {
		run := 0
		for dy := 0; dy < wallGripHeight; dy++ {
			if g.isSolid(leveldata.TilePos{X: p.X + dx, Y: p.Y - dy}) {
				run++
			}
		}
		if run >= wallGripHeight {
			return true
		}
	}
	return false
}

func (g Grid) findMarker(marker rune) (leveldata.TilePos, bool) {
	for y, row := range g {
		for x, ch := range row {
			if ch == marker {
				return leveldata.TilePos{X: x, Y: y}, true
			}
		}
	}
	return leveldata.TilePos{}, false
}

func (g Grid) findAllMarkers(marker rune) []leveldata.TilePos {
	var out []leveldata.TilePos
	for y, row := range g {
		for x, ch := range row {
			if ch == marker {
				out = append(out, leveldata.TilePos{X: x, Y: y})
			}
		}
	}
	return out
}

func (g Grid) findHazards() map[leveldata.TilePos]bool {
	hazards := make(map[leveldata.TilePos]bool)
	for y, row := range g {
		for x, ch := range row {
			if ch == leveldata.GlyphSpike {
				hazards[leveldata.TilePos{X: x, Y: y}] = true
			}
		}
	}
	return hazards
}
