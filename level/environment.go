// Package level holds the dynamic level environment: gems, enemies,
// moving and crumbling platforms, markers, and destroyed-block state. The
// static terrain stays in leveldata; this package owns everything that
// moves or changes during play.
package level

import (
	"fmt"
	"math"

	"github.com/automoto/octoplat/player"
	"github.com/automoto/octoplat/procgen"
	"github.com/automoto/octoplat/shared/gamemath"
	"github.com/automoto/octoplat/shared/leveldata"
)

// collisionRadius is the broad-phase radius for per-frame tile queries.
const collisionRadius = 64.0

// Environment is the dynamic state of one level. Entities carry stable
// string IDs and are kept in spawn order so iteration is deterministic.
type Environment struct {
	Gems          []*Gem
	GemsCollected int
	TotalGems     int

	GrapplePoints []gamemath.Vec2
	Checkpoints   []gamemath.Vec2
	WaterPools    []gamemath.Vec2
	ExitPosition  gamemath.Vec2
	HasExit       bool

	Crabs      []*Crab
	Pufferfish []*Pufferfish

	MovingPlatforms    []*MovingPlatform
	CrumblingPlatforms []*CrumblingPlatform

	DestroyedBlocks map[leveldata.TilePos]bool

	Decorations []procgen.Decoration

	// ActiveCheckpoint is valid when HasCheckpoint is set; respawn uses
	// it instead of the level spawn.
	ActiveCheckpoint gamemath.Vec2
	HasCheckpoint    bool

	LevelComplete bool
	LevelTime     float64
	ShowLevelText float64

	nextGem, nextCrab, nextPuffer, nextMoving, nextCrumbling int
}

// NewEnvironment returns an empty environment.
func NewEnvironment() *Environment {
	return &Environment{
		DestroyedBlocks: make(map[leveldata.TilePos]bool),
		ShowLevelText:   3,
	}
}

// SpawnGem adds a gem and returns it.
func (e *Environment) SpawnGem(pos gamemath.Vec2) *Gem {
	// Spread bob phases with the golden angle so neighbors desync.
	bob := math.Mod(float64(e.nextGem)*2.39996, 2*math.Pi)
	g := newGem(fmt.Sprintf("gem_%d", e.nextGem), pos, bob)
	e.nextGem++
	e.Gems = append(e.Gems, g)
	return g
}

// SpawnCrab adds a crab and returns it.
func (e *Environment) SpawnCrab(pos gamemath.Vec2) *Crab {
	c := newCrab(fmt.Sprintf("crab_%d", e.nextCrab), pos)
	e.nextCrab++
	e.Crabs = append(e.Crabs, c)
	return c
}

// SpawnPufferfish adds a pufferfish and returns it.
func (e *Environment) SpawnPufferfish(pos gamemath.Vec2, pattern PufferPattern) *Pufferfish {
	pf := newPufferfish(fmt.Sprintf("puffer_%d", e.nextPuffer), pos, pattern)
	e.nextPuffer++
	e.Pufferfish = append(e.Pufferfish, pf)
	return pf
}

// SpawnMovingPlatform adds a moving platform and returns it.
func (e *Environment) SpawnMovingPlatform(start, end, size gamemath.Vec2) *MovingPlatform {
	mp := newMovingPlatform(fmt.Sprintf("moving_%d", e.nextMoving), start, end, size)
	e.nextMoving++
	e.MovingPlatforms = append(e.MovingPlatforms, mp)
	return mp
}

// SpawnCrumblingPlatform adds a crumbling platform and returns it.
func (e *Environment) SpawnCrumblingPlatform(pos, size gamemath.Vec2) *CrumblingPlatform {
	cp := newCrumblingPlatform(fmt.Sprintf("crumbling_%d", e.nextCrumbling), pos, size)
	e.nextCrumbling++
	e.CrumblingPlatforms = append(e.CrumblingPlatforms, cp)
	return cp
}

// SetupFromTileMap rebuilds the environment from a parsed tilemap: gems,
// marker positions, enemies, and platforms. Clears any previous state.
func (e *Environment) SetupFromTileMap(tm *leveldata.TileMap) {
	e.Gems = nil
	e.Crabs = nil
	e.Pufferfish = nil
	e.MovingPlatforms = nil
	e.CrumblingPlatforms = nil
	e.nextGem, e.nextCrab, e.nextPuffer, e.nextMoving, e.nextCrumbling = 0, 0, 0, 0, 0

	for _, pos := range tm.MarkerPositions(leveldata.MarkerGem) {
		e.SpawnGem(gamemath.Vec2(pos))
	}
	e.TotalGems = len(e.Gems)
	e.GemsCollected = 0

	e.GrapplePoints = toGameVecs(tm.MarkerPositions(leveldata.MarkerGrapplePoint))
	e.Checkpoints = toGameVecs(tm.MarkerPositions(leveldata.MarkerCheckpoint))
	e.WaterPools = toGameVecs(tm.MarkerPositions(leveldata.MarkerWaterPool))
	if pos, ok := tm.ExitPosition(); ok {
		e.ExitPosition, e.HasExit = gamemath.Vec2(pos), true
	} else {
		e.ExitPosition, e.HasExit = gamemath.Vec2{}, false
	}

	for _, pos := range tm.MarkerPositions(leveldata.MarkerCrab) {
		e.SpawnCrab(gamemath.Vec2(pos))
	}
	for _, m := range tm.Markers {
		switch m.Type {
		case leveldata.MarkerPufferfishStationary:
			e.SpawnPufferfish(gamemath.Vec2(m.Position), PufferStationary)
		case leveldata.MarkerPufferfishHorizontal:
			e.SpawnPufferfish(gamemath.Vec2(m.Position), PufferHorizontal)
		case leveldata.MarkerPufferfishVertical:
			e.SpawnPufferfish(gamemath.Vec2(m.Position), PufferVertical)
		}
	}

	e.setupMovingPlatforms(tm)

	crumbleSize := gamemath.Vec2{X: tm.TileSize, Y: tm.TileSize * 0.5}
	for _, pos := range tm.MarkerPositions(leveldata.MarkerCrumblingPlatform) {
		e.SpawnCrumblingPlatform(gamemath.Vec2(pos), crumbleSize)
	}

	e.LevelComplete = false
	e.LevelTime = 0
	e.ShowLevelText = 3
	e.HasCheckpoint = false
	clear(e.DestroyedBlocks)
}

// setupMovingPlatforms pairs each start marker with the nearest end marker
// on the same row or column, ahead of the start.
func (e *Environment) setupMovingPlatforms(tm *leveldata.TileMap) {
	size := gamemath.Vec2{X: tm.TileSize * 2, Y: tm.TileSize * 0.5}
	halfTile := tm.TileSize * 0.5

	hStarts := toGameVecs(tm.MarkerPositions(leveldata.MarkerMovingPlatformHStart))
	hEnds := toGameVecs(tm.MarkerPositions(leveldata.MarkerMovingPlatformHEnd))
	for _, start := range hStarts {
		bestDist := math.Inf(1)
		var best gamemath.Vec2
		for _, end := range hEnds {
			if math.Abs(start.Y-end.Y) >= halfTile || end.X <= start.X {
				continue
			}
			if d := end.X - start.X; d < bestDist {
				bestDist, best = d, end
			}
		}
		if !math.IsInf(bestDist, 1) {
			e.SpawnMovingPlatform(start, best, size)
		}
	}

	vStarts := toGameVecs(tm.MarkerPositions(leveldata.MarkerMovingPlatformVStart))
	vEnds := toGameVecs(tm.MarkerPositions(leveldata.MarkerMovingPlatformVEnd))
	for _, start := range vStarts {
		bestDist := math.Inf(1)
		var best gamemath.Vec2
		for _, end := range vEnds {
			if math.Abs(start.X-end.X) >= halfTile || end.Y <= start.Y {
				continue
			}
			if d := end.Y - start.Y; d < bestDist {
				bestDist, best = d, end
			}
		}
		if !math.IsInf(bestDist, 1) {
			e.SpawnMovingPlatform(start, best, size)
		}
	}
}

// Update advances enemies, platforms, and the level clock.
func (e *Environment) Update(tm *leveldata.TileMap, dt float64) {
	for _, c := range e.Crabs {
		c.Update(tm, dt)
	}
	for _, pf := range e.Pufferfish {
		pf.Update(dt)
	}
	for _, mp := range e.MovingPlatforms {
		mp.Update(dt)
	}
	for _, cp := range e.CrumblingPlatforms {
		cp.Update(dt)
	}
	e.LevelTime += dt
	if e.ShowLevelText > 0 {
		e.ShowLevelText = max(e.ShowLevelText-dt, 0)
	}
}

// ResetEnemies returns all enemies to their spawn points, used on respawn.
func (e *Environment) ResetEnemies() {
	for _, c := range e.Crabs {
		c.Reset()
	}
	for _, pf := range e.Pufferfish {
		pf.Reset()
	}
}

// ResetPlatforms restores crumbling platforms, used on respawn.
func (e *Environment) ResetPlatforms() {
	for _, cp := range e.CrumblingPlatforms {
		cp.Reset()
	}
}

// SolidCrumblingRects returns collision rects of crumbling platforms that
// can currently be stood on.
func (e *Environment) SolidCrumblingRects() []gamemath.Rect {
	var out []gamemath.Rect
	for _, cp := range e.CrumblingPlatforms {
		if cp.Solid() {
			out = append(out, cp.CollisionRect())
		}
	}
	return out
}

// BuildWorld assembles the player's collision environment for this frame:
// nearby terrain minus destroyed blocks, plus whatever dynamic platforms
// are currently solid.
func (e *Environment) BuildWorld(tm *leveldata.TileMap, pos gamemath.Vec2) *player.World {
	corePos := leveldata.Vec2(pos)

	w := &player.World{
		Solids:        toGameRects(tm.SolidRectsNearExcluding(corePos, collisionRadius, e.DestroyedBlocks)),
		OneWays:       toGameRects(tm.PlatformRectsNear(corePos, collisionRadius)),
		Bouncers:      toGameRects(tm.BounceRectsNear(corePos, collisionRadius)),
		GrapplePoints: e.GrapplePoints,
	}
	w.Platforms = e.SolidCrumblingRects()
	for _, mp := range e.MovingPlatforms {
		w.Platforms = append(w.Platforms, mp.CollisionRect())
	}
	return w
}

// ActivateCheckpoint checks the player hitbox against checkpoint markers
// and activates the first one touched. Returns the newly activated
// position and true only on the activating frame.
func (e *Environment) ActivateCheckpoint(playerRect gamemath.Rect) (gamemath.Vec2, bool) {
	half := leveldata.DefaultTileSize / 2
	for _, cp := range e.Checkpoints {
		if e.HasCheckpoint && e.ActiveCheckpoint == cp {
			continue
		}
		box := gamemath.Rect{X: cp.X - half, Y: cp.Y - half, W: half * 2, H: half * 2}
		if playerRect.Overlaps(box) {
			e.ActiveCheckpoint = cp
			e.HasCheckpoint = true
			return cp, true
		}
	}
	return gamemath.Vec2{}, false
}

// TouchingWaterPool reports whether the player is at a water pool, where
// ink charges refill.
func (e *Environment) TouchingWaterPool(playerRect gamemath.Rect) bool {
	half := leveldata.DefaultTileSize / 2
	for _, wp := range e.WaterPools {
		box := gamemath.Rect{X: wp.X - half, Y: wp.Y - half, W: half * 2, H: half * 2}
		if playerRect.Overlaps(box) {
			return true
		}
	}
	return false
}

// AtExit reports whether the player hitbox overlaps the exit marker.
func (e *Environment) AtExit(playerRect gamemath.Rect) bool {
	if !e.HasExit {
		return false
	}
	half := leveldata.DefaultTileSize / 2
	box := gamemath.Rect{
		X: e.ExitPosition.X - half,
		Y: e.ExitPosition.Y - half,
		W: half * 2,
		H: half * 2,
	}
	return playerRect.Overlaps(box)
}

// CollectGems checks every uncollected gem against the player hitbox and
// returns how many were collected this frame.
func (e *Environment) CollectGems(playerRect gamemath.Rect) int {
	collected := 0
	for _, g := range e.Gems {
		if g.CheckCollection(playerRect) {
			collected++
		}
	}
	e.GemsCollected += collected
	return collected
}

func toGameVecs(in []leveldata.Vec2) []gamemath.Vec2 {
	out := make([]gamemath.Vec2, len(in))
	for i, v := range in {
		out[i] = gamemath.Vec2(v)
	}
	return out
}

func toGameRects(in []leveldata.Rect) []gamemath.Rect {
	out := make([]gamemath.Rect, len(in))
	for i, r := range in {
		out[i] = gamemath.Rect(r)
	}
	return out
}
