package systems

import (
	"github.com/automoto/octoplat/components"
	"github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/shared/gamemath"
	"github.com/automoto/octoplat/shared/leveldata"
	"github.com/automoto/octoplat/systems/factory"
	"github.com/automoto/octoplat/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RebuildSpace tears down the wall entities of the previous level and
// rebuilds the resolv space from the new tilemap's solid tiles. The space
// backs spawn-safety probes and the debug overlay; the simulation keeps
// its own per-frame space built from the environment snapshot.
func RebuildSpace(e *ecs.ECS, tm *leveldata.TileMap) {
	var stale []*donburi.Entry
	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		stale = append(stale, entry)
	})
	for _, entry := range stale {
		e.World.Remove(entry.Entity())
	}

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		spaceEntry = factory.CreateSpace(e,
			int(float64(tm.Width)*tm.TileSize),
			int(float64(tm.Height)*tm.TileSize),
			int(tm.TileSize), int(tm.TileSize),
		)
	} else {
		sd := components.Space.Get(spaceEntry)
		sd.Space = resolv.NewSpace(
			int(float64(tm.Width)*tm.TileSize),
			int(float64(tm.Height)*tm.TileSize),
			int(tm.TileSize), int(tm.TileSize),
		)
	}

	size := tm.TileSize
	for y := 0; y < tm.Height; y++ {
		for x := 0; x < tm.Width; x++ {
			switch tm.Tiles[y][x] {
			case leveldata.TileSolid, leveldata.TileBreakable:
				factory.CreateWall(e, float64(x)*size, float64(y)*size, size, size)
			case leveldata.TilePlatform:
				factory.CreatePlatform(e, float64(x)*size, float64(y)*size, size, size/4)
			}
		}
	}
}

// NudgeOutOfSolids lifts a respawn point out of any solid it intersects.
// Checkpoints sit on platform tops, but a crumbled or moved platform can
// leave the stored point inside terrain.
func NudgeOutOfSolids(e *ecs.ECS, pos gamemath.Vec2) gamemath.Vec2 {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return pos
	}
	space := components.Space.Get(spaceEntry)

	hw := config.Player.HitboxWidth / 2
	hh := config.Player.HitboxHeight / 2
	probe := resolv.NewObject(pos.X-hw, pos.Y-hh, hw*2, hh*2)
	space.Add(probe)
	defer space.Remove(probe)

	const maxSteps = 10
	step := float64(leveldata.DefaultTileSize)
	for i := 0; i < maxSteps; i++ {
		if probe.Check(0, 0, tags.ResolvSolid) == nil {
			break
		}
		probe.Y -= step
		probe.Update()
	}
	return gamemath.Vec2{X: probe.X + hw, Y: probe.Y + hh}
}
