package components

import (
	"github.com/automoto/octoplat/level"
	"github.com/automoto/octoplat/procgen"
	"github.com/automoto/octoplat/shared/leveldata"
	"github.com/automoto/octoplat/shared/procrand"
	"github.com/yohamta/donburi"
)

// LevelData holds the active level: the parsed tilemap, the live
// environment built from it, and the generator state that produced it.
type LevelData struct {
	TileMap *leveldata.TileMap
	Env     *level.Environment

	Generated *procgen.GeneratedLevel
	Gen       *procgen.Manager
	Rng       *procrand.Rng

	Biome      procgen.BiomeID
	LevelIndex int
}

var Level = donburi.NewComponentType[LevelData]()
