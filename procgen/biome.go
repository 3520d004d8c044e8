package procgen

import "strings"

// BiomeID identifies one themed section of a roguelite run. Biomes are
// ordered; a run walks them front to back and loops inside the last one.
type BiomeID int

const (
	// OceanDepths is the calm starting biome.
	OceanDepths BiomeID = iota
	// CoralReefs introduces verticality.
	CoralReefs
	// TropicalShore has warm colors and bounce-heavy hazards.
	TropicalShore
	// Shipwreck is enclosed and dark.
	Shipwreck
	// ArcticWaters brings ice platforms and aurora glow.
	ArcticWaters
	// VolcanicVents is the high-danger timing biome.
	VolcanicVents
	// SunkenRuins is ancient stone with mystic hazards.
	SunkenRuins
	// Abyss is the endless final biome.
	Abyss
)

// String returns the file identifier used in segment headers.
func (b BiomeID) String() string {
	switch b {
	case OceanDepths:
		return "ocean_depths"
	case CoralReefs:
		return "coral_reefs"
	case TropicalShore:
		return "tropical_shore"
	case Shipwreck:
		return "shipwreck"
	case ArcticWaters:
		return "arctic_waters"
	case VolcanicVents:
		return "volcanic_vents"
	case SunkenRuins:
		return "sunken_ruins"
	case Abyss:
		return "abyss"
	}
	return "unknown"
}

// DisplayName returns the human-readable biome name.
func (b BiomeID) DisplayName() string { return b.Definition().Name }

// Next returns the following biome in progression order. The final biome
// has no successor.
func (b BiomeID) Next() (BiomeID, bool) {
	if b >= OceanDepths && b < Abyss {
		return b + 1, true
	}
	return b, false
}

// AllBiomes returns every biome in progression order.
func AllBiomes() []BiomeID {
	return []BiomeID{
		OceanDepths, CoralReefs, TropicalShore, Shipwreck,
		ArcticWaters, VolcanicVents, SunkenRuins, Abyss,
	}
}

// ParseBiome accepts several spellings per biome, case and surrounding
// whitespace insensitive.
func ParseBiome(s string) (BiomeID, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ocean_depths", "oceandepths", "ocean", "ocean-depths":
		return OceanDepths, true
	case "coral_reefs", "coralreefs", "coral", "coral-reefs":
		return CoralReefs, true
	case "tropical_shore", "tropicalshore", "tropical", "tropical-shore", "shore":
		return TropicalShore, true
	case "shipwreck", "ship":
		return Shipwreck, true
	case "arctic_waters", "arcticwaters", "arctic", "arctic-waters", "ice":
		return ArcticWaters, true
	case "volcanic_vents", "volcanicvents", "volcanic", "vents", "volcanic-vents":
		return VolcanicVents, true
	case "sunken_ruins", "sunkenruins", "ruins", "sunken-ruins", "ancient":
		return SunkenRuins, true
	case "abyss", "the_abyss", "the-abyss":
		return Abyss, true
	}
	return OceanDepths, false
}

// EnemyType is a spawnable enemy species.
type EnemyType int

const (
	EnemyCrab EnemyType = iota
	EnemyPufferfish
)

// HazardType is a placeable hazard kind.
type HazardType int

const (
	HazardSpike HazardType = iota
	HazardBouncePad
)

// EnemyWeight pairs an enemy species with its spawn weight in a biome.
type EnemyWeight struct {
	Enemy  EnemyType
	Weight float64
}

// HazardWeight pairs a hazard kind with its spawn weight in a biome.
type HazardWeight struct {
	Hazard HazardType
	Weight float64
}

// Biome is the full definition of one themed run section.
type Biome struct {
	ID                 BiomeID
	Name               string
	Theme              BiomeTheme
	DifficultyModifier float64
	Enemies            []EnemyWeight
	Hazards            []HazardWeight
	LevelsInBiome      int
}

// Definition returns the static biome definition.
func (b BiomeID) Definition() *Biome {
	if b >= OceanDepths && b <= Abyss {
		return &biomes[b]
	}
	return &biomes[OceanDepths]
}

var biomes = [...]Biome{
	OceanDepths: {
		ID:   OceanDepths,
		Name: "Ocean Depths",
		Theme: BiomeTheme{
			BgTop:         Color{0.05, 0.15, 0.25, 1},
			BgBottom:      Color{0.02, 0.08, 0.15, 1},
			SolidColor:    Color{0.2, 0.35, 0.45, 1},
			PlatformColor: Color{0.3, 0.45, 0.55, 1},
			HazardColor:   Color{0.8, 0.3, 0.3, 1},
			AccentColor:   Color{0.4, 0.7, 0.9, 1},
			ParticleColor: Color{0.6, 0.8, 1.0, 0.5},
			Geometry:      GeometryStandard,
		},
		DifficultyModifier: 0.8,
		Enemies:            []EnemyWeight{{EnemyCrab, 0.8}, {EnemyPufferfish, 0.2}},
		Hazards:            []HazardWeight{{HazardSpike, 0.6}, {HazardBouncePad, 0.4}},
		LevelsInBiome:      4,
	},
	CoralReefs: {
		ID:   CoralReefs,
		Name: "Coral Reefs",
		Theme: BiomeTheme{
			BgTop:         Color{0.1, 0.25, 0.35, 1},
			BgBottom:      Color{0.05, 0.15, 0.25, 1},
			SolidColor:    Color{0.7, 0.4, 0.5, 1},
			PlatformColor: Color{0.5, 0.7, 0.4, 1},
			HazardColor:   Color{0.9, 0.4, 0.4, 1},
			AccentColor:   Color{1.0, 0.6, 0.8, 1},
			ParticleColor: Color{1.0, 0.8, 0.6, 0.6},
			Geometry:      GeometryOrganic,
			Glow:          Color{1.0, 0.6, 0.8, 0.4},
			HasGlow:       true,
		},
		DifficultyModifier: 1.0,
		Enemies:            []EnemyWeight{{EnemyCrab, 0.5}, {EnemyPufferfish, 0.5}},
		Hazards:            []HazardWeight{{HazardSpike, 0.5}, {HazardBouncePad, 0.5}},
		LevelsInBiome:      4,
	},
	TropicalShore: {
		ID:   TropicalShore,
		Name: "Tropical Shore",
		Theme: BiomeTheme{
			BgTop:         Color{0.4, 0.7, 0.9, 1},
			BgBottom:      Color{0.1, 0.4, 0.5, 1},
			SolidColor:    Color{0.85, 0.75, 0.55, 1},
			PlatformColor: Color{0.6, 0.45, 0.3, 1},
			HazardColor:   Color{0.9, 0.5, 0.3, 1},
			AccentColor:   Color{0.2, 0.8, 0.4, 1},
			ParticleColor: Color{1.0, 1.0, 0.8, 0.5},
			Geometry:      GeometryTropical,
			Glow:          Color{1.0, 0.9, 0.6, 0.3},
			HasGlow:       true,
		},
		DifficultyModifier: 0.9,
		Enemies:            []EnemyWeight{{EnemyCrab, 0.7}, {EnemyPufferfish, 0.3}},
		Hazards:            []HazardWeight{{HazardSpike, 0.4}, {HazardBouncePad, 0.6}},
		LevelsInBiome:      4,
	},
	Shipwreck: {
		ID:   Shipwreck,
		Name: "Shipwreck",
		Theme: BiomeTheme{
			BgTop:         Color{0.08, 0.1, 0.12, 1},
			BgBottom:      Color{0.04, 0.05, 0.08, 1},
			SolidColor:    Color{0.35, 0.25, 0.2, 1},
			PlatformColor: Color{0.45, 0.35, 0.25, 1},
			HazardColor:   Color{0.7, 0.5, 0.3, 1},
			AccentColor:   Color{0.8, 0.7, 0.5, 1},
			ParticleColor: Color{0.5, 0.4, 0.3, 0.4},
			Geometry:      GeometryBroken,
		},
		DifficultyModifier: 1.2,
		Enemies:            []EnemyWeight{{EnemyCrab, 0.6}, {EnemyPufferfish, 0.4}},
		Hazards:            []HazardWeight{{HazardSpike, 0.7}, {HazardBouncePad, 0.3}},
		LevelsInBiome:      4,
	},
	ArcticWaters: {
		ID:   ArcticWaters,
		Name: "Arctic Waters",
		Theme: BiomeTheme{
			BgTop:         Color{0.1, 0.15, 0.25, 1},
			BgBottom:      Color{0.05, 0.1, 0.2, 1},
			SolidColor:    Color{0.7, 0.85, 0.95, 1},
			PlatformColor: Color{0.5, 0.7, 0.85, 1},
			HazardColor:   Color{0.3, 0.6, 0.9, 1},
			AccentColor:   Color{0.4, 0.9, 0.7, 1},
			ParticleColor: Color{0.8, 0.9, 1.0, 0.6},
			Geometry:      GeometryIcy,
			Glow:          Color{0.3, 0.9, 0.6, 0.4},
			HasGlow:       true,
		},
		DifficultyModifier: 1.1,
		Enemies:            []EnemyWeight{{EnemyCrab, 0.5}, {EnemyPufferfish, 0.5}},
		Hazards:            []HazardWeight{{HazardSpike, 0.6}, {HazardBouncePad, 0.4}},
		LevelsInBiome:      4,
	},
	VolcanicVents: {
		ID:   VolcanicVents,
		Name: "Volcanic Vents",
		Theme: BiomeTheme{
			BgTop:         Color{0.2, 0.08, 0.05, 1},
			BgBottom:      Color{0.1, 0.04, 0.02, 1},
			SolidColor:    Color{0.3, 0.2, 0.15, 1},
			PlatformColor: Color{0.5, 0.3, 0.2, 1},
			HazardColor:   Color{1.0, 0.4, 0.1, 1},
			AccentColor:   Color{1.0, 0.6, 0.2, 1},
			ParticleColor: Color{1.0, 0.5, 0.2, 0.7},
			Geometry:      GeometryJagged,
			Glow:          Color{1.0, 0.4, 0.1, 0.5},
			HasGlow:       true,
		},
		DifficultyModifier: 1.4,
		Enemies:            []EnemyWeight{{EnemyCrab, 0.4}, {EnemyPufferfish, 0.6}},
		Hazards:            []HazardWeight{{HazardSpike, 0.8}, {HazardBouncePad, 0.2}},
		LevelsInBiome:      4,
	},
	SunkenRuins: {
		ID:   SunkenRuins,
		Name: "Sunken Ruins",
		Theme: BiomeTheme{
			BgTop:         Color{0.08, 0.1, 0.15, 1},
			BgBottom:      Color{0.04, 0.06, 0.1, 1},
			SolidColor:    Color{0.5, 0.5, 0.45, 1},
			PlatformColor: Color{0.6, 0.55, 0.5, 1},
			HazardColor:   Color{0.6, 0.4, 0.7, 1},
			AccentColor:   Color{0.4, 0.8, 0.7, 1},
			ParticleColor: Color{0.5, 0.7, 0.8, 0.5},
			Geometry:      GeometryAncient,
			Glow:          Color{0.4, 0.7, 0.9, 0.5},
			HasGlow:       true,
		},
		DifficultyModifier: 1.5,
		Enemies:            []EnemyWeight{{EnemyCrab, 0.35}, {EnemyPufferfish, 0.65}},
		Hazards:            []HazardWeight{{HazardSpike, 0.85}, {HazardBouncePad, 0.15}},
		LevelsInBiome:      4,
	},
	Abyss: {
		ID:   Abyss,
		Name: "The Abyss",
		Theme: BiomeTheme{
			BgTop:         Color{0.02, 0.02, 0.05, 1},
			BgBottom:      Color{0.0, 0.0, 0.02, 1},
			SolidColor:    Color{0.15, 0.1, 0.2, 1},
			PlatformColor: Color{0.25, 0.2, 0.3, 1},
			HazardColor:   Color{0.6, 0.2, 0.8, 1},
			AccentColor:   Color{0.5, 0.3, 0.9, 1},
			ParticleColor: Color{0.4, 0.2, 0.6, 0.5},
			Geometry:      GeometryCrystalline,
			Glow:          Color{0.5, 0.3, 0.9, 0.6},
			HasGlow:       true,
		},
		DifficultyModifier: 1.6,
		Enemies:            []EnemyWeight{{EnemyCrab, 0.3}, {EnemyPufferfish, 0.7}},
		Hazards:            []HazardWeight{{HazardSpike, 0.9}, {HazardBouncePad, 0.1}},
		// Final biome runs longer before it loops.
		LevelsInBiome: 5,
	},
}

// Progression tracks where a roguelite run sits in the biome order.
type Progression struct {
	current     BiomeID
	levelsDone  int
	totalLevels int
	locked      BiomeID
	hasLock     bool
}

// NewProgression starts a fresh run in the first biome.
func NewProgression() *Progression {
	return &Progression{current: OceanDepths}
}

// Lock restricts the run to a single biome for challenge mode.
func (p *Progression) Lock(b BiomeID) {
	p.locked = b
	p.hasLock = true
	p.current = b
	p.levelsDone = 0
}

// Unlock clears a biome lock without touching the rest of the run state.
func (p *Progression) Unlock() { p.hasLock = false }

// Locked returns the lock target if challenge mode is active.
func (p *Progression) Locked() (BiomeID, bool) { return p.locked, p.hasLock }

// Current returns the active biome definition.
func (p *Progression) Current() *Biome { return p.current.Definition() }

// CurrentID returns the active biome.
func (p *Progression) CurrentID() BiomeID { return p.current }

// TotalLevels returns levels completed across the whole run.
func (p *Progression) TotalLevels() int { return p.totalLevels }

// AdvanceLevel records a completed level and reports whether the run moved
// into a new biome. A locked run never advances; the final biome loops.
func (p *Progression) AdvanceLevel() bool {
	p.levelsDone++
	p.totalLevels++

	biome := p.current.Definition()
	if p.hasLock {
		if p.levelsDone >= biome.LevelsInBiome {
			p.levelsDone = 0
		}
		return false
	}

	if p.levelsDone >= biome.LevelsInBiome {
		if next, ok := p.current.Next(); ok {
			p.current = next
			p.levelsDone = 0
			return true
		}
		p.levelsDone = 0
	}
	return false
}

// FullReset returns the progression to a fresh unlocked run.
func (p *Progression) FullReset() {
	p.current = OceanDepths
	p.levelsDone = 0
	p.totalLevels = 0
	p.hasLock = false
}

// BiomeProgress is the 0..1 fraction of the current biome completed.
func (p *Progression) BiomeProgress() float64 {
	biome := p.current.Definition()
	if biome.LevelsInBiome == 0 {
		return 0
	}
	return float64(p.levelsDone) / float64(biome.LevelsInBiome)
}

// RunProgress is the 0..1 position across the whole run. Each biome owns an
// equal slice of the range, with the final biome capped at the last slice.
func (p *Progression) RunProgress() float64 {
	slice := 1.0 / float64(len(biomes))
	return float64(p.current)*slice + p.BiomeProgress()*slice
}

// IsBossLevel reports whether the next level is the last in its biome.
func (p *Progression) IsBossLevel() bool {
	biome := p.current.Definition()
	return biome.LevelsInBiome > 0 && p.levelsDone == biome.LevelsInBiome-1
}
