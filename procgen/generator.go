package procgen

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/charmbracelet/log"

	"github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/procgen/linker"
	"github.com/automoto/octoplat/procgen/validator"
	"github.com/automoto/octoplat/shared/leveldata"
	"github.com/automoto/octoplat/shared/procrand"
)

// maxGenerationRetries bounds the regenerate-on-invalid loop. Generation is
// cheap, so a generous budget keeps rare bad seeds from surfacing.
const maxGenerationRetries = 50

// retrySeedStride derives the per-attempt seed inside the retry loop.
const retrySeedStride = 12345

// runLengthEstimate is the assumed level count of a full run, used to map
// a level index onto the 0..1 difficulty progress scale.
const runLengthEstimate = 20.0

// GeneratedLevel is the output of one successful generation.
type GeneratedLevel struct {
	// MapData is the tilemap body, ready for the level loader.
	MapData      string
	Name         string
	Seed         uint64
	Width        int
	Height       int
	Layout       linker.LayoutStrategy
	SegmentNames []string
	Decorations  []Decoration
	Validation   validator.Result
}

// Manager orchestrates level generation: it owns the segment pool, the
// archetype sequencer and the validator, and drives the linker with retry.
type Manager struct {
	validator *validator.Validator
	pool      *SegmentPool
	sequencer *Sequencer
	logger    *log.Logger
	exportDir string
}

// NewManager creates a manager with a default validator and no logging.
func NewManager() *Manager {
	return &Manager{
		validator: validator.New(),
		logger:    log.New(io.Discard),
	}
}

// WithLogger routes generation diagnostics to the given logger.
func (m *Manager) WithLogger(logger *log.Logger) *Manager {
	m.logger = logger
	return m
}

// WithExportDir enables debug export of every generated level and its
// input segments into dir. An empty dir disables export.
func (m *Manager) WithExportDir(dir string) *Manager {
	m.exportDir = dir
	return m
}

// WithValidator replaces the completability validator, for callers that
// want custom movement caps or thresholds.
func (m *Manager) WithValidator(v *validator.Validator) *Manager {
	m.validator = v
	return m
}

// LoadPool reads every segment file under dir in fsys and registers each
// one for all biomes. Segments carry their own geometry; biome identity
// only affects theming and slot resolution. Returns the number of pool
// entries.
func (m *Manager) LoadPool(fsys fs.FS, dir string) (int, error) {
	segs, errs := leveldata.LoadSegments(fsys, dir)
	for _, err := range errs {
		m.logger.Warn("skipping segment", "err", err)
	}
	if len(segs) == 0 {
		return 0, &Error{Kind: ErrPoolNotLoaded}
	}

	pool := NewSegmentPool()
	for _, seg := range segs {
		for _, biome := range AllBiomes() {
			clone := *seg
			clone.Biome = biome.String()
			pool.Add(biome, &clone)
		}
	}
	m.pool = pool
	m.logger.Info("segment pool loaded", "segments", len(segs), "entries", pool.Len())
	return pool.Len(), nil
}

// SetPool installs an already-built pool, for tests and tools.
func (m *Manager) SetPool(pool *SegmentPool) { m.pool = pool }

// HasPool reports whether segments are available for generation.
func (m *Manager) HasPool() bool { return m.pool != nil && !m.pool.Empty() }

// InitSequencer starts archetype pacing for a new run and forgets segment
// recency from the previous run.
func (m *Manager) InitSequencer(seed uint64) {
	m.sequencer = NewSequencer(seed)
	if m.pool != nil {
		m.pool.ClearRecentlyUsed()
	}
}

// GenerateLevel produces a linked multi-segment level, retrying with
// derived seeds until a completable level comes out or the attempt budget
// is spent.
func (m *Manager) GenerateLevel(biome BiomeID, preset config.DifficultyPreset, levelIndex int, seed uint64) (*GeneratedLevel, error) {
	if !m.HasPool() {
		return nil, &Error{Kind: ErrPoolNotLoaded}
	}
	m.logger.Debug("starting generation",
		"biome", biome, "preset", preset, "level", levelIndex, "seed", seed)

	var lastErr error
	for attempt := 0; attempt < maxGenerationRetries; attempt++ {
		trySeed := seed + uint64(attempt)*retrySeedStride

		lvl, err := m.generateLinked(biome, preset, levelIndex, trySeed)
		if err == nil {
			if attempt > 0 {
				m.logger.Debug("generation succeeded", "attempts", attempt+1)
			}
			return lvl, nil
		}
		// Only a failed completability check warrants another roll of the
		// dice; every other failure is structural and retrying cannot fix
		// it.
		var genErr *Error
		if !errors.As(err, &genErr) || genErr.Kind != ErrValidationFailed {
			return nil, err
		}
		lastErr = err
	}

	m.logger.Warn("generation attempts exhausted",
		"biome", biome, "preset", preset, "lastErr", lastErr)
	return nil, &Error{Kind: ErrRetriesExhausted, Attempts: maxGenerationRetries}
}

// generateLinked runs one generation attempt end to end.
func (m *Manager) generateLinked(biome BiomeID, preset config.DifficultyPreset, levelIndex int, seed uint64) (*GeneratedLevel, error) {
	if !m.HasPool() {
		return nil, &Error{Kind: ErrPoolNotLoaded}
	}

	difficulty := ForProgress(float64(levelIndex)/runLengthEstimate, preset)
	segmentCount := SegmentCountFor(preset, levelIndex)

	all := m.pool.AllForBiome(biome)
	if len(all) == 0 {
		return nil, &Error{Kind: ErrNoLevelsForBiome, Biome: biome}
	}

	segments := linker.SelectSegments(all, biome.String(), segmentCount,
		difficulty.MinTier, difficulty.MaxTier, seed)
	if len(segments) == 0 {
		// Relax the tier window before giving up.
		segments = linker.SelectSegments(all, biome.String(), segmentCount, 1, 5, seed)
	}
	if len(segments) == 0 {
		return nil, &Error{
			Kind: ErrSegmentSelectionFailed, Biome: biome,
			MinTier: difficulty.MinTier, MaxTier: difficulty.MaxTier,
		}
	}

	layout := linker.SelectLayout(levelIndex, preset, seed)
	lk := linker.New(linker.Config{
		Seed:           seed,
		Biome:          biome.String(),
		Preset:         preset,
		SegmentCount:   segmentCount,
		CorridorWidth:  6,
		CorridorHeight: 5,
		Layout:         layout,
	})
	linked := lk.Link(segments)
	if !linked.Success {
		return nil, &Error{Kind: ErrLinkingFailed}
	}

	scaled := m.resolveSlots(linked.Tilemap, difficulty, seed)

	result := m.validator.Validate(scaled)
	if !result.Completable {
		return nil, &Error{Kind: ErrValidationFailed, Issues: result.Issues}
	}

	for _, seg := range segments {
		m.pool.MarkUsed(seg.Name)
	}

	lvl := &GeneratedLevel{
		MapData:      scaled,
		Name:         levelName(biome, preset, seed),
		Seed:         seed,
		Width:        linked.Width,
		Height:       linked.Height,
		Layout:       layout,
		SegmentNames: linked.SegmentNames,
		Decorations:  GenerateDecorations(scaled, biome, seed, leveldata.DefaultTileSize),
		Validation:   result,
	}

	if m.exportDir != "" {
		if err := ExportSegments(m.exportDir, segments, biome, seed); err != nil {
			m.logger.Warn("segment export failed", "err", err)
		}
		if err := ExportLevel(m.exportDir, lvl, biome, preset, levelIndex); err != nil {
			m.logger.Warn("level export failed", "err", err)
		}
	}

	m.logger.Debug("linked level generated",
		"segments", len(lvl.SegmentNames), "layout", layout,
		"size", fmt.Sprintf("%dx%d", lvl.Width, lvl.Height))
	return lvl, nil
}

// GenerateArchetypeLevel produces a single-segment level chosen by the
// archetype sequencer, for curated one-room encounters such as boss
// arenas.
func (m *Manager) GenerateArchetypeLevel(biome BiomeID, preset config.DifficultyPreset, levelIndex int, bossLevel bool, seed uint64) (*GeneratedLevel, error) {
	if m.sequencer == nil {
		m.InitSequencer(seed)
	}
	if !m.HasPool() {
		return nil, &Error{Kind: ErrPoolNotLoaded}
	}

	difficulty := ForProgress(float64(levelIndex)/runLengthEstimate, preset)

	available := m.pool.AvailableArchetypes(biome)
	if len(available) == 0 {
		return nil, &Error{Kind: ErrNoLevelsForBiome, Biome: biome}
	}

	archetype, ok := m.sequencer.Next(available, levelIndex, bossLevel)
	if !ok {
		return nil, &Error{Kind: ErrArchetypeSelectionFailed}
	}

	candidates := m.pool.Get(biome, archetype, difficulty.MinTier, difficulty.MaxTier)
	if len(candidates) == 0 {
		candidates = m.pool.AnyForBiome(biome, difficulty.MinTier, difficulty.MaxTier)
	}
	if len(candidates) == 0 {
		return nil, &Error{
			Kind: ErrNoMatchingLevels, Biome: biome, Archetype: archetype,
			MinTier: difficulty.MinTier, MaxTier: difficulty.MaxTier,
		}
	}

	rng := procrand.New(seed + uint64(levelIndex))
	selected := candidates[rng.IntN(len(candidates))]
	m.pool.MarkUsed(selected.Name)

	scaled := m.resolveSlots(selected.Body(), difficulty, seed)
	result := m.validator.Validate(scaled)
	if !result.Completable {
		// Curated segments are trusted; a rejection here means the slot
		// rolls removed a required anchor.
		m.logger.Warn("curated segment failed validation",
			"segment", selected.Name, "issues", result.Issues)
	}

	rows := linkedDims(scaled)
	lvl := &GeneratedLevel{
		MapData:      scaled,
		Name:         levelName(biome, preset, seed),
		Seed:         seed,
		Width:        rows.w,
		Height:       rows.h,
		SegmentNames: []string{selected.Name},
		Decorations:  GenerateDecorations(scaled, biome, seed, leveldata.DefaultTileSize),
		Validation:   result,
	}
	m.logger.Debug("archetype level selected",
		"segment", selected.Name, "archetype", archetype,
		"tiers", fmt.Sprintf("%d-%d", difficulty.MinTier, difficulty.MaxTier))
	return lvl, nil
}

// SegmentCountFor picks how many segments a level chains together. Counts
// grow with level index and never shrink as a run advances.
func SegmentCountFor(preset config.DifficultyPreset, levelIndex int) int {
	switch preset {
	case config.PresetCasual:
		return 2 + min(levelIndex/6, 1)
	case config.PresetChallenge:
		return 3 + min(levelIndex/4, 2)
	}
	return 2 + min(levelIndex/4, 2)
}

// resolveSlots replaces the difficulty slot glyphs in a tilemap with
// concrete tiles rolled against the difficulty chances. Everything else
// passes through untouched.
func (m *Manager) resolveSlots(body string, d DifficultyParams, seed uint64) string {
	rng := procrand.New(seed)
	out := make([]rune, 0, len(body))
	for _, ch := range body {
		switch ch {
		case 'c':
			if rng.Float64() < d.CollectibleChance {
				ch = leveldata.GlyphGem
			} else {
				ch = leveldata.GlyphEmpty
			}
		case 'e':
			if rng.Float64() < d.EnemyChance {
				if rng.Float64() < d.PufferfishChance {
					ch = leveldata.GlyphPufferStationary
				} else {
					ch = leveldata.GlyphCrab
				}
			} else {
				ch = leveldata.GlyphEmpty
			}
		case 'h':
			if rng.Float64() < d.HazardChance {
				ch = leveldata.GlyphSpike
			} else {
				ch = leveldata.GlyphEmpty
			}
		case 'a':
			if rng.Float64() < d.GrappleChance {
				ch = leveldata.GlyphGrapplePoint
			} else {
				ch = leveldata.GlyphEmpty
			}
		}
		out = append(out, ch)
	}
	return string(out)
}

func levelName(biome BiomeID, preset config.DifficultyPreset, seed uint64) string {
	return fmt.Sprintf("%s %s #%d", biome.DisplayName(), preset, seed%10000)
}

type dims struct{ w, h int }

func linkedDims(body string) dims {
	d := dims{}
	w := 0
	for _, ch := range body {
		if ch == '\n' {
			d.h++
			if w > d.w {
				d.w = w
			}
			w = 0
			continue
		}
		w++
	}
	if w > 0 {
		d.h++
		if w > d.w {
			d.w = w
		}
	}
	return d
}
