package procgen

import (
	"strings"

	"github.com/automoto/octoplat/shared/leveldata"
	"github.com/automoto/octoplat/shared/procrand"
)

// Archetype labels the fundamental gameplay pattern of a segment.
type Archetype int

const (
	// ArchetypeGauntlet is a horizontal sprint through hazards.
	ArchetypeGauntlet Archetype = iota
	// ArchetypeMaze is branching exploration with multiple paths.
	ArchetypeMaze
	// ArchetypeVertical is a climbing or descending challenge.
	ArchetypeVertical
	// ArchetypePlatforming is precision traversal, grapple and swing heavy.
	ArchetypePlatforming
	// ArchetypeArena is a combat-focused encounter space.
	ArchetypeArena
	// ArchetypePuzzle needs a specific mechanic chain to exit.
	ArchetypePuzzle
)

// String returns the file identifier used in segment headers.
func (a Archetype) String() string {
	switch a {
	case ArchetypeGauntlet:
		return "gauntlet"
	case ArchetypeMaze:
		return "maze"
	case ArchetypeVertical:
		return "vertical"
	case ArchetypePlatforming:
		return "platforming"
	case ArchetypeArena:
		return "arena"
	case ArchetypePuzzle:
		return "puzzle"
	}
	return "unknown"
}

// DisplayName returns the human-facing archetype name.
func (a Archetype) DisplayName() string {
	switch a {
	case ArchetypeGauntlet:
		return "The Gauntlet"
	case ArchetypeMaze:
		return "The Maze"
	case ArchetypeVertical:
		return "The Climb"
	case ArchetypePlatforming:
		return "The Crossing"
	case ArchetypeArena:
		return "The Arena"
	case ArchetypePuzzle:
		return "The Riddle"
	}
	return "Unknown"
}

// AllArchetypes returns every archetype.
func AllArchetypes() []Archetype {
	return []Archetype{
		ArchetypeGauntlet, ArchetypeMaze, ArchetypeVertical,
		ArchetypePlatforming, ArchetypeArena, ArchetypePuzzle,
	}
}

// StartingArchetypes are the patterns suitable for the first level of a
// run.
func StartingArchetypes() []Archetype {
	return []Archetype{ArchetypeGauntlet, ArchetypeMaze, ArchetypeVertical}
}

// ParseArchetype accepts several spellings, case and whitespace
// insensitive.
func ParseArchetype(s string) (Archetype, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gauntlet", "the_gauntlet", "thegauntlet":
		return ArchetypeGauntlet, true
	case "maze", "the_maze", "themaze":
		return ArchetypeMaze, true
	case "vertical", "climb", "ascent", "the_climb":
		return ArchetypeVertical, true
	case "platforming", "platform", "crossing", "the_crossing":
		return ArchetypePlatforming, true
	case "arena", "the_arena", "thearena":
		return ArchetypeArena, true
	case "puzzle", "riddle", "the_riddle":
		return ArchetypePuzzle, true
	}
	return ArchetypeGauntlet, false
}

// ShouldAvoidAfter reports whether this archetype makes a jarring follow-up
// to the previous one. The same archetype never repeats back to back, and
// the two traversal-heavy patterns never run adjacent.
func (a Archetype) ShouldAvoidAfter(previous Archetype) bool {
	if a == previous {
		return true
	}
	if a == ArchetypeVertical && previous == ArchetypePlatforming {
		return true
	}
	if a == ArchetypePlatforming && previous == ArchetypeVertical {
		return true
	}
	return false
}

// maxRecentSegments bounds the recently-used queue in the pool.
const maxRecentSegments = 10

type poolKey struct {
	biome     BiomeID
	archetype Archetype
}

// SegmentPool indexes hand-authored segments by biome and archetype and
// tracks recently used entries so runs do not repeat the same rooms.
type SegmentPool struct {
	segments map[poolKey][]*leveldata.Segment
	recent   []string
}

// NewSegmentPool creates an empty pool.
func NewSegmentPool() *SegmentPool {
	return &SegmentPool{segments: make(map[poolKey][]*leveldata.Segment)}
}

// Add registers a segment under a biome. The segment's archetype header
// decides the archetype bucket; an unknown archetype lands in Gauntlet.
func (p *SegmentPool) Add(biome BiomeID, seg *leveldata.Segment) {
	arch, _ := ParseArchetype(seg.Archetype)
	key := poolKey{biome, arch}
	p.segments[key] = append(p.segments[key], seg)
}

// Len returns the total number of registered segments.
func (p *SegmentPool) Len() int {
	n := 0
	for _, segs := range p.segments {
		n += len(segs)
	}
	return n
}

// Empty reports whether the pool holds no segments at all.
func (p *SegmentPool) Empty() bool { return len(p.segments) == 0 }

// Get returns the segments for a biome and archetype inside a tier window,
// excluding recently used entries.
func (p *SegmentPool) Get(biome BiomeID, arch Archetype, minTier, maxTier int) []*leveldata.Segment {
	var out []*leveldata.Segment
	for _, seg := range p.segments[poolKey{biome, arch}] {
		if seg.Tier >= minTier && seg.Tier <= maxTier && !p.isRecent(seg.Name) {
			out = append(out, seg)
		}
	}
	return out
}

// AnyForBiome returns tier-matching segments of every archetype, as a
// fallback when the requested archetype has none.
func (p *SegmentPool) AnyForBiome(biome BiomeID, minTier, maxTier int) []*leveldata.Segment {
	var out []*leveldata.Segment
	for _, arch := range AllArchetypes() {
		out = append(out, p.Get(biome, arch, minTier, maxTier)...)
	}
	return out
}

// AllForBiome returns every segment registered under a biome, ignoring
// tier and recency. The linker picks from this full set.
func (p *SegmentPool) AllForBiome(biome BiomeID) []*leveldata.Segment {
	var out []*leveldata.Segment
	for _, arch := range AllArchetypes() {
		out = append(out, p.segments[poolKey{biome, arch}]...)
	}
	return out
}

// MarkUsed pushes a segment name to the front of the recency queue.
func (p *SegmentPool) MarkUsed(name string) {
	kept := p.recent[:0]
	for _, id := range p.recent {
		if id != name {
			kept = append(kept, id)
		}
	}
	p.recent = append([]string{name}, kept...)
	if len(p.recent) > maxRecentSegments {
		p.recent = p.recent[:maxRecentSegments]
	}
}

// ClearRecentlyUsed forgets recency for a new run.
func (p *SegmentPool) ClearRecentlyUsed() { p.recent = nil }

// AvailableArchetypes lists the archetypes with at least one segment for a
// biome.
func (p *SegmentPool) AvailableArchetypes(biome BiomeID) []Archetype {
	var out []Archetype
	for _, arch := range AllArchetypes() {
		if len(p.segments[poolKey{biome, arch}]) > 0 {
			out = append(out, arch)
		}
	}
	return out
}

func (p *SegmentPool) isRecent(name string) bool {
	for _, id := range p.recent {
		if id == name {
			return true
		}
	}
	return false
}

// Sequencer paces archetypes across a run: no immediate repeats, lower
// weight for anything used in the last few levels, arenas on boss levels.
type Sequencer struct {
	history []Archetype
	rng     *procrand.Rng
}

// NewSequencer creates a sequencer for one run.
func NewSequencer(seed uint64) *Sequencer {
	return &Sequencer{rng: procrand.New(seed)}
}

// Reset clears history and reseeds for a new run.
func (s *Sequencer) Reset(seed uint64) {
	s.history = s.history[:0]
	s.rng = procrand.New(seed)
}

// History returns the archetypes chosen so far.
func (s *Sequencer) History() []Archetype { return s.history }

// Next selects the archetype for the given level from the available set.
func (s *Sequencer) Next(available []Archetype, levelIndex int, bossLevel bool) (Archetype, bool) {
	if len(available) == 0 {
		return ArchetypeGauntlet, false
	}

	if bossLevel && containsArchetype(available, ArchetypeArena) {
		s.history = append(s.history, ArchetypeArena)
		return ArchetypeArena, true
	}

	if levelIndex == 0 {
		var starting []Archetype
		for _, a := range StartingArchetypes() {
			if containsArchetype(available, a) {
				starting = append(starting, a)
			}
		}
		if choice, ok := procrand.Choose(s.rng, starting); ok {
			s.history = append(s.history, choice)
			return choice, true
		}
	}

	var weighted []procrand.Weighted[Archetype]
	for _, arch := range available {
		if n := len(s.history); n > 0 && arch.ShouldAvoidAfter(s.history[n-1]) {
			continue
		}
		weighted = append(weighted, procrand.Weighted[Archetype]{
			Item:   arch,
			Weight: recencyWeight(s.history, arch),
		})
	}

	if len(weighted) == 0 {
		choice, ok := procrand.Choose(s.rng, available)
		if ok {
			s.history = append(s.history, choice)
		}
		return choice, ok
	}

	choice, ok := procrand.WeightedChoose(s.rng, weighted)
	if ok {
		s.history = append(s.history, choice)
	}
	return choice, ok
}

// recencyWeight scores an archetype by how often it appeared in the last
// five levels.
func recencyWeight(history []Archetype, arch Archetype) float64 {
	count := 0
	for i := len(history) - 1; i >= 0 && i >= len(history)-5; i-- {
		if history[i] == arch {
			count++
		}
	}
	switch count {
	case 0:
		return 3.0
	case 1:
		return 1.5
	case 2:
		return 0.5
	}
	return 0.1
}

func containsArchetype(list []Archetype, a Archetype) bool {
	for _, it := range list {
		if it == a {
			return true
		}
	}
	return false
}
