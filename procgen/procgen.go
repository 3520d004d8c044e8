// Package procgen orchestrates procedural level generation for roguelite
// runs. It owns the biome progression, the archetype pool and sequencer,
// difficulty scaling, and the generation retry loop that combines the
// segment linker with the completability validator.
package procgen

import (
	"fmt"
	"strings"
)

// ErrorKind discriminates the failure modes of level generation.
type ErrorKind int

const (
	// ErrPoolNotLoaded means the segment pool is missing or empty.
	ErrPoolNotLoaded ErrorKind = iota
	// ErrNoLevelsForBiome means the pool holds nothing for the biome.
	ErrNoLevelsForBiome
	// ErrNoMatchingLevels means no pool entry matched the criteria.
	ErrNoMatchingLevels
	// ErrSequencerNotInitialized means InitSequencer was never called.
	ErrSequencerNotInitialized
	// ErrArchetypeSelectionFailed means the sequencer produced nothing.
	ErrArchetypeSelectionFailed
	// ErrSegmentSelectionFailed means no segment chain could be picked.
	ErrSegmentSelectionFailed
	// ErrLinkingFailed means the segment linker produced no level.
	ErrLinkingFailed
	// ErrValidationFailed means the linked level is not completable.
	ErrValidationFailed
	// ErrRetriesExhausted means every generation attempt failed.
	ErrRetriesExhausted
)

// Error is the typed failure returned by the generation pipeline. Fields
// beyond Kind are populated where the kind carries context.
type Error struct {
	Kind      ErrorKind
	Biome     BiomeID
	Archetype Archetype
	MinTier   int
	MaxTier   int
	Issues    []string
	Attempts  int
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrPoolNotLoaded:
		return "segment pool not loaded or empty"
	case ErrNoLevelsForBiome:
		return fmt.Sprintf("no segments available for biome %s", e.Biome)
	case ErrNoMatchingLevels:
		return fmt.Sprintf("no segments for biome %s, archetype %s, tiers %d-%d",
			e.Biome, e.Archetype, e.MinTier, e.MaxTier)
	case ErrSequencerNotInitialized:
		return "archetype sequencer not initialized"
	case ErrArchetypeSelectionFailed:
		return "failed to select archetype"
	case ErrSegmentSelectionFailed:
		return fmt.Sprintf("could not select segments for biome %s, tiers %d-%d",
			e.Biome, e.MinTier, e.MaxTier)
	case ErrLinkingFailed:
		return "segment linking failed"
	case ErrValidationFailed:
		return "level not completable: " + strings.Join(e.Issues, ", ")
	case ErrRetriesExhausted:
		return fmt.Sprintf("generation failed after %d attempts", e.Attempts)
	}
	return "unknown generation error"
}

// Is lets errors.Is match two generation errors by kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}
