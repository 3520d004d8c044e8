// Package save persists player progress, settings, and endless run
// records as JSON through a gdata store in the platform data directory.
package save

import "sort"

// endlessHistoryLimit caps the stored run leaderboard.
const endlessHistoryLimit = 10

// EndlessRun is one recorded roguelite run.
type EndlessRun struct {
	Seed            uint64  `json:"seed"`
	LevelsCompleted int     `json:"levelsCompleted"`
	GemsCollected   int     `json:"gemsCollected"`
	Deaths          int     `json:"deaths"`
	Time            float64 `json:"time"`
	Timestamp       int64   `json:"timestamp"`
}

// Data is the persistent save file contents.
type Data struct {
	LevelsCompleted map[string]bool    `json:"levelsCompleted"`
	BestTimes       map[string]float64 `json:"bestTimes"`
	BestGems        map[string]int     `json:"bestGems"`

	TotalDeaths   int     `json:"totalDeaths"`
	TotalGems     int     `json:"totalGems"`
	TotalPlaytime float64 `json:"totalPlaytime"`
	TotalJumps    int     `json:"totalJumps"`
	TotalDives    int     `json:"totalDives"`
	TotalGrapples int     `json:"totalGrapples"`

	EndlessBestLevels int          `json:"endlessBestLevels"`
	EndlessBestGems   int          `json:"endlessBestGems"`
	EndlessRuns       []EndlessRun `json:"endlessRuns"`

	SFXVolume          float64 `json:"sfxVolume"`
	MusicVolume        float64 `json:"musicVolume"`
	ScreenShakeEnabled bool    `json:"screenShakeEnabled"`

	MinimapScale   float64 `json:"minimapScale"`
	MinimapOpacity float64 `json:"minimapOpacity"`
	MinimapSize    float64 `json:"minimapSize"`
}

// NewData returns save data with default settings.
func NewData() *Data {
	return &Data{
		LevelsCompleted:    make(map[string]bool),
		BestTimes:          make(map[string]float64),
		BestGems:           make(map[string]int),
		SFXVolume:          0.7,
		MusicVolume:        0.5,
		ScreenShakeEnabled: true,
		MinimapScale:       3.0,
		MinimapOpacity:     0.7,
		MinimapSize:        150,
	}
}

// normalize fills in maps and defaults missing from older save files.
func (d *Data) normalize() {
	if d.LevelsCompleted == nil {
		d.LevelsCompleted = make(map[string]bool)
	}
	if d.BestTimes == nil {
		d.BestTimes = make(map[string]float64)
	}
	if d.BestGems == nil {
		d.BestGems = make(map[string]int)
	}
	if d.MinimapScale == 0 {
		d.MinimapScale = 3.0
	}
	if d.MinimapOpacity == 0 {
		d.MinimapOpacity = 0.7
	}
	if d.MinimapSize == 0 {
		d.MinimapSize = 150
	}
}

// CompleteLevel records a level clear, keeping the best time and gems.
func (d *Data) CompleteLevel(levelName string, time float64, gems int) {
	d.LevelsCompleted[levelName] = true
	if best, ok := d.BestTimes[levelName]; !ok || time < best {
		d.BestTimes[levelName] = time
	}
	if gems > d.BestGems[levelName] {
		d.BestGems[levelName] = gems
	}
}

// BestTime returns the recorded best time for a level.
func (d *Data) BestTime(levelName string) (float64, bool) {
	t, ok := d.BestTimes[levelName]
	return t, ok
}

// BestGemCount returns the recorded best gem count for a level.
func (d *Data) BestGemCount(levelName string) (int, bool) {
	g, ok := d.BestGems[levelName]
	return g, ok
}

// RecordEndlessRun adds a run to the leaderboard, keeping the best ten
// sorted by levels then gems, ties broken by most recent.
func (d *Data) RecordEndlessRun(run EndlessRun) {
	if run.LevelsCompleted > d.EndlessBestLevels {
		d.EndlessBestLevels = run.LevelsCompleted
	}
	if run.GemsCollected > d.EndlessBestGems {
		d.EndlessBestGems = run.GemsCollected
	}

	d.EndlessRuns = append(d.EndlessRuns, run)
	sort.SliceStable(d.EndlessRuns, func(i, j int) bool {
		a, b := d.EndlessRuns[i], d.EndlessRuns[j]
		if a.LevelsCompleted != b.LevelsCompleted {
			return a.LevelsCompleted > b.LevelsCompleted
		}
		if a.GemsCollected != b.GemsCollected {
			return a.GemsCollected > b.GemsCollected
		}
		return a.Timestamp > b.Timestamp
	})
	if len(d.EndlessRuns) > endlessHistoryLimit {
		d.EndlessRuns = d.EndlessRuns[:endlessHistoryLimit]
	}
}
