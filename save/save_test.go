package save

import (
	"encoding/json"
	"testing"
)

func TestNewDataDefaults(t *testing.T) {
	d := NewData()

	if d.SFXVolume <= 0 || d.SFXVolume > 1 {
		t.Errorf("sfx volume = %.2f, want in (0,1]", d.SFXVolume)
	}
	if !d.ScreenShakeEnabled {
		t.Error("screen shake disabled by default")
	}
	if len(d.LevelsCompleted) != 0 || len(d.EndlessRuns) != 0 {
		t.Error("fresh data not empty")
	}
}

func TestCompleteLevelKeepsBests(t *testing.T) {
	d := NewData()

	d.CompleteLevel("reef_1", 30.0, 5)
	if !d.LevelsCompleted["reef_1"] {
		t.Error("level not marked completed")
	}
	if best, _ := d.BestTime("reef_1"); best != 30.0 {
		t.Errorf("best time = %.1f, want 30.0", best)
	}

	// Better time, same gems.
	d.CompleteLevel("reef_1", 25.0, 5)
	if best, _ := d.BestTime("reef_1"); best != 25.0 {
		t.Errorf("best time = %.1f, want 25.0", best)
	}

	// Worse time, better gems.
	d.CompleteLevel("reef_1", 40.0, 10)
	if best, _ := d.BestTime("reef_1"); best != 25.0 {
		t.Errorf("best time = %.1f after worse run, want 25.0", best)
	}
	if gems, _ := d.BestGemCount("reef_1"); gems != 10 {
		t.Errorf("best gems = %d, want 10", gems)
	}

	if _, ok := d.BestTime("nonexistent"); ok {
		t.Error("best time reported for an unknown level")
	}
}

func TestRecordEndlessRunUpdatesBests(t *testing.T) {
	d := NewData()

	d.RecordEndlessRun(EndlessRun{Seed: 12345, LevelsCompleted: 5, GemsCollected: 50, Deaths: 2, Time: 120, Timestamp: 1000})
	if d.EndlessBestLevels != 5 || d.EndlessBestGems != 50 {
		t.Errorf("bests = (%d, %d), want (5, 50)", d.EndlessBestLevels, d.EndlessBestGems)
	}

	d.RecordEndlessRun(EndlessRun{Seed: 54321, LevelsCompleted: 10, GemsCollected: 100, Deaths: 3, Time: 200, Timestamp: 2000})
	if d.EndlessBestLevels != 10 || d.EndlessBestGems != 100 {
		t.Errorf("bests = (%d, %d), want (10, 100)", d.EndlessBestLevels, d.EndlessBestGems)
	}
	if len(d.EndlessRuns) != 2 {
		t.Fatalf("runs stored = %d, want 2", len(d.EndlessRuns))
	}
	if d.EndlessRuns[0].Seed != 54321 {
		t.Error("leaderboard not sorted by levels completed")
	}
}

func TestEndlessLeaderboardOrderAndCap(t *testing.T) {
	d := NewData()

	// Two runs with identical levels: more gems ranks higher.
	d.RecordEndlessRun(EndlessRun{Seed: 1, LevelsCompleted: 5, GemsCollected: 20, Timestamp: 100})
	d.RecordEndlessRun(EndlessRun{Seed: 2, LevelsCompleted: 5, GemsCollected: 40, Timestamp: 200})
	if d.EndlessRuns[0].Seed != 2 {
		t.Error("gems tiebreaker not applied")
	}

	// Fully tied runs: the most recent ranks higher.
	d.RecordEndlessRun(EndlessRun{Seed: 3, LevelsCompleted: 5, GemsCollected: 40, Timestamp: 300})
	if d.EndlessRuns[0].Seed != 3 {
		t.Error("recency tiebreaker not applied")
	}

	for i := 0; i < 20; i++ {
		d.RecordEndlessRun(EndlessRun{Seed: uint64(100 + i), LevelsCompleted: i, Timestamp: int64(400 + i)})
	}
	if len(d.EndlessRuns) != 10 {
		t.Errorf("leaderboard size = %d, want capped at 10", len(d.EndlessRuns))
	}
	for i := 1; i < len(d.EndlessRuns); i++ {
		if d.EndlessRuns[i].LevelsCompleted > d.EndlessRuns[i-1].LevelsCompleted {
			t.Fatal("leaderboard not sorted descending by levels")
		}
	}
}

func TestDataRoundTrip(t *testing.T) {
	d := NewData()
	d.CompleteLevel("depths_2", 42.5, 7)
	d.TotalJumps = 300
	d.RecordEndlessRun(EndlessRun{Seed: 9, LevelsCompleted: 3, GemsCollected: 12, Timestamp: 50})

	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	loaded := &Data{}
	if err := json.Unmarshal(raw, loaded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	loaded.normalize()

	if !loaded.LevelsCompleted["depths_2"] || loaded.TotalJumps != 300 {
		t.Error("round trip lost progress fields")
	}
	if len(loaded.EndlessRuns) != 1 || loaded.EndlessRuns[0].Seed != 9 {
		t.Error("round trip lost endless runs")
	}
}

func TestNormalizeFillsOldSaves(t *testing.T) {
	// A pre-minimap save file has no minimap fields and null maps.
	loaded := &Data{}
	if err := json.Unmarshal([]byte(`{"totalGems": 12}`), loaded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	loaded.normalize()

	if loaded.MinimapScale != 3.0 || loaded.MinimapOpacity != 0.7 {
		t.Errorf("minimap defaults = (%.1f, %.1f), want (3.0, 0.7)", loaded.MinimapScale, loaded.MinimapOpacity)
	}
	loaded.CompleteLevel("x", 1, 1)
	if !loaded.LevelsCompleted["x"] {
		t.Error("maps not initialized by normalize")
	}
}

func TestManagerWithoutStore(t *testing.T) {
	m := &Manager{data: NewData()}

	m.Mutate().TotalGems = 5
	if !m.Dirty() {
		t.Error("mutate did not mark dirty")
	}
	if err := m.SaveIfDirty(); err != nil {
		t.Errorf("save without a store failed: %v", err)
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct{ in, want string }{
		{"My Cool Level", "my_cool_level"},
		{"deep-sea trench", "deep_sea_trench"},
		{"Level #3 (final)", "level_3_final"},
		{"___already__sane___", "already_sane"},
		{"UPPER", "upper"},
	}
	for _, tc := range cases {
		if got := SanitizeFilename(tc.in); got != tc.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	// Idempotent.
	for _, tc := range cases {
		once := SanitizeFilename(tc.in)
		if twice := SanitizeFilename(once); twice != once {
			t.Errorf("sanitize not idempotent: %q -> %q", once, twice)
		}
	}
}

func TestWriteUserLevel(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	path, err := WriteUserLevel("My Reef", "###\n#P#\n###")
	if err != nil {
		t.Fatalf("WriteUserLevel: %v", err)
	}
	if got := UserLevelPath("My Reef"); got != path {
		t.Errorf("path = %q, want %q", path, got)
	}
}
