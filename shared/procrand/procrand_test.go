package procrand

import "testing"

func TestDeterministicSequence(t *testing.T) {
	a := New(12345)
	b := New(12345)
	for i := 0; i < 100; i++ {
		if av, bv := a.Uint64(), b.Uint64(); av != bv {
			t.Fatalf("sequence diverged at step %d: %d != %d", i, av, bv)
		}
	}
}

func TestSeedsDiffer(t *testing.T) {
	a := New(1)
	b := New(2)
	same := 0
	for i := 0; i < 64; i++ {
		if a.Uint32() == b.Uint32() {
			same++
		}
	}
	if same > 2 {
		t.Fatalf("seeds 1 and 2 produced %d/64 identical outputs", same)
	}
}

func TestStreamsIndependent(t *testing.T) {
	a := NewStream(7, 1)
	b := NewStream(7, 2)
	if a.Uint64() == b.Uint64() {
		t.Fatal("different streams with the same seed should diverge immediately")
	}
}

func TestFloat64Range(t *testing.T) {
	r := New(99)
	for i := 0; i < 1000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64 out of [0,1): %v", v)
		}
	}
}

func TestIntNBounds(t *testing.T) {
	r := New(4)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := r.IntN(5)
		if v < 0 || v >= 5 {
			t.Fatalf("IntN(5) out of range: %d", v)
		}
		seen[v] = true
	}
	for i := 0; i < 5; i++ {
		if !seen[i] {
			t.Errorf("IntN(5) never produced %d over 1000 draws", i)
		}
	}
}

func TestChance(t *testing.T) {
	r := New(11)
	hits := 0
	const draws = 10000
	for i := 0; i < draws; i++ {
		if r.Chance(0.25) {
			hits++
		}
	}
	ratio := float64(hits) / draws
	if ratio < 0.20 || ratio > 0.30 {
		t.Fatalf("Chance(0.25) hit ratio %v, want near 0.25", ratio)
	}
	if r.Chance(0) {
		t.Error("Chance(0) should never hit")
	}
}

func TestChooseEmpty(t *testing.T) {
	r := New(1)
	if _, ok := Choose(r, []int(nil)); ok {
		t.Fatal("Choose on empty slice should report false")
	}
}

func TestWeightedChoose(t *testing.T) {
	r := New(42)
	items := []Weighted[string]{
		{Item: "rare", Weight: 1},
		{Item: "common", Weight: 9},
	}
	counts := map[string]int{}
	for i := 0; i < 10000; i++ {
		v, ok := WeightedChoose(r, items)
		if !ok {
			t.Fatal("WeightedChoose failed with positive weights")
		}
		counts[v]++
	}
	if counts["common"] < 8500 || counts["common"] > 9500 {
		t.Fatalf("weight 9/10 item picked %d/10000 times", counts["common"])
	}
}

func TestWeightedChooseSkipsNonPositive(t *testing.T) {
	r := New(8)
	items := []Weighted[int]{
		{Item: 1, Weight: 0},
		{Item: 2, Weight: -3},
		{Item: 3, Weight: 2},
	}
	for i := 0; i < 100; i++ {
		v, ok := WeightedChoose(r, items)
		if !ok || v != 3 {
			t.Fatalf("only item 3 has positive weight, got %d ok=%v", v, ok)
		}
	}
}

func TestForkDiverges(t *testing.T) {
	r := New(5)
	f := r.Fork()
	if r.Uint64() == f.Uint64() {
		t.Fatal("fork should not mirror its parent")
	}
}
