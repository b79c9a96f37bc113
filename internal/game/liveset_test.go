package game

import "testing"

func TestLiveSetRemoveIsIdempotent(t *testing.T) {
	var l liveSet
	a := NewWord("add", 100, 0, NewTracker())
	b := NewWord("next", 100, 5, NewTracker())
	l.add(a)
	l.add(b)

	if !l.remove(a) {
		t.Fatalf("expected first removal to succeed")
	}
	if l.remove(a) {
		t.Fatalf("expected second removal to be a no-op")
	}
	if l.len() != 1 || l.words()[0] != b {
		t.Fatalf("unexpected live set after removals: %d", l.len())
	}
	if l.remove(NewWord("stray", 1, 0, NewTracker())) {
		t.Fatalf("expected removal of a never-added word to be a no-op")
	}
}

func TestLiveSetFirstExpectingPrefersEarliest(t *testing.T) {
	var l liveSet
	first := NewWord("apple", 100, 0, NewTracker())
	second := NewWord("add", 100, 10, NewTracker())
	l.add(first)
	l.add(second)

	if got := l.firstExpecting('a'); got != first {
		t.Fatalf("expected earliest spawned word, got %q", got.Text())
	}
	first.Submit('a', 0)
	if got := l.firstExpecting('a'); got != second {
		t.Fatalf("expected second word once the first moved on, got %v", got)
	}
	if got := l.firstExpecting('z'); got != nil {
		t.Fatalf("expected no match, got %q", got.Text())
	}
}

func TestLiveSetColumnTaken(t *testing.T) {
	var l liveSet
	l.add(NewWord("add", 100, 3, NewTracker()))
	if !l.columnTaken(3) || l.columnTaken(4) {
		t.Fatalf("unexpected column occupancy")
	}
}

func TestWeightTableSeedAndLoad(t *testing.T) {
	table := NewWeightTable()
	table.Load(map[string]float64{"add": 12})
	table.Seed([]VocabEntry{{Word: "add", Weight: 100}, {Word: "next", Weight: 3}})
	if w, _ := table.Get("add"); w != 12 {
		t.Fatalf("expected loaded weight to win, got %v", w)
	}
	if table.Weight("next") != 3 {
		t.Fatalf("expected seeded weight, got %v", table.Weight("next"))
	}
	if table.Weight("missing") != DefaultWeight {
		t.Fatalf("expected default weight for unknown word")
	}
	snap := table.Snapshot()
	snap["add"] = 99
	if w, _ := table.Get("add"); w != 12 {
		t.Fatalf("snapshot must be a copy")
	}
	if table.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", table.Len())
	}
}
