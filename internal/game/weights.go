package game

// DefaultWeight is the spawn weight of a word that has never been seen.
const DefaultWeight = 100.0

// VocabEntry is a word offered to the spawner with its starting weight.
type VocabEntry struct {
	Word   string
	Weight float64
}

// WeightTable maps word text to its spawn weight. Missed and slowly typed
// words end up heavier and therefore come back more often.
type WeightTable struct {
	weights map[string]float64
}

// NewWeightTable returns an empty table.
func NewWeightTable() *WeightTable {
	return &WeightTable{weights: map[string]float64{}}
}

// Get returns the weight for text.
func (t *WeightTable) Get(text string) (float64, bool) {
	w, ok := t.weights[text]
	return w, ok
}

// Weight returns the weight for text, or DefaultWeight when unknown.
func (t *WeightTable) Weight(text string) float64 {
	if w, ok := t.weights[text]; ok {
		return w
	}
	return DefaultWeight
}

// Set stores the weight for text.
func (t *WeightTable) Set(text string, weight float64) {
	t.weights[text] = weight
}

// Seed adds vocabulary entries that are not in the table yet. A
// non-positive entry weight falls back to DefaultWeight.
func (t *WeightTable) Seed(vocab []VocabEntry) {
	for _, e := range vocab {
		if _, ok := t.weights[e.Word]; ok {
			continue
		}
		w := e.Weight
		if w <= 0 {
			w = DefaultWeight
		}
		t.weights[e.Word] = w
	}
}

// Load replaces entries with the provided weights.
func (t *WeightTable) Load(weights map[string]float64) {
	for k, v := range weights {
		t.weights[k] = v
	}
}

// Snapshot returns a copy of the table.
func (t *WeightTable) Snapshot() map[string]float64 {
	out := make(map[string]float64, len(t.weights))
	for k, v := range t.weights {
		out[k] = v
	}
	return out
}

// Len returns the number of entries.
func (t *WeightTable) Len() int {
	return len(t.weights)
}
