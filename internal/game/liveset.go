package game

// liveSet holds the words on screen in spawn order.
type liveSet struct {
	nextID uint64
	items  []*Word
}

func (l *liveSet) add(w *Word) {
	l.nextID++
	w.id = l.nextID
	l.items = append(l.items, w)
}

// remove drops w by handle. Removing a word that is no longer live is a no-op.
func (l *liveSet) remove(w *Word) bool {
	if w == nil || w.id == 0 {
		return false
	}
	for i, item := range l.items {
		if item.id == w.id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

func (l *liveSet) contains(w *Word) bool {
	if w == nil {
		return false
	}
	for _, item := range l.items {
		if item.id == w.id {
			return true
		}
	}
	return false
}

// firstExpecting returns the earliest spawned word whose next character is r.
func (l *liveSet) firstExpecting(r rune) *Word {
	for _, w := range l.items {
		if next, ok := w.NextChar(); ok && next == r {
			return w
		}
	}
	return nil
}

func (l *liveSet) columnTaken(col int) bool {
	for _, w := range l.items {
		if w.col == col {
			return true
		}
	}
	return false
}

// words returns a copy so callers may remove while iterating.
func (l *liveSet) words() []*Word {
	out := make([]*Word, len(l.items))
	copy(out, l.items)
	return out
}

func (l *liveSet) len() int {
	return len(l.items)
}
