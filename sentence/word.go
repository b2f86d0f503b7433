package sentence

// Word is one position in the sentence. Real words are indexed 0-based; the
// virtual left wall occupies index -1 in recursion bounds and has no Word
// value of its own.
type Word struct {
	// Disjuncts is the head of this word's disjunct list.
	Disjuncts *Disjunct
}

// AddDisjunct prepends d to the word's disjunct list. Construction-time
// only; the counter treats a word's disjunct list as immutable once
// counting starts.
func (w *Word) AddDisjunct(d *Disjunct) {
	d.Next = w.Disjuncts
	w.Disjuncts = d
}
