package sentence

// LeftWall is the sentinel word index for the virtual left-wall boundary
// that every range recursion starts from.
const LeftWall = -1

// Sentence is an ordered sequence of words plus the configuration snapshot
// the counting engine needs: whether disconnected subgraphs ("islands") may
// coexist, and how many consecutive unlinked words collapse into one unit
// of null cost.
type Sentence struct {
	Words []Word

	// IslandsOK records whether disconnected components other than the one
	// containing the left wall are allowed. The counter does not read this
	// field; it uses Options.IslandsOK passed to Parse.
	IslandsOK bool

	// NullBlock is how many consecutive unlinked words count as a single
	// null-cost unit. Zero is treated as the default of 1.
	NullBlock int
}

// New creates a sentence with the given words. IslandsOK defaults to false
// and NullBlock defaults to 1; set NullBlock on the returned value to change
// it before counting.
func New(words []Word) *Sentence {
	return &Sentence{Words: words, NullBlock: 1}
}

// Length returns the number of words in the sentence.
func (s *Sentence) Length() int {
	return len(s.Words)
}

// WordAt returns a pointer to the word at index i. i must be in
// [0, Length()); the left wall (-1) has no backing Word and must be
// special-cased by callers.
func (s *Sentence) WordAt(i int) *Word {
	return &s.Words[i]
}

// EffectiveNullBlock returns NullBlock, defaulting to 1 when unset.
func (s *Sentence) EffectiveNullBlock() int {
	if s.NullBlock <= 0 {
		return 1
	}
	return s.NullBlock
}
