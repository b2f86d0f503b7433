// Package matchlist implements the match-list index: given a split word and
// a pair of boundary connectors, it returns the sublist of that word's
// disjuncts whose leftmost or rightmost connector is label-compatible with
// one of the boundaries.
//
// The index is built once per sentence from the disjuncts the counter is
// handed, and is read-only for the duration of counting. Per-word buckets
// are grouped by connector label — the cheapest necessary condition before
// the counter re-runs the full do_match against candidates — mirroring the
// per-word bucket layout the spec describes as "a simple implementation".
package matchlist

import "github.com/coregx/lgcount/sentence"

// Index answers form-match-list queries for a single sentence.
type Index struct {
	words []wordBuckets

	// free is a stack of previously returned slices, reused by FormMatchList
	// to avoid reallocating on every query. The counter holds multiple
	// outstanding lists across nested recursion, so this is a pool of
	// free slices rather than a single shared cursor.
	free [][]*sentence.Disjunct
}

type wordBuckets struct {
	// byLeftLabel buckets disjuncts on this word by their left connector's
	// label. A disjunct with a nil Left connector is never bucketed here.
	byLeftLabel map[int][]*sentence.Disjunct

	// byRightLabel mirrors byLeftLabel for the right connector.
	byRightLabel map[int][]*sentence.Disjunct
}

// Build constructs an Index over the given sentence's disjuncts. Disjunct
// lists must not change for the lifetime of the returned Index.
func Build(sent *sentence.Sentence) *Index {
	idx := &Index{words: make([]wordBuckets, sent.Length())}
	for w := 0; w < sent.Length(); w++ {
		wb := wordBuckets{
			byLeftLabel:  make(map[int][]*sentence.Disjunct),
			byRightLabel: make(map[int][]*sentence.Disjunct),
		}
		for d := sent.WordAt(w).Disjuncts; d != nil; d = d.Next {
			if d.Left != nil {
				wb.byLeftLabel[d.Left.Label] = append(wb.byLeftLabel[d.Left.Label], d)
			}
			if d.Right != nil {
				wb.byRightLabel[d.Right.Label] = append(wb.byRightLabel[d.Right.Label], d)
			}
		}
		idx.words[w] = wb
	}
	return idx
}

// FormMatchList returns the sublist of disjuncts on word w such that le (if
// non-nil) is label-compatible with d.Left, or re (if non-nil) is
// label-compatible with d.Right.
//
// The returned slice is owned by the caller until passed to PutMatchList;
// FormMatchList never returns the same backing array for two outstanding
// calls, so the counter may safely hold several lists across nested
// recursion.
func (idx *Index) FormMatchList(w int, le, re *sentence.Connector) []*sentence.Disjunct {
	wb := idx.words[w]

	var result []*sentence.Disjunct
	if n := len(idx.free); n > 0 {
		result = idx.free[n-1][:0]
		idx.free = idx.free[:n-1]
	}

	seen := make(map[*sentence.Disjunct]bool)
	if le != nil {
		for _, d := range wb.byLeftLabel[le.Label] {
			if !seen[d] {
				seen[d] = true
				result = append(result, d)
			}
		}
	}
	if re != nil {
		for _, d := range wb.byRightLabel[re.Label] {
			if !seen[d] {
				seen[d] = true
				result = append(result, d)
			}
		}
	}
	return result
}

// PutMatchList returns a match list to the index's free-list for reuse by a
// later FormMatchList call. Passing nil is a no-op.
func (idx *Index) PutMatchList(list []*sentence.Disjunct) {
	if list == nil {
		return
	}
	idx.free = append(idx.free, list)
}
