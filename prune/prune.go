// Package prune implements the optional conjunction-pruning pass: marking,
// for a sentence, which disjuncts are reachable in at least one valid
// linkage when stretches of deletable words are treated as gaps that may be
// skipped entirely regardless of null-count budget.
//
// This is the analog of the source's region_valid/mark_region pair, gated
// behind a compile-time switch there. Here it runs only when a caller
// invokes it; count.Config.EnablePruning does not run it. It is not on the
// critical path for counting: a faithful rewrite may omit it, and lgcount's
// own do_count (package count) never calls into this package.
package prune

import (
	"github.com/coregx/lgcount/match"
	"github.com/coregx/lgcount/memo"
	"github.com/coregx/lgcount/sentence"
)

// state is the reduced three-value domain region_valid/mark_region work
// over, stored in the same chained memo table shape the counter uses (an
// int64 count field repurposed as a tri-state tag).
type state int64

const (
	unreachable state = iota
	reachableUnmarked
	reachableMarked
)

// Context holds the memo table for one conjunction-pruning pass over a
// sentence. Unlike count.Context, there is no null-cost dimension: the key
// omits it (always zero), since reachability here does not depend on a
// null-word budget — gaps are free.
type Context struct {
	sent  *sentence.Sentence
	table *memo.Table
}

// NewContext builds a pruning context over sent, ready for MarkReachable.
func NewContext(sent *sentence.Sentence) *Context {
	return &Context{
		sent:  sent,
		table: memo.New(sent.Length()),
	}
}

// MarkReachable runs region_valid/mark_region over the whole sentence,
// setting Disjunct.Marked true on every disjunct that participates in at
// least one linkage reachable from the left wall. Unmarked disjuncts may be
// safely dropped by an upstream pruning stage before counting.
func (c *Context) MarkReachable() {
	c.markRegion(sentence.LeftWall, c.sent.Length(), nil, nil)
}

func (c *Context) key(lw, rw int, le, re *sentence.Connector) memo.Key {
	return memo.Key{LW: lw, RW: rw, LE: le, RE: re, Cost: 0}
}

// regionValid reports whether (lw, rw, le, re) is reachable in some valid
// linkage, memoizing the tri-state result.
func (c *Context) regionValid(lw, rw int, le, re *sentence.Connector) bool {
	k := c.key(lw, rw, le, re)
	handle, existed := c.table.FindOrReserve(k)
	if existed {
		return state(handle.Count()) != unreachable
	}

	valid := c.computeValid(lw, rw, le, re)
	if valid {
		handle.Finalize(int64(reachableUnmarked))
	} else {
		handle.Finalize(int64(unreachable))
	}
	return valid
}

func (c *Context) computeValid(lw, rw int, le, re *sentence.Connector) bool {
	if rw == lw+1 {
		return le == nil && re == nil
	}
	if le == nil && re == nil {
		// A deletable gap: the whole range may be skipped regardless of
		// width, or the leftmost word may contribute a disjunct whose
		// left connector is nil and continue from there.
		w := lw + 1
		for d := c.sent.WordAt(w).Disjuncts; d != nil; d = d.Next {
			if d.Left == nil && c.regionValid(w, rw, d.Right, nil) {
				return true
			}
		}
		return c.regionValid(w, rw, nil, nil)
	}

	// le always sits on lw and re always sits on rw, so the split range is
	// always the open interval (lw, rw), not le.Word/re.Word+1 — see
	// count.countGeneral's identical bound.
	for w := lw + 1; w < rw; w++ {
		for d := c.sent.WordAt(w).Disjuncts; d != nil; d = d.Next {
			lm := le != nil && d.Left != nil && match.DoMatch(le, d.Left, lw, w)
			rm := d.Right != nil && re != nil && match.DoMatch(d.Right, re, w, rw)
			if !lm && !rm {
				continue
			}
			leftOK := !lm || c.regionValid(lw, w, le.Next, d.Left.Next)
			rightOK := !rm || c.regionValid(w, rw, d.Right.Next, re.Next)
			if leftOK && rightOK {
				return true
			}
		}
	}
	return false
}

// markRegion walks the same decomposition as regionValid but, on every
// branch that contributes to a valid linkage, marks the disjunct involved
// and recurses into both sub-ranges so their contributing disjuncts are
// marked too.
func (c *Context) markRegion(lw, rw int, le, re *sentence.Connector) {
	if !c.regionValid(lw, rw, le, re) {
		return
	}
	if rw == lw+1 {
		return
	}
	if le == nil && re == nil {
		w := lw + 1
		for d := c.sent.WordAt(w).Disjuncts; d != nil; d = d.Next {
			if d.Left == nil && c.regionValid(w, rw, d.Right, nil) {
				d.Marked = true
				c.markRegion(w, rw, d.Right, nil)
			}
		}
		c.markRegion(w, rw, nil, nil)
		return
	}

	for w := lw + 1; w < rw; w++ {
		for d := c.sent.WordAt(w).Disjuncts; d != nil; d = d.Next {
			lm := le != nil && d.Left != nil && match.DoMatch(le, d.Left, lw, w)
			rm := d.Right != nil && re != nil && match.DoMatch(d.Right, re, w, rw)
			if !lm && !rm {
				continue
			}
			leftOK := !lm || c.regionValid(lw, w, le.Next, d.Left.Next)
			rightOK := !rm || c.regionValid(w, rw, d.Right.Next, re.Next)
			if !leftOK || !rightOK {
				continue
			}
			d.Marked = true
			if lm {
				c.markRegion(lw, w, le.Next, d.Left.Next)
			}
			if rm {
				c.markRegion(w, rw, d.Right.Next, re.Next)
			}
		}
	}
}
