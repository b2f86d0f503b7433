package count

import (
	"github.com/coregx/lgcount/match"
	"github.com/coregx/lgcount/memo"
	"github.com/coregx/lgcount/sentence"
)

// countFunc is the shape shared by DoCount and pseudocount, letting
// general-case aggregation run once with either plugged in.
type countFunc func(lw, rw int, le, re *sentence.Connector, cost int) int64

// DoCount returns the number of linkages of the open range strictly between
// lw and rw that additionally consume each boundary connector (le, re, both
// may be nil) and use exactly nullCost units of null-word budget.
//
// Pre: lw < rw, nullCost may be negative (degenerate case, returns 0).
//
// First find_or_reserve; if the entry pre-existed, its stored count is
// returned as-is — which may be a tentative zero left by a cyclic descent
// through multi connectors revisiting this exact key. That tentative zero
// is the recursion's reentrancy guard, not a bug: do not special-case it.
func (c *Context) DoCount(lw, rw int, le, re *sentence.Connector, nullCost int) int64 {
	assert(lw < rw, "lw must be < rw")

	key := memo.Key{LW: lw, RW: rw, LE: le, RE: re, Cost: nullCost}
	handle, existed := c.table.FindOrReserve(key)
	c.pollResources()
	if existed {
		return handle.Count()
	}
	if c.exhausted {
		handle.Finalize(0)
		return 0
	}

	result := c.computeCount(lw, rw, le, re, nullCost)
	handle.Finalize(result)
	return result
}

// pseudocount is the {0,1}-valued oracle: 0 iff the memo already has a
// stored 0 for this exact subproblem, 1 otherwise (including absence). It
// is a pure read — it never reserves or recurses, unlike DoCount.
func (c *Context) pseudocount(lw, rw int, le, re *sentence.Connector, cost int) int64 {
	key := memo.Key{LW: lw, RW: rw, LE: le, RE: re, Cost: cost}
	if v, ok := c.table.Lookup(key); ok && v == 0 {
		return 0
	}
	return 1
}

func (c *Context) computeCount(lw, rw int, le, re *sentence.Connector, nullCost int) int64 {
	if nullCost < 0 {
		return 0
	}
	if rw == lw+1 {
		if le == nil && re == nil && nullCost == 0 {
			return 1
		}
		return 0
	}
	if le == nil && re == nil {
		return c.countBothNull(lw, rw, nullCost)
	}
	return c.countGeneral(lw, rw, le, re, nullCost)
}

// countBothNull handles an interior range whose boundary connectors are
// both nil: either islands are disallowed (and the range must be exactly
// the null-block-rounded-up width), or every way of leaving the leftmost
// word's disjunct unused (or using one whose left connector is nil) is
// summed.
func (c *Context) countBothNull(lw, rw, nullCost int) int64 {
	if !c.options.IslandsOK && lw != sentence.LeftWall {
		need := ceilDiv(rw-lw-1, c.sent.EffectiveNullBlock())
		if nullCost == need {
			return 1
		}
		return 0
	}
	if nullCost == 0 {
		return 0
	}

	w := lw + 1
	var total int64
	for d := c.sent.WordAt(w).Disjuncts; d != nil; d = d.Next {
		if d.Left == nil {
			total = saturatingAdd(total, c.DoCount(w, rw, d.Right, nil, nullCost-1))
		}
	}
	total = saturatingAdd(total, c.DoCount(w, rw, nil, nil, nullCost-1))
	return total
}

// countGeneral is the general decomposition: for every split word between
// the boundaries and every disjunct on it that the match-list index deems a
// plausible candidate, and every way of partitioning the null-cost budget
// between the left and right sub-ranges, aggregate a pseudocount pass
// first — a zero there proves the real total is zero and the split is
// skipped entirely — then, only when warranted, the real do_count pass.
func (c *Context) countGeneral(lw, rw int, le, re *sentence.Connector, nullCost int) int64 {
	// le always sits on lw and re always sits on rw (every recursive call
	// threads the new boundary connector onto the word it just split from),
	// so le.Word/re.Word are never interior split-word bounds; the split
	// range is always the open interval (lw, rw).
	start := lw + 1
	end := rw

	var total int64
	for w := start; w < end; w++ {
		assert(lw < w && w < rw, "split word must lie strictly inside (lw, rw)")

		list := c.index.FormMatchList(w, le, re)
		for _, d := range list {
			for lcost := 0; lcost <= nullCost; lcost++ {
				rcost := nullCost - lcost

				lm := le != nil && d.Left != nil && match.DoMatch(le, d.Left, lw, w)
				rm := d.Right != nil && re != nil && match.DoMatch(d.Right, re, w, rw)

				if c.aggregate(c.pseudocount, lw, rw, w, le, re, d, lcost, rcost, lm, rm) == 0 {
					continue
				}
				real := c.aggregate(c.DoCount, lw, rw, w, le, re, d, lcost, rcost, lm, rm)
				total = saturatingAdd(total, real)
			}
		}
		c.index.PutMatchList(list)
	}
	return total
}

// aggregate computes one split's contribution (pseudototal when f is
// pseudocount, the real contribution when f is DoCount) for split word w,
// candidate disjunct d and cost partition (lcost, rcost).
//
// L aggregates the left side's four multi-connector terms (only when lm),
// R mirrors it for the right side (only when rm). The result combines
// L*R with the right-only term (gated on L>0) and the left-wall-only term
// (gated on le==nil && R>0 — the documented asymmetry: there is no mirror
// "re==nil && L>0" term, since the left wall is the only boundary position
// where a disjunct may participate through only one of its connectors
// without the other being consumed further out).
func (c *Context) aggregate(f countFunc, lw, rw, w int, le, re *sentence.Connector, d *sentence.Disjunct, lcost, rcost int, lm, rm bool) int64 {
	var l, r int64
	if lm {
		l = f(lw, w, le.Next, d.Left.Next, lcost)
		if le.Multi {
			l = saturatingAdd(l, f(lw, w, le, d.Left.Next, lcost))
		}
		if d.Left.Multi {
			l = saturatingAdd(l, f(lw, w, le.Next, d.Left, lcost))
		}
		if le.Multi && d.Left.Multi {
			l = saturatingAdd(l, f(lw, w, le, d.Left, lcost))
		}
	}
	if rm {
		r = f(w, rw, d.Right.Next, re.Next, rcost)
		if d.Right.Multi {
			r = saturatingAdd(r, f(w, rw, d.Right, re.Next, rcost))
		}
		if re.Multi {
			r = saturatingAdd(r, f(w, rw, d.Right.Next, re, rcost))
		}
		if d.Right.Multi && re.Multi {
			r = saturatingAdd(r, f(w, rw, d.Right, re, rcost))
		}
	}

	sum := saturatingMul(l, r)
	if l > 0 {
		sum = saturatingAdd(sum, saturatingMul(l, f(w, rw, d.Right, re, rcost)))
	}
	if le == nil && r > 0 {
		sum = saturatingAdd(sum, saturatingMul(r, f(lw, w, le, d.Left, lcost)))
	}
	return sum
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func saturatingMul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a > memo.IntMax/b {
		return memo.IntMax
	}
	return memo.Saturate(a * b)
}
