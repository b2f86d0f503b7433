package count

import (
	"github.com/coregx/lgcount/memo"
	"github.com/coregx/lgcount/sentence"
)

// IntMax re-exports the saturation sentinel so callers never need to import
// package memo just to compare against it.
const IntMax = memo.IntMax

// ParseResult is the outcome of one Parse call: an exact count, a saturated
// count (Count == IntMax, true count is >= IntMax), or a truncated count
// (Exhausted is true, Count is a lower bound).
type ParseResult struct {
	Count     int64
	Saturated bool
	Exhausted bool
}

// Parse is the do_parse entry point. It binds ctx to sent (tearing down and
// rebuilding the match-list index and, if needed, the memo table), snapshots
// options, and counts linkages of the whole sentence under nullCount+1 units
// of null budget — the +1 accommodates the virtual null slot the left wall
// always contributes.
func (c *Context) Parse(sent *sentence.Sentence, options sentence.Options, nullCount int) (ParseResult, error) {
	if sent == nil || sent.Length() < 0 {
		return ParseResult{}, ErrNegativeLength
	}
	c.rebuild(sent)
	c.options = options

	count := c.DoCount(sentence.LeftWall, sent.Length(), nil, nil, nullCount+1)
	return ParseResult{
		Count:     count,
		Saturated: count >= IntMax,
		Exhausted: c.exhausted,
	}, nil
}
