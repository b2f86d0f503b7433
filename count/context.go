// Package count implements the counting engine's core: the memoized
// recursive range decomposition (do_count) and the do_parse driver that
// seeds it. This is the analog of the teacher's meta package: the
// orchestrator that ties the matcher, the match-list index and the memo
// table together behind a small public surface.
package count

import (
	"math"

	"github.com/coregx/lgcount/internal/diag"
	"github.com/coregx/lgcount/matchlist"
	"github.com/coregx/lgcount/memo"
	"github.com/coregx/lgcount/sentence"
)

// Context holds everything one do_parse call needs: the sentence being
// counted, its match-list index, the memo table, snapshotted options and
// the resource-exhaustion checktimer. It lives for the duration of one
// parse; Reset tears it down and rebuilds it for the next sentence,
// mirroring init_table's documented teardown-then-rebuild contract.
type Context struct {
	cfg Config

	sent    *sentence.Sentence
	index   *matchlist.Index
	table   *memo.Table
	options sentence.Options

	checktimer uint64
	exhausted  bool
}

// NewContext allocates a count context presized from lengthHint, the way
// alloc_count_context(sentence_length_hint) does. The context is not bound
// to a sentence until the first Parse call.
func NewContext(lengthHint int) (*Context, error) {
	return NewContextWithConfig(lengthHint, DefaultConfig())
}

// NewContextWithConfig allocates a count context with explicit tuning.
func NewContextWithConfig(lengthHint int, cfg Config) (*Context, error) {
	if lengthHint < 0 {
		return nil, ErrNegativeLength
	}
	ctx := &Context{cfg: cfg}
	ctx.table = memo.NewWithShift(ctx.shiftForLength(lengthHint))
	return ctx, nil
}

func (c *Context) shiftForLength(length int) uint {
	if length < c.cfg.ShiftLengthThreshold {
		return c.cfg.MinShift
	}
	shift := c.cfg.MinShift + uint(length/c.cfg.ShiftLengthDivisor)
	if shift > c.cfg.MaxShift {
		return c.cfg.MaxShift
	}
	return shift
}

// rebuild binds the context to sent: a fresh match-list index is always
// built, and the memo table is either cleared in place (when the required
// shift hasn't changed, avoiding a reallocation) or reallocated.
func (c *Context) rebuild(sent *sentence.Sentence) {
	c.sent = sent
	c.index = matchlist.Build(sent)

	shift := c.shiftForLength(sent.Length())
	if c.table != nil && c.table.Shift() == shift {
		c.table.Clear()
	} else {
		c.table = memo.NewWithShift(shift)
	}
	c.checktimer = 0
	c.exhausted = false
}

// Reset rebinds the context to a new sentence, tearing down the prior
// match-list index and (when the new sentence needs a differently sized
// table) the memo table, per the spec's init_table teardown-then-rebuild
// contract. Parse calls this internally; exposed directly for callers that
// want to presize ahead of time.
func (c *Context) Reset(sent *sentence.Sentence) error {
	if sent == nil || sent.Length() < 0 {
		return ErrNegativeLength
	}
	c.rebuild(sent)
	return nil
}

// Close releases the context's table and index. The context must not be
// used afterward.
func (c *Context) Close() {
	c.sent = nil
	c.index = nil
	c.table = nil
}

// Stats snapshots the context's diagnostic counters.
func (c *Context) Stats() diag.Stats {
	var size int
	var hits, misses uint64
	if c.table != nil {
		size = c.table.Size()
		hits = c.table.Hits()
		misses = c.table.Misses()
	}
	return diag.Stats{
		MemoHits:   hits,
		MemoMisses: misses,
		MemoSize:   size,
		Checktimer: c.checktimer,
		Exhausted:  c.exhausted,
	}
}

// Exhausted reports whether the resource budget was exhausted during the
// most recent parse, meaning the returned count is a lower bound rather
// than exact.
func (c *Context) Exhausted() bool {
	return c.exhausted
}

// pollResources increments the checktimer and, once per CheckInterval
// calls, polls the resource handle. Once exhausted is observed it latches
// true for the remainder of the parse.
func (c *Context) pollResources() {
	if c.exhausted {
		return
	}
	c.checktimer++
	if c.cfg.CheckInterval == 0 || c.checktimer%c.cfg.CheckInterval != 0 {
		return
	}
	if c.options.Resources != nil && c.options.Resources.Exhausted() {
		c.exhausted = true
	}
}

// saturatingAdd adds b to a, clamping at memo.IntMax. Negative operands
// never occur in this engine's arithmetic (all counts are non-negative),
// so saturation is the only overflow concern.
func saturatingAdd(a, b int64) int64 {
	if a > math.MaxInt64-b {
		return memo.IntMax
	}
	return memo.Saturate(a + b)
}
