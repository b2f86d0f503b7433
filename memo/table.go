// Package memo implements the counting engine's hash-chained memo table.
//
// The table is keyed by the quintuple (lw, rw, le, re, cost) and sized as a
// power of two derived from sentence length, with collisions resolved by
// singly-linked chains — mirroring the shape of the teacher's
// dfa/lazy.Cache, but with an explicit chained bucket array instead of a Go
// map, since the counting engine's key includes connector identity rather
// than a single hashable value.
package memo

import (
	"hash/fnv"
	"math"

	"github.com/coregx/lgcount/sentence"
)

// IntMax is the saturation sentinel. Counts at or above this value are
// reported as IntMax; callers distinguish "saturated" from "exceeds the
// 2^24 overflow heuristic" by comparing against this documented constant,
// not a silently wider integer type.
const IntMax = math.MaxInt32

const (
	minShift = 12
	maxShift = 24
	// shiftLengthDivisor is the "/6" in shift = 12 + length/6.
	shiftLengthDivisor = 6
	// shiftLengthThreshold is the "10 words" below which shift is pinned
	// to minShift.
	shiftLengthThreshold = 10
)

// Key identifies one memoized subproblem: the open range strictly between
// LW and RW, consuming boundary connectors LE/RE, under exactly Cost units
// of remaining null-word budget.
type Key struct {
	LW, RW int
	LE, RE *sentence.Connector
	Cost   int
}

func (k Key) leID() int {
	return k.LE.ID()
}

func (k Key) reID() int {
	return k.RE.ID()
}

// equal reports whether two keys address the same subproblem. Connectors
// are compared by pointer identity (two nil connectors are equal) rather
// than content, per the spec's memo-key identity rule.
func (k Key) equal(other Key) bool {
	return k.LW == other.LW && k.RW == other.RW && k.Cost == other.Cost &&
		k.LE == other.LE && k.RE == other.RE
}

// entry is one memoized subproblem. Count starts tentative (zero) on
// insertion and is overwritten with the final value before the owning
// recursion frame returns; no tentative value is ever read by another
// frame except through the intentional reentrancy guard described in
// do_count's contract.
type entry struct {
	key       Key
	count     int64
	tentative bool
	next      *entry
}

// Table is the open-chained memo table for a single parse.
type Table struct {
	buckets []*entry
	shift   uint
	size    int

	hits   uint64
	misses uint64
}

// shiftForLength computes shift = 12 for sentences shorter than 10 words,
// 12 + length/6 otherwise, clamped to 24.
func shiftForLength(length int) uint {
	if length < shiftLengthThreshold {
		return minShift
	}
	shift := minShift + length/shiftLengthDivisor
	if shift > maxShift {
		return maxShift
	}
	return uint(shift)
}

// New allocates a memo table sized from the given sentence length using the
// engine's default shift piecewise function.
func New(sentenceLength int) *Table {
	return NewWithShift(shiftForLength(sentenceLength))
}

// NewWithShift allocates a memo table with an explicit log2 bucket count,
// letting callers (e.g. count.Context, honoring count.Config) override the
// default sizing piecewise function.
func NewWithShift(shift uint) *Table {
	return &Table{
		buckets: make([]*entry, 1<<shift),
		shift:   shift,
	}
}

// hash folds (log2 size, lw, rw, le id, re id, cost) into the table's
// bucket index using FNV-1a, the same hash family the teacher's
// dfa/lazy.ComputeStateKey uses.
func (t *Table) hash(k Key) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	write := func(v int64) {
		for i := 0; i < 8; i++ {
			buf[i] = byte(v >> (8 * i))
		}
		_, _ = h.Write(buf[:])
	}
	write(int64(t.shift))
	write(int64(k.LW))
	write(int64(k.RW))
	write(int64(k.leID()))
	write(int64(k.reID()))
	write(int64(k.Cost))
	return h.Sum64()
}

func (t *Table) bucketIndex(k Key) uint64 {
	return t.hash(k) & (uint64(1)<<t.shift - 1)
}

func (t *Table) find(k Key) *entry {
	for e := t.buckets[t.bucketIndex(k)]; e != nil; e = e.next {
		if e.key.equal(k) {
			return e
		}
	}
	return nil
}

// Lookup returns the stored count for key and true, or (0, false) if the
// key has never been reserved. A tentative (in-progress) entry is returned
// the same as a finalized one; the tentative-zero value is load-bearing for
// the pseudocount oracle and the reentrancy guard.
func (t *Table) Lookup(k Key) (int64, bool) {
	if e := t.find(k); e != nil {
		t.hits++
		return e.count, true
	}
	t.misses++
	return 0, false
}

// Store inserts a fresh entry for key with the given count. The caller
// must have already verified the key is absent (e.g. via FindOrReserve).
func (t *Table) Store(k Key, count int64) {
	idx := t.bucketIndex(k)
	t.buckets[idx] = &entry{key: k, count: count, next: t.buckets[idx]}
	t.size++
}

// FindOrReserve returns the existing entry for key if present (existed ==
// true), or inserts a tentative zero-count entry and returns it (existed ==
// false). This single operation is what lets cyclic recursion through
// identical keys terminate on a tentative zero instead of looping forever.
func (t *Table) FindOrReserve(k Key) (reserved *entryHandle, existed bool) {
	if e := t.find(k); e != nil {
		t.hits++
		return &entryHandle{e}, true
	}
	t.misses++
	idx := t.bucketIndex(k)
	e := &entry{key: k, count: 0, tentative: true, next: t.buckets[idx]}
	t.buckets[idx] = e
	t.size++
	return &entryHandle{e}, false
}

// entryHandle lets a caller read the pre-existing count or finalize a fresh
// reservation without exposing the internal entry type.
type entryHandle struct {
	e *entry
}

// Count returns the entry's currently stored count.
func (h *entryHandle) Count() int64 {
	return h.e.count
}

// Finalize overwrites a tentative entry with its final count. Finalizing an
// already-finalized entry is a no-op safeguard, not an expected call
// pattern: counts never decrease once finalized.
func (h *entryHandle) Finalize(count int64) {
	if !h.e.tentative {
		return
	}
	h.e.count = count
	h.e.tentative = false
}

// Size returns the number of entries currently stored.
func (t *Table) Size() int {
	return t.size
}

// Shift returns the table's log2 bucket count.
func (t *Table) Shift() uint {
	return t.shift
}

// Hits and Misses expose the table's lookup statistics, mirroring the
// teacher's dfa/lazy.Cache hit/miss counters.
func (t *Table) Hits() uint64   { return t.hits }
func (t *Table) Misses() uint64 { return t.misses }

// Clear empties the table in place, keeping its allocated buckets (the same
// trade-off the teacher's Cache.Clear makes: avoid reallocation on reuse).
func (t *Table) Clear() {
	for i := range t.buckets {
		t.buckets[i] = nil
	}
	t.size = 0
	t.hits = 0
	t.misses = 0
}

// Saturate clamps a running total at IntMax.
func Saturate(total int64) int64 {
	if total > IntMax {
		return IntMax
	}
	return total
}
