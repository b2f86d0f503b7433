// Package diag holds read-only diagnostic counters for the counting engine,
// mirroring the teacher's meta.Engine.stats / dfa/lazy.Cache hit-miss
// fields. Nothing in this package participates in counting semantics.
package diag

// Stats is a snapshot of engine activity for one parse.
type Stats struct {
	MemoHits     uint64
	MemoMisses   uint64
	MemoSize     int
	Checktimer   uint64
	Exhausted    bool
	// IndexQueries is not filled in by count.Context.Stats and reads as
	// zero.
	IndexQueries uint64
}
