// Package lgcount provides an exhaustive linkage-counting engine for a
// link-grammar–style natural-language parser.
//
// Given a sentence whose words already carry candidate disjuncts (built by
// an upstream dictionary/pruning stage — out of scope here), lgcount
// computes, for the whole sentence and a given null-word budget, the number
// of distinct planar, projective linkages that satisfy every connector.
//
// The engine does not produce concrete linkages or rank them — only counts.
// It does not retry, persist, or serialize state; its memo table lives for
// one parse.
//
// Basic usage:
//
//	arena := lgcount.NewArena()
//	a := arena.NewConnector(sLabel, "", "s", false, math.MaxInt, lgcount.Thin, 0)
//	b := arena.NewConnector(sLabel, "", "s", false, math.MaxInt, lgcount.Thin, 1)
//	words := []lgcount.Word{{}, {}}
//	words[0].AddDisjunct(lgcount.NewDisjunct(nil, a))
//	words[1].AddDisjunct(lgcount.NewDisjunct(b, nil))
//	sent := lgcount.NewSentence(words)
//
//	ctx, err := lgcount.NewContext(sent.Length())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ctx.Close()
//
//	result, err := ctx.Parse(sent, lgcount.Options{}, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Count) // 1
package lgcount

import (
	"github.com/coregx/lgcount/count"
	"github.com/coregx/lgcount/sentence"
)

// Connector, Disjunct, Word and Sentence are the data model the engine
// counts over; see package sentence for field-level documentation.
type (
	Connector = sentence.Connector
	Disjunct  = sentence.Disjunct
	Word      = sentence.Word
	Sentence  = sentence.Sentence
	Priority  = sentence.Priority
	Arena     = sentence.Arena
	Resources = sentence.Resources
	Options   = sentence.Options
)

// Priority values a connector may carry.
const (
	Thin = sentence.Thin
	Up   = sentence.Up
	Down = sentence.Down
)

// LeftWall is the sentinel word index for the virtual left-wall boundary.
const LeftWall = sentence.LeftWall

// Context is the counting engine's per-parse state: the memo table and
// match-list index. Allocate one with NewContext, reuse it across
// sentences via Parse, and release it with Close when done.
type Context = count.Context

// Config tunes the engine's memo-table sizing and resource-poll cadence.
type Config = count.Config

// ParseResult is the outcome of a Parse call.
type ParseResult = count.ParseResult

// IntMax is the saturation sentinel: a returned Count of IntMax means the
// true count is >= IntMax, not necessarily exactly IntMax.
const IntMax = count.IntMax

// DefaultConfig returns the engine's default tuning.
func DefaultConfig() Config {
	return count.DefaultConfig()
}

// NewContext allocates a count context presized from lengthHint (the
// sentence length the caller expects to parse). The context is not bound to
// a sentence until the first Parse call.
func NewContext(lengthHint int) (*Context, error) {
	return count.NewContext(lengthHint)
}

// NewContextWithConfig allocates a count context with explicit tuning.
func NewContextWithConfig(lengthHint int, cfg Config) (*Context, error) {
	return count.NewContextWithConfig(lengthHint, cfg)
}

// NewArena creates an empty connector arena. Connectors must be built
// through an Arena so the engine can key its memo table on stable slot
// identity instead of pointer or content hashes.
func NewArena() *Arena {
	return sentence.NewArena()
}

// NewSentence creates a sentence over the given words. IslandsOK defaults
// to false and NullBlock defaults to 1.
func NewSentence(words []Word) *Sentence {
	return sentence.New(words)
}

// NewDisjunct builds a disjunct with the given left/right connector lists.
func NewDisjunct(left, right *Connector) *Disjunct {
	return sentence.NewDisjunct(left, right)
}
