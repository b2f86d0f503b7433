package prune

import (
	"math"
	"testing"

	"github.com/coregx/lgcount/sentence"
)

func TestMarkReachableMarksParticipatingDisjuncts(t *testing.T) {
	arena := sentence.NewArena()
	words := make([]sentence.Word, 2)
	right := arena.NewConnector(0, "", "s", false, math.MaxInt, sentence.Thin, 0)
	left := arena.NewConnector(0, "", "s", false, math.MaxInt, sentence.Thin, 1)
	d0 := sentence.NewDisjunct(nil, right)
	d1 := sentence.NewDisjunct(left, nil)
	words[0].AddDisjunct(d0)
	words[1].AddDisjunct(d1)
	sent := sentence.New(words)

	ctx := NewContext(sent)
	ctx.MarkReachable()

	if !d0.Marked || !d1.Marked {
		t.Fatalf("both disjuncts of a trivially linkable sentence must be marked reachable")
	}
}

func TestMarkReachableLeavesDeadEndUnmarked(t *testing.T) {
	arena := sentence.NewArena()
	words := make([]sentence.Word, 3)
	right := arena.NewConnector(0, "", "s", false, math.MaxInt, sentence.Thin, 0)
	// word 1 offers a connector with a label that never matches anything.
	deadEnd := arena.NewConnector(1, "", "z", false, math.MaxInt, sentence.Thin, 1)
	left := arena.NewConnector(0, "", "s", false, math.MaxInt, sentence.Thin, 2)

	d0 := sentence.NewDisjunct(nil, right)
	dead := sentence.NewDisjunct(deadEnd, nil)
	d2 := sentence.NewDisjunct(left, nil)
	words[0].AddDisjunct(d0)
	words[1].AddDisjunct(dead)
	words[2].AddDisjunct(d2)
	sent := sentence.New(words)

	ctx := NewContext(sent)
	ctx.MarkReachable()

	if dead.Marked {
		t.Fatalf("a disjunct with a label that never matches must not be marked reachable")
	}
}
