package matchlist

import (
	"math"
	"testing"

	"github.com/coregx/lgcount/sentence"
)

func buildSentence(arena *sentence.Arena) *sentence.Sentence {
	words := make([]sentence.Word, 3)

	sLeft := arena.NewConnector(0, "", "s", false, math.MaxInt, sentence.Thin, 1)
	dLeft := arena.NewConnector(1, "", "o", false, math.MaxInt, sentence.Thin, 1)
	words[1].AddDisjunct(sentence.NewDisjunct(sLeft, nil))
	words[1].AddDisjunct(sentence.NewDisjunct(dLeft, nil))

	oRight := arena.NewConnector(1, "", "o", false, math.MaxInt, sentence.Thin, 2)
	words[2].AddDisjunct(sentence.NewDisjunct(nil, oRight))

	return sentence.New(words)
}

func TestFormMatchListFiltersByLabel(t *testing.T) {
	arena := sentence.NewArena()
	sent := buildSentence(arena)
	idx := Build(sent)

	le := arena.NewConnector(0, "", "s", false, math.MaxInt, sentence.Thin, 0)
	list := idx.FormMatchList(1, le, nil)
	if len(list) != 1 {
		t.Fatalf("FormMatchList(word 1, label 0) returned %d disjuncts, want 1", len(list))
	}
	if list[0].Left.Label != 0 {
		t.Fatalf("returned disjunct has label %d, want 0", list[0].Left.Label)
	}
}

func TestFormMatchListDedupsWhenBothSidesMatch(t *testing.T) {
	arena := sentence.NewArena()
	words := make([]sentence.Word, 1)
	c1 := arena.NewConnector(0, "", "s", false, math.MaxInt, sentence.Thin, 0)
	c2 := arena.NewConnector(0, "", "s", false, math.MaxInt, sentence.Thin, 0)
	words[0].AddDisjunct(sentence.NewDisjunct(c1, c2))
	sent := sentence.New(words)
	idx := Build(sent)

	le := arena.NewConnector(0, "", "s", false, math.MaxInt, sentence.Thin, 0)
	re := arena.NewConnector(0, "", "s", false, math.MaxInt, sentence.Thin, 0)
	list := idx.FormMatchList(0, le, re)
	if len(list) != 1 {
		t.Fatalf("a disjunct matching on both sides must appear once, got %d entries", len(list))
	}
}

func TestFormMatchListEmptyWhenNoBoundary(t *testing.T) {
	arena := sentence.NewArena()
	sent := buildSentence(arena)
	idx := Build(sent)

	list := idx.FormMatchList(1, nil, nil)
	if len(list) != 0 {
		t.Fatalf("with both boundaries nil, FormMatchList must return empty, got %d", len(list))
	}
}

func TestPutMatchListReusesBackingArray(t *testing.T) {
	arena := sentence.NewArena()
	sent := buildSentence(arena)
	idx := Build(sent)

	le := arena.NewConnector(0, "", "s", false, math.MaxInt, sentence.Thin, 0)
	list1 := idx.FormMatchList(1, le, nil)
	idx.PutMatchList(list1)

	list2 := idx.FormMatchList(1, le, nil)
	if len(list2) != 1 {
		t.Fatalf("reused list should still return correct filtered results, got %d entries", len(list2))
	}
	if &list2[0] != &list1[0] {
		t.Fatalf("FormMatchList after PutMatchList must reuse the returned backing array")
	}
}

func TestPutMatchListNilIsNoOp(t *testing.T) {
	arena := sentence.NewArena()
	sent := buildSentence(arena)
	idx := Build(sent)
	idx.PutMatchList(nil)
	if len(idx.free) != 0 {
		t.Fatalf("PutMatchList(nil) must not push onto the free list")
	}
}
