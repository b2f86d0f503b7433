package match

import (
	"math"
	"testing"

	"github.com/coregx/lgcount/sentence"
)

func newConn(arena *sentence.Arena, label int, head, tail string, priority sentence.Priority, word int) *sentence.Connector {
	return arena.NewConnector(label, head, tail, false, math.MaxInt, priority, word)
}

func TestDoMatchTrivialThin(t *testing.T) {
	arena := sentence.NewArena()
	a := newConn(arena, 0, "", "s", sentence.Thin, 0)
	b := newConn(arena, 0, "", "s", sentence.Thin, 1)
	if !DoMatch(a, b, 0, 1) {
		t.Fatalf("identical thin connectors should match")
	}
}

func TestDoMatchLabelMismatch(t *testing.T) {
	arena := sentence.NewArena()
	a := newConn(arena, 0, "", "s", sentence.Thin, 0)
	b := newConn(arena, 1, "", "s", sentence.Thin, 1)
	if DoMatch(a, b, 0, 1) {
		t.Fatalf("different labels must never match")
	}
}

func TestDoMatchNilConnector(t *testing.T) {
	arena := sentence.NewArena()
	a := newConn(arena, 0, "", "s", sentence.Thin, 0)
	if DoMatch(a, nil, 0, 1) || DoMatch(nil, a, 0, 1) || DoMatch(nil, nil, 0, 1) {
		t.Fatalf("a match involving a nil connector must always fail")
	}
}

func TestDoMatchWildcardThin(t *testing.T) {
	arena := sentence.NewArena()
	a := newConn(arena, 0, "", "*", sentence.Thin, 0)
	b := newConn(arena, 0, "", "x", sentence.Thin, 1)
	if !DoMatch(a, b, 0, 1) {
		t.Fatalf("'*' must match any byte under thin/thin")
	}
}

func TestDoMatchLengthLimit(t *testing.T) {
	arena := sentence.NewArena()
	a := arena.NewConnector(0, "", "s", false, 1, sentence.Thin, 0)
	b := arena.NewConnector(0, "", "s", false, math.MaxInt, sentence.Thin, 5)
	if DoMatch(a, b, 0, 5) {
		t.Fatalf("a length-limit of 1 must reject a distance-5 match")
	}
}

func TestDoMatchUppercaseHeadLockstep(t *testing.T) {
	arena := sentence.NewArena()
	a := newConn(arena, 0, "D", "s", sentence.Thin, 0)
	b := newConn(arena, 0, "D", "s", sentence.Thin, 1)
	if !DoMatch(a, b, 0, 1) {
		t.Fatalf("identical uppercase heads should match")
	}

	c := newConn(arena, 0, "X", "s", sentence.Thin, 0)
	if DoMatch(a, c, 0, 1) {
		t.Fatalf("mismatched uppercase heads must fail")
	}
}

func TestDoMatchUpDownWildcards(t *testing.T) {
	arena := sentence.NewArena()
	up := newConn(arena, 0, "", "*", sentence.Up, 0)
	down := newConn(arena, 0, "", "d", sentence.Down, 1)
	if !DoMatch(up, down, 0, 1) {
		t.Fatalf("up '*' must match any down tail")
	}

	up2 := newConn(arena, 0, "", "z", sentence.Up, 0)
	down2 := newConn(arena, 0, "", "^", sentence.Down, 1)
	if !DoMatch(down2, up2, 1, 0) {
		t.Fatalf("down '^' must match any up tail regardless of argument order")
	}
}

func TestDoMatchSamePriorityMismatch(t *testing.T) {
	arena := sentence.NewArena()
	a := newConn(arena, 0, "", "s", sentence.Up, 0)
	b := newConn(arena, 0, "", "s", sentence.Up, 1)
	if DoMatch(a, b, 0, 1) {
		t.Fatalf("up/up is not a recognized priority pair and must not match")
	}
}

func TestDoMatchSymmetricThinThin(t *testing.T) {
	arena := sentence.NewArena()
	a := newConn(arena, 0, "", "a*c", sentence.Thin, 0)
	b := newConn(arena, 0, "", "abc", sentence.Thin, 1)
	if DoMatch(a, b, 0, 1) != DoMatch(b, a, 1, 0) {
		t.Fatalf("thin/thin matching must be symmetric in argument order")
	}
}

func TestEasyMatchDownCaretOnlyMatchesStar(t *testing.T) {
	if EasyMatch("^", "x") {
		t.Fatalf("'^' must only match a literal '*', not arbitrary bytes")
	}
	if EasyMatch("^", "^") {
		t.Fatalf("'^' must not match another '^'")
	}
	if !EasyMatch("^", "*") {
		t.Fatalf("'^' must match a literal '*'")
	}
}
