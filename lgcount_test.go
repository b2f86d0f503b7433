package lgcount

import (
	"math"
	"testing"
)

func TestEndToEndTrivialLink(t *testing.T) {
	arena := NewArena()
	a := arena.NewConnector(0, "", "s", false, math.MaxInt, Thin, 0)
	b := arena.NewConnector(0, "", "s", false, math.MaxInt, Thin, 1)

	words := []Word{{}, {}}
	words[0].AddDisjunct(NewDisjunct(nil, a))
	words[1].AddDisjunct(NewDisjunct(b, nil))
	sent := NewSentence(words)

	ctx, err := NewContext(sent.Length())
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	defer ctx.Close()

	result, err := ctx.Parse(sent, Options{}, 0)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if result.Count != 1 {
		t.Fatalf("Count = %d, want 1", result.Count)
	}
}

func TestDefaultConfigMatchesDocumentedValues(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MinShift != 12 || cfg.MaxShift != 24 {
		t.Fatalf("DefaultConfig shift bounds = (%d, %d), want (12, 24)", cfg.MinShift, cfg.MaxShift)
	}
}

func TestNewContextWithConfigRejectsNegativeLength(t *testing.T) {
	if _, err := NewContextWithConfig(-5, DefaultConfig()); err == nil {
		t.Fatalf("NewContextWithConfig(-5, ...) must return an error")
	}
}
