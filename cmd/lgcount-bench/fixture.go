// fixture.go implements a minimal line-oriented sentence description format
// used only to build test fixtures for the lgcount-bench CLI. It is
// deliberately not a dictionary reader: real disjunct construction from a
// link-grammar dictionary is out of scope for this repository.
//
// Format (blank lines and lines starting with '#' are ignored):
//
//	word <name>
//	conn <left|right> <label> <tail> <thin|up|down> [limit=<n>] [multi]
//
// Each conn line attaches a connector to the most recently declared word.
// Example:
//
//	word A
//	conn right S + thin
//	word B
//	conn left S - thin
package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/lgcount/sentence"
)

// keyword tokens the fixture lexer recognizes. Built into a single
// Aho-Corasick automaton; parseFixture rejects a line in which none of them
// occurs, then dispatches the line on its first field.
var fixtureKeywords = []string{"word", "conn", "left", "right", "thin", "up", "down", "multi"}

func buildKeywordAutomaton() (*ahocorasick.Automaton, error) {
	builder := ahocorasick.NewBuilder()
	for _, kw := range fixtureKeywords {
		builder.AddPattern([]byte(kw))
	}
	return builder.Build()
}

// parseFixture reads a sentence description and returns the sentence. The
// label table used to intern connector labels and the connector arena the
// engine needs for stable identity are built internally and not returned.
func parseFixture(r io.Reader) (*sentence.Sentence, error) {
	auto, err := buildKeywordAutomaton()
	if err != nil {
		return nil, fmt.Errorf("lgcount-bench: building fixture keyword automaton: %w", err)
	}

	labels := newLabelTable()
	arena := sentence.NewArena()
	var words []sentence.Word

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		m := auto.Find([]byte(line), 0)
		if m == nil {
			return nil, fmt.Errorf("lgcount-bench: line %d: no recognized keyword in %q", lineNo, line)
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "word":
			words = append(words, sentence.Word{})
		case "conn":
			if len(words) == 0 {
				return nil, fmt.Errorf("lgcount-bench: line %d: conn before any word", lineNo)
			}
			c, left, err := parseConn(fields[1:], arena, labels, len(words)-1)
			if err != nil {
				return nil, fmt.Errorf("lgcount-bench: line %d: %w", lineNo, err)
			}
			w := &words[len(words)-1]
			var d *sentence.Disjunct
			if left {
				d = sentence.NewDisjunct(c, nil)
			} else {
				d = sentence.NewDisjunct(nil, c)
			}
			w.AddDisjunct(d)
		default:
			return nil, fmt.Errorf("lgcount-bench: line %d: unexpected keyword %q", lineNo, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("lgcount-bench: reading fixture: %w", err)
	}

	return sentence.New(words), nil
}

func parseConn(fields []string, arena *sentence.Arena, labels *labelTable, word int) (c *sentence.Connector, left bool, err error) {
	if len(fields) < 4 {
		return nil, false, fmt.Errorf("conn needs at least direction, label, tail, priority")
	}
	switch fields[0] {
	case "left":
		left = true
	case "right":
		left = false
	default:
		return nil, false, fmt.Errorf("unknown direction %q", fields[0])
	}

	label := labels.intern(fields[1])
	tail := fields[2]

	var prio sentence.Priority
	switch fields[3] {
	case "thin":
		prio = sentence.Thin
	case "up":
		prio = sentence.Up
	case "down":
		prio = sentence.Down
	default:
		return nil, false, fmt.Errorf("unknown priority %q", fields[3])
	}

	limit := math.MaxInt
	multi := false
	for _, extra := range fields[4:] {
		switch {
		case extra == "multi":
			multi = true
		case strings.HasPrefix(extra, "limit="):
			n, err := strconv.Atoi(strings.TrimPrefix(extra, "limit="))
			if err != nil {
				return nil, false, fmt.Errorf("bad limit: %w", err)
			}
			limit = n
		default:
			return nil, false, fmt.Errorf("unknown conn option %q", extra)
		}
	}

	c = arena.NewConnector(label, "", tail, multi, limit, prio, word)
	return c, left, nil
}

// labelTable interns connector label strings to small integers.
type labelTable struct {
	ids map[string]int
}

func newLabelTable() *labelTable {
	return &labelTable{ids: make(map[string]int)}
}

func (t *labelTable) intern(s string) int {
	if id, ok := t.ids[s]; ok {
		return id
	}
	id := len(t.ids)
	t.ids[s] = id
	return id
}
