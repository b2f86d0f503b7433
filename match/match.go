// Package match implements the connector matcher: the pure predicate that
// decides whether two connectors, pointing at each other across a word
// distance, are allowed to link.
package match

import "github.com/coregx/lgcount/sentence"

const (
	wildcardAny   = '*'
	wildcardDownX = '^'
)

// DoMatch decides whether connector a (sitting on word aw, pointing right)
// and connector b (sitting on word bw, pointing left) can be linked.
//
// The contract is evaluated in order: label equality, length-limit against
// the word distance, uppercase head equality consumed in lockstep, then a
// suffix match whose rules depend on the pair of priorities in play.
func DoMatch(a, b *sentence.Connector, aw, bw int) bool {
	if a == nil || b == nil {
		return false
	}
	if a.Label != b.Label {
		return false
	}

	dist := bw - aw
	if dist > a.LengthLimit || dist > b.LengthLimit {
		return false
	}

	aRest, bRest, ok := consumeHead(a.Head, b.Head)
	if !ok {
		return false
	}
	aTail, bTail := aRest+a.Tail, bRest+b.Tail

	switch {
	case a.Priority == sentence.Thin && b.Priority == sentence.Thin:
		return EasyMatch(aTail, bTail)
	case a.Priority == sentence.Up && b.Priority == sentence.Down:
		return matchUpDown(aTail, bTail)
	case a.Priority == sentence.Down && b.Priority == sentence.Up:
		return matchUpDown(bTail, aTail)
	default:
		return false
	}
}

// consumeHead walks both head strings in lockstep while either current byte
// is uppercase; any mismatch during this walk fails the match. It returns
// the unconsumed remainders of both heads (which DoMatch prepends to the
// Tail suffixes), or ok=false on mismatch.
func consumeHead(aHead, bHead string) (aRest, bRest string, ok bool) {
	i := 0
	for i < len(aHead) || i < len(bHead) {
		var ac, bc byte
		aHas := i < len(aHead)
		bHas := i < len(bHead)
		if aHas {
			ac = aHead[i]
		}
		if bHas {
			bc = bHead[i]
		}
		if !isUpper(ac) && !isUpper(bc) {
			break
		}
		if !aHas || !bHas || ac != bc {
			return "", "", false
		}
		i++
	}
	return aHead[min(i, len(aHead)):], bHead[min(i, len(bHead)):], true
}

func isUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// EasyMatch is the THIN/THIN specialization of suffix matching, used
// whenever the dictionary carries no priority information. It is kept
// behaviorally identical to DoMatch on THIN inputs.
//
// Byte-by-byte comparison of the (already head-stripped) suffixes: '*' on
// either side matches any single byte, '^' matches only a literal '*' (so
// '^' against anything else, including another '^', fails), otherwise the
// bytes must be equal. Matching stops as soon as either string is exhausted
// and always succeeds at that point.
func EasyMatch(aTail, bTail string) bool {
	n := len(aTail)
	if len(bTail) < n {
		n = len(bTail)
	}
	for i := 0; i < n; i++ {
		ac, bc := aTail[i], bTail[i]
		if ac == wildcardAny || bc == wildcardAny {
			continue
		}
		if ac == wildcardDownX || bc == wildcardDownX {
			return false
		}
		if ac != bc {
			return false
		}
	}
	return true
}

// matchUpDown matches an UP-side tail against a DOWN-side tail: '*' on the
// UP side matches anything, '^' on the DOWN side matches anything, equal
// bytes match, and matching stops at the shorter string.
func matchUpDown(upTail, downTail string) bool {
	n := len(upTail)
	if len(downTail) < n {
		n = len(downTail)
	}
	for i := 0; i < n; i++ {
		uc, dc := upTail[i], downTail[i]
		if uc == wildcardAny {
			continue
		}
		if dc == wildcardDownX {
			continue
		}
		if uc != dc {
			return false
		}
	}
	return true
}
